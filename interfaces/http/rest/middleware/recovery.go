package middleware

import (
	"fmt"
	"net/http"

	"manse-backend/pkg/common"

	"go.uber.org/zap"
)

// Recovery converts panics into the API's exception error shape instead of
// dropping the connection
func Recovery(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
					)
					common.RespondError(w, http.StatusInternalServerError, "exception", fmt.Sprintf("%v", rec))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
