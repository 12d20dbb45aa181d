package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_TypesCarryWireCodesAndStatus(t *testing.T) {
	tests := []struct {
		err        *AppError
		wantType   ErrorType
		wantStatus int
	}{
		{NewBadRequest("birthday must be YYYYMMDD"), ErrorTypeBadRequest, http.StatusBadRequest},
		{NewCalcFailed("failed to parse pillars"), ErrorTypeCalcFailed, http.StatusInternalServerError},
		{NewException("boom"), ErrorTypeException, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantType, tt.err.Type)
		assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
	}
}

func TestGetAppError_UnwrapsThroughChain(t *testing.T) {
	cause := errors.New("library fault")
	appErr := NewCalcFailed("failed to parse pillars").WithCause(cause)
	wrapped := fmt.Errorf("handling request: %w", appErr)

	got := GetAppError(wrapped)

	require.NotNil(t, got)
	assert.Equal(t, ErrorTypeCalcFailed, got.Type)
	assert.ErrorIs(t, wrapped, cause)
}

func TestFromError_WrapsUnknownAsException(t *testing.T) {
	got := FromError(errors.New("wrong month 13"))

	assert.Equal(t, ErrorTypeException, got.Type)
	assert.Equal(t, "wrong month 13", got.Message)
	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
}

func TestFromError_PassesAppErrorThrough(t *testing.T) {
	appErr := NewBadRequest("birthday must be YYYYMMDD")

	got := FromError(appErr)

	assert.Same(t, appErr, got)
}
