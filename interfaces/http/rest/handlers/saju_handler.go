package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"manse-backend/application/queries"
	queryhandlers "manse-backend/application/queries/handlers"
	"manse-backend/pkg/common"
	apperrors "manse-backend/pkg/errors"
	"manse-backend/pkg/utils"

	"go.uber.org/zap"
)

const birthdayMessage = "birthday must be YYYYMMDD"

// SajuHandler handles four-pillar HTTP requests
type SajuHandler struct {
	getFourPillars *queryhandlers.GetFourPillarsHandler
	logger         *zap.Logger
}

// NewSajuHandler creates a new saju handler
func NewSajuHandler(getFourPillars *queryhandlers.GetFourPillarsHandler, logger *zap.Logger) *SajuHandler {
	return &SajuHandler{
		getFourPillars: getFourPillars,
		logger:         logger,
	}
}

// GetFourPillarsRequest represents the query parameters of a four-pillar
// request. Gender is accepted for API compatibility but takes no part in
// the computation.
type GetFourPillarsRequest struct {
	Birthday     string `validate:"required,len=8,numeric"`
	BirthdayType string
	IsLeap       string
	TimeCode     string
	Time         string
	Gender       string
}

// GetFourPillars handles GET /saju
func (h *SajuHandler) GetFourPillars(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	req := GetFourPillarsRequest{
		Birthday:     strings.TrimSpace(params.Get("birthday")),
		BirthdayType: strings.ToUpper(strings.TrimSpace(params.Get("birthdayType"))),
		IsLeap:       params.Get("isLeap"),
		TimeCode:     params.Get("timeCode"),
		Time:         params.Get("time"),
		Gender:       params.Get("gender"),
	}

	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, string(apperrors.ErrorTypeBadRequest), birthdayMessage)
		return
	}

	year, month, day, ok := splitBirthday(req.Birthday)
	if !ok {
		common.RespondError(w, http.StatusBadRequest, string(apperrors.ErrorTypeBadRequest), birthdayMessage)
		return
	}

	// Anything other than LUNAR falls back to the solar interpretation
	calendarType := queries.CalendarTypeSolar
	if req.BirthdayType == string(queries.CalendarTypeLunar) {
		calendarType = queries.CalendarTypeLunar
	}

	query := queries.GetFourPillarsQuery{
		BirthYear:    year,
		BirthMonth:   month,
		BirthDay:     day,
		CalendarType: calendarType,
		LeapMonth:    req.IsLeap == "true",
		TimeCode:     req.TimeCode,
		Time:         req.Time,
	}

	result, err := h.getFourPillars.Handle(r.Context(), query)
	if err != nil {
		h.respondError(w, err)
		return
	}

	common.RespondResult(w, result.Text)
}

// splitBirthday splits a validated YYYYMMDD string into its parts. The
// numeric validator tag still admits sign and decimal characters, so the
// digits are checked strictly here.
func splitBirthday(birthday string) (year, month, day int, ok bool) {
	for i := 0; i < len(birthday); i++ {
		if birthday[i] < '0' || birthday[i] > '9' {
			return 0, 0, 0, false
		}
	}
	var err error
	if year, err = strconv.Atoi(birthday[0:4]); err != nil {
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(birthday[4:6]); err != nil {
		return 0, 0, 0, false
	}
	if day, err = strconv.Atoi(birthday[6:8]); err != nil {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// respondError maps application errors onto the wire error shapes
func (h *SajuHandler) respondError(w http.ResponseWriter, err error) {
	appErr := apperrors.FromError(err)

	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("four-pillar computation failed",
			zap.String("type", string(appErr.Type)),
			zap.Error(err),
		)
	}

	common.RespondError(w, appErr.HTTPStatus, string(appErr.Type), appErr.Message)
}
