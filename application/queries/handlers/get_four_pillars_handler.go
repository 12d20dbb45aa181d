package handlers

import (
	"context"
	"fmt"

	"manse-backend/application/ports"
	"manse-backend/application/queries"
	"manse-backend/domain/saju"
	apperrors "manse-backend/pkg/errors"
	"manse-backend/pkg/observability"

	"go.uber.org/zap"
)

// GetFourPillarsHandler computes the four-pillar designation: year, month
// and day pillars come from the calendar port's combined pillar text, the
// hour pillar is derived locally from the day stem and the double-hour
// bucket.
type GetFourPillarsHandler struct {
	calendar ports.Calendar
	metrics  *observability.Collector
	logger   *zap.Logger
}

// NewGetFourPillarsHandler creates a new four-pillars query handler
func NewGetFourPillarsHandler(
	calendar ports.Calendar,
	metrics *observability.Collector,
	logger *zap.Logger,
) *GetFourPillarsHandler {
	return &GetFourPillarsHandler{
		calendar: calendar,
		metrics:  metrics,
		logger:   logger,
	}
}

// Handle executes the query
func (h *GetFourPillarsHandler) Handle(ctx context.Context, query queries.GetFourPillarsQuery) (*queries.FourPillarsResult, error) {
	var ganji string
	var err error

	switch query.CalendarType {
	case queries.CalendarTypeLunar:
		ganji, err = h.calendar.GanjiFromLunar(ctx, query.BirthYear, query.BirthMonth, query.BirthDay, query.LeapMonth)
	default:
		ganji, err = h.calendar.GanjiFromSolar(ctx, query.BirthYear, query.BirthMonth, query.BirthDay)
	}
	if err != nil {
		return nil, apperrors.FromError(err)
	}
	h.metrics.RecordCalculation(string(query.CalendarType))

	pillars, err := saju.ParseGanji(ganji)
	if err != nil {
		h.metrics.RecordParseFailure()
		h.logger.Warn("unrecognized pillar text from calendar library",
			zap.String("ganji", ganji),
			zap.Error(err),
		)
		return nil, apperrors.NewCalcFailed("failed to parse pillars").WithCause(err)
	}

	result := &queries.FourPillarsResult{
		Year:  pillars.Year.String(),
		Month: pillars.Month.String(),
		Day:   pillars.Day.String(),
	}
	text := fmt.Sprintf("%s년 %s월 %s일", result.Year, result.Month, result.Day)

	// The hour pillar is appended only when both the birth time and the day
	// stem resolve; otherwise it is omitted rather than failing the request.
	if bucket, ok := saju.ResolveBucket(query.TimeCode, query.Time); ok {
		if dayStem, ok := saju.DayStem(ganji); ok {
			if hour, ok := saju.HourPillar(dayStem, bucket); ok {
				result.Hour = hour.String()
				text += fmt.Sprintf(" %s시", result.Hour)
				h.metrics.RecordHourPillar()
			}
		}
	}

	result.Text = text
	return result, nil
}
