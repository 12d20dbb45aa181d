package di

import (
	"fmt"

	"manse-backend/application/ports"
	queryhandlers "manse-backend/application/queries/handlers"
	"manse-backend/infrastructure/calendar"
	"manse-backend/infrastructure/config"
	"manse-backend/pkg/observability"

	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance with an atomic level so the
// level can be adjusted at runtime
func ProvideLogger(cfg *config.Config) (*zap.Logger, zap.AtomicLevel, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	return logger, level, nil
}

// ProvideMetrics creates the metrics collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("manse")
}

// ProvideCalendar creates the external calendar adapter
func ProvideCalendar(logger *zap.Logger) ports.Calendar {
	return calendar.NewLunarCalendar(logger)
}

// ProvideGetFourPillarsHandler creates the four-pillars query handler
func ProvideGetFourPillarsHandler(
	cal ports.Calendar,
	metrics *observability.Collector,
	logger *zap.Logger,
) *queryhandlers.GetFourPillarsHandler {
	return queryhandlers.NewGetFourPillarsHandler(cal, metrics, logger)
}
