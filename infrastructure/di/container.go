package di

import (
	"context"

	"manse-backend/application/ports"
	queryhandlers "manse-backend/application/queries/handlers"
	"manse-backend/infrastructure/config"
	"manse-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	LogLevel       zap.AtomicLevel
	Metrics        *observability.Collector
	Calendar       ports.Calendar
	GetFourPillars *queryhandlers.GetFourPillarsHandler
}

// InitializeContainer wires up all application dependencies
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger, level, err := ProvideLogger(cfg)
	if err != nil {
		return nil, err
	}

	metrics := ProvideMetrics()
	cal := ProvideCalendar(logger)

	return &Container{
		Config:         cfg,
		Logger:         logger,
		LogLevel:       level,
		Metrics:        metrics,
		Calendar:       cal,
		GetFourPillars: ProvideGetFourPillarsHandler(cal, metrics, logger),
	}, nil
}
