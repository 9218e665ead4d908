package components

import (
	"log/slog"

	"museum-booking/internal/domain/timing"
	"museum-booking/internal/infra/metrics"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/config"
	bookingusecase "museum-booking/internal/usecase/booking"
	"museum-booking/internal/usecase/engine"
	"museum-booking/internal/usecase/manualops"
	"museum-booking/internal/usecase/shared"
	"museum-booking/internal/usecase/verification"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewTimingGate,
	NewOrchestrator,
	NewVerificationService,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewBookingCommands,
		manualops.NewCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		manualops.NewQueries,
	),
)

func NewTimingGate(cfg config.Config, clk clock.Clock) (*timing.Gate, error) {
	hour, minute, err := cfg.Release.ReleaseClock()
	if err != nil {
		return nil, err
	}
	return timing.NewGate(clk, cfg.Release.Location(), hour, minute, cfg.Release.Window)
}

func NewOrchestrator(registry *engine.Registry, clk clock.Clock, logger *slog.Logger, m *metrics.Metrics) bookingusecase.Escalator {
	return engine.NewOrchestrator(registry, clk, logger, m)
}

func NewVerificationService(
	cfg config.Config,
	lookup verification.PlatformLookup,
	repo shared.VerificationRepository,
	clk clock.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) verification.Service {
	return verification.NewService(lookup, repo, clk, cfg.Verification.Timeout, logger, m)
}

func NewBookingCommands(cfg config.Config, escalator bookingusecase.Escalator, service verification.Service, logger *slog.Logger) bookingusecase.Commands {
	return bookingusecase.NewCommands(escalator, service, cfg.Server.AttemptTimeout, logger)
}
