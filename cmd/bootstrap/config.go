package bootstrap

import (
	"log/slog"

	"museum-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEngineConfig),
)

// logEngineConfig records which tiers and stores this process will use.
func logEngineConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("engine configuration loaded",
		slog.String("platform", cfg.PlatformBaseURL()),
		slog.Bool("mock_platform", cfg.MockPlatformEnabled()),
		slog.Bool("impersonation", cfg.Platform.ImpersonationEnabled),
		slog.Bool("browser", cfg.Browser.Enabled),
		slog.Bool("stealth", cfg.Browser.StealthEnabled),
		slog.String("verification_store", cfg.Verification.Store),
		slog.String("release_time", cfg.Release.Time),
		slog.Duration("manual_deadline", cfg.Manual.Deadline),
		slog.Bool("amqp", cfg.AMQP.URL != ""))
}
