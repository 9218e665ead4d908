package components

import (
	"log/slog"

	"museum-booking/internal/domain/manual"
	"museum-booking/internal/infra/browser"
	"museum-booking/internal/infra/platform"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/config"
	"museum-booking/internal/usecase/engine"
	"museum-booking/internal/usecase/shared"
	"museum-booking/internal/usecase/verification"

	"go.uber.org/fx"
)

var PlatformModule = fx.Module("platform",
	fx.Provide(
		clock.NewRealClock,
		NewPlatformClient,
		manual.NewReferenceGenerator,
		NewManualFallback,
		NewStrategyRegistry,
		fx.Annotate(
			NewPlatformVerifier,
			fx.As(new(verification.PlatformLookup)),
		),
	),
)

// NewPlatformClient shares one rate limiter across every tier and the verifier.
func NewPlatformClient(cfg config.Config) *platform.Client {
	limiter := platform.NewLimiter(cfg.Platform.RatePerSec, cfg.Platform.RateBurst)
	return platform.NewClient(cfg.PlatformBaseURL(), cfg.Platform.RequestTimeout, limiter)
}

func NewManualFallback(
	cfg config.Config,
	repo shared.ManualBookingRepository,
	notifier shared.ManualBookingNotifier,
	references *manual.ReferenceGenerator,
	clk clock.Clock,
	logger *slog.Logger,
) *engine.ManualFallback {
	return engine.NewManualFallback(repo, notifier, references, clk, cfg.Manual.Deadline, logger)
}

// NewStrategyRegistry registers the tiers the configuration allows. Mobile and
// WeChat need impersonation enabled; the browser tier needs BROWSER_ENABLED.
func NewStrategyRegistry(
	cfg config.Config,
	client *platform.Client,
	fallback *engine.ManualFallback,
	clk clock.Clock,
	logger *slog.Logger,
) (*engine.Registry, error) {
	strategies := []engine.Strategy{
		platform.NewDirectAPI(cfg.Platform, client, clk, logger),
		platform.NewEnhancedAPI(cfg.Platform, client, clk, logger),
	}
	if cfg.Platform.ImpersonationEnabled {
		strategies = append(strategies,
			platform.NewMobileApp(cfg.Platform, client, clk, logger),
			platform.NewWeChatMiniProgram(cfg.Platform, client, clk, logger),
		)
	}
	if cfg.Browser.Enabled {
		strategies = append(strategies, browser.NewStrategy(browser.Options{
			Config:    cfg.Browser,
			BaseURL:   cfg.PlatformBaseURL(),
			PagePaths: cfg.Platform.PagePaths,
			Clock:     clk,
			Logger:    logger,
		}))
	}
	strategies = append(strategies, fallback)

	registry, err := engine.NewRegistry(strategies...)
	if err != nil {
		return nil, err
	}
	tiers := make([]string, 0, len(strategies))
	for _, name := range registry.Names() {
		tiers = append(tiers, name.String())
	}
	logger.Info("booking tiers registered", slog.Any("tiers", tiers))
	return registry, nil
}

func NewPlatformVerifier(cfg config.Config, client *platform.Client, logger *slog.Logger) *platform.Verifier {
	profile := platform.DesktopProfile(client.BaseURL(), cfg.Platform.AcceptLanguage)
	return platform.NewVerifier(client, cfg.Platform.VerifyPaths, profile, logger)
}
