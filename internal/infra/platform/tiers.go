package platform

import (
	"log/slog"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/config"
)

func NewDirectAPI(cfg config.PlatformConfig, client *Client, clk clock.Clock, logger *slog.Logger) *HTTPStrategy {
	return NewHTTPStrategy(HTTPStrategyOptions{
		Name:      booking.ProvenanceDirectAPI,
		Client:    client,
		Endpoints: Endpoints(cfg.BookingPaths),
		Encoder:   JSONEncoder{},
		Profile:   DesktopProfile(client.BaseURL(), cfg.AcceptLanguage),
		Clock:     clk,
		Logger:    logger,
	})
}

// NewEnhancedAPI seeds a cookie jar from the booking page, then posts form data.
func NewEnhancedAPI(cfg config.PlatformConfig, client *Client, clk clock.Clock, logger *slog.Logger) *HTTPStrategy {
	return NewHTTPStrategy(HTTPStrategyOptions{
		Name:      booking.ProvenanceEnhancedAPI,
		Client:    client,
		Endpoints: Endpoints(cfg.BookingPaths),
		Encoder:   FormEncoder{},
		Profile:   EnhancedProfile(client.BaseURL(), cfg.AcceptLanguage),
		Warmup:    cfg.PagePaths,
		Clock:     clk,
		Logger:    logger,
	})
}

func NewMobileApp(cfg config.PlatformConfig, client *Client, clk clock.Clock, logger *slog.Logger) *HTTPStrategy {
	return NewHTTPStrategy(HTTPStrategyOptions{
		Name:      booking.ProvenanceMobileApp,
		Client:    client,
		Endpoints: Endpoints(cfg.MobilePaths),
		Encoder:   JSONEncoder{},
		Profile:   MobileProfile(client.BaseURL(), cfg.AcceptLanguage, identityFor(cfg)),
		Clock:     clk,
		Logger:    logger,
	})
}

func NewWeChatMiniProgram(cfg config.PlatformConfig, client *Client, clk clock.Clock, logger *slog.Logger) *HTTPStrategy {
	return NewHTTPStrategy(HTTPStrategyOptions{
		Name:      booking.ProvenanceWeChatMiniProgram,
		Client:    client,
		Endpoints: Endpoints(cfg.WeChatPaths),
		Encoder:   JSONEncoder{},
		Profile:   WeChatProfile(client.BaseURL(), cfg.AcceptLanguage, identityFor(cfg)),
		Clock:     clk,
		Logger:    logger,
	})
}

func identityFor(cfg config.PlatformConfig) *Identity {
	if !cfg.ImpersonationEnabled {
		return nil
	}
	return NewIdentity()
}
