package components

import (
	"museum-booking/internal/domain/timing"
	"museum-booking/internal/handler"
	"museum-booking/internal/handler/api"
	"museum-booking/internal/infra/metrics"
	"museum-booking/internal/mockplatform"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewTimingSource,
		api.NewBookingHandler,
		api.NewVerificationHandler,
		api.NewManualBookingHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewTimingSource(g *timing.Gate) api.TimingSource {
	return g
}

type handlerParams struct {
	fx.In

	Config       config.Config
	Clock        clock.Clock
	Metrics      *metrics.Metrics
	Booking      *api.BookingHandler
	Verification *api.VerificationHandler
	Manual       *api.ManualBookingHandler
}

// NewHandlers mounts the mock platform only when no real platform is configured.
func NewHandlers(p handlerParams) handler.Handlers {
	h := handler.Handlers{
		Booking:      p.Booking,
		Verification: p.Verification,
		Manual:       p.Manual,
		Metrics:      p.Metrics.Handler(),
	}
	if p.Config.MockPlatformEnabled() {
		h.MockPlatform = mockplatform.New(p.Clock)
	}
	return h
}
