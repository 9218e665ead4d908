package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"museum-booking/internal/handler/api"
	"museum-booking/internal/handler/middleware"
	"museum-booking/internal/mockplatform"
	"museum-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

const maxBookingBody = 64 << 10

type Handlers struct {
	Booking      *api.BookingHandler
	Verification *api.VerificationHandler
	Manual       *api.ManualBookingHandler
	// served at /metrics when set
	Metrics http.Handler
	// mounted at /mock when set
	MockPlatform *mockplatform.Platform
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)
	if h.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(h.Metrics))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/timing", h.Booking.Timing)

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "/attempt", Handler: h.Booking.Attempt, Mw: []gin.HandlerFunc{middleware.LimitBody(maxBookingBody)}},
		})

		verifications := apiGroup.Group("/verifications")
		addRoutes(verifications, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Verification.Verify},
			{Method: http.MethodGet, Path: "/:bookingId", Handler: h.Verification.Get},
		})

		manualBookings := apiGroup.Group("/manual-bookings")
		addRoutes(manualBookings, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Manual.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Manual.Get},
			{Method: http.MethodPatch, Path: "/:id/complete", Handler: h.Manual.Complete},
		})
	}

	if h.MockPlatform != nil {
		h.MockPlatform.Register(engine.Group("/mock"))
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
