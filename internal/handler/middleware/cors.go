package middleware

import (
	"log/slog"
	"slices"

	"museum-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always lets browsers send and read the request ID and
// operator headers, whatever the configured lists say.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeaders(cfg.AllowHeaders, RequestIDHeader, OperatorHeader),
		ExposeHeaders:    withHeaders(cfg.ExposeHeaders, RequestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}

func withHeaders(list []string, extra ...string) []string {
	out := slices.Clone(list)
	for _, h := range extra {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
