package bootstrap

import (
	"context"
	"log/slog"

	"museum-booking/internal/infra/db"
	"museum-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool that backs manual bookings and, unless Redis is
// selected, verification records.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected",
		slog.String("host", cfg.DB.Host),
		slog.String("database", cfg.DB.DBName))

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("closing database pool",
				slog.Int("acquired", int(stat.AcquiredConns())),
				slog.Int("total", int(stat.TotalConns())))
			cleanup()
			return nil
		},
	})

	return pool, nil
}
