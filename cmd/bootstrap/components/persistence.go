package components

import (
	"context"
	"log/slog"

	"museum-booking/internal/infra/cache"
	"museum-booking/internal/infra/metrics"
	"museum-booking/internal/infra/notify"
	"museum-booking/internal/infra/repository"
	"museum-booking/internal/pkg/config"
	"museum-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			repository.NewManualBookingRepository,
			fx.As(new(shared.ManualBookingRepository)),
		),
		NewVerificationRepository,
		NewManualBookingNotifier,
		metrics.New,
	),
)

// NewVerificationRepository picks the store named by VERIFICATION_STORE.
// The Redis connection is only opened when it is selected.
func NewVerificationRepository(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) (shared.VerificationRepository, error) {
	if cfg.Verification.Store != config.VerificationStoreRedis {
		return repository.NewVerificationRepository(pool, logger), nil
	}

	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return cache.NewVerificationStore(client, logger), nil
}

// NewManualBookingNotifier publishes to RabbitMQ when RABBITMQ_URL is set and
// logs otherwise.
func NewManualBookingNotifier(cfg config.Config, logger *slog.Logger) shared.ManualBookingNotifier {
	if cfg.AMQP.URL == "" {
		return notify.NewLogNotifier(logger)
	}
	return notify.NewAMQPPublisher(cfg.AMQP, logger)
}
