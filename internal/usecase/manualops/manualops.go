package manualops

//go:generate mockgen -source=manualops.go -destination=../../../tests/mock/manualops/manualops.go -package=manualopsmock

import (
	"context"
	"errors"
	"log/slog"

	"museum-booking/internal/domain/manual"
	"museum-booking/internal/infra"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/errs"
	"museum-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type Queries interface {
	List(ctx context.Context, status *manual.Status, limit int) ([]*manual.Booking, error)
	Get(ctx context.Context, id uuid.UUID) (*manual.Booking, error)
}

type Commands interface {
	Complete(ctx context.Context, id uuid.UUID, officialRef string) (*manual.Booking, error)
}

type queriesImpl struct {
	repo shared.ManualBookingRepository
}

func NewQueries(repo shared.ManualBookingRepository) Queries {
	return &queriesImpl{repo: repo}
}

func (q *queriesImpl) List(ctx context.Context, status *manual.Status, limit int) ([]*manual.Booking, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	items, err := q.repo.List(ctx, shared.ManualBookingFilter{Status: status, Limit: limit})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *queriesImpl) Get(ctx context.Context, id uuid.UUID) (*manual.Booking, error) {
	b, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return b, nil
}

type commandsImpl struct {
	repo   shared.ManualBookingRepository
	clock  clock.Clock
	logger *slog.Logger
}

func NewCommands(repo shared.ManualBookingRepository, clk clock.Clock, logger *slog.Logger) Commands {
	return &commandsImpl{repo: repo, clock: clk, logger: logger}
}

func (c *commandsImpl) Complete(ctx context.Context, id uuid.UUID, officialRef string) (*manual.Booking, error) {
	if _, err := manual.NormalizeOfficialReference(officialRef); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidOfficialRef)
	}

	updated, err := c.repo.Update(ctx, id, func(b *manual.Booking) error {
		return b.Complete(officialRef, c.clock.Now())
	})
	if err != nil {
		return nil, mapRepoErr(err)
	}

	c.logger.Info("manual booking completed",
		slog.String("manual_booking_id", id.String()),
		slog.String("official_reference", updated.OfficialReference()))
	return updated, nil
}

func mapRepoErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrManualBookingNotFound)
	case errors.Is(err, manual.ErrAlreadyCompleted):
		return errs.Mark(err, errs.ErrManualBookingCompleted)
	case errors.Is(err, manual.ErrEmptyOfficialRef):
		return errs.Mark(err, errs.ErrInvalidOfficialRef)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
