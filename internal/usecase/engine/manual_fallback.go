package engine

import (
	"context"
	"log/slog"
	"time"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/domain/manual"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/usecase/shared"
)

const manualStoreTimeout = 10 * time.Second

// ManualFallback hands the booking to a human operator. It never fails:
// storage and notification problems are logged and the caller still gets
// the synthesized reference.
type ManualFallback struct {
	repo       shared.ManualBookingRepository
	notifier   shared.ManualBookingNotifier
	references *manual.ReferenceGenerator
	clock      clock.Clock
	deadline   time.Duration
	logger     *slog.Logger
}

func NewManualFallback(
	repo shared.ManualBookingRepository,
	notifier shared.ManualBookingNotifier,
	references *manual.ReferenceGenerator,
	clk clock.Clock,
	deadline time.Duration,
	logger *slog.Logger,
) *ManualFallback {
	return &ManualFallback{
		repo:       repo,
		notifier:   notifier,
		references: references,
		clock:      clk,
		deadline:   manual.ClampDeadline(deadline),
		logger:     logger,
	}
}

func (m *ManualFallback) Name() booking.Provenance {
	return booking.ProvenanceManual
}

func (m *ManualFallback) Attempt(ctx context.Context, req *booking.Request) *booking.AttemptResult {
	return m.Conclude(ctx, req, nil)
}

func (m *ManualFallback) Conclude(ctx context.Context, req *booking.Request, failures Failures) *booking.AttemptResult {
	now := m.clock.Now()
	reference := m.references.Generate(req.Museum(), req.VisitDate())
	record := manual.NewBooking(req, reference, failures.String(), now, m.deadline)

	logAttrs := []any{
		slog.String("manual_booking_id", record.ID().String()),
		slog.String("reference", reference),
		slog.Time("deadline", record.Deadline()),
	}

	storeCtx, cancel := context.WithTimeout(ctx, manualStoreTimeout)
	defer cancel()

	if err := m.repo.Create(storeCtx, record); err != nil {
		m.logger.Error("failed to persist manual booking", append(logAttrs, slog.String("error", err.Error()))...)
	}
	if m.notifier != nil {
		if err := m.notifier.ManualBookingCreated(storeCtx, record); err != nil {
			m.logger.Error("failed to notify operators", append(logAttrs, slog.String("error", err.Error()))...)
		}
	}

	m.logger.Warn("booking handed to manual operators", logAttrs...)

	return booking.NewManualSuccess(reference, record.ID(), record.Deadline(), record.Instructions(), now)
}
