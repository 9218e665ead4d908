package verification

//go:generate mockgen -source=service.go -destination=../../../tests/mock/verification/service.go -package=verificationmock

import (
	"context"
	"log/slog"
	"time"

	"museum-booking/internal/domain/booking"
	vdomain "museum-booking/internal/domain/verification"
	"museum-booking/internal/infra"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/errs"
	"museum-booking/internal/usecase/shared"
)

// PlatformLookup asks the platform whether a booking exists. It reports
// false for every failure mode.
type PlatformLookup interface {
	Lookup(ctx context.Context, target shared.VerificationTarget) bool
}

type Recorder interface {
	ObserveVerification(found bool)
}

type Service interface {
	// Verify reports the stored, sticky found state after one more lookup.
	Verify(ctx context.Context, target shared.VerificationTarget) bool
	Check(ctx context.Context, target shared.VerificationTarget) *vdomain.Record
	Track(ctx context.Context, target shared.VerificationTarget, provenance booking.Provenance) error
	Get(ctx context.Context, bookingID string) (*vdomain.Record, error)
}

type serviceImpl struct {
	lookup   PlatformLookup
	repo     shared.VerificationRepository
	clock    clock.Clock
	timeout  time.Duration
	logger   *slog.Logger
	recorder Recorder
}

func NewService(
	lookup PlatformLookup,
	repo shared.VerificationRepository,
	clk clock.Clock,
	timeout time.Duration,
	logger *slog.Logger,
	recorder Recorder,
) Service {
	return &serviceImpl{
		lookup:   lookup,
		repo:     repo,
		clock:    clk,
		timeout:  timeout,
		logger:   logger,
		recorder: recorder,
	}
}

func (s *serviceImpl) Verify(ctx context.Context, target shared.VerificationTarget) bool {
	return s.Check(ctx, target).Found()
}

func (s *serviceImpl) Check(ctx context.Context, target shared.VerificationTarget) *vdomain.Record {
	rec, err := vdomain.NewRecord(target.BookingID, target.VisitorName, target.IDNumber, "", s.clock.Now())
	if err != nil {
		s.logger.Warn("verification skipped", slog.String("error", err.Error()))
		return vdomain.ReconstructRecord(target.BookingID, target.VisitorName, target.IDNumber, "", false, 0, nil, s.clock.Now())
	}

	lookupCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	found := s.lookup.Lookup(lookupCtx, target)
	if s.recorder != nil {
		s.recorder.ObserveVerification(found)
	}

	now := s.clock.Now()
	stored, err := s.repo.RecordAttempt(ctx, rec, found, now)
	if err != nil {
		s.logger.Error("failed to record verification attempt",
			slog.String("booking_id", rec.BookingID()),
			slog.Bool("found", found),
			slog.String("error", err.Error()))
		rec.RecordAttempt(found, now)
		return rec
	}

	s.logger.Info("verification attempt recorded",
		slog.String("booking_id", stored.BookingID()),
		slog.Bool("found", stored.Found()),
		slog.Int("attempts", stored.Attempts()))
	return stored
}

func (s *serviceImpl) Track(ctx context.Context, target shared.VerificationTarget, provenance booking.Provenance) error {
	rec, err := vdomain.NewRecord(target.BookingID, target.VisitorName, target.IDNumber, provenance, s.clock.Now())
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidBookingRequest)
	}
	if err := s.repo.Ensure(ctx, rec); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (s *serviceImpl) Get(ctx context.Context, bookingID string) (*vdomain.Record, error) {
	rec, err := s.repo.FindByBookingID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVerificationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rec, nil
}
