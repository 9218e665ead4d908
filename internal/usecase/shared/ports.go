package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

import (
	"context"
	"time"

	"museum-booking/internal/domain/manual"
	"museum-booking/internal/domain/verification"

	"github.com/google/uuid"
)

type ManualBookingFilter struct {
	Status *manual.Status
	Limit  int
}

// ManualBookingRepository is the append-only operator instruction log.
// Update loads, mutates and stores a record atomically.
type ManualBookingRepository interface {
	Create(ctx context.Context, b *manual.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*manual.Booking, error)
	List(ctx context.Context, filter ManualBookingFilter) ([]*manual.Booking, error)
	Update(ctx context.Context, id uuid.UUID, mutate func(*manual.Booking) error) (*manual.Booking, error)
}

// VerificationTarget identifies what is being looked up on the platform.
type VerificationTarget struct {
	BookingID   string
	VisitorName string
	IDNumber    string
}

// VerificationRepository stores per-booking attempt counters. RecordAttempt
// must be atomic per booking ID: attempts grow by one and found is sticky.
type VerificationRepository interface {
	Ensure(ctx context.Context, rec *verification.Record) error
	RecordAttempt(ctx context.Context, rec *verification.Record, found bool, at time.Time) (*verification.Record, error)
	FindByBookingID(ctx context.Context, bookingID string) (*verification.Record, error)
}

type ManualBookingNotifier interface {
	ManualBookingCreated(ctx context.Context, b *manual.Booking) error
}
