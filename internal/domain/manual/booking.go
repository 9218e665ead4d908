package manual

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"museum-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCompleted    = errors.New("manual booking already completed")
	ErrEmptyOfficialRef    = errors.New("official reference is required")
	ErrInvalidStatus       = errors.New("invalid manual booking status")
	MinDeadline            = 5 * time.Minute
	MaxDeadline            = 30 * time.Minute
	officialRefMaxLength   = 64
	deadlineDisplayLayout  = "2006-01-02 15:04"
	visitorLineIndentation = "   - "
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// ClampDeadline keeps operator deadlines inside the 5 to 30 minute band.
func ClampDeadline(d time.Duration) time.Duration {
	return min(max(d, MinDeadline), MaxDeadline)
}

// Booking is an instruction packet handed to a human operator when every
// automated tier failed. It moves from pending to completed exactly once.
type Booking struct {
	id                uuid.UUID
	request           booking.RequestParams
	reference         string
	instructions      []string
	failureSummary    string
	status            Status
	officialReference string
	deadline          time.Time
	createdAt         time.Time
	completedAt       *time.Time
}

func NewBooking(req *booking.Request, reference, failureSummary string, now time.Time, deadline time.Duration) *Booking {
	id := uuid.New()
	due := now.Add(ClampDeadline(deadline))
	return &Booking{
		id:             id,
		request:        req.Params(),
		reference:      reference,
		instructions:   BuildInstructions(id, req, due),
		failureSummary: failureSummary,
		status:         StatusPending,
		deadline:       due,
		createdAt:      now,
	}
}

func ReconstructBooking(
	id uuid.UUID,
	request booking.RequestParams,
	reference string,
	instructions []string,
	failureSummary string,
	status Status,
	officialReference string,
	deadline, createdAt time.Time,
	completedAt *time.Time,
) *Booking {
	return &Booking{
		id:                id,
		request:           request,
		reference:         reference,
		instructions:      instructions,
		failureSummary:    failureSummary,
		status:            status,
		officialReference: officialReference,
		deadline:          deadline,
		createdAt:         createdAt,
		completedAt:       completedAt,
	}
}

func (b *Booking) Complete(officialRef string, at time.Time) error {
	if b.status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	ref, err := NormalizeOfficialReference(officialRef)
	if err != nil {
		return err
	}
	b.status = StatusCompleted
	b.officialReference = ref
	t := at
	b.completedAt = &t
	return nil
}

func NormalizeOfficialReference(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || len(ref) > officialRefMaxLength {
		return "", ErrEmptyOfficialRef
	}
	return ref, nil
}

func (b *Booking) IsOverdue(now time.Time) bool {
	return b.status == StatusPending && now.After(b.deadline)
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) Request() booking.RequestParams { return b.request }
func (b *Booking) Reference() string              { return b.reference }
func (b *Booking) FailureSummary() string         { return b.failureSummary }
func (b *Booking) Status() Status                 { return b.status }
func (b *Booking) OfficialReference() string      { return b.officialReference }
func (b *Booking) Deadline() time.Time            { return b.deadline }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }

func (b *Booking) Instructions() []string {
	out := make([]string, len(b.instructions))
	copy(out, b.instructions)
	return out
}

func (b *Booking) CompletedAt() *time.Time {
	if b.completedAt == nil {
		return nil
	}
	t := *b.completedAt
	return &t
}

func BuildInstructions(id uuid.UUID, req *booking.Request, deadline time.Time) []string {
	var visitors strings.Builder
	for _, v := range req.Visitors() {
		visitors.WriteString("\n")
		visitors.WriteString(visitorLineIndentation)
		visitors.WriteString(fmt.Sprintf("%s (%s %s)", v.Name(), v.IDType(), booking.MaskedIDNumber(v.IDNumber())))
	}

	return []string{
		fmt.Sprintf("1. Open the official booking page of %s.", req.Museum().DisplayName()),
		fmt.Sprintf("2. Choose visit date %s and time slot %s.", req.VisitDateString(), req.TimeSlot()),
		fmt.Sprintf("3. Register %d visitor(s) under %s; full ID numbers are in the request snapshot:%s",
			req.VisitorCount(), req.VisitorName(), visitors.String()),
		fmt.Sprintf("4. Submit before %s and note the official booking number.", deadline.Format(deadlineDisplayLayout)),
		fmt.Sprintf("5. Backfill it with PATCH /api/manual-bookings/%s/complete.", id),
	}
}
