package verification

import (
	"errors"
	"strings"
	"time"

	"museum-booking/internal/domain/booking"
)

var ErrEmptyBookingID = errors.New("booking id is required")

type State string

const (
	StatePending  State = "pending"
	StateVerified State = "verified"
)

func (s State) String() string {
	return string(s)
}

// Record tracks whether a claimed booking has been seen on the platform.
// Attempts only grow and Found never reverts to false.
type Record struct {
	bookingID     string
	visitorName   string
	idNumber      string
	provenance    booking.Provenance
	found         bool
	attempts      int
	lastAttemptAt *time.Time
	createdAt     time.Time
}

func NewRecord(bookingID, visitorName, idNumber string, provenance booking.Provenance, createdAt time.Time) (*Record, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrEmptyBookingID
	}
	return &Record{
		bookingID:   bookingID,
		visitorName: strings.TrimSpace(visitorName),
		idNumber:    booking.NormalizeIDNumber(idNumber),
		provenance:  provenance,
		createdAt:   createdAt,
	}, nil
}

func ReconstructRecord(
	bookingID, visitorName, idNumber string,
	provenance booking.Provenance,
	found bool,
	attempts int,
	lastAttemptAt *time.Time,
	createdAt time.Time,
) *Record {
	return &Record{
		bookingID:     bookingID,
		visitorName:   visitorName,
		idNumber:      idNumber,
		provenance:    provenance,
		found:         found,
		attempts:      attempts,
		lastAttemptAt: lastAttemptAt,
		createdAt:     createdAt,
	}
}

func (r *Record) RecordAttempt(found bool, at time.Time) {
	r.attempts++
	r.found = r.found || found
	t := at
	r.lastAttemptAt = &t
}

func (r *Record) State() State {
	if r.found {
		return StateVerified
	}
	return StatePending
}

func (r *Record) BookingID() string              { return r.bookingID }
func (r *Record) VisitorName() string            { return r.visitorName }
func (r *Record) IDNumber() string               { return r.idNumber }
func (r *Record) Provenance() booking.Provenance { return r.provenance }
func (r *Record) Found() bool                    { return r.found }
func (r *Record) Attempts() int                  { return r.attempts }
func (r *Record) CreatedAt() time.Time           { return r.createdAt }

func (r *Record) LastAttemptAt() *time.Time {
	if r.lastAttemptAt == nil {
		return nil
	}
	t := *r.lastAttemptAt
	return &t
}
