package booking

import (
	"time"

	"github.com/google/uuid"
)

// AttemptResult is the terminal outcome of one strategy invocation. It is
// immutable once constructed.
type AttemptResult struct {
	success          bool
	bookingID        string
	confirmationCode string
	errorDetail      string
	provenance       Provenance
	attemptedAt      time.Time

	// set only by the manual fallback
	manualRecordID *uuid.UUID
	deadline       *time.Time
	instructions   []string
}

func NewSuccess(p Provenance, bookingID, confirmationCode string, at time.Time) *AttemptResult {
	return &AttemptResult{
		success:          true,
		bookingID:        bookingID,
		confirmationCode: confirmationCode,
		provenance:       p,
		attemptedAt:      at,
	}
}

func NewFailure(p Provenance, detail string, at time.Time) *AttemptResult {
	return &AttemptResult{
		success:     false,
		errorDetail: detail,
		provenance:  p,
		attemptedAt: at,
	}
}

func NewManualSuccess(reference string, recordID uuid.UUID, deadline time.Time, instructions []string, at time.Time) *AttemptResult {
	steps := make([]string, len(instructions))
	copy(steps, instructions)
	return &AttemptResult{
		success:        true,
		bookingID:      reference,
		provenance:     ProvenanceManual,
		attemptedAt:    at,
		manualRecordID: &recordID,
		deadline:       &deadline,
		instructions:   steps,
	}
}

func (r *AttemptResult) Success() bool            { return r.success }
func (r *AttemptResult) BookingID() string        { return r.bookingID }
func (r *AttemptResult) ConfirmationCode() string { return r.confirmationCode }
func (r *AttemptResult) ErrorDetail() string      { return r.errorDetail }
func (r *AttemptResult) Provenance() Provenance   { return r.provenance }
func (r *AttemptResult) AttemptedAt() time.Time   { return r.attemptedAt }
func (r *AttemptResult) IsManual() bool           { return r.provenance.IsManual() }

func (r *AttemptResult) ManualRecordID() *uuid.UUID {
	if r.manualRecordID == nil {
		return nil
	}
	id := *r.manualRecordID
	return &id
}

func (r *AttemptResult) Deadline() *time.Time {
	if r.deadline == nil {
		return nil
	}
	d := *r.deadline
	return &d
}

func (r *AttemptResult) Instructions() []string {
	out := make([]string, len(r.instructions))
	copy(out, r.instructions)
	return out
}

// NeedsVerification is true for automated successes, whose platform-side
// persistence is not guaranteed.
func (r *AttemptResult) NeedsVerification() bool {
	return r.success && !r.IsManual() && r.bookingID != ""
}
