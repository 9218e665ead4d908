package response

import (
	"time"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/domain/verification"
)

type VerificationResponse struct {
	BookingID     string     `json:"bookingId"`
	VisitorName   string     `json:"visitorName"`
	IDNumber      string     `json:"idNumber"`
	Provenance    string     `json:"provenance,omitempty"`
	Found         bool       `json:"found"`
	State         string     `json:"state"`
	Attempts      int        `json:"attempts"`
	LastAttemptAt *time.Time `json:"lastAttemptAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func FromVerificationRecord(r *verification.Record) *VerificationResponse {
	return &VerificationResponse{
		BookingID:     r.BookingID(),
		VisitorName:   r.VisitorName(),
		IDNumber:      booking.MaskedIDNumber(r.IDNumber()),
		Provenance:    r.Provenance().String(),
		Found:         r.Found(),
		State:         r.State().String(),
		Attempts:      r.Attempts(),
		LastAttemptAt: r.LastAttemptAt(),
		CreatedAt:     r.CreatedAt(),
	}
}
