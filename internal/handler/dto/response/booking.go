package response

import (
	"time"

	"github.com/google/uuid"

	"museum-booking/internal/domain/timing"
	bookingusecase "museum-booking/internal/usecase/booking"
)

type AttemptResultResponse struct {
	Success          bool                  `json:"success"`
	BookingID        string                `json:"bookingId,omitempty"`
	ConfirmationCode string                `json:"confirmationCode,omitempty"`
	ErrorDetail      string                `json:"errorDetail,omitempty"`
	Provenance       string                `json:"provenance"`
	AttemptedAt      time.Time             `json:"attemptedAt"`
	Manual           *ManualHandoff        `json:"manual,omitempty"`
	Verification     *VerificationResponse `json:"verification,omitempty"`
}

type ManualHandoff struct {
	ID           uuid.UUID `json:"id"`
	Deadline     time.Time `json:"deadline"`
	Instructions []string  `json:"instructions"`
}

func FromAttemptOutcome(o *bookingusecase.AttemptOutcome) *AttemptResultResponse {
	r := o.Result
	resp := &AttemptResultResponse{
		Success:          r.Success(),
		BookingID:        r.BookingID(),
		ConfirmationCode: r.ConfirmationCode(),
		ErrorDetail:      r.ErrorDetail(),
		Provenance:       r.Provenance().String(),
		AttemptedAt:      r.AttemptedAt(),
	}
	if id := r.ManualRecordID(); id != nil {
		handoff := &ManualHandoff{ID: *id, Instructions: r.Instructions()}
		if d := r.Deadline(); d != nil {
			handoff.Deadline = *d
		}
		resp.Manual = handoff
	}
	if o.Verification != nil {
		resp.Verification = FromVerificationRecord(o.Verification)
	}
	return resp
}

type TimingResponse struct {
	Now            time.Time `json:"now"`
	ReleaseAt      time.Time `json:"releaseAt"`
	WindowClosesAt time.Time `json:"windowClosesAt"`
	NextOpening    time.Time `json:"nextOpening"`
	Phase          string    `json:"phase"`
	CanBook        bool      `json:"canBook"`
	NextRelease    string    `json:"nextRelease"`
}

func FromTimingStatus(st timing.Status) *TimingResponse {
	return &TimingResponse{
		Now:            st.Now,
		ReleaseAt:      st.ReleaseAt,
		WindowClosesAt: st.WindowClosesAt,
		NextOpening:    st.NextOpening(),
		Phase:          st.Phase.String(),
		CanBook:        st.CanBook,
		NextRelease:    st.NextRelease,
	}
}
