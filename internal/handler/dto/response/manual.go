package response

import (
	"time"

	"github.com/google/uuid"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/domain/manual"
)

type ManualVisitor struct {
	Name     string `json:"name"`
	IDNumber string `json:"idNumber"`
	IDType   string `json:"idType"`
}

type ManualBookingResponse struct {
	ID                uuid.UUID       `json:"id"`
	Reference         string          `json:"reference"`
	Status            string          `json:"status"`
	Museum            string          `json:"museum"`
	VisitDate         string          `json:"visitDate"`
	TimeSlot          string          `json:"timeSlot"`
	VisitorName       string          `json:"visitorName"`
	IDNumber          string          `json:"idNumber"`
	Contact           string          `json:"contact,omitempty"`
	Visitors          []ManualVisitor `json:"visitors"`
	Instructions      []string        `json:"instructions"`
	FailureSummary    string          `json:"failureSummary"`
	OfficialReference string          `json:"officialReference,omitempty"`
	Deadline          time.Time       `json:"deadline"`
	Overdue           bool            `json:"overdue"`
	CreatedAt         time.Time       `json:"createdAt"`
	CompletedAt       *time.Time      `json:"completedAt,omitempty"`
}

type ManualBookingListResponse struct {
	Items []*ManualBookingResponse `json:"items"`
	Count int                      `json:"count"`
}

// FromManualBooking masks identity numbers; operators read the full values
// from the platform's own confirmation flow.
func FromManualBooking(b *manual.Booking, now time.Time) *ManualBookingResponse {
	req := b.Request()
	visitors := make([]ManualVisitor, len(req.Visitors))
	for i, v := range req.Visitors {
		visitors[i] = ManualVisitor{
			Name:     v.Name,
			IDNumber: booking.MaskedIDNumber(v.IDNumber),
			IDType:   v.IDType.String(),
		}
	}
	return &ManualBookingResponse{
		ID:                b.ID(),
		Reference:         b.Reference(),
		Status:            b.Status().String(),
		Museum:            req.Museum.String(),
		VisitDate:         req.VisitDate,
		TimeSlot:          req.TimeSlot,
		VisitorName:       req.VisitorName,
		IDNumber:          booking.MaskedIDNumber(req.IDNumber),
		Contact:           req.Contact,
		Visitors:          visitors,
		Instructions:      b.Instructions(),
		FailureSummary:    b.FailureSummary(),
		OfficialReference: b.OfficialReference(),
		Deadline:          b.Deadline(),
		Overdue:           b.IsOverdue(now),
		CreatedAt:         b.CreatedAt(),
		CompletedAt:       b.CompletedAt(),
	}
}

func FromManualBookings(bs []*manual.Booking, now time.Time) *ManualBookingListResponse {
	items := make([]*ManualBookingResponse, 0, len(bs))
	for _, b := range bs {
		items = append(items, FromManualBooking(b, now))
	}
	return &ManualBookingListResponse{Items: items, Count: len(items)}
}
