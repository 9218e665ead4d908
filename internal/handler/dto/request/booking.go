package request

import (
	"museum-booking/internal/domain/booking"
)

type VisitorRequest struct {
	Name     string `json:"name" binding:"required"`
	IDNumber string `json:"idNumber" binding:"required"`
	IDType   string `json:"idType,omitempty"`
	Age      *int   `json:"age,omitempty"`
}

type AttemptBookingRequest struct {
	VisitorName  string           `json:"visitorName" binding:"required"`
	IDNumber     string           `json:"idNumber" binding:"required"`
	IDType       string           `json:"idType,omitempty"`
	Contact      string           `json:"contact,omitempty"`
	Museum       string           `json:"museum" binding:"required"`
	VisitDate    string           `json:"visitDate" binding:"required"`
	TimeSlot     string           `json:"timeSlot" binding:"required"`
	VisitorCount int              `json:"visitorCount,omitempty"`
	Visitors     []VisitorRequest `json:"visitors,omitempty" binding:"omitempty,max=5,dive"`
}

// ToParams maps the body onto booking params. Without a visitor list the
// primary visitor is the only visitor.
func (r AttemptBookingRequest) ToParams() booking.RequestParams {
	visitors := make([]booking.VisitorParams, 0, len(r.Visitors))
	for _, v := range r.Visitors {
		visitors = append(visitors, booking.VisitorParams{
			Name:     v.Name,
			IDNumber: v.IDNumber,
			IDType:   booking.IDType(v.IDType),
			Age:      v.Age,
		})
	}
	if len(visitors) == 0 {
		visitors = append(visitors, booking.VisitorParams{
			Name:     r.VisitorName,
			IDNumber: r.IDNumber,
			IDType:   booking.IDType(r.IDType),
		})
	}
	return booking.RequestParams{
		VisitorName:  r.VisitorName,
		IDNumber:     r.IDNumber,
		IDType:       booking.IDType(r.IDType),
		Contact:      r.Contact,
		Museum:       booking.Museum(r.Museum),
		VisitDate:    r.VisitDate,
		TimeSlot:     r.TimeSlot,
		VisitorCount: r.VisitorCount,
		Visitors:     visitors,
	}
}
