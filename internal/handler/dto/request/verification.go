package request

import (
	"strings"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/usecase/shared"
)

type VerifyBookingRequest struct {
	BookingID   string `json:"bookingId" binding:"required"`
	VisitorName string `json:"visitorName" binding:"required"`
	IDNumber    string `json:"idNumber" binding:"required"`
}

func (r VerifyBookingRequest) ToTarget() shared.VerificationTarget {
	return shared.VerificationTarget{
		BookingID:   strings.TrimSpace(r.BookingID),
		VisitorName: strings.TrimSpace(r.VisitorName),
		IDNumber:    booking.NormalizeIDNumber(r.IDNumber),
	}
}
