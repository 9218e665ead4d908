//go:build unit || e2e

package builder

import (
	"time"

	"museum-booking/internal/domain/booking"
	reqdto "museum-booking/internal/handler/dto/request"
)

// Checksum-valid resident ID numbers for fixtures.
const (
	ValidIDNumber       = "610103199003071234"
	ValidIDNumberX      = "11010519491231002X"
	ValidIDNumberSecond = "610113200106154567"
	ValidIDNumberThird  = "440304198501010013"
)

type BookingRequestBuilder struct {
	VisitorName string
	IDNumber    string
	IDType      booking.IDType
	Contact     string
	Museum      booking.Museum
	VisitDate   string
	TimeSlot    string
	Count       int
	Visitors    []booking.VisitorParams
}

func NewBookingRequestBuilder() *BookingRequestBuilder {
	return &BookingRequestBuilder{
		VisitorName: "张三",
		IDNumber:    ValidIDNumber,
		IDType:      booking.IDTypeIDCard,
		Contact:     "13800000000",
		Museum:      booking.MuseumMain,
		VisitDate:   time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		TimeSlot:    "8:30-10:30",
	}
}

func (b *BookingRequestBuilder) With(mutate func(*BookingRequestBuilder)) *BookingRequestBuilder {
	mutate(b)
	return b
}

func (b *BookingRequestBuilder) WithVisitors(visitors ...booking.VisitorParams) *BookingRequestBuilder {
	b.Visitors = visitors
	return b
}

// Build methods
func (b *BookingRequestBuilder) BuildParams() booking.RequestParams {
	visitors := b.Visitors
	if visitors == nil {
		visitors = []booking.VisitorParams{{Name: b.VisitorName, IDNumber: b.IDNumber, IDType: b.IDType}}
	}
	return booking.RequestParams{
		VisitorName:  b.VisitorName,
		IDNumber:     b.IDNumber,
		IDType:       b.IDType,
		Contact:      b.Contact,
		Museum:       b.Museum,
		VisitDate:    b.VisitDate,
		TimeSlot:     b.TimeSlot,
		VisitorCount: b.Count,
		Visitors:     visitors,
	}
}

func (b *BookingRequestBuilder) BuildDomain() (*booking.Request, error) {
	return booking.NewRequest(b.BuildParams())
}

// MustBuildDomain panics on invalid fixtures.
func (b *BookingRequestBuilder) MustBuildDomain() *booking.Request {
	req, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return req
}

func (b *BookingRequestBuilder) BuildRequestDTO() reqdto.AttemptBookingRequest {
	dto := reqdto.AttemptBookingRequest{
		VisitorName:  b.VisitorName,
		IDNumber:     b.IDNumber,
		IDType:       b.IDType.String(),
		Contact:      b.Contact,
		Museum:       b.Museum.String(),
		VisitDate:    b.VisitDate,
		TimeSlot:     b.TimeSlot,
		VisitorCount: b.Count,
	}
	for _, v := range b.Visitors {
		dto.Visitors = append(dto.Visitors, reqdto.VisitorRequest{
			Name:     v.Name,
			IDNumber: v.IDNumber,
			IDType:   v.IDType.String(),
			Age:      v.Age,
		})
	}
	return dto
}
