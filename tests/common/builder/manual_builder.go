//go:build unit || e2e

package builder

import (
	"time"

	"museum-booking/internal/domain/manual"
)

type ManualBookingBuilder struct {
	Request        *BookingRequestBuilder
	Reference      string
	FailureSummary string
	CreatedAt      time.Time
	Deadline       time.Duration
}

func NewManualBookingBuilder() *ManualBookingBuilder {
	return &ManualBookingBuilder{
		Request:        NewBookingRequestBuilder(),
		Reference:      "SM250101ABCD",
		FailureSummary: "direct_api: all endpoints failed; browser_automation: booking form not found",
		CreatedAt:      time.Date(2025, 1, 1, 17, 1, 0, 0, time.UTC),
		Deadline:       30 * time.Minute,
	}
}

func (b *ManualBookingBuilder) With(mutate func(*ManualBookingBuilder)) *ManualBookingBuilder {
	mutate(b)
	return b
}

func (b *ManualBookingBuilder) BuildDomain() *manual.Booking {
	return manual.NewBooking(b.Request.MustBuildDomain(), b.Reference, b.FailureSummary, b.CreatedAt, b.Deadline)
}

func (b *ManualBookingBuilder) BuildCompleted(officialRef string, at time.Time) *manual.Booking {
	mb := b.BuildDomain()
	if err := mb.Complete(officialRef, at); err != nil {
		panic(err)
	}
	return mb
}
