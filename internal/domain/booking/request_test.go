//go:build unit

package booking_test

import (
	"testing"

	"museum-booking/internal/domain/booking"
	"museum-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingRequestBuilder)
	errIs  error
}

func TestNewRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingRequestBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "张三", actual.VisitorName())
		assert.Equal(t, booking.IDTypeIDCard, actual.IDType())
		assert.Equal(t, booking.MuseumMain, actual.Museum())
		assert.Equal(t, "8:30-10:30", actual.TimeSlot().String())
		assert.Equal(t, 1, actual.VisitorCount())
	})

	t.Run("visitor count", func(t *testing.T) {
		five := make([]booking.VisitorParams, 5)
		six := make([]booking.VisitorParams, 6)
		for i := range six {
			six[i] = booking.VisitorParams{Name: "访客", IDNumber: builder.ValidIDNumberSecond}
			if i < 5 {
				five[i] = six[i]
			}
		}
		runCases(t, []testCase{
			{
				name:   "zero count means len(visitors)",
				mutate: func(b *builder.BookingRequestBuilder) { b.Count = 0 },
			},
			{
				name: "explicit count matching visitors",
				mutate: func(b *builder.BookingRequestBuilder) {
					b.Count = 5
					b.WithVisitors(five...)
				},
			},
			{
				name: "count above maximum",
				mutate: func(b *builder.BookingRequestBuilder) {
					b.Count = 6
					b.WithVisitors(six...)
				},
				errIs: booking.ErrVisitorCountRange,
			},
			{
				name:   "no visitors at all",
				mutate: func(b *builder.BookingRequestBuilder) { b.WithVisitors([]booking.VisitorParams{}...) },
				errIs:  booking.ErrVisitorCountRange,
			},
			{
				name:   "count does not match visitors",
				mutate: func(b *builder.BookingRequestBuilder) { b.Count = 2 },
				errIs:  booking.ErrVisitorCountMismatch,
			},
		})
	})

	t.Run("identity", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "bad checksum",
				mutate: func(b *builder.BookingRequestBuilder) { b.IDNumber = "610103199003071235" },
				errIs:  booking.ErrInvalidIDNumber,
			},
			{
				name: "passport skips checksum",
				mutate: func(b *builder.BookingRequestBuilder) {
					b.IDType = booking.IDTypePassport
					b.IDNumber = "E12345678"
				},
			},
			{
				name:   "unknown id type",
				mutate: func(b *builder.BookingRequestBuilder) { b.IDType = "license" },
				errIs:  booking.ErrInvalidIDType,
			},
			{
				name:   "blank visitor name",
				mutate: func(b *builder.BookingRequestBuilder) { b.VisitorName = "  " },
				errIs:  booking.ErrEmptyVisitorName,
			},
			{
				name: "companion with bad checksum",
				mutate: func(b *builder.BookingRequestBuilder) {
					b.WithVisitors(
						booking.VisitorParams{Name: "张三", IDNumber: builder.ValidIDNumber},
						booking.VisitorParams{Name: "李四", IDNumber: "440304198501010014"},
					)
				},
				errIs: booking.ErrInvalidIDNumber,
			},
		})
	})

	t.Run("museum, date and slot", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "qinhan museum",
				mutate: func(b *builder.BookingRequestBuilder) { b.Museum = booking.MuseumQinHan },
			},
			{
				name:   "unknown museum",
				mutate: func(b *builder.BookingRequestBuilder) { b.Museum = "louvre" },
				errIs:  booking.ErrInvalidMuseum,
			},
			{
				name:   "unparseable date",
				mutate: func(b *builder.BookingRequestBuilder) { b.VisitDate = "2025/01/01" },
				errIs:  booking.ErrInvalidVisitDate,
			},
			{
				name:   "reversed slot",
				mutate: func(b *builder.BookingRequestBuilder) { b.TimeSlot = "10:30-8:30" },
				errIs:  booking.ErrInvalidTimeSlot,
			},
			{
				name:   "slot with spaces",
				mutate: func(b *builder.BookingRequestBuilder) { b.TimeSlot = "13:00 - 15:00" },
			},
		})
	})

	t.Run("params round trip keeps normalized values", func(t *testing.T) {
		req, err := builder.NewBookingRequestBuilder().
			With(func(b *builder.BookingRequestBuilder) { b.IDNumber = "11010519491231002x" }).
			WithVisitors(booking.VisitorParams{Name: "张三", IDNumber: "11010519491231002x"}).
			BuildDomain()
		require.NoError(t, err)

		again, err := booking.NewRequest(req.Params())
		require.NoError(t, err)
		assert.Equal(t, builder.ValidIDNumberX, again.IDNumber())
		assert.Equal(t, req.Params(), again.Params())
	})
}

func TestParseTimeSlot(t *testing.T) {
	slot, err := booking.ParseTimeSlot("08:30-10:30")
	require.NoError(t, err)
	assert.Equal(t, "8:30-10:30", slot.String())
	assert.Equal(t, 8*60+30, slot.StartMinute())
	assert.Equal(t, 10*60+30, slot.EndMinute())

	for _, bad := range []string{"", "8:30", "25:00-26:00", "8:60-9:00", "9:00-9:00"} {
		_, err := booking.ParseTimeSlot(bad)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot, bad)
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingRequestBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
