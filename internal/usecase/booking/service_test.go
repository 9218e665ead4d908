//go:build unit

package booking_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"museum-booking/internal/domain/booking"
	vdomain "museum-booking/internal/domain/verification"
	"museum-booking/internal/pkg/errs"
	bookingusecase "museum-booking/internal/usecase/booking"
	"museum-booking/internal/usecase/shared"
	"museum-booking/tests/common/builder"
	bookingmock "museum-booking/tests/mock/booking"
	verificationmock "museum-booking/tests/mock/verification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var at = time.Date(2025, 1, 1, 17, 0, 2, 0, time.UTC)

func setup(t *testing.T) (*bookingmock.MockEscalator, *verificationmock.MockService, bookingusecase.Commands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	esc := bookingmock.NewMockEscalator(ctrl)
	svc := verificationmock.NewMockService(ctrl)
	return esc, svc, bookingusecase.NewCommands(esc, svc, time.Minute, slog.New(slog.DiscardHandler))
}

func TestAttemptBooking(t *testing.T) {
	params := builder.NewBookingRequestBuilder().BuildParams()

	t.Run("invalid request never reaches the engine", func(t *testing.T) {
		_, _, cmd := setup(t)
		bad := builder.NewBookingRequestBuilder().With(func(b *builder.BookingRequestBuilder) {
			b.IDNumber = "610103199003071235"
		}).BuildParams()

		_, err := cmd.AttemptBooking(context.Background(), bad)
		assert.True(t, errs.Is(err, errs.ErrInvalidBookingRequest))
		assert.ErrorIs(t, err, booking.ErrInvalidIDNumber)
	})

	t.Run("automated success is tracked and verified", func(t *testing.T) {
		esc, svc, cmd := setup(t)
		res := booking.NewSuccess(booking.ProvenanceDirectAPI, "SM123", "ABC", at)
		esc.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, req *booking.Request) (*booking.AttemptResult, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.Equal(t, "张三", req.VisitorName())
			return res, nil
		})

		want := shared.VerificationTarget{BookingID: "SM123", VisitorName: "张三", IDNumber: builder.ValidIDNumber}
		rec := vdomain.ReconstructRecord("SM123", "张三", builder.ValidIDNumber, booking.ProvenanceDirectAPI, true, 1, &at, at)
		gomock.InOrder(
			svc.EXPECT().Track(gomock.Any(), want, booking.ProvenanceDirectAPI).Return(nil),
			svc.EXPECT().Check(gomock.Any(), want).Return(rec),
		)

		out, err := cmd.AttemptBooking(context.Background(), params)
		require.NoError(t, err)
		assert.Same(t, res, out.Result)
		assert.Same(t, rec, out.Verification)
	})

	t.Run("track failure does not block verification", func(t *testing.T) {
		esc, svc, cmd := setup(t)
		esc.EXPECT().Run(gomock.Any(), gomock.Any()).Return(booking.NewSuccess(booking.ProvenanceBrowser, "SM9", "", at), nil)
		svc.EXPECT().Track(gomock.Any(), gomock.Any(), booking.ProvenanceBrowser).Return(errors.New("db down"))
		svc.EXPECT().Check(gomock.Any(), gomock.Any()).Return(vdomain.ReconstructRecord("SM9", "张三", builder.ValidIDNumber, "", false, 1, &at, at))

		out, err := cmd.AttemptBooking(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, vdomain.StatePending, out.Verification.State())
	})

	t.Run("manual result skips verification", func(t *testing.T) {
		esc, _, cmd := setup(t)
		esc.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(booking.NewManualSuccess("SM250101ABCD", uuid.New(), at.Add(30*time.Minute), []string{"step"}, at), nil)

		out, err := cmd.AttemptBooking(context.Background(), params)
		require.NoError(t, err)
		assert.True(t, out.Result.IsManual())
		assert.Nil(t, out.Verification)
	})

	t.Run("abandoned escalation is returned as is", func(t *testing.T) {
		esc, _, cmd := setup(t)
		esc.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, errs.Mark(context.DeadlineExceeded, errs.ErrOrchestrationAbandoned))

		_, err := cmd.AttemptBooking(context.Background(), params)
		assert.True(t, errs.Is(err, errs.ErrOrchestrationAbandoned))
	})
}
