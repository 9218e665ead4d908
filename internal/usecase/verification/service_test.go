//go:build unit

package verification_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"museum-booking/internal/domain/booking"
	vdomain "museum-booking/internal/domain/verification"
	"museum-booking/internal/infra"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/errs"
	"museum-booking/internal/usecase/shared"
	"museum-booking/internal/usecase/verification"
	"museum-booking/tests/common/builder"
	sharedmock "museum-booking/tests/mock/shared"
	verificationmock "museum-booking/tests/mock/verification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 1, 1, 17, 0, 10, 0, time.UTC)

var target = shared.VerificationTarget{
	BookingID:   "SM123",
	VisitorName: "张三",
	IDNumber:    builder.ValidIDNumber,
}

type fixture struct {
	lookup   *verificationmock.MockPlatformLookup
	repo     *sharedmock.MockVerificationRepository
	recorder *verificationmock.MockRecorder
	service  verification.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		lookup:   verificationmock.NewMockPlatformLookup(ctrl),
		repo:     sharedmock.NewMockVerificationRepository(ctrl),
		recorder: verificationmock.NewMockRecorder(ctrl),
	}
	f.recorder.EXPECT().ObserveVerification(gomock.Any()).AnyTimes()
	f.service = verification.NewService(f.lookup, f.repo, clock.NewMockClock(now), time.Second, slog.New(slog.DiscardHandler), f.recorder)
	return f
}

// memoryStore mimics the atomic repository contract for sequential checks.
func memoryStore(f *fixture) {
	var stored *vdomain.Record
	f.repo.EXPECT().RecordAttempt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *vdomain.Record, found bool, at time.Time) (*vdomain.Record, error) {
			if stored == nil {
				stored = rec
			}
			stored.RecordAttempt(found, at)
			return vdomain.ReconstructRecord(stored.BookingID(), stored.VisitorName(), stored.IDNumber(),
				stored.Provenance(), stored.Found(), stored.Attempts(), stored.LastAttemptAt(), stored.CreatedAt()), nil
		}).AnyTimes()
}

func TestCheck(t *testing.T) {
	t.Run("repeated checks count every attempt", func(t *testing.T) {
		f := newFixture(t)
		memoryStore(f)
		f.lookup.EXPECT().Lookup(gomock.Any(), target).Return(false).Times(2)

		f.service.Check(context.Background(), target)
		rec := f.service.Check(context.Background(), target)

		assert.Equal(t, 2, rec.Attempts())
		assert.Equal(t, vdomain.StatePending, rec.State())
	})

	t.Run("found stays sticky after a later miss", func(t *testing.T) {
		f := newFixture(t)
		memoryStore(f)
		gomock.InOrder(
			f.lookup.EXPECT().Lookup(gomock.Any(), target).Return(true),
			f.lookup.EXPECT().Lookup(gomock.Any(), target).Return(false),
		)

		assert.True(t, f.service.Verify(context.Background(), target))
		assert.True(t, f.service.Verify(context.Background(), target))
	})

	t.Run("store failure still reports the lookup result", func(t *testing.T) {
		f := newFixture(t)
		f.lookup.EXPECT().Lookup(gomock.Any(), target).Return(true)
		f.repo.EXPECT().RecordAttempt(gomock.Any(), gomock.Any(), true, now).Return(nil, errors.New("redis down"))

		rec := f.service.Check(context.Background(), target)
		assert.True(t, rec.Found())
		assert.Equal(t, 1, rec.Attempts())
	})

	t.Run("lookup receives a bounded context", func(t *testing.T) {
		f := newFixture(t)
		memoryStore(f)
		f.lookup.EXPECT().Lookup(gomock.Any(), target).DoAndReturn(func(ctx context.Context, _ shared.VerificationTarget) bool {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return false
		})

		f.service.Check(context.Background(), target)
	})

	t.Run("empty booking id skips lookup", func(t *testing.T) {
		f := newFixture(t)

		rec := f.service.Check(context.Background(), shared.VerificationTarget{VisitorName: "张三"})
		assert.False(t, rec.Found())
		assert.Zero(t, rec.Attempts())
	})
}

func TestTrack(t *testing.T) {
	t.Run("ensures a pending record", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Ensure(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec *vdomain.Record) error {
			assert.Equal(t, "SM123", rec.BookingID())
			assert.Equal(t, booking.ProvenanceEnhancedAPI, rec.Provenance())
			assert.Zero(t, rec.Attempts())
			return nil
		})

		require.NoError(t, f.service.Track(context.Background(), target, booking.ProvenanceEnhancedAPI))
	})

	t.Run("rejects empty booking id", func(t *testing.T) {
		f := newFixture(t)

		err := f.service.Track(context.Background(), shared.VerificationTarget{}, booking.ProvenanceDirectAPI)
		assert.True(t, errs.Is(err, errs.ErrInvalidBookingRequest))
	})

	t.Run("marks store failures", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

		err := f.service.Track(context.Background(), target, booking.ProvenanceDirectAPI)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestGet(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().FindByBookingID(gomock.Any(), "SM404").
			Return(nil, infra.WrapRepoErr(slog.New(slog.DiscardHandler), infra.KindNotFound, "verification record not found", nil))

		_, err := f.service.Get(context.Background(), "SM404")
		assert.True(t, errs.Is(err, errs.ErrVerificationNotFound))
	})

	t.Run("found", func(t *testing.T) {
		f := newFixture(t)
		want := vdomain.ReconstructRecord("SM123", "张三", builder.ValidIDNumber, booking.ProvenanceDirectAPI, true, 3, &now, now)
		f.repo.EXPECT().FindByBookingID(gomock.Any(), "SM123").Return(want, nil)

		got, err := f.service.Get(context.Background(), "SM123")
		require.NoError(t, err)
		assert.Same(t, want, got)
	})
}
