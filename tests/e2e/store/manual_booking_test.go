//go:build e2e

package store_test

import (
	"testing"
	"time"

	"museum-booking/internal/domain/manual"
	"museum-booking/internal/infra"
	"museum-booking/internal/infra/repository"
	"museum-booking/internal/usecase/shared"
	"museum-booking/tests/common/builder"
	"museum-booking/tests/common/dbtest"
	"museum-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualBookingRepository(t *testing.T) {
	pool := e2e.NewTestDatabase(t)
	repo := repository.NewManualBookingRepository(pool, discard)

	t.Run("create and read back", func(t *testing.T) {
		dbtest.TruncateAll(t, pool)
		b := builder.NewManualBookingBuilder().BuildDomain()
		require.NoError(t, repo.Create(t.Context(), b))

		got, err := repo.FindByID(t.Context(), b.ID())
		require.NoError(t, err)
		assert.Equal(t, b.Reference(), got.Reference())
		assert.Equal(t, manual.StatusPending, got.Status())
		assert.True(t, b.Deadline().Equal(got.Deadline()))
		if diff := cmp.Diff(b.Instructions(), got.Instructions()); diff != "" {
			t.Errorf("instructions mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(b.Request(), got.Request()); diff != "" {
			t.Errorf("request snapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := repo.FindByID(t.Context(), uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("list filters by status and keeps newest first", func(t *testing.T) {
		dbtest.TruncateAll(t, pool)
		base := time.Date(2025, 1, 1, 17, 1, 0, 0, time.UTC)
		var ids []uuid.UUID
		for i := range 3 {
			b := builder.NewManualBookingBuilder().With(func(mb *builder.ManualBookingBuilder) {
				mb.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			}).BuildDomain()
			require.NoError(t, repo.Create(t.Context(), b))
			ids = append(ids, b.ID())
		}
		_, err := repo.Update(t.Context(), ids[0], func(b *manual.Booking) error {
			return b.Complete("OFFICIAL-1", base.Add(time.Hour))
		})
		require.NoError(t, err)

		pending := manual.StatusPending
		got, err := repo.List(t.Context(), shared.ManualBookingFilter{Status: &pending, Limit: 10})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, ids[2], got[0].ID())
		assert.Equal(t, ids[1], got[1].ID())

		all, err := repo.List(t.Context(), shared.ManualBookingFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("update rolls back when the mutation fails", func(t *testing.T) {
		dbtest.TruncateAll(t, pool)
		b := builder.NewManualBookingBuilder().BuildDomain()
		require.NoError(t, repo.Create(t.Context(), b))

		at := time.Date(2025, 1, 1, 18, 0, 0, 0, time.UTC)
		_, err := repo.Update(t.Context(), b.ID(), func(mb *manual.Booking) error { return mb.Complete("REF-1", at) })
		require.NoError(t, err)

		_, err = repo.Update(t.Context(), b.ID(), func(mb *manual.Booking) error { return mb.Complete("REF-2", at) })
		assert.ErrorIs(t, err, manual.ErrAlreadyCompleted)

		got, err := repo.FindByID(t.Context(), b.ID())
		require.NoError(t, err)
		assert.Equal(t, "REF-1", got.OfficialReference())
	})
}
