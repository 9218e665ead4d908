//go:build e2e

package store_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/domain/verification"
	"museum-booking/internal/infra"
	"museum-booking/internal/infra/cache"
	"museum-booking/internal/infra/repository"
	"museum-booking/internal/usecase/shared"
	"museum-booking/tests/common/builder"
	"museum-booking/tests/common/dbtest"
	"museum-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.DiscardHandler)

type storeFactory func(t *testing.T) shared.VerificationRepository

func TestVerificationStores(t *testing.T) {
	pool := e2e.NewTestDatabase(t)
	redisCfg := e2e.NewTestRedis(t)
	client, cleanup, err := cache.Connect(redisCfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	stores := map[string]storeFactory{
		"postgres": func(t *testing.T) shared.VerificationRepository {
			dbtest.TruncateAll(t, pool)
			return repository.NewVerificationRepository(pool, discard)
		},
		"redis": func(t *testing.T) shared.VerificationRepository {
			return cache.NewVerificationStore(client, discard)
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			runVerificationContract(t, newStore)
		})
	}
}

// each case uses a fresh booking id so the Redis store needs no flush
func newRecord(t *testing.T) *verification.Record {
	t.Helper()
	rec, err := verification.NewRecord("SM"+uuid.NewString()[:8], "张三", builder.ValidIDNumber, booking.ProvenanceDirectAPI,
		time.Date(2025, 1, 1, 17, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return rec
}

func runVerificationContract(t *testing.T, newStore storeFactory) {
	at := time.Date(2025, 1, 1, 17, 0, 5, 0, time.UTC)

	t.Run("missing record is not found", func(t *testing.T) {
		store := newStore(t)
		_, err := store.FindByBookingID(t.Context(), "SM-missing")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("ensure is idempotent", func(t *testing.T) {
		store := newStore(t)
		rec := newRecord(t)
		require.NoError(t, store.Ensure(t.Context(), rec))
		require.NoError(t, store.Ensure(t.Context(), rec))

		got, err := store.FindByBookingID(t.Context(), rec.BookingID())
		require.NoError(t, err)
		assert.Equal(t, 0, got.Attempts())
		assert.False(t, got.Found())
		assert.Equal(t, booking.ProvenanceDirectAPI, got.Provenance())
		assert.Equal(t, builder.ValidIDNumber, got.IDNumber())
	})

	t.Run("found is sticky", func(t *testing.T) {
		store := newStore(t)
		rec := newRecord(t)

		got, err := store.RecordAttempt(t.Context(), rec, true, at)
		require.NoError(t, err)
		assert.True(t, got.Found())

		got, err = store.RecordAttempt(t.Context(), rec, false, at.Add(time.Second))
		require.NoError(t, err)
		assert.True(t, got.Found())
		assert.Equal(t, 2, got.Attempts())
		require.NotNil(t, got.LastAttemptAt())
		assert.True(t, got.LastAttemptAt().Equal(at.Add(time.Second)))
	})

	t.Run("concurrent attempts are all counted", func(t *testing.T) {
		store := newStore(t)
		rec := newRecord(t)
		const n = 20

		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.RecordAttempt(context.Background(), rec, i == 7, at)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := store.FindByBookingID(t.Context(), rec.BookingID())
		require.NoError(t, err)
		assert.Equal(t, n, got.Attempts())
		assert.True(t, got.Found())
	})
}
