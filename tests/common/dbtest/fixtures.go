//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TruncateAll empties every table the engine writes to.
func TruncateAll(t *testing.T, db DBLike) {
	t.Helper()

	_, err := db.Exec(context.Background(), "TRUNCATE manual_bookings, booking_verifications")
	require.NoError(t, err)
}

func CountManualBookings(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM manual_bookings").Scan(&n)
	require.NoError(t, err)
	return n
}

func VerificationAttempts(t *testing.T, db DBLike, bookingID string) (attempts int, found bool) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT attempts, found FROM booking_verifications WHERE booking_id = $1", bookingID).Scan(&attempts, &found)
	require.NoError(t, err)
	return attempts, found
}
