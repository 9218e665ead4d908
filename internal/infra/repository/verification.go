package repository

import (
	"context"
	"log/slog"
	"time"

	"museum-booking/internal/domain/verification"
	"museum-booking/internal/infra"
	"museum-booking/internal/infra/db"
	"museum-booking/internal/infra/repository/converter"
	"museum-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
)

const verificationColumns = `booking_id, visitor_name, id_number, provenance, found, attempts, last_attempt_at, created_at`

const (
	ensureVerificationSQL = `INSERT INTO booking_verifications (booking_id, visitor_name, id_number, provenance, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (booking_id) DO UPDATE
SET provenance = CASE WHEN booking_verifications.provenance = '' THEN EXCLUDED.provenance ELSE booking_verifications.provenance END`

	// one statement so concurrent attempts never lose an increment
	recordVerificationAttemptSQL = `INSERT INTO booking_verifications
    (booking_id, visitor_name, id_number, provenance, found, attempts, last_attempt_at, created_at)
VALUES ($1, $2, $3, $4, $5, 1, $6, $6)
ON CONFLICT (booking_id) DO UPDATE
SET attempts = booking_verifications.attempts + 1,
    found = booking_verifications.found OR EXCLUDED.found,
    last_attempt_at = EXCLUDED.last_attempt_at
RETURNING ` + verificationColumns

	selectVerificationSQL = `SELECT ` + verificationColumns + ` FROM booking_verifications WHERE booking_id = $1`
)

type VerificationRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewVerificationRepository(conn db.DBTX, logger *slog.Logger) *VerificationRepository {
	return &VerificationRepository{db: conn, logger: logger}
}

func (r *VerificationRepository) Ensure(ctx context.Context, rec *verification.Record) error {
	_, err := r.db.Exec(ctx, ensureVerificationSQL,
		rec.BookingID(), rec.VisitorName(), rec.IDNumber(), rec.Provenance().String(),
		pgconv.TimeToPgtype(rec.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to ensure verification record", err)
	}
	return nil
}

func (r *VerificationRepository) RecordAttempt(ctx context.Context, rec *verification.Record, found bool, at time.Time) (*verification.Record, error) {
	row := r.db.QueryRow(ctx, recordVerificationAttemptSQL,
		rec.BookingID(), rec.VisitorName(), rec.IDNumber(), rec.Provenance().String(),
		found, pgconv.TimeToPgtype(at),
	)
	return r.scan(row)
}

func (r *VerificationRepository) FindByBookingID(ctx context.Context, bookingID string) (*verification.Record, error) {
	return r.scan(r.db.QueryRow(ctx, selectVerificationSQL, bookingID))
}

func (r *VerificationRepository) scan(row pgx.Row) (*verification.Record, error) {
	var v converter.VerificationRow
	err := row.Scan(&v.BookingID, &v.VisitorName, &v.IDNumber, &v.Provenance, &v.Found, &v.Attempts, &v.LastAttemptAt, &v.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "verification record not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan verification record", err)
	}
	return converter.VerificationFromRow(v), nil
}
