package repository

import (
	"context"
	"log/slog"

	"museum-booking/internal/domain/manual"
	"museum-booking/internal/infra"
	"museum-booking/internal/infra/db"
	"museum-booking/internal/infra/repository/converter"
	"museum-booking/internal/pkg/pgconv"
	"museum-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const manualBookingColumns = `id, reference, museum, visit_date, time_slot, visitor_name, request, instructions,
	failure_summary, status, official_reference, deadline, created_at, completed_at`

const (
	insertManualBookingSQL = `INSERT INTO manual_bookings (` + manualBookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	selectManualBookingSQL = `SELECT ` + manualBookingColumns + ` FROM manual_bookings WHERE id = $1`

	selectManualBookingForUpdateSQL = selectManualBookingSQL + ` FOR UPDATE`

	listManualBookingsSQL = `SELECT ` + manualBookingColumns + ` FROM manual_bookings
WHERE ($1::text IS NULL OR status = $1)
ORDER BY created_at DESC
LIMIT $2`

	updateManualBookingSQL = `UPDATE manual_bookings
SET status = $2, official_reference = $3, completed_at = $4
WHERE id = $1`
)

type ManualBookingRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewManualBookingRepository(pool *pgxpool.Pool, logger *slog.Logger) *ManualBookingRepository {
	return &ManualBookingRepository{pool: pool, logger: logger}
}

func (r *ManualBookingRepository) Create(ctx context.Context, b *manual.Booking) error {
	row, err := converter.ManualBookingToRow(b)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode manual booking", err)
	}

	_, err = r.pool.Exec(ctx, insertManualBookingSQL,
		row.ID, row.Reference, row.Museum, row.VisitDate, row.TimeSlot, row.VisitorName,
		row.Request, row.Instructions, row.FailureSummary, row.Status, row.OfficialReference,
		row.Deadline, row.CreatedAt, row.CompletedAt,
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "manual booking already exists", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create manual booking", err)
	}
	return nil
}

func (r *ManualBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*manual.Booking, error) {
	return r.findOne(ctx, r.pool, selectManualBookingSQL, id)
}

func (r *ManualBookingRepository) List(ctx context.Context, filter shared.ManualBookingFilter) ([]*manual.Booking, error) {
	var status *string
	if filter.Status != nil {
		s := filter.Status.String()
		status = &s
	}

	rows, err := r.pool.Query(ctx, listManualBookingsSQL, status, filter.Limit)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list manual bookings", err)
	}
	defer rows.Close()

	var out []*manual.Booking
	for rows.Next() {
		b, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate manual bookings", err)
	}
	return out, nil
}

// Update locks the row, applies mutate and writes the status columns back.
// Errors returned by mutate are passed through unchanged.
func (r *ManualBookingRepository) Update(ctx context.Context, id uuid.UUID, mutate func(*manual.Booking) error) (*manual.Booking, error) {
	return db.WithDefaultRetry(ctx, r.pool, func(tx db.DBTX) (*manual.Booking, error) {
		b, err := r.findOne(ctx, tx, selectManualBookingForUpdateSQL, id)
		if err != nil {
			return nil, err
		}
		if err := mutate(b); err != nil {
			return nil, err
		}

		tag, err := tx.Exec(ctx, updateManualBookingSQL,
			pgconv.UUIDToPgtype(b.ID()),
			b.Status().String(),
			pgconv.OptionalStringToPgtype(b.OfficialReference()),
			pgconv.TimePtrToPgtype(b.CompletedAt()),
		)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update manual booking", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "manual booking not found", nil)
		}
		return b, nil
	})
}

func (r *ManualBookingRepository) findOne(ctx context.Context, q db.DBTX, sql string, id uuid.UUID) (*manual.Booking, error) {
	return r.scan(q.QueryRow(ctx, sql, pgconv.UUIDToPgtype(id)))
}

func (r *ManualBookingRepository) scan(row pgx.Row) (*manual.Booking, error) {
	var m converter.ManualBookingRow
	err := row.Scan(
		&m.ID, &m.Reference, &m.Museum, &m.VisitDate, &m.TimeSlot, &m.VisitorName,
		&m.Request, &m.Instructions, &m.FailureSummary, &m.Status, &m.OfficialReference,
		&m.Deadline, &m.CreatedAt, &m.CompletedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "manual booking not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan manual booking", err)
	}

	b, err := converter.ManualBookingFromRow(m)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode manual booking", err)
	}
	return b, nil
}
