package converter

import (
	"museum-booking/internal/domain/booking"
	"museum-booking/internal/domain/verification"
	"museum-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type VerificationRow struct {
	BookingID     string
	VisitorName   string
	IDNumber      string
	Provenance    string
	Found         bool
	Attempts      int32
	LastAttemptAt pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
}

func VerificationFromRow(row VerificationRow) *verification.Record {
	return verification.ReconstructRecord(
		row.BookingID,
		row.VisitorName,
		row.IDNumber,
		booking.Provenance(row.Provenance),
		row.Found,
		int(row.Attempts),
		pgconv.TimePtrFromPgtype(row.LastAttemptAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
