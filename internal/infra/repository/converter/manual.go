package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/domain/manual"
	"museum-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// ManualBookingRow mirrors the manual_bookings table.
type ManualBookingRow struct {
	ID                pgtype.UUID
	Reference         string
	Museum            string
	VisitDate         pgtype.Date
	TimeSlot          string
	VisitorName       string
	Request           []byte
	Instructions      []byte
	FailureSummary    string
	Status            string
	OfficialReference pgtype.Text
	Deadline          pgtype.Timestamptz
	CreatedAt         pgtype.Timestamptz
	CompletedAt       pgtype.Timestamptz
}

const visitDateLayout = "2006-01-02"

type visitorSnapshot struct {
	Name     string `json:"name"`
	IDNumber string `json:"idNumber"`
	IDType   string `json:"idType"`
	Age      *int   `json:"age,omitempty"`
}

type requestSnapshot struct {
	VisitorName  string            `json:"visitorName"`
	IDNumber     string            `json:"idNumber"`
	IDType       string            `json:"idType"`
	Contact      string            `json:"contact,omitempty"`
	Museum       string            `json:"museum"`
	VisitDate    string            `json:"visitDate"`
	TimeSlot     string            `json:"timeSlot"`
	VisitorCount int               `json:"visitorCount"`
	Visitors     []visitorSnapshot `json:"visitors"`
}

func ManualBookingToRow(b *manual.Booking) (ManualBookingRow, error) {
	p := b.Request()
	visitDate, err := time.Parse(visitDateLayout, p.VisitDate)
	if err != nil {
		return ManualBookingRow{}, fmt.Errorf("parse visit date: %w", err)
	}
	snap := requestSnapshot{
		VisitorName:  p.VisitorName,
		IDNumber:     p.IDNumber,
		IDType:       p.IDType.String(),
		Contact:      p.Contact,
		Museum:       p.Museum.String(),
		VisitDate:    p.VisitDate,
		TimeSlot:     p.TimeSlot,
		VisitorCount: p.VisitorCount,
		Visitors:     make([]visitorSnapshot, len(p.Visitors)),
	}
	for i, v := range p.Visitors {
		snap.Visitors[i] = visitorSnapshot{Name: v.Name, IDNumber: v.IDNumber, IDType: v.IDType.String(), Age: v.Age}
	}

	request, err := json.Marshal(snap)
	if err != nil {
		return ManualBookingRow{}, fmt.Errorf("encode request snapshot: %w", err)
	}
	instructions, err := json.Marshal(b.Instructions())
	if err != nil {
		return ManualBookingRow{}, fmt.Errorf("encode instructions: %w", err)
	}

	return ManualBookingRow{
		ID:                pgconv.UUIDToPgtype(b.ID()),
		Reference:         b.Reference(),
		Museum:            p.Museum.String(),
		VisitDate:         pgconv.DateToPgtype(visitDate),
		TimeSlot:          p.TimeSlot,
		VisitorName:       p.VisitorName,
		Request:           request,
		Instructions:      instructions,
		FailureSummary:    b.FailureSummary(),
		Status:            b.Status().String(),
		OfficialReference: pgconv.OptionalStringToPgtype(b.OfficialReference()),
		Deadline:          pgconv.TimeToPgtype(b.Deadline()),
		CreatedAt:         pgconv.TimeToPgtype(b.CreatedAt()),
		CompletedAt:       pgconv.TimePtrToPgtype(b.CompletedAt()),
	}, nil
}

func ManualBookingFromRow(row ManualBookingRow) (*manual.Booking, error) {
	var snap requestSnapshot
	if err := json.Unmarshal(row.Request, &snap); err != nil {
		return nil, fmt.Errorf("decode request snapshot: %w", err)
	}
	var instructions []string
	if err := json.Unmarshal(row.Instructions, &instructions); err != nil {
		return nil, fmt.Errorf("decode instructions: %w", err)
	}
	status, err := manual.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}

	params := booking.RequestParams{
		VisitorName:  snap.VisitorName,
		IDNumber:     snap.IDNumber,
		IDType:       booking.IDType(snap.IDType),
		Contact:      snap.Contact,
		Museum:       booking.Museum(snap.Museum),
		VisitDate:    snap.VisitDate,
		TimeSlot:     snap.TimeSlot,
		VisitorCount: snap.VisitorCount,
		Visitors:     make([]booking.VisitorParams, len(snap.Visitors)),
	}
	for i, v := range snap.Visitors {
		params.Visitors[i] = booking.VisitorParams{Name: v.Name, IDNumber: v.IDNumber, IDType: booking.IDType(v.IDType), Age: v.Age}
	}

	return manual.ReconstructBooking(
		pgconv.UUIDFromPgtype(row.ID),
		params,
		row.Reference,
		instructions,
		row.FailureSummary,
		status,
		pgconv.StringFromPgtype(row.OfficialReference),
		pgconv.TimeFromPgtype(row.Deadline),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.CompletedAt),
	), nil
}
