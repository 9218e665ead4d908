package notify

import (
	"context"
	"log/slog"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/domain/manual"
)

// LogNotifier is used when no broker is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) ManualBookingCreated(_ context.Context, b *manual.Booking) error {
	req := b.Request()
	n.logger.Warn("manual booking requires an operator",
		slog.String("manual_booking_id", b.ID().String()),
		slog.String("reference", b.Reference()),
		slog.String("museum", req.Museum.String()),
		slog.String("visit_date", req.VisitDate),
		slog.String("id_number", booking.MaskedIDNumber(req.IDNumber)),
		slog.Time("deadline", b.Deadline()))
	return nil
}
