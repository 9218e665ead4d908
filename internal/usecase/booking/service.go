package booking

//go:generate mockgen -source=service.go -destination=../../../tests/mock/booking/service.go -package=bookingmock

import (
	"context"
	"log/slog"
	"time"

	"museum-booking/internal/domain/booking"
	vdomain "museum-booking/internal/domain/verification"
	"museum-booking/internal/pkg/errs"
	"museum-booking/internal/usecase/shared"
	"museum-booking/internal/usecase/verification"
)

type Escalator interface {
	Run(ctx context.Context, req *booking.Request) (*booking.AttemptResult, error)
}

type AttemptOutcome struct {
	Result *booking.AttemptResult
	// nil for manual results
	Verification *vdomain.Record
}

type Commands interface {
	AttemptBooking(ctx context.Context, params booking.RequestParams) (*AttemptOutcome, error)
}

type commandsImpl struct {
	escalator    Escalator
	verification verification.Service
	timeout      time.Duration
	logger       *slog.Logger
}

func NewCommands(escalator Escalator, verificationService verification.Service, timeout time.Duration, logger *slog.Logger) Commands {
	return &commandsImpl{
		escalator:    escalator,
		verification: verificationService,
		timeout:      timeout,
		logger:       logger,
	}
}

func (c *commandsImpl) AttemptBooking(ctx context.Context, params booking.RequestParams) (*AttemptOutcome, error) {
	req, err := booking.NewRequest(params)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidBookingRequest)
	}

	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	res, err := c.escalator.Run(runCtx, req)
	if err != nil {
		return nil, err
	}

	outcome := &AttemptOutcome{Result: res}
	if !res.NeedsVerification() {
		return outcome, nil
	}

	// the booking already succeeded, verification must not be cut short by the caller
	verifyCtx := context.WithoutCancel(ctx)
	target := shared.VerificationTarget{
		BookingID:   res.BookingID(),
		VisitorName: req.VisitorName(),
		IDNumber:    req.IDNumber(),
	}
	if err := c.verification.Track(verifyCtx, target, res.Provenance()); err != nil {
		c.logger.Error("failed to track verification",
			slog.String("booking_id", res.BookingID()),
			slog.String("error", err.Error()))
	}
	outcome.Verification = c.verification.Check(verifyCtx, target)
	return outcome, nil
}
