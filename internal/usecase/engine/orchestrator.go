package engine

//go:generate mockgen -source=orchestrator.go -destination=../../../tests/mock/engine/orchestrator.go -package=enginemock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/errs"
)

// Recorder receives per-tier and per-run observations.
type Recorder interface {
	ObserveAttempt(tier booking.Provenance, success bool, elapsed time.Duration)
	ObserveEscalation(terminal booking.Provenance, success bool, tiersTried int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveAttempt(booking.Provenance, bool, time.Duration) {}
func (nopRecorder) ObserveEscalation(booking.Provenance, bool, int)        {}

type Orchestrator struct {
	registry *Registry
	clock    clock.Clock
	logger   *slog.Logger
	recorder Recorder
}

func NewOrchestrator(registry *Registry, clk clock.Clock, logger *slog.Logger, recorder Recorder) *Orchestrator {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Orchestrator{
		registry: registry,
		clock:    clk,
		logger:   logger,
		recorder: recorder,
	}
}

// Run escalates through the registered tiers and returns the first success.
// The escalation runs detached from ctx: when ctx ends first Run returns
// ErrOrchestrationAbandoned and the in-flight tiers finish in the background.
func (o *Orchestrator) Run(ctx context.Context, req *booking.Request) (*booking.AttemptResult, error) {
	done := make(chan *booking.AttemptResult, 1)
	detached := context.WithoutCancel(ctx)

	go func() {
		done <- o.Escalate(detached, req)
	}()

	select {
	case res := <-done:
		return res, nil
	case <-ctx.Done():
		o.logger.Warn("caller stopped waiting, escalation continues in background",
			slog.String("museum", req.Museum().String()),
			slog.String("visit_date", req.VisitDateString()),
			slog.String("error", ctx.Err().Error()))
		return nil, errs.Mark(ctx.Err(), errs.ErrOrchestrationAbandoned)
	}
}

// Escalate runs the tiers sequentially on the calling goroutine. It always
// returns exactly one result.
func (o *Orchestrator) Escalate(ctx context.Context, req *booking.Request) *booking.AttemptResult {
	var failures Failures
	tried := 0

	for _, s := range o.registry.Strategies() {
		tried++
		tier := s.Name()
		started := o.clock.Now()

		var res *booking.AttemptResult
		if terminal, ok := s.(TerminalStrategy); ok {
			res = o.safeAttempt(tier, func() *booking.AttemptResult {
				return terminal.Conclude(ctx, req, failures)
			})
		} else {
			res = o.safeAttempt(tier, func() *booking.AttemptResult {
				return s.Attempt(ctx, req)
			})
		}

		o.recorder.ObserveAttempt(tier, res.Success(), o.clock.Now().Sub(started))

		if res.Success() {
			o.logger.Info("booking tier succeeded",
				slog.String("tier", tier.String()),
				slog.Int("tiers_tried", tried),
				slog.String("booking_id", res.BookingID()))
			o.recorder.ObserveEscalation(tier, true, tried)
			return res
		}

		o.logger.Warn("booking tier failed",
			slog.String("tier", tier.String()),
			slog.String("reason", res.ErrorDetail()))
		failures = append(failures, Failure{Tier: tier, Reason: res.ErrorDetail()})
	}

	o.logger.Error("escalation ended without a terminal strategy",
		slog.String("failures", failures.String()),
		slog.String("error", errs.ErrNoTerminalStrategy.Error()))
	o.recorder.ObserveEscalation(booking.ProvenanceManual, false, tried)
	return booking.NewFailure(booking.ProvenanceManual, "all tiers failed: "+failures.String(), o.clock.Now())
}

func (o *Orchestrator) safeAttempt(tier booking.Provenance, fn func() *booking.AttemptResult) (res *booking.AttemptResult) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("booking tier panicked", slog.String("tier", tier.String()), slog.Any("panic", r))
			res = booking.NewFailure(tier, fmt.Sprintf("panic: %v", r), o.clock.Now())
		}
	}()

	res = fn()
	if res == nil {
		return booking.NewFailure(tier, "strategy returned no result", o.clock.Now())
	}
	return res
}
