package engine

//go:generate mockgen -source=strategy.go -destination=../../../tests/mock/engine/strategy.go -package=enginemock

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"museum-booking/internal/domain/booking"
)

// Strategy is one way of placing a booking on the platform. Attempt reports
// every outcome through the result and never returns an error.
type Strategy interface {
	Name() booking.Provenance
	Attempt(ctx context.Context, req *booking.Request) *booking.AttemptResult
}

// TerminalStrategy closes an escalation and receives the reasons every
// earlier tier failed.
type TerminalStrategy interface {
	Strategy
	Conclude(ctx context.Context, req *booking.Request, failures Failures) *booking.AttemptResult
}

// Priority is the fixed escalation order.
var Priority = []booking.Provenance{
	booking.ProvenanceDirectAPI,
	booking.ProvenanceEnhancedAPI,
	booking.ProvenanceMobileApp,
	booking.ProvenanceWeChatMiniProgram,
	booking.ProvenanceBrowser,
	booking.ProvenanceManual,
}

type Failure struct {
	Tier   booking.Provenance
	Reason string
}

type Failures []Failure

// String renders "tier: reason; tier: reason".
func (f Failures) String() string {
	parts := make([]string, len(f))
	for i, fail := range f {
		parts[i] = fmt.Sprintf("%s: %s", fail.Tier, fail.Reason)
	}
	return strings.Join(parts, "; ")
}

// Registry holds at most one strategy per tier, ordered by Priority.
// Tiers missing from the registry are skipped.
type Registry struct {
	strategies []Strategy
}

func NewRegistry(strategies ...Strategy) (*Registry, error) {
	seen := make(map[booking.Provenance]bool, len(strategies))
	kept := make([]Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s == nil {
			continue
		}
		name := s.Name()
		if !slices.Contains(Priority, name) {
			return nil, fmt.Errorf("unknown strategy tier %q", name)
		}
		if seen[name] {
			return nil, fmt.Errorf("strategy tier %q registered twice", name)
		}
		seen[name] = true
		kept = append(kept, s)
	}
	slices.SortStableFunc(kept, func(a, b Strategy) int {
		return slices.Index(Priority, a.Name()) - slices.Index(Priority, b.Name())
	})
	return &Registry{strategies: kept}, nil
}

func (r *Registry) Strategies() []Strategy {
	return slices.Clone(r.strategies)
}

func (r *Registry) Names() []booking.Provenance {
	names := make([]booking.Provenance, len(r.strategies))
	for i, s := range r.strategies {
		names[i] = s.Name()
	}
	return names
}
