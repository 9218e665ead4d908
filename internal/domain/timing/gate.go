package timing

import (
	"fmt"
	"time"

	"museum-booking/internal/pkg/clock"
)

type Phase string

const (
	PhaseBeforeRelease      Phase = "before_release"
	PhaseInReleaseWindow    Phase = "in_release_window"
	PhaseAfterReleaseWindow Phase = "after_release_window"
)

func (p Phase) String() string {
	return string(p)
}

// Status is derived on every query and never stored.
type Status struct {
	Now            time.Time
	ReleaseAt      time.Time
	WindowClosesAt time.Time
	Phase          Phase
	CanBook        bool
	NextRelease    string
}

// Gate evaluates the platform's single daily release window in the platform's
// own timezone, regardless of the caller's locale.
type Gate struct {
	clock   clock.Clock
	loc     *time.Location
	release time.Duration // offset from local midnight
	window  time.Duration
}

func NewGate(clk clock.Clock, loc *time.Location, hour, minute int, window time.Duration) (*Gate, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil, fmt.Errorf("invalid release time %02d:%02d", hour, minute)
	}
	if window <= 0 {
		return nil, fmt.Errorf("release window must be positive")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Gate{
		clock:   clk,
		loc:     loc,
		release: time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute,
		window:  window,
	}, nil
}

func (g *Gate) Status() Status {
	return g.StatusAt(g.clock.Now())
}

func (g *Gate) StatusAt(now time.Time) Status {
	local := now.In(g.loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, g.loc)
	sinceMidnight := local.Sub(midnight)

	releaseAt := midnight.Add(g.release)
	closesAt := releaseAt.Add(g.window)

	st := Status{
		Now:            local,
		ReleaseAt:      releaseAt,
		WindowClosesAt: closesAt,
	}

	switch {
	case sinceMidnight < g.release:
		st.Phase = PhaseBeforeRelease
		st.NextRelease = "today " + releaseAt.Format("15:04")
	case sinceMidnight < g.release+g.window:
		st.Phase = PhaseInReleaseWindow
		st.CanBook = true
		st.NextRelease = "open now until " + closesAt.Format("15:04")
	default:
		st.Phase = PhaseAfterReleaseWindow
		st.NextRelease = "tomorrow " + releaseAt.Format("15:04")
	}
	return st
}

// NextOpening is the start of the next release window strictly after the
// current one, or the current one when it has not ended yet.
func (st Status) NextOpening() time.Time {
	if st.Phase == PhaseAfterReleaseWindow {
		return st.ReleaseAt.AddDate(0, 0, 1)
	}
	return st.ReleaseAt
}
