//go:build unit

package timing_test

import (
	"testing"
	"time"

	"museum-booking/internal/domain/timing"
	"museum-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shanghai = time.FixedZone("Asia/Shanghai", 8*60*60)

func newGate(t *testing.T, clk clock.Clock) *timing.Gate {
	t.Helper()
	g, err := timing.NewGate(clk, shanghai, 17, 0, 5*time.Minute)
	require.NoError(t, err)
	return g
}

func TestGateStatus(t *testing.T) {
	cases := []struct {
		name        string
		now         time.Time
		phase       timing.Phase
		canBook     bool
		nextRelease string
	}{
		{
			name:        "one minute before release",
			now:         time.Date(2025, 3, 1, 16, 59, 0, 0, shanghai),
			phase:       timing.PhaseBeforeRelease,
			nextRelease: "today 17:00",
		},
		{
			name:        "exactly at release",
			now:         time.Date(2025, 3, 1, 17, 0, 0, 0, shanghai),
			phase:       timing.PhaseInReleaseWindow,
			canBook:     true,
			nextRelease: "open now until 17:05",
		},
		{
			name:        "inside the window",
			now:         time.Date(2025, 3, 1, 17, 2, 0, 0, shanghai),
			phase:       timing.PhaseInReleaseWindow,
			canBook:     true,
			nextRelease: "open now until 17:05",
		},
		{
			name:        "window closes at exactly five minutes",
			now:         time.Date(2025, 3, 1, 17, 5, 0, 0, shanghai),
			phase:       timing.PhaseAfterReleaseWindow,
			nextRelease: "tomorrow 17:00",
		},
		{
			name:        "after the window",
			now:         time.Date(2025, 3, 1, 17, 6, 0, 0, shanghai),
			phase:       timing.PhaseAfterReleaseWindow,
			nextRelease: "tomorrow 17:00",
		},
		{
			name:        "caller clock in UTC is evaluated in platform time",
			now:         time.Date(2025, 3, 1, 9, 1, 0, 0, time.UTC),
			phase:       timing.PhaseInReleaseWindow,
			canBook:     true,
			nextRelease: "open now until 17:05",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := newGate(t, clock.NewMockClock(tc.now)).Status()
			assert.Equal(t, tc.phase, st.Phase)
			assert.Equal(t, tc.canBook, st.CanBook)
			assert.Equal(t, tc.nextRelease, st.NextRelease)
			assert.Equal(t, shanghai, st.Now.Location())
		})
	}
}

func TestGateReadsClockOnEveryCall(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 16, 59, 0, 0, shanghai))
	g := newGate(t, clk)

	assert.False(t, g.Status().CanBook)
	clk.Add(2 * time.Minute)
	assert.True(t, g.Status().CanBook)
	clk.Add(5 * time.Minute)
	assert.False(t, g.Status().CanBook)
}

func TestNextOpening(t *testing.T) {
	g := newGate(t, clock.NewRealClock())

	before := g.StatusAt(time.Date(2025, 3, 1, 10, 0, 0, 0, shanghai))
	assert.Equal(t, time.Date(2025, 3, 1, 17, 0, 0, 0, shanghai), before.NextOpening())

	after := g.StatusAt(time.Date(2025, 3, 1, 20, 0, 0, 0, shanghai))
	assert.Equal(t, time.Date(2025, 3, 2, 17, 0, 0, 0, shanghai), after.NextOpening())
}

func TestNewGateRejectsInvalidConfig(t *testing.T) {
	_, err := timing.NewGate(clock.NewRealClock(), shanghai, 24, 0, time.Minute)
	assert.Error(t, err)

	_, err = timing.NewGate(clock.NewRealClock(), shanghai, 17, 0, 0)
	assert.Error(t, err)
}
