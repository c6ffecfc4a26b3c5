package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShiftCalendar_RejectsBadWindows(t *testing.T) {
	cases := []struct {
		name       string
		start, end float64
	}{
		{"degenerate window", 8, 8},
		{"overnight window", 20, 8},
		{"start below range", -1, 8},
		{"start at 24", 24, 24},
		{"end above range", 8, 25},
		{"end at zero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewShiftCalendar(NewSimulator(), tc.start, tc.end)
			require.Error(t, err)
			var cfgErr *ConfigError
			assert.True(t, errors.As(err, &cfgErr), "error is %T, want *ConfigError", err)
		})
	}
}

func TestShiftCalendar_ActiveMatchesWindowFormula(t *testing.T) {
	// GIVEN a calendar with an 8-20 window and probes spread over three
	// days, off the exact boundaries
	s := NewSimulator()
	cal, err := NewShiftCalendar(s, 8, 20)
	require.NoError(t, err)

	for probe := 0.25; probe < 72; probe += 0.5 {
		at := probe
		s.Schedule(at, func() {
			tod := math.Mod(s.Now(), 24)
			want := tod >= 8 && tod < 20
			if cal.Active() != want {
				t.Errorf("Active() at t=%.2f (tod %.2f): got %v, want %v", s.Now(), tod, cal.Active(), want)
			}
		})
	}

	// WHEN / THEN probes assert during the run
	s.RunUntil(72)
}

func TestShiftCalendar_FullDayWindowAlwaysActive(t *testing.T) {
	s := NewSimulator()
	cal, err := NewShiftCalendar(s, 0, 24)
	require.NoError(t, err)

	assert.True(t, cal.Active())
	for probe := 0.5; probe < 48; probe += 3.5 {
		s.Schedule(probe, func() {
			assert.True(t, cal.Active(), "inactive at t=%.2f", s.Now())
		})
	}
	s.RunUntil(48)
}

func TestShiftCalendar_ExactlyOnePendingTransition(t *testing.T) {
	// GIVEN a fresh calendar on an otherwise empty simulator
	s := NewSimulator()
	_, err := NewShiftCalendar(s, 8, 20)
	require.NoError(t, err)

	// THEN one boundary event is pending at construction
	assert.Equal(t, 1, s.Pending())

	// AND after crossing two boundaries only the next one is pending
	s.RunUntil(30)
	assert.Equal(t, 1, s.Pending())
}

func TestShiftCalendar_InactiveBeforeStart(t *testing.T) {
	s := NewSimulator()
	cal, err := NewShiftCalendar(s, 8, 20)
	require.NoError(t, err)
	assert.False(t, cal.Active(), "shift must be closed at t=0 for an 8-20 window")
}
