package sim

import (
	"math"

	"github.com/sirupsen/logrus"
)

// ShiftCalendar tracks whether the daily operating shift is active. The
// window repeats on a 24-hour cycle; exactly one boundary transition is
// scheduled at any time, and each transition reschedules the next.
//
// Overnight windows (end before start) are not supported and are rejected
// at construction, as is a zero-length window.
type ShiftCalendar struct {
	sim    *Simulator
	start  float64 // hour of day the shift opens, in [0, 24)
	end    float64 // hour of day the shift closes, in (0, 24]
	active bool
}

func NewShiftCalendar(sim *Simulator, startHour, endHour float64) (*ShiftCalendar, error) {
	switch {
	case startHour < 0 || startHour >= 24:
		return nil, &ConfigError{Field: "shift_start_hour", Reason: "must be in [0, 24)"}
	case endHour <= 0 || endHour > 24:
		return nil, &ConfigError{Field: "shift_end_hour", Reason: "must be in (0, 24]"}
	case startHour == endHour:
		return nil, &ConfigError{Field: "shift window", Reason: "start and end hour are equal"}
	case endHour < startHour:
		return nil, &ConfigError{Field: "shift window", Reason: "overnight windows are not supported"}
	}
	c := &ShiftCalendar{sim: sim, start: startHour, end: endHour}
	c.transition()
	return c, nil
}

// Active reports whether the shift is open at the current simulated time.
// It never blocks.
func (c *ShiftCalendar) Active() bool {
	return c.active
}

// transition recomputes the shift state from the time of day and schedules
// the next boundary. It runs once at construction and again at every
// boundary, so the active flag is always start <= (t mod 24) < end.
func (c *ShiftCalendar) transition() {
	tod := math.Mod(c.sim.Now(), 24)
	var wait float64
	switch {
	case tod < c.start:
		c.active = false
		wait = c.start - tod
	case tod < c.end:
		c.active = true
		wait = c.end - tod
	default:
		c.active = false
		wait = 24 - tod + c.start
	}
	logrus.Debugf("[t=%8.3f] shift active=%v, next boundary in %.3fh", c.sim.Now(), c.active, wait)
	c.sim.Schedule(wait, c.transition)
}
