package sim

import "github.com/sirupsen/logrus"

const (
	// idleRecheckHours is how long an off-shift line sleeps before checking
	// the calendar again. Polling bounds reaction latency to a shift opening
	// by at most one hour.
	idleRecheckHours = 1
	// interArrivalHours is the fixed gap between consecutive units on one
	// line. It is a rate-limiting policy, not a resource wait.
	interArrivalHours = 1
)

// Line is one perpetual production task for a single product type. While the
// shift is active it pulls raw material and drives a unit through the stage
// sequence strictly in order; otherwise it idles and re-checks. The line
// never terminates on its own; only the run horizon stops it.
type Line struct {
	sim     *Simulator
	product string
	shift   *ShiftCalendar
	stages  []*Stage
	metrics *Metrics
}

func NewLine(sim *Simulator, product string, shift *ShiftCalendar, stages []*Stage, metrics *Metrics) *Line {
	return &Line{sim: sim, product: product, shift: shift, stages: stages, metrics: metrics}
}

// Start schedules the line's first cycle at the current simulated time.
func (l *Line) Start() {
	l.sim.Schedule(0, l.cycle)
}

func (l *Line) cycle() {
	if !l.shift.Active() {
		l.sim.Schedule(idleRecheckHours, l.cycle)
		return
	}
	l.metrics.rawMaterialLoaded()
	logrus.Debugf("[t=%8.3f] line %s loaded raw material", l.sim.Now(), l.product)
	l.advance(&Unit{ProductType: l.product}, 0)
}

// advance runs unit through stages[idx:] and then schedules the next cycle.
func (l *Line) advance(unit *Unit, idx int) {
	if idx == len(l.stages) {
		l.sim.Schedule(interArrivalHours, l.cycle)
		return
	}
	unit.StageIndex = idx
	l.stages[idx].Process(unit, func() { l.advance(unit, idx+1) })
}
