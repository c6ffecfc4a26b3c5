package sim

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Factory wires a complete scenario onto a simulator: the shift calendar,
// the four pipeline stages, and one production line per product type. A
// Factory belongs to exactly one run; nothing carries over between runs.
type Factory struct {
	sim       *Simulator
	shift     *ShiftCalendar
	machining *Stage
	stages    []*Stage
	lines     []*Line
	metrics   *Metrics
}

func NewFactory(sim *Simulator, cfg Config) (*Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	shift, err := NewShiftCalendar(sim, cfg.ShiftStartHour, cfg.ShiftEndHour)
	if err != nil {
		return nil, err
	}

	metrics := NewMetrics()
	rng := rand.New(rand.NewSource(cfg.Seed))

	machining, err := NewMachiningStage(sim, metrics, cfg.MachineCount, rng)
	if err != nil {
		return nil, err
	}
	assembly, err := NewAssemblyStage(sim, metrics, rng)
	if err != nil {
		return nil, err
	}
	inspection, err := NewQualityControlStage(sim, metrics, rng)
	if err != nil {
		return nil, err
	}
	packaging, err := NewPackagingStage(sim, metrics, rng)
	if err != nil {
		return nil, err
	}

	f := &Factory{
		sim:       sim,
		shift:     shift,
		machining: machining,
		stages:    []*Stage{machining, assembly, inspection, packaging},
		metrics:   metrics,
	}
	for _, product := range cfg.ProductTypes {
		f.lines = append(f.lines, NewLine(sim, product, shift, f.stages, metrics))
	}
	return f, nil
}

// Start launches every production line at the current simulated time.
func (f *Factory) Start() {
	for _, l := range f.lines {
		l.Start()
	}
}

// Shift exposes the factory's shift calendar.
func (f *Factory) Shift() *ShiftCalendar { return f.shift }

// Snapshot returns the aggregated metrics plus the machining setup states.
func (f *Factory) Snapshot() Snapshot {
	snap := f.metrics.Snapshot()
	snap.MachineSetups = f.machining.SetupStates()
	return snap
}

// RunScenario builds a fresh simulator and factory for cfg, runs it to the
// configured horizon, and returns the metrics snapshot. Invalid
// configurations are rejected before anything runs.
func RunScenario(cfg Config) (Snapshot, error) {
	sim := NewSimulator()
	f, err := NewFactory(sim, cfg)
	if err != nil {
		return Snapshot{}, err
	}
	f.Start()
	sim.RunUntil(cfg.Horizon)

	snap := f.Snapshot()
	logrus.Infof("scenario finished: %d machines, shift %g-%g, %d lines, %d products produced",
		cfg.MachineCount, cfg.ShiftStartHour, cfg.ShiftEndHour, len(cfg.ProductTypes), snap.TotalProductsProduced)
	return snap, nil
}
