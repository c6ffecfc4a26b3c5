package sim

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// StageName identifies one step of the production pipeline.
type StageName string

const (
	Machining      StageName = "machining"
	Assembly       StageName = "assembly"
	QualityControl StageName = "quality_control"
	Packaging      StageName = "packaging"
)

// StageNames lists the pipeline stages in processing order.
var StageNames = []StageName{Machining, Assembly, QualityControl, Packaging}

// Fixed station counts for the non-machining stages; only the machining
// slot count is configurable.
const (
	assemblyStations   = 2
	inspectionStations = 1
	packagingStations  = 1
)

// Unit is one in-flight item moving through the pipeline. Units are not
// retained after packaging; only aggregate counts survive.
type Unit struct {
	ProductType string
	StageIndex  int
}

// machineSlot remembers what one machining slot was last configured for and
// how much changeover time it has accumulated. Mutated only while the slot
// is held.
type machineSlot struct {
	lastProduct string
	setupHours  float64
}

// Stage is one bounded-capacity processing step. Machining additionally
// models per-slot setup changeovers and stochastic breakdown repairs; the
// packaging stage counts finished products.
type Stage struct {
	sim     *Simulator
	name    StageName
	pool    *Pool
	metrics *Metrics

	procTime distuv.Uniform

	// machining extras; slots is nil for every other stage
	rng        *rand.Rand
	slots      []machineSlot
	setupTime  distuv.Uniform
	repairProb float64
	repairTime distuv.Uniform

	final bool
}

func uniform(min, max float64, src rand.Source) distuv.Uniform {
	return distuv.Uniform{Min: min, Max: max, Src: src}
}

func newStage(sim *Simulator, metrics *Metrics, name StageName, capacity int, procTime distuv.Uniform, final bool) (*Stage, error) {
	pool, err := NewPool(sim, string(name), capacity)
	if err != nil {
		return nil, err
	}
	return &Stage{
		sim:      sim,
		name:     name,
		pool:     pool,
		metrics:  metrics,
		procTime: procTime,
		final:    final,
	}, nil
}

// NewMachiningStage builds the machining stage with machineCount slots.
// Changeovers to a different product type cost Uniform(0.5, 1.5) hours, and
// 10% of units trigger a Uniform(1, 3) hour repair before the slot frees up.
func NewMachiningStage(sim *Simulator, metrics *Metrics, machineCount int, rng *rand.Rand) (*Stage, error) {
	st, err := newStage(sim, metrics, Machining, machineCount, uniform(4, 6, rng), false)
	if err != nil {
		return nil, err
	}
	st.rng = rng
	st.slots = make([]machineSlot, machineCount)
	st.setupTime = uniform(0.5, 1.5, rng)
	st.repairProb = 0.1
	st.repairTime = uniform(1, 3, rng)
	return st, nil
}

func NewAssemblyStage(sim *Simulator, metrics *Metrics, rng *rand.Rand) (*Stage, error) {
	return newStage(sim, metrics, Assembly, assemblyStations, uniform(2, 4, rng), false)
}

func NewQualityControlStage(sim *Simulator, metrics *Metrics, rng *rand.Rand) (*Stage, error) {
	return newStage(sim, metrics, QualityControl, inspectionStations, uniform(1, 2, rng), false)
}

func NewPackagingStage(sim *Simulator, metrics *Metrics, rng *rand.Rand) (*Stage, error) {
	return newStage(sim, metrics, Packaging, packagingStations, uniform(0.5, 1.5, rng), true)
}

// Name returns the stage identifier.
func (st *Stage) Name() StageName { return st.name }

// Pool exposes the stage's resource pool.
func (st *Stage) Pool() *Pool { return st.pool }

// SetupStates reports each machining slot's last configured product type and
// cumulative changeover time. Nil for stages without setup tracking.
func (st *Stage) SetupStates() []MachineSetup {
	if st.slots == nil {
		return nil
	}
	out := make([]MachineSetup, len(st.slots))
	for i, s := range st.slots {
		out[i] = MachineSetup{Slot: i, LastProduct: s.lastProduct, SetupHours: s.setupHours}
	}
	return out
}

// Process drives unit through this stage and calls done once it leaves. The
// caller is suspended for the queueing wait plus the sampled processing
// time, and on machining also for any changeover or repair delay. The wait
// between the acquire call and the token grant is recorded against this
// stage's metrics bucket.
func (st *Stage) Process(unit *Unit, done func()) {
	requested := st.sim.Now()
	st.pool.Acquire(func(tok *Token) {
		st.metrics.recordWait(st.name, st.sim.Now()-requested)
		st.changeover(unit, tok, func() {
			st.sim.Schedule(st.procTime.Rand(), func() {
				logrus.Debugf("[t=%8.3f] %s finished a %s unit", st.sim.Now(), st.name, unit.ProductType)
				st.finish(unit, tok, done)
			})
		})
	})
}

// changeover consumes a setup delay when the granted machining slot was last
// configured for a different product type. Every other stage, and a slot
// already configured for this product, proceeds immediately.
func (st *Stage) changeover(unit *Unit, tok *Token, next func()) {
	if st.slots == nil || st.slots[tok.Slot()].lastProduct == unit.ProductType {
		next()
		return
	}
	d := st.setupTime.Rand()
	slot := &st.slots[tok.Slot()]
	slot.lastProduct = unit.ProductType
	slot.setupHours += d
	logrus.Debugf("[t=%8.3f] machine %d changeover to %s, %.2fh", st.sim.Now(), tok.Slot(), unit.ProductType, d)
	st.sim.Schedule(d, next)
}

// finish absorbs a possible repair delay, updates metrics, and releases the
// slot. A breakdown is modeled purely as elapsed time, never as an error,
// and the unit's progress is unaffected.
func (st *Stage) finish(unit *Unit, tok *Token, done func()) {
	complete := func() {
		st.metrics.unitProcessed(st.name, st.final)
		tok.Release()
		done()
	}
	if st.slots != nil && st.rng.Float64() < st.repairProb {
		d := st.repairTime.Rand()
		logrus.Debugf("[t=%8.3f] machine %d under repair for %.2fh", st.sim.Now(), tok.Slot(), d)
		st.sim.Schedule(d, complete)
		return
	}
	complete()
}
