package sim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Metrics accumulates per-stage waiting times and unit counts over one run.
// Stages mutate it only from their grant and completion steps; the
// cooperative scheduler runs one continuation at a time, so no locking is
// needed.
type Metrics struct {
	waits     map[StageName][]float64
	processed map[StageName]int
	produced  int
	rawLoaded int
}

func NewMetrics() *Metrics {
	return &Metrics{
		waits:     make(map[StageName][]float64, len(StageNames)),
		processed: make(map[StageName]int, len(StageNames)),
	}
}

// recordWait attributes one queueing wait (acquire call to token grant) to
// a stage.
func (m *Metrics) recordWait(name StageName, wait float64) {
	m.waits[name] = append(m.waits[name], wait)
}

// unitProcessed counts one completed unit at a stage. Completing the final
// stage also counts a finished product.
func (m *Metrics) unitProcessed(name StageName, finished bool) {
	m.processed[name]++
	if finished {
		m.produced++
	}
}

func (m *Metrics) rawMaterialLoaded() {
	m.rawLoaded++
}

// StageStats summarizes one pipeline stage over a run.
type StageStats struct {
	Processed  int     // units that completed this stage
	TotalWait  float64 // summed queueing wait, hours
	AvgWait    float64 // mean queueing wait, hours
	StdDevWait float64 // sample standard deviation of waits, 0 for <2 samples
}

// MachineSetup is the reported setup state of one machining slot.
type MachineSetup struct {
	Slot        int
	LastProduct string  // product type the slot was last configured for
	SetupHours  float64 // cumulative changeover time spent on this slot
}

// Snapshot is a read-only copy of the aggregated metrics, taken after
// RunUntil returns. It shares no memory with the live aggregator, so
// repeated snapshots after a run are identical.
type Snapshot struct {
	Stages                map[StageName]StageStats
	TotalProductsProduced int
	RawMaterialsLoaded    int
	MachineSetups         []MachineSetup
}

// Snapshot computes the per-stage summary from the accumulated samples.
func (m *Metrics) Snapshot() Snapshot {
	snap := Snapshot{
		Stages:                make(map[StageName]StageStats, len(StageNames)),
		TotalProductsProduced: m.produced,
		RawMaterialsLoaded:    m.rawLoaded,
	}
	for _, name := range StageNames {
		s := StageStats{Processed: m.processed[name]}
		if ws := m.waits[name]; len(ws) > 0 {
			s.TotalWait = floats.Sum(ws)
			s.AvgWait = stat.Mean(ws, nil)
			if len(ws) > 1 {
				s.StdDevWait = stat.StdDev(ws, nil)
			}
		}
		snap.Stages[name] = s
	}
	return snap
}
