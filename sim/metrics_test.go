package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Snapshot_StageStatistics(t *testing.T) {
	// GIVEN recorded waits of 1, 2, 3 hours and two processed units
	m := NewMetrics()
	m.recordWait(Machining, 1)
	m.recordWait(Machining, 2)
	m.recordWait(Machining, 3)
	m.unitProcessed(Machining, false)
	m.unitProcessed(Machining, false)

	// WHEN snapshotting
	snap := m.Snapshot()

	// THEN the stage summary reflects the samples
	st := snap.Stages[Machining]
	assert.Equal(t, 2, st.Processed)
	assert.Equal(t, 6.0, st.TotalWait)
	assert.Equal(t, 2.0, st.AvgWait)
	assert.InDelta(t, 1.0, st.StdDevWait, 1e-12)
}

func TestMetrics_Snapshot_EmptyStagesAreZero(t *testing.T) {
	snap := NewMetrics().Snapshot()
	for _, name := range StageNames {
		st := snap.Stages[name]
		assert.Zero(t, st.Processed, "%s processed", name)
		assert.Zero(t, st.TotalWait, "%s total wait", name)
		assert.Zero(t, st.AvgWait, "%s avg wait", name)
		assert.Zero(t, st.StdDevWait, "%s stddev", name)
	}
	assert.Zero(t, snap.TotalProductsProduced)
}

func TestMetrics_Snapshot_SingleSampleHasZeroStdDev(t *testing.T) {
	m := NewMetrics()
	m.recordWait(Packaging, 4)
	snap := m.Snapshot()
	assert.Equal(t, 4.0, snap.Stages[Packaging].AvgWait)
	assert.Equal(t, 0.0, snap.Stages[Packaging].StdDevWait)
}

func TestMetrics_Snapshot_IsACopy(t *testing.T) {
	// GIVEN a snapshot taken before further mutation
	m := NewMetrics()
	m.unitProcessed(Packaging, true)
	snap := m.Snapshot()

	// WHEN the aggregator keeps accumulating
	m.unitProcessed(Packaging, true)
	m.recordWait(Packaging, 9)

	// THEN the earlier snapshot is unchanged
	assert.Equal(t, 1, snap.Stages[Packaging].Processed)
	assert.Equal(t, 1, snap.TotalProductsProduced)
	assert.Equal(t, 0.0, snap.Stages[Packaging].TotalWait)
}
