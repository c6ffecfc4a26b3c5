package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/xid"

	sim "github.com/factory-sim/factory-sim/sim"
)

// Result is one scenario's row in the report.
type Result struct {
	RunID    string
	Label    string
	Snapshot sim.Snapshot
}

// NewResult tags a scenario's snapshot with a unique run ID and a
// human-readable label.
func NewResult(cfg sim.Config, snap sim.Snapshot) Result {
	return Result{
		RunID: xid.New().String(),
		Label: fmt.Sprintf("%d machines, shift %g-%g, products: %s",
			cfg.MachineCount, cfg.ShiftStartHour, cfg.ShiftEndHour, strings.Join(cfg.ProductTypes, ",")),
		Snapshot: snap,
	}
}

// PrintTable writes the scenario comparison table to w.
func PrintTable(w io.Writer, results []Result) {
	fmt.Fprintln(w, "=== Scenario Results ===")
	for _, r := range results {
		fmt.Fprintf(w, "%s [%s]\n", r.Label, r.RunID)
		fmt.Fprintf(w, "  Total Products Produced : %d\n", r.Snapshot.TotalProductsProduced)
		for _, name := range sim.StageNames {
			st := r.Snapshot.Stages[name]
			fmt.Fprintf(w, "  %-24s: processed %4d, avg wait %6.2fh\n", name, st.Processed, st.AvgWait)
		}
		for _, ms := range r.Snapshot.MachineSetups {
			fmt.Fprintf(w, "  machine %d               : last product %-4q setup %6.2fh\n", ms.Slot, ms.LastProduct, ms.SetupHours)
		}
	}
}

var csvHeader = []string{
	"run_id", "scenario", "total_products_produced",
	"avg_wait_machining", "avg_wait_assembly", "avg_wait_quality_control", "avg_wait_packaging",
}

// WriteCSV exports one row per scenario, comma-delimited with a header row.
func WriteCSV(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{r.RunID, r.Label, strconv.Itoa(r.Snapshot.TotalProductsProduced)}
		for _, name := range sim.StageNames {
			row = append(row, strconv.FormatFloat(r.Snapshot.Stages[name].AvgWait, 'f', 4, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
