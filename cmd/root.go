package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/factory-sim/factory-sim/sim"
)

var (
	// CLI flags for a single scenario
	machineCount int      // Number of machining slots
	shiftStart   float64  // Daily shift opening hour
	shiftEnd     float64  // Daily shift closing hour
	products     []string // Product types, one production line each
	horizon      float64  // Simulation horizon (in hours)
	seed         uint64   // Seed for stochastic durations
	logLevel     string   // Log verbosity level

	// CLI flags for batch runs and export
	scenarioFile string // YAML file with a list of scenarios
	csvPath      string // Destination for CSV export
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "factory-sim",
	Short: "Discrete-event simulator for factory production lines",
}

// runCmd executes one or more scenarios using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the factory simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		scenarios := []sim.Config{{
			MachineCount:   machineCount,
			ShiftStartHour: shiftStart,
			ShiftEndHour:   shiftEnd,
			ProductTypes:   products,
			Horizon:        horizon,
			Seed:           seed,
		}}
		if scenarioFile != "" {
			scenarios, err = LoadScenarios(scenarioFile)
			if err != nil {
				logrus.Fatalf("unable to read scenario file: %v", err)
			}
		}

		results := make([]Result, 0, len(scenarios))
		for _, cfg := range scenarios {
			logrus.Infof("Starting scenario: %d machines, shift %g-%g, products %v, horizon=%gh",
				cfg.MachineCount, cfg.ShiftStartHour, cfg.ShiftEndHour, cfg.ProductTypes, cfg.Horizon)
			snap, err := sim.RunScenario(cfg)
			if err != nil {
				logrus.Fatalf("scenario rejected: %v", err)
			}
			results = append(results, NewResult(cfg, snap))
		}

		PrintTable(os.Stdout, results)
		if csvPath != "" {
			if err := WriteCSV(csvPath, results); err != nil {
				logrus.Fatalf("unable to write csv: %v", err)
			}
			logrus.Infof("Results written to %s", csvPath)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVar(&machineCount, "machines", 2, "Number of machining slots")
	runCmd.Flags().Float64Var(&shiftStart, "shift-start", 8, "Daily shift opening hour, in [0,24)")
	runCmd.Flags().Float64Var(&shiftEnd, "shift-end", 20, "Daily shift closing hour, in (0,24]")
	runCmd.Flags().StringSliceVar(&products, "products", []string{"A", "B"}, "Comma-separated product types, one production line each")
	runCmd.Flags().Float64Var(&horizon, "horizon", 200, "Simulation horizon (in hours)")
	runCmd.Flags().Uint64Var(&seed, "seed", 42, "Seed for stochastic durations")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioFile, "scenarios", "", "YAML scenario file (overrides single-scenario flags)")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "Write the result table to this CSV file")

	rootCmd.AddCommand(runCmd)
}
