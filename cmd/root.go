package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/plotter"

	sim "github.com/search-sim/search-sim/sim"
	"github.com/search-sim/search-sim/sim/chart"
	"github.com/search-sim/search-sim/sim/evallog"
)

var (
	// CLI flags for the run subcommand
	evalsFile       string // Path to the per-evaluation validation log
	hyperbandFile   string // Path to the precomputed Hyperband trace (optional)
	runs            int    // Number of simulated random-search runs
	seed            int64  // Master seed for permutation drawing
	overlayCurves   int    // Number of raw simulated curves drawn behind the median
	accColumn       int    // Zero-based validation-accuracy column in the evaluation log
	outFile         string // Rendered figure path (.png, .svg, .pdf)
	chartConfigFile string // Optional YAML overriding chart presentation
	logLevel        string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "search-sim",
	Short: "Random-search baseline simulator for hyperparameter-search curves",
}

// runCmd loads the logs, simulates the random-search ensemble and renders
// the best-so-far figure
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate random-search ordering of a recorded log and plot best-so-far curves",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if evalsFile == "" {
			logrus.Fatalf("Evaluation log not provided. Exiting.")
		}

		startTime := time.Now()

		log, err := evallog.Load(evalsFile, accColumn)
		if err != nil {
			logrus.Fatalf("Failed to load evaluation log: %v", err)
		}
		logrus.Infof("Loaded %d evaluations from %s", log.Len(), evalsFile)

		ensemble, err := sim.SimulateEnsemble(log.Errors(), runs, sim.NewSimulationKey(seed))
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		median, err := sim.AggregateMedian(ensemble)
		if err != nil {
			logrus.Fatalf("Aggregation failed: %v", err)
		}
		logrus.Infof("Simulated %d runs of %d evaluations each", ensemble.Runs(), ensemble.Evals())

		cfg := chart.DefaultConfig()
		if chartConfigFile != "" {
			cfg, err = loadChartConfig(chartConfigFile)
			if err != nil {
				logrus.Fatalf("Failed to load chart config: %v", err)
			}
		}
		fig := chart.New(cfg)

		// Raw curves go in first so the named curves draw on top of them
		k := overlayCurves
		if k > ensemble.Runs() {
			k = ensemble.Runs()
		}
		for i := 0; i < k; i++ {
			name := ""
			if i == 0 {
				name = "random search (single runs)"
			}
			fig.AddOverlay(name, chart.CurvePoints(ensemble.Curves[i]))
		}
		fig.AddSeries(fmt.Sprintf("random search (median of %d runs)", ensemble.Runs()),
			chart.CurvePoints(median))

		if hyperbandFile != "" {
			ref, err := evallog.LoadReference(hyperbandFile)
			if err != nil {
				logrus.Fatalf("Failed to load Hyperband trace: %v", err)
			}
			pts := make(plotter.XYs, len(ref))
			for i, p := range ref {
				pts[i] = plotter.XY{X: p.Evaluations, Y: p.BestError}
			}
			fig.AddSeries("hyperband", pts)
		}

		if err := fig.Render(outFile); err != nil {
			logrus.Fatalf("Failed to render figure: %v", err)
		}
		logrus.Infof("Wrote %s in %v", outFile, time.Since(startTime))
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
	runCmd.Flags().StringVar(&evalsFile, "evals-file", "", "Per-evaluation validation log (stat file)")
	runCmd.Flags().StringVar(&hyperbandFile, "hyperband-file", "", "Precomputed Hyperband trace to overlay (optional)")
	runCmd.Flags().IntVar(&runs, "runs", sim.DefaultRuns, "Number of simulated random-search runs")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random permutation drawing")
	runCmd.Flags().IntVar(&overlayCurves, "overlay", 20, "Number of raw simulated curves drawn behind the median")
	runCmd.Flags().IntVar(&accColumn, "acc-column", evallog.DefaultAccuracyColumn, "Zero-based validation-accuracy column index")
	runCmd.Flags().StringVar(&outFile, "out", "best_curves.png", "Rendered figure path (.png, .svg, .pdf)")
	runCmd.Flags().StringVar(&chartConfigFile, "chart-config", "", "YAML file overriding chart presentation")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(synthCmd)
}
