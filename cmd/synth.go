package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/search-sim/search-sim/sim/evallog"
)

var (
	// CLI flags for the synth subcommand
	synthTrials int     // Number of synthetic evaluations to generate
	synthSeed   int64   // Seed for the synthetic objective
	synthNoise  float64 // Multiplicative noise level of the objective
	synthOut    string  // Output path for the generated log
)

// synthCmd writes a synthetic evaluation log, useful for demos and for
// exercising the simulator without a recorded experiment
var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Generate a synthetic evaluation log from a noisy benchmark objective",
	Run: func(cmd *cobra.Command, args []string) {
		log, err := evallog.Synthesize(synthTrials, synthSeed, synthNoise)
		if err != nil {
			logrus.Fatalf("Failed to synthesize evaluation log: %v", err)
		}
		if err := evallog.Write(synthOut, log); err != nil {
			logrus.Fatalf("Failed to write evaluation log: %v", err)
		}
		logrus.Infof("Wrote %d synthetic evaluations to %s", log.Len(), synthOut)
	},
}

func init() {
	synthCmd.Flags().IntVar(&synthTrials, "n", 200, "Number of synthetic evaluations")
	synthCmd.Flags().Int64Var(&synthSeed, "seed", 42, "Seed for the synthetic objective")
	synthCmd.Flags().Float64Var(&synthNoise, "noise", 0.1, "Multiplicative noise level")
	synthCmd.Flags().StringVar(&synthOut, "out", "synthetic_evals.txt", "Output path for the generated log")
}
