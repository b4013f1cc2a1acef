package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "forensiq",
	Short: "Forensic financial metrics and fraud scoring",
	Long: `Forensiq computes forensic accounting metrics from public financial
statements: the Beneish M-Score, Altman Z-Scores, Piotroski F-Score, DuPont
ROE decompositions, valuation ratios, CAPM beta/alpha, and a composite
fraud-risk score graded against published manipulation thresholds.

Usage:
  go run ./cmd/forensiq [command]

Examples:
  go run ./cmd/forensiq api
  go run ./cmd/forensiq compute AAPL
  go run ./cmd/forensiq fraud AAPL`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
