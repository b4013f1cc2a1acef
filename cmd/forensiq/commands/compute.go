package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/minshik/forensiq/internal/api/handlers"
)

// computeCmd represents the compute command
var computeCmd = &cobra.Command{
	Use:   "compute <ticker>",
	Short: "Compute the metric bundle for a ticker",
	Long: `Fetches statements and market data for a ticker, computes the
requested metric families and prints the bundle as JSON.

Example:
  go run ./cmd/forensiq compute AAPL
  go run ./cmd/forensiq compute AAPL --families beneish,altman --precision 2`,
	Args: cobra.ExactArgs(1),
	RunE: runCompute,
}

var (
	computeFamilies  string
	computePrecision int
	computeRefresh   bool
)

func init() {
	rootCmd.AddCommand(computeCmd)

	computeCmd.Flags().StringVar(&computeFamilies, "families", "", "comma-separated metric families (default: all)")
	computeCmd.Flags().IntVar(&computePrecision, "precision", 0, "rounding precision: 2, 4, 6 or 8 (default: configured)")
	computeCmd.Flags().BoolVar(&computeRefresh, "force-refresh", false, "bypass the result cache")
}

func runCompute(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	families, err := handlers.ParseFamilies(computeFamilies)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	response, err := a.pipeline.Metrics(ctx, args[0], families, computePrecision, computeRefresh)
	if err != nil {
		return fmt.Errorf("compute %s: %w", args[0], err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(response)
}
