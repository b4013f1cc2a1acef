package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// fraudCmd represents the fraud command
var fraudCmd = &cobra.Command{
	Use:   "fraud <ticker>",
	Short: "Compute the composite fraud score for a ticker",
	Long: `Runs the Beneish indices for a ticker, grades each against the
published manipulation thresholds and prints the composite 0-100 fraud
score, the per-signal severities and the suggested audit procedures.

Example:
  go run ./cmd/forensiq fraud AAPL`,
	Args: cobra.ExactArgs(1),
	RunE: runFraud,
}

var fraudRefresh bool

func init() {
	rootCmd.AddCommand(fraudCmd)

	fraudCmd.Flags().BoolVar(&fraudRefresh, "force-refresh", false, "bypass the result cache")
}

func runFraud(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if a.history != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := a.history.EnsureSchema(ctx); err != nil {
			cancel()
			return fmt.Errorf("ensure schema: %w", err)
		}
		cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	response, err := a.pipeline.Fraud(ctx, args[0], fraudRefresh)
	if err != nil {
		return fmt.Errorf("fraud score %s: %w", args[0], err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(response)
}
