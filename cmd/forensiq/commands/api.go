package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/minshik/forensiq/internal/api"
	"github.com/minshik/forensiq/internal/api/handlers"
	"github.com/minshik/forensiq/internal/scheduler"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the REST API server",
	Long: `Starts the REST API server.

Endpoints:
  GET /health                     - Health check
  GET /api/metrics/{ticker}       - Full metric bundle
  GET /api/fraud/{ticker}         - Composite fraud score
  GET /api/fraud/{ticker}/history - Persisted fraud-score history
  GET /api/company/summary        - Company reference record
  GET /api/search                 - Ticker search

Example:
  go run ./cmd/forensiq api
  go run ./cmd/forensiq api --port 8090`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if apiPort != "" {
		a.cfg.Port = apiPort
	}

	log := a.logger

	if a.history != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := a.history.EnsureSchema(ctx); err != nil {
			cancel()
			return fmt.Errorf("ensure schema: %w", err)
		}
		cancel()
		log.Info("Score history schema ready")
	}

	router := api.NewRouter(api.RouterConfig{
		Metrics:         handlers.NewMetricsHandler(a.pipeline, log),
		Fraud:           handlers.NewFraudHandler(a.pipeline, a.history, log),
		Company:         handlers.NewCompanyHandler(a.provider, log),
		MetricsEndpoint: a.cfg.MetricsEnabled,
	}, log)

	server := api.New(a.cfg, log, router)

	var sched *scheduler.Scheduler
	if a.cfg.Scheduler.Enabled && len(a.cfg.Scheduler.Watchlist) > 0 {
		sched = scheduler.New(log)
		warm := scheduler.NewWarmJob(a.pipeline, log, a.cfg.Scheduler.Watchlist, a.cfg.Scheduler.WarmCron)
		if err := sched.AddJob(warm); err != nil {
			return fmt.Errorf("schedule warm job: %w", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("Server running on http://localhost:%s\n", a.cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
