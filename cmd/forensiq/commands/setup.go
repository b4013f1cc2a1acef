package commands

import (
	"fmt"

	"github.com/minshik/forensiq/internal/external/yahoo"
	"github.com/minshik/forensiq/internal/metrics"
	"github.com/minshik/forensiq/internal/normalize"
	"github.com/minshik/forensiq/internal/pipeline"
	"github.com/minshik/forensiq/internal/store"
	"github.com/minshik/forensiq/pkg/config"
	"github.com/minshik/forensiq/pkg/database"
	"github.com/minshik/forensiq/pkg/logger"
	"github.com/minshik/forensiq/pkg/redis"
)

// app bundles the wired components shared by the CLI commands
type app struct {
	cfg      *config.Config
	logger   *logger.Logger
	provider *yahoo.Client
	pipeline *pipeline.Pipeline
	history  *store.FraudHistoryRepository

	db          *database.DB
	redisClient *redis.Client
}

// newApp loads config and wires the computation pipeline. The database and
// Redis are optional: history and caching are skipped when not configured.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if verbose {
		cfg.LogLevel = "debug"
	}
	log := logger.New(cfg)

	provider := yahoo.New(log, cfg.Provider)
	normalizer := normalize.New(log, cfg.Engine.MinTTMQuarters)
	engine := metrics.NewEngine(log, cfg.Engine.RiskFreeRate, cfg.Engine.DefaultPrecision)

	a := &app{
		cfg:      cfg,
		logger:   log,
		provider: provider,
	}

	redisClient, err := redis.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	a.redisClient = redisClient
	cache := redis.NewCache(redisClient, "forensiq")

	if cfg.Database.URL != "" {
		db, err := database.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		a.db = db
		a.history = store.NewFraudHistoryRepository(db.Pool)
	}

	a.pipeline = pipeline.New(provider, normalizer, engine, cache, a.history, log, cfg.Provider.CacheTTL)

	return a, nil
}

// close releases the app's connections
func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.redisClient != nil {
		_ = a.redisClient.Close()
	}
}
