package scheduler

import (
	"context"
	"fmt"
	"strings"

	"github.com/minshik/forensiq/internal/pipeline"
	"github.com/minshik/forensiq/pkg/logger"
)

// WarmJob precomputes the full metric bundle for every watchlist ticker so
// the first request of the day is served from cache.
type WarmJob struct {
	pipeline  *pipeline.Pipeline
	logger    *logger.Logger
	watchlist []string
	schedule  string
}

// NewWarmJob creates a cache warm-up job
func NewWarmJob(p *pipeline.Pipeline, log *logger.Logger, watchlist []string, schedule string) *WarmJob {
	return &WarmJob{
		pipeline:  p,
		logger:    log,
		watchlist: watchlist,
		schedule:  schedule,
	}
}

// Name returns the job name
func (j *WarmJob) Name() string {
	return "cache_warm"
}

// Schedule returns the cron schedule expression
func (j *WarmJob) Schedule() string {
	return j.schedule
}

// Run computes and caches every watchlist ticker. Individual failures are
// collected so one bad ticker does not stop the rest of the list.
func (j *WarmJob) Run(ctx context.Context) error {
	var failed []string

	for _, ticker := range j.watchlist {
		if _, err := j.pipeline.Metrics(ctx, ticker, nil, 0, true); err != nil {
			j.logger.WithError(err).WithField("ticker", ticker).
				Warn("Cache warm failed for ticker")
			failed = append(failed, ticker)
		}
	}

	j.logger.WithFields(map[string]interface{}{
		"total":  len(j.watchlist),
		"failed": len(failed),
	}).Info("Cache warm finished")

	if len(failed) > 0 {
		return fmt.Errorf("cache warm failed for: %s", strings.Join(failed, ", "))
	}
	return nil
}
