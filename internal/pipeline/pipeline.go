package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/minshik/forensiq/internal/contracts"
	"github.com/minshik/forensiq/internal/external/yahoo"
	"github.com/minshik/forensiq/internal/fraud"
	"github.com/minshik/forensiq/internal/metrics"
	"github.com/minshik/forensiq/internal/normalize"
	"github.com/minshik/forensiq/internal/quality"
	"github.com/minshik/forensiq/internal/store"
	"github.com/minshik/forensiq/pkg/logger"
	"github.com/minshik/forensiq/pkg/redis"
)

// accountingTolerance is the accepted relative gap in the accounting
// equation check, as a fraction of total assets
const accountingTolerance = 0.02

// MetricsResponse is the full per-ticker result bundle. Missing mirrors the
// quality report's field list at the top level of the payload.
type MetricsResponse struct {
	Ticker  string                        `json:"ticker"`
	Metrics *contracts.ComputedMetrics    `json:"metrics"`
	Quality *contracts.DataQualityReport  `json:"data_quality"`
	Missing []string                      `json:"missing"`
	Audit   contracts.AuditMeta           `json:"audit"`
}

// FraudResponse is the fraud-score result bundle
type FraudResponse struct {
	Ticker          string                       `json:"ticker"`
	Quality         *contracts.DataQualityReport `json:"data_quality"`
	Score           contracts.FraudScoreResult   `json:"score"`
	Signals         []contracts.FraudSignal      `json:"signals"`
	Recommendations []contracts.Recommendation   `json:"recommendations"`
	SourcesMeta     []string                     `json:"sources_meta"`
	GeneratedAt     time.Time                    `json:"generated_at"`
}

// Pipeline runs the fetch, normalize, compute flow for one ticker and
// handles caching and history persistence around it.
type Pipeline struct {
	provider   *yahoo.Client
	normalizer *normalize.Normalizer
	engine     *metrics.Engine
	cache      *redis.Cache
	history    *store.FraudHistoryRepository
	logger     *logger.Logger
	cacheTTL   time.Duration
}

// New creates a pipeline. cache and history may be nil; both concerns are
// then skipped.
func New(
	provider *yahoo.Client,
	normalizer *normalize.Normalizer,
	engine *metrics.Engine,
	cache *redis.Cache,
	history *store.FraudHistoryRepository,
	log *logger.Logger,
	cacheTTL time.Duration,
) *Pipeline {
	return &Pipeline{
		provider:   provider,
		normalizer: normalizer,
		engine:     engine,
		cache:      cache,
		history:    history,
		logger:     log,
		cacheTTL:   cacheTTL,
	}
}

// Metrics computes the metric bundle for a ticker. Full-bundle requests at
// default precision are served from cache for the rest of the day unless
// forceRefresh is set.
func (p *Pipeline) Metrics(ctx context.Context, ticker string, families []contracts.MetricFamily, precision int, forceRefresh bool) (*MetricsResponse, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	cacheable := len(families) == 0 && precision == 0
	cacheKey := redis.MetricsKey(ticker, time.Now().UTC())

	if cacheable && !forceRefresh && p.cache != nil {
		if cached, found := p.cacheGet(ctx, cacheKey); found {
			return cached, nil
		}
	}

	response, err := p.compute(ctx, ticker, families, precision)
	if err != nil {
		return nil, err
	}

	if cacheable && p.cache != nil {
		p.cacheSet(ctx, cacheKey, response)
	}

	return response, nil
}

// Fraud computes the fraud score for a ticker and appends the result to the
// score history when a database is configured.
func (p *Pipeline) Fraud(ctx context.Context, ticker string, forceRefresh bool) (*FraudResponse, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	cacheKey := redis.FraudKey(ticker, time.Now().UTC())
	if !forceRefresh && p.cache != nil {
		var cached FraudResponse
		if found, err := p.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return &cached, nil
		}
	}

	pair, _, err := p.inputs(ctx, ticker)
	if err != nil {
		return nil, err
	}

	score, signals, recs, err := p.engine.ComputeFraudScore(ctx, pair, nil)
	if err != nil {
		return nil, err
	}

	response := &FraudResponse{
		Ticker:          ticker,
		Quality:         quality.Assess(pair, []contracts.MetricFamily{contracts.FamilyBeneish}),
		Score:           *score,
		Signals:         signals,
		Recommendations: recs,
		SourcesMeta:     []string{yahoo.SourceName},
		GeneratedAt:     time.Now().UTC(),
	}

	if p.history != nil {
		snap := &store.FraudSnapshot{
			Ticker:            ticker,
			Score:             score.Value,
			Band:              score.Band,
			MScore:            mScoreOf(signals),
			ThresholdsVersion: fraud.ThresholdsVersion,
			ComputedAt:        response.GeneratedAt,
		}
		if err := p.history.Save(ctx, snap); err != nil {
			// History is an audit trail, not a dependency of the response
			p.logger.WithError(err).WithField("ticker", ticker).
				Warn("Failed to persist fraud snapshot")
		}
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, cacheKey, response, p.cacheTTL); err != nil {
			p.logger.WithError(err).Warn("Failed to cache fraud score")
		}
	}

	return response, nil
}

// compute runs one full uncached computation
func (p *Pipeline) compute(ctx context.Context, ticker string, families []contracts.MetricFamily, precision int) (*MetricsResponse, error) {
	records, err := p.provider.FetchStatements(ctx, ticker)
	if err != nil {
		return nil, err
	}

	market, err := p.provider.FetchMarketSnapshot(ctx, ticker)
	if err != nil {
		// Market data degrades price, Altman Z and CAPM leaves; statement
		// metrics must still compute
		p.logger.WithError(err).WithField("ticker", ticker).
			Warn("Market snapshot unavailable")
		market = nil
	}

	normalized, err := p.normalizer.Normalize(records, contracts.PeriodTTM)

	var alignErr *contracts.AlignmentError
	if errors.As(err, &alignErr) {
		// Not enough periods to compute anything; report an all-missing
		// quality tier instead of failing the request
		if len(families) == 0 {
			families = contracts.AllFamilies()
		}
		degraded := quality.AssessDegraded(families)
		return &MetricsResponse{
			Ticker:  ticker,
			Metrics: &contracts.ComputedMetrics{},
			Quality: degraded,
			Missing: degraded.Missing,
			Audit: contracts.AuditMeta{
				StatementAlignment: "unaligned",
				GeneratedAt:        time.Now().UTC(),
				SourcesUsed:        []string{yahoo.SourceName},
			},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	result, report, err := p.engine.Compute(ctx, &normalized.Pair, market, families, precision)
	if err != nil {
		return nil, err
	}

	curOK, curChecked := normalize.CheckAccountingEquation(&normalized.Pair.Current, accountingTolerance)
	priOK, priChecked := normalize.CheckAccountingEquation(&normalized.Pair.Prior, accountingTolerance)

	validation := make(map[string]bool)
	if curChecked {
		validation["accounting_equation_current"] = curOK
	}
	if priChecked {
		validation["accounting_equation_prior"] = priOK
	}

	return &MetricsResponse{
		Ticker:  ticker,
		Metrics: result,
		Quality: report,
		Missing: report.Missing,
		Audit: contracts.AuditMeta{
			PeriodUsed:         normalized.PeriodUsed,
			TTMQuarters:        normalized.TTMQuarters,
			StatementAlignment: normalized.Alignment,
			GeneratedAt:        time.Now().UTC(),
			SourcesUsed:        []string{yahoo.SourceName},
			Validation:         validation,
		},
	}, nil
}

// inputs fetches and normalizes the statement pair without computing
func (p *Pipeline) inputs(ctx context.Context, ticker string) (*contracts.StatementPair, *normalize.Result, error) {
	records, err := p.provider.FetchStatements(ctx, ticker)
	if err != nil {
		return nil, nil, err
	}
	normalized, err := p.normalizer.Normalize(records, contracts.PeriodTTM)
	if err != nil {
		return nil, nil, err
	}
	return &normalized.Pair, normalized, nil
}

func (p *Pipeline) cacheGet(ctx context.Context, key string) (*MetricsResponse, bool) {
	var response MetricsResponse
	found, err := p.cache.Get(ctx, key, &response)
	if err != nil {
		p.logger.WithError(err).Warn("Failed to decode cached metrics")
		return nil, false
	}
	if !found {
		return nil, false
	}
	return &response, true
}

func (p *Pipeline) cacheSet(ctx context.Context, key string, response *MetricsResponse) {
	if err := p.cache.Set(ctx, key, response, p.cacheTTL); err != nil {
		p.logger.WithError(err).Warn("Failed to cache metrics")
	}
}

// mScoreOf extracts the composite M-Score value from the signal list
func mScoreOf(signals []contracts.FraudSignal) *float64 {
	for _, s := range signals {
		if s.Name == "mscore" {
			return s.Value
		}
	}
	return nil
}
