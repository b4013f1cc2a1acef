package metrics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/minshik/forensiq/internal/capm"
	"github.com/minshik/forensiq/internal/contracts"
	"github.com/minshik/forensiq/internal/fraud"
	"github.com/minshik/forensiq/internal/quality"
	"github.com/minshik/forensiq/internal/sanitize"
	"github.com/minshik/forensiq/pkg/logger"
)

const unrequestedReason = "family not requested"

// Engine computes the full metric bundle from a normalized statement pair
// and a market snapshot. It is stateless and safe for concurrent use.
type Engine struct {
	logger    *logger.Logger
	riskFree  float64
	precision int
}

// NewEngine creates a metrics engine. precision is the default rounding
// precision applied when a request does not specify one.
func NewEngine(log *logger.Logger, riskFree float64, precision int) *Engine {
	return &Engine{
		logger:    log,
		riskFree:  riskFree,
		precision: precision,
	}
}

// Compute evaluates the requested metric families. Families run concurrently;
// each writes a disjoint region of the result. An empty family list means
// all families. Missing inputs degrade individual leaves, never the call:
// the only error paths are a nil pair and an invalid precision.
func (e *Engine) Compute(ctx context.Context, pair *contracts.StatementPair, market *contracts.MarketSnapshot, families []contracts.MetricFamily, precision int) (*contracts.ComputedMetrics, *contracts.DataQualityReport, error) {
	if pair == nil {
		return nil, nil, contracts.ErrNoStatements
	}
	if err := pair.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid statement pair: %w", err)
	}
	if precision == 0 {
		precision = e.precision
	}
	if len(families) == 0 {
		families = contracts.AllFamilies()
	}

	report := quality.Assess(pair, families)

	result := &contracts.ComputedMetrics{}
	g, _ := errgroup.WithContext(ctx)

	for _, fam := range families {
		switch fam {
		case contracts.FamilyCore:
			g.Go(func() error {
				ComputeCoreRatios(pair, &result.Ratios)
				return nil
			})
		case contracts.FamilyPrice:
			g.Go(func() error {
				ComputePriceRatios(pair, market, &result.Ratios)
				return nil
			})
		case contracts.FamilyDividend:
			g.Go(func() error {
				ComputeDividendRatios(pair, market, &result.Ratios)
				return nil
			})
		case contracts.FamilyBeneish:
			g.Go(func() error {
				result.BeneishMScore, result.BeneishComponents = ComputeBeneish(pair)
				return nil
			})
		case contracts.FamilyAltman:
			g.Go(func() error {
				result.Altman = ComputeAltman(pair, market)
				return nil
			})
		case contracts.FamilyPiotroski:
			g.Go(func() error {
				result.Piotroski = ComputePiotroski(pair)
				return nil
			})
		case contracts.FamilyDuPont:
			g.Go(func() error {
				result.DuPont = ComputeDuPont(pair)
				return nil
			})
		case contracts.FamilyCAPM:
			g.Go(func() error {
				result.CAPM = capm.Compute(market, e.riskFree)
				return nil
			})
		default:
			return nil, nil, fmt.Errorf("unknown metric family %q", fam)
		}
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	// Leaves of families the caller skipped stay null with an explicit reason
	if err := sanitize.FillEmpty(result, unrequestedReason); err != nil {
		return nil, nil, err
	}
	if err := sanitize.Apply(result, precision); err != nil {
		return nil, nil, err
	}

	e.logger.WithFields(map[string]interface{}{
		"families":  len(families),
		"tier":      report.Tier,
		"missing":   len(report.Missing),
		"precision": precision,
	}).Debug("metric bundle computed")

	return result, report, nil
}

// ComputeFraudScore runs the Beneish family and grades it into the composite
// fraud score, signal list and audit recommendations.
func (e *Engine) ComputeFraudScore(ctx context.Context, pair *contracts.StatementPair, market *contracts.MarketSnapshot) (*contracts.FraudScoreResult, []contracts.FraudSignal, []contracts.Recommendation, error) {
	result, _, err := e.Compute(ctx, pair, market, []contracts.MetricFamily{contracts.FamilyBeneish}, e.precision)
	if err != nil {
		return nil, nil, nil, err
	}

	score, signals := fraud.Aggregate(result.BeneishMScore, result.BeneishComponents)
	score.Value = sanitize.Round(score.Value, 2)
	recs := fraud.Recommend(signals)

	e.logger.WithFields(map[string]interface{}{
		"score":   score.Value,
		"band":    score.Band,
		"signals": len(signals),
	}).Debug("fraud score computed")

	return &score, signals, recs, nil
}
