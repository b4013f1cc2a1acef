package capm

import (
	"math"
	"sort"
	"time"

	"github.com/minshik/forensiq/internal/contracts"
)

// MinOverlappingReturns is the minimum number of overlapping monthly
// returns required before beta and alpha are reported. One year of data.
const MinOverlappingReturns = 12

// monthsPerYear annualizes the monthly return frequency used here
const monthsPerYear = 12

const insufficientHistory = "insufficient price history"

// Compute derives beta and alpha from the stock and benchmark monthly price
// series in the snapshot. riskFree is the annual risk-free rate. Both leaves
// are null with the same reason when the overlap is too short or the
// benchmark has no variance.
func Compute(market *contracts.MarketSnapshot, riskFree float64) contracts.CAPMResult {
	if market == nil {
		return nullResult()
	}

	stockReturns, benchReturns := alignedReturns(market.PriceSeries, market.BenchmarkPriceSeries)
	if len(stockReturns) < MinOverlappingReturns {
		return nullResult()
	}

	benchVar := variance(benchReturns)
	if benchVar < 1e-12 {
		return nullResult()
	}

	beta := covariance(stockReturns, benchReturns) / benchVar

	// CAPM alpha at monthly frequency, annualized to match the window
	rfMonthly := riskFree / monthsPerYear
	alphaMonthly := mean(stockReturns) - (rfMonthly + beta*(mean(benchReturns)-rfMonthly))
	alpha := alphaMonthly * monthsPerYear

	if math.IsNaN(beta) || math.IsInf(beta, 0) || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nullResult()
	}

	return contracts.CAPMResult{
		Beta:  contracts.Value(beta),
		Alpha: contracts.Value(alpha),
	}
}

func nullResult() contracts.CAPMResult {
	return contracts.CAPMResult{
		Beta:  contracts.Null(insufficientHistory),
		Alpha: contracts.Null(insufficientHistory),
	}
}

// alignedReturns computes period returns on the dates both series share
func alignedReturns(stock, bench []contracts.PricePoint) ([]float64, []float64) {
	benchByDate := make(map[time.Time]float64, len(bench))
	for _, p := range bench {
		benchByDate[dateOnly(p.Date)] = p.Price
	}

	type pairPoint struct {
		date  time.Time
		stock float64
		bench float64
	}

	pairs := make([]pairPoint, 0, len(stock))
	for _, p := range stock {
		d := dateOnly(p.Date)
		if b, ok := benchByDate[d]; ok && p.Price > 0 && b > 0 {
			pairs = append(pairs, pairPoint{date: d, stock: p.Price, bench: b})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].date.Before(pairs[j].date) })

	if len(pairs) < 2 {
		return nil, nil
	}

	stockReturns := make([]float64, 0, len(pairs)-1)
	benchReturns := make([]float64, 0, len(pairs)-1)
	for i := 1; i < len(pairs); i++ {
		stockReturns = append(stockReturns, pairs[i].stock/pairs[i-1].stock-1)
		benchReturns = append(benchReturns, pairs[i].bench/pairs[i-1].bench-1)
	}
	return stockReturns, benchReturns
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// variance is the sample variance
func variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sumSq float64
	for _, v := range values {
		diff := v - m
		sumSq += diff * diff
	}
	return sumSq / float64(len(values)-1)
}

// covariance is the sample covariance of two equal-length series
func covariance(xs, ys []float64) float64 {
	if len(xs) != len(ys) || len(xs) < 2 {
		return 0
	}
	mx, my := mean(xs), mean(ys)
	var sum float64
	for i := range xs {
		sum += (xs[i] - mx) * (ys[i] - my)
	}
	return sum / float64(len(xs)-1)
}
