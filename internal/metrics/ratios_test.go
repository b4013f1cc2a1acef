package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minshik/forensiq/internal/contracts"
)

func ratiosPair() *contracts.StatementPair {
	return &contracts.StatementPair{
		Current: contracts.FinancialStatement{
			Revenue:            contracts.Ptr(2000),
			Inventory:          contracts.Ptr(150),
			CurrentAssets:      contracts.Ptr(800),
			CurrentLiabilities: contracts.Ptr(400),
			TotalAssets:        contracts.Ptr(2500),
			TotalLiabilities:   contracts.Ptr(1500),
			TotalEquity:        contracts.Ptr(1000),
			NetIncome:          contracts.Ptr(200),
			SharesOutstanding:  contracts.Ptr(100),
			DividendsPaid:      contracts.Ptr(-50), // cash outflow convention
		},
		Prior: contracts.FinancialStatement{
			NetIncome:         contracts.Ptr(160),
			SharesOutstanding: contracts.Ptr(100),
		},
	}
}

func marketAt(price float64) *contracts.MarketSnapshot {
	return &contracts.MarketSnapshot{
		Ticker:    "TST",
		LastPrice: contracts.Ptr(price),
	}
}

func TestComputeCoreRatios(t *testing.T) {
	var out contracts.RatioSet
	ComputeCoreRatios(ratiosPair(), &out)

	current, ok := out.Current.Float()
	require.True(t, ok)
	assert.InDelta(t, 2.0, current, 1e-9)

	quick, ok := out.Quick.Float()
	require.True(t, ok)
	assert.InDelta(t, (800.0-150.0)/400.0, quick, 1e-9)

	de, ok := out.DebtToEquity.Float()
	require.True(t, ok)
	assert.InDelta(t, 1.5, de, 1e-9)

	roe, ok := out.ROE.Float()
	require.True(t, ok)
	assert.InDelta(t, 0.2, roe, 1e-9)

	// Adjusted ROE uses assets minus liabilities as the equity base
	roeAdj, ok := out.ROEAdjusted.Float()
	require.True(t, ok)
	assert.InDelta(t, 200.0/1000.0, roeAdj, 1e-9)

	roa, ok := out.ROA.Float()
	require.True(t, ok)
	assert.InDelta(t, 200.0/2500.0, roa, 1e-9)
}

func TestDebtToEquity_ZeroOnEitherSide(t *testing.T) {
	pair := ratiosPair()
	pair.Current.TotalLiabilities = contracts.Ptr(0)

	var out contracts.RatioSet
	ComputeCoreRatios(pair, &out)

	require.True(t, out.DebtToEquity.IsNull())
	assert.Equal(t, "debt_to_equity denominator is zero", *out.DebtToEquity.Reason)

	pair = ratiosPair()
	pair.Current.TotalEquity = contracts.Ptr(0)
	out = contracts.RatioSet{}
	ComputeCoreRatios(pair, &out)

	require.True(t, out.DebtToEquity.IsNull())
	assert.Equal(t, "debt_to_equity denominator is zero", *out.DebtToEquity.Reason)
}

func TestROE_ZeroEquity(t *testing.T) {
	pair := ratiosPair()
	pair.Current.NetIncome = contracts.Ptr(50)
	pair.Current.TotalEquity = contracts.Ptr(0)

	var out contracts.RatioSet
	ComputeCoreRatios(pair, &out)

	// Zero equity nulls the ratio instead of producing Infinity
	require.True(t, out.ROE.IsNull())
	assert.Equal(t, "roe denominator is zero", *out.ROE.Reason)

	// The DuPont decomposition nulls its aggregate through the equity factor
	dupont := ComputeDuPont(pair)
	require.True(t, dupont.ROE3Step.EquityMultiplier.IsNull())
	require.True(t, dupont.ROE3Step.ROE.IsNull())
	assert.Equal(t, "equity_multiplier denominator is zero", *dupont.ROE3Step.ROE.Reason)
}

func TestCoreRatios_MissingFieldReasons(t *testing.T) {
	pair := ratiosPair()
	pair.Current.CurrentLiabilities = nil
	pair.Current.NetIncome = nil

	var out contracts.RatioSet
	ComputeCoreRatios(pair, &out)

	require.True(t, out.Current.IsNull())
	assert.Equal(t, "current_liabilities unavailable", *out.Current.Reason)

	require.True(t, out.ROE.IsNull())
	assert.Equal(t, "net_income unavailable", *out.ROE.Reason)
}

func TestComputePriceRatios(t *testing.T) {
	var out contracts.RatioSet
	ComputePriceRatios(ratiosPair(), marketAt(40), &out)

	// EPS 2.0, book value per share 10.0
	pe, ok := out.PE.Float()
	require.True(t, ok)
	assert.InDelta(t, 20.0, pe, 1e-9)

	pb, ok := out.PB.Float()
	require.True(t, ok)
	assert.InDelta(t, 4.0, pb, 1e-9)

	// Market cap falls back to price times shares: 4000
	ps, ok := out.PS.Float()
	require.True(t, ok)
	assert.InDelta(t, 4000.0/2000.0, ps, 1e-9)

	// EPS growth 2.0 over 1.6 = 25%
	peg, ok := out.PEG.Float()
	require.True(t, ok)
	assert.InDelta(t, 20.0/(100*0.25), peg, 1e-9)
}

func TestComputePriceRatios_NoPrice(t *testing.T) {
	var out contracts.RatioSet
	ComputePriceRatios(ratiosPair(), nil, &out)

	for _, leaf := range []contracts.Leaf{out.PE, out.PB, out.PS, out.PEG} {
		require.True(t, leaf.IsNull())
		assert.Equal(t, "last_price unavailable", *leaf.Reason)
	}
}

func TestPEG_NonPositiveGrowth(t *testing.T) {
	pair := ratiosPair()
	pair.Prior.NetIncome = contracts.Ptr(200) // flat earnings

	var out contracts.RatioSet
	ComputePriceRatios(pair, marketAt(40), &out)

	require.True(t, out.PEG.IsNull())
	assert.Equal(t, "earnings growth not positive", *out.PEG.Reason)
}

func TestComputeDividendRatios_UsesMagnitudes(t *testing.T) {
	var out contracts.RatioSet
	ComputeDividendRatios(ratiosPair(), marketAt(40), &out)

	// Dividends arrive as -50; magnitudes throughout
	yield, ok := out.DividendYield.Float()
	require.True(t, ok)
	assert.InDelta(t, 0.5/40.0, yield, 1e-9)

	payout, ok := out.DividendPayoutRatio.Float()
	require.True(t, ok)
	assert.InDelta(t, 50.0/200.0, payout, 1e-9)

	coverage, ok := out.DividendCoverageRatio.Float()
	require.True(t, ok)
	assert.InDelta(t, 4.0, coverage, 1e-9)
}

func TestComputeDividendRatios_ZeroDividend(t *testing.T) {
	pair := ratiosPair()
	pair.Current.DividendsPaid = contracts.Ptr(0)

	var out contracts.RatioSet
	ComputeDividendRatios(pair, marketAt(40), &out)

	require.True(t, out.DividendCoverageRatio.IsNull())
	assert.Equal(t, "dividend_coverage_ratio denominator is zero", *out.DividendCoverageRatio.Reason)
}
