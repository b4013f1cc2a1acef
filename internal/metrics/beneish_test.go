package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minshik/forensiq/internal/contracts"
)

// beneishPair builds a two-period statement pair with every Beneish input
// present and hand-checkable ratios.
func beneishPair() *contracts.StatementPair {
	return &contracts.StatementPair{
		Current: contracts.FinancialStatement{
			PeriodEnd:            time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			PeriodType:           contracts.PeriodAnnual,
			Revenue:              contracts.Ptr(1200),
			CostOfGoodsSold:      contracts.Ptr(780),
			SGAExpense:           contracts.Ptr(250),
			Depreciation:         contracts.Ptr(55),
			Receivables:          contracts.Ptr(144),
			CurrentAssets:        contracts.Ptr(600),
			PPE:                  contracts.Ptr(350),
			MarketableSecurities: contracts.Ptr(50),
			TotalAssets:          contracts.Ptr(1300),
			TotalLiabilities:     contracts.Ptr(560),
			NetIncome:            contracts.Ptr(150),
			OperatingCashFlow:    contracts.Ptr(120),
		},
		Prior: contracts.FinancialStatement{
			PeriodEnd:            time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			PeriodType:           contracts.PeriodAnnual,
			Revenue:              contracts.Ptr(1000),
			CostOfGoodsSold:      contracts.Ptr(600),
			SGAExpense:           contracts.Ptr(200),
			Depreciation:         contracts.Ptr(50),
			Receivables:          contracts.Ptr(100),
			CurrentAssets:        contracts.Ptr(500),
			PPE:                  contracts.Ptr(300),
			MarketableSecurities: contracts.Ptr(0),
			TotalAssets:          contracts.Ptr(1000),
			TotalLiabilities:     contracts.Ptr(400),
			NetIncome:            contracts.Ptr(80),
			OperatingCashFlow:    contracts.Ptr(100),
		},
	}
}

func TestComputeBeneish_Components(t *testing.T) {
	mScore, comps := ComputeBeneish(beneishPair())

	// Receivables/revenue moved from 0.10 to 0.12
	dsri, ok := comps.DSRI.Float()
	require.True(t, ok)
	assert.InDelta(t, 1.2, dsri, 1e-9)

	// Prior margin 0.40 over current margin 0.35
	gmi, ok := comps.GMI.Float()
	require.True(t, ok)
	assert.InDelta(t, 0.40/0.35, gmi, 1e-9)

	// Soft asset share: prior 200/1000, current 300/1300
	aqi, ok := comps.AQI.Float()
	require.True(t, ok)
	assert.InDelta(t, (300.0/1300.0)/(200.0/1000.0), aqi, 1e-9)

	sgi, ok := comps.SGI.Float()
	require.True(t, ok)
	assert.InDelta(t, 1.2, sgi, 1e-9)

	depi, ok := comps.DEPI.Float()
	require.True(t, ok)
	assert.InDelta(t, (50.0/350.0)/(55.0/405.0), depi, 1e-9)

	sgai, ok := comps.SGAI.Float()
	require.True(t, ok)
	assert.InDelta(t, (250.0/1200.0)/(200.0/1000.0), sgai, 1e-9)

	lvgi, ok := comps.LVGI.Float()
	require.True(t, ok)
	assert.InDelta(t, (560.0/1300.0)/(400.0/1000.0), lvgi, 1e-9)

	// Accruals are net income minus operating cash flow
	tata, ok := comps.TATA.Float()
	require.True(t, ok)
	assert.InDelta(t, 30.0/1300.0, tata, 1e-9)

	expected := -4.84 +
		0.92*dsri + 0.528*gmi + 0.404*aqi + 0.892*sgi +
		0.115*depi - 0.172*sgai + 4.679*tata - 0.327*lvgi

	m, ok := mScore.Float()
	require.True(t, ok)
	assert.InDelta(t, expected, m, 1e-9)
}

func TestComputeBeneish_MissingFieldNullsAggregateOnly(t *testing.T) {
	pair := beneishPair()
	pair.Current.Receivables = nil
	pair.Current.OperatingCashFlow = nil

	mScore, comps := ComputeBeneish(pair)

	require.True(t, mScore.IsNull())
	assert.Equal(t, "insufficient_fields: DSRI, TATA", *mScore.Reason)

	// The other components stay individually reported
	assert.True(t, comps.DSRI.IsNull())
	assert.True(t, comps.TATA.IsNull())
	assert.False(t, comps.GMI.IsNull())
	assert.False(t, comps.SGI.IsNull())
	assert.False(t, comps.LVGI.IsNull())
}

func TestComputeBeneish_ZeroRevenueDenominator(t *testing.T) {
	pair := beneishPair()
	pair.Prior.Revenue = contracts.Ptr(0)

	mScore, comps := ComputeBeneish(pair)

	require.True(t, mScore.IsNull())
	assert.True(t, comps.DSRI.IsNull())
	assert.True(t, comps.SGI.IsNull())
}
