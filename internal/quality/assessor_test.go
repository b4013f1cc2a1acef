package quality

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minshik/forensiq/internal/contracts"
)

func fullStatement() contracts.FinancialStatement {
	return contracts.FinancialStatement{
		Revenue:              contracts.Ptr(1000),
		CostOfGoodsSold:      contracts.Ptr(600),
		SGAExpense:           contracts.Ptr(200),
		Depreciation:         contracts.Ptr(50),
		Receivables:          contracts.Ptr(120),
		Inventory:            contracts.Ptr(80),
		CurrentAssets:        contracts.Ptr(500),
		CurrentLiabilities:   contracts.Ptr(300),
		PPE:                  contracts.Ptr(350),
		MarketableSecurities: contracts.Ptr(40),
		TotalAssets:          contracts.Ptr(1200),
		TotalLiabilities:     contracts.Ptr(700),
		TotalEquity:          contracts.Ptr(500),
		EBIT:                 contracts.Ptr(180),
		PretaxIncome:         contracts.Ptr(160),
		NetIncome:            contracts.Ptr(120),
		OperatingCashFlow:    contracts.Ptr(140),
		LongTermDebt:         contracts.Ptr(250),
		SharesOutstanding:    contracts.Ptr(100),
		DividendsPaid:        contracts.Ptr(-30),
		RetainedEarnings:     contracts.Ptr(400),
	}
}

func fullPair() *contracts.StatementPair {
	cur := fullStatement()
	cur.PeriodEnd = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	pri := fullStatement()
	pri.PeriodEnd = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	return &contracts.StatementPair{Current: cur, Prior: pri}
}

func TestAssess_Complete(t *testing.T) {
	report := Assess(fullPair(), contracts.AllFamilies())

	assert.Equal(t, contracts.TierComplete, report.Tier)
	assert.Empty(t, report.Missing)
}

func TestAssess_LimitedWhenNonCoreFieldMissing(t *testing.T) {
	pair := fullPair()
	pair.Current.RetainedEarnings = nil

	report := Assess(pair, contracts.AllFamilies())

	assert.Equal(t, contracts.TierLimited, report.Tier)
	assert.Contains(t, report.Missing, contracts.FieldRetainedEarnings)
}

func TestAssess_InsufficientWhenCoreFieldMissing(t *testing.T) {
	pair := fullPair()
	pair.Current.NetIncome = nil
	pair.Current.TotalEquity = nil

	report := Assess(pair, contracts.AllFamilies())

	assert.Equal(t, contracts.TierInsufficient, report.Tier)
	assert.Contains(t, report.Missing, contracts.FieldNetIncome)
	assert.Contains(t, report.Missing, contracts.FieldTotalEquity)
}

func TestAssess_PriorGapsArePrefixed(t *testing.T) {
	pair := fullPair()
	pair.Prior.Receivables = nil

	report := Assess(pair, []contracts.MetricFamily{contracts.FamilyBeneish})

	assert.Contains(t, report.Missing, "prior:"+contracts.FieldReceivables)
	assert.NotContains(t, report.Missing, contracts.FieldReceivables)
}

func TestAssess_OnlyRequestedFamiliesReported(t *testing.T) {
	pair := fullPair()
	pair.Current.RetainedEarnings = nil // only Altman reads this

	report := Assess(pair, []contracts.MetricFamily{contracts.FamilyCore})

	assert.Equal(t, contracts.TierComplete, report.Tier)
	assert.Empty(t, report.Missing)
}

func TestAssess_MissingNamesSorted(t *testing.T) {
	pair := fullPair()
	pair.Current.Revenue = nil
	pair.Current.EBIT = nil
	pair.Prior.NetIncome = nil

	report := Assess(pair, contracts.AllFamilies())

	require.NotEmpty(t, report.Missing)
	assert.IsIncreasing(t, report.Missing)
}

func TestAssessDegraded(t *testing.T) {
	report := AssessDegraded([]contracts.MetricFamily{contracts.FamilyCore, contracts.FamilyBeneish})

	assert.Equal(t, contracts.TierInsufficient, report.Tier)
	assert.Contains(t, report.Missing, contracts.FieldRevenue)
	assert.Contains(t, report.Missing, "prior:"+contracts.FieldRevenue)
	assert.IsIncreasing(t, report.Missing)
}
