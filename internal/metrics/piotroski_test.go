package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minshik/forensiq/internal/contracts"
)

// piotroskiPair improves on every one of the nine signals year over year
func piotroskiPair() *contracts.StatementPair {
	return &contracts.StatementPair{
		Current: contracts.FinancialStatement{
			Revenue:            contracts.Ptr(1200),
			CostOfGoodsSold:    contracts.Ptr(720), // margin 0.40
			CurrentAssets:      contracts.Ptr(600),
			CurrentLiabilities: contracts.Ptr(250), // current ratio 2.4
			TotalAssets:        contracts.Ptr(1300),
			LongTermDebt:       contracts.Ptr(100), // leverage 0.0769
			NetIncome:          contracts.Ptr(150), // ROA 0.1154
			OperatingCashFlow:  contracts.Ptr(180),
			SharesOutstanding:  contracts.Ptr(100),
		},
		Prior: contracts.FinancialStatement{
			Revenue:            contracts.Ptr(900), // turnover 0.9 < 0.923
			CostOfGoodsSold:    contracts.Ptr(585), // margin 0.35
			CurrentAssets:      contracts.Ptr(500),
			CurrentLiabilities: contracts.Ptr(250), // current ratio 2.0
			TotalAssets:        contracts.Ptr(1000),
			LongTermDebt:       contracts.Ptr(100), // leverage 0.1
			NetIncome:          contracts.Ptr(80),  // ROA 0.08
			OperatingCashFlow:  contracts.Ptr(90),
			SharesOutstanding:  contracts.Ptr(100),
		},
	}
}

func TestComputePiotroski_PerfectScore(t *testing.T) {
	result := ComputePiotroski(piotroskiPair())

	for i, signal := range result.Signals.All() {
		v, ok := signal.Float()
		require.True(t, ok, "signal F%d should resolve", i+1)
		assert.Equal(t, 1.0, v, "signal F%d", i+1)
	}

	score, ok := result.Score.Float()
	require.True(t, ok)
	assert.Equal(t, 9.0, score)
}

func TestComputePiotroski_FailedSignalsScoreZero(t *testing.T) {
	pair := piotroskiPair()
	pair.Current.NetIncome = contracts.Ptr(-10)        // F1 fails
	pair.Current.SharesOutstanding = contracts.Ptr(110) // F7 dilution

	result := ComputePiotroski(pair)

	f1, ok := result.Signals.F1.Float()
	require.True(t, ok)
	assert.Equal(t, 0.0, f1)

	f7, ok := result.Signals.F7.Float()
	require.True(t, ok)
	assert.Equal(t, 0.0, f7)

	// F4 still passes: cash flow above (negative) net income
	f4, ok := result.Signals.F4.Float()
	require.True(t, ok)
	assert.Equal(t, 1.0, f4)
}

func TestComputePiotroski_NullSignalNullsTotal(t *testing.T) {
	pair := piotroskiPair()
	pair.Prior.LongTermDebt = nil // F5 unresolvable

	result := ComputePiotroski(pair)

	assert.True(t, result.Signals.F5.IsNull())

	require.True(t, result.Score.IsNull())
	assert.Contains(t, *result.Score.Reason, "one or more signals unresolvable")

	// Every other signal is still reported
	f1, ok := result.Signals.F1.Float()
	require.True(t, ok)
	assert.Equal(t, 1.0, f1)
}
