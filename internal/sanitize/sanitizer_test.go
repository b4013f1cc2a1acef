package sanitize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minshik/forensiq/internal/contracts"
)

func TestApply_RoundsLeaves(t *testing.T) {
	result := &contracts.ComputedMetrics{
		BeneishMScore: contracts.Value(0.867313),
	}
	result.Ratios.Current = contracts.Value(1.23456789)

	require.NoError(t, Apply(result, 2))

	m, ok := result.BeneishMScore.Float()
	require.True(t, ok)
	assert.Equal(t, 0.87, m)

	current, ok := result.Ratios.Current.Float()
	require.True(t, ok)
	assert.Equal(t, 1.23, current)
}

func TestApply_RoundHalfToEven(t *testing.T) {
	result := &contracts.ComputedMetrics{
		BeneishMScore: contracts.Value(0.125),
	}
	result.Ratios.Current = contracts.Value(0.135)

	require.NoError(t, Apply(result, 2))

	m, _ := result.BeneishMScore.Float()
	assert.Equal(t, 0.12, m)
}

func TestApply_InvalidPrecision(t *testing.T) {
	result := &contracts.ComputedMetrics{}

	for _, p := range []int{0, 1, 3, 5, 7, 9, -2} {
		err := Apply(result, p)
		require.Error(t, err, "precision %d", p)
		assert.Contains(t, err.Error(), "unsupported precision")
	}
	for _, p := range []int{2, 4, 6, 8} {
		assert.NoError(t, Apply(result, p))
	}
}

func TestApply_NonFiniteBecomesNull(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()
	result := &contracts.ComputedMetrics{
		BeneishMScore: contracts.Leaf{Value: &inf},
	}
	result.Ratios.PE = contracts.Leaf{Value: &nan}

	require.NoError(t, Apply(result, 4))

	require.True(t, result.BeneishMScore.IsNull())
	assert.Equal(t, "non-finite result", *result.BeneishMScore.Reason)

	require.True(t, result.Ratios.PE.IsNull())
	assert.Equal(t, "non-finite result", *result.Ratios.PE.Reason)
}

func TestApply_Idempotent(t *testing.T) {
	result := &contracts.ComputedMetrics{
		BeneishMScore: contracts.Value(1.23456789),
	}
	result.Piotroski.Score = contracts.Value(7)
	result.CAPM.Beta = contracts.Null("insufficient price history")

	require.NoError(t, Apply(result, 4))
	once := *result

	require.NoError(t, Apply(result, 4))
	assert.Equal(t, once.BeneishMScore, result.BeneishMScore)
	assert.Equal(t, once.Piotroski.Score, result.Piotroski.Score)
	assert.Equal(t, once.CAPM.Beta, result.CAPM.Beta)
}

func TestApply_WalksNestedStructs(t *testing.T) {
	result := &contracts.ComputedMetrics{}
	result.DuPont.ROE5Step.TaxBurden = contracts.Value(0.888888)
	result.Piotroski.Signals.F3 = contracts.Value(1.000001)
	result.Altman.ZPrime = contracts.Value(2.675309)

	require.NoError(t, Apply(result, 2))

	tb, _ := result.DuPont.ROE5Step.TaxBurden.Float()
	assert.Equal(t, 0.89, tb)

	f3, _ := result.Piotroski.Signals.F3.Float()
	assert.Equal(t, 1.0, f3)

	zp, _ := result.Altman.ZPrime.Float()
	assert.Equal(t, 2.68, zp)
}

func TestFillEmpty_OnlyTouchesZeroLeaves(t *testing.T) {
	result := &contracts.ComputedMetrics{
		BeneishMScore: contracts.Value(-2.5),
	}
	result.CAPM.Alpha = contracts.Null("insufficient price history")

	require.NoError(t, FillEmpty(result, "family not requested"))

	// Untouched leaves get the reason
	require.True(t, result.Ratios.Current.IsNull())
	assert.Equal(t, "family not requested", *result.Ratios.Current.Reason)

	require.True(t, result.Piotroski.Score.IsNull())
	assert.Equal(t, "family not requested", *result.Piotroski.Score.Reason)

	// Leaves already carrying a value or reason stay as they are
	m, ok := result.BeneishMScore.Float()
	require.True(t, ok)
	assert.Equal(t, -2.5, m)
	assert.Equal(t, "insufficient price history", *result.CAPM.Alpha.Reason)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.87, Round(0.867313, 2))
	assert.Equal(t, 0.8673, Round(0.867313, 4))
	assert.Equal(t, -1.78, Round(-1.784999, 2))
}
