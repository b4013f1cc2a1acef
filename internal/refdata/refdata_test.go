package refdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	c, ok := Lookup("AAPL")
	require.True(t, ok)
	assert.Equal(t, "Apple Inc.", c.Name)
	assert.Equal(t, "NASDAQ", c.Exchange)

	c, ok = Lookup("  msft ")
	require.True(t, ok)
	assert.Equal(t, "MSFT", c.Symbol)

	_, ok = Lookup("NOPE")
	assert.False(t, ok)
}

func TestSearch_SymbolHitsRankFirst(t *testing.T) {
	// "GS" matches the Goldman Sachs symbol directly and the Goldman name
	// only through the symbol, but "Goldman" matches by name alone
	results := Search("GS")
	require.NotEmpty(t, results)
	assert.Equal(t, "GS", results[0].Symbol)

	results = Search("micro")
	require.NotEmpty(t, results)

	// Name-only hits follow every symbol hit
	sawNameOnly := false
	for _, r := range results {
		bySymbol := strings.Contains(r.Symbol, "MICRO")
		if !bySymbol {
			sawNameOnly = true
		} else {
			assert.False(t, sawNameOnly, "symbol hit %s after a name hit", r.Symbol)
		}
	}
}

func TestSearch_Display(t *testing.T) {
	results := Search("AAPL")
	require.NotEmpty(t, results)
	assert.Equal(t, "AAPL - Apple Inc. (NASDAQ)", results[0].Display)
}

func TestSearch_Capped(t *testing.T) {
	// Single-letter query matches a large slice of the table
	results := Search("A")
	assert.LessOrEqual(t, len(results), 15)
}

func TestSearch_EmptyQuery(t *testing.T) {
	assert.Empty(t, Search(""))
	assert.Empty(t, Search("   "))
}

func TestSearch_Deterministic(t *testing.T) {
	first := Search("corp")
	second := Search("corp")
	assert.Equal(t, first, second)
}
