package metrics

import (
	"github.com/minshik/forensiq/internal/contracts"
)

// Altman coefficient sets. Z is the original public-company model
// (Altman 1968); Z' is the private-firm revision (Altman 1983) which
// substitutes book equity for market capitalization.
var (
	altmanZ      = [5]float64{1.2, 1.4, 3.3, 0.6, 1.0}
	altmanZPrime = [5]float64{0.717, 0.847, 3.107, 0.420, 0.998}
)

// ComputeAltman computes Z and Z'. Z requires market capitalization; Z' is
// offered whenever book equity is available even when market cap is not.
func ComputeAltman(pair *contracts.StatementPair, market *contracts.MarketSnapshot) contracts.AltmanScores {
	cur := &pair.Current

	workingCapital := sub(cur.CurrentAssets, cur.CurrentLiabilities)

	a, okA := ratio(workingCapital, cur.TotalAssets)
	b, okB := ratio(cur.RetainedEarnings, cur.TotalAssets)
	c, okC := ratio(cur.EBIT, cur.TotalAssets)
	e, okE := ratio(cur.Revenue, cur.TotalAssets)

	var marketCap *float64
	if market != nil {
		marketCap = market.MarketCap
		if marketCap == nil && market.LastPrice != nil && cur.SharesOutstanding != nil {
			mc := *market.LastPrice * *cur.SharesOutstanding
			marketCap = &mc
		}
	}

	scores := contracts.AltmanScores{
		Z:      contracts.Null("working capital, retained earnings, EBIT, market cap, revenue or total liabilities unavailable or denominator is zero"),
		ZPrime: contracts.Null("working capital, retained earnings, EBIT, total_equity, revenue or total liabilities unavailable or denominator is zero"),
	}

	if !okA || !okB || !okC || !okE {
		return scores
	}

	if d, ok := ratio(marketCap, cur.TotalLiabilities); ok {
		z := altmanZ[0]*a + altmanZ[1]*b + altmanZ[2]*c + altmanZ[3]*d + altmanZ[4]*e
		scores.Z = contracts.Value(z)
	}

	if dPrime, ok := ratio(cur.TotalEquity, cur.TotalLiabilities); ok {
		zPrime := altmanZPrime[0]*a + altmanZPrime[1]*b + altmanZPrime[2]*c + altmanZPrime[3]*dPrime + altmanZPrime[4]*e
		scores.ZPrime = contracts.Value(zPrime)
	}

	return scores
}
