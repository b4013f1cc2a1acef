package metrics

import (
	"github.com/minshik/forensiq/internal/contracts"
)

// ComputeDuPont produces the 3-step and 5-step ROE decompositions.
// Each aggregate ROE is null when any of its factors is null; factors stay
// individually reported where computable.
func ComputeDuPont(pair *contracts.StatementPair) contracts.DuPontResult {
	cur := &pair.Current

	npm := div("npm", cur.NetIncome, cur.Revenue, "net_income", "revenue")
	assetTurnover := div("asset_turnover", cur.Revenue, cur.TotalAssets, "revenue", "total_assets")
	equityMultiplier := div("equity_multiplier", cur.TotalAssets, cur.TotalEquity, "total_assets", "total_equity")

	three := contracts.DuPont3Step{
		NPM:              npm,
		AssetTurnover:    assetTurnover,
		EquityMultiplier: equityMultiplier,
		ROE:              product(npm, assetTurnover, equityMultiplier),
	}

	taxBurden := div("tax_burden", cur.NetIncome, cur.PretaxIncome, "net_income", "pretax_income")
	interestBurden := div("interest_burden", cur.PretaxIncome, cur.EBIT, "pretax_income", "ebit")
	operatingMargin := div("operating_margin", cur.EBIT, cur.Revenue, "ebit", "revenue")

	five := contracts.DuPont5Step{
		TaxBurden:        taxBurden,
		InterestBurden:   interestBurden,
		OperatingMargin:  operatingMargin,
		AssetTurnover:    assetTurnover,
		EquityMultiplier: equityMultiplier,
		ROE:              product(taxBurden, interestBurden, operatingMargin, assetTurnover, equityMultiplier),
	}

	return contracts.DuPontResult{ROE3Step: three, ROE5Step: five}
}

// product multiplies factor leaves; the first null factor nulls the result
func product(factors ...contracts.Leaf) contracts.Leaf {
	out := 1.0
	for _, f := range factors {
		v, ok := f.Float()
		if !ok {
			return contracts.Null(*f.Reason)
		}
		out *= v
	}
	return contracts.Value(out)
}
