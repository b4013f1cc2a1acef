package metrics

import (
	"strings"

	"github.com/minshik/forensiq/internal/contracts"
)

// Beneish M-Score coefficients (Beneish 1999). Versioned with the rest of
// the formula constants so scores are reproducible across releases.
const (
	beneishIntercept = -4.84
	beneishWDSRI     = 0.92
	beneishWGMI      = 0.528
	beneishWAQI      = 0.404
	beneishWSGI      = 0.892
	beneishWDEPI     = 0.115
	beneishWSGAI     = -0.172
	beneishWTATA     = 4.679
	beneishWLVGI     = -0.327
)

// ComputeBeneish derives the eight Beneish indices from the statement pair
// and folds them into the M-Score. Components stay individually reported
// even when the aggregate cannot be formed; the aggregate is null whenever
// any component is null, with a reason listing the unresolved components.
func ComputeBeneish(pair *contracts.StatementPair) (contracts.Leaf, contracts.BeneishComponents) {
	cur, pri := &pair.Current, &pair.Prior

	comps := contracts.BeneishComponents{
		DSRI: dsri(cur, pri),
		GMI:  gmi(cur, pri),
		AQI:  aqi(cur, pri),
		SGI:  div("SGI", cur.Revenue, pri.Revenue, "revenue", "prior revenue"),
		DEPI: depi(cur, pri),
		SGAI: sgai(cur, pri),
		LVGI: lvgi(cur, pri),
		TATA: tata(cur),
	}

	var missing []string
	for _, c := range []struct {
		name string
		leaf contracts.Leaf
	}{
		{"DSRI", comps.DSRI}, {"GMI", comps.GMI}, {"AQI", comps.AQI},
		{"SGI", comps.SGI}, {"DEPI", comps.DEPI}, {"SGAI", comps.SGAI},
		{"LVGI", comps.LVGI}, {"TATA", comps.TATA},
	} {
		if c.leaf.IsNull() {
			missing = append(missing, c.name)
		}
	}
	if len(missing) > 0 {
		return contracts.Null("insufficient_fields: " + strings.Join(missing, ", ")), comps
	}

	m := beneishIntercept +
		beneishWDSRI**comps.DSRI.Value +
		beneishWGMI**comps.GMI.Value +
		beneishWAQI**comps.AQI.Value +
		beneishWSGI**comps.SGI.Value +
		beneishWDEPI**comps.DEPI.Value +
		beneishWSGAI**comps.SGAI.Value +
		beneishWTATA**comps.TATA.Value +
		beneishWLVGI**comps.LVGI.Value

	return contracts.Value(m), comps
}

// dsri: days-sales-in-receivables index
func dsri(cur, pri *contracts.FinancialStatement) contracts.Leaf {
	curRatio, ok1 := ratio(cur.Receivables, cur.Revenue)
	priRatio, ok2 := ratio(pri.Receivables, pri.Revenue)
	if !ok1 || !ok2 {
		return contracts.Null("receivables or revenue unavailable or denominator is zero")
	}
	return div("DSRI", &curRatio, &priRatio, "receivables/revenue", "prior receivables/revenue")
}

// gmi: gross margin index, prior margin over current margin
func gmi(cur, pri *contracts.FinancialStatement) contracts.Leaf {
	curMargin, ok1 := grossMargin(cur)
	priMargin, ok2 := grossMargin(pri)
	if !ok1 || !ok2 {
		return contracts.Null("revenue or cost_of_goods_sold unavailable or denominator is zero")
	}
	return div("GMI", &priMargin, &curMargin, "prior gross margin", "gross margin")
}

func grossMargin(s *contracts.FinancialStatement) (float64, bool) {
	gross := sub(s.Revenue, s.CostOfGoodsSold)
	return ratio(gross, s.Revenue)
}

// aqi: asset quality index, share of soft assets year over year
func aqi(cur, pri *contracts.FinancialStatement) contracts.Leaf {
	curHard := add(add(cur.CurrentAssets, cur.PPE), cur.MarketableSecurities)
	priHard := add(add(pri.CurrentAssets, pri.PPE), pri.MarketableSecurities)

	curShare, ok1 := ratio(curHard, cur.TotalAssets)
	priShare, ok2 := ratio(priHard, pri.TotalAssets)
	if !ok1 || !ok2 {
		return contracts.Null("current_assets, ppe, marketable_securities or total_assets unavailable or denominator is zero")
	}

	curSoft := 1 - curShare
	priSoft := 1 - priShare
	return div("AQI", &curSoft, &priSoft, "soft asset share", "prior soft asset share")
}

// depi: depreciation index, prior rate over current rate
func depi(cur, pri *contracts.FinancialStatement) contracts.Leaf {
	curRate, ok1 := ratio(cur.Depreciation, add(cur.PPE, cur.Depreciation))
	priRate, ok2 := ratio(pri.Depreciation, add(pri.PPE, pri.Depreciation))
	if !ok1 || !ok2 {
		return contracts.Null("depreciation or ppe unavailable or denominator is zero")
	}
	return div("DEPI", &priRate, &curRate, "prior depreciation rate", "depreciation rate")
}

// sgai: SGA expense index
func sgai(cur, pri *contracts.FinancialStatement) contracts.Leaf {
	curShare, ok1 := ratio(cur.SGAExpense, cur.Revenue)
	priShare, ok2 := ratio(pri.SGAExpense, pri.Revenue)
	if !ok1 || !ok2 {
		return contracts.Null("sga_expense or revenue unavailable or denominator is zero")
	}
	return div("SGAI", &curShare, &priShare, "sga/revenue", "prior sga/revenue")
}

// lvgi: leverage index
func lvgi(cur, pri *contracts.FinancialStatement) contracts.Leaf {
	curLev, ok1 := ratio(cur.TotalLiabilities, cur.TotalAssets)
	priLev, ok2 := ratio(pri.TotalLiabilities, pri.TotalAssets)
	if !ok1 || !ok2 {
		return contracts.Null("total_liabilities or total_assets unavailable or denominator is zero")
	}
	return div("LVGI", &curLev, &priLev, "leverage", "prior leverage")
}

// tata: total accruals to total assets, the earnings-quality proxy
func tata(cur *contracts.FinancialStatement) contracts.Leaf {
	accruals := sub(cur.NetIncome, cur.OperatingCashFlow)
	return div("TATA", accruals, cur.TotalAssets, "net_income or operating_cash_flow", "total_assets")
}
