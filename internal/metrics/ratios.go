package metrics

import (
	"math"

	"github.com/minshik/forensiq/internal/contracts"
)

// ComputeCoreRatios fills the liquidity, leverage and profitability ratios
func ComputeCoreRatios(pair *contracts.StatementPair, out *contracts.RatioSet) {
	cur := &pair.Current

	out.Current = div("current", cur.CurrentAssets, cur.CurrentLiabilities, "current_assets", "current_liabilities")
	out.Quick = div("quick", sub(cur.CurrentAssets, cur.Inventory), cur.CurrentLiabilities,
		"current_assets or inventory", "current_liabilities")
	out.DebtToEquity = debtToEquity(cur)
	out.ROE = div("roe", cur.NetIncome, cur.TotalEquity, "net_income", "total_equity")
	out.ROEAdjusted = div("roe_adjusted", cur.NetIncome, sub(cur.TotalAssets, cur.TotalLiabilities),
		"net_income", "total_assets or total_liabilities")
	out.ROA = div("roa", cur.NetIncome, cur.TotalAssets, "net_income", "total_assets")
}

// debtToEquity treats an all-equity balance sheet as degenerate: a zero on
// either side of the ratio means the metric carries no information.
func debtToEquity(cur *contracts.FinancialStatement) contracts.Leaf {
	if cur.TotalLiabilities == nil {
		return contracts.Null("total_liabilities unavailable")
	}
	if cur.TotalEquity == nil {
		return contracts.Null("total_equity unavailable")
	}
	if math.Abs(*cur.TotalLiabilities) < epsilon || math.Abs(*cur.TotalEquity) < epsilon {
		return contracts.Null("debt_to_equity denominator is zero")
	}
	return contracts.Value(*cur.TotalLiabilities / *cur.TotalEquity)
}

// ComputePriceRatios fills the market-price based ratios
func ComputePriceRatios(pair *contracts.StatementPair, market *contracts.MarketSnapshot, out *contracts.RatioSet) {
	if market == nil || market.LastPrice == nil {
		unavailable := contracts.Null("last_price unavailable")
		out.PE, out.PB, out.PS, out.PEG = unavailable, unavailable, unavailable, unavailable
		return
	}

	cur, pri := &pair.Current, &pair.Prior
	price := market.LastPrice
	shares := resolveShares(cur, market)

	epsCur := perShare(cur.NetIncome, shares)
	epsPri := perShare(pri.NetIncome, shares)
	bps := perShare(cur.TotalEquity, shares)

	out.PE = div("pe", price, epsCur, "last_price", "eps")
	out.PB = div("pb", price, bps, "last_price", "book value per share")

	marketCap := market.MarketCap
	if marketCap == nil && shares != nil {
		mc := *price * *shares
		marketCap = &mc
	}
	out.PS = div("ps", marketCap, cur.Revenue, "market_cap", "revenue")

	out.PEG = peg(out.PE, epsCur, epsPri)
}

// peg divides PE by the EPS growth rate in percent; growth must be positive
func peg(pe contracts.Leaf, epsCur, epsPri *float64) contracts.Leaf {
	peVal, ok := pe.Float()
	if !ok {
		return contracts.Null(*pe.Reason)
	}
	if epsCur == nil || epsPri == nil {
		return contracts.Null("eps unavailable")
	}
	if *epsPri <= epsilon {
		return contracts.Null("peg denominator is zero")
	}
	growth := (*epsCur - *epsPri) / *epsPri
	if growth <= 0 {
		return contracts.Null("earnings growth not positive")
	}
	return contracts.Value(peVal / (100 * growth))
}

// ComputeDividendRatios fills the dividend metrics. Dividends paid arrive
// as a cash outflow, so magnitudes are used throughout.
func ComputeDividendRatios(pair *contracts.StatementPair, market *contracts.MarketSnapshot, out *contracts.RatioSet) {
	cur := &pair.Current
	shares := resolveShares(cur, market)

	var dividends *float64
	if cur.DividendsPaid != nil {
		d := math.Abs(*cur.DividendsPaid)
		dividends = &d
	}

	dps := perShare(dividends, shares)

	var price *float64
	if market != nil {
		price = market.LastPrice
	}

	out.DividendYield = div("dividend_yield", dps, price, "dividend per share", "last_price")
	out.DividendPayoutRatio = div("dividend_payout_ratio", dividends, cur.NetIncome, "dividends_paid", "net_income")
	out.DividendCoverageRatio = div("dividend_coverage_ratio", cur.NetIncome, dividends, "net_income", "dividends_paid")
}

// resolveShares prefers the statement's share count, falling back to the
// market snapshot when the balance sheet omits it.
func resolveShares(cur *contracts.FinancialStatement, market *contracts.MarketSnapshot) *float64 {
	if cur.SharesOutstanding != nil && *cur.SharesOutstanding > 0 {
		return cur.SharesOutstanding
	}
	if market != nil && market.SharesOutstanding != nil && *market.SharesOutstanding > 0 {
		return market.SharesOutstanding
	}
	return nil
}

// perShare divides a statement total by share count
func perShare(total, shares *float64) *float64 {
	v, ok := ratio(total, shares)
	if !ok {
		return nil
	}
	return &v
}
