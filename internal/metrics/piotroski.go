package metrics

import (
	"github.com/minshik/forensiq/internal/contracts"
)

// ComputePiotroski evaluates the nine F-Score signals. A signal with
// unresolvable inputs is null; the total is reported null whenever any
// signal is null so the score is never a misleading partial sum.
func ComputePiotroski(pair *contracts.StatementPair) contracts.PiotroskiResult {
	cur, pri := &pair.Current, &pair.Prior

	roaCur, okRoaCur := ratio(cur.NetIncome, cur.TotalAssets)
	roaPri, okRoaPri := ratio(pri.NetIncome, pri.TotalAssets)

	signals := contracts.PiotroskiSignals{
		F1: f1(roaCur, okRoaCur),
		F2: f2(cur),
		F3: f3(roaCur, okRoaCur, roaPri, okRoaPri),
		F4: f4(cur),
		F5: compareRatios("long_term_debt/total_assets",
			cur.LongTermDebt, cur.TotalAssets, pri.LongTermDebt, pri.TotalAssets, less),
		F6: compareRatios("current ratio",
			cur.CurrentAssets, cur.CurrentLiabilities, pri.CurrentAssets, pri.CurrentLiabilities, greater),
		F7: f7(cur, pri),
		F8: f8(cur, pri),
		F9: compareRatios("asset turnover",
			cur.Revenue, cur.TotalAssets, pri.Revenue, pri.TotalAssets, greater),
	}

	result := contracts.PiotroskiResult{Signals: signals}

	total := 0.0
	for _, s := range signals.All() {
		v, ok := s.Float()
		if !ok {
			result.Score = contracts.Null("one or more signals unresolvable: " + *s.Reason)
			return result
		}
		total += v
	}
	result.Score = contracts.Value(total)
	return result
}

// F1: positive return on assets
func f1(roa float64, ok bool) contracts.Leaf {
	if !ok {
		return contracts.Null("net_income or total_assets unavailable or denominator is zero")
	}
	return binary(roa > 0)
}

// F2: positive operating cash flow
func f2(cur *contracts.FinancialStatement) contracts.Leaf {
	if cur.OperatingCashFlow == nil {
		return contracts.Null("operating_cash_flow unavailable")
	}
	return binary(*cur.OperatingCashFlow > 0)
}

// F3: ROA improved year over year
func f3(roaCur float64, okCur bool, roaPri float64, okPri bool) contracts.Leaf {
	if !okCur || !okPri {
		return contracts.Null("net_income or total_assets unavailable or denominator is zero")
	}
	return binary(roaCur > roaPri)
}

// F4: cash flow exceeds net income (accrual check)
func f4(cur *contracts.FinancialStatement) contracts.Leaf {
	if cur.OperatingCashFlow == nil || cur.NetIncome == nil {
		return contracts.Null("operating_cash_flow or net_income unavailable")
	}
	return binary(*cur.OperatingCashFlow > *cur.NetIncome)
}

// F7: no share dilution, basic shares outstanding
func f7(cur, pri *contracts.FinancialStatement) contracts.Leaf {
	if cur.SharesOutstanding == nil || pri.SharesOutstanding == nil {
		return contracts.Null("shares_outstanding unavailable")
	}
	return binary(*cur.SharesOutstanding <= *pri.SharesOutstanding)
}

// F8: gross margin improved
func f8(cur, pri *contracts.FinancialStatement) contracts.Leaf {
	curMargin, ok1 := grossMargin(cur)
	priMargin, ok2 := grossMargin(pri)
	if !ok1 || !ok2 {
		return contracts.Null("revenue or cost_of_goods_sold unavailable or denominator is zero")
	}
	return binary(curMargin > priMargin)
}

type comparison int

const (
	less comparison = iota
	greater
)

// compareRatios resolves a YoY ratio comparison into a binary signal
func compareRatios(what string, curNum, curDen, priNum, priDen *float64, cmp comparison) contracts.Leaf {
	curVal, ok1 := ratio(curNum, curDen)
	priVal, ok2 := ratio(priNum, priDen)
	if !ok1 || !ok2 {
		return contracts.Null(what + " unavailable or denominator is zero")
	}
	if cmp == less {
		return binary(curVal < priVal)
	}
	return binary(curVal > priVal)
}
