package contracts

import (
	"fmt"
	"time"
)

// PeriodType identifies the reporting period of a statement
type PeriodType string

const (
	PeriodAnnual    PeriodType = "annual"
	PeriodQuarterly PeriodType = "quarterly"
	PeriodTTM       PeriodType = "ttm"
)

// Canonical statement field names. The normalizer maps provider fields onto
// these and the quality assessor reports gaps against them.
const (
	FieldRevenue              = "revenue"
	FieldCostOfGoodsSold      = "cost_of_goods_sold"
	FieldSGAExpense           = "sga_expense"
	FieldDepreciation         = "depreciation"
	FieldReceivables          = "receivables"
	FieldInventory            = "inventory"
	FieldCurrentAssets        = "current_assets"
	FieldCurrentLiabilities   = "current_liabilities"
	FieldPPE                  = "ppe"
	FieldMarketableSecurities = "marketable_securities"
	FieldTotalAssets          = "total_assets"
	FieldTotalLiabilities     = "total_liabilities"
	FieldTotalEquity          = "total_equity"
	FieldEBIT                 = "ebit"
	FieldPretaxIncome         = "pretax_income"
	FieldNetIncome            = "net_income"
	FieldOperatingCashFlow    = "operating_cash_flow"
	FieldInterestExpense      = "interest_expense"
	FieldLongTermDebt         = "long_term_debt"
	FieldSharesOutstanding    = "shares_outstanding"
	FieldDividendsPaid        = "dividends_paid"
	FieldRetainedEarnings     = "retained_earnings"
)

// FinancialStatement is one canonical reporting period. Every numeric field
// is nullable: nil means the provider did not supply a usable value. A field
// is never defaulted to zero. Statements are immutable once constructed.
type FinancialStatement struct {
	PeriodEnd  time.Time  `json:"period_end"`
	PeriodType PeriodType `json:"period_type"`

	Revenue              *float64 `json:"revenue"`
	CostOfGoodsSold      *float64 `json:"cost_of_goods_sold"`
	SGAExpense           *float64 `json:"sga_expense"`
	Depreciation         *float64 `json:"depreciation"`
	Receivables          *float64 `json:"receivables"`
	Inventory            *float64 `json:"inventory"`
	CurrentAssets        *float64 `json:"current_assets"`
	CurrentLiabilities   *float64 `json:"current_liabilities"`
	PPE                  *float64 `json:"ppe"`
	MarketableSecurities *float64 `json:"marketable_securities"`
	TotalAssets          *float64 `json:"total_assets"`
	TotalLiabilities     *float64 `json:"total_liabilities"`
	TotalEquity          *float64 `json:"total_equity"`
	EBIT                 *float64 `json:"ebit"`
	PretaxIncome         *float64 `json:"pretax_income"`
	NetIncome            *float64 `json:"net_income"`
	OperatingCashFlow    *float64 `json:"operating_cash_flow"`
	InterestExpense      *float64 `json:"interest_expense"`
	LongTermDebt         *float64 `json:"long_term_debt"`
	SharesOutstanding    *float64 `json:"shares_outstanding"`
	DividendsPaid        *float64 `json:"dividends_paid"`
	RetainedEarnings     *float64 `json:"retained_earnings"`
}

// Field returns the value of a canonical field by name
func (s *FinancialStatement) Field(name string) *float64 {
	switch name {
	case FieldRevenue:
		return s.Revenue
	case FieldCostOfGoodsSold:
		return s.CostOfGoodsSold
	case FieldSGAExpense:
		return s.SGAExpense
	case FieldDepreciation:
		return s.Depreciation
	case FieldReceivables:
		return s.Receivables
	case FieldInventory:
		return s.Inventory
	case FieldCurrentAssets:
		return s.CurrentAssets
	case FieldCurrentLiabilities:
		return s.CurrentLiabilities
	case FieldPPE:
		return s.PPE
	case FieldMarketableSecurities:
		return s.MarketableSecurities
	case FieldTotalAssets:
		return s.TotalAssets
	case FieldTotalLiabilities:
		return s.TotalLiabilities
	case FieldTotalEquity:
		return s.TotalEquity
	case FieldEBIT:
		return s.EBIT
	case FieldPretaxIncome:
		return s.PretaxIncome
	case FieldNetIncome:
		return s.NetIncome
	case FieldOperatingCashFlow:
		return s.OperatingCashFlow
	case FieldInterestExpense:
		return s.InterestExpense
	case FieldLongTermDebt:
		return s.LongTermDebt
	case FieldSharesOutstanding:
		return s.SharesOutstanding
	case FieldDividendsPaid:
		return s.DividendsPaid
	case FieldRetainedEarnings:
		return s.RetainedEarnings
	}
	return nil
}

// StatementPair holds the current and prior reporting periods.
// Every year-over-year metric is computed from this pair.
type StatementPair struct {
	Current FinancialStatement `json:"current"`
	Prior   FinancialStatement `json:"prior"`
}

// Validate checks the pair ordering invariant
func (p *StatementPair) Validate() error {
	if !p.Current.PeriodEnd.After(p.Prior.PeriodEnd) {
		return fmt.Errorf("current period end %s must be after prior period end %s",
			p.Current.PeriodEnd.Format("2006-01-02"), p.Prior.PeriodEnd.Format("2006-01-02"))
	}
	return nil
}

// Ptr returns a pointer to v. Convenience for building statements.
func Ptr(v float64) *float64 {
	return &v
}
