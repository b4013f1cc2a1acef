package normalize

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/minshik/forensiq/internal/contracts"
	"github.com/minshik/forensiq/pkg/logger"
)

// Statement alignment outcomes recorded in audit metadata
const (
	AlignmentAligned           = "aligned"
	AlignmentAnnualFallback    = "annual_fallback"
	AlignmentQuarterlyFallback = "quarterly_fallback"
)

// ttmWindow is the number of trailing quarters that make up one TTM period
const ttmWindow = 4

// RawStatement is one provider-shaped reporting period. Fields carries the
// provider's own naming; values may be any JSON-decoded type. Scale is the
// unit multiplier for this record (1 when values are already in base units).
type RawStatement struct {
	PeriodEnd  time.Time              `json:"period_end"`
	PeriodType contracts.PeriodType   `json:"period_type"`
	Currency   string                 `json:"currency"`
	Scale      float64                `json:"scale"`
	Fields     map[string]interface{} `json:"fields"`
}

// Result is the normalizer output: the canonical pair plus audit metadata
type Result struct {
	Pair        contracts.StatementPair
	PeriodUsed  contracts.PeriodType
	Alignment   string
	TTMQuarters int
}

// Normalizer maps raw provider records into canonical statement pairs
type Normalizer struct {
	logger         *logger.Logger
	minTTMQuarters int
}

// New creates a new normalizer. minTTMQuarters is the number of trailing
// quarters required before TTM alignment is attempted (two full windows).
func New(log *logger.Logger, minTTMQuarters int) *Normalizer {
	if minTTMQuarters < 2*ttmWindow {
		minTTMQuarters = 2 * ttmWindow
	}
	return &Normalizer{
		logger:         log,
		minTTMQuarters: minTTMQuarters,
	}
}

// Normalize selects the two most recent periods of the requested type and
// maps them onto the canonical schema. TTM requests fall back to annual
// alignment when too few trailing quarters exist; the fallback is recorded
// in the result. It fails with *contracts.AlignmentError only when fewer
// than two periods of any type exist.
func (n *Normalizer) Normalize(records []RawStatement, want contracts.PeriodType) (*Result, error) {
	if len(records) == 0 {
		return nil, contracts.ErrNoStatements
	}

	annual := selectByType(records, contracts.PeriodAnnual)
	quarterly := selectByType(records, contracts.PeriodQuarterly)

	if want == contracts.PeriodTTM {
		if len(quarterly) >= n.minTTMQuarters {
			current := n.buildTTM(quarterly[:ttmWindow])
			prior := n.buildTTM(quarterly[ttmWindow : 2*ttmWindow])
			return &Result{
				Pair:        contracts.StatementPair{Current: current, Prior: prior},
				PeriodUsed:  contracts.PeriodTTM,
				Alignment:   AlignmentAligned,
				TTMQuarters: ttmWindow,
			}, nil
		}

		n.logger.WithFields(map[string]interface{}{
			"quarters_found": len(quarterly),
			"quarters_need":  n.minTTMQuarters,
		}).Warn("Insufficient trailing quarters for TTM, falling back to annual")

		res, err := n.annualPair(annual, quarterly)
		if err != nil {
			return nil, err
		}
		// A second degradation to bare quarters keeps its own alignment tag
		if res.PeriodUsed == contracts.PeriodAnnual {
			res.Alignment = AlignmentAnnualFallback
		}
		return res, nil
	}

	return n.annualPair(annual, quarterly)
}

// annualPair builds the pair from annual periods, degrading to the two most
// recent quarters when fewer than two annual periods exist.
func (n *Normalizer) annualPair(annual, quarterly []RawStatement) (*Result, error) {
	if len(annual) >= 2 {
		return &Result{
			Pair: contracts.StatementPair{
				Current: n.canonical(annual[0], contracts.PeriodAnnual),
				Prior:   n.canonical(annual[1], contracts.PeriodAnnual),
			},
			PeriodUsed: contracts.PeriodAnnual,
			Alignment:  AlignmentAligned,
		}, nil
	}

	if len(quarterly) >= 2 {
		return &Result{
			Pair: contracts.StatementPair{
				Current: n.canonical(quarterly[0], contracts.PeriodQuarterly),
				Prior:   n.canonical(quarterly[1], contracts.PeriodQuarterly),
			},
			PeriodUsed: contracts.PeriodQuarterly,
			Alignment:  AlignmentQuarterlyFallback,
		}, nil
	}

	found := len(annual)
	if len(quarterly) > found {
		found = len(quarterly)
	}
	return nil, &contracts.AlignmentError{PeriodsFound: found}
}

// canonical maps one raw record onto the canonical schema. Absent or
// non-numeric fields stay nil; unmapped provider fields are dropped.
func (n *Normalizer) canonical(raw RawStatement, periodType contracts.PeriodType) contracts.FinancialStatement {
	stmt := contracts.FinancialStatement{
		PeriodEnd:  raw.PeriodEnd,
		PeriodType: periodType,
	}

	scale := raw.Scale
	if scale == 0 {
		scale = 1
	}

	seen := make(map[string]bool, len(raw.Fields))
	// Deterministic iteration so duplicate provider aliases resolve stably
	names := make([]string, 0, len(raw.Fields))
	for name := range raw.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		canonical, ok := fieldMappings[name]
		if !ok {
			continue
		}
		if seen[canonical] {
			continue
		}
		value, ok := coerceNumeric(raw.Fields[name])
		if !ok {
			continue
		}
		scaled := value * scale
		setField(&stmt, canonical, &scaled)
		seen[canonical] = true
	}

	return stmt
}

// buildTTM rolls a window of quarters into one trailing-twelve-month
// statement: flow fields are summed across the window and become null if
// any quarter is missing them; stock fields come from the latest quarter.
func (n *Normalizer) buildTTM(quarters []RawStatement) contracts.FinancialStatement {
	canon := make([]contracts.FinancialStatement, len(quarters))
	for i, q := range quarters {
		canon[i] = n.canonical(q, contracts.PeriodQuarterly)
	}

	// Latest quarter carries the balance-sheet position
	stmt := canon[0]
	stmt.PeriodType = contracts.PeriodTTM

	for _, field := range flowFields {
		var sum float64
		complete := true
		for i := range canon {
			v := canon[i].Field(field)
			if v == nil {
				complete = false
				break
			}
			sum += *v
		}
		if complete {
			setField(&stmt, field, &sum)
		} else {
			setField(&stmt, field, nil)
		}
	}

	return stmt
}

// flowFields accumulate over the TTM window; everything else is a
// point-in-time balance taken from the most recent quarter.
var flowFields = []string{
	contracts.FieldRevenue,
	contracts.FieldCostOfGoodsSold,
	contracts.FieldSGAExpense,
	contracts.FieldDepreciation,
	contracts.FieldEBIT,
	contracts.FieldPretaxIncome,
	contracts.FieldNetIncome,
	contracts.FieldOperatingCashFlow,
	contracts.FieldInterestExpense,
	contracts.FieldDividendsPaid,
}

// selectByType returns records of one period type, newest first
func selectByType(records []RawStatement, t contracts.PeriodType) []RawStatement {
	out := make([]RawStatement, 0, len(records))
	for _, r := range records {
		if r.PeriodType == t {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PeriodEnd.After(out[j].PeriodEnd)
	})
	return out
}

// coerceNumeric converts a duck-typed provider value into a float64.
// Anything that is not cleanly numeric is rejected, never defaulted.
func coerceNumeric(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// setField assigns a canonical field by name
func setField(s *contracts.FinancialStatement, name string, value *float64) {
	switch name {
	case contracts.FieldRevenue:
		s.Revenue = value
	case contracts.FieldCostOfGoodsSold:
		s.CostOfGoodsSold = value
	case contracts.FieldSGAExpense:
		s.SGAExpense = value
	case contracts.FieldDepreciation:
		s.Depreciation = value
	case contracts.FieldReceivables:
		s.Receivables = value
	case contracts.FieldInventory:
		s.Inventory = value
	case contracts.FieldCurrentAssets:
		s.CurrentAssets = value
	case contracts.FieldCurrentLiabilities:
		s.CurrentLiabilities = value
	case contracts.FieldPPE:
		s.PPE = value
	case contracts.FieldMarketableSecurities:
		s.MarketableSecurities = value
	case contracts.FieldTotalAssets:
		s.TotalAssets = value
	case contracts.FieldTotalLiabilities:
		s.TotalLiabilities = value
	case contracts.FieldTotalEquity:
		s.TotalEquity = value
	case contracts.FieldEBIT:
		s.EBIT = value
	case contracts.FieldPretaxIncome:
		s.PretaxIncome = value
	case contracts.FieldNetIncome:
		s.NetIncome = value
	case contracts.FieldOperatingCashFlow:
		s.OperatingCashFlow = value
	case contracts.FieldInterestExpense:
		s.InterestExpense = value
	case contracts.FieldLongTermDebt:
		s.LongTermDebt = value
	case contracts.FieldSharesOutstanding:
		s.SharesOutstanding = value
	case contracts.FieldDividendsPaid:
		s.DividendsPaid = value
	case contracts.FieldRetainedEarnings:
		s.RetainedEarnings = value
	}
}

// CheckAccountingEquation validates Assets = Liabilities + Equity within
// tolerance (fraction of total assets). Reported per period in the audit
// block; it never blocks computation.
func CheckAccountingEquation(s *contracts.FinancialStatement, tol float64) (ok bool, checked bool) {
	if s.TotalAssets == nil || s.TotalLiabilities == nil || s.TotalEquity == nil {
		return false, false
	}
	ta := *s.TotalAssets
	if ta <= 0 {
		return false, false
	}
	diff := ta - (*s.TotalLiabilities + *s.TotalEquity)
	if diff < 0 {
		diff = -diff
	}
	return diff/ta <= tol, true
}
