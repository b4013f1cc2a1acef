package contracts

import (
	"math"
	"time"
)

// Leaf is the result of one metric computation. Value is nil exactly when
// Reason is set; a present value is always finite.
type Leaf struct {
	Value  *float64 `json:"value"`
	Reason *string  `json:"reason"`
}

// Value builds a leaf holding v. A non-finite v degrades to a null leaf so
// the invariant holds even before the sanitizer pass.
func Value(v float64) Leaf {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Null("non-finite result")
	}
	return Leaf{Value: &v}
}

// Null builds a leaf with no value and the given reason
func Null(reason string) Leaf {
	return Leaf{Reason: &reason}
}

// IsNull reports whether the leaf carries no value
func (l Leaf) IsNull() bool {
	return l.Value == nil
}

// Float returns the value, or 0 with ok=false when the leaf is null
func (l Leaf) Float() (float64, bool) {
	if l.Value == nil {
		return 0, false
	}
	return *l.Value, true
}

// MetricFamily identifies one group of metrics a caller can request
type MetricFamily string

const (
	FamilyCore      MetricFamily = "core"
	FamilyPrice     MetricFamily = "price"
	FamilyDividend  MetricFamily = "dividend"
	FamilyBeneish   MetricFamily = "beneish"
	FamilyAltman    MetricFamily = "altman"
	FamilyPiotroski MetricFamily = "piotroski"
	FamilyDuPont    MetricFamily = "dupont"
	FamilyCAPM      MetricFamily = "capm"
)

// AllFamilies returns every metric family in a stable order
func AllFamilies() []MetricFamily {
	return []MetricFamily{
		FamilyCore, FamilyPrice, FamilyDividend,
		FamilyBeneish, FamilyAltman, FamilyPiotroski,
		FamilyDuPont, FamilyCAPM,
	}
}

// BeneishComponents holds the eight Beneish M-Score indices
type BeneishComponents struct {
	DSRI Leaf `json:"DSRI"`
	GMI  Leaf `json:"GMI"`
	AQI  Leaf `json:"AQI"`
	SGI  Leaf `json:"SGI"`
	DEPI Leaf `json:"DEPI"`
	SGAI Leaf `json:"SGAI"`
	LVGI Leaf `json:"LVGI"`
	TATA Leaf `json:"TATA"`
}

// AltmanScores holds the public (Z) and private-firm (Z') variants
type AltmanScores struct {
	Z      Leaf `json:"z"`
	ZPrime Leaf `json:"z_prime"`
}

// RatioSet holds core, price and dividend ratios
type RatioSet struct {
	Current               Leaf `json:"current"`
	Quick                 Leaf `json:"quick"`
	DebtToEquity          Leaf `json:"debt_to_equity"`
	ROE                   Leaf `json:"roe"`
	ROEAdjusted           Leaf `json:"roe_adjusted"`
	ROA                   Leaf `json:"roa"`
	PE                    Leaf `json:"pe"`
	PB                    Leaf `json:"pb"`
	PS                    Leaf `json:"ps"`
	PEG                   Leaf `json:"peg"`
	DividendYield         Leaf `json:"dividend_yield"`
	DividendPayoutRatio   Leaf `json:"dividend_payout_ratio"`
	DividendCoverageRatio Leaf `json:"dividend_coverage_ratio"`
}

// PiotroskiSignals holds the nine binary F-Score signals
type PiotroskiSignals struct {
	F1 Leaf `json:"F1"`
	F2 Leaf `json:"F2"`
	F3 Leaf `json:"F3"`
	F4 Leaf `json:"F4"`
	F5 Leaf `json:"F5"`
	F6 Leaf `json:"F6"`
	F7 Leaf `json:"F7"`
	F8 Leaf `json:"F8"`
	F9 Leaf `json:"F9"`
}

// All returns the signals in F1..F9 order
func (s *PiotroskiSignals) All() []Leaf {
	return []Leaf{s.F1, s.F2, s.F3, s.F4, s.F5, s.F6, s.F7, s.F8, s.F9}
}

// PiotroskiResult holds the signals and their total score.
// Score is null whenever any single signal is null.
type PiotroskiResult struct {
	Score   Leaf             `json:"score"`
	Signals PiotroskiSignals `json:"signals"`
}

// DuPont3Step is the three-factor ROE decomposition
type DuPont3Step struct {
	NPM              Leaf `json:"npm"`
	AssetTurnover    Leaf `json:"asset_turnover"`
	EquityMultiplier Leaf `json:"equity_multiplier"`
	ROE              Leaf `json:"roe"`
}

// DuPont5Step is the five-factor ROE decomposition
type DuPont5Step struct {
	TaxBurden        Leaf `json:"tax_burden"`
	InterestBurden   Leaf `json:"interest_burden"`
	OperatingMargin  Leaf `json:"operating_margin"`
	AssetTurnover    Leaf `json:"asset_turnover"`
	EquityMultiplier Leaf `json:"equity_multiplier"`
	ROE              Leaf `json:"roe"`
}

// DuPontResult bundles both decompositions
type DuPontResult struct {
	ROE3Step DuPont3Step `json:"roe_3step"`
	ROE5Step DuPont5Step `json:"roe_5step"`
}

// CAPMResult holds the market-model pair
type CAPMResult struct {
	Beta  Leaf `json:"beta"`
	Alpha Leaf `json:"alpha"`
}

// ComputedMetrics is the full result bundle for one ticker
type ComputedMetrics struct {
	BeneishMScore     Leaf              `json:"beneish_m_score"`
	BeneishComponents BeneishComponents `json:"beneish_components"`
	Altman            AltmanScores      `json:"altman"`
	Ratios            RatioSet          `json:"ratios"`
	Piotroski         PiotroskiResult   `json:"piotroski"`
	DuPont            DuPontResult      `json:"dupont"`
	CAPM              CAPMResult        `json:"capm"`
}

// AuditMeta records how the inputs were assembled
type AuditMeta struct {
	PeriodUsed         PeriodType        `json:"period_used"`
	TTMQuarters        int               `json:"ttm_quarters"`
	StatementAlignment string            `json:"statement_alignment"`
	GeneratedAt        time.Time         `json:"generated_at"`
	SourcesUsed        []string          `json:"sources_used"`
	Validation         map[string]bool   `json:"validation,omitempty"`
}
