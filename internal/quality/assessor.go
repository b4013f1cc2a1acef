package quality

import (
	"sort"

	"github.com/minshik/forensiq/internal/contracts"
)

// familyRequirements lists the canonical fields a metric family reads from
// the current and prior periods. Missing-field reports are built from these
// sets, so callers only ever see gaps for computations they asked for.
type familyRequirements struct {
	current []string
	prior   []string
}

var requirements = map[contracts.MetricFamily]familyRequirements{
	contracts.FamilyCore: {
		current: []string{
			contracts.FieldCurrentAssets, contracts.FieldCurrentLiabilities,
			contracts.FieldInventory, contracts.FieldTotalAssets,
			contracts.FieldTotalLiabilities, contracts.FieldTotalEquity,
			contracts.FieldNetIncome,
		},
	},
	contracts.FamilyPrice: {
		current: []string{
			contracts.FieldNetIncome, contracts.FieldTotalEquity,
			contracts.FieldRevenue, contracts.FieldSharesOutstanding,
		},
		prior: []string{contracts.FieldNetIncome},
	},
	contracts.FamilyDividend: {
		current: []string{
			contracts.FieldDividendsPaid, contracts.FieldNetIncome,
			contracts.FieldSharesOutstanding,
		},
	},
	contracts.FamilyBeneish: {
		current: []string{
			contracts.FieldReceivables, contracts.FieldRevenue,
			contracts.FieldCostOfGoodsSold, contracts.FieldCurrentAssets,
			contracts.FieldPPE, contracts.FieldMarketableSecurities,
			contracts.FieldTotalAssets, contracts.FieldDepreciation,
			contracts.FieldSGAExpense, contracts.FieldTotalLiabilities,
			contracts.FieldNetIncome, contracts.FieldOperatingCashFlow,
		},
		prior: []string{
			contracts.FieldReceivables, contracts.FieldRevenue,
			contracts.FieldCostOfGoodsSold, contracts.FieldCurrentAssets,
			contracts.FieldPPE, contracts.FieldMarketableSecurities,
			contracts.FieldTotalAssets, contracts.FieldDepreciation,
			contracts.FieldSGAExpense, contracts.FieldTotalLiabilities,
		},
	},
	contracts.FamilyAltman: {
		current: []string{
			contracts.FieldCurrentAssets, contracts.FieldCurrentLiabilities,
			contracts.FieldRetainedEarnings, contracts.FieldEBIT,
			contracts.FieldTotalLiabilities, contracts.FieldRevenue,
			contracts.FieldTotalAssets, contracts.FieldTotalEquity,
		},
	},
	contracts.FamilyPiotroski: {
		current: []string{
			contracts.FieldNetIncome, contracts.FieldTotalAssets,
			contracts.FieldOperatingCashFlow, contracts.FieldLongTermDebt,
			contracts.FieldCurrentAssets, contracts.FieldCurrentLiabilities,
			contracts.FieldSharesOutstanding, contracts.FieldRevenue,
			contracts.FieldCostOfGoodsSold,
		},
		prior: []string{
			contracts.FieldNetIncome, contracts.FieldTotalAssets,
			contracts.FieldLongTermDebt, contracts.FieldCurrentAssets,
			contracts.FieldCurrentLiabilities, contracts.FieldSharesOutstanding,
			contracts.FieldRevenue, contracts.FieldCostOfGoodsSold,
		},
	},
	contracts.FamilyDuPont: {
		current: []string{
			contracts.FieldNetIncome, contracts.FieldRevenue,
			contracts.FieldTotalAssets, contracts.FieldTotalEquity,
			contracts.FieldPretaxIncome, contracts.FieldEBIT,
		},
	},
	// CAPM reads only market-side inputs
	contracts.FamilyCAPM: {},
}

// coreFields are the inputs of the five core ratios. When any of these is
// absent in the current period the tier drops to insufficient.
var coreFields = []string{
	contracts.FieldCurrentAssets, contracts.FieldCurrentLiabilities,
	contracts.FieldInventory, contracts.FieldTotalAssets,
	contracts.FieldTotalLiabilities, contracts.FieldTotalEquity,
	contracts.FieldNetIncome,
}

// Assess grades input completeness for the requested families. The report
// is advisory: families whose own inputs are present still compute.
func Assess(pair *contracts.StatementPair, families []contracts.MetricFamily) *contracts.DataQualityReport {
	missing := make(map[string]bool)

	for _, fam := range families {
		req, ok := requirements[fam]
		if !ok {
			continue
		}
		for _, field := range req.current {
			if pair.Current.Field(field) == nil {
				missing[field] = true
			}
		}
		for _, field := range req.prior {
			if pair.Prior.Field(field) == nil {
				missing["prior:"+field] = true
			}
		}
	}

	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)

	return &contracts.DataQualityReport{
		Tier:    tier(pair, names),
		Missing: names,
	}
}

// AssessDegraded is the report for a pipeline that could not align two
// periods at all: nothing is computable.
func AssessDegraded(families []contracts.MetricFamily) *contracts.DataQualityReport {
	missing := make(map[string]bool)
	for _, fam := range families {
		req, ok := requirements[fam]
		if !ok {
			continue
		}
		for _, field := range req.current {
			missing[field] = true
		}
		for _, field := range req.prior {
			missing["prior:"+field] = true
		}
	}

	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)

	return &contracts.DataQualityReport{
		Tier:    contracts.TierInsufficient,
		Missing: names,
	}
}

// tier applies the grading rule: complete when nothing requested is
// missing, insufficient when even the core ratios cannot be computed
// (funds and ETFs with no income statement land here), limited otherwise.
func tier(pair *contracts.StatementPair, missing []string) contracts.QualityTier {
	if len(missing) == 0 {
		return contracts.TierComplete
	}

	for _, field := range coreFields {
		if pair.Current.Field(field) == nil {
			return contracts.TierInsufficient
		}
	}

	return contracts.TierLimited
}
