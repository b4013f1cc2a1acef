package fraud

import (
	"github.com/minshik/forensiq/internal/contracts"
)

// auditProcedures maps each index to the substantive test an auditor would
// run when the index is flagged.
var auditProcedures = map[string]contracts.Recommendation{
	"mscore": {
		Test: "Extend revenue and accrual testing across all flagged indices",
		Why:  "The composite M-Score exceeds the published manipulator cutoff, indicating elevated probability of earnings manipulation",
	},
	"dsri": {
		Test: "Confirm period-end receivables with customers and review post-period cash collections",
		Why:  "Receivables grew faster than revenue, consistent with premature or fictitious revenue recognition",
	},
	"gmi": {
		Test: "Analyze gross margin by product line and vouch cost of goods sold cutoff",
		Why:  "Deteriorating gross margin raises the incentive to manage earnings",
	},
	"aqi": {
		Test: "Review capitalization policies and test additions to intangible and other non-current assets",
		Why:  "A rising share of soft assets suggests costs may be capitalized instead of expensed",
	},
	"sgi": {
		Test: "Test revenue cutoff near period end and examine unusual or round-sum sales entries",
		Why:  "High-growth firms face pressure to sustain the trend and are overrepresented among manipulators",
	},
	"tata": {
		Test: "Reconcile net income to operating cash flow and examine large or late manual journal entries",
		Why:  "Earnings are running well ahead of cash generation, indicating aggressive accruals",
	},
	"lvgi": {
		Test: "Recalculate debt covenant ratios and inspect loan agreements for proximity to limits",
		Why:  "Rising leverage increases covenant pressure and the incentive to manipulate",
	},
}

// Recommend returns the audit procedures for every signal graded medium or
// high, in signal order.
func Recommend(signals []contracts.FraudSignal) []contracts.Recommendation {
	recs := make([]contracts.Recommendation, 0, len(signals))
	for _, sig := range signals {
		if sig.Severity == contracts.SeverityLow {
			continue
		}
		if rec, ok := auditProcedures[sig.Name]; ok {
			recs = append(recs, rec)
		}
	}
	return recs
}
