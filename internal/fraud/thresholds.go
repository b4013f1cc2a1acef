package fraud

// ThresholdsVersion identifies the threshold and weight table in effect.
// Scores computed under different versions are not comparable.
const ThresholdsVersion = "fraud-v1"

// threshold grades one Beneish index: at or above High the signal is
// high severity, at or above Medium it is medium, otherwise low.
type threshold struct {
	High   float64
	Medium float64
}

// Beneish index manipulation thresholds (Beneish 1999 manipulator vs
// non-manipulator means). The M-Score thresholds are the published
// -1.78 (likely manipulator) and -2.22 (gray zone) cutoffs.
var thresholds = map[string]threshold{
	"dsri":   {High: 1.465, Medium: 1.031},
	"gmi":    {High: 1.193, Medium: 1.014},
	"aqi":    {High: 1.254, Medium: 1.039},
	"sgi":    {High: 1.607, Medium: 1.134},
	"tata":   {High: 0.031, Medium: 0.018},
	"lvgi":   {High: 1.111, Medium: 1.037},
	"mscore": {High: -1.78, Medium: -2.22},
}

// Composite weights per signal. The M-Score dominates; the accrual and
// receivables indices carry extra weight as the strongest single predictors.
var signalWeights = map[string]float64{
	"mscore": 0.30,
	"dsri":   0.15,
	"tata":   0.15,
	"gmi":    0.10,
	"aqi":    0.10,
	"sgi":    0.10,
	"lvgi":   0.10,
}

// severity contribution on the 0..1 scale before weighting
const (
	severityValueLow    = 0.0
	severityValueMedium = 0.5
	severityValueHigh   = 1.0
)

// composite score band cut points on the 0-100 scale
const (
	bandModerateFloor = 25.0
	bandElevatedFloor = 50.0
	bandHighFloor     = 75.0
)

// signalOrder fixes the order signals are evaluated and reported in
var signalOrder = []string{"mscore", "dsri", "gmi", "aqi", "sgi", "tata", "lvgi"}
