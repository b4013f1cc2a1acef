package fraud

import (
	"fmt"

	"github.com/minshik/forensiq/internal/contracts"
)

// Aggregate grades the Beneish M-Score and its component indices against the
// published manipulation thresholds and folds the graded signals into a
// deterministic composite on the 0-100 scale. Signals whose underlying index
// is null are reported with low severity and excluded from the composite;
// the remaining weights are renormalized so the scale is preserved.
func Aggregate(mScore contracts.Leaf, comps contracts.BeneishComponents) (contracts.FraudScoreResult, []contracts.FraudSignal) {
	leaves := map[string]contracts.Leaf{
		"mscore": mScore,
		"dsri":   comps.DSRI,
		"gmi":    comps.GMI,
		"aqi":    comps.AQI,
		"sgi":    comps.SGI,
		"tata":   comps.TATA,
		"lvgi":   comps.LVGI,
	}

	signals := make([]contracts.FraudSignal, 0, len(signalOrder))
	var weighted, totalWeight float64

	for _, name := range signalOrder {
		leaf := leaves[name]
		sig := grade(name, leaf)
		signals = append(signals, sig)

		if leaf.IsNull() {
			continue
		}
		weighted += signalWeights[name] * severityValue(sig.Severity)
		totalWeight += signalWeights[name]
	}

	var score float64
	if totalWeight > 0 {
		score = 100 * weighted / totalWeight
	}

	return contracts.FraudScoreResult{
		Value: score,
		Scale: "0-100",
		Band:  band(score),
	}, signals
}

// grade maps one index value onto a severity-tagged signal
func grade(name string, leaf contracts.Leaf) contracts.FraudSignal {
	v, ok := leaf.Float()
	if !ok {
		return contracts.FraudSignal{
			Name:      name,
			Severity:  contracts.SeverityLow,
			Rationale: fmt.Sprintf("%s could not be computed: %s", name, *leaf.Reason),
		}
	}

	t := thresholds[name]
	sev := contracts.SeverityLow
	switch {
	case v >= t.High:
		sev = contracts.SeverityHigh
	case v >= t.Medium:
		sev = contracts.SeverityMedium
	}

	return contracts.FraudSignal{
		Name:      name,
		Value:     leaf.Value,
		Severity:  sev,
		Rationale: rationale(name, v, sev, t),
	}
}

func rationale(name string, v float64, sev contracts.Severity, t threshold) string {
	switch sev {
	case contracts.SeverityHigh:
		return fmt.Sprintf("%s %.4f at or above manipulation threshold %.4f", name, v, t.High)
	case contracts.SeverityMedium:
		return fmt.Sprintf("%s %.4f in gray zone between %.4f and %.4f", name, v, t.Medium, t.High)
	default:
		return fmt.Sprintf("%s %.4f below gray-zone threshold %.4f", name, v, t.Medium)
	}
}

func severityValue(s contracts.Severity) float64 {
	switch s {
	case contracts.SeverityHigh:
		return severityValueHigh
	case contracts.SeverityMedium:
		return severityValueMedium
	default:
		return severityValueLow
	}
}

// band maps a composite score onto its discrete risk category
func band(score float64) contracts.FraudBand {
	switch {
	case score < bandModerateFloor:
		return contracts.BandLow
	case score < bandElevatedFloor:
		return contracts.BandModerate
	case score < bandHighFloor:
		return contracts.BandElevated
	default:
		return contracts.BandHigh
	}
}
