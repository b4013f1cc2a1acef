package contracts

// Severity grades one fraud signal
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// FraudBand is the discrete risk category of the composite score
type FraudBand string

const (
	BandLow      FraudBand = "low"
	BandModerate FraudBand = "moderate"
	BandElevated FraudBand = "elevated"
	BandHigh     FraudBand = "high"
)

// FraudSignal is one severity-tagged red flag derived from the metric bundle
type FraudSignal struct {
	Name      string   `json:"name"`
	Value     *float64 `json:"value"`
	Severity  Severity `json:"severity"`
	Rationale string   `json:"rationale"`
}

// FraudScoreResult is the composite 0-100 fraud risk score.
// Identical signal inputs always yield an identical score and band.
type FraudScoreResult struct {
	Value float64   `json:"value"`
	Scale string    `json:"scale"` // always "0-100"
	Band  FraudBand `json:"band"`
}

// Recommendation is a suggested audit procedure for a triggered signal
type Recommendation struct {
	Test string `json:"test"`
	Why  string `json:"why"`
}
