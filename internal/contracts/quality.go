package contracts

// QualityTier grades how complete the inputs were for the requested metrics
type QualityTier string

const (
	// TierComplete means every field required by the requested families was present
	TierComplete QualityTier = "complete"
	// TierLimited means gaps exist but the core ratios are still computable
	TierLimited QualityTier = "limited"
	// TierInsufficient means even the core ratios cannot be computed
	TierInsufficient QualityTier = "insufficient"
)

// DataQualityReport is advisory metadata returned alongside results.
// Missing only lists fields actually required by the requested families.
// The tier never blocks computation of families whose inputs are present.
type DataQualityReport struct {
	Tier    QualityTier `json:"tier"`
	Missing []string    `json:"missing"`
}
