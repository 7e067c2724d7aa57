package types

import "math"

// Stack keys. The catalog ships exactly these three stacks; keys are
// stable identifiers used for lookup and filtering.
const (
	StackAztec     = "aztec"
	StackZama      = "zama"
	StackSoundness = "soundness"
)

// Field names for report rows and serialized output. These match the
// column names of the stacks table and the JSON keys of rendered rows.
const (
	FieldKey               = "key"
	FieldName              = "name"
	FieldFamily            = "family"
	FieldPrivacyLevel      = "privacy_level"
	FieldSoundnessFocus    = "soundness_focus"
	FieldPerformanceCost   = "performance_cost"
	FieldDevComplexity     = "dev_complexity"
	FieldEcosystemMaturity = "ecosystem_maturity"
	FieldCompositeScore    = "composite_score"
)

// Composite score weights. Benefit rewards privacy and soundness;
// penalty charges for runtime cost and integration effort.
const (
	weightPrivacyLevel    = 0.45
	weightSoundnessFocus  = 0.40
	weightPerformanceCost = 0.10
	weightDevComplexity   = 0.05
)

// FieldOrder returns the canonical column order for report output.
// FieldCompositeScore is not included; callers append it when the
// score column is requested.
func FieldOrder() []string {
	return []string{
		FieldKey,
		FieldName,
		FieldFamily,
		FieldPrivacyLevel,
		FieldSoundnessFocus,
		FieldPerformanceCost,
		FieldDevComplexity,
		FieldEcosystemMaturity,
	}
}

// PrivacyStack represents one Web3 privacy technology stack with its
// 1-10 dimension ratings.
type PrivacyStack struct {
	Key               string `json:"key"`                // Stable identifier (one of the Stack constants).
	Name              string `json:"name"`               // Human-readable display name.
	Family            string `json:"family"`             // Technology family, e.g. "FHE + Web3".
	Description       string `json:"description"`        // One-sentence summary of the approach.
	PrivacyLevel      int    `json:"privacy_level"`      // Strength of confidentiality guarantees.
	SoundnessFocus    int    `json:"soundness_focus"`    // Emphasis on correctness and verification.
	PerformanceCost   int    `json:"performance_cost"`   // Runtime overhead (higher is costlier).
	DevComplexity     int    `json:"dev_complexity"`     // Integration and tooling effort.
	EcosystemMaturity int    `json:"ecosystem_maturity"` // Production readiness of the ecosystem.
}

// CompositeScore computes the weighted benefit-minus-penalty score,
// rounded to two decimal places. Privacy and soundness contribute the
// benefit; performance cost and dev complexity are charged against it.
func (s PrivacyStack) CompositeScore() float64 {
	benefit := weightPrivacyLevel*float64(s.PrivacyLevel) + weightSoundnessFocus*float64(s.SoundnessFocus)
	penalty := weightPerformanceCost*float64(s.PerformanceCost) + weightDevComplexity*float64(s.DevComplexity)
	return round2(benefit - penalty)
}

// round2 rounds to two decimal places using banker's rounding, so
// repeated report runs and the stored fixture values agree exactly.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
