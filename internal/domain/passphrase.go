package domain

// StrengthTier buckets a passphrase by how far it exceeds the minimum policy.
type StrengthTier string

const (
	StrengthWeak   StrengthTier = "weak"
	StrengthMedium StrengthTier = "medium"
	StrengthStrong StrengthTier = "strong"
)

// PassphraseReport is the result of validating a candidate passphrase. It is
// surfaced directly to UI layers for real-time feedback, so Violations keeps
// a stable order.
type PassphraseReport struct {
	Valid      bool         `json:"valid"`
	Strength   StrengthTier `json:"strength"`
	Violations []string     `json:"violations,omitempty"`
}
