package keywrap

import (
	"unicode"

	"notelock/internal/domain"
)

const (
	// MinPassphraseLength is the minimum accepted passphrase length.
	MinPassphraseLength = 12
	// strongLength is the length at which an otherwise valid passphrase is
	// reported as strong.
	strongLength = 16
)

// Rule names reported in PassphraseReport.Violations, in check order.
const (
	RuleMinLength = "min_length"
	RuleUppercase = "uppercase"
	RuleLowercase = "lowercase"
	RuleDigit     = "digit"
	RuleSymbol    = "symbol"
)

// ValidatePassphrase checks a candidate against the strength policy. It is
// pure and cheap enough to run on every keystroke in a caller's UI.
func ValidatePassphrase(candidate string) domain.PassphraseReport {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	length := 0
	for _, r := range candidate {
		length++
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	var violations []string
	if length < MinPassphraseLength {
		violations = append(violations, RuleMinLength)
	}
	if !hasUpper {
		violations = append(violations, RuleUppercase)
	}
	if !hasLower {
		violations = append(violations, RuleLowercase)
	}
	if !hasDigit {
		violations = append(violations, RuleDigit)
	}
	if !hasSymbol {
		violations = append(violations, RuleSymbol)
	}

	report := domain.PassphraseReport{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
	switch {
	case !report.Valid:
		report.Strength = domain.StrengthWeak
	case length >= strongLength:
		report.Strength = domain.StrengthStrong
	default:
		report.Strength = domain.StrengthMedium
	}
	return report
}
