package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AppealOutcome is the judge's allowed/refused classification
type AppealOutcome int

const (
	OutcomeUnspecified AppealOutcome = iota
	Allowed
	Refused
)

// ParseAppealOutcome converts case-data text into an AppealOutcome
func ParseAppealOutcome(s string) (AppealOutcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return OutcomeUnspecified, nil
	case "allowed":
		return Allowed, nil
	case "refused":
		return Refused, nil
	default:
		return OutcomeUnspecified, fmt.Errorf("%w: %q", ErrInvalidAnswer, s)
	}
}

func (o AppealOutcome) String() string {
	switch o {
	case Allowed:
		return "allowed"
	case Refused:
		return "refused"
	default:
		return "unspecified"
	}
}

// MarshalJSON renders an unspecified outcome as null
func (o AppealOutcome) MarshalJSON() ([]byte, error) {
	if o == OutcomeUnspecified {
		return []byte("null"), nil
	}
	return json.Marshal(o.String())
}

// UnmarshalJSON accepts null and the spellings ParseAppealOutcome accepts
func (o *AppealOutcome) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAnswer, string(data))
	}
	if raw == nil {
		*o = OutcomeUnspecified
		return nil
	}
	parsed, err := ParseAppealOutcome(*raw)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Benefit identifies the benefit variant an appeal concerns
type Benefit string

const (
	BenefitUC  Benefit = "UC"
	BenefitESA Benefit = "ESA"
)

// ErrUnsupportedBenefit is returned for benefit codes other than UC and ESA
var ErrUnsupportedBenefit = errors.New("unsupported benefit type")

// ParseBenefit normalises a benefit code
func ParseBenefit(s string) (Benefit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UC":
		return BenefitUC, nil
	case "ESA":
		return BenefitESA, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedBenefit, s)
	}
}

// AwardTier is the entitlement level a rule resolves to
type AwardTier string

const (
	AwardNone  AwardTier = ""
	NoAward    AwardTier = "noAward"
	LowerRate  AwardTier = "lowerRate"
	HigherRate AwardTier = "higherRate"
)

// IsEntitled reports whether the tier carries an award
func (a AwardTier) IsEntitled() bool {
	return a == LowerRate || a == HigherRate
}

// Label renders the tier for notices, e.g. "higher rate"
func (a AwardTier) Label() string {
	if a == AwardNone {
		return ""
	}
	var words []string
	start := 0
	key := string(a)
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, key[start:i])
			start = i
		}
	}
	words = append(words, key[start:])
	// Casers carry state, so one is built per call
	return cases.Lower(language.BritishEnglish).String(strings.Join(words, " "))
}
