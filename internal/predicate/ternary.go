// Package predicate provides the reusable conditions rules are built from:
// yes/no/unspecified flags, tri-state lists, points totals and the appeal
// outcome. Predicates are small comparable values; criteria bind a predicate
// to a fact and to the phrases shown to case workers.
package predicate

import "github.com/ppiankov/entitlement/internal/model"

// Ternary accepts a subset of {yes, no, unspecified}
type Ternary uint8

const (
	ternaryYes Ternary = 1 << iota
	ternaryNo
	ternaryUnspecified
)

// IsYes holds when the flag was answered Yes
func IsYes() Ternary { return ternaryYes }

// IsNo holds when the flag was answered No
func IsNo() Ternary { return ternaryNo }

// IsUnspecified holds when the flag was not answered
func IsUnspecified() Ternary { return ternaryUnspecified }

// IsSpecified holds when the flag was answered either way
func IsSpecified() Ternary { return ternaryYes | ternaryNo }

// IsNotYes holds when the flag was answered No or not answered
func IsNotYes() Ternary { return IsNo().Or(IsUnspecified()) }

// AnyTernary always holds
func AnyTernary() Ternary { return ternaryYes | ternaryNo | ternaryUnspecified }

// Or holds when either predicate holds
func (p Ternary) Or(q Ternary) Ternary { return p | q }

// Test reports whether v is accepted
func (p Ternary) Test(v model.Ternary) bool {
	switch v {
	case model.Yes:
		return p&ternaryYes != 0
	case model.No:
		return p&ternaryNo != 0
	default:
		return p&ternaryUnspecified != 0
	}
}

func (p Ternary) String() string {
	switch p {
	case ternaryYes:
		return "yes"
	case ternaryNo:
		return "no"
	case ternaryUnspecified:
		return "unspecified"
	case IsSpecified():
		return "specified"
	case IsNotYes():
		return "not yes"
	case AnyTernary():
		return "any"
	default:
		return "custom"
	}
}

// Outcome accepts a subset of the allowed/refused classification
type Outcome uint8

const (
	outcomeAllowed Outcome = 1 << iota
	outcomeRefused
)

// IsAllowed holds when the appeal was allowed
func IsAllowed() Outcome { return outcomeAllowed }

// IsRefused holds when the appeal was refused
func IsRefused() Outcome { return outcomeRefused }

// Test reports whether o is accepted
func (p Outcome) Test(o model.AppealOutcome) bool {
	switch o {
	case model.Allowed:
		return p&outcomeAllowed != 0
	case model.Refused:
		return p&outcomeRefused != 0
	default:
		return false
	}
}

func (p Outcome) String() string {
	switch p {
	case outcomeAllowed:
		return "allowed"
	case outcomeRefused:
		return "refused"
	default:
		return "allowed or refused"
	}
}
