package predicate

import "github.com/ppiankov/entitlement/internal/model"

// List accepts a subset of {empty, non-empty, unspecified}
type List uint8

const (
	listEmpty List = 1 << iota
	listNotEmpty
	listUnspecified
)

// IsEmpty holds when the list was answered with no selections
func IsEmpty() List { return listEmpty }

// IsNotEmpty holds when at least one item was selected
func IsNotEmpty() List { return listNotEmpty }

// IsListUnspecified holds when the list question was not answered.
// This is distinct from an answered, empty list.
func IsListUnspecified() List { return listUnspecified }

// AnyList always holds
func AnyList() List { return listEmpty | listNotEmpty | listUnspecified }

// Or holds when either predicate holds
func (p List) Or(q List) List { return p | q }

// Test reports whether s is accepted
func (p List) Test(s model.Selection) bool {
	switch {
	case !s.IsSet():
		return p&listUnspecified != 0
	case s.IsEmpty():
		return p&listEmpty != 0
	default:
		return p&listNotEmpty != 0
	}
}

func (p List) String() string {
	switch p {
	case listEmpty:
		return "empty"
	case listNotEmpty:
		return "not empty"
	case listUnspecified:
		return "unspecified"
	case AnyList():
		return "any"
	default:
		return "custom"
	}
}
