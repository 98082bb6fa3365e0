package predicate

import "fmt"

// Threshold is the statutory points boundary. A total equal to the
// threshold counts as at-or-above.
const Threshold = 15

type pointsKind uint8

const (
	pointsAny pointsKind = iota
	pointsBelow
	pointsAtOrAbove
)

// Points is a requirement on the points total
type Points struct {
	kind      pointsKind
	threshold int
}

// Below holds when the total is strictly under n
func Below(n int) Points { return Points{kind: pointsBelow, threshold: n} }

// AtOrAbove holds when the total is n or more
func AtOrAbove(n int) Points { return Points{kind: pointsAtOrAbove, threshold: n} }

// AnyPoints always holds
func AnyPoints() Points { return Points{kind: pointsAny} }

// IsAny reports whether the requirement ignores points
func (p Points) IsAny() bool { return p.kind == pointsAny }

// Test reports whether total satisfies the requirement
func (p Points) Test(total int) bool {
	switch p.kind {
	case pointsBelow:
		return total < p.threshold
	case pointsAtOrAbove:
		return total >= p.threshold
	default:
		return true
	}
}

// SatisfiedPhrase describes the requirement as met, empty for AnyPoints
func (p Points) SatisfiedPhrase() string {
	switch p.kind {
	case pointsBelow:
		return fmt.Sprintf("awarded less than %d points", p.threshold)
	case pointsAtOrAbove:
		return fmt.Sprintf("awarded %d points or more", p.threshold)
	default:
		return ""
	}
}

// FailurePhrase describes the requirement as not met, empty for AnyPoints
func (p Points) FailurePhrase() string {
	if p.kind == pointsAny {
		return ""
	}
	return "not " + p.SatisfiedPhrase()
}

func (p Points) String() string {
	switch p.kind {
	case pointsBelow:
		return fmt.Sprintf("< %d", p.threshold)
	case pointsAtOrAbove:
		return fmt.Sprintf(">= %d", p.threshold)
	default:
		return "any"
	}
}
