// Package message builds the case-worker-facing explanation of why entered
// facts are inconsistent.
package message

import "strings"

const suffix = ". Please review your previous selection."

// Compose joins what the case worker satisfied and what still fails.
// It returns "" when nothing failed.
func Compose(satisfied, failed []string) string {
	if len(failed) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("You have ")
	b.WriteString(Join(satisfied))
	if len(satisfied) > 0 {
		b.WriteString(", but have ")
	}
	b.WriteString(Join(failed))
	b.WriteString(suffix)
	return b.String()
}

// Join renders "A", "A and B" or "A, B and C"
func Join(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
