package score

import (
	"fmt"
	"strings"

	"github.com/ppiankov/entitlement/internal/model"
	"github.com/ppiankov/entitlement/internal/predicate"
	"github.com/ppiankov/entitlement/internal/registry"
)

// Points bands
const (
	BandBelow     = "below"
	BandAtOrAbove = "at_or_above"
)

// Scorer totals the descriptor points of the selected activities
type Scorer struct {
	registry  *registry.Registry
	threshold int
}

// NewScorer creates a scorer over a benefit's registry
func NewScorer(reg *registry.Registry) *Scorer {
	return &Scorer{registry: reg, threshold: predicate.Threshold}
}

// Calculate totals the points of the selected activities and returns the
// per-activity breakdown. A selected activity without an answer contributes 0.
// Unknown activity or answer keys fail the calculation.
func (s *Scorer) Calculate(activities model.Selection, answers map[string]string) (model.Points, error) {
	result := model.Points{Threshold: s.threshold}

	terms := make([]string, 0, activities.Len())
	for _, key := range activities.Items() {
		q, err := s.registry.Lookup(key)
		if err != nil {
			return model.Points{}, err
		}
		if q.IsSelection() {
			return model.Points{}, fmt.Errorf("activity %q does not score points", key)
		}

		line := model.PointsLine{Activity: q.Key}
		if answerKey := answers[key]; answerKey != "" {
			a, err := s.registry.Answer(key, answerKey)
			if err != nil {
				return model.Points{}, err
			}
			line.Answer = a.Key
			line.Points = a.Points
		}

		result.Lines = append(result.Lines, line)
		result.Total += line.Points
		terms = append(terms, fmt.Sprintf("%s(%d)", q.Key, line.Points))
	}

	if len(terms) == 0 {
		result.Formula = "0"
	} else {
		result.Formula = strings.Join(terms, " + ")
	}
	result.Band = s.band(result.Total)

	return result, nil
}

// band places a total against the threshold
func (s *Scorer) band(total int) string {
	if total < s.threshold {
		return BandBelow
	}
	return BandAtOrAbove
}
