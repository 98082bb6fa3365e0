// Package condition holds the ordered rule catalogs that classify a fact set
// and the resolver that picks the single applicable rule.
//
// A condition is primarily applicable when a notice is being generated, its
// points requirement holds and all of its primary criteria hold. Its
// validation criteria then decide whether the facts are consistent; when
// they are not, the condition carries a message for the case worker.
package condition

import (
	"errors"
	"fmt"

	"github.com/ppiankov/entitlement/internal/message"
	"github.com/ppiankov/entitlement/internal/model"
	"github.com/ppiankov/entitlement/internal/predicate"
)

// ErrNoCondition is returned when no condition of a catalog applies
var ErrNoCondition = errors.New("no applicable condition")

// NoConditionError carries the facts that matched no condition
type NoConditionError struct {
	Catalog string
	Facts   string
}

func (e *NoConditionError) Error() string {
	return fmt.Sprintf("no %s condition found for %s", e.Catalog, e.Facts)
}

// Is makes the error match ErrNoCondition
func (e *NoConditionError) Is(target error) bool {
	return target == ErrNoCondition
}

// Condition is one rule of a catalog
type Condition struct {
	// ID is the benefit-specific identifier, Key the identifier shared by
	// both benefits
	ID  string
	Key string

	Points        predicate.Points
	DisplayPoints bool
	Primary       []predicate.Criterion

	ValidationPoints predicate.Points
	Validations      []predicate.Criterion

	Award model.AwardTier
}

// Applicable reports whether the condition is primarily applicable
func (c *Condition) Applicable(facts model.FactSet) bool {
	if !facts.GenerateNotice.IsYes() {
		return false
	}
	if !c.Points.Test(facts.TotalPoints) {
		return false
	}
	for _, p := range c.Primary {
		if !p.Holds(facts) {
			return false
		}
	}
	return true
}

// Message explains why the facts fail the validation criteria.
// It returns "" when they pass.
func (c *Condition) Message(facts model.FactSet) string {
	var failed []string
	if !c.ValidationPoints.Test(facts.TotalPoints) {
		failed = append(failed, c.ValidationPoints.FailurePhrase())
	}
	for _, v := range c.Validations {
		if !v.Holds(facts) {
			failed = append(failed, v.Failure(facts))
		}
	}
	if len(failed) == 0 {
		return ""
	}

	var satisfied []string
	if c.DisplayPoints && !c.Points.IsAny() {
		satisfied = append(satisfied, c.Points.SatisfiedPhrase())
	}
	for _, p := range c.Primary {
		if phrase, ok := p.Satisfied(facts); ok {
			satisfied = append(satisfied, phrase)
		}
	}

	return message.Compose(satisfied, failed)
}

// Resolution is the condition chosen for a fact set. A non-empty Message
// means the facts are inconsistent and the case worker must review them.
type Resolution struct {
	Condition *Condition
	Message   string
}

// Valid reports whether the resolved condition passed its validations
func (r Resolution) Valid() bool {
	return r.Message == ""
}

// Resolve picks the first primarily applicable condition whose validations
// pass. When every applicable condition fails validation, the first of them
// is returned with its message. When none applies, a *NoConditionError is
// returned.
func Resolve(catalog *Catalog, facts model.FactSet) (Resolution, error) {
	var first *Resolution
	for i := range catalog.conditions {
		c := &catalog.conditions[i]
		if !c.Applicable(facts) {
			continue
		}
		msg := c.Message(facts)
		if msg == "" {
			return Resolution{Condition: c}, nil
		}
		if first == nil {
			first = &Resolution{Condition: c, Message: msg}
		}
	}
	if first != nil {
		return *first, nil
	}
	return Resolution{}, &NoConditionError{Catalog: catalog.Name(), Facts: facts.Dump()}
}
