package predicate

import (
	"fmt"

	"github.com/ppiankov/entitlement/internal/model"
)

// Criterion is a predicate bound to one fact and to the phrases describing it
type Criterion interface {
	// Fact names the fact inspected
	Fact() model.Fact

	// Holds reports whether the fact set satisfies the criterion
	Holds(facts model.FactSet) bool

	// Satisfied returns the phrase shown when the criterion is met, if any
	Satisfied(facts model.FactSet) (string, bool)

	// Failure returns the phrase shown when the criterion is not met
	Failure(facts model.FactSet) string
}

type ternaryCriterion struct {
	fact    model.Fact
	label   string
	pred    Ternary
	display bool
}

// OnTernary binds a yes/no predicate to a fact. When display is false the
// criterion never contributes a satisfied phrase.
func OnTernary(fact model.Fact, label string, pred Ternary, display bool) Criterion {
	return ternaryCriterion{fact: fact, label: label, pred: pred, display: display}
}

func (c ternaryCriterion) Fact() model.Fact { return c.fact }

func (c ternaryCriterion) Holds(facts model.FactSet) bool {
	return c.pred.Test(facts.Ternary(c.fact))
}

func (c ternaryCriterion) Satisfied(facts model.FactSet) (string, bool) {
	if !c.display || !c.Holds(facts) {
		return "", false
	}
	switch facts.Ternary(c.fact) {
	case model.Yes:
		return fmt.Sprintf("specified that %s applies", c.label), true
	case model.No:
		return fmt.Sprintf("specified that %s does not apply", c.label), true
	default:
		if c.pred == IsUnspecified() {
			return fmt.Sprintf("not provided an answer to the %s question", c.label), true
		}
		return "", false
	}
}

func (c ternaryCriterion) Failure(facts model.FactSet) string {
	if c.pred == IsUnspecified() {
		return fmt.Sprintf("submitted an unexpected answer for the %s question", c.label)
	}
	switch facts.Ternary(c.fact) {
	case model.Yes:
		return fmt.Sprintf("answered Yes for the %s question", c.label)
	case model.No:
		return fmt.Sprintf("answered No for the %s question", c.label)
	default:
		return fmt.Sprintf("a missing answer for the %s question", c.label)
	}
}

type listCriterion struct {
	fact    model.Fact
	label   string
	pred    List
	display bool
}

// OnList binds a list predicate to a fact
func OnList(fact model.Fact, label string, pred List, display bool) Criterion {
	return listCriterion{fact: fact, label: label, pred: pred, display: display}
}

func (c listCriterion) Fact() model.Fact { return c.fact }

func (c listCriterion) Holds(facts model.FactSet) bool {
	return c.pred.Test(facts.List(c.fact))
}

func (c listCriterion) Satisfied(facts model.FactSet) (string, bool) {
	if !c.display || !c.Holds(facts) {
		return "", false
	}
	sel := facts.List(c.fact)
	switch {
	case sel.IsEmpty():
		return fmt.Sprintf("made no selections for the %s question", c.label), true
	case sel.IsNotEmpty():
		return fmt.Sprintf("made selections for the %s question", c.label), true
	case c.pred == IsListUnspecified():
		return fmt.Sprintf("not provided an answer to the %s question", c.label), true
	default:
		return "", false
	}
}

func (c listCriterion) Failure(facts model.FactSet) string {
	if c.pred == IsListUnspecified() {
		return fmt.Sprintf("submitted an unexpected answer for the %s question", c.label)
	}
	sel := facts.List(c.fact)
	switch {
	case !sel.IsSet():
		// Joined after "but have", so this reads "but have have a missing answer"
		// in the stored notices; kept verbatim.
		return fmt.Sprintf("have a missing answer for the %s question", c.label)
	case sel.IsNotEmpty():
		return fmt.Sprintf("made selections for the %s question", c.label)
	default:
		return fmt.Sprintf("made no selections for the %s question", c.label)
	}
}

type outcomeCriterion struct {
	pred Outcome
}

// OnOutcome binds an allowed/refused predicate to the appeal outcome
func OnOutcome(pred Outcome) Criterion {
	return outcomeCriterion{pred: pred}
}

func (c outcomeCriterion) Fact() model.Fact { return model.FactAllowedOrRefused }

func (c outcomeCriterion) Holds(facts model.FactSet) bool {
	return c.pred.Test(facts.AllowedOrRefused)
}

func (c outcomeCriterion) Satisfied(facts model.FactSet) (string, bool) {
	if !c.Holds(facts) {
		return "", false
	}
	return fmt.Sprintf("specified that the appeal is %s", facts.AllowedOrRefused), true
}

func (c outcomeCriterion) Failure(facts model.FactSet) string {
	if facts.AllowedOrRefused == model.OutcomeUnspecified {
		return "a missing answer for the allowed or refused question"
	}
	return fmt.Sprintf("specified that the appeal is %s", facts.AllowedOrRefused)
}
