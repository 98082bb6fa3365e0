package decision

import (
	"fmt"

	"github.com/ppiankov/entitlement/internal/condition"
	"github.com/ppiankov/entitlement/internal/model"
	"github.com/ppiankov/entitlement/internal/predicate"
	"github.com/ppiankov/entitlement/internal/validate"
)

// Engine runs both stages for one benefit. It holds no per-call state and is
// safe for concurrent use.
type Engine struct {
	benefit    model.Benefit
	forms      *validate.Validator
	validation *ValidationStage
	outcome    *OutcomeStage
}

// NewEngine creates an engine for a benefit
func NewEngine(benefit model.Benefit) (*Engine, error) {
	validation, outcome, err := condition.ForBenefit(benefit)
	if err != nil {
		return nil, err
	}
	return &Engine{
		benefit:    benefit,
		forms:      validate.NewValidator(),
		validation: NewValidationStage(validation),
		outcome:    NewOutcomeStage(outcome),
	}, nil
}

// Benefit returns the benefit the engine serves
func (e *Engine) Benefit() model.Benefit {
	return e.benefit
}

// Validate runs the form checks and the validation stage only
func (e *Engine) Validate(facts model.FactSet) (model.Decision, error) {
	d, _, err := e.validate(facts)
	return d, err
}

// Decide runs the form checks and both stages. Inconsistent facts are
// reported through the decision's messages; only rule drift is an error.
// The outcome stage is not consulted until validation is accepted.
func (e *Engine) Decide(facts model.FactSet) (model.Decision, error) {
	d, proceed, err := e.validate(facts)
	if err != nil || !proceed {
		return d, err
	}

	// Allowed or refused is only answered on the final page
	if facts.AllowedOrRefused == model.OutcomeUnspecified {
		d.Status = model.StatusIncomplete
		return d, nil
	}

	out, err := e.outcome.Run(facts)
	if err != nil {
		return model.Decision{}, err
	}

	d.OutcomeCondition = out.Condition.ID
	if out.Message != "" {
		d.Status = model.StatusRejected
		d.Messages = append(d.Messages, out.Message)
		return d, nil
	}

	d.Status = model.StatusAccepted
	d.Scenario = string(out.Scenario)
	d.ScenarioSummary = out.Scenario.Summary()
	return d, nil
}

// validate reports whether the outcome stage should run
func (e *Engine) validate(facts model.FactSet) (model.Decision, bool, error) {
	if facts.Benefit != e.benefit {
		return model.Decision{}, false, fmt.Errorf("%s engine cannot decide a %s case", e.benefit, facts.Benefit)
	}

	d := model.Decision{
		ShowOverridePage: facts.IsBelowThreshold(predicate.Threshold),
	}

	if !facts.GenerateNotice.IsYes() {
		d.Status = model.StatusSkipped
		return d, false, nil
	}

	d.Messages = e.forms.Validate(facts)

	v, err := e.validation.Run(facts)
	if err != nil {
		return model.Decision{}, false, err
	}

	if v.Complete() {
		d.ValidationCondition = v.Condition.ID
		d.Award = v.Condition.Award
		d.AwardLabel = v.Condition.Award.Label()
		d.Entitled = v.Condition.Award.IsEntitled()
		if v.Message != "" {
			d.Messages = append(d.Messages, v.Message)
		}
	}

	switch {
	case len(d.Messages) > 0:
		d.Status = model.StatusRejected
		return d, false, nil
	case !v.Complete():
		d.Status = model.StatusIncomplete
		return d, false, nil
	default:
		d.Status = model.StatusAccepted
		return d, true, nil
	}
}
