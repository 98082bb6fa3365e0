// Package decision chains the two catalogs into the decision workflow: the
// validation stage checks the points and activities answers before a notice
// is previewed, the outcome stage classifies the allowed or refused decision
// and selects its scenario. The stages share nothing but the fact set.
package decision

import (
	"errors"
	"fmt"

	"github.com/ppiankov/entitlement/internal/condition"
	"github.com/ppiankov/entitlement/internal/model"
	"github.com/ppiankov/entitlement/internal/scenario"
)

// ValidationResult is the outcome of the validation stage. A nil Condition
// means no rule applies yet: the answers are incomplete.
type ValidationResult struct {
	Condition *condition.Condition
	Message   string
}

// Complete reports whether a validation rule applied
func (r ValidationResult) Complete() bool {
	return r.Condition != nil
}

// ValidationStage resolves the points and activities catalog
type ValidationStage struct {
	catalog *condition.Catalog
}

// NewValidationStage creates a validation stage over catalog
func NewValidationStage(catalog *condition.Catalog) *ValidationStage {
	return &ValidationStage{catalog: catalog}
}

// Run resolves the catalog. Facts matching no rule are reported as
// incomplete rather than as an error.
func (s *ValidationStage) Run(facts model.FactSet) (ValidationResult, error) {
	res, err := condition.Resolve(s.catalog, facts)
	if errors.Is(err, condition.ErrNoCondition) {
		return ValidationResult{}, nil
	}
	if err != nil {
		return ValidationResult{}, err
	}
	return ValidationResult{Condition: res.Condition, Message: res.Message}, nil
}

// OutcomeResult is the outcome of the outcome stage. Scenario is set only
// when Message is empty.
type OutcomeResult struct {
	Condition *condition.Condition
	Message   string
	Scenario  scenario.ID
}

// OutcomeStage resolves the allowed or refused catalog and maps the scenario
type OutcomeStage struct {
	catalog *condition.Catalog
}

// NewOutcomeStage creates an outcome stage over catalog
func NewOutcomeStage(catalog *condition.Catalog) *OutcomeStage {
	return &OutcomeStage{catalog: catalog}
}

// Run resolves the catalog. Facts matching no rule, and resolved rules with
// no scenario, are fatal.
func (s *OutcomeStage) Run(facts model.FactSet) (OutcomeResult, error) {
	res, err := condition.Resolve(s.catalog, facts)
	if err != nil {
		return OutcomeResult{}, fmt.Errorf("outcome stage: %w", err)
	}

	out := OutcomeResult{Condition: res.Condition, Message: res.Message}
	if !res.Valid() {
		return out, nil
	}

	out.Scenario, err = scenario.Map(res.Condition, facts)
	if err != nil {
		return OutcomeResult{}, fmt.Errorf("outcome stage: %w", err)
	}
	return out, nil
}
