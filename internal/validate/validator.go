// Package validate runs the form-level checks made on a decision before the
// condition catalogs are consulted.
package validate

import (
	"github.com/ppiankov/entitlement/internal/model"
)

// Form check messages shown to the case worker
const (
	MsgNoActivitySelected = "At least one activity must be selected."
	MsgEndBeforeStart     = "Decision notice end date must be after decision notice start date"
)

// Check is a single form-level rule. It returns a message when the facts fail it.
type Check func(facts model.FactSet) (string, bool)

// Validator runs form checks in order and collects every failure
type Validator struct {
	checks []Check
}

// NewValidator creates a validator with the standard form checks
func NewValidator() *Validator {
	return &Validator{checks: []Check{activitySelected, noticeDates}}
}

// Validate returns the messages of the failed checks, nil when all pass
func (v *Validator) Validate(facts model.FactSet) []string {
	var messages []string
	for _, check := range v.checks {
		if msg, failed := check(facts); failed {
			messages = append(messages, msg)
		}
	}
	return messages
}

// activitySelected requires an ESA activity once either activity list has been
// answered. UC notices may carry no Schedule 6 descriptors at all.
func activitySelected(facts model.FactSet) (string, bool) {
	if facts.Benefit != model.BenefitESA {
		return "", false
	}
	physical, mental := facts.PhysicalActivities, facts.MentalActivities
	if !physical.IsSet() && !mental.IsSet() {
		return "", false
	}
	if physical.IsNotEmpty() || mental.IsNotEmpty() {
		return "", false
	}
	return MsgNoActivitySelected, true
}

func noticeDates(facts model.FactSet) (string, bool) {
	if facts.NoticeStart == nil || facts.NoticeEnd == nil {
		return "", false
	}
	if facts.NoticeEnd.After(*facts.NoticeStart) {
		return "", false
	}
	return MsgEndBeforeStart, true
}
