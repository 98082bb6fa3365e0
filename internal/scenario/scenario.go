// Package scenario refines a resolved outcome condition into the narrative
// scenario that selects the wording of a decision notice.
package scenario

import (
	"errors"
	"fmt"

	"github.com/ppiankov/entitlement/internal/condition"
	"github.com/ppiankov/entitlement/internal/model"
)

// ID identifies a decision notice scenario
type ID string

const (
	Scenario1  ID = "SCENARIO_1"
	Scenario2  ID = "SCENARIO_2"
	Scenario3  ID = "SCENARIO_3"
	Scenario4  ID = "SCENARIO_4"
	Scenario5  ID = "SCENARIO_5"
	Scenario6  ID = "SCENARIO_6"
	Scenario7  ID = "SCENARIO_7"
	Scenario8  ID = "SCENARIO_8"
	Scenario9  ID = "SCENARIO_9"
	Scenario10 ID = "SCENARIO_10"
	Scenario12 ID = "SCENARIO_12"
)

var summaries = map[ID]string{
	Scenario1:  "Appeal refused: no limited capability for work",
	Scenario2:  "Support group only appeal refused: limited capability for work continues without work-related activity",
	Scenario3:  "Support group only appeal allowed on the work-related activity risk override with no activities selected",
	Scenario4:  "Support group only appeal allowed: limited capability for work-related activity",
	Scenario5:  "Appeal allowed on points: limited capability for work only",
	Scenario6:  "Appeal allowed on points with limited capability for work-related activity",
	Scenario7:  "Appeal allowed on the work risk override: limited capability for work only",
	Scenario8:  "Appeal allowed on both risk overrides",
	Scenario9:  "Appeal allowed on the work risk override with limited capability for work-related activity",
	Scenario10: "Not a work capability assessment appeal",
	Scenario12: "Appeal allowed on points and on the work-related activity risk override",
}

// Summary returns the short description of a scenario
func (id ID) Summary() string {
	return summaries[id]
}

// All returns every scenario in ascending order
func All() []ID {
	return []ID{Scenario1, Scenario2, Scenario3, Scenario4, Scenario5, Scenario6,
		Scenario7, Scenario8, Scenario9, Scenario10, Scenario12}
}

// ErrNoScenario is returned when the ladder has no branch for an outcome
var ErrNoScenario = errors.New("no applicable scenario")

// NoScenarioError names the outcome condition and facts that matched no branch
type NoScenarioError struct {
	Condition string
	Facts     string
}

func (e *NoScenarioError) Error() string {
	return fmt.Sprintf("no scenario applicable for %s with %s", e.Condition, e.Facts)
}

// Is makes the error match ErrNoScenario
func (e *NoScenarioError) Is(target error) bool {
	return target == ErrNoScenario
}

// Map selects the scenario for a resolved outcome condition. Branches are
// tried in order. An unanswered high-tier list counts as neither empty nor
// non-empty.
func Map(c *condition.Condition, facts model.FactSet) (ID, error) {
	if c == nil {
		return "", &NoScenarioError{Condition: "<none>", Facts: facts.Dump()}
	}

	highTier := facts.Schedule7Activities
	risk := facts.Schedule9Para4

	switch {
	case c.Key == condition.KeyRefusedNonSupportGroupOnly:
		return Scenario1, nil
	case c.Key == condition.KeyRefusedSupportGroupOnlyLowPoints || c.Key == condition.KeyRefusedSupportGroupOnlyHighPoints:
		return Scenario2, nil
	case c.Key == condition.KeyAllowedSupportGroupOnlyNotSelected && risk.IsYes():
		return Scenario3, nil
	case (c.Key == condition.KeyAllowedSupportGroupOnlyNotSelected && risk == model.Unspecified) ||
		c.Key == condition.KeyAllowedSupportGroupOnlySelected:
		return Scenario4, nil
	case c.Key == condition.KeyAllowedNonSupportGroupOnlyHigh && highTier.IsEmpty():
		if risk.IsYes() {
			return Scenario12, nil
		}
		return Scenario5, nil
	case c.Key == condition.KeyAllowedNonSupportGroupOnlyHigh && highTier.IsNotEmpty():
		return Scenario6, nil
	case c.Key == condition.KeyAllowedNonSupportGroupOnlyLow && highTier.IsEmpty() && risk.IsNo():
		return Scenario7, nil
	case c.Key == condition.KeyAllowedNonSupportGroupOnlyLow && highTier.IsEmpty() && risk.IsYes():
		return Scenario8, nil
	case c.Key == condition.KeyAllowedNonSupportGroupOnlyLow && highTier.IsNotEmpty():
		return Scenario9, nil
	case c.Key == condition.KeyNonWCAAppealAllowed || c.Key == condition.KeyNonWCAAppealRefused:
		return Scenario10, nil
	default:
		return "", &NoScenarioError{Condition: c.ID, Facts: facts.Dump()}
	}
}
