package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/entitlement/internal/condition"
	"github.com/ppiankov/entitlement/internal/model"
)

func outcome(t *testing.T, key string) *condition.Condition {
	t.Helper()
	c, ok := condition.UCOutcome().Lookup(key)
	require.True(t, ok, "unknown condition %s", key)
	return c
}

func TestMap_Ladder(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		highTier model.Selection
		risk     model.Ternary
		want     ID
	}{
		{"refused non support group", condition.KeyRefusedNonSupportGroupOnly, model.Unset(), model.Unspecified, Scenario1},
		{"refused support group low", condition.KeyRefusedSupportGroupOnlyLowPoints, model.Select(), model.No, Scenario2},
		{"refused support group high", condition.KeyRefusedSupportGroupOnlyHighPoints, model.Select(), model.No, Scenario2},
		{"support group nothing selected with risk", condition.KeyAllowedSupportGroupOnlyNotSelected, model.Select(), model.Yes, Scenario3},
		{"support group nothing selected without risk answer", condition.KeyAllowedSupportGroupOnlyNotSelected, model.Select(), model.Unspecified, Scenario4},
		{"support group selected", condition.KeyAllowedSupportGroupOnlySelected, model.Select("schedule7Reaching"), model.Unspecified, Scenario4},
		{"high points nothing selected", condition.KeyAllowedNonSupportGroupOnlyHigh, model.Select(), model.No, Scenario5},
		{"high points nothing selected risk unanswered", condition.KeyAllowedNonSupportGroupOnlyHigh, model.Select(), model.Unspecified, Scenario5},
		{"high points nothing selected with risk", condition.KeyAllowedNonSupportGroupOnlyHigh, model.Select(), model.Yes, Scenario12},
		{"high points with selections", condition.KeyAllowedNonSupportGroupOnlyHigh, model.Select("schedule7Reaching"), model.Unspecified, Scenario6},
		{"low points no risk", condition.KeyAllowedNonSupportGroupOnlyLow, model.Select(), model.No, Scenario7},
		{"low points with risk", condition.KeyAllowedNonSupportGroupOnlyLow, model.Select(), model.Yes, Scenario8},
		{"low points with selections", condition.KeyAllowedNonSupportGroupOnlyLow, model.Select("schedule7Reaching"), model.Unspecified, Scenario9},
		{"non wca allowed", condition.KeyNonWCAAppealAllowed, model.Unset(), model.Unspecified, Scenario10},
		{"non wca refused", condition.KeyNonWCAAppealRefused, model.Unset(), model.Unspecified, Scenario10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := model.FactSet{Schedule7Activities: tt.highTier, Schedule9Para4: tt.risk}
			got, err := Map(outcome(t, tt.key), facts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.Summary())
		})
	}
}

func TestMap_NoBranch(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		highTier model.Selection
		risk     model.Ternary
	}{
		{"high points with unanswered list", condition.KeyAllowedNonSupportGroupOnlyHigh, model.Unset(), model.No},
		{"low points with unanswered list", condition.KeyAllowedNonSupportGroupOnlyLow, model.Unset(), model.No},
		{"low points empty list risk unanswered", condition.KeyAllowedNonSupportGroupOnlyLow, model.Select(), model.Unspecified},
		{"support group list unanswered", condition.KeyAllowedSupportGroupOnlyUnspecified, model.Unset(), model.Yes},
		{"support group nothing selected risk declined", condition.KeyAllowedSupportGroupOnlyNotSelected, model.Select(), model.No},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := model.FactSet{Schedule7Activities: tt.highTier, Schedule9Para4: tt.risk}
			_, err := Map(outcome(t, tt.key), facts)
			assert.ErrorIs(t, err, ErrNoScenario)

			var noScenario *NoScenarioError
			require.ErrorAs(t, err, &noScenario)
			assert.Contains(t, noScenario.Facts, "schedule9Para4=")
		})
	}
}

func TestMap_IgnoresUnrelatedFacts(t *testing.T) {
	c := outcome(t, condition.KeyRefusedNonSupportGroupOnly)

	first, err := Map(c, model.FactSet{TotalPoints: 3})
	require.NoError(t, err)

	second, err := Map(c, model.FactSet{TotalPoints: 40, Schedule8Para4: model.Yes, DWPReassessAward: model.Yes})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMap_NilCondition(t *testing.T) {
	_, err := Map(nil, model.FactSet{})
	assert.ErrorIs(t, err, ErrNoScenario)
}

func TestAll_HaveSummaries(t *testing.T) {
	for _, id := range All() {
		assert.NotEmpty(t, id.Summary(), string(id))
	}
}
