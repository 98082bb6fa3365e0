package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/entitlement/internal/model"
)

func sample() model.FactSet {
	return model.FactSet{
		Benefit:             model.BenefitUC,
		GenerateNotice:      model.Yes,
		AllowedOrRefused:    model.Allowed,
		TotalPoints:         18,
		WCAAppeal:           model.Yes,
		SupportGroupOnly:    model.No,
		Schedule7Activities: model.Select("schedule7Reaching"),
	}
}

func TestFilter_Match(t *testing.T) {
	tests := []struct {
		expr string
		want bool
	}{
		{`benefit == "UC"`, true},
		{`benefit == "ESA"`, false},
		{`totalPoints >= 15`, true},
		{`totalPoints < 15`, false},
		{`wcaAppeal == "yes" && supportGroupOnly == "no"`, true},
		{`allowedOrRefused == "allowed"`, true},
		{`schedule9Para4 == null`, true},
		{`schedule8Para4 == "yes"`, false},
		{`schedule7Activities != null && size(schedule7Activities) == 1`, true},
		{`"schedule7Reaching" in schedule7Activities`, true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expr, f.String())

			got, err := f.Match(sample())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompile_Rejects(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"syntax error", `totalPoints >=`},
		{"unknown variable", `claimant == "x"`},
		{"not a boolean", `totalPoints + 1`},
		{"type mismatch", `benefit > 3`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expr)
			assert.Error(t, err)
		})
	}
}

func TestFilter_NilMatchesEverything(t *testing.T) {
	var f *Filter
	ok, err := f.Match(sample())
	require.NoError(t, err)
	assert.True(t, ok)
}
