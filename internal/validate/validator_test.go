package validate

import (
	"testing"
	"time"

	"github.com/ppiankov/entitlement/internal/model"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		desc     string
		facts    model.FactSet
		expected []string
	}{
		{
			desc:     "nothing answered",
			facts:    model.FactSet{},
			expected: nil,
		},
		{
			desc:     "physical answered empty, mental absent",
			facts:    model.FactSet{Benefit: model.BenefitESA, PhysicalActivities: model.Select()},
			expected: []string{MsgNoActivitySelected},
		},
		{
			desc:     "both answered empty",
			facts:    model.FactSet{Benefit: model.BenefitESA, PhysicalActivities: model.Select(), MentalActivities: model.Select()},
			expected: []string{MsgNoActivitySelected},
		},
		{
			desc:     "uc both answered empty",
			facts:    model.FactSet{Benefit: model.BenefitUC, PhysicalActivities: model.Select(), MentalActivities: model.Select()},
			expected: nil,
		},
		{
			desc:     "mental selection present",
			facts:    model.FactSet{Benefit: model.BenefitESA, PhysicalActivities: model.Select(), MentalActivities: model.Select("learningTasks")},
			expected: nil,
		},
		{
			desc:     "end after start",
			facts:    model.FactSet{NoticeStart: date("2024-01-01"), NoticeEnd: date("2024-01-02")},
			expected: nil,
		},
		{
			desc:     "end equal to start",
			facts:    model.FactSet{NoticeStart: date("2024-01-01"), NoticeEnd: date("2024-01-01")},
			expected: []string{MsgEndBeforeStart},
		},
		{
			desc:     "only start set",
			facts:    model.FactSet{NoticeStart: date("2024-01-01")},
			expected: nil,
		},
		{
			desc: "uc dates still checked",
			facts: model.FactSet{
				Benefit:            model.BenefitUC,
				PhysicalActivities: model.Select(),
				NoticeStart:        date("2024-03-01"),
				NoticeEnd:          date("2024-02-01"),
			},
			expected: []string{MsgEndBeforeStart},
		},
		{
			desc: "both checks fail",
			facts: model.FactSet{
				Benefit:            model.BenefitESA,
				PhysicalActivities: model.Select(),
				NoticeStart:        date("2024-03-01"),
				NoticeEnd:          date("2024-02-01"),
			},
			expected: []string{MsgNoActivitySelected, MsgEndBeforeStart},
		},
	}

	validator := NewValidator()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := validator.Validate(tt.facts)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d messages, got %d: %v", len(tt.expected), len(got), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Expected message %q, got %q", tt.expected[i], got[i])
				}
			}
		})
	}
}
