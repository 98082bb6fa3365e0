package model

import (
	"fmt"
	"strings"
	"time"
)

// Fact names a single entry of a FactSet. Names are stable and appear in
// diagnostics and filter expressions.
type Fact string

const (
	FactGenerateNotice      Fact = "generateNotice"
	FactAllowedOrRefused    Fact = "allowedOrRefused"
	FactTotalPoints         Fact = "totalPoints"
	FactWCAAppeal           Fact = "wcaAppeal"
	FactSupportGroupOnly    Fact = "supportGroupOnly"
	FactSchedule8Para4      Fact = "schedule8Para4"
	FactSchedule9Para4      Fact = "schedule9Para4"
	FactSchedule7Activities Fact = "schedule7Activities"
	FactDWPReassessAward    Fact = "dwpReassessAward"
)

// FactSet is the normalized snapshot a single evaluation works on.
// It is built fresh for every evaluation and never modified afterwards.
type FactSet struct {
	Benefit          Benefit       `json:"benefit"`
	GenerateNotice   Ternary       `json:"generateNotice"`
	AllowedOrRefused AppealOutcome `json:"allowedOrRefused"`
	TotalPoints      int           `json:"totalPoints"`

	// WCAAppeal records whether the work capability assessment applies to the appeal at all
	WCAAppeal        Ternary `json:"wcaAppeal"`
	SupportGroupOnly Ternary `json:"supportGroupOnly"`

	// Schedule8Para4 and Schedule9Para4 are the substantial-risk overrides
	// (Regulation 29 and Regulation 35 for ESA)
	Schedule8Para4 Ternary `json:"schedule8Para4"`
	Schedule9Para4 Ternary `json:"schedule9Para4"`

	// Schedule7Activities holds the limited-capability-for-work-related-activity
	// selections (Schedule 3 for ESA)
	Schedule7Activities Selection `json:"schedule7Activities"`

	DWPReassessAward Ternary `json:"dwpReassessAward"`

	// Form inputs used only by form-level checks
	PhysicalActivities Selection  `json:"physicalActivities"`
	MentalActivities   Selection  `json:"mentalActivities"`
	NoticeStart        *time.Time `json:"noticeStart,omitempty"`
	NoticeEnd          *time.Time `json:"noticeEnd,omitempty"`
}

// Ternary returns the named yes/no fact
func (f FactSet) Ternary(fact Fact) Ternary {
	switch fact {
	case FactGenerateNotice:
		return f.GenerateNotice
	case FactWCAAppeal:
		return f.WCAAppeal
	case FactSupportGroupOnly:
		return f.SupportGroupOnly
	case FactSchedule8Para4:
		return f.Schedule8Para4
	case FactSchedule9Para4:
		return f.Schedule9Para4
	case FactDWPReassessAward:
		return f.DWPReassessAward
	default:
		panic(fmt.Sprintf("fact %q is not a yes/no fact", fact))
	}
}

// List returns the named list fact
func (f FactSet) List(fact Fact) Selection {
	switch fact {
	case FactSchedule7Activities:
		return f.Schedule7Activities
	default:
		panic(fmt.Sprintf("fact %q is not a list fact", fact))
	}
}

// IsBelowThreshold reports whether the points total is under threshold
func (f FactSet) IsBelowThreshold(threshold int) bool {
	return f.TotalPoints < threshold
}

// Dump renders the discriminating facts for diagnostics
func (f FactSet) Dump() string {
	parts := []string{
		fmt.Sprintf("benefit=%s", f.Benefit),
		fmt.Sprintf("%s=%s", FactGenerateNotice, f.GenerateNotice),
		fmt.Sprintf("%s=%s", FactAllowedOrRefused, f.AllowedOrRefused),
		fmt.Sprintf("%s=%d", FactTotalPoints, f.TotalPoints),
		fmt.Sprintf("%s=%s", FactWCAAppeal, f.WCAAppeal),
		fmt.Sprintf("%s=%s", FactSupportGroupOnly, f.SupportGroupOnly),
		fmt.Sprintf("%s=%s", FactSchedule8Para4, f.Schedule8Para4),
		fmt.Sprintf("%s=%s", FactSchedule9Para4, f.Schedule9Para4),
		fmt.Sprintf("%s=%s", FactSchedule7Activities, f.Schedule7Activities),
		fmt.Sprintf("%s=%s", FactDWPReassessAward, f.DWPReassessAward),
	}
	return strings.Join(parts, " ")
}

// AsMap exposes the facts as plain values keyed by fact name.
// Unanswered facts map to nil.
func (f FactSet) AsMap() map[string]interface{} {
	ternary := func(t Ternary) interface{} {
		if !t.IsSpecified() {
			return nil
		}
		return t.String()
	}
	var outcome interface{}
	if f.AllowedOrRefused != OutcomeUnspecified {
		outcome = f.AllowedOrRefused.String()
	}
	var schedule7 interface{}
	if f.Schedule7Activities.IsSet() {
		items := f.Schedule7Activities.Items()
		list := make([]interface{}, len(items))
		for i, item := range items {
			list[i] = item
		}
		schedule7 = list
	}

	return map[string]interface{}{
		"benefit":                       string(f.Benefit),
		string(FactGenerateNotice):      ternary(f.GenerateNotice),
		string(FactAllowedOrRefused):    outcome,
		string(FactTotalPoints):         int64(f.TotalPoints),
		string(FactWCAAppeal):           ternary(f.WCAAppeal),
		string(FactSupportGroupOnly):    ternary(f.SupportGroupOnly),
		string(FactSchedule8Para4):      ternary(f.Schedule8Para4),
		string(FactSchedule9Para4):      ternary(f.Schedule9Para4),
		string(FactSchedule7Activities): schedule7,
		string(FactDWPReassessAward):    ternary(f.DWPReassessAward),
	}
}
