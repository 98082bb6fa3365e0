package model

import "time"

// Report is the complete evaluation report for one case
type Report struct {
	ID             string    `json:"id"`                // Evaluation identifier
	CaseID         string    `json:"case_id"`           // Case reference from the case record
	Source         string    `json:"source,omitempty"`  // File or request the case came from
	Subject        string    `json:"subject,omitempty"` // Readable name: case reference or file name
	EvaluatedAt    time.Time `json:"evaluated_at"`
	RuleSetVersion string    `json:"rule_set_version"`

	Facts       FactSet     `json:"facts"`
	Points      Points      `json:"points"`
	Decision    Decision    `json:"decision"`
	Descriptors Descriptors `json:"descriptors"`
}

// DecisionStatus classifies how far an evaluation got
type DecisionStatus string

const (
	StatusSkipped    DecisionStatus = "skipped"    // No notice requested
	StatusIncomplete DecisionStatus = "incomplete" // No validation rule applies yet
	StatusRejected   DecisionStatus = "rejected"   // Inconsistent facts, see messages
	StatusAccepted   DecisionStatus = "accepted"   // Outcome and scenario resolved
	StatusFiltered   DecisionStatus = "filtered"   // Excluded by a batch filter
)

// Decision is the result of running both stages on a fact set
type Decision struct {
	Status DecisionStatus `json:"status"`

	ValidationCondition string `json:"validation_condition,omitempty"`
	OutcomeCondition    string `json:"outcome_condition,omitempty"`
	Scenario            string `json:"scenario,omitempty"`
	ScenarioSummary     string `json:"scenario_summary,omitempty"`

	Award      AwardTier `json:"award,omitempty"`
	AwardLabel string    `json:"award_label,omitempty"`
	Entitled   bool      `json:"entitled"`

	// ShowOverridePage is set when the Schedule 8 paragraph 4 (Regulation 29) page applies
	ShowOverridePage bool `json:"show_override_page"`

	Messages []string `json:"messages,omitempty"`
}

// Points is the transparent breakdown of a points total
type Points struct {
	Total     int          `json:"total"`
	Threshold int          `json:"threshold"`
	Band      string       `json:"band"` // "below" or "at_or_above"
	Lines     []PointsLine `json:"lines,omitempty"`
	Formula   string       `json:"formula"`
}

// PointsLine is the contribution of one selected activity
type PointsLine struct {
	Activity string `json:"activity"`
	Answer   string `json:"answer,omitempty"`
	Points   int    `json:"points"`
}

// Descriptor is a selected activity rendered for a decision notice
type Descriptor struct {
	ActivityQuestionNumber string `json:"activity_question_number"`
	ActivityQuestionValue  string `json:"activity_question_value"`
	ActivityAnswerLetter   string `json:"activity_answer_letter,omitempty"`
	ActivityAnswerValue    string `json:"activity_answer_value"`
	ActivityAnswerPoints   int    `json:"activity_answer_points"`
}

// Descriptors groups the descriptor lists for the points schedule and the
// work-related-activity schedule
type Descriptors struct {
	Points   []Descriptor `json:"points,omitempty"`
	HighTier []Descriptor `json:"high_tier,omitempty"`
}
