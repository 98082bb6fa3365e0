package model

// CaseData is the raw case record as stored by the case-management platform.
// Field names are a persisted contract shared with stored case files.
type CaseData struct {
	CaseID         string `json:"caseId" yaml:"caseId"`
	BenefitType    string `json:"benefitType" yaml:"benefitType"`
	RuleSetVersion string `json:"ruleSetVersion,omitempty" yaml:"ruleSetVersion,omitempty"`

	GenerateNotice   string `json:"writeFinalDecisionGenerateNotice" yaml:"writeFinalDecisionGenerateNotice"`
	AllowedOrRefused string `json:"writeFinalDecisionAllowedOrRefused" yaml:"writeFinalDecisionAllowedOrRefused"`
	StartDate        string `json:"writeFinalDecisionStartDate,omitempty" yaml:"writeFinalDecisionStartDate,omitempty"`
	EndDate          string `json:"writeFinalDecisionEndDate,omitempty" yaml:"writeFinalDecisionEndDate,omitempty"`

	WCAAppeal           string  `json:"wcaAppeal" yaml:"wcaAppeal"`
	SupportGroupOnly    string  `json:"supportGroupOnlyAppeal" yaml:"supportGroupOnlyAppeal"`
	DWPReassessTheAward *string `json:"dwpReassessTheAward,omitempty" yaml:"dwpReassessTheAward,omitempty"`

	UC  *UCCaseData  `json:"sscsUcCaseData,omitempty" yaml:"sscsUcCaseData,omitempty"`
	ESA *ESACaseData `json:"sscsEsaCaseData,omitempty" yaml:"sscsEsaCaseData,omitempty"`
}

// UCCaseData holds the Universal Credit decision answers
type UCCaseData struct {
	PhysicalDisabilities Selection         `json:"ucWriteFinalDecisionPhysicalDisabilitiesQuestion" yaml:"ucWriteFinalDecisionPhysicalDisabilitiesQuestion"`
	MentalAssessment     Selection         `json:"ucWriteFinalDecisionMentalAssessmentQuestion" yaml:"ucWriteFinalDecisionMentalAssessmentQuestion"`
	Answers              map[string]string `json:"answers,omitempty" yaml:"answers,omitempty"`
	Schedule8Paragraph4  string            `json:"doesSchedule8Paragraph4Apply" yaml:"doesSchedule8Paragraph4Apply"`
	Schedule9Paragraph4  string            `json:"doesSchedule9Paragraph4Apply" yaml:"doesSchedule9Paragraph4Apply"`
	Schedule7Selections  Selection         `json:"ucWriteFinalDecisionSchedule7ActivitiesQuestion" yaml:"ucWriteFinalDecisionSchedule7ActivitiesQuestion"`
}

// ESACaseData holds the Employment and Support Allowance decision answers
type ESACaseData struct {
	PhysicalDisabilities Selection         `json:"esaWriteFinalDecisionPhysicalDisabilitiesQuestion" yaml:"esaWriteFinalDecisionPhysicalDisabilitiesQuestion"`
	MentalAssessment     Selection         `json:"esaWriteFinalDecisionMentalAssessmentQuestion" yaml:"esaWriteFinalDecisionMentalAssessmentQuestion"`
	Answers              map[string]string `json:"answers,omitempty" yaml:"answers,omitempty"`
	Regulation29Applies  string            `json:"doesRegulation29Apply" yaml:"doesRegulation29Apply"`
	Regulation35Applies  string            `json:"doesRegulation35Apply" yaml:"doesRegulation35Apply"`
	Schedule3Selections  Selection         `json:"esaWriteFinalDecisionSchedule3ActivitiesQuestion" yaml:"esaWriteFinalDecisionSchedule3ActivitiesQuestion"`
}

// Answers is the variant-neutral view of the activity answers of a case
type Answers struct {
	Physical    Selection
	Mental      Selection
	Descriptors map[string]string
	Override8   string
	Override9   string
	HighTier    Selection
}

// BenefitAnswers returns the answers section matching benefit. Missing
// sections yield an all-unset view.
func (c *CaseData) BenefitAnswers(benefit Benefit) Answers {
	switch benefit {
	case BenefitUC:
		if c.UC == nil {
			return Answers{}
		}
		return Answers{
			Physical:    c.UC.PhysicalDisabilities,
			Mental:      c.UC.MentalAssessment,
			Descriptors: c.UC.Answers,
			Override8:   c.UC.Schedule8Paragraph4,
			Override9:   c.UC.Schedule9Paragraph4,
			HighTier:    c.UC.Schedule7Selections,
		}
	case BenefitESA:
		if c.ESA == nil {
			return Answers{}
		}
		return Answers{
			Physical:    c.ESA.PhysicalDisabilities,
			Mental:      c.ESA.MentalAssessment,
			Descriptors: c.ESA.Answers,
			Override8:   c.ESA.Regulation29Applies,
			Override9:   c.ESA.Regulation35Applies,
			HighTier:    c.ESA.Schedule3Selections,
		}
	default:
		return Answers{}
	}
}
