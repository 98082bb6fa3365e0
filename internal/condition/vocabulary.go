package condition

import (
	"github.com/ppiankov/entitlement/internal/model"
	"github.com/ppiankov/entitlement/internal/predicate"
)

// Vocabulary names the statutory provisions of a benefit. Both benefits
// share one rule table; only labels and identifiers differ.
type Vocabulary struct {
	Benefit model.Benefit

	// Labels used in case-worker messages
	WCA              string
	SupportGroupOnly string
	Override8        string
	Override9        string
	HighTier         string
	Reassess         string

	// Fragments used to build condition IDs
	PointsScheduleID string
	Override8ID      string
	Override9ID      string
	HighTierID       string
}

// UCVocabulary is the Universal Credit vocabulary
var UCVocabulary = Vocabulary{
	Benefit:          model.BenefitUC,
	WCA:              "WCA Appeal",
	SupportGroupOnly: "Support Group Only Appeal",
	Override8:        "Schedule 8 Paragraph 4",
	Override9:        "Schedule 9 Paragraph 4",
	HighTier:         "Schedule 7 Activities",
	Reassess:         "'When should DWP reassess the award?'",
	PointsScheduleID: "SCHEDULE6",
	Override8ID:      "SCHEDULE_8_PARAGRAPH_4",
	Override9ID:      "SCHEDULE_9_PARAGRAPH_4",
	HighTierID:       "SCHEDULE_7",
}

// ESAVocabulary is the Employment and Support Allowance vocabulary
var ESAVocabulary = Vocabulary{
	Benefit:          model.BenefitESA,
	WCA:              "Wca Appeal",
	SupportGroupOnly: "Support Group Only Appeal",
	Override8:        "Regulation 29",
	Override9:        "Regulation 35",
	HighTier:         "Schedule 3 Activities",
	Reassess:         "'When should DWP reassess the award?'",
	PointsScheduleID: "SCHEDULE2",
	Override8ID:      "REGULATION_29",
	Override9ID:      "REGULATION_35",
	HighTierID:       "SCHEDULE_3",
}

func (v Vocabulary) wca(p predicate.Ternary, display bool) predicate.Criterion {
	return predicate.OnTernary(model.FactWCAAppeal, v.WCA, p, display)
}

func (v Vocabulary) sgo(p predicate.Ternary, display bool) predicate.Criterion {
	return predicate.OnTernary(model.FactSupportGroupOnly, v.SupportGroupOnly, p, display)
}

func (v Vocabulary) s8(p predicate.Ternary, display bool) predicate.Criterion {
	return predicate.OnTernary(model.FactSchedule8Para4, v.Override8, p, display)
}

func (v Vocabulary) s9(p predicate.Ternary, display bool) predicate.Criterion {
	return predicate.OnTernary(model.FactSchedule9Para4, v.Override9, p, display)
}

func (v Vocabulary) highTier(p predicate.List) predicate.Criterion {
	return predicate.OnList(model.FactSchedule7Activities, v.HighTier, p, true)
}

func (v Vocabulary) reassess(p predicate.Ternary) predicate.Criterion {
	return predicate.OnTernary(model.FactDWPReassessAward, v.Reassess, p, true)
}

// VocabularyFor returns the vocabulary of a benefit
func VocabularyFor(b model.Benefit) (Vocabulary, bool) {
	switch b {
	case model.BenefitUC:
		return UCVocabulary, true
	case model.BenefitESA:
		return ESAVocabulary, true
	default:
		return Vocabulary{}, false
	}
}
