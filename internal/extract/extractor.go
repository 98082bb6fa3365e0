// Package extract turns a raw case record into the normalized facts the
// decision engine reads, along with the points breakdown and the descriptor
// lists used by decision notices.
package extract

import (
	"fmt"
	"time"

	"github.com/ppiankov/entitlement/internal/model"
	"github.com/ppiankov/entitlement/internal/registry"
	"github.com/ppiankov/entitlement/internal/score"
)

// DateLayout is the layout of decision notice dates in case data
const DateLayout = "2006-01-02"

// Extractor builds fact sets from case data
type Extractor struct{}

// NewExtractor creates a new extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract builds the fact set of a case. Absent answers stay unspecified.
// It fails on unknown question keys, unparseable answers and case data
// recorded against an incompatible rule set.
func (e *Extractor) Extract(c *model.CaseData) (model.FactSet, error) {
	benefit, reg, err := e.resolve(c)
	if err != nil {
		return model.FactSet{}, err
	}

	answers := c.BenefitAnswers(benefit)
	points, err := score.NewScorer(reg).Calculate(model.Collate(answers.Physical, answers.Mental), answers.Descriptors)
	if err != nil {
		return model.FactSet{}, fmt.Errorf("scoring case %s: %w", c.CaseID, err)
	}

	if err := checkHighTier(reg, answers.HighTier); err != nil {
		return model.FactSet{}, fmt.Errorf("case %s: %w", c.CaseID, err)
	}

	facts := model.FactSet{
		Benefit:             benefit,
		TotalPoints:         points.Total,
		Schedule7Activities: answers.HighTier,
		DWPReassessAward:    model.Presence(c.DWPReassessTheAward),
		PhysicalActivities:  answers.Physical,
		MentalActivities:    answers.Mental,
	}

	ternaries := []struct {
		field string
		raw   string
		dst   *model.Ternary
	}{
		{"writeFinalDecisionGenerateNotice", c.GenerateNotice, &facts.GenerateNotice},
		{"wcaAppeal", c.WCAAppeal, &facts.WCAAppeal},
		{"supportGroupOnlyAppeal", c.SupportGroupOnly, &facts.SupportGroupOnly},
		{"schedule8Para4", answers.Override8, &facts.Schedule8Para4},
		{"schedule9Para4", answers.Override9, &facts.Schedule9Para4},
	}
	for _, t := range ternaries {
		v, err := model.ParseTernary(t.raw)
		if err != nil {
			return model.FactSet{}, fmt.Errorf("case %s field %s: %w", c.CaseID, t.field, err)
		}
		*t.dst = v
	}

	facts.AllowedOrRefused, err = model.ParseAppealOutcome(c.AllowedOrRefused)
	if err != nil {
		return model.FactSet{}, fmt.Errorf("case %s field writeFinalDecisionAllowedOrRefused: %w", c.CaseID, err)
	}

	if facts.NoticeStart, err = parseDate(c.StartDate); err != nil {
		return model.FactSet{}, fmt.Errorf("case %s start date: %w", c.CaseID, err)
	}
	if facts.NoticeEnd, err = parseDate(c.EndDate); err != nil {
		return model.FactSet{}, fmt.Errorf("case %s end date: %w", c.CaseID, err)
	}

	return facts, nil
}

// Points returns the points breakdown of a case
func (e *Extractor) Points(c *model.CaseData) (model.Points, error) {
	benefit, reg, err := e.resolve(c)
	if err != nil {
		return model.Points{}, err
	}
	answers := c.BenefitAnswers(benefit)
	return score.NewScorer(reg).Calculate(model.Collate(answers.Physical, answers.Mental), answers.Descriptors)
}

// Descriptors renders the selected activities for a decision notice. The
// points descriptors are omitted when the case scores no points at all.
func (e *Extractor) Descriptors(c *model.CaseData) (model.Descriptors, error) {
	benefit, reg, err := e.resolve(c)
	if err != nil {
		return model.Descriptors{}, err
	}
	answers := c.BenefitAnswers(benefit)

	var out model.Descriptors
	total := 0
	for _, key := range model.Collate(answers.Physical, answers.Mental).Items() {
		answerKey := answers.Descriptors[key]
		if answerKey == "" {
			continue
		}
		q, err := reg.Lookup(key)
		if err != nil {
			return model.Descriptors{}, err
		}
		a, err := reg.Answer(key, answerKey)
		if err != nil {
			return model.Descriptors{}, err
		}
		total += a.Points
		out.Points = append(out.Points, model.Descriptor{
			ActivityQuestionNumber: q.Number,
			ActivityQuestionValue:  q.Text,
			ActivityAnswerLetter:   a.Letter,
			ActivityAnswerValue:    a.Text,
			ActivityAnswerPoints:   a.Points,
		})
	}
	if total == 0 {
		out.Points = nil
	}

	for _, key := range answers.HighTier.Items() {
		q, err := reg.Lookup(key)
		if err != nil {
			return model.Descriptors{}, err
		}
		out.HighTier = append(out.HighTier, model.Descriptor{
			ActivityQuestionNumber: q.Number,
			ActivityQuestionValue:  q.Text,
			ActivityAnswerValue:    q.Detail,
		})
	}

	return out, nil
}

func (e *Extractor) resolve(c *model.CaseData) (model.Benefit, *registry.Registry, error) {
	if c == nil {
		return "", nil, fmt.Errorf("no case data")
	}
	benefit, err := model.ParseBenefit(c.BenefitType)
	if err != nil {
		return "", nil, fmt.Errorf("case %s: %w", c.CaseID, err)
	}
	if err := registry.CheckCompatible(c.RuleSetVersion); err != nil {
		return "", nil, fmt.Errorf("case %s: %w", c.CaseID, err)
	}
	reg, err := registry.ForBenefit(benefit)
	if err != nil {
		return "", nil, err
	}
	return benefit, reg, nil
}

// checkHighTier ensures every work-related-activity selection is registered
func checkHighTier(reg *registry.Registry, selected model.Selection) error {
	for _, key := range selected.Items() {
		q, err := reg.Lookup(key)
		if err != nil {
			return err
		}
		if q.Category != registry.CategoryHighTier {
			return &registry.UnknownQuestionKeyError{Benefit: reg.Benefit(), Key: key}
		}
	}
	return nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidAnswer, s)
	}
	return &t, nil
}
