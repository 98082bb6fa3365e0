// Package registry holds the static tables of assessment questions: the
// points-scoring activities with their descriptor answers, and the
// work-related-activity selections. Keys are a persisted contract with stored
// case data.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ppiankov/entitlement/internal/model"
)

// ErrUnknownQuestionKey signals a key the running rule set does not know.
// It indicates a version mismatch between case data and rules and is not
// recoverable.
var ErrUnknownQuestionKey = errors.New("unknown question key")

// UnknownQuestionKeyError names the offending key
type UnknownQuestionKeyError struct {
	Benefit model.Benefit
	Key     string
}

func (e *UnknownQuestionKeyError) Error() string {
	return fmt.Sprintf("unknown question key %q for %s", e.Key, e.Benefit)
}

// Is makes the error match ErrUnknownQuestionKey
func (e *UnknownQuestionKeyError) Is(target error) bool {
	return target == ErrUnknownQuestionKey
}

// Category identifiers
const (
	CategoryPhysical = "physical"
	CategoryMental   = "mental"
	CategoryHighTier = "highTier"
)

// Answer is a points-bearing descriptor of an activity
type Answer struct {
	Key    string
	Letter string
	Text   string
	Points int
}

// Question is a registered activity. Points activities carry descriptor
// answers; work-related activities contribute a plain selection.
type Question struct {
	Key      string
	Category string
	Number   string
	Text     string
	Answers  []Answer

	// Detail is the descriptor text of a work-related activity
	Detail string
}

// IsSelection reports whether the question contributes a boolean selection
// rather than points
func (q Question) IsSelection() bool {
	return len(q.Answers) == 0
}

// Category groups questions under a display name
type Category struct {
	ID          string
	DisplayName string
	Questions   []Question
}

type answerRef struct {
	question string
	answer   Answer
}

// Registry is an immutable lookup over one benefit's questions
type Registry struct {
	benefit    model.Benefit
	categories []Category
	byKey      map[string]Question
	answers    map[string]answerRef
}

// New indexes categories into a registry
func New(benefit model.Benefit, categories []Category) (*Registry, error) {
	r := &Registry{
		benefit:    benefit,
		categories: categories,
		byKey:      make(map[string]Question),
		answers:    make(map[string]answerRef),
	}

	for _, c := range categories {
		for _, q := range c.Questions {
			if _, dup := r.byKey[q.Key]; dup {
				return nil, fmt.Errorf("duplicate question key %q", q.Key)
			}
			q.Category = c.ID
			r.byKey[q.Key] = q
			for _, a := range q.Answers {
				if _, dup := r.answers[a.Key]; dup {
					return nil, fmt.Errorf("duplicate answer key %q", a.Key)
				}
				r.answers[a.Key] = answerRef{question: q.Key, answer: a}
			}
		}
	}

	return r, nil
}

// Benefit returns the benefit the registry serves
func (r *Registry) Benefit() model.Benefit {
	return r.benefit
}

// Lookup returns the question registered under key
func (r *Registry) Lookup(key string) (Question, error) {
	q, ok := r.byKey[key]
	if !ok {
		return Question{}, &UnknownQuestionKeyError{Benefit: r.benefit, Key: key}
	}
	return q, nil
}

// Answer returns the descriptor answerKey of question questionKey. An answer
// registered against a different question is treated as unknown.
func (r *Registry) Answer(questionKey, answerKey string) (Answer, error) {
	if _, err := r.Lookup(questionKey); err != nil {
		return Answer{}, err
	}
	ref, ok := r.answers[answerKey]
	if !ok || ref.question != questionKey {
		return Answer{}, &UnknownQuestionKeyError{Benefit: r.benefit, Key: answerKey}
	}
	return ref.answer, nil
}

// Category returns the ordered questions of a category
func (r *Registry) Category(id string) ([]Question, error) {
	for _, c := range r.categories {
		if c.ID == id {
			out := make([]Question, len(c.Questions))
			for i, q := range c.Questions {
				out[i] = r.byKey[q.Key]
			}
			return out, nil
		}
	}
	return nil, fmt.Errorf("unknown category %q", id)
}

// DisplayName returns the human name of a category
func (r *Registry) DisplayName(id string) string {
	for _, c := range r.categories {
		if c.ID == id {
			return c.DisplayName
		}
	}
	return id
}

var (
	ucOnce  sync.Once
	ucReg   *Registry
	esaOnce sync.Once
	esaReg  *Registry
)

// UC returns the Universal Credit registry
func UC() *Registry {
	ucOnce.Do(func() {
		ucReg = mustNew(model.BenefitUC, "Schedule 7 Activities", "schedule7")
	})
	return ucReg
}

// ESA returns the Employment and Support Allowance registry
func ESA() *Registry {
	esaOnce.Do(func() {
		esaReg = mustNew(model.BenefitESA, "Schedule 3 Activities", "schedule3")
	})
	return esaReg
}

// ForBenefit returns the registry for a benefit
func ForBenefit(b model.Benefit) (*Registry, error) {
	switch b {
	case model.BenefitUC:
		return UC(), nil
	case model.BenefitESA:
		return ESA(), nil
	default:
		return nil, fmt.Errorf("no registry for benefit %q", b)
	}
}

func mustNew(benefit model.Benefit, highTierName, highTierPrefix string) *Registry {
	r, err := New(benefit, []Category{
		{ID: CategoryPhysical, DisplayName: "Physical Disabilities", Questions: physicalActivities()},
		{ID: CategoryMental, DisplayName: "Mental, cognitive and intellectual function assessment", Questions: mentalActivities()},
		{ID: CategoryHighTier, DisplayName: highTierName, Questions: highTierActivities(highTierPrefix)},
	})
	if err != nil {
		panic(err)
	}
	return r
}
