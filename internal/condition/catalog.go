package condition

import (
	"fmt"
	"sync"

	"github.com/ppiankov/entitlement/internal/model"
)

// Catalog kinds
const (
	KindValidation = "validation"
	KindOutcome    = "outcome"
)

// Catalog is an ordered, immutable list of conditions
type Catalog struct {
	benefit    model.Benefit
	kind       string
	conditions []Condition
}

// Name identifies the catalog in diagnostics, e.g. "UC outcome"
func (c *Catalog) Name() string {
	return fmt.Sprintf("%s %s", c.benefit, c.kind)
}

// Benefit returns the benefit the catalog serves
func (c *Catalog) Benefit() model.Benefit { return c.benefit }

// Kind returns KindValidation or KindOutcome
func (c *Catalog) Kind() string { return c.kind }

// Len returns the number of conditions
func (c *Catalog) Len() int { return len(c.conditions) }

// Conditions returns the conditions in declared order
func (c *Catalog) Conditions() []*Condition {
	out := make([]*Condition, len(c.conditions))
	for i := range c.conditions {
		out[i] = &c.conditions[i]
	}
	return out
}

// Lookup returns the condition with the given ID or Key
func (c *Catalog) Lookup(id string) (*Condition, bool) {
	for i := range c.conditions {
		if c.conditions[i].ID == id || c.conditions[i].Key == id {
			return &c.conditions[i], true
		}
	}
	return nil, false
}

// Applicable returns every primarily applicable condition in declared order
func (c *Catalog) Applicable(facts model.FactSet) []*Condition {
	var out []*Condition
	for i := range c.conditions {
		if c.conditions[i].Applicable(facts) {
			out = append(out, &c.conditions[i])
		}
	}
	return out
}

type catalogs struct {
	validation *Catalog
	outcome    *Catalog
}

var (
	ucOnce  sync.Once
	ucCats  catalogs
	esaOnce sync.Once
	esaCats catalogs
)

func uc() catalogs {
	ucOnce.Do(func() {
		ucCats = catalogs{
			validation: &Catalog{benefit: model.BenefitUC, kind: KindValidation, conditions: validationTable(UCVocabulary)},
			outcome:    &Catalog{benefit: model.BenefitUC, kind: KindOutcome, conditions: outcomeTable(UCVocabulary)},
		}
	})
	return ucCats
}

func esa() catalogs {
	esaOnce.Do(func() {
		esaCats = catalogs{
			validation: &Catalog{benefit: model.BenefitESA, kind: KindValidation, conditions: validationTable(ESAVocabulary)},
			outcome:    &Catalog{benefit: model.BenefitESA, kind: KindOutcome, conditions: outcomeTable(ESAVocabulary)},
		}
	})
	return esaCats
}

// UCValidation returns the Universal Credit points and activities catalog
func UCValidation() *Catalog { return uc().validation }

// UCOutcome returns the Universal Credit allowed or refused catalog
func UCOutcome() *Catalog { return uc().outcome }

// ESAValidation returns the ESA points and activities catalog
func ESAValidation() *Catalog { return esa().validation }

// ESAOutcome returns the ESA allowed or refused catalog
func ESAOutcome() *Catalog { return esa().outcome }

// ForBenefit returns the validation and outcome catalogs of a benefit
func ForBenefit(b model.Benefit) (validation, outcome *Catalog, err error) {
	switch b {
	case model.BenefitUC:
		return UCValidation(), UCOutcome(), nil
	case model.BenefitESA:
		return ESAValidation(), ESAOutcome(), nil
	default:
		return nil, nil, fmt.Errorf("no catalogs for benefit %q", b)
	}
}
