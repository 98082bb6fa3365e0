// Package filter selects cases for batch evaluation with CEL expressions
// over the normalised facts, e.g.
//
//	benefit == "UC" && totalPoints >= 15 && wcaAppeal == "yes"
//
// Unanswered facts are null.
package filter

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/ppiankov/entitlement/internal/model"
)

// Filter is a compiled fact filter. It is safe for concurrent use.
type Filter struct {
	expr string
	prg  cel.Program
}

func env() (*cel.Env, error) {
	opts := []cel.EnvOption{
		cel.Variable("benefit", cel.StringType),
		cel.Variable(string(model.FactTotalPoints), cel.IntType),
	}
	for _, fact := range []model.Fact{
		model.FactGenerateNotice,
		model.FactAllowedOrRefused,
		model.FactWCAAppeal,
		model.FactSupportGroupOnly,
		model.FactSchedule8Para4,
		model.FactSchedule9Para4,
		model.FactSchedule7Activities,
		model.FactDWPReassessAward,
	} {
		opts = append(opts, cel.Variable(string(fact), cel.DynType))
	}
	return cel.NewEnv(opts...)
}

// Compile parses and type-checks expr. The expression must yield a bool.
func Compile(expr string) (*Filter, error) {
	e, err := env()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := e.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("filter %q yields %s, want bool", expr, ast.OutputType())
	}

	prg, err := e.Program(ast,
		cel.InterruptCheckFrequency(100),
		cel.CostLimit(10000),
	)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", expr, err)
	}
	return &Filter{expr: expr, prg: prg}, nil
}

// String returns the source expression
func (f *Filter) String() string {
	return f.expr
}

// Match reports whether facts satisfy the filter. A nil filter matches
// everything.
func (f *Filter) Match(facts model.FactSet) (bool, error) {
	if f == nil {
		return true, nil
	}

	out, _, err := f.prg.Eval(facts.AsMap())
	if err != nil {
		return false, fmt.Errorf("evaluate %q: %w", f.expr, err)
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T", f.expr, out.Value())
	}
	return matched, nil
}
