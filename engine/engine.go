package engine

import (
	"fmt"
	"math"
)

// Engine bundles the kernel operations behind one value so callers can
// depend on an interface and substitute a fake in tests.
type Engine struct{}

func New() *Engine { return &Engine{} }

func (Engine) Parse(text string) (Expr, error)              { return Parse(text) }
func (Engine) Simplify(e Expr) Expr                         { return e.Simplify() }
func (Engine) String(e Expr) string                         { return e.String() }
func (Engine) Derivative(e Expr, v string) (Expr, error)    { return Derivative(e, v) }
func (Engine) Evaluate(e Expr, b Bindings) (float64, error) { return Evaluate(e, b) }

// Evaluate computes e numerically. Non-finite results are errors.
func Evaluate(e Expr, b Bindings) (float64, error) {
	v, err := e.Eval(b)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: non-finite result", ErrEval)
	}
	return v, nil
}

// Derivative differentiates e with respect to v and simplifies the result.
func Derivative(e Expr, v string) (Expr, error) {
	d, err := e.Simplify().Diff(v)
	if err != nil {
		return nil, err
	}
	return d.Simplify(), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(text string) Expr {
	e, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return e
}
