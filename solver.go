// Package gosolve turns LaTeX equations and expressions into solutions,
// factorizations, derivatives and antiderivatives.
//
// The pipeline is: Normalize → DetectVariable → one of
// {Solve, Factorize, Differentiate, Integrate} → ToLatex.
// Every step is a pure function of its input; the only collaborator is an
// Engine that parses, simplifies, evaluates and differentiates plain-text
// algebra.
package gosolve

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/njchilds90/gosolve/engine"
)

// Tolerance is the single numeric-equality threshold used to absorb
// floating-point noise from sampled evaluation.
const Tolerance = 1e-10

var (
	// ErrInvalidMode is returned by ParseMode for an unknown operation.
	ErrInvalidMode = errors.New("invalid mode")
	// ErrExtraction marks a failed coefficient extraction. It is distinct
	// from a genuine zero polynomial.
	ErrExtraction = errors.New("coefficient extraction failed")
)

// Engine is the expression collaborator the solver core depends on.
//
//go:generate mockgen -source=solver.go -destination=internal/mocks/gosolve/mock_engine.go -package=mock_gosolve
type Engine interface {
	Parse(text string) (engine.Expr, error)
	Simplify(e engine.Expr) engine.Expr
	Evaluate(e engine.Expr, b engine.Bindings) (float64, error)
	Derivative(e engine.Expr, v string) (engine.Expr, error)
	String(e engine.Expr) string
}

// ============================================================
// Modes, shapes and results
// ============================================================

type Mode string

const (
	ModeSolve         Mode = "solve"
	ModeDifferentiate Mode = "differentiate"
	ModeIntegrate     Mode = "integrate"
)

// Modes lists every supported operation in display order.
var Modes = []Mode{ModeSolve, ModeDifferentiate, ModeIntegrate}

// ParseMode accepts a mode name, case-insensitively. "diff" is an alias for
// differentiate.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "solve":
		return ModeSolve, nil
	case "differentiate", "diff", "derivative":
		return ModeDifferentiate, nil
	case "integrate", "integral":
		return ModeIntegrate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

type Shape string

const (
	ShapeEquation   Shape = "equation"
	ShapeExpression Shape = "expression"
)

// Outcome names which payload of a Result is populated.
type Outcome string

const (
	OutcomeSolutions     Outcome = "solutions"
	OutcomeFactorization Outcome = "factorization"
	OutcomeDerivative    Outcome = "derivative"
	OutcomeIntegral      Outcome = "integral"
	OutcomeError         Outcome = "error"
)

// Result is the outcome of one SolveEquation call. Exactly one of
// Solutions, LaTeX or Error is populated, as named by Outcome.
type Result struct {
	Shape     Shape        `json:"type"`
	Mode      Mode         `json:"mode"`
	Original  string       `json:"original"`
	Outcome   Outcome      `json:"outcome"`
	Solutions *SolutionSet `json:"solutions,omitempty"`
	LaTeX     string       `json:"latex,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// Lines returns the result as display lines: one per solution, or the
// single LaTeX or error payload.
func (r Result) Lines() []string {
	switch r.Outcome {
	case OutcomeSolutions:
		return r.Solutions.Strings()
	case OutcomeError:
		return []string{r.Error}
	}
	return []string{r.LaTeX}
}

// ============================================================
// Input — equation or bare expression
// ============================================================

// Input is a normalized request: an Equation or an Expression.
type Input interface {
	// Reduce returns the single expression whose zeros or transform are
	// wanted. Equations reduce to left minus right.
	Reduce() string
	isInput()
}

type Equation struct{ Left, Right string }

type Expression struct{ Text string }

func (e Equation) Reduce() string   { return "(" + e.Left + ") - (" + e.Right + ")" }
func (e Expression) Reduce() string { return e.Text }
func (Equation) isInput()           {}
func (Expression) isInput()         {}

// Classify splits a normalized expression on its first "=". Anything after
// a second "=" stays on the right side.
func Classify(normalized string) Input {
	if left, right, ok := strings.Cut(normalized, "="); ok {
		return Equation{Left: left, Right: right}
	}
	return Expression{Text: normalized}
}

// ============================================================
// Solver
// ============================================================

type Solver struct {
	engine Engine
	logger *slog.Logger
}

type Option func(*Solver)

func WithEngine(e Engine) Option { return func(s *Solver) { s.engine = e } }

func WithLogger(l *slog.Logger) Option { return func(s *Solver) { s.logger = l } }

func New(opts ...Option) *Solver {
	s := &Solver{engine: engine.New()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Solver) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

var defaultSolver = New()

// SolveEquation runs the default solver.
func SolveEquation(latex string, mode Mode) Result { return defaultSolver.SolveEquation(latex, mode) }

// SolveEquation normalizes latex and performs mode on it. It never panics
// and never returns an error; failures become the Error outcome.
//
// In solve mode an equation is solved and a bare expression is factorized.
// Differentiate and integrate always transform, reducing an equation to
// left minus right first.
func (s *Solver) SolveEquation(latex string, mode Mode) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			s.log().Error("solver panic", "latex", latex, "mode", mode, "panic", r)
			res = failure(latex, mode, fmt.Errorf("%v", r))
		}
	}()

	normalized := Normalize(latex)
	input := Classify(normalized)
	v := DetectVariable(normalized)
	s.log().Debug("solve request", "latex", latex, "mode", mode, "normalized", normalized, "variable", v)

	res = Result{Shape: ShapeExpression, Mode: mode, Original: latex}
	switch mode {
	case ModeDifferentiate:
		res.Outcome = OutcomeDerivative
		res.LaTeX = s.Differentiate(input.Reduce(), v)
	case ModeIntegrate:
		res.Outcome = OutcomeIntegral
		res.LaTeX = s.Integrate(input.Reduce(), v)
	case ModeSolve:
		switch in := input.(type) {
		case Equation:
			set, err := s.Solve(in, v)
			if err != nil {
				return failure(latex, mode, err)
			}
			res.Shape = ShapeEquation
			res.Outcome = OutcomeSolutions
			res.Solutions = &set
		case Expression:
			factored, err := s.Factorize(in.Text, v)
			if err != nil {
				return failure(latex, mode, err)
			}
			res.Outcome = OutcomeFactorization
			res.LaTeX = factored
		}
	default:
		return failure(latex, mode, fmt.Errorf("%w: %q", ErrInvalidMode, mode))
	}
	return res
}

func failure(latex string, mode Mode, err error) Result {
	return Result{
		Shape:    ShapeExpression,
		Mode:     mode,
		Original: latex,
		Outcome:  OutcomeError,
		Error:    "Error processing expression: " + err.Error(),
	}
}
