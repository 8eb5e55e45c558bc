// Package engine provides the deterministic expression kernel used by the
// solver core.
//
// Design goals:
//   - Exact rational arithmetic (math/big.Rat) for every literal
//   - Deterministic simplification and stable text output
//   - Plain-text parsing of the algebraic subset produced by the LaTeX normalizer
//   - Numeric evaluation against symbol bindings
//   - Symbolic differentiation for polynomials and elementary functions
package engine

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

var (
	// ErrParse is returned when text cannot be parsed into an expression.
	ErrParse = errors.New("parse error")
	// ErrEval is returned when an expression cannot be evaluated to a real number.
	ErrEval = errors.New("evaluation error")
	// ErrUnsupported is returned for operations the kernel has no rule for.
	ErrUnsupported = errors.New("unsupported operation")
)

// Bindings maps symbol names to numeric values during evaluation.
type Bindings map[string]float64

// constants are symbols that evaluate to a fixed value unless rebound.
var constants = map[string]float64{
	"pi":       math.Pi,
	"e":        math.E,
	"Infinity": math.Inf(1),
}

// IsConstant reports whether name is a named constant such as pi or e.
func IsConstant(name string) bool {
	_, ok := constants[name]
	return ok
}

// ============================================================
// Core Interface
// ============================================================

type Expr interface {
	Simplify() Expr
	String() string
	LaTeX() string
	Diff(varName string) (Expr, error)
	Eval(b Bindings) (float64, error)
	Equal(other Expr) bool
}

// ============================================================
// Num — exact rational number
// ============================================================

type Num struct{ val *big.Rat }

func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }
func F(p, q int64) *Num {
	if q == 0 {
		panic("engine: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}
func NRat(r *big.Rat) *Num { return &Num{val: new(big.Rat).Set(r)} }

func (n *Num) Simplify() Expr                 { return n }
func (n *Num) Diff(string) (Expr, error)      { return N(0), nil }
func (n *Num) Eval(Bindings) (float64, error) { return n.Float64(), nil }
func (n *Num) Equal(other Expr) bool          { o, ok := other.(*Num); return ok && n.val.Cmp(o.val) == 0 }
func (n *Num) Float64() float64               { f, _ := n.val.Float64(); return f }
func (n *Num) IsZero() bool                   { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool                    { return n.val.Cmp(big.NewRat(1, 1)) == 0 }
func (n *Num) IsNegOne() bool                 { return n.val.Cmp(big.NewRat(-1, 1)) == 0 }
func (n *Num) IsInteger() bool                { return n.val.IsInt() }
func (n *Num) IsNegative() bool               { return n.val.Sign() < 0 }
func (n *Num) Rat() *big.Rat                  { return new(big.Rat).Set(n.val) }

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func (n *Num) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(n.val)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, v.Num().String(), v.Denom().String())
}

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Num) *Num    { return &Num{val: new(big.Rat).Neg(a.val)} }

// numPow raises a to an integer power. a must be non-zero when e is negative.
func numPow(a *Num, e int64) *Num {
	result := new(big.Rat).SetInt64(1)
	k := e
	if k < 0 {
		k = -k
	}
	for i := int64(0); i < k; i++ {
		result.Mul(result, a.val)
	}
	if e < 0 {
		result.Inv(result)
	}
	return &Num{val: result}
}

// numSqrt returns the exact square root of a non-negative rational when
// both numerator and denominator are perfect squares.
func numSqrt(a *Num) (*Num, bool) {
	if a.val.Sign() < 0 {
		return nil, false
	}
	num, ok1 := intSqrt(a.val.Num())
	den, ok2 := intSqrt(a.val.Denom())
	if !ok1 || !ok2 {
		return nil, false
	}
	return &Num{val: new(big.Rat).SetFrac(num, den)}, true
}

func intSqrt(v *big.Int) (*big.Int, bool) {
	r := new(big.Int).Sqrt(v)
	return r, new(big.Int).Mul(r, r).Cmp(v) == 0
}

// ============================================================
// Sym — symbolic variable or named constant
// ============================================================

type Sym struct{ name string }

var greekLetters = map[string]bool{
	"alpha": true, "beta": true, "gamma": true, "delta": true, "epsilon": true,
	"zeta": true, "eta": true, "theta": true, "iota": true, "kappa": true,
	"lambda": true, "mu": true, "nu": true, "xi": true, "rho": true,
	"sigma": true, "tau": true, "phi": true, "chi": true, "psi": true, "omega": true,
}

func S(name string) *Sym             { return &Sym{name: name} }
func (s *Sym) Simplify() Expr        { return s }
func (s *Sym) String() string        { return s.name }
func (s *Sym) Name() string          { return s.name }
func (s *Sym) Equal(other Expr) bool { o, ok := other.(*Sym); return ok && s.name == o.name }

func (s *Sym) LaTeX() string {
	switch {
	case s.name == "pi":
		return "\\pi"
	case s.name == "Infinity":
		return "\\infty"
	case greekLetters[s.name]:
		return "\\" + s.name
	}
	return s.name
}

func (s *Sym) Diff(varName string) (Expr, error) {
	if s.name == varName {
		return N(1), nil
	}
	return N(0), nil
}

func (s *Sym) Eval(b Bindings) (float64, error) {
	if v, ok := b[s.name]; ok {
		return v, nil
	}
	if v, ok := constants[s.name]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: undefined symbol %s", ErrEval, s.name)
}

// ============================================================
// Helpers shared by the composite nodes
// ============================================================

// freeOf reports whether e does not mention the symbol varName.
func freeOf(e Expr, varName string) bool {
	switch v := e.(type) {
	case *Num:
		return true
	case *Sym:
		return v.name != varName
	case *Add:
		for _, t := range v.terms {
			if !freeOf(t, varName) {
				return false
			}
		}
		return true
	case *Mul:
		for _, f := range v.factors {
			if !freeOf(f, varName) {
				return false
			}
		}
		return true
	case *Pow:
		return freeOf(v.base, varName) && freeOf(v.exp, varName)
	case *Func:
		for _, a := range v.args {
			if !freeOf(a, varName) {
				return false
			}
		}
		return true
	}
	return false
}

// FreeSymbols returns the names of all non-constant symbols in e.
func FreeSymbols(e Expr) map[string]struct{} {
	result := map[string]struct{}{}
	collectSymbols(e, result)
	return result
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		if !IsConstant(v.name) {
			out[v.name] = struct{}{}
		}
	case *Add:
		for _, t := range v.terms {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.base, out)
		collectSymbols(v.exp, out)
	case *Func:
		for _, a := range v.args {
			collectSymbols(a, out)
		}
	}
}
