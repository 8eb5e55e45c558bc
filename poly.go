package gosolve

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/njchilds90/gosolve/engine"
)

// ============================================================
// Degree classification and roots
// ============================================================

type Degree string

const (
	DegreeDegenerate Degree = "degenerate"
	DegreeLinear     Degree = "linear"
	DegreeQuadratic  Degree = "quadratic"
)

// Verdict describes what a SolutionSet says about the equation.
type Verdict string

const (
	VerdictRoots         Verdict = "roots"
	VerdictIdentity      Verdict = "identity"
	VerdictContradiction Verdict = "contradiction"
	// VerdictUndetermined means the coefficients could not be extracted.
	VerdictUndetermined Verdict = "undetermined"
)

// Root is one real or complex solution.
type Root struct {
	Real    float64 `json:"real"`
	Imag    float64 `json:"imag,omitempty"`
	Complex bool    `json:"complex,omitempty"`
}

// String renders real roots with FormatNumber and complex roots as
// "re + im i" or "re - im i".
func (r Root) String() string {
	if !r.Complex {
		return FormatNumber(r.Real)
	}
	sign := " + "
	if r.Imag < 0 {
		sign = " - "
	}
	return FormatNumber(r.Real) + sign + FormatNumber(math.Abs(r.Imag)) + "i"
}

type SolutionSet struct {
	Variable string  `json:"variable"`
	Degree   Degree  `json:"degree,omitempty"`
	Verdict  Verdict `json:"verdict"`
	Roots    []Root  `json:"roots,omitempty"`
}

// Strings renders the set the way it is displayed to users.
func (s *SolutionSet) Strings() []string {
	switch s.Verdict {
	case VerdictIdentity:
		return []string{"All values of " + s.Variable}
	case VerdictContradiction:
		return []string{"No solution"}
	case VerdictRoots:
		if len(s.Roots) > 0 {
			out := make([]string, len(s.Roots))
			for i, r := range s.Roots {
				out[i] = r.String()
			}
			return out
		}
	}
	return []string{"No solution found"}
}

// Classify derives the degree from coefficients, gating each branch on
// Tolerance.
func (c Coefficients) Classify() Degree {
	switch {
	case math.Abs(c.A) >= Tolerance:
		return DegreeQuadratic
	case math.Abs(c.B) >= Tolerance:
		return DegreeLinear
	}
	return DegreeDegenerate
}

// SolvePolynomial solves a·v² + b·v + c = 0. Two real roots are ordered
// +√D first; complex pairs put the positive imaginary part first.
func SolvePolynomial(c Coefficients, v string) SolutionSet {
	set := SolutionSet{Variable: v, Degree: c.Classify(), Verdict: VerdictRoots}
	switch set.Degree {
	case DegreeDegenerate:
		if math.Abs(c.C) < Tolerance {
			set.Verdict = VerdictIdentity
		} else {
			set.Verdict = VerdictContradiction
		}
	case DegreeLinear:
		set.Roots = []Root{{Real: -c.C / c.B}}
	case DegreeQuadratic:
		d := c.B*c.B - 4*c.A*c.C
		switch {
		case d < -Tolerance:
			re := -c.B / (2 * c.A)
			im := math.Abs(math.Sqrt(-d) / (2 * c.A))
			set.Roots = []Root{{Real: re, Imag: im, Complex: true}, {Real: re, Imag: -im, Complex: true}}
		case math.Abs(d) <= Tolerance:
			set.Roots = []Root{{Real: -c.B / (2 * c.A)}}
		default:
			sq := math.Sqrt(d)
			set.Roots = []Root{{Real: (-c.B + sq) / (2 * c.A)}, {Real: (-c.B - sq) / (2 * c.A)}}
		}
	}
	return set
}

// Solve solves an equation for v. A parse failure is returned as an error;
// any other extraction failure yields the undetermined verdict.
func (s *Solver) Solve(eq Equation, v string) (SolutionSet, error) {
	coeffs, err := s.ExtractCoefficients(eq.Reduce(), v)
	if err != nil {
		if errors.Is(err, engine.ErrParse) {
			return SolutionSet{}, err
		}
		s.log().Debug("coefficient extraction failed", "equation", eq.Reduce(), "variable", v, "error", err)
		return SolutionSet{Variable: v, Verdict: VerdictUndetermined}, nil
	}
	return SolvePolynomial(coeffs, v), nil
}

// ============================================================
// Number formatting
// ============================================================

// FormatNumber renders a root: integers bare, values whose square is an
// integer as \sqrt{n}, anything else with up to six decimals.
func FormatNumber(r float64) string {
	if rounded := math.Round(r); math.Abs(r-rounded) < Tolerance {
		return formatInteger(rounded)
	}
	sq := r * r
	if n := math.Round(sq); n > 0 && math.Abs(sq-n) < Tolerance {
		root := `\sqrt{` + formatInteger(n) + `}`
		if r < 0 {
			return "-" + root
		}
		return root
	}
	return trimDecimal(strconv.FormatFloat(r, 'f', 6, 64))
}

// FormatNumberClean renders a factorization coefficient: integers bare,
// fractions with a denominator from 2 to 10 as \frac{n}{d}, anything else
// with up to four decimals.
func FormatNumberClean(r float64) string {
	if rounded := math.Round(r); math.Abs(r-rounded) < Tolerance {
		return formatInteger(rounded)
	}
	for d := 2.0; d <= 10; d++ {
		n := r * d
		if math.Abs(n-math.Round(n)) < Tolerance {
			return `\frac{` + formatInteger(math.Round(n)) + `}{` + formatInteger(d) + `}`
		}
	}
	return trimDecimal(strconv.FormatFloat(r, 'f', 4, 64))
}

func formatInteger(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func trimDecimal(s string) string {
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
