package gosolve

import (
	"math"
)

// Factorize renders expr as a product of linear factors when it is a
// quadratic in v with "nice" roots, or as a difference of squares. Anything
// else falls back to the simplified expression in LaTeX. Only a parse
// failure is an error.
func (s *Solver) Factorize(expr, v string) (string, error) {
	e, err := s.engine.Parse(expr)
	if err != nil {
		return "", err
	}
	fallback := ToLatex(s.engine.String(s.engine.Simplify(e)))

	coeffs, err := s.ExtractCoefficients(expr, v)
	if err != nil {
		s.log().Debug("coefficient extraction failed", "expr", expr, "variable", v, "error", err)
		return fallback, nil
	}
	if factored, ok := factorQuadratic(coeffs, v); ok {
		return factored, nil
	}
	return fallback, nil
}

// isNice reports whether r is an integer or a fraction with a denominator
// from 2 to 10.
func isNice(r float64) bool {
	for d := 1.0; d <= 10; d++ {
		if n := r * d; math.Abs(n-math.Round(n)) < Tolerance {
			return true
		}
	}
	return false
}

func linearFactor(r float64, v string) string {
	switch {
	case math.Abs(r) < Tolerance:
		return v
	case r > 0:
		return "(" + v + " - " + FormatNumberClean(r) + ")"
	}
	return "(" + v + " + " + FormatNumberClean(-r) + ")"
}

func factorQuadratic(c Coefficients, v string) (string, bool) {
	if c.Classify() != DegreeQuadratic {
		return "", false
	}
	isOne := math.Abs(c.A-1) < Tolerance
	isNegOne := math.Abs(c.A+1) < Tolerance

	if d := c.B*c.B - 4*c.A*c.C; d >= 0 {
		sq := math.Sqrt(d)
		r1 := (-c.B + sq) / (2 * c.A)
		r2 := (-c.B - sq) / (2 * c.A)
		if isNice(r1) && isNice(r2) {
			prefix := ""
			switch {
			case isNegOne:
				prefix = "-"
			case !isOne:
				prefix = FormatNumberClean(c.A) + " "
			}
			if math.Abs(r1-r2) < Tolerance {
				return prefix + linearFactor(r1, v) + "^{2}", true
			}
			return prefix + linearFactor(r1, v) + linearFactor(r2, v), true
		}
	}

	// Difference of squares: a·v² - k with b = 0.
	if math.Abs(c.B) < Tolerance && c.C < 0 && isOne {
		k := math.Sqrt(-c.C)
		if rounded := math.Round(k); math.Abs(k-rounded) < Tolerance {
			n := formatInteger(rounded)
			return "(" + v + " + " + n + ")(" + v + " - " + n + ")", true
		}
		if rounded := math.Round(-c.C); math.Abs(-c.C-rounded) < Tolerance {
			root := `\sqrt{` + formatInteger(rounded) + `}`
			return "(" + v + " + " + root + ")(" + v + " - " + root + ")", true
		}
	}
	return "", false
}
