package gosolve

import (
	"fmt"

	"github.com/njchilds90/gosolve/engine"
)

// Coefficients of the best-fit quadratic a·v² + b·v + c. They are only
// meaningful when the sampled expression really has degree ≤ 2.
type Coefficients struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// samplePoints are the bindings used to recover a, b and c.
var samplePoints = [3]float64{0, 1, -1}

// ExtractCoefficients evaluates expr at v = 0, 1 and -1 and solves for the
// quadratic through those points. On failure it returns the zero triple and
// an error wrapping ErrExtraction together with the engine's error.
func (s *Solver) ExtractCoefficients(expr, v string) (Coefficients, error) {
	e, err := s.engine.Parse(expr)
	if err != nil {
		return Coefficients{}, fmt.Errorf("%w: parse() > %w", ErrExtraction, err)
	}
	simplified := s.engine.Simplify(e)

	var f [3]float64
	for i, at := range samplePoints {
		val, err := s.engine.Evaluate(simplified, engine.Bindings{v: at})
		if err != nil {
			return Coefficients{}, fmt.Errorf("%w: evaluate(%s=%g) > %w", ErrExtraction, v, at, err)
		}
		f[i] = val
	}

	c := f[0]
	a := (f[1] + f[2] - 2*c) / 2
	b := f[1] - c - a
	return Coefficients{A: a, B: b, C: c}, nil
}
