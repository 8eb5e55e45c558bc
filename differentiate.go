package gosolve

// CannotDifferentiate is returned by Differentiate when the engine fails.
const CannotDifferentiate = "Cannot compute derivative"

// Differentiate returns d(expr)/dv in LaTeX, or CannotDifferentiate.
func (s *Solver) Differentiate(expr, v string) string {
	text, err := s.Derivative(expr, v)
	if err != nil {
		s.log().Debug("derivative failed", "expr", expr, "variable", v, "error", err)
		return CannotDifferentiate
	}
	return ToLatex(text)
}

// Derivative returns d(expr)/dv as simplified engine text.
func (s *Solver) Derivative(expr, v string) (string, error) {
	e, err := s.engine.Parse(expr)
	if err != nil {
		return "", err
	}
	d, err := s.engine.Derivative(s.engine.Simplify(e), v)
	if err != nil {
		return "", err
	}
	return s.engine.String(s.engine.Simplify(d)), nil
}
