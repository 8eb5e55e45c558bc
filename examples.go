package gosolve

// Example is a ready-made input for demos and smoke tests.
type Example struct {
	Name  string `json:"name"`
	LaTeX string `json:"latex"`
	Mode  Mode   `json:"mode"`
}

// Examples is the built-in catalogue shown by the CLI.
var Examples = []Example{
	{Name: "Quadratic Equation", LaTeX: "x^{2} + 5x + 6 = 0", Mode: ModeSolve},
	{Name: "Linear Equation", LaTeX: "2x + 3 = 7", Mode: ModeSolve},
	{Name: "Complex Roots", LaTeX: "x^{2} + 1 = 0", Mode: ModeSolve},
	{Name: "Factorize", LaTeX: "x^{2} - 4", Mode: ModeSolve},
	{Name: "Fraction", LaTeX: `\frac{x^{2}}{2} - 8 = 0`, Mode: ModeSolve},
	{Name: "Polynomial", LaTeX: "x^{3} - 3x^{2} + 2x", Mode: ModeDifferentiate},
	{Name: "Trigonometric", LaTeX: `\sin(x) + \cos(x)`, Mode: ModeIntegrate},
	{Name: "Exponential", LaTeX: "e^{x} + x^{2}", Mode: ModeIntegrate},
}
