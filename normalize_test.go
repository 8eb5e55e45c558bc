package gosolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/njchilds90/gosolve"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		latex string
		want  string
	}{
		{name: "polynomial", latex: "x^{2} + 5x + 6 = 0", want: "x^(2)+5*x+6=0"},
		{name: "math delimiters", latex: "$$2x = 4$$", want: "2*x=4"},
		{name: "inline delimiters", latex: "$x$", want: "x"},
		{name: "fraction", latex: `\frac{x}{2} = 3`, want: "((x)/(2))=3"},
		{name: "fraction times variable", latex: `\frac{1}{2}x`, want: "((1)/(2))*x"},
		{name: "single token fraction", latex: `\frac12`, want: "((1)/(2))"},
		{name: "nested fraction", latex: `\frac{\frac{1}{2}}{x}`, want: "((((1)/(2)))/(x))"},
		{name: "square root", latex: `\sqrt{x + 1}`, want: "sqrt(x+1)"},
		{name: "nth root", latex: `\sqrt[3]{x}`, want: "nthRoot(x,3)"},
		{name: "sized parentheses", latex: `\left(x+1\right)^{2}`, want: "(x+1)^(2)"},
		{name: "cdot and times", latex: `x \cdot 3 \times 4`, want: "x*3*4"},
		{name: "division", latex: `6 \div 2`, want: "6/2"},
		{name: "coefficient before function", latex: `2\sin(x)`, want: "2*sin(x)"},
		{name: "adjacent functions", latex: `\sin(x)\cos(x)`, want: "sin(x)*cos(x)"},
		{name: "logarithms", latex: `\ln(x) + \log(x)`, want: "log(x)+log10(x)"},
		{name: "inverse trig", latex: `\arctan(x)`, want: "atan(x)"},
		{name: "constants", latex: `\pi + \infty`, want: "pi+Infinity"},
		{name: "euler", latex: "e^{x}", want: "e^(x)"},
		{name: "greek letter", latex: `\alpha^{2} - 1 = 0`, want: "alpha^(2)-1=0"},
		{name: "constant before variable", latex: `\pi x^{2}`, want: "pi*x^(2)"},
		{name: "coefficient constant and variable", latex: `2\pi r`, want: "2*pi*r"},
		{name: "adjacent greek letters", latex: `\alpha\beta`, want: "alpha*beta"},
		{name: "constant before operator command", latex: `\pi \cdot x`, want: "pi*x"},
		{name: "plus minus keeps plus", latex: `x \pm 1`, want: "x+1"},
		{name: "subscripts dropped", latex: "x_{1} + 2", want: "x+2"},
		{name: "spacing commands", latex: `x \, + \; 1 \quad = 2`, want: "x+1=2"},
		{name: "parenthesized factors", latex: "2(x+1)(x-1)", want: "2*(x+1)*(x-1)"},
		{name: "variable then digit", latex: "x2", want: "x*2"},
		{name: "negative exponent", latex: "10^{-3}", want: "10^(-3)"},
		{name: "nested braces in exponent", latex: "x^{2^{3}}", want: "x^(2^(3))"},
		{name: "unknown command passes through", latex: `\foo{x}`, want: "foo{x}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gosolve.Normalize(tt.latex))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"x^2+5x+6=0",
		"2(x+1)",
		"(x+1)(x-1)",
		"3sin(x)+cos(x)",
		"log10(x)x",
		"x2+1",
		"sqrt(x)2",
		"nthRoot(x,3)",
		"((1)/(2))x",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := gosolve.Normalize(in)
			assert.Equal(t, once, gosolve.Normalize(once))
		})
	}
}
