package gosolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/njchilds90/gosolve"
)

func TestToLatex(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "x ^ 2 + 3 * x", want: "x^{2} + 3x"},
		{text: "1/3 * x ^ 3", want: `\frac{1}{3}x^{3}`},
		{text: "x ^ (-1)", want: "x^{-1}"},
		{text: "(x + 1) ^ 2", want: "(x + 1)^{2}"},
		{text: "sqrt(x)", want: `\sqrt{x}`},
		{text: "nthRoot(x, 3)", want: `\sqrt[3]{x}`},
		{text: "abs(x)", want: `\left|x\right|`},
		{text: "log(x) + log10(x)", want: `\ln(x) + \log(x)`},
		{text: "asin(x)", want: `\arcsin(x)`},
		{text: "2 * pi * r", want: `2\pi r`},
		{text: "x * y", want: "xy"},
		{text: "x * tan(x)", want: `x \tan(x)`},
		{text: "sin(x) * cos(x)", want: `\sin(x)\cos(x)`},
		{text: "(x + 1) * (x - 1)", want: `(x + 1) \cdot (x - 1)`},
		{text: "Infinity", want: `\infty`},
		{text: "theta ^ 2", want: `\theta^{2}`},
		{text: "e ^ x", want: "e^{x}"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, gosolve.ToLatex(tt.text))
		})
	}
}
