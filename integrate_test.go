package gosolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/njchilds90/gosolve"
)

func TestIntegrate(t *testing.T) {
	tests := []struct {
		name string
		expr string
		v    string
		want string
	}{
		{name: "variable", expr: "x", v: "x", want: `\frac{1}{2} x^{2} + C`},
		{name: "constant", expr: "5", v: "x", want: "5 x + C"},
		{name: "one", expr: "1", v: "x", want: "x + C"},
		{name: "zero", expr: "0", v: "x", want: "C"},
		{name: "named constant", expr: "pi", v: "x", want: `\pi x + C`},
		{name: "sin", expr: "sin(x)", v: "x", want: `-\cos(x) + C`},
		{name: "cos", expr: "cos(x)", v: "x", want: `\sin(x) + C`},
		{name: "exp", expr: "exp(x)", v: "x", want: `e^{x} + C`},
		{name: "e power", expr: "e^(x)", v: "x", want: `e^{x} + C`},
		{name: "reciprocal", expr: "1/x", v: "x", want: `\ln|x| + C`},
		{name: "scaled reciprocal", expr: "3/x", v: "x", want: `3 \ln|x| + C`},
		{name: "quotient power", expr: "2/x^(3)", v: "x", want: `-x^{-2} + C`},
		{name: "negative power", expr: "x^(-2)", v: "x", want: `-x^{-1} + C`},
		{name: "scaled sin", expr: "3*sin(x)", v: "x", want: `-3 \cos(x) + C`},
		{name: "fractional coefficient", expr: "((x^(2))/(2))", v: "x", want: `\frac{1}{6} x^{3} + C`},
		{name: "sum", expr: "x^(2)-sin(x)", v: "x", want: `\frac{1}{3} x^{3} + \cos(x) + C`},
		{name: "unmatched term kept as notation", expr: "x^(2)+tan(x)", v: "x", want: `\frac{1}{3} x^{3} + \int \tan(x) \, dx + C`},
		{name: "other variable", expr: "y^(2)", v: "y", want: `\frac{1}{3} y^{3} + C`},
		{name: "unmatched expression", expr: "x*tan(x)", v: "x", want: `\int x \tan(x) \, dx`},
		{name: "parse failure", expr: "x+", v: "x", want: `\int x+ \, dx`},
		{name: "division by zero", expr: "((1)/(0))", v: "x", want: `\int 0^{-1} \, dx`},
		{name: "infinite constant", expr: "Infinity", v: "x", want: `\int \infty \, dx`},
		{name: "other symbol is a constant", expr: "a", v: "x", want: "a x + C"},
	}
	s := gosolve.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Integrate(tt.expr, tt.v))
		})
	}
}

func TestIntegralNotation(t *testing.T) {
	assert.Equal(t, `\int \sin(t) \, dt`, gosolve.IntegralNotation(`\sin(t)`, "t"))
}
