package gosolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/gosolve"
	"github.com/njchilds90/gosolve/engine"
)

func TestFactorize(t *testing.T) {
	tests := []struct {
		name string
		expr string
		v    string
		want string
	}{
		{name: "perfect square", expr: "x^(2)+2*x+1", v: "x", want: "(x + 1)^{2}"},
		{name: "leading coefficient", expr: "2*x^(2)-8", v: "x", want: "2 (x - 2)(x + 2)"},
		{name: "negated leading coefficient", expr: "-x^(2)+1", v: "x", want: "-(x + 1)(x - 1)"},
		{name: "fractional root", expr: "2*x^(2)-3*x+1", v: "x", want: `2 (x - 1)(x - \frac{1}{2})`},
		{name: "zero root", expr: "x^(2)-5*x", v: "x", want: "(x - 5)x"},
		{name: "surd difference of squares", expr: "x^(2)-2", v: "x", want: `(x + \sqrt{2})(x - \sqrt{2})`},
		{name: "other variable", expr: "y^(2)-9", v: "y", want: "(y - 3)(y + 3)"},
		{name: "irreducible falls back", expr: "x^(2)+1", v: "x", want: "x^{2} + 1"},
		{name: "cubic falls back", expr: "x^(3)-x", v: "x", want: "x^{3} - x"},
		{name: "linear falls back", expr: "x+1", v: "x", want: "x + 1"},
	}
	s := gosolve.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Factorize(tt.expr, tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFactorize_ParseError(t *testing.T) {
	_, err := gosolve.New().Factorize("x+", "x")
	assert.ErrorIs(t, err, engine.ErrParse)
}
