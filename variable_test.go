package gosolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/njchilds90/gosolve"
)

func TestDetectVariable(t *testing.T) {
	tests := []struct {
		normalized string
		want       string
	}{
		{normalized: "x^(2)+5*x+6=0", want: "x"},
		{normalized: "3*y-6=0", want: "y"},
		{normalized: "sin(t)+t", want: "t"},
		{normalized: "log10(z)", want: "z"},
		{normalized: "nthRoot(u,3)", want: "u"},
		{normalized: "e^(x)", want: "x"},
		{normalized: "pi*r^(2)", want: "r"},
		{normalized: "theta^(2)-1=0", want: "theta"},
		{normalized: "alpha*beta", want: "alpha"},
		{normalized: "ab+1", want: "a"},
		{normalized: "pix^(2)", want: "x"},
		{normalized: "sinx", want: "x"},
		{normalized: "2*pir", want: "r"},
		{normalized: "etax", want: "eta"},
		{normalized: "pie", want: gosolve.DefaultVariable},
		{normalized: "b*x+a", want: "b"},
		{normalized: "2+3", want: gosolve.DefaultVariable},
		{normalized: "pi+Infinity", want: gosolve.DefaultVariable},
		{normalized: "", want: gosolve.DefaultVariable},
	}
	for _, tt := range tests {
		t.Run(tt.normalized, func(t *testing.T) {
			assert.Equal(t, tt.want, gosolve.DetectVariable(tt.normalized))
		})
	}
}

func TestDetectVariable_Normalized(t *testing.T) {
	tests := []struct {
		latex string
		want  string
	}{
		{latex: `\pi x^{2}`, want: "x"},
		{latex: `\sin x`, want: "x"},
		{latex: `2\pi r`, want: "r"},
		{latex: `\theta^{2} - 1 = 0`, want: "theta"},
	}
	for _, tt := range tests {
		t.Run(tt.latex, func(t *testing.T) {
			assert.Equal(t, tt.want, gosolve.DetectVariable(gosolve.Normalize(tt.latex)))
		})
	}
}
