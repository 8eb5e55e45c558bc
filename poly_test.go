package gosolve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/njchilds90/gosolve"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "integer", in: 2, want: "2"},
		{name: "negative integer", in: -3, want: "-3"},
		{name: "integer within tolerance", in: 2 + 1e-13, want: "2"},
		{name: "negative zero", in: math.Copysign(0, -1), want: "0"},
		{name: "tiny", in: 1e-12, want: "0"},
		{name: "decimal", in: 2.5, want: "2.5"},
		{name: "half", in: 0.5, want: "0.5"},
		{name: "square root", in: math.Sqrt(2), want: `\sqrt{2}`},
		{name: "negative square root", in: -math.Sqrt(3), want: `-\sqrt{3}`},
		{name: "repeating decimal", in: 1.0 / 3, want: "0.333333"},
		{name: "root of a fraction", in: math.Sqrt(0.5), want: "0.707107"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gosolve.FormatNumber(tt.in))
		})
	}
}

func TestFormatNumberClean(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "integer", in: 3, want: "3"},
		{name: "half", in: 0.5, want: `\frac{1}{2}`},
		{name: "third", in: 1.0 / 3, want: `\frac{1}{3}`},
		{name: "seventh", in: 1.0 / 7, want: `\frac{1}{7}`},
		{name: "negative", in: -1.5, want: `\frac{-3}{2}`},
		{name: "denominator above ten", in: 1.0 / 11, want: "0.0909"},
		{name: "decimal", in: 0.123456, want: "0.1235"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gosolve.FormatNumberClean(tt.in))
		})
	}
}

func TestRoot_String(t *testing.T) {
	assert.Equal(t, "-4", gosolve.Root{Real: -4}.String())
	assert.Equal(t, "1 + 2i", gosolve.Root{Real: 1, Imag: 2, Complex: true}.String())
	assert.Equal(t, "1 - 2i", gosolve.Root{Real: 1, Imag: -2, Complex: true}.String())
	assert.Equal(t, "-0.5 + 0.866025i", gosolve.Root{Real: -0.5, Imag: math.Sqrt(3) / 2, Complex: true}.String())
}

func TestCoefficients_Classify(t *testing.T) {
	tests := []struct {
		name   string
		coeffs gosolve.Coefficients
		want   gosolve.Degree
	}{
		{name: "quadratic", coeffs: gosolve.Coefficients{A: 1, B: 2, C: 3}, want: gosolve.DegreeQuadratic},
		{name: "a at tolerance is quadratic", coeffs: gosolve.Coefficients{A: gosolve.Tolerance, B: 2}, want: gosolve.DegreeQuadratic},
		{name: "a below tolerance is linear", coeffs: gosolve.Coefficients{A: 5e-11, B: 2}, want: gosolve.DegreeLinear},
		{name: "negative tiny a is linear", coeffs: gosolve.Coefficients{A: -5e-11, B: -1}, want: gosolve.DegreeLinear},
		{name: "degenerate", coeffs: gosolve.Coefficients{A: 1e-12, B: 1e-12, C: 4}, want: gosolve.DegreeDegenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coeffs.Classify())
		})
	}
}

func TestSolvePolynomial(t *testing.T) {
	tests := []struct {
		name   string
		coeffs gosolve.Coefficients
		want   gosolve.SolutionSet
	}{
		{
			name:   "near-zero a routes to the linear branch",
			coeffs: gosolve.Coefficients{A: 1e-12, B: 2, C: -4},
			want: gosolve.SolutionSet{
				Variable: "x", Degree: gosolve.DegreeLinear, Verdict: gosolve.VerdictRoots,
				Roots: []gosolve.Root{{Real: 2}},
			},
		},
		{
			name:   "two real roots, +sqrt(D) first",
			coeffs: gosolve.Coefficients{A: 1, B: -1, C: -6},
			want: gosolve.SolutionSet{
				Variable: "x", Degree: gosolve.DegreeQuadratic, Verdict: gosolve.VerdictRoots,
				Roots: []gosolve.Root{{Real: 3}, {Real: -2}},
			},
		},
		{
			name:   "negative leading coefficient keeps formula order",
			coeffs: gosolve.Coefficients{A: -1, B: 1, C: 6},
			want: gosolve.SolutionSet{
				Variable: "x", Degree: gosolve.DegreeQuadratic, Verdict: gosolve.VerdictRoots,
				Roots: []gosolve.Root{{Real: -2}, {Real: 3}},
			},
		},
		{
			name:   "complex pair, positive imaginary part first",
			coeffs: gosolve.Coefficients{A: -1, C: -4},
			want: gosolve.SolutionSet{
				Variable: "x", Degree: gosolve.DegreeQuadratic, Verdict: gosolve.VerdictRoots,
				Roots: []gosolve.Root{{Imag: 2, Complex: true}, {Imag: -2, Complex: true}},
			},
		},
		{
			name:   "identity",
			coeffs: gosolve.Coefficients{},
			want:   gosolve.SolutionSet{Variable: "x", Degree: gosolve.DegreeDegenerate, Verdict: gosolve.VerdictIdentity},
		},
		{
			name:   "contradiction",
			coeffs: gosolve.Coefficients{C: 1},
			want:   gosolve.SolutionSet{Variable: "x", Degree: gosolve.DegreeDegenerate, Verdict: gosolve.VerdictContradiction},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gosolve.SolvePolynomial(tt.coeffs, "x")
			assert.Equal(t, tt.want.Variable, got.Variable)
			assert.Equal(t, tt.want.Degree, got.Degree)
			assert.Equal(t, tt.want.Verdict, got.Verdict)
			if assert.Len(t, got.Roots, len(tt.want.Roots)) {
				for i, want := range tt.want.Roots {
					assert.InDelta(t, want.Real, got.Roots[i].Real, gosolve.Tolerance)
					assert.InDelta(t, want.Imag, got.Roots[i].Imag, gosolve.Tolerance)
					assert.Equal(t, want.Complex, got.Roots[i].Complex)
				}
			}
		})
	}
}

func TestSolutionSet_Strings(t *testing.T) {
	tests := []struct {
		name string
		set  gosolve.SolutionSet
		want []string
	}{
		{name: "identity", set: gosolve.SolutionSet{Variable: "y", Verdict: gosolve.VerdictIdentity}, want: []string{"All values of y"}},
		{name: "contradiction", set: gosolve.SolutionSet{Verdict: gosolve.VerdictContradiction}, want: []string{"No solution"}},
		{name: "undetermined", set: gosolve.SolutionSet{Verdict: gosolve.VerdictUndetermined}, want: []string{"No solution found"}},
		{name: "roots", set: gosolve.SolutionSet{Verdict: gosolve.VerdictRoots, Roots: []gosolve.Root{{Real: 1}, {Real: -1}}}, want: []string{"1", "-1"}},
		{name: "empty roots", set: gosolve.SolutionSet{Verdict: gosolve.VerdictRoots}, want: []string{"No solution found"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.Strings())
		})
	}
}
