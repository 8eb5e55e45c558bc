package engine

import (
	"fmt"
	"math"
	"strings"
)

// ============================================================
// Func — named function applications
// ============================================================

type Func struct {
	name string
	args []Expr
}

// arity lists every function the parser accepts.
var arity = map[string]int{
	"sqrt": 1, "nthRoot": 2,
	"sin": 1, "cos": 1, "tan": 1, "cot": 1, "sec": 1, "csc": 1,
	"asin": 1, "acos": 1, "atan": 1,
	"log": 1, "log10": 1, "exp": 1, "abs": 1,
}

// IsFunction reports whether name is a function known to the kernel.
func IsFunction(name string) bool {
	_, ok := arity[name]
	return ok
}

func funcOf(name string, args ...Expr) *Func { return &Func{name: name, args: args} }

func SinOf(arg Expr) Expr  { return funcOf("sin", arg).Simplify() }
func CosOf(arg Expr) Expr  { return funcOf("cos", arg).Simplify() }
func TanOf(arg Expr) Expr  { return funcOf("tan", arg).Simplify() }
func CotOf(arg Expr) Expr  { return funcOf("cot", arg).Simplify() }
func SecOf(arg Expr) Expr  { return funcOf("sec", arg).Simplify() }
func CscOf(arg Expr) Expr  { return funcOf("csc", arg).Simplify() }
func ExpOf(arg Expr) Expr  { return funcOf("exp", arg).Simplify() }
func LogOf(arg Expr) Expr  { return funcOf("log", arg).Simplify() }
func SqrtOf(arg Expr) Expr { return funcOf("sqrt", arg).Simplify() }
func AbsOf(arg Expr) Expr  { return funcOf("abs", arg).Simplify() }

func (f *Func) FuncName() string { return f.name }
func (f *Func) Args() []Expr     { return f.args }

func (f *Func) Simplify() Expr {
	args := make([]Expr, len(f.args))
	for i, a := range f.args {
		args[i] = a.Simplify()
	}
	arg := args[0]
	switch f.name {
	case "sin", "tan", "asin", "atan":
		if isNumEqual(arg, 0) {
			return N(0)
		}
	case "cos", "sec":
		if isNumEqual(arg, 0) {
			return N(1)
		}
	case "exp":
		if isNumEqual(arg, 0) {
			return N(1)
		}
		if inner, ok := arg.(*Func); ok && inner.name == "log" {
			return inner.args[0]
		}
	case "log":
		if isNumEqual(arg, 1) {
			return N(0)
		}
		if s, ok := arg.(*Sym); ok && s.name == "e" {
			return N(1)
		}
		if inner, ok := arg.(*Func); ok && inner.name == "exp" {
			return inner.args[0]
		}
	case "log10":
		if isNumEqual(arg, 1) {
			return N(0)
		}
		if isNumEqual(arg, 10) {
			return N(1)
		}
	case "sqrt":
		if n, ok := arg.(*Num); ok {
			if root, ok := numSqrt(n); ok {
				return root
			}
		}
	case "abs":
		if n, ok := arg.(*Num); ok {
			if n.IsNegative() {
				return numNeg(n)
			}
			return n
		}
	case "nthRoot":
		if isNumEqual(args[1], 2) {
			return SqrtOf(arg)
		}
	}
	return &Func{name: f.name, args: args}
}

func isNumEqual(e Expr, v int64) bool {
	n, ok := e.(*Num)
	return ok && n.Equal(N(v))
}

func (f *Func) String() string {
	parts := make([]string, len(f.args))
	for i, a := range f.args {
		parts[i] = a.String()
	}
	return f.name + "(" + strings.Join(parts, ", ") + ")"
}

func (f *Func) LaTeX() string {
	arg := f.args[0].LaTeX()
	switch f.name {
	case "sin", "cos", "tan", "cot", "sec", "csc", "exp":
		return "\\" + f.name + "\\left(" + arg + "\\right)"
	case "log":
		return "\\ln\\left(" + arg + "\\right)"
	case "log10":
		return "\\log_{10}\\left(" + arg + "\\right)"
	case "asin":
		return "\\arcsin\\left(" + arg + "\\right)"
	case "acos":
		return "\\arccos\\left(" + arg + "\\right)"
	case "atan":
		return "\\arctan\\left(" + arg + "\\right)"
	case "sqrt":
		return "\\sqrt{" + arg + "}"
	case "nthRoot":
		return "\\sqrt[" + f.args[1].LaTeX() + "]{" + arg + "}"
	case "abs":
		return "\\left|" + arg + "\\right|"
	}
	return "\\operatorname{" + f.name + "}\\left(" + arg + "\\right)"
}

func (f *Func) Diff(varName string) (Expr, error) {
	u := f.args[0]
	du, err := u.Diff(varName)
	if err != nil {
		return nil, err
	}
	var outer Expr
	switch f.name {
	case "sin":
		outer = CosOf(u)
	case "cos":
		outer = MulOf(N(-1), SinOf(u))
	case "tan":
		outer = PowOf(SecOf(u), N(2))
	case "cot":
		outer = MulOf(N(-1), PowOf(CscOf(u), N(2)))
	case "sec":
		outer = MulOf(SecOf(u), TanOf(u))
	case "csc":
		outer = MulOf(N(-1), CscOf(u), CotOf(u))
	case "asin":
		outer = PowOf(AddOf(N(1), MulOf(N(-1), PowOf(u, N(2)))), F(-1, 2))
	case "acos":
		outer = MulOf(N(-1), PowOf(AddOf(N(1), MulOf(N(-1), PowOf(u, N(2)))), F(-1, 2)))
	case "atan":
		outer = PowOf(AddOf(N(1), PowOf(u, N(2))), N(-1))
	case "exp":
		outer = ExpOf(u)
	case "log":
		outer = PowOf(u, N(-1))
	case "log10":
		outer = PowOf(MulOf(u, LogOf(N(10))), N(-1))
	case "sqrt":
		outer = MulOf(F(1, 2), PowOf(SqrtOf(u), N(-1)))
	case "nthRoot":
		n := f.args[1]
		if !freeOf(n, varName) {
			return nil, fmt.Errorf("%w: derivative of nthRoot with variable index", ErrUnsupported)
		}
		inv := PowOf(n, N(-1))
		outer = MulOf(inv, PowOf(u, AddOf(inv, N(-1))))
	default:
		return nil, fmt.Errorf("%w: derivative of %s", ErrUnsupported, f.name)
	}
	return MulOf(outer, du), nil
}

func (f *Func) Eval(b Bindings) (float64, error) {
	if len(f.args) != arity[f.name] {
		return 0, fmt.Errorf("%w: %s expects %d argument(s)", ErrEval, f.name, arity[f.name])
	}
	vals := make([]float64, len(f.args))
	for i, a := range f.args {
		v, err := a.Eval(b)
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	v := vals[0]
	switch f.name {
	case "sin":
		return math.Sin(v), nil
	case "cos":
		return math.Cos(v), nil
	case "tan":
		return math.Tan(v), nil
	case "cot":
		return 1 / math.Tan(v), nil
	case "sec":
		return 1 / math.Cos(v), nil
	case "csc":
		return 1 / math.Sin(v), nil
	case "asin":
		return math.Asin(v), nil
	case "acos":
		return math.Acos(v), nil
	case "atan":
		return math.Atan(v), nil
	case "exp":
		return math.Exp(v), nil
	case "log":
		return math.Log(v), nil
	case "log10":
		return math.Log10(v), nil
	case "sqrt":
		return math.Sqrt(v), nil
	case "abs":
		return math.Abs(v), nil
	case "nthRoot":
		n := vals[1]
		if v < 0 && math.Mod(n, 2) == 1 {
			return -math.Pow(-v, 1/n), nil
		}
		return math.Pow(v, 1/n), nil
	}
	return 0, fmt.Errorf("%w: unknown function %s", ErrEval, f.name)
}

func (f *Func) Equal(other Expr) bool {
	o, ok := other.(*Func)
	return ok && f.name == o.name && equalSlices(f.args, o.args)
}
