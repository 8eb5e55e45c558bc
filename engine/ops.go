package engine

import (
	"math"
	"math/big"
	"sort"
	"strings"
)

// ============================================================
// Add — sum of terms
// ============================================================

type Add struct{ terms []Expr }

func AddOf(terms ...Expr) Expr { return (&Add{terms: terms}).Simplify() }

func (a *Add) Terms() []Expr { return a.terms }

func (a *Add) Simplify() Expr {
	flat := make([]Expr, 0, len(a.terms))
	var push func(e Expr)
	push = func(e Expr) {
		switch v := e.(type) {
		case *Add:
			for _, t := range v.terms {
				push(t)
			}
		case *Mul:
			// k*(a+b) is distributed so like terms can be collected.
			if k, sum, ok := scaledSum(v); ok {
				for _, t := range sum.terms {
					push(MulOf(k, t))
				}
				return
			}
			flat = append(flat, e)
		default:
			flat = append(flat, e)
		}
	}
	for _, t := range a.terms {
		push(t.Simplify())
	}

	constant := N(0)
	coeffs := map[string]*Num{}
	rests := map[string]Expr{}
	order := []string{}
	for _, t := range flat {
		coeff, rest := splitCoeff(t)
		if rest == nil {
			constant = numAdd(constant, coeff)
			continue
		}
		key := rest.String()
		if _, seen := coeffs[key]; !seen {
			order = append(order, key)
			coeffs[key] = N(0)
			rests[key] = rest
		}
		coeffs[key] = numAdd(coeffs[key], coeff)
	}

	result := make([]Expr, 0, len(order)+1)
	for _, key := range order {
		coeff := coeffs[key]
		if coeff.IsZero() {
			continue
		}
		if coeff.IsOne() {
			result = append(result, rests[key])
		} else {
			result = append(result, MulOf(coeff, rests[key]))
		}
	}
	sortTerms(result)
	if !constant.IsZero() {
		result = append(result, constant)
	}
	if len(result) == 0 {
		return N(0)
	}
	if len(result) == 1 {
		return result[0]
	}
	return &Add{terms: result}
}

// scaledSum matches k*(sum) with a numeric k.
func scaledSum(m *Mul) (*Num, *Add, bool) {
	if len(m.factors) != 2 {
		return nil, nil, false
	}
	k, ok := m.factors[0].(*Num)
	if !ok {
		return nil, nil, false
	}
	sum, ok := m.factors[1].(*Add)
	return k, sum, ok
}

// splitCoeff separates the numeric coefficient of a term. rest is nil for
// a bare number.
func splitCoeff(e Expr) (*Num, Expr) {
	switch v := e.(type) {
	case *Num:
		return v, nil
	case *Mul:
		if coeff, ok := v.factors[0].(*Num); ok {
			rest := v.factors[1:]
			if len(rest) == 1 {
				return coeff, rest[0]
			}
			return coeff, &Mul{factors: rest}
		}
	}
	return N(1), e
}

// degree is the total polynomial degree used to order terms.
func degree(e Expr) float64 {
	switch v := e.(type) {
	case *Sym:
		if IsConstant(v.name) {
			return 0
		}
		return 1
	case *Pow:
		if n, ok := v.exp.(*Num); ok {
			return degree(v.base) * n.Float64()
		}
	case *Mul:
		total := 0.0
		for _, f := range v.factors {
			total += degree(f)
		}
		return total
	}
	return 0
}

func sortTerms(terms []Expr) {
	type keyed struct {
		e   Expr
		deg float64
		key string
	}
	ks := make([]keyed, len(terms))
	for i, t := range terms {
		key := ""
		if _, rest := splitCoeff(t); rest != nil {
			key = rest.String()
		}
		ks[i] = keyed{e: t, deg: degree(t), key: key}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].deg != ks[j].deg {
			return ks[i].deg > ks[j].deg
		}
		return ks[i].key < ks[j].key
	})
	for i := range ks {
		terms[i] = ks[i].e
	}
}

// negated returns the absolute form of a term with a negative leading
// coefficient.
func negated(e Expr) (bool, Expr) {
	coeff, rest := splitCoeff(e)
	if !coeff.IsNegative() {
		return false, e
	}
	if rest == nil {
		return true, numNeg(coeff)
	}
	return true, MulOf(numNeg(coeff), rest)
}

func (a *Add) String() string {
	var sb strings.Builder
	for i, t := range a.terms {
		neg, abs := negated(t)
		switch {
		case i == 0 && neg:
			sb.WriteString("-")
		case neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		sb.WriteString(abs.String())
	}
	return sb.String()
}

func (a *Add) LaTeX() string {
	var sb strings.Builder
	for i, t := range a.terms {
		neg, abs := negated(t)
		switch {
		case i == 0 && neg:
			sb.WriteString("-")
		case neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		sb.WriteString(abs.LaTeX())
	}
	return sb.String()
}

func (a *Add) Diff(varName string) (Expr, error) {
	dTerms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		d, err := t.Diff(varName)
		if err != nil {
			return nil, err
		}
		dTerms[i] = d
	}
	return AddOf(dTerms...), nil
}

func (a *Add) Eval(b Bindings) (float64, error) {
	acc := 0.0
	for _, t := range a.terms {
		v, err := t.Eval(b)
		if err != nil {
			return 0, err
		}
		acc += v
	}
	return acc, nil
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	return ok && equalSlices(a.terms, o.terms)
}

func equalSlices(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// ============================================================
// Mul — product of factors
// ============================================================

type Mul struct{ factors []Expr }

func MulOf(factors ...Expr) Expr { return (&Mul{factors: factors}).Simplify() }

func (m *Mul) Factors() []Expr { return m.factors }

func (m *Mul) Simplify() Expr {
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		s := f.Simplify()
		if inner, ok := s.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}

	coeff := N(1)
	bases := map[string]Expr{}
	exps := map[string][]Expr{}
	order := []string{}
	for _, f := range flat {
		if v, ok := f.(*Num); ok {
			coeff = numMul(coeff, v)
			continue
		}
		base, exp := Expr(f), Expr(N(1))
		if p, ok := f.(*Pow); ok {
			base, exp = p.base, p.exp
		}
		key := base.String()
		if _, seen := bases[key]; !seen {
			order = append(order, key)
			bases[key] = base
		}
		exps[key] = append(exps[key], exp)
	}
	if coeff.IsZero() {
		return N(0)
	}

	others := []Expr{}
	for _, key := range order {
		merged := PowOf(bases[key], AddOf(exps[key]...))
		switch v := merged.(type) {
		case *Num:
			coeff = numMul(coeff, v)
		case *Mul:
			for _, f := range v.factors {
				if n, ok := f.(*Num); ok {
					coeff = numMul(coeff, n)
				} else {
					others = append(others, f)
				}
			}
		default:
			others = append(others, merged)
		}
	}
	if coeff.IsZero() {
		return N(0)
	}
	if len(others) == 0 {
		return coeff
	}
	if sum, ok := others[0].(*Add); ok && len(others) == 1 && !coeff.IsOne() {
		terms := make([]Expr, len(sum.terms))
		for i, t := range sum.terms {
			terms[i] = MulOf(coeff, t)
		}
		return AddOf(terms...)
	}
	sortFactors(others)
	if coeff.IsOne() {
		if len(others) == 1 {
			return others[0]
		}
		return &Mul{factors: others}
	}
	return &Mul{factors: append([]Expr{coeff}, others...)}
}

// factorRank orders factors: symbols and their powers, then other powers
// and functions, then sums.
func factorRank(e Expr) int {
	switch v := e.(type) {
	case *Sym:
		return 1
	case *Pow:
		if _, ok := v.base.(*Sym); ok {
			return 1
		}
		return 2
	case *Func:
		return 2
	case *Add:
		return 3
	}
	return 0
}

func factorKey(e Expr) string {
	if p, ok := e.(*Pow); ok {
		return p.base.String()
	}
	return e.String()
}

func sortFactors(factors []Expr) {
	type keyed struct {
		e    Expr
		rank int
		key  string
	}
	ks := make([]keyed, len(factors))
	for i, f := range factors {
		ks[i] = keyed{e: f, rank: factorRank(f), key: factorKey(f)}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].rank != ks[j].rank {
			return ks[i].rank < ks[j].rank
		}
		return ks[i].key < ks[j].key
	})
	for i := range ks {
		factors[i] = ks[i].e
	}
}

// reciprocal returns base^(-exp) for a factor with a negative numeric
// exponent.
func reciprocal(e Expr) (Expr, bool) {
	p, ok := e.(*Pow)
	if !ok {
		return nil, false
	}
	n, ok := p.exp.(*Num)
	if !ok || !n.IsNegative() {
		return nil, false
	}
	return PowOf(p.base, numNeg(n)), true
}

func wrapFactor(e Expr) string {
	switch e.(type) {
	case *Add:
		return "(" + e.String() + ")"
	}
	return e.String()
}

func (m *Mul) String() string {
	coeff, rest := splitCoeff(m)
	var factors []Expr
	if rest != nil {
		if inner, ok := rest.(*Mul); ok {
			factors = inner.factors
		} else {
			factors = []Expr{rest}
		}
	}
	numer := []string{}
	denom := []string{}
	for _, f := range factors {
		if r, ok := reciprocal(f); ok {
			denom = append(denom, wrapFactor(r))
		} else {
			numer = append(numer, wrapFactor(f))
		}
	}

	sign := ""
	if coeff.IsNegative() {
		sign = "-"
		coeff = numNeg(coeff)
	}
	if len(denom) == 0 {
		if !coeff.IsOne() {
			numer = append([]string{coeff.String()}, numer...)
		}
		return sign + strings.Join(numer, " * ")
	}

	c := coeff.Rat()
	if n := c.Num().String(); n != "1" || len(numer) == 0 {
		numer = append([]string{n}, numer...)
	}
	if !c.IsInt() {
		denom = append([]string{c.Denom().String()}, denom...)
	}
	den := strings.Join(denom, " * ")
	if len(denom) > 1 {
		den = "(" + den + ")"
	}
	num := strings.Join(numer, " * ")
	if len(numer) > 1 {
		num = "(" + num + ")"
	}
	return sign + num + " / " + den
}

func (m *Mul) LaTeX() string {
	coeff, rest := splitCoeff(m)
	var factors []Expr
	if rest != nil {
		if inner, ok := rest.(*Mul); ok {
			factors = inner.factors
		} else {
			factors = []Expr{rest}
		}
	}
	sign := ""
	if coeff.IsNegative() {
		sign = "-"
		coeff = numNeg(coeff)
	}
	numer := []string{}
	denom := []string{}
	for _, f := range factors {
		target := &numer
		if r, ok := reciprocal(f); ok {
			f, target = r, &denom
		}
		s := f.LaTeX()
		if _, isAdd := f.(*Add); isAdd {
			s = "\\left(" + s + "\\right)"
		}
		*target = append(*target, s)
	}
	if len(denom) == 0 {
		body := strings.Join(numer, " ")
		if coeff.IsOne() {
			return sign + body
		}
		return sign + coeff.LaTeX() + " " + body
	}
	c := coeff.Rat()
	numText := strings.Join(numer, " ")
	if c.Num().String() != "1" || numText == "" {
		numText = strings.TrimSpace(c.Num().String() + " " + numText)
	}
	denText := strings.Join(denom, " ")
	if !c.IsInt() {
		denText = c.Denom().String() + " " + denText
	}
	return sign + "\\frac{" + numText + "}{" + denText + "}"
}

func (m *Mul) Diff(varName string) (Expr, error) {
	terms := make([]Expr, len(m.factors))
	for i, fi := range m.factors {
		dfi, err := fi.Diff(varName)
		if err != nil {
			return nil, err
		}
		others := make([]Expr, 0, len(m.factors))
		others = append(others, dfi)
		for j, fj := range m.factors {
			if j != i {
				others = append(others, fj)
			}
		}
		terms[i] = MulOf(others...)
	}
	return AddOf(terms...), nil
}

func (m *Mul) Eval(b Bindings) (float64, error) {
	acc := 1.0
	for _, f := range m.factors {
		v, err := f.Eval(b)
		if err != nil {
			return 0, err
		}
		acc *= v
	}
	return acc, nil
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	return ok && equalSlices(m.factors, o.factors)
}

// ============================================================
// Pow — base^exponent
// ============================================================

type Pow struct{ base, exp Expr }

func PowOf(base, exp Expr) Expr { return (&Pow{base: base, exp: exp}).Simplify() }

func (p *Pow) Base() Expr    { return p.base }
func (p *Pow) ExpExpr() Expr { return p.exp }

const maxFoldExponent = 64

func (p *Pow) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()

	en, expIsNum := exp.(*Num)
	if expIsNum && en.IsZero() {
		return N(1)
	}
	if expIsNum && en.IsOne() {
		return base
	}

	if bn, ok := base.(*Num); ok {
		switch {
		case bn.IsZero():
			// 0^0 and 0^negative stay unevaluated.
			if expIsNum && !en.IsNegative() {
				return N(0)
			}
			return &Pow{base: base, exp: exp}
		case bn.IsOne():
			return N(1)
		case expIsNum && en.IsInteger():
			e := en.val.Num().Int64()
			if e >= -maxFoldExponent && e <= maxFoldExponent {
				return numPow(bn, e)
			}
		case expIsNum && en.val.Denom().Int64() == 2:
			if root, ok := numSqrt(bn); ok {
				return PowOf(root, NRat(new(big.Rat).SetInt(en.val.Num())))
			}
		}
	}

	if expIsNum && en.IsInteger() {
		switch inner := base.(type) {
		case *Pow:
			return PowOf(inner.base, MulOf(inner.exp, exp))
		case *Mul:
			factors := make([]Expr, len(inner.factors))
			for i, f := range inner.factors {
				factors[i] = PowOf(f, exp)
			}
			return MulOf(factors...)
		}
	}
	if f, ok := base.(*Func); ok && f.name == "sqrt" && expIsNum && en.Equal(N(2)) {
		return f.args[0]
	}
	return &Pow{base: base, exp: exp}
}

func (p *Pow) String() string {
	baseStr := p.base.String()
	switch b := p.base.(type) {
	case *Add, *Mul, *Pow:
		baseStr = "(" + baseStr + ")"
	case *Num:
		if b.IsNegative() || !b.IsInteger() {
			baseStr = "(" + baseStr + ")"
		}
	}
	expStr := p.exp.String()
	switch e := p.exp.(type) {
	case *Sym, *Func:
	case *Num:
		if e.IsNegative() || !e.IsInteger() {
			expStr = "(" + expStr + ")"
		}
	default:
		expStr = "(" + expStr + ")"
	}
	return baseStr + " ^ " + expStr
}

func (p *Pow) LaTeX() string {
	baseStr := p.base.LaTeX()
	switch p.base.(type) {
	case *Add, *Mul, *Pow:
		baseStr = "\\left(" + baseStr + "\\right)"
	}
	if n, ok := p.exp.(*Num); ok && n.Equal(F(1, 2)) {
		return "\\sqrt{" + p.base.LaTeX() + "}"
	}
	return baseStr + "^{" + p.exp.LaTeX() + "}"
}

func (p *Pow) Diff(varName string) (Expr, error) {
	du, err := p.base.Diff(varName)
	if err != nil {
		return nil, err
	}
	dv, err := p.exp.Diff(varName)
	if err != nil {
		return nil, err
	}
	if freeOf(p.exp, varName) {
		newExp := AddOf(p.exp, N(-1))
		return MulOf(p.exp, PowOf(p.base, newExp), du), nil
	}
	if freeOf(p.base, varName) {
		return MulOf(PowOf(p.base, p.exp), LogOf(p.base), dv), nil
	}
	logTerm := MulOf(dv, LogOf(p.base))
	divTerm := MulOf(p.exp, du, PowOf(p.base, N(-1)))
	return MulOf(PowOf(p.base, p.exp), AddOf(logTerm, divTerm)), nil
}

func (p *Pow) Eval(b Bindings) (float64, error) {
	base, err := p.base.Eval(b)
	if err != nil {
		return 0, err
	}
	exp, err := p.exp.Eval(b)
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}
