package gosolve

import (
	"math/big"
	"regexp"
	"strings"
	"sync"

	"github.com/njchilds90/gosolve/engine"
)

// ============================================================
// Rule-based integration over engine text
// ============================================================

// antiderivative is coef·body without the constant of integration.
type antiderivative struct {
	coef *big.Rat
	body string
}

func (a antiderivative) scale(k *big.Rat) antiderivative {
	return antiderivative{coef: new(big.Rat).Mul(a.coef, k), body: a.body}
}

func (a antiderivative) String() string {
	if a.coef.Sign() == 0 {
		return "0"
	}
	switch c := renderCoefficient(a.coef); c {
	case "", "-":
		return c + a.body
	default:
		return c + " " + a.body
	}
}

// renderCoefficient elides 1, shows -1 as "-" and reduces fractions.
func renderCoefficient(r *big.Rat) string {
	switch {
	case r.Cmp(ratOne) == 0:
		return ""
	case r.Cmp(ratNegOne) == 0:
		return "-"
	case r.IsInt():
		return r.Num().String()
	}
	return renderFraction(r)
}

func renderFraction(r *big.Rat) string {
	sign := ""
	abs := new(big.Rat).Set(r)
	if abs.Sign() < 0 {
		sign = "-"
		abs.Neg(abs)
	}
	return sign + `\frac{` + abs.Num().String() + `}{` + abs.Denom().String() + `}`
}

func renderExponent(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return renderFraction(r)
}

var (
	ratOne    = big.NewRat(1, 1)
	ratNegOne = big.NewRat(-1, 1)
)

func parseRat(s string) (*big.Rat, bool) {
	return new(big.Rat).SetString(strings.Trim(s, "()"))
}

// powerRule integrates coef·v^n.
func powerRule(coef, n *big.Rat, v string) antiderivative {
	if n.Cmp(ratNegOne) == 0 {
		return antiderivative{coef: coef, body: `\ln|` + v + `|`}
	}
	next := new(big.Rat).Add(n, ratOne)
	return antiderivative{
		coef: new(big.Rat).Quo(coef, next),
		body: v + "^{" + renderExponent(next) + "}",
	}
}

// ============================================================
// Term patterns
// ============================================================

const numPattern = `-?\d+(?:\.\d+)?(?:/\d+)?`

var identRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

type termPatterns struct {
	v         string
	power     *regexp.Regexp // v ^ n
	scaled    *regexp.Regexp // k * v
	scaledPow *regexp.Regexp // k * v ^ n
	quotient  *regexp.Regexp // k / v, k / v ^ m, k / (d * v ^ m)
	multiple  *regexp.Regexp // k * f
}

var patternCache sync.Map

func patternsFor(v string) *termPatterns {
	if p, ok := patternCache.Load(v); ok {
		return p.(*termPatterns)
	}
	q := regexp.QuoteMeta(v)
	exp := `\(?(` + numPattern + `)\)?`
	p := &termPatterns{
		v:         v,
		power:     regexp.MustCompile(`^` + q + ` \^ ` + exp + `$`),
		scaled:    regexp.MustCompile(`^(` + numPattern + `) \* ` + q + `$`),
		scaledPow: regexp.MustCompile(`^(` + numPattern + `) \* ` + q + ` \^ ` + exp + `$`),
		quotient:  regexp.MustCompile(`^(` + numPattern + `) / (\()?(?:(\d+) \* )?` + q + `(?: \^ (\d+|\(\d+/\d+\)))?(\))?$`),
		multiple:  regexp.MustCompile(`^(` + numPattern + `) \* (.+)$`),
	}
	actual, _ := patternCache.LoadOrStore(v, p)
	return actual.(*termPatterns)
}

// mentions reports whether text uses the identifier v.
func mentions(text, v string) bool {
	for _, id := range identRe.FindAllString(text, -1) {
		if id == v {
			return true
		}
	}
	return false
}

// ============================================================
// Rule table
// ============================================================

type integralRule struct {
	name  string
	apply func(term string, p *termPatterns) (antiderivative, bool)
}

// integralRules are tried in order; the first match wins.
var integralRules []integralRule

func init() {
	integralRules = []integralRule{
		{name: "constant", apply: constantRule},
		{name: "power", apply: func(t string, p *termPatterns) (antiderivative, bool) {
			m := p.power.FindStringSubmatch(t)
			if m == nil {
				return antiderivative{}, false
			}
			n, ok := parseRat(m[1])
			if !ok {
				return antiderivative{}, false
			}
			return powerRule(big.NewRat(1, 1), n, p.v), true
		}},
		{name: "variable", apply: func(t string, p *termPatterns) (antiderivative, bool) {
			return powerRule(big.NewRat(1, 1), big.NewRat(1, 1), p.v), t == p.v
		}},
		{name: "scaled variable", apply: func(t string, p *termPatterns) (antiderivative, bool) {
			m := p.scaled.FindStringSubmatch(t)
			if m == nil {
				return antiderivative{}, false
			}
			k, ok := parseRat(m[1])
			if !ok {
				return antiderivative{}, false
			}
			return powerRule(k, big.NewRat(1, 1), p.v), true
		}},
		{name: "scaled power", apply: func(t string, p *termPatterns) (antiderivative, bool) {
			m := p.scaledPow.FindStringSubmatch(t)
			if m == nil {
				return antiderivative{}, false
			}
			k, ok1 := parseRat(m[1])
			n, ok2 := parseRat(m[2])
			if !ok1 || !ok2 {
				return antiderivative{}, false
			}
			return powerRule(k, n, p.v), true
		}},
		{name: "sin", apply: func(t string, p *termPatterns) (antiderivative, bool) {
			return antiderivative{coef: big.NewRat(-1, 1), body: `\cos(` + p.v + `)`}, t == "sin("+p.v+")"
		}},
		{name: "cos", apply: func(t string, p *termPatterns) (antiderivative, bool) {
			return antiderivative{coef: big.NewRat(1, 1), body: `\sin(` + p.v + `)`}, t == "cos("+p.v+")"
		}},
		{name: "exponential", apply: func(t string, p *termPatterns) (antiderivative, bool) {
			ok := t == "exp("+p.v+")" || t == "e ^ "+p.v
			return antiderivative{coef: big.NewRat(1, 1), body: "e^{" + p.v + "}"}, ok
		}},
		{name: "reciprocal", apply: func(t string, p *termPatterns) (antiderivative, bool) {
			return powerRule(big.NewRat(1, 1), big.NewRat(-1, 1), p.v), t == "1 / "+p.v
		}},
		{name: "quotient", apply: quotientRule},
		{name: "constant multiple", apply: func(t string, p *termPatterns) (antiderivative, bool) {
			m := p.multiple.FindStringSubmatch(t)
			if m == nil {
				return antiderivative{}, false
			}
			k, ok := parseRat(m[1])
			if !ok {
				return antiderivative{}, false
			}
			inner, ok := integrateTerm(m[2], p)
			if !ok {
				return antiderivative{}, false
			}
			return inner.scale(k), true
		}},
		{name: "negation", apply: func(t string, p *termPatterns) (antiderivative, bool) {
			if !strings.HasPrefix(t, "-") {
				return antiderivative{}, false
			}
			inner, ok := integrateTerm(t[1:], p)
			if !ok {
				return antiderivative{}, false
			}
			return inner.scale(ratNegOne), true
		}},
	}
}

func constantRule(t string, p *termPatterns) (antiderivative, bool) {
	if mentions(t, p.v) || len(splitTerms(t)) > 1 {
		return antiderivative{}, false
	}
	if k, ok := parseRat(t); ok {
		return antiderivative{coef: k, body: p.v}, true
	}
	return antiderivative{coef: big.NewRat(1, 1), body: ToLatex(t) + " " + p.v}, true
}

// quotientRule integrates k / (d·v^m) by the power rule on v^-m.
func quotientRule(t string, p *termPatterns) (antiderivative, bool) {
	m := p.quotient.FindStringSubmatch(t)
	if m == nil || (m[2] == "") != (m[5] == "") {
		return antiderivative{}, false
	}
	k, ok := parseRat(m[1])
	if !ok {
		return antiderivative{}, false
	}
	if m[3] != "" {
		d, ok := parseRat(m[3])
		if !ok || d.Sign() == 0 {
			return antiderivative{}, false
		}
		k.Quo(k, d)
	}
	n := big.NewRat(1, 1)
	if m[4] != "" {
		if n, ok = parseRat(m[4]); !ok {
			return antiderivative{}, false
		}
	}
	return powerRule(k, n.Neg(n), p.v), true
}

func integrateTerm(term string, p *termPatterns) (antiderivative, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return antiderivative{}, false
	}
	for _, rule := range integralRules {
		if a, ok := rule.apply(term, p); ok {
			return a, true
		}
	}
	return antiderivative{}, false
}

// splitTerms splits engine text on top-level " + " and " - ". Subtracted
// terms keep a leading "-".
func splitTerms(text string) []string {
	var terms []string
	depth, start, sign := 0, 0, ""
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ' ':
			if depth != 0 || i+3 > len(text) {
				continue
			}
			if op := text[i : i+3]; op == " + " || op == " - " {
				terms = append(terms, sign+text[start:i])
				sign = ""
				if op == " - " {
					sign = "-"
				}
				start = i + 3
				i += 2
			}
		}
	}
	return append(terms, sign+text[start:])
}

// ============================================================
// Integrate
// ============================================================

// IntegralNotation renders an unevaluated integral of a LaTeX body.
func IntegralNotation(body, v string) string {
	return `\int ` + body + ` \, d` + v
}

// Integrate returns an antiderivative of expr in LaTeX with a trailing
// "+ C". Terms no rule matches are left as integral notation; an
// unparsable or wholly unmatched expression becomes notation.
func (s *Solver) Integrate(expr, v string) string {
	e, err := s.engine.Parse(expr)
	if err != nil {
		s.log().Debug("integrand did not parse", "expr", expr, "error", err)
		return IntegralNotation(ToLatex(expr), v)
	}
	text := s.engine.String(s.engine.Simplify(e))
	p := patternsFor(v)

	if !s.integrable(text, v) {
		s.log().Debug("integrand is not finite", "expr", text)
		return IntegralNotation(ToLatex(text), v)
	}
	if a, ok := integrateTerm(text, p); ok {
		if out := a.String(); out != "0" {
			return out + " + C"
		}
		return "C"
	}
	terms := splitTerms(text)
	if len(terms) == 1 {
		s.log().Debug("no integration rule matched", "expr", text, "variable", v)
		return IntegralNotation(ToLatex(text), v)
	}

	var sb strings.Builder
	for i, term := range terms {
		part := IntegralNotation(ToLatex(term), v)
		if !s.integrable(term, v) {
			s.log().Debug("integrand term is not finite", "term", term)
		} else if a, ok := integrateTerm(term, p); ok {
			part = a.String()
		} else {
			s.log().Debug("no integration rule matched term", "term", term, "variable", v)
		}
		switch {
		case i == 0:
			sb.WriteString(part)
		case strings.HasPrefix(part, "-"):
			sb.WriteString(" - " + part[1:])
		default:
			sb.WriteString(" + " + part)
		}
	}
	return sb.String() + " + C"
}

// integrable rejects numeric terms free of v that do not evaluate to a
// finite value, such as 0 ^ (-1). Terms naming other symbols pass.
func (s *Solver) integrable(term, v string) bool {
	if mentions(term, v) {
		return true
	}
	e, err := s.engine.Parse(term)
	if err != nil {
		return false
	}
	if len(engine.FreeSymbols(e)) > 0 {
		return true
	}
	_, err = s.engine.Evaluate(e, nil)
	return err == nil
}
