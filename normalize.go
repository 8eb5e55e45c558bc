package gosolve

import (
	"regexp"
	"strings"
)

// ============================================================
// LaTeX normalization
// ============================================================

var (
	delimiterReplacer = strings.NewReplacer(
		"$$", "", "$", "",
		`\left`, "", `\right`, "",
		`\,`, "", `\;`, "", `\:`, "", `\!`, "", `\ `, "",
	)
	commandRe    = regexp.MustCompile(`\\([A-Za-z]+)`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// commandNames maps LaTeX control words to engine tokens. Words not listed
// lose their backslash and pass through unchanged.
var commandNames = map[string]string{
	"cdot": "*", "times": "*", "div": "/",
	// The minus branch of ± is not modelled.
	"pm": "+",

	"sin": "sin", "cos": "cos", "tan": "tan", "cot": "cot", "sec": "sec", "csc": "csc",
	"arcsin": "asin", "arccos": "acos", "arctan": "atan",
	"ln": "log", "log": "log10", "exp": "exp",
	"pi": "pi", "e": "e", "infty": "Infinity",
	"quad": "", "qquad": "",

	"alpha": "alpha", "beta": "beta", "gamma": "gamma", "delta": "delta",
	"epsilon": "epsilon", "varepsilon": "epsilon", "zeta": "zeta", "eta": "eta",
	"theta": "theta", "vartheta": "theta", "iota": "iota", "kappa": "kappa",
	"lambda": "lambda", "mu": "mu", "nu": "nu", "xi": "xi", "rho": "rho",
	"sigma": "sigma", "tau": "tau", "phi": "phi", "varphi": "phi", "chi": "chi",
	"psi": "psi", "omega": "omega",
}

// Implicit multiplication rules, applied in order until the text is stable.
// Function calls are hidden behind placeholder runes first so that "sin("
// and "log10" are not split.
var implicitRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(\d)([a-zA-Z])`), "$1*$2"},
	{regexp.MustCompile(`([a-zA-Z])(\d)`), "$1*$2"},
	{regexp.MustCompile(`\)(\d)`), ")*$1"},
	{regexp.MustCompile(`(\d)\(`), "$1*("},
	{regexp.MustCompile(`\)\(`), ")*("},
	{regexp.MustCompile(`([a-zA-Z])\(`), "$1*("},
	{regexp.MustCompile(`\)([a-zA-Z])`), ")*$1"},
	{regexp.MustCompile(`([a-zA-Z0-9)])([\x{E000}-\x{E0FF}])`), "$1*$2"},
}

// callNames are protected from implicit multiplication when followed by "(".
// Longer names precede their prefixes.
var callNames = []string{
	"nthRoot", "sqrt", "log10", "asin", "acos", "atan",
	"sin", "cos", "tan", "cot", "sec", "csc", "log", "exp", "abs",
}

var callRe = regexp.MustCompile(`(` + strings.Join(callNames, "|") + `)\(`)

const placeholderBase = '\uE000'

// Normalize converts a LaTeX string into plain text the engine can parse.
// Unrecognized constructs pass through and are left for the parser to
// reject. Normalize is idempotent on its own output.
func Normalize(latex string) string {
	expr := delimiterReplacer.Replace(latex)
	expr = rewriteFracs(expr)
	expr = rewriteRoots(expr)
	expr = rewriteGroups(expr, "^{", "^(", ")")
	expr = rewriteGroups(expr, "_{", "", "")
	expr = rewriteCommands(expr)
	expr = strings.ReplaceAll(expr, `\`, "")
	expr = whitespaceRe.ReplaceAllString(expr, "")
	return insertMultiplication(expr)
}

// rewriteCommands maps control words through commandNames. A constant or
// Greek letter directly followed by another identifier gets an explicit
// "*" so that "\pi x" does not collapse into the single name "pix".
func rewriteCommands(expr string) string {
	var sb strings.Builder
	last := 0
	for _, loc := range commandRe.FindAllStringSubmatchIndex(expr, -1) {
		sb.WriteString(expr[last:loc[0]])
		last = loc[1]
		repl, ok := commandNames[expr[loc[2]:loc[3]]]
		if !ok {
			sb.WriteString(expr[loc[0]:loc[1]])
			continue
		}
		sb.WriteString(repl)
		if symbolNames[repl] && startsIdentifier(expr[loc[1]:]) {
			sb.WriteString("*")
		}
	}
	sb.WriteString(expr[last:])
	return sb.String()
}

// symbolNames are the command targets that name a value rather than an
// operator or a function.
var symbolNames = map[string]bool{"pi": true, "e": true, "Infinity": true}

func init() {
	for _, name := range commandNames {
		if greekNames[name] {
			symbolNames[name] = true
		}
	}
}

// startsIdentifier reports whether rest, after spaces, begins with a letter
// or with a control word that becomes an identifier.
func startsIdentifier(rest string) bool {
	rest = strings.TrimLeft(rest, " \t\n")
	switch {
	case rest == "":
		return false
	case isASCIILetter(rest[0]):
		return true
	case rest[0] != '\\':
		return false
	}
	m := commandRe.FindStringSubmatch(rest)
	if m == nil || !strings.HasPrefix(rest, m[0]) {
		return false
	}
	repl, ok := commandNames[m[1]]
	return !ok || repl != "" && letterRunRe.FindString(repl) == repl
}

func insertMultiplication(expr string) string {
	expr = callRe.ReplaceAllStringFunc(expr, func(m string) string {
		name := m[:len(m)-1]
		for i, n := range callNames {
			if n == name {
				return string(rune(placeholderBase+i)) + "("
			}
		}
		return m
	})
	for {
		next := expr
		for _, rule := range implicitRules {
			next = rule.re.ReplaceAllString(next, rule.repl)
		}
		if next == expr {
			break
		}
		expr = next
	}
	var sb strings.Builder
	for _, r := range expr {
		if i := int(r - placeholderBase); i >= 0 && i < len(callNames) {
			sb.WriteString(callNames[i])
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// rewriteFracs replaces \frac{A}{B} with ((A)/(B)), innermost last
// occurrence first, until none remain. Single-token arguments (\frac12)
// are accepted.
func rewriteFracs(expr string) string {
	for {
		i := strings.LastIndex(expr, `\frac`)
		if i < 0 {
			return expr
		}
		num, j, ok := readArg(expr, i+len(`\frac`))
		if !ok {
			return expr
		}
		den, k, ok := readArg(expr, j)
		if !ok {
			return expr
		}
		expr = expr[:i] + "((" + num + ")/(" + den + "))" + expr[k:]
	}
}

// rewriteRoots replaces \sqrt{A} with sqrt(A) and \sqrt[n]{A} with
// nthRoot(A, n).
func rewriteRoots(expr string) string {
	for {
		i := strings.LastIndex(expr, `\sqrt`)
		if i < 0 {
			return expr
		}
		j := skipSpaces(expr, i+len(`\sqrt`))
		index := ""
		if j < len(expr) && expr[j] == '[' {
			end := strings.IndexByte(expr[j:], ']')
			if end < 0 {
				return expr
			}
			index = expr[j+1 : j+end]
			j += end + 1
		}
		arg, k, ok := readArg(expr, j)
		if !ok {
			return expr
		}
		repl := "sqrt(" + arg + ")"
		if index != "" {
			repl = "nthRoot(" + arg + ", " + index + ")"
		}
		expr = expr[:i] + repl + expr[k:]
	}
}

// rewriteGroups replaces every open{A} with open'A close, matching braces.
func rewriteGroups(expr, open, replOpen, replClose string) string {
	for {
		i := strings.Index(expr, open)
		if i < 0 {
			return expr
		}
		end, ok := matchBrace(expr, i+len(open)-1)
		if !ok {
			return expr
		}
		inner := expr[i+len(open) : end]
		if replOpen == "" {
			inner = ""
		}
		expr = expr[:i] + replOpen + inner + replClose + expr[end+1:]
	}
}

// readArg reads one macro argument starting at i: a braced group, a
// control word, or a single character. It returns the argument without
// braces and the index just past it.
func readArg(s string, i int) (string, int, bool) {
	i = skipSpaces(s, i)
	if i >= len(s) {
		return "", i, false
	}
	switch c := s[i]; {
	case c == '{':
		end, ok := matchBrace(s, i)
		if !ok {
			return "", i, false
		}
		return s[i+1 : end], end + 1, true
	case c == '}':
		return "", i, false
	case c == '\\':
		if loc := commandRe.FindStringIndex(s[i:]); loc != nil && loc[0] == 0 {
			return s[i : i+loc[1]], i + loc[1], true
		}
	}
	return s[i : i+1], i + 1, true
}

// matchBrace returns the index of the brace closing the one at open.
func matchBrace(s string, open int) (int, bool) { return matchDelim(s, open, '{', '}') }

func matchDelim(s string, open int, l, r byte) (int, bool) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case l:
			depth++
		case r:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	return i
}
