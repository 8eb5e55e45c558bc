package gosolve

import (
	"regexp"
	"strings"
)

// ============================================================
// Engine text → LaTeX
// ============================================================

var (
	tightFractionRe = regexp.MustCompile(`(\d+)/(\d+)`)
	funcNameRe      = regexp.MustCompile(`(^|[^A-Za-z\\])(log10|asin|acos|atan|sin|cos|tan|cot|sec|csc|log|exp)\b`)
	symbolNameRe    = regexp.MustCompile(`\b(pi|Infinity|alpha|beta|gamma|delta|epsilon|zeta|eta|theta|iota|kappa|lambda|mu|nu|xi|rho|sigma|tau|phi|chi|psi|omega)\b`)
	caretRe         = regexp.MustCompile(`\s*\^\s*`)
	bareExponentRe  = regexp.MustCompile(`\^(-?[A-Za-z0-9.]+)`)
	numberTimesRe   = regexp.MustCompile(`([0-9}])\s*\*\s*([A-Za-z\\(])`)
	letterTimesRe   = regexp.MustCompile(`(\\?[A-Za-z]+)\s*\*\s*([A-Za-z\\])`)
	parenTimesRe    = regexp.MustCompile(`\)\s*\*\s*([A-Za-z\\])`)
	timesRe         = regexp.MustCompile(`\s*\*\s*`)
)

var latexFuncNames = map[string]string{
	"log":   "ln",
	"log10": "log",
	"asin":  "arcsin",
	"acos":  "arccos",
	"atan":  "arctan",
}

var latexSymbolNames = map[string]string{
	"pi":       `\pi`,
	"Infinity": `\infty`,
}

// ToLatex converts engine text back to LaTeX: root and absolute-value calls
// become \sqrt and \left|…\right|, function names become operators, powers
// are braced, and explicit multiplication collapses to juxtaposition where
// unambiguous and \cdot elsewhere.
func ToLatex(text string) string {
	out := tightFractionRe.ReplaceAllString(text, `\frac{$1}{$2}`)

	out = rewriteCalls(out, "nthRoot", func(args []string) string {
		if len(args) != 2 {
			return `\sqrt{` + strings.Join(args, ", ") + `}`
		}
		return `\sqrt[` + args[1] + `]{` + args[0] + `}`
	})
	out = rewriteCalls(out, "sqrt", func(args []string) string {
		return `\sqrt{` + strings.Join(args, ", ") + `}`
	})
	out = rewriteCalls(out, "abs", func(args []string) string {
		return `\left|` + strings.Join(args, ", ") + `\right|`
	})

	out = funcNameRe.ReplaceAllStringFunc(out, func(m string) string {
		sub := funcNameRe.FindStringSubmatch(m)
		name := sub[2]
		if mapped, ok := latexFuncNames[name]; ok {
			name = mapped
		}
		return sub[1] + `\` + name
	})
	out = symbolNameRe.ReplaceAllStringFunc(out, func(m string) string {
		if mapped, ok := latexSymbolNames[m]; ok {
			return mapped
		}
		return `\` + m
	})

	out = caretRe.ReplaceAllString(out, "^")
	out = braceExponents(out)
	out = bareExponentRe.ReplaceAllString(out, "^{$1}")

	out = numberTimesRe.ReplaceAllString(out, "$1$2")
	for {
		next := letterTimesRe.ReplaceAllStringFunc(out, func(m string) string {
			sub := letterTimesRe.FindStringSubmatch(m)
			if sub[2] == `\` || strings.HasPrefix(sub[1], `\`) {
				return sub[1] + " " + sub[2]
			}
			return sub[1] + sub[2]
		})
		if next == out {
			break
		}
		out = next
	}
	out = parenTimesRe.ReplaceAllString(out, ")$1")
	return timesRe.ReplaceAllString(out, ` \cdot `)
}

// rewriteCalls replaces every name(args) call, last occurrence first, with
// render(args).
func rewriteCalls(s, name string, render func(args []string) string) string {
	limit := len(s)
	for {
		i := strings.LastIndex(s[:limit], name+"(")
		if i < 0 {
			return s
		}
		if i > 0 && (isASCIILetter(s[i-1]) || s[i-1] == '\\') {
			limit = i
			continue
		}
		open := i + len(name)
		end, ok := matchDelim(s, open, '(', ')')
		if !ok {
			return s
		}
		s = s[:i] + render(splitArgs(s[open+1:end])) + s[end+1:]
		limit = i
	}
}

// splitArgs splits a call's argument list on top-level commas.
func splitArgs(s string) []string {
	var args []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '{', '[':
			depth++
		case ')', '}', ']':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(args, strings.TrimSpace(s[start:]))
}

// braceExponents turns ^(A) into ^{A}.
func braceExponents(s string) string {
	for {
		i := strings.Index(s, "^(")
		if i < 0 {
			return s
		}
		end, ok := matchDelim(s, i+1, '(', ')')
		if !ok {
			return s
		}
		s = s[:i] + "^{" + s[i+2:end] + "}" + s[end+1:]
	}
}

func isASCIILetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
