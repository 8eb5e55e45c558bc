package gosolve

import (
	"regexp"

	"github.com/njchilds90/gosolve/engine"
)

// DefaultVariable is reported when an expression mentions no unknown.
const DefaultVariable = "x"

var letterRunRe = regexp.MustCompile(`[A-Za-z]+`)

var greekNames = map[string]bool{
	"alpha": true, "beta": true, "gamma": true, "delta": true, "epsilon": true,
	"zeta": true, "eta": true, "theta": true, "iota": true, "kappa": true,
	"lambda": true, "mu": true, "nu": true, "xi": true, "rho": true,
	"sigma": true, "tau": true, "phi": true, "chi": true, "psi": true, "omega": true,
}

// DetectVariable returns the unknown of a normalized expression. Function
// names and named constants are removed from each letter run first, longest
// name first, so "pix" yields "x" and "sinx" yields "x". The first remaining
// letter wins; a spelled-out Greek letter is returned whole.
func DetectVariable(normalized string) string {
	for _, run := range letterRunRe.FindAllString(normalized, -1) {
		for i := 0; i < len(run); {
			name := knownNameAt(run, i)
			switch {
			case name == "":
				return run[i : i+1]
			case greekNames[name]:
				return name
			}
			i += len(name)
		}
	}
	return DefaultVariable
}

// knownNameAt returns the longest function, constant or Greek name that
// starts at run[i], or "" when none does.
func knownNameAt(run string, i int) string {
	for end := len(run); end > i; end-- {
		name := run[i:end]
		if engine.IsFunction(name) || engine.IsConstant(name) || greekNames[name] {
			return name
		}
	}
	return ""
}
