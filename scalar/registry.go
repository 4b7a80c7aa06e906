// SPDX-License-Identifier: MIT

package scalar

import (
	"sort"

	"github.com/katalvlaran/lvcalc/angle"
)

// Func is the uniform shape of a single-argument function. Functions that do
// not depend on the angle unit ignore u.
type Func func(x float64, u angle.Unit) (Result, error)

func ignoreUnit(f func(float64) (Result, error)) Func {
	return func(x float64, _ angle.Unit) (Result, error) { return f(x) }
}

var registry = map[string]Func{
	"sin":  Sin,
	"cos":  Cos,
	"tan":  Tan,
	"asin": Asin,
	"acos": Acos,
	"atan": Atan,
	"sqrt": ignoreUnit(Sqrt),
	"log":  ignoreUnit(Log10),
	"ln":   ignoreUnit(Ln),
	"exp":  ignoreUnit(Exp),
	"fact": ignoreUnit(Factorial),
	"sinh": ignoreUnit(Sinh),
	"cosh": ignoreUnit(Cosh),
	"tanh": ignoreUnit(Tanh),
}

// Lookup returns the function registered under name.
func Lookup(name string) (Func, bool) {
	f, ok := registry[name]

	return f, ok
}

// Names lists the registered function names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
