// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvcalc/angle"
	"github.com/katalvlaran/lvcalc/format"
)

// MaxExpArgument is the largest x accepted by Exp.
const MaxExpArgument = 700

// MaxFactorial is the largest n whose factorial fits in a float64.
const MaxFactorial = 170

// Result is a computed value with its history line.
type Result struct {
	Value float64
	Line  string
}

// result formats v and builds the "<label> = <v>" line.
// A non-finite v is reported as format.ErrNotFinite.
func result(v float64, label string) (Result, error) {
	s, err := format.Format(v)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", label, err)
	}

	return Result{Value: v, Line: label + " = " + s}, nil
}

func trigLabel(name string, x float64, u angle.Unit) string {
	if u == angle.Degrees {
		return fmt.Sprintf("%s(%s°)", name, format.Plain(x))
	}

	return fmt.Sprintf("%s(%s)", name, format.Plain(x))
}

// Sin returns sin(x) with x in unit u.
func Sin(x float64, u angle.Unit) (Result, error) {
	return result(math.Sin(u.ToRadians(x)), trigLabel("sin", x, u))
}

// Cos returns cos(x) with x in unit u.
func Cos(x float64, u angle.Unit) (Result, error) {
	return result(math.Cos(u.ToRadians(x)), trigLabel("cos", x, u))
}

// Tan returns tan(x) with x in unit u. There is no domain restriction:
// tan(90°) is a very large finite number in float64.
func Tan(x float64, u angle.Unit) (Result, error) {
	return result(math.Tan(u.ToRadians(x)), trigLabel("tan", x, u))
}

// inverseTrig shares the output-unit handling of Asin, Acos and Atan.
func inverseTrig(name string, x float64, rad float64, u angle.Unit) (Result, error) {
	v := u.FromRadians(rad)
	r, err := result(v, fmt.Sprintf("%s(%s)", name, format.Plain(x)))
	if err != nil {
		return Result{}, err
	}
	if u == angle.Degrees {
		r.Line += "°"
	}

	return r, nil
}

// Asin returns arcsin(x) expressed in unit u.
//
// Errors:
//   - ErrInvalidDomain if |x| > 1.
func Asin(x float64, u angle.Unit) (Result, error) {
	if x < -1 || x > 1 {
		return Result{}, fmt.Errorf("asin(%s): %w", format.Plain(x), ErrInvalidDomain)
	}

	return inverseTrig("asin", x, math.Asin(x), u)
}

// Acos returns arccos(x) expressed in unit u.
//
// Errors:
//   - ErrInvalidDomain if |x| > 1.
func Acos(x float64, u angle.Unit) (Result, error) {
	if x < -1 || x > 1 {
		return Result{}, fmt.Errorf("acos(%s): %w", format.Plain(x), ErrInvalidDomain)
	}

	return inverseTrig("acos", x, math.Acos(x), u)
}

// Atan returns arctan(x) expressed in unit u.
func Atan(x float64, u angle.Unit) (Result, error) {
	return inverseTrig("atan", x, math.Atan(x), u)
}

// Sqrt returns √x.
//
// Errors:
//   - ErrNegativeDomain if x < 0.
func Sqrt(x float64) (Result, error) {
	if x < 0 {
		return Result{}, fmt.Errorf("√(%s): %w", format.Plain(x), ErrNegativeDomain)
	}

	return result(math.Sqrt(x), fmt.Sprintf("√(%s)", format.Plain(x)))
}

// Log10 returns the common logarithm of x.
//
// Errors:
//   - ErrNonPositiveDomain if x ≤ 0.
func Log10(x float64) (Result, error) {
	if x <= 0 {
		return Result{}, fmt.Errorf("log(%s): %w", format.Plain(x), ErrNonPositiveDomain)
	}

	return result(math.Log10(x), fmt.Sprintf("log(%s)", format.Plain(x)))
}

// Ln returns the natural logarithm of x.
//
// Errors:
//   - ErrNonPositiveDomain if x ≤ 0.
func Ln(x float64) (Result, error) {
	if x <= 0 {
		return Result{}, fmt.Errorf("ln(%s): %w", format.Plain(x), ErrNonPositiveDomain)
	}

	return result(math.Log(x), fmt.Sprintf("ln(%s)", format.Plain(x)))
}

// Log returns the logarithm of x in the given base.
//
// Errors:
//   - ErrNonPositiveDomain if x ≤ 0.
//   - ErrInvalidDomain if base ≤ 0 or base == 1.
func Log(x, base float64) (Result, error) {
	label := fmt.Sprintf("log_%s(%s)", format.Plain(base), format.Plain(x))
	if x <= 0 {
		return Result{}, fmt.Errorf("%s: %w", label, ErrNonPositiveDomain)
	}
	if base <= 0 || base == 1 {
		return Result{}, fmt.Errorf("%s: base: %w", label, ErrInvalidDomain)
	}

	return result(math.Log(x)/math.Log(base), label)
}

// Exp returns e^x.
//
// Errors:
//   - ErrOverflow if x > MaxExpArgument.
func Exp(x float64) (Result, error) {
	if x > MaxExpArgument {
		return Result{}, fmt.Errorf("e^%s: %w", format.Plain(x), ErrOverflow)
	}

	return result(math.Exp(x), "e^"+format.Plain(x))
}

// Sinh returns the hyperbolic sine of x.
func Sinh(x float64) (Result, error) {
	return result(math.Sinh(x), fmt.Sprintf("sinh(%s)", format.Plain(x)))
}

// Cosh returns the hyperbolic cosine of x.
func Cosh(x float64) (Result, error) {
	return result(math.Cosh(x), fmt.Sprintf("cosh(%s)", format.Plain(x)))
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float64) (Result, error) {
	return result(math.Tanh(x), fmt.Sprintf("tanh(%s)", format.Plain(x)))
}

// Negate returns -x.
func Negate(x float64) float64 { return -x }

// Pi returns π.
func Pi() float64 { return math.Pi }

// E returns Euler's number.
func E() float64 { return math.E }
