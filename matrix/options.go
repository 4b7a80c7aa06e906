// SPDX-License-Identifier: MIT

package matrix

import "math"

const (
	// DefaultEpsilon is the |det| threshold below which Inverse reports ErrSingular.
	DefaultEpsilon = 1e-10

	// DefaultValidateNaNInf toggles finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	eps            float64
	validateNaNInf bool
}

// WithEpsilon sets the singularity tolerance used by Inverse.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf lets NewFromRows and Set accept NaN and ±Inf.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// DefaultOptions returns the package defaults.
func DefaultOptions() Options {
	return Options{eps: DefaultEpsilon, validateNaNInf: DefaultValidateNaNInf}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
