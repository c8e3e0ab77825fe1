// SPDX-License-Identifier: MIT

package matrix

import "math"

// DefaultEpsilon is the magnitude under which a value counts as zero during
// elimination.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Options is the resolved configuration of a kernel call.
type Options struct {
	eps float64
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// WithEpsilon sets the zero tolerance. Panics if eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
