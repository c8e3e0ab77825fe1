// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/circuitry/matrix"
)

type config struct {
	eps    float64
	logger *slog.Logger
}

// Option configures a SimultaneousEquations set.
type Option func(*config)

// WithEpsilon sets the magnitude under which a pivot or residual counts as
// zero. Panics if eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(fmt.Sprintf("equation: WithEpsilon(%v): eps must be finite, non-negative", eps))
	}
	return func(c *config) { c.eps = eps }
}

// WithLogger routes solver debug logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func gather(opts ...Option) config {
	c := config{eps: matrix.DefaultEpsilon, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
