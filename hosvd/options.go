// SPDX-License-Identifier: MIT

package hosvd

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

// Method selects how a mode basis is computed.
type Method int

const (
	// MethodSVD takes left singular vectors of the unfolding.
	MethodSVD Method = iota
	// MethodEig takes eigenvectors of the unfolding's Gram matrix.
	MethodEig
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodSVD:
		return "svd"
	case MethodEig:
		return "eig"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Valid reports whether m is a known method.
func (m Method) Valid() bool { return m == MethodSVD || m == MethodEig }

// DefaultMethod is used when WithMethod is not given.
const DefaultMethod = MethodSVD

const panicMethodInvalid = "hosvd: WithMethod: unknown method"

// Option configures Decompose.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	method       Method
	parallel     bool
	zeroFallback bool
	basis        func(*tensor.BackwardUnfolding, int, Method) (*matrix.Dense, error)
}

// WithMethod selects the SVD or eigen path. Panics on an unknown method.
func WithMethod(m Method) Option {
	if !m.Valid() {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

// WithParallel computes the mode bases concurrently.
func WithParallel() Option {
	return func(o *Options) { o.parallel = true }
}

// WithZeroFallback replaces a non-converged basis by zeros and reports the
// mode in Result.Degraded instead of failing.
func WithZeroFallback() Option {
	return func(o *Options) { o.zeroFallback = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{method: DefaultMethod, basis: ModeBasis}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
