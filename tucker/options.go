// SPDX-License-Identifier: MIT

package tucker

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtensor/hosvd"
)

// Init selects how the bases are seeded before the first sweep.
type Init int

const (
	// InitHOSVD seeds with the truncated HOSVD of the data.
	InitHOSVD Init = iota
	// InitRandom seeds with random orthonormal bases (see WithSeed).
	InitRandom
	// InitDCT seeds with the leading DCT-II basis vectors.
	InitDCT
)

// String returns the init name.
func (i Init) String() string {
	switch i {
	case InitHOSVD:
		return "hosvd"
	case InitRandom:
		return "random"
	case InitDCT:
		return "dct"
	default:
		return fmt.Sprintf("Init(%d)", int(i))
	}
}

// Defaults.
const (
	// DefaultMaxIterations bounds the number of ALS sweeps.
	DefaultMaxIterations = 50

	// DefaultTolerance is the fit change below which a run is converged.
	DefaultTolerance = 1e-4

	// NoTolerance disables the fit test: exactly MaxIterations sweeps run.
	NoTolerance = -1.0

	// DefaultInit is the default seeding strategy.
	DefaultInit = InitHOSVD
)

const (
	panicMaxIterations = "tucker: WithMaxIterations: n must be >= 0"
	panicTolerance     = "tucker: WithTolerance: tol must be finite and >= 0, or NoTolerance"
	panicInit          = "tucker: WithInit: unknown init"
	panicMethod        = "tucker: WithMethod: unknown method"
)

// Sweep reports the state after one completed ALS sweep.
type Sweep struct {
	Iteration int     // 1-based
	Fit       float64 // fit after the sweep
	Delta     float64 // |Fit - previous fit|
}

// Option configures HOOI and IncrementalHOOI.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	maxIter  int
	tol      float64
	init     Init
	method   hosvd.Method
	seed     int64
	pinvCore bool
	observer func(Sweep)
}

// WithMaxIterations bounds the sweeps. Zero keeps the seeded bases.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterations)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithTolerance sets the convergence threshold on |Δfit|. NoTolerance is accepted.
func WithTolerance(tol float64) Option {
	if tol != NoTolerance && (math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0) {
		panic(panicTolerance)
	}

	return func(o *Options) { o.tol = tol }
}

// WithNoTolerance is WithTolerance(NoTolerance).
func WithNoTolerance() Option { return WithTolerance(NoTolerance) }

// WithInit selects the seeding strategy.
func WithInit(i Init) Option {
	if i != InitHOSVD && i != InitRandom && i != InitDCT {
		panic(panicInit)
	}

	return func(o *Options) { o.init = i }
}

// WithMethod selects the per-mode basis solver (SVD or Gram eigenvectors).
func WithMethod(m hosvd.Method) Option {
	if !m.Valid() {
		panic(panicMethod)
	}

	return func(o *Options) { o.method = m }
}

// WithSeed seeds InitRandom. Zero selects tensor.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithPseudoinverseCore derives the final core with pseudoinverses instead of
// transposes. Both agree for orthonormal bases.
func WithPseudoinverseCore() Option {
	return func(o *Options) { o.pinvCore = true }
}

// WithObserver registers fn to be called after every sweep.
func WithObserver(fn func(Sweep)) Option {
	return func(o *Options) { o.observer = fn }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		maxIter: DefaultMaxIterations,
		tol:     DefaultTolerance,
		init:    DefaultInit,
		method:  hosvd.DefaultMethod,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
