// SPDX-License-Identifier: MIT

package cp

import (
	"fmt"
	"math"
)

// Init selects how the factors are seeded before the first sweep.
type Init int

const (
	// InitHOSVD seeds mode k with the leading min(R, I_k) left singular vectors
	// of the mode-k unfolding, padded with random columns when R > I_k.
	InitHOSVD Init = iota
	// InitRandom seeds with uniform [0, 1) entries (see WithSeed).
	InitRandom
	// InitDCT seeds with leading DCT-II vectors, padded like InitHOSVD.
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
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-6
	DefaultInit          = InitHOSVD
	DefaultRestarts      = 1

	// NoTolerance disables the fit test: exactly MaxIterations sweeps run.
	NoTolerance = -1.0
)

const (
	panicMaxIterations = "cp: WithMaxIterations: n must be >= 0"
	panicTolerance     = "cp: WithTolerance: tol must be finite and >= 0, or NoTolerance"
	panicInit          = "cp: WithInit: unknown init"
	panicRestarts      = "cp: WithRestarts: n must be >= 1"
)

// Sweep reports the state after one completed ALS sweep.
type Sweep struct {
	Restart   int // 0 unless WithRestarts(n > 1)
	Iteration int // 1-based
	Fit       float64
	Delta     float64 // |Fit - previous fit|
}

// Option configures HOPM and IncrementalHOPM.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	maxIter  int
	tol      float64
	init     Init
	seed     int64
	restarts int
	observer func(Sweep)
}

// WithMaxIterations bounds the sweeps.
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

// WithSeed seeds every random draw. Zero selects tensor.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRestarts runs n independent fits and keeps the best.
func WithRestarts(n int) Option {
	if n < 1 {
		panic(panicRestarts)
	}

	return func(o *Options) { o.restarts = n }
}

// WithObserver registers fn to be called after every sweep. With more than one
// restart fn is called from several goroutines and must be safe for that.
func WithObserver(fn func(Sweep)) Option {
	return func(o *Options) { o.observer = fn }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		maxIter:  DefaultMaxIterations,
		tol:      DefaultTolerance,
		init:     DefaultInit,
		restarts: DefaultRestarts,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
