// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by symmetry checks before EigenSym.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultRCond is the relative singular-value cutoff of PseudoInverse.
	// Singular values below RCond*max(rows,cols)*σ_max are treated as zero.
	DefaultRCond = 1e-15
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRCondInvalid   = "matrix: WithRCond: rcond must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps   float64 // symmetry tolerance
	rcond float64 // pseudoinverse cutoff
}

// WithEpsilon sets the tolerance of symmetry checks.
// Panics with a stable message when eps is negative or non-finite.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRCond sets the relative cutoff used by PseudoInverse.
// Panics with a stable message when rcond is negative or non-finite.
func WithRCond(rcond float64) Option {
	if isNonFinite(rcond) || rcond < 0 {
		panic(panicRCondInvalid)
	}

	return func(o *Options) { o.rcond = rcond }
}

// gatherOptions resolves defaults and applies setters in order.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, rcond: DefaultRCond}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
