// SPDX-License-Identifier: MIT

// Package fitplot records the per-sweep fit of HOOI and HOPM runs and renders
// the curves with gonum/plot.
//
// A Recorder hands out observers for tucker.WithObserver and cp.WithObserver;
// Render writes one line per recorded run to any io.Writer in PNG, SVG or PDF.
// WithResidual plots 1 − fit on a logarithmic axis, which shows the tail of a
// converging run better than the fit itself.
package fitplot
