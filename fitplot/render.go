// SPDX-License-Identifier: MIT

package fitplot

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Defaults.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
	DefaultFormat = "png"
	DefaultTitle  = "fit per sweep"

	// residualFloor keeps exact fits representable on the log axis.
	residualFloor = 1e-16
)

const panicSize = "fitplot: WithSize: width and height must be > 0"

// Option configures Render and Save.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	title         string
	width, height vg.Length
	format        string
	residual      bool
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *Options) { o.title = title }
}

// WithSize sets the canvas size.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic(panicSize)
	}

	return func(o *Options) { o.width, o.height = width, height }
}

// WithFormat selects the Render encoding ("png", "svg", "pdf", ...). Save
// takes the format from the file extension instead.
func WithFormat(format string) Option {
	return func(o *Options) { o.format = strings.ToLower(format) }
}

// WithResidual plots 1 − fit on a log scale instead of the fit.
func WithResidual() Option {
	return func(o *Options) { o.residual = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		title:  DefaultTitle,
		width:  DefaultWidth,
		height: DefaultHeight,
		format: DefaultFormat,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// newPlot builds the line plot. Empty series are skipped.
func newPlot(series []Series, o Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "sweep"
	p.Y.Label.Text = "fit"
	if o.residual {
		p.Y.Label.Text = "1 - fit"
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	drawn := 0
	for _, s := range series {
		if len(s.Fits) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(s.Fits))
		for i, f := range s.Fits {
			pts[i].X = float64(i + 1)
			pts[i].Y = f
			if o.residual {
				pts[i].Y = math.Max(1-f, residualFloor)
			}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Name, err)
		}
		line.Color = plotutil.Color(drawn)
		line.Dashes = plotutil.Dashes(drawn)
		p.Add(line)
		p.Legend.Add(s.Name, line)
		drawn++
	}
	if drawn == 0 {
		return nil, ErrNoSeries
	}

	return p, nil
}

// encoder builds the plot and resolves its encoder for o.format.
func encoder(series []Series, o Options) (io.WriterTo, error) {
	p, err := newPlot(series, o)
	if err != nil {
		return nil, err
	}
	wt, err := p.WriterTo(o.width, o.height, o.format)
	if err != nil {
		return nil, fmt.Errorf("%q: %v: %w", o.format, err, ErrFormat)
	}

	return wt, nil
}

// Render writes the plot of series to w in the configured format.
//
// Errors:
//   - ErrNoSeries when every series is empty; ErrFormat for an unknown format.
func Render(w io.Writer, series []Series, opts ...Option) error {
	wt, err := encoder(series, gatherOptions(opts...))
	if err != nil {
		return fitplotErrorf("Render", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fitplotErrorf("Render", err)
	}

	return nil
}

// Save renders series to the file at path, choosing the format from its
// extension. Nothing is created when the plot cannot be encoded.
func Save(path string, series []Series, opts ...Option) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return fitplotErrorf("Save", fmt.Errorf("%q has no extension: %w", path, ErrFormat))
	}
	wt, err := encoder(series, gatherOptions(append(opts, WithFormat(ext))...))
	if err != nil {
		return fitplotErrorf("Save", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fitplotErrorf("Save", err)
	}
	if _, err = wt.WriteTo(f); err != nil {
		_ = f.Close()
		return fitplotErrorf("Save", err)
	}

	return f.Close()
}
