// SPDX-License-Identifier: MIT

package fitplot

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvtensor/cp"
	"github.com/katalvlaran/lvtensor/tucker"
)

// Series is the fit history of one run.
type Series struct {
	Name string
	Fits []float64
}

// Recorder collects fit histories by run name. It is safe for concurrent use,
// so it may observe HOPM restarts.
type Recorder struct {
	mu     sync.Mutex
	order  []string
	series map[string][]float64
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{series: make(map[string][]float64)}
}

// Add appends fit to the series called name, creating it on first use.
func (r *Recorder) Add(name string, fit float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.series[name]; !ok {
		r.order = append(r.order, name)
	}
	r.series[name] = append(r.series[name], fit)
}

// Tucker returns an observer for tucker.WithObserver.
func (r *Recorder) Tucker(name string) func(tucker.Sweep) {
	return func(s tucker.Sweep) { r.Add(name, s.Fit) }
}

// CP returns an observer for cp.WithObserver. Restarts after the first are
// recorded as "name#i".
func (r *Recorder) CP(name string) func(cp.Sweep) {
	return func(s cp.Sweep) {
		if s.Restart > 0 {
			r.Add(fmt.Sprintf("%s#%d", name, s.Restart), s.Fit)
			return
		}
		r.Add(name, s.Fit)
	}
}

// Series returns copies of the recorded series in order of first use.
func (r *Recorder) Series() []Series {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Series, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, Series{Name: name, Fits: append([]float64(nil), r.series[name]...)})
	}

	return out
}
