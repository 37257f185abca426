// SPDX-License-Identifier: MIT

package fitplot

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSeries indicates a render request without any non-empty series.
	ErrNoSeries = errors.New("fitplot: nothing to plot")

	// ErrFormat indicates an output format gonum/plot cannot encode.
	ErrFormat = errors.New("fitplot: unsupported format")
)

func fitplotErrorf(tag string, err error) error {
	return fmt.Errorf("fitplot.%s: %w", tag, err)
}
