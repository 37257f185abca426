// SPDX-License-Identifier: MIT

package fitplot_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtensor/cp"
	"github.com/katalvlaran/lvtensor/fitplot"
	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/katalvlaran/lvtensor/tucker"
)

func mustRandom3(t testing.TB, seed int64) *tensor.Tensor3 {
	t.Helper()
	x, err := tensor.New3(5, 4, 4)
	require.NoError(t, err)
	x.FillRandomSigned(tensor.NewRand(seed))

	return x
}

func TestRecorder_Order(t *testing.T) {
	t.Parallel()
	r := fitplot.NewRecorder()
	r.Add("b", 0.1)
	r.Add("a", 0.2)
	r.Add("b", 0.3)

	got := r.Series()
	require.Len(t, got, 2)
	assert.Equal(t, fitplot.Series{Name: "b", Fits: []float64{0.1, 0.3}}, got[0])
	assert.Equal(t, fitplot.Series{Name: "a", Fits: []float64{0.2}}, got[1])

	// Series returns copies.
	got[0].Fits[0] = 9
	assert.Equal(t, 0.1, r.Series()[0].Fits[0])
}

func TestRecorder_Concurrent(t *testing.T) {
	t.Parallel()
	r := fitplot.NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Add("run", float64(j))
			}
		}()
	}
	wg.Wait()
	assert.Len(t, r.Series()[0].Fits, 800)
}

func TestRecorder_Observers(t *testing.T) {
	t.Parallel()
	x := mustRandom3(t, 3)
	r := fitplot.NewRecorder()

	res, err := tucker.HOOI(context.Background(), x, []int{2, 2, 2},
		tucker.WithObserver(r.Tucker("hooi")))
	require.NoError(t, err)
	_, err = cp.HOPM(context.Background(), x, 2, cp.WithRestarts(2), cp.WithMaxIterations(5),
		cp.WithNoTolerance(), cp.WithObserver(r.CP("hopm")))
	require.NoError(t, err)

	byName := map[string][]float64{}
	for _, s := range r.Series() {
		byName[s.Name] = s.Fits
	}
	assert.Equal(t, res.History, byName["hooi"])
	assert.Len(t, byName["hopm"], 5)
	assert.Len(t, byName["hopm#1"], 5)
}

func TestRender_Formats(t *testing.T) {
	t.Parallel()
	series := []fitplot.Series{
		{Name: "hooi", Fits: []float64{0.5, 0.7, 0.75, 0.76}},
		{Name: "empty"},
		{Name: "exact", Fits: []float64{0.9, 1}},
	}

	var png bytes.Buffer
	require.NoError(t, fitplot.Render(&png, series))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))

	var svg bytes.Buffer
	require.NoError(t, fitplot.Render(&svg, series, fitplot.WithFormat("SVG"), fitplot.WithResidual(),
		fitplot.WithTitle("residual")))
	assert.Contains(t, svg.String(), "<svg")

	err := fitplot.Render(&bytes.Buffer{}, series, fitplot.WithFormat("bmp"))
	require.ErrorIs(t, err, fitplot.ErrFormat)
	err = fitplot.Render(&bytes.Buffer{}, []fitplot.Series{{Name: "empty"}})
	require.ErrorIs(t, err, fitplot.ErrNoSeries)

	assert.Panics(t, func() { fitplot.WithSize(0, 1) })
}

func TestSave(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	series := []fitplot.Series{{Name: "run", Fits: []float64{0.1, 0.2}}}

	path := filepath.Join(dir, "fit.svg")
	require.NoError(t, fitplot.Save(path, series))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	require.ErrorIs(t, fitplot.Save(filepath.Join(dir, "fit"), series), fitplot.ErrFormat)

	// unknown extensions and empty input leave no file behind
	bad := filepath.Join(dir, "fit.xyz")
	require.ErrorIs(t, fitplot.Save(bad, series), fitplot.ErrFormat)
	_, err = os.Stat(bad)
	assert.True(t, os.IsNotExist(err))

	empty := filepath.Join(dir, "empty.png")
	require.ErrorIs(t, fitplot.Save(empty, []fitplot.Series{{Name: "run"}}), fitplot.ErrNoSeries)
	_, err = os.Stat(empty)
	assert.True(t, os.IsNotExist(err))
}
