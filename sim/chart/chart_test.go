package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1.0, cfg.XMin)
	assert.Equal(t, 1000.0, cfg.XMax)
	assert.Equal(t, 0.0, cfg.YMin)
	assert.Equal(t, 2.0, cfg.YMax)
	assert.True(t, cfg.LogX)
}

func TestCurvePoints(t *testing.T) {
	pts := CurvePoints([]float64{5.0, 3.0, 3.0, 1.0})
	require.Len(t, pts, 4)

	// x is the 1-based evaluation count, so the first point is plottable
	// on a log axis
	assert.Equal(t, plotter.XY{X: 1, Y: 5.0}, pts[0])
	assert.Equal(t, plotter.XY{X: 4, Y: 1.0}, pts[3])
}

func TestCurvePoints_Empty(t *testing.T) {
	assert.Len(t, CurvePoints(nil), 0)
}

func TestFigure_SeriesAccumulate(t *testing.T) {
	fig := New(DefaultConfig())
	assert.Equal(t, 0, fig.SeriesCount())

	fig.AddSeries("median", CurvePoints([]float64{2.0, 1.0}))
	fig.AddOverlay("single runs", CurvePoints([]float64{2.0, 2.0}))
	fig.AddOverlay("", CurvePoints([]float64{1.5, 1.0}))
	assert.Equal(t, 3, fig.SeriesCount())
}

func TestFigure_RenderEmpty(t *testing.T) {
	err := New(DefaultConfig()).Render(filepath.Join(t.TempDir(), "empty.png"))
	assert.ErrorIs(t, err, ErrEmptyFigure)
}

func TestFigure_RenderRejectsBadLogRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.XMin = 0

	fig := New(cfg)
	fig.AddSeries("curve", CurvePoints([]float64{1.0}))
	err := fig.Render(filepath.Join(t.TempDir(), "bad.png"))
	assert.Error(t, err)
}

func TestFigure_RenderWritesFile(t *testing.T) {
	fig := New(DefaultConfig())
	fig.AddSeries("random search (median)", CurvePoints([]float64{1.8, 1.2, 0.9, 0.9}))
	fig.AddSeries("hyperband", plotter.XYs{{X: 1, Y: 1.5}, {X: 3, Y: 0.7}})
	fig.AddOverlay("single runs", CurvePoints([]float64{1.9, 1.9, 1.1, 0.9}))

	path := filepath.Join(t.TempDir(), "curves.svg")
	require.NoError(t, fig.Render(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
