// Package chart renders named curves on shared axes. A Figure owns all of
// its series and axis state; nothing here touches process-wide plotting
// state, so independent figures can be built side by side.
package chart

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmptyFigure reports an attempt to render a figure with no series.
var ErrEmptyFigure = errors.New("figure has no series")

// palette is the fixed color cycle for named series, in add order.
var palette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, // blue
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, // red
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}, // green
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}, // orange
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}, // purple
}

// overlayColor is the muted line color shared by all overlay series.
var overlayColor = color.Gray{Y: 0xb4}

// Config holds figure-level presentation settings.
type Config struct {
	Title  string
	XLabel string
	YLabel string
	XMin   float64
	XMax   float64
	YMin   float64
	YMax   float64
	LogX   bool
}

// DefaultConfig returns the standard axes for best-so-far curves:
// logarithmic x over [1, 1000] evaluations, linear y over [0, 2] percent.
func DefaultConfig() Config {
	return Config{
		Title:  "Best validation error vs evaluations consumed",
		XLabel: "evaluations",
		YLabel: "best validation error (%)",
		XMin:   1,
		XMax:   1000,
		YMin:   0,
		YMax:   2.0,
		LogX:   true,
	}
}

type series struct {
	name     string
	points   plotter.XYs
	color    color.Color
	width    vg.Length
	inLegend bool
}

// Figure accumulates series and renders them overlaid on shared axes.
type Figure struct {
	cfg    Config
	series []series
	named  int // count of palette-colored series added so far
}

// New creates an empty Figure with the given configuration.
func New(cfg Config) *Figure {
	return &Figure{cfg: cfg}
}

// AddSeries adds a legend-visible curve colored from the fixed palette.
func (f *Figure) AddSeries(name string, pts plotter.XYs) {
	f.series = append(f.series, series{
		name:     name,
		points:   pts,
		color:    palette[f.named%len(palette)],
		width:    vg.Points(1.5),
		inLegend: true,
	})
	f.named++
}

// AddOverlay adds a thin background curve in a muted shared color.
// Overlay series stay out of the legend; name labels a representative
// legend entry only when non-empty (pass it on the first overlay).
func (f *Figure) AddOverlay(name string, pts plotter.XYs) {
	f.series = append(f.series, series{
		name:     name,
		points:   pts,
		color:    overlayColor,
		width:    vg.Points(0.5),
		inLegend: name != "",
	})
}

// SeriesCount returns the number of series added so far.
func (f *Figure) SeriesCount() int {
	return len(f.series)
}

// Render draws the figure and writes it to path; the output format follows
// the file extension (.png, .svg, .pdf).
func (f *Figure) Render(path string) error {
	if len(f.series) == 0 {
		return ErrEmptyFigure
	}
	if f.cfg.LogX && f.cfg.XMin <= 0 {
		return fmt.Errorf("log x axis needs a positive minimum, got %v", f.cfg.XMin)
	}

	p := plot.New()
	p.Title.Text = f.cfg.Title
	p.X.Label.Text = f.cfg.XLabel
	p.Y.Label.Text = f.cfg.YLabel
	p.X.Min, p.X.Max = f.cfg.XMin, f.cfg.XMax
	p.Y.Min, p.Y.Max = f.cfg.YMin, f.cfg.YMax
	if f.cfg.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	for _, s := range f.series {
		line, err := plotter.NewLine(s.points)
		if err != nil {
			return fmt.Errorf("building series %q: %w", s.name, err)
		}
		line.LineStyle.Color = s.color
		line.LineStyle.Width = s.width
		p.Add(line)
		if s.inLegend {
			p.Legend.Add(s.name, line)
		}
	}
	p.Legend.Top = true

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("rendering figure to %s: %w", path, err)
	}
	return nil
}

// CurvePoints maps a running-best curve to (evaluation count, error) pairs.
// The x coordinate is the 1-based number of evaluations consumed, which
// keeps every point valid on a logarithmic axis.
func CurvePoints(curve []float64) plotter.XYs {
	pts := make(plotter.XYs, len(curve))
	for i, v := range curve {
		pts[i] = plotter.XY{X: float64(i + 1), Y: v}
	}
	return pts
}
