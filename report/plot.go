// SPDX-License-Identifier: MIT
package report

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/percolath/montecarlo"
)

// pixel is one screen pixel at the 96 dpi used by raster backends.
const pixel = vg.Inch / 96

// PlotOptions controls chart rendering.
type PlotOptions struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	// Band shades the Wilson confidence interval behind the θ(p) line.
	Band bool
}

// DefaultPlotOptions returns a 640×480 chart titled "Percolation Threshold".
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Title:  "Percolation Threshold",
		Width:  640 * pixel,
		Height: 480 * pixel,
	}
}

var (
	lineColor = color.RGBA{R: 220, G: 20, B: 20, A: 255}
	bandColor = color.RGBA{R: 220, G: 20, B: 20, A: 48}
)

// buildPlot assembles the chart for res.
func buildPlot(res *montecarlo.Result, o PlotOptions) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = "p"
	p.Y.Label.Text = "θ(p)"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.X.Tick.Marker = plot.ConstantTicks(unitTicks())
	p.Y.Tick.Marker = plot.ConstantTicks(unitTicks())
	p.Add(plotter.NewGrid())

	n := len(res.Points)
	if n == 0 {
		return p, nil
	}

	if o.Band {
		band := make(plotter.XYs, 0, 2*n)
		for _, pt := range res.Points {
			band = append(band, plotter.XY{X: pt.P, Y: pt.Upper})
		}
		for i := n - 1; i >= 0; i-- {
			band = append(band, plotter.XY{X: res.Points[i].P, Y: res.Points[i].Lower})
		}
		poly, err := plotter.NewPolygon(band)
		if err != nil {
			return nil, fmt.Errorf("build band: %w", err)
		}
		poly.Color = bandColor
		poly.LineStyle.Width = 0
		p.Add(poly)
	}

	pts := make(plotter.XYs, n)
	for i, pt := range res.Points {
		pts[i].X = pt.P
		pts[i].Y = pt.Theta
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("build line: %w", err)
	}
	line.Color = lineColor
	line.Width = vg.Points(1.5)
	p.Add(line)

	return p, nil
}

// unitTicks labels [0,1] every 0.1, matching ten mesh lines per axis.
func unitTicks() []plot.Tick {
	ticks := make([]plot.Tick, 0, 11)
	for i := 0; i <= 10; i++ {
		v := float64(i) / 10
		ticks = append(ticks, plot.Tick{Value: v, Label: formatFloat(v)})
	}
	return ticks
}

// ChartFormat maps the extension of path onto a gonum/plot format name.
// Unsupported extensions return ErrUnknownFormat.
func ChartFormat(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff":
		return ext, nil
	default:
		return "", fmt.Errorf("%q: %w", ext, ErrUnknownFormat)
	}
}

// WritePlot renders res in the given format ("png", "svg", …) to w.
func WritePlot(w io.Writer, res *montecarlo.Result, format string, o PlotOptions) error {
	if res == nil {
		return ErrNilResult
	}
	p, err := buildPlot(res, o)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(o.Width, o.Height, format)
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

// SavePlot renders res to path, choosing the format from its extension.
func SavePlot(path string, res *montecarlo.Result, o PlotOptions) error {
	if res == nil {
		return ErrNilResult
	}
	format, err := ChartFormat(path)
	if err != nil {
		return err
	}
	return saveAtomic(path, func(w io.Writer) error {
		return WritePlot(w, res, format, o)
	})
}
