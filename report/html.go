// SPDX-License-Identifier: MIT
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/percolath/montecarlo"
)

// lineData converts (p, value) pairs into echarts [x, y] points.
func lineData(res *montecarlo.Result, value func(montecarlo.Point) float64) []opts.LineData {
	data := make([]opts.LineData, 0, len(res.Points))
	for _, pt := range res.Points {
		data = append(data, opts.LineData{Value: []interface{}{pt.P, value(pt)}})
	}
	return data
}

// WriteHTML renders res as a standalone go-echarts page.
func WriteHTML(w io.Writer, res *montecarlo.Result) error {
	if res == nil {
		return ErrNilResult
	}
	cfg := res.Config
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Percolation Threshold", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Percolation Threshold",
			Subtitle: fmt.Sprintf("%d×%d grid, %d steps, %d trials per step", cfg.Rows, cfg.Cols, cfg.Steps, cfg.Size),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "10%"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "p", Type: "value", Min: 0, Max: 1}),
		charts.WithYAxisOpts(opts.YAxis{Name: "θ(p)", Type: "value", Min: 0, Max: 1}),
	)

	line.AddSeries("θ(p)", lineData(res, func(pt montecarlo.Point) float64 { return pt.Theta }))
	line.AddSeries("lower", lineData(res, func(pt montecarlo.Point) float64 { return pt.Lower }),
		charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))
	line.AddSeries("upper", lineData(res, func(pt montecarlo.Point) float64 { return pt.Upper }),
		charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render html chart: %w", err)
	}
	return nil
}

// SaveHTML writes the chart page to path atomically.
func SaveHTML(path string, res *montecarlo.Result) error {
	if res == nil {
		return ErrNilResult
	}
	return saveAtomic(path, func(w io.Writer) error {
		return WriteHTML(w, res)
	})
}
