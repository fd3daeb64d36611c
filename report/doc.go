// SPDX-License-Identifier: MIT
// Package report writes a finished montecarlo.Result to its output artifacts.
//
// Sinks:
//
//   - WriteCSV / SaveCSV:         header "p,θ(p)" then one row per step.
//   - WritePlot / SavePlot:       gonum/plot line chart (PNG, SVG, PDF… by
//     extension) on axes [0,1]×[0,1], optional Wilson band.
//   - WriteHTML / SaveHTML:       go-echarts interactive line chart.
//   - WriteSummary / SaveSummary: YAML run summary with a unique run id.
//
// Every Save* function writes to a temporary file in the target directory
// and renames it into place, so a failed write leaves no partial artifact.
// Sinks never modify the Result.
package report
