// SPDX-License-Identifier: MIT
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/percolath/montecarlo"
)

// CSVHeader is the header row of the tabular sink.
var CSVHeader = []string{"p", "θ(p)"}

// formatFloat renders v in the shortest form that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV writes res as CSV: CSVHeader then (p, θ) rows in sweep order.
func WriteCSV(w io.Writer, res *montecarlo.Result) error {
	if res == nil {
		return ErrNilResult
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, pt := range res.Points {
		if err := cw.Write([]string{formatFloat(pt.P), formatFloat(pt.Theta)}); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// SaveCSV writes res to path atomically. An existing file is replaced.
func SaveCSV(path string, res *montecarlo.Result) error {
	if res == nil {
		return ErrNilResult
	}
	return saveAtomic(path, func(w io.Writer) error {
		return WriteCSV(w, res)
	})
}
