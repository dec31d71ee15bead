package main

import (
	"fmt"

	"github.com/theapemachine/qsim"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotTally writes a bar chart of the counts, one bar per basis string.
func plotTally(tally qsim.Tally, path string) error {
	keys := tally.Keys()
	values := make(plotter.Values, len(keys))
	for i, k := range keys {
		values[i] = float64(tally[k])
	}

	p := plot.New()
	p.Title.Text = "Measurement counts"
	p.X.Label.Text = "basis state"
	p.Y.Label.Text = "count"

	bars, err := plotter.NewBarChart(values, vg.Points(16))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(keys...)

	width := vg.Length(max(len(keys), 4)) * 0.5 * vg.Inch
	if err := p.Save(width, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}

	return nil
}
