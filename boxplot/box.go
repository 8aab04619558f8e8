// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/scivis/plotgen/internal/dataset"
	"github.com/scivis/plotgen/internal/figure"
)

func basicBox(t *dataset.Table, out string) error {
	p := figure.New()
	p.Title.Text = "Basic Box Plot"
	p.X.Label.Text = "Group"
	p.Y.Label.Text = "Value"

	levels := t.Levels("group")
	for i, level := range levels {
		vals := t.FloatsWhere("value", "group", level)
		b, err := plotter.NewBoxPlot(vg.Points(24), float64(i), plotter.Values(vals))
		if err != nil {
			return err
		}
		b.FillColor = figure.Color(i)
		p.Add(b)
	}
	p.NominalX(levels...)

	return figure.SavePNG(p, out, figure.Width, figure.Height)
}

func groupedBox(t *dataset.Table, out string) error {
	p := figure.New()
	p.Title.Text = "Grouped Box Plot"
	p.X.Label.Text = "Time Point"
	p.Y.Label.Text = "Response"
	p.Legend.Top = true

	times := t.Levels("time_point")
	conds := t.Levels("condition")
	timeOf := t.Strings("time_point")
	condOf := t.Strings("condition")
	resp := t.Floats("response")

	// Conditions sit side by side around each time point's slot.
	spread := 0.8 / float64(len(conds))
	for j, cond := range conds {
		for i, tp := range times {
			var vals plotter.Values
			for k := range resp {
				if timeOf[k] == tp && condOf[k] == cond {
					vals = append(vals, resp[k])
				}
			}
			if len(vals) == 0 {
				continue
			}
			loc := float64(i) + spread*(float64(j)-float64(len(conds)-1)/2)
			b, err := plotter.NewBoxPlot(vg.Points(14), loc, vals)
			if err != nil {
				return err
			}
			b.FillColor = figure.Color(j)
			p.Add(b)
			if i == 0 {
				p.Legend.Add(cond)
			}
		}
	}
	p.NominalX(times...)

	return figure.SavePNG(p, out, figure.WideWidth, figure.Height)
}

// medianCI is the 95% confidence interval of the median,
// median ± 1.57*IQR/sqrt(n).
func medianCI(vals []float64) (median, lo, hi float64) {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	iqr := stat.Quantile(0.75, stat.Empirical, sorted, nil) -
		stat.Quantile(0.25, stat.Empirical, sorted, nil)
	delta := 1.57 * iqr / math.Sqrt(float64(len(sorted)))
	return median, median - delta, median + delta
}

// ciPoints carries median points with their confidence intervals for
// the error-bar plotter.
type ciPoints struct {
	plotter.XYs
	plotter.YErrors
}

func notchedBox(t *dataset.Table, out string) error {
	p := figure.New()
	p.Title.Text = "Notched Box Plot"
	p.X.Label.Text = "Method"
	p.Y.Label.Text = "Performance"
	p.Legend.Top = true

	levels := t.Levels("method")
	pts := ciPoints{}
	for i, level := range levels {
		vals := t.FloatsWhere("performance", "method", level)
		b, err := plotter.NewBoxPlot(vg.Points(24), float64(i), plotter.Values(vals))
		if err != nil {
			return err
		}
		b.FillColor = figure.Color(i)
		p.Add(b)

		med, lo, hi := medianCI(vals)
		pts.XYs = append(pts.XYs, plotter.XY{X: float64(i), Y: med})
		pts.YErrors = append(pts.YErrors, struct{ Low, High float64 }{med - lo, hi - med})
	}

	bars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Points(1.5)
	p.Add(bars)
	p.Legend.Add("95% CI of median")
	p.NominalX(levels...)

	return figure.SavePNG(p, out, figure.Width, figure.Height)
}

func horizontalBox(t *dataset.Table, out string) error {
	p := figure.New()
	p.Title.Text = "Horizontal Box Plot"
	p.X.Label.Text = "Execution Time"
	p.Y.Label.Text = "Algorithm"

	levels := t.Levels("algorithm")
	for i, level := range levels {
		vals := t.FloatsWhere("execution_time", "algorithm", level)
		b, err := plotter.NewBoxPlot(vg.Points(24), float64(i), plotter.Values(vals))
		if err != nil {
			return err
		}
		b.FillColor = figure.Color(i)
		b.Horizontal = true
		p.Add(b)
	}
	p.NominalY(levels...)

	return figure.SavePNG(p, out, figure.Width, figure.Height)
}
