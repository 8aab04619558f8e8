// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/scivis/plotgen/internal/dataset"
	"github.com/scivis/plotgen/internal/figure"
	"github.com/scivis/plotgen/internal/grid"
)

// fade returns c with its alpha dropped so overlaid histograms stay
// readable.
func fade(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0x9999}
}

func basicHistogram(t *dataset.Table, out string) error {
	vals := t.Floats("values")

	p := figure.New()
	p.Title.Text = "Basic Histogram"
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Frequency"
	p.Legend.Top = true

	h, err := plotter.NewHist(plotter.Values(vals), 20)
	if err != nil {
		return err
	}
	h.FillColor = figure.Color(0)
	p.Add(h)

	p.Legend.Add(fmt.Sprintf("n = %d, mean = %.2f, std = %.2f",
		len(vals), stat.Mean(vals, nil), stat.StdDev(vals, nil)))

	return figure.SavePNG(p, out, figure.Width, figure.Height)
}

func multipleHistograms(t *dataset.Table, out string) error {
	p := figure.New()
	p.Title.Text = "Multiple Histograms"
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Frequency"
	p.Legend.Top = true

	groups := []struct {
		col, label string
	}{
		{"group_a", "Group A"},
		{"group_b", "Group B"},
		{"group_c", "Group C"},
	}
	for i, g := range groups {
		vals := t.Floats(g.col)
		h, err := plotter.NewHist(plotter.Values(vals), 20)
		if err != nil {
			return err
		}
		h.FillColor = fade(figure.Color(i))
		p.Add(h)
		p.Legend.Add(fmt.Sprintf("%s: n = %d, mean = %.2f", g.label, len(vals), stat.Mean(vals, nil)))
	}

	return figure.SavePNG(p, out, figure.WideWidth, figure.Height)
}

// stackedHistogram bins every value into a shared set of bins, then
// stacks one bar chart per category.
func stackedHistogram(t *dataset.Table, out string) error {
	vals := t.Floats("value")
	cats := t.Strings("category")
	levels := t.Levels("category")

	const bins = 15
	min, max := boundsOf(vals)
	if max == min {
		max = min + 1
	}
	// stat.Histogram requires x < dividers[len-1], so nudge the last
	// edge past the maximum.
	max += (max - min) * 1e-9
	dividers := make([]float64, bins+1)
	for i := range dividers {
		dividers[i] = min + (max-min)*float64(i)/bins
	}

	p := figure.New()
	p.Title.Text = "Stacked Histogram"
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Frequency"
	p.Legend.Top = true

	var prev *plotter.BarChart
	for i, level := range levels {
		var xs []float64
		for k, c := range cats {
			if c == level {
				xs = append(xs, vals[k])
			}
		}
		sort.Float64s(xs)
		counts := stat.Histogram(nil, dividers, xs, nil)

		bars, err := plotter.NewBarChart(plotter.Values(counts), vg.Points(16))
		if err != nil {
			return err
		}
		bars.Color = figure.Color(i)
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(level, bars)
		prev = bars
	}

	centers := make([]string, bins)
	for i := range centers {
		centers[i] = fmt.Sprintf("%.1f", (dividers[i]+dividers[i+1])/2)
	}
	p.NominalX(centers...)

	return figure.SavePNG(p, out, figure.WideWidth, figure.Height)
}

func histogram2D(t *dataset.Table, out string) error {
	g, err := grid.Bin2D(t.Floats("x"), t.Floats("y"), 20)
	if err != nil {
		return err
	}

	p := figure.New()
	p.Title.Text = "2D Histogram"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	p.Add(plotter.NewHeatMap(g, figure.Heat(255)))

	return figure.SavePNG(p, out, figure.Square, figure.Square)
}

func distributionComparison(t *dataset.Table, out string) error {
	observed := t.Floats("observed")
	theoretical := t.Floats("theoretical")

	p := figure.New()
	p.Title.Text = "Distribution Comparison"
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Density"
	p.Legend.Top = true

	series := []struct {
		label string
		vals  []float64
	}{
		{"observed", observed},
		{"theoretical", theoretical},
	}
	for i, s := range series {
		h, err := plotter.NewHist(plotter.Values(s.vals), 20)
		if err != nil {
			return err
		}
		h.FillColor = fade(figure.Color(i))
		h.Normalize(1)
		p.Add(h)
		p.Legend.Add(fmt.Sprintf("%s: n = %d, mean = %.2f, std = %.2f",
			s.label, len(s.vals), stat.Mean(s.vals, nil), stat.StdDev(s.vals, nil)))
	}

	return figure.SavePNG(p, out, figure.Width, figure.Height)
}

func boundsOf(vs []float64) (min, max float64) {
	if len(vs) == 0 {
		return 0, 0
	}
	min, max = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return
}
