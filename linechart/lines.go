// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/scivis/plotgen/internal/dataset"
	"github.com/scivis/plotgen/internal/figure"
)

func xyPairs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

func basicLine(t *dataset.Table, out string) error {
	p := figure.New()
	p.Title.Text = "Basic Line Chart"
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Amplitude"

	l, err := plotter.NewLine(xyPairs(t.Floats("time"), t.Floats("amplitude")))
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(1.5)
	l.LineStyle.Color = figure.Color(0)
	p.Add(l)

	return figure.SavePNG(p, out, figure.Width, figure.Height)
}

func multipleLines(t *dataset.Table, out string) error {
	p := figure.New()
	p.Title.Text = "Multiple Line Chart"
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Value"
	p.Legend.Top = true

	time := t.Floats("time")
	series := []struct {
		col, label string
	}{
		{"series_a", "Series A"},
		{"series_b", "Series B"},
		{"series_c", "Series C"},
	}
	for i, s := range series {
		l, err := plotter.NewLine(xyPairs(time, t.Floats(s.col)))
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = figure.Color(i)
		l.LineStyle.Dashes = plotutil.Dashes(i)
		p.Add(l)
		p.Legend.Add(s.label, l)
	}

	return figure.SavePNG(p, out, figure.WideWidth, figure.Height)
}

func lineWithCI(t *dataset.Table, out string) error {
	p := figure.New()
	p.Title.Text = "Line Chart with Confidence Interval"
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Response"
	p.Legend.Top = true

	time := t.Floats("time")
	mean := t.Floats("mean")
	lower := t.Floats("lower_ci")
	upper := t.Floats("upper_ci")

	// Confidence band: upper bound forward, lower bound back.
	band := make(plotter.XYs, 0, 2*len(time))
	for i := range time {
		band = append(band, plotter.XY{X: time[i], Y: upper[i]})
	}
	for i := len(time) - 1; i >= 0; i-- {
		band = append(band, plotter.XY{X: time[i], Y: lower[i]})
	}
	poly, err := plotter.NewPolygon(band)
	if err != nil {
		return err
	}
	poly.Color = color.NRGBA{R: 114, G: 158, B: 206, A: 70}
	poly.LineStyle.Color = color.Transparent
	p.Add(poly)
	p.Legend.Add("95% CI band")

	l, err := plotter.NewLine(xyPairs(time, mean))
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(2)
	l.LineStyle.Color = figure.Color(0)
	p.Add(l)
	p.Legend.Add("mean", l)

	return figure.SavePNG(p, out, figure.Width, figure.Height)
}
