// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

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

// pearson is the Pearson correlation coefficient of x and y.
func pearson(x, y []float64) float64 {
	return stat.Correlation(x, y, nil)
}

func basicScatter(t *dataset.Table, out string) error {
	x := t.Floats("x")
	y := t.Floats("y")

	p := figure.New()
	p.Title.Text = "Basic Scatter Plot"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Legend.Top = true

	s, err := plotter.NewScatter(xyPairs(x, y))
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = figure.Color(0)
	s.GlyphStyle.Radius = vg.Points(3)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)

	// Least-squares trend line across the x extent.
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	xmin, xmax := boundsOf(x)
	trend, err := plotter.NewLine(plotter.XYs{
		{X: xmin, Y: alpha + beta*xmin},
		{X: xmax, Y: alpha + beta*xmax},
	})
	if err != nil {
		return err
	}
	trend.LineStyle.Width = vg.Points(2)
	trend.LineStyle.Color = figure.Color(1)
	trend.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(trend)

	p.Legend.Add(fmt.Sprintf("fit: y = %.2fx + %.2f", beta, alpha), trend)
	p.Legend.Add(fmt.Sprintf("r = %.3f, n = %d", pearson(x, y), len(x)))

	return figure.SavePNG(p, out, figure.Width, figure.Height)
}

func coloredScatter(t *dataset.Table, out string) error {
	x := t.Floats("x")
	y := t.Floats("y")
	cv := t.Floats("color_value")

	p := figure.New()
	p.Title.Text = "Colored Scatter Plot"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	s, err := plotter.NewScatter(xyPairs(x, y))
	if err != nil {
		return err
	}
	cmap := moreland.Kindlmann()
	cmin, cmax := boundsOf(cv)
	if cmax == cmin {
		cmax = cmin + 1
	}
	cmap.SetMin(cmin)
	cmap.SetMax(cmax)
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		c, err := cmap.At(cv[i])
		if err != nil {
			c = figure.Color(0)
		}
		return draw.GlyphStyle{Color: c, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
	}
	p.Add(s)
	p.Legend.Add(fmt.Sprintf("color: color_value [%.2f, %.2f]", cmin, cmax))
	p.Legend.Top = true

	return figure.SavePNG(p, out, figure.Width, figure.Height)
}

func sizedScatter(t *dataset.Table, out string) error {
	x := t.Floats("x")
	y := t.Floats("y")
	sv := t.Floats("size_value")

	p := figure.New()
	p.Title.Text = "Sized Scatter Plot"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	s, err := plotter.NewScatter(xyPairs(x, y))
	if err != nil {
		return err
	}
	smin, smax := boundsOf(sv)
	span := smax - smin
	if span == 0 {
		span = 1
	}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		// Radius between 2 and 10 points, linear in size_value.
		r := vg.Points(2 + 8*(sv[i]-smin)/span)
		return draw.GlyphStyle{Color: figure.Color(0), Radius: r, Shape: draw.CircleGlyph{}}
	}
	p.Add(s)
	p.Legend.Add(fmt.Sprintf("size: size_value [%.1f, %.1f], mean %.1f",
		smin, smax, stat.Mean(sv, nil)))
	p.Legend.Top = true

	return figure.SavePNG(p, out, figure.Width, figure.Height)
}

func categoricalScatter(t *dataset.Table, out string) error {
	x := t.Floats("x")
	y := t.Floats("y")
	cats := t.Strings("category")

	p := figure.New()
	p.Title.Text = "Categorical Scatter Plot"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Legend.Top = true

	for i, level := range t.Levels("category") {
		var pts plotter.XYs
		for j, c := range cats {
			if c == level {
				pts = append(pts, plotter.XY{X: x[j], Y: y[j]})
			}
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = figure.Color(i)
		s.GlyphStyle.Radius = vg.Points(3)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(level, s)
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
