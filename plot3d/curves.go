// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/scivis/plotgen/internal/dataset"
	"github.com/scivis/plotgen/internal/figure"
)

// scatter3D projects grouped (x, y, z) points onto the x-y plane with
// z encoded as the marker radius.
func scatter3D(tab *dataset.Table, out string) error {
	x := tab.Floats("x")
	y := tab.Floats("y")
	z := tab.Floats("z")
	groups := tab.Strings("group")
	levels := tab.Levels("group")

	p := figure.New()
	p.Title.Text = "3D Scatter Plot by Groups"
	p.X.Label.Text = "X Coordinate"
	p.Y.Label.Text = "Y Coordinate"
	p.Legend.Top = true

	zmin, zmax := boundsOf(z)
	span := zmax - zmin
	if span == 0 {
		span = 1
	}
	for i, level := range levels {
		var pts plotter.XYs
		var zs []float64
		for k, gname := range groups {
			if gname == level {
				pts = append(pts, plotter.XY{X: x[k], Y: y[k]})
				zs = append(zs, z[k])
			}
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		c := figure.Color(i)
		s.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
		s.GlyphStyleFunc = func(k int) draw.GlyphStyle {
			r := vg.Points(2 + 6*(zs[k]-zmin)/span)
			return draw.GlyphStyle{Color: c, Radius: r, Shape: draw.CircleGlyph{}}
		}
		p.Add(s)
		p.Legend.Add(level, s)
	}
	p.Legend.Add(fmt.Sprintf("groups = %d, points = %d (size ~ z)", len(levels), tab.Len()))

	return figure.SavePNG(p, out, figure.Width, figure.Height)
}

// parametricPlot traces each curve type's (x, y) path in order of the
// parameter t.
func parametricPlot(tab *dataset.Table, out string) error {
	ts := tab.Floats("t")
	x := tab.Floats("x")
	y := tab.Floats("y")
	kinds := tab.Strings("curve_type")
	levels := tab.Levels("curve_type")

	p := figure.New()
	p.Title.Text = "Parametric 3D Plot"
	p.X.Label.Text = "X Coordinate"
	p.Y.Label.Text = "Y Coordinate"
	p.Legend.Top = true

	for i, level := range levels {
		var idx []int
		for k, kind := range kinds {
			if kind == level {
				idx = append(idx, k)
			}
		}
		sort.Slice(idx, func(a, b int) bool { return ts[idx[a]] < ts[idx[b]] })

		pts := make(plotter.XYs, len(idx))
		for k, j := range idx {
			pts[k] = plotter.XY{X: x[j], Y: y[j]}
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(2)
		l.LineStyle.Color = figure.Color(i)
		p.Add(l)
		p.Legend.Add(level, l)
	}
	tmin, tmax := boundsOf(ts)
	p.Legend.Add(fmt.Sprintf("curves = %d, t in [%.2f, %.2f]", len(levels), tmin, tmax))

	return figure.SavePNG(p, out, figure.Width, figure.Height)
}
