// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/scivis/plotgen/internal/dataset"
	"github.com/scivis/plotgen/internal/figure"
)

// violinSamples is the number of points the density curve is
// evaluated at per category.
const violinSamples = 100

// violin draws one kernel density outline per category, mirrored
// around the category's slot, with a marker at the median.
func violin(t *dataset.Table, out string) error {
	p := figure.New()
	p.Title.Text = "Violin Plot"
	p.X.Label.Text = "Category"
	p.Y.Label.Text = "Measurement"

	levels := t.Levels("category")
	for i, level := range levels {
		vals := t.FloatsWhere("measurement", "category", level)
		sample := stats.Sample{Xs: vals}

		kde := stats.KDE{
			Sample:    sample,
			Bandwidth: stats.BandwidthScott(sample),
		}
		min, max := sample.Bounds()
		min -= 3 * kde.Bandwidth
		max += 3 * kde.Bandwidth
		ys := vec.Linspace(min, max, violinSamples)
		density := vec.Map(kde.PDF, ys)

		// Widest point of each violin spans 0.8 slots.
		_, dmax := bounds(density)
		scale := 0.4 / dmax

		outline := make(plotter.XYs, 0, 2*len(ys))
		for k, y := range ys {
			outline = append(outline, plotter.XY{X: float64(i) + density[k]*scale, Y: y})
		}
		for k := len(ys) - 1; k >= 0; k-- {
			outline = append(outline, plotter.XY{X: float64(i) - density[k]*scale, Y: ys[k]})
		}
		poly, err := plotter.NewPolygon(outline)
		if err != nil {
			return err
		}
		poly.Color = figure.Color(i)
		p.Add(poly)

		median, _, _ := medianCI(vals)
		med, err := plotter.NewScatter(plotter.XYs{{X: float64(i), Y: median}})
		if err != nil {
			return err
		}
		med.GlyphStyle.Radius = vg.Points(3)
		med.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(med)
	}
	p.NominalX(levels...)

	return figure.SavePNG(p, out, figure.Width, figure.Height)
}

func bounds(vs []float64) (min, max float64) {
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
