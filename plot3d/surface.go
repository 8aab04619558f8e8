// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot/plotter"

	"github.com/scivis/plotgen/internal/dataset"
	"github.com/scivis/plotgen/internal/figure"
	"github.com/scivis/plotgen/internal/grid"
)

// contourLevels picks n evenly spaced levels strictly inside the
// grid's z range.
func contourLevels(g *grid.Dense, n int) []float64 {
	min, max := g.ZRange()
	if max == min {
		return []float64{min}
	}
	step := (max - min) / float64(n+1)
	return vec.Linspace(min+step, max-step, n)
}

func rangeNote(tab *dataset.Table) string {
	xmin, xmax := boundsOf(tab.Floats("x"))
	ymin, ymax := boundsOf(tab.Floats("y"))
	zmin, zmax := boundsOf(tab.Floats("z"))
	return fmt.Sprintf("n = %d, x [%.2f, %.2f], y [%.2f, %.2f], z [%.2f, %.2f]",
		tab.Len(), xmin, xmax, ymin, ymax, zmin, zmax)
}

func surfacePlot(tab *dataset.Table, out string) error {
	g, err := grid.Reconstruct(tab.Floats("x"), tab.Floats("y"), tab.Floats("z"))
	if err != nil {
		return err
	}

	p := figure.New()
	p.Title.Text = "3D Surface Plot"
	p.X.Label.Text = "X Coordinate"
	p.Y.Label.Text = "Y Coordinate"
	p.Legend.Top = true

	p.Add(plotter.NewHeatMap(g, figure.Heat(255)))
	if min, max := g.ZRange(); max > min {
		p.Add(plotter.NewContour(g, contourLevels(g, 10), figure.Heat(12)))
	}
	p.Legend.Add(rangeNote(tab))

	return figure.SavePNG(p, out, figure.WideWidth, figure.Height)
}

func wireframePlot(tab *dataset.Table, out string) error {
	g, err := grid.Reconstruct(tab.Floats("x"), tab.Floats("y"), tab.Floats("z"))
	if err != nil {
		return err
	}

	p := figure.New()
	p.Title.Text = "3D Wireframe Plot"
	p.X.Label.Text = "X Coordinate"
	p.Y.Label.Text = "Y Coordinate"
	p.Legend.Top = true

	if min, max := g.ZRange(); max > min {
		p.Add(plotter.NewContour(g, contourLevels(g, 20), figure.Heat(22)))
	} else {
		// A flat field has no contours; fall back to the heat map.
		p.Add(plotter.NewHeatMap(g, figure.Heat(255)))
	}
	p.Legend.Add(rangeNote(tab))

	return figure.SavePNG(p, out, figure.WideWidth, figure.Height)
}

func contourPlot(tab *dataset.Table, out string) error {
	g, err := grid.Reconstruct(tab.Floats("x"), tab.Floats("y"), tab.Floats("z"))
	if err != nil {
		return err
	}

	p := figure.New()
	p.Title.Text = "3D Contour Plot"
	p.X.Label.Text = "X Coordinate"
	p.Y.Label.Text = "Y Coordinate"
	p.Legend.Top = true

	p.Add(plotter.NewHeatMap(g, figure.Heat(255)))
	if min, max := g.ZRange(); max > min {
		p.Add(plotter.NewContour(g, contourLevels(g, 20), figure.Heat(22)))
	}
	p.Legend.Add(rangeNote(tab))

	return figure.SavePNG(p, out, figure.WideWidth, figure.Height)
}

func bar3D(tab *dataset.Table, out string) error {
	heights := tab.Floats("height")
	g, err := grid.Reconstruct(tab.Floats("x_pos"), tab.Floats("y_pos"), heights)
	if err != nil {
		return err
	}

	p := figure.New()
	p.Title.Text = "3D Bar Plot"
	p.X.Label.Text = "X Position"
	p.Y.Label.Text = "Y Position"
	p.Legend.Top = true

	p.Add(plotter.NewHeatMap(g, figure.Heat(255)))
	hmin, hmax := boundsOf(heights)
	p.Legend.Add(fmt.Sprintf("bars = %d, height [%.2f, %.2f]", tab.Len(), hmin, hmax))

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
