// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/scivis/plotgen/internal/dataset"
	"github.com/scivis/plotgen/internal/figure"
)

// correlationMatrix draws a 4x4 panel grid: histograms on the
// diagonal, scatter plots with the pairwise Pearson r elsewhere.
func correlationMatrix(t *dataset.Table, out string) error {
	vars := []string{"var1", "var2", "var3", "var4"}
	cols := make([][]float64, len(vars))
	for i, v := range vars {
		cols[i] = t.Floats(v)
	}

	n := len(vars)
	plots := make([][]*plot.Plot, n)
	for row := range plots {
		plots[row] = make([]*plot.Plot, n)
		for col := range plots[row] {
			p := plot.New()
			p.X.Tick.Label.Font.Size = vg.Points(7)
			p.Y.Tick.Label.Font.Size = vg.Points(7)
			p.Title.TextStyle.Font.Size = vg.Points(9)

			if row == col {
				h, err := plotter.NewHist(plotter.Values(cols[row]), 12)
				if err != nil {
					return err
				}
				h.FillColor = figure.Color(row)
				p.Add(h)
				p.Title.Text = vars[row]
			} else {
				s, err := plotter.NewScatter(xyPairs(cols[col], cols[row]))
				if err != nil {
					return err
				}
				s.GlyphStyle.Color = figure.Color(0)
				s.GlyphStyle.Radius = vg.Points(1.5)
				s.GlyphStyle.Shape = draw.CircleGlyph{}
				p.Add(s)
				p.Title.Text = fmt.Sprintf("r = %.2f", pearson(cols[col], cols[row]))
			}
			if row == n-1 {
				p.X.Label.Text = vars[col]
			}
			plots[row][col] = p
		}
	}

	img := figure.NewCanvas(figure.Square, figure.Square)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: n, Cols: n,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: vg.Millimeter, PadBottom: vg.Millimeter,
		PadLeft: vg.Millimeter, PadRight: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for row := range plots {
		for col := range plots[row] {
			plots[row][col].Draw(canvases[row][col])
		}
	}
	return figure.SaveCanvas(img, out)
}
