// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/scivis/plotgen/internal/dataset"
	"github.com/scivis/plotgen/internal/figure"
)

func basicBar(t *dataset.Table, out string) error {
	cats := t.Strings("category")
	vals := t.Floats("value")

	p := figure.New()
	p.Title.Text = "Basic Bar Chart"
	p.X.Label.Text = "Category"
	p.Y.Label.Text = "Value"

	// One bar chart per category so each bar gets its own color.
	// The other positions hold zero-height (invisible) bars.
	for i := range cats {
		vs := make(plotter.Values, len(cats))
		vs[i] = vals[i]
		bars, err := plotter.NewBarChart(vs, vg.Points(24))
		if err != nil {
			return err
		}
		bars.Color = figure.Color(i)
		p.Add(bars)
	}
	if err := addValueLabels(p, vals); err != nil {
		return err
	}
	p.NominalX(cats...)

	return figure.SavePNG(p, out, figure.Width, figure.Height)
}

// addValueLabels writes each bar's value just above its top.
func addValueLabels(p *plot.Plot, vals []float64) error {
	xys := make(plotter.XYs, len(vals))
	text := make([]string, len(vals))
	_, max := boundsOf(vals)
	for i, v := range vals {
		xys[i] = plotter.XY{X: float64(i), Y: v + 0.01*max}
		text[i] = fmt.Sprintf("%.0f", v)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
	if err != nil {
		return err
	}
	p.Add(labels)
	return nil
}

func groupedBars(t *dataset.Table, out string) error {
	cats := t.Strings("category")

	p := figure.New()
	p.Title.Text = "Grouped Bar Chart"
	p.X.Label.Text = "Category"
	p.Y.Label.Text = "Value"
	p.Legend.Top = true

	w := vg.Points(14)
	groups := []struct {
		col, label string
	}{
		{"group_a", "Group A"},
		{"group_b", "Group B"},
		{"group_c", "Group C"},
	}
	for i, g := range groups {
		bars, err := plotter.NewBarChart(plotter.Values(t.Floats(g.col)), w)
		if err != nil {
			return err
		}
		bars.Color = figure.Color(i)
		bars.Offset = vg.Length(i-1) * w
		p.Add(bars)
		p.Legend.Add(g.label, bars)
	}
	p.NominalX(cats...)

	return figure.SavePNG(p, out, figure.WideWidth, figure.Height)
}

func stackedBars(t *dataset.Table, out string) error {
	cats := t.Strings("category")

	p := figure.New()
	p.Title.Text = "Stacked Bar Chart"
	p.X.Label.Text = "Category"
	p.Y.Label.Text = "Value"
	p.Legend.Top = true

	parts := []struct {
		col, label string
	}{
		{"part_a", "Part A"},
		{"part_b", "Part B"},
		{"part_c", "Part C"},
	}
	var prev *plotter.BarChart
	for i, part := range parts {
		bars, err := plotter.NewBarChart(plotter.Values(t.Floats(part.col)), vg.Points(24))
		if err != nil {
			return err
		}
		bars.Color = figure.Color(i)
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(part.label, bars)
		prev = bars
	}
	p.NominalX(cats...)

	return figure.SavePNG(p, out, figure.Width, figure.Height)
}

func horizontalBars(t *dataset.Table, out string) error {
	items := t.Strings("item")
	scores := t.Floats("score")

	// Ascending by score, so the longest bar ends up on top.
	perm := make([]int, len(items))
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm, func(a, b int) bool { return scores[perm[a]] < scores[perm[b]] })
	sortedItems := make([]string, len(items))
	sortedScores := make([]float64, len(scores))
	for i, j := range perm {
		sortedItems[i] = items[j]
		sortedScores[i] = scores[j]
	}

	p := figure.New()
	p.Title.Text = "Horizontal Bar Chart"
	p.X.Label.Text = "Score"
	p.Y.Label.Text = "Item"

	for i := range sortedItems {
		vs := make(plotter.Values, len(sortedItems))
		vs[i] = sortedScores[i]
		bars, err := plotter.NewBarChart(vs, vg.Points(18))
		if err != nil {
			return err
		}
		bars.Color = figure.Color(i)
		bars.Horizontal = true
		p.Add(bars)
	}
	p.NominalY(sortedItems...)

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
