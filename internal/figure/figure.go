// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure applies the suite's plot style and writes finished
// plots as 300 DPI PNG images on a white background.
package figure

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DPI is the resolution of every saved image.
const DPI = 300

// Standard figure sizes.
const (
	Width  = 10 * vg.Inch
	Height = 6 * vg.Inch

	WideWidth = 12 * vg.Inch
	Square    = 8 * vg.Inch
)

// New returns a plot with the suite's style applied: sized title,
// label, tick, and legend text plus a light background grid.
func New() *plot.Plot {
	p := plot.New()
	Style(p)
	return p
}

// Style applies the suite's text sizing and grid to p.
func Style(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.X.Tick.Label.Font.Size = vg.Points(10)
	p.Y.Tick.Label.Font.Size = vg.Points(10)
	p.Legend.TextStyle.Font.Size = vg.Points(10)

	g := plotter.NewGrid()
	g.Vertical.Color = color.Gray{Y: 208}
	g.Horizontal.Color = color.Gray{Y: 208}
	p.Add(g)
}

// Color returns the i'th categorical color, cycling through the
// default palette.
func Color(i int) color.Color {
	return plotutil.Color(i)
}

// Palette returns n categorical colors.
func Palette(n int) []color.Color {
	cs := make([]color.Color, n)
	for i := range cs {
		cs[i] = plotutil.Color(i)
	}
	return cs
}

// Heat returns an n-color continuous palette for heat maps and
// contour plots.
func Heat(n int) palette.Palette {
	m := moreland.Kindlmann()
	m.SetMin(0)
	m.SetMax(1)
	return m.Palette(n)
}

// SavePNG renders p at w x h and writes it to path as a 300 DPI PNG
// with a white background, creating parent directories as needed.
func SavePNG(p *plot.Plot, path string, w, h vg.Length) error {
	c := vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	p.Draw(draw.New(c))
	return writePNG(c, path)
}

// SaveCanvas writes an already-drawn canvas to path, for figures
// composed of several aligned plots.
func SaveCanvas(c *vgimg.Canvas, path string) error {
	return writePNG(c, path)
}

// NewCanvas returns a styled drawing canvas of the given size for
// multi-panel figures.
func NewCanvas(w, h vg.Length) *vgimg.Canvas {
	return vgimg.NewWith(
		vgimg.UseWH(w, h),
		vgimg.UseDPI(DPI),
		vgimg.UseBackgroundColor(color.White),
	)
}

func writePNG(c *vgimg.Canvas, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
