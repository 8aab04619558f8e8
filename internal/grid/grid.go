// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid reconstructs rectangular Z-grids from irregular
// (x, y, z) samples for surface, wireframe, and contour rendering,
// and bins (x, y) points into counting grids for 2D histograms.
package grid

import (
	"errors"
	"math"
	"sort"
)

// A Dense is a rectangular grid of z values over sorted unique x and y
// axes. It implements gonum/plot's plotter.GridXYZ.
type Dense struct {
	xs, ys []float64
	z      []float64 // row-major, len(ys) rows of len(xs)
}

// Reconstruct builds a grid from equal-length x, y, z sequences. The
// grid axes are the sorted distinct x and y values. Each cell takes
// the z of the first row whose (x, y) pair equals the cell's
// coordinates exactly; a cell with no matching row takes the
// arithmetic mean of all z values. There is no interpolation.
func Reconstruct(x, y, z []float64) (*Dense, error) {
	if len(x) != len(y) || len(y) != len(z) {
		return nil, errors.New("grid: x, y, z must have equal lengths")
	}
	if len(x) == 0 {
		return nil, errors.New("grid: no samples")
	}

	xs := uniqueSorted(x)
	ys := uniqueSorted(y)

	// First matching row wins.
	type coord struct{ x, y float64 }
	byCoord := make(map[coord]float64)
	for i := range x {
		c := coord{x[i], y[i]}
		if _, ok := byCoord[c]; !ok {
			byCoord[c] = z[i]
		}
	}

	var sum float64
	for _, v := range z {
		sum += v
	}
	mean := sum / float64(len(z))

	g := &Dense{xs: xs, ys: ys, z: make([]float64, len(xs)*len(ys))}
	for j, yv := range ys {
		for i, xv := range xs {
			if v, ok := byCoord[coord{xv, yv}]; ok {
				g.z[j*len(xs)+i] = v
			} else {
				g.z[j*len(xs)+i] = mean
			}
		}
	}
	return g, nil
}

// Bin2D builds an n x n counting grid over the bounding box of the
// equal-length x and y sequences. Each cell's z is the number of
// points falling in it; points on the upper edge count toward the
// last bin. The cell's (x, y) coordinate is its center.
func Bin2D(x, y []float64, n int) (*Dense, error) {
	if len(x) != len(y) {
		return nil, errors.New("grid: x and y must have equal lengths")
	}
	if len(x) == 0 {
		return nil, errors.New("grid: no samples")
	}
	if n < 1 {
		return nil, errors.New("grid: bin count must be positive")
	}

	xmin, xmax := bounds(x)
	ymin, ymax := bounds(y)
	// Degenerate spans still get a one-cell-wide box.
	if xmax == xmin {
		xmax = xmin + 1
	}
	if ymax == ymin {
		ymax = ymin + 1
	}
	xw := (xmax - xmin) / float64(n)
	yw := (ymax - ymin) / float64(n)

	g := &Dense{
		xs: make([]float64, n),
		ys: make([]float64, n),
		z:  make([]float64, n*n),
	}
	for i := 0; i < n; i++ {
		g.xs[i] = xmin + (float64(i)+0.5)*xw
		g.ys[i] = ymin + (float64(i)+0.5)*yw
	}
	for k := range x {
		i := int((x[k] - xmin) / xw)
		j := int((y[k] - ymin) / yw)
		if i >= n {
			i = n - 1
		}
		if j >= n {
			j = n - 1
		}
		g.z[j*n+i]++
	}
	return g, nil
}

// Dims returns the number of columns and rows.
func (g *Dense) Dims() (c, r int) { return len(g.xs), len(g.ys) }

// X returns the x coordinate of column c.
func (g *Dense) X(c int) float64 { return g.xs[c] }

// Y returns the y coordinate of row r.
func (g *Dense) Y(r int) float64 { return g.ys[r] }

// Z returns the value at column c, row r.
func (g *Dense) Z(c, r int) float64 { return g.z[r*len(g.xs)+c] }

// ZRange returns the smallest and largest z values in the grid.
func (g *Dense) ZRange() (min, max float64) {
	return bounds(g.z)
}

func uniqueSorted(vs []float64) []float64 {
	out := append([]float64(nil), vs...)
	sort.Float64s(out)
	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}
	return out[:n]
}

func bounds(vs []float64) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return
}
