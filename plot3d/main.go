// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plot3d renders plots of (x, y, z) data from CSV files.
//
// Gridded chart types first reconstruct a rectangular Z-grid from the
// samples (exact coordinate match per cell, global mean where a cell
// has no sample) and render it as heat map and contour projections.
// The command reads its inputs from the directory given by -data,
// writes 300 DPI PNG images to the directory given by -o, and exits
// with status 1 if any chart failed.
package main

import (
	"github.com/scivis/plotgen/internal/dataset"
	"github.com/scivis/plotgen/internal/suite"
)

func main() {
	suite.Main("plot3d", []suite.Chart{
		{
			Name: "3D surface plot",
			Out:  "3d_surface_plot.png",
			Schema: dataset.Schema{
				File:    "3d_surface_data.csv",
				Columns: []string{"x", "y", "z"},
				Purpose: "height field over the x-y plane; rows should form a grid",
				Example: []string{"0.0,0.0,0.5", "0.1,0.0,0.6", "0.0,0.1,0.7"},
			},
			Render: surfacePlot,
		},
		{
			Name: "3D scatter plot",
			Out:  "3d_scatter_plot.png",
			Schema: dataset.Schema{
				File:    "3d_scatter_data.csv",
				Columns: []string{"x", "y", "z", "group"},
				Purpose: "grouped points in space; z maps to marker size",
				Example: []string{"1.2,2.4,3.1,Group A", "2.1,4.3,2.8,Group B"},
			},
			Render: scatter3D,
		},
		{
			Name: "3D wireframe plot",
			Out:  "3d_wireframe_plot.png",
			Schema: dataset.Schema{
				File:    "3d_wireframe_data.csv",
				Columns: []string{"x", "y", "z"},
				Purpose: "height field drawn as contour lines only",
				Example: []string{"0.0,0.0,0.5", "0.1,0.0,0.6", "0.2,0.0,0.4"},
			},
			Render: wireframePlot,
		},
		{
			Name: "3D bar plot",
			Out:  "3d_bar_plot.png",
			Schema: dataset.Schema{
				File:    "3d_bar_data.csv",
				Columns: []string{"x_pos", "y_pos", "height"},
				Purpose: "bar heights on an integer grid",
				Example: []string{"0,0,5.2", "1,0,7.8", "2,0,3.4"},
			},
			Render: bar3D,
		},
		{
			Name: "3D contour plot",
			Out:  "3d_contour_plot.png",
			Schema: dataset.Schema{
				File:    "3d_contour_data.csv",
				Columns: []string{"x", "y", "z"},
				Purpose: "height field drawn as filled contours",
				Example: []string{"0.0,0.0,0.5", "0.1,0.0,0.6", "0.0,0.1,0.7"},
			},
			Render: contourPlot,
		},
		{
			Name: "parametric 3D plot",
			Out:  "parametric_3d_plot.png",
			Schema: dataset.Schema{
				File:    "parametric_3d_data.csv",
				Columns: []string{"t", "x", "y", "z", "curve_type"},
				Purpose: "parametric curves traced in order of t",
				Example: []string{"0.0,1.0,0.0,0.0,helix", "0.1,0.95,0.31,0.1,helix"},
			},
			Render: parametricPlot,
		},
	})
}
