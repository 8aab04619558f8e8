// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scatterplot renders scatter plots from CSV data files.
//
// It reads its inputs from the directory given by -data and writes
// 300 DPI PNG images to the directory given by -o. The command exits
// with status 1 if any chart failed.
package main

import (
	"github.com/scivis/plotgen/internal/dataset"
	"github.com/scivis/plotgen/internal/suite"
)

func main() {
	suite.Main("scatterplot", []suite.Chart{
		{
			Name: "basic scatter plot",
			Out:  "basic_scatter_plot.png",
			Schema: dataset.Schema{
				File:    "basic_scatter_data.csv",
				Columns: []string{"x", "y"},
				Purpose: "show the relationship between two variables",
				Example: []string{"0.49,1.12", "-0.14,-0.51", "0.64,1.47"},
			},
			Render: basicScatter,
		},
		{
			Name: "colored scatter plot",
			Out:  "colored_scatter_plot.png",
			Schema: dataset.Schema{
				File:    "colored_scatter_data.csv",
				Columns: []string{"x", "y", "color_value"},
				Purpose: "map a third variable to point color",
				Example: []string{"0.49,1.12,0.3", "-0.14,-0.51,0.8"},
			},
			Render: coloredScatter,
		},
		{
			Name: "sized scatter plot",
			Out:  "sized_scatter_plot.png",
			Schema: dataset.Schema{
				File:    "sized_scatter_data.csv",
				Columns: []string{"x", "y", "size_value"},
				Purpose: "map a third variable to point size",
				Example: []string{"0.49,1.12,12", "-0.14,-0.51,48"},
			},
			Render: sizedScatter,
		},
		{
			Name: "categorical scatter plot",
			Out:  "categorical_scatter_plot.png",
			Schema: dataset.Schema{
				File:    "categorical_scatter_data.csv",
				Columns: []string{"x", "y", "category"},
				Purpose: "color points by group membership",
				Example: []string{"0.49,1.12,Group A", "-0.14,-0.51,Group B"},
			},
			Render: categoricalScatter,
		},
		{
			Name: "correlation matrix scatter",
			Out:  "correlation_matrix_scatter.png",
			Schema: dataset.Schema{
				File:    "correlation_matrix_data.csv",
				Columns: []string{"var1", "var2", "var3", "var4"},
				Purpose: "pairwise relationships among four variables",
				Example: []string{"0.49,1.12,0.30,2.1", "-0.14,-0.51,0.82,1.7"},
			},
			Render: correlationMatrix,
		},
	})
}
