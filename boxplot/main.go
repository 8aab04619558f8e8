// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command boxplot renders box and violin plots from CSV data files.
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
	suite.Main("boxplot", []suite.Chart{
		{
			Name: "basic box plot",
			Out:  "basic_box_plot.png",
			Schema: dataset.Schema{
				File:    "basic_box_data.csv",
				Columns: []string{"group", "value"},
				Purpose: "compare value distributions across groups",
				Example: []string{"Control,4.8", "Control,5.3", "Treatment,6.1"},
			},
			Render: basicBox,
		},
		{
			Name: "violin plot",
			Out:  "violin_plot.png",
			Schema: dataset.Schema{
				File:    "violin_plot_data.csv",
				Columns: []string{"category", "measurement"},
				Purpose: "show the full distribution shape per category",
				Example: []string{"Method A,12.1", "Method A,13.4", "Method B,9.8"},
			},
			Render: violin,
		},
		{
			Name: "grouped box plot",
			Out:  "grouped_box_plot.png",
			Schema: dataset.Schema{
				File:    "grouped_box_data.csv",
				Columns: []string{"time_point", "condition", "response"},
				Purpose: "compare conditions within each time point",
				Example: []string{"T1,Control,4.8", "T1,Drug,6.2", "T2,Control,5.0"},
			},
			Render: groupedBox,
		},
		{
			Name: "notched box plot",
			Out:  "notched_box_plot.png",
			Schema: dataset.Schema{
				File:    "notched_box_data.csv",
				Columns: []string{"method", "performance"},
				Purpose: "compare methods with median confidence intervals",
				Example: []string{"Method A,0.91", "Method A,0.88", "Method B,0.79"},
			},
			Render: notchedBox,
		},
		{
			Name: "horizontal box plot",
			Out:  "horizontal_box_plot.png",
			Schema: dataset.Schema{
				File:    "horizontal_box_data.csv",
				Columns: []string{"algorithm", "execution_time"},
				Purpose: "compare execution time distributions",
				Example: []string{"Quicksort,0.31", "Quicksort,0.29", "Mergesort,0.42"},
			},
			Render: horizontalBox,
		},
	})
}
