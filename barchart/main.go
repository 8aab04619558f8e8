// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command barchart renders bar charts from CSV data files.
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
	suite.Main("barchart", []suite.Chart{
		{
			Name: "basic bar chart",
			Out:  "basic_bar_chart.png",
			Schema: dataset.Schema{
				File:    "basic_bar_data.csv",
				Columns: []string{"category", "value"},
				Purpose: "compare values across categories",
				Example: []string{"Method A,85", "Method B,72", "Method C,91"},
			},
			Render: basicBar,
		},
		{
			Name: "grouped bar chart",
			Out:  "grouped_bar_chart.png",
			Schema: dataset.Schema{
				File:    "grouped_bar_data.csv",
				Columns: []string{"category", "group_a", "group_b", "group_c"},
				Purpose: "compare three groups within each category",
				Example: []string{"Q1,85,72,91", "Q2,78,85,68"},
			},
			Render: groupedBars,
		},
		{
			Name: "stacked bar chart",
			Out:  "stacked_bar_chart.png",
			Schema: dataset.Schema{
				File:    "stacked_bar_data.csv",
				Columns: []string{"category", "part_a", "part_b", "part_c"},
				Purpose: "show how parts make up each category's total",
				Example: []string{"Product A,30,25,20", "Product B,35,30,15"},
			},
			Render: stackedBars,
		},
		{
			Name: "horizontal bar chart",
			Out:  "horizontal_bar_chart.png",
			Schema: dataset.Schema{
				File:    "horizontal_bar_data.csv",
				Columns: []string{"item", "score"},
				Purpose: "rank items with long names by score",
				Example: []string{"Algorithm A,92", "Algorithm B,85"},
			},
			Render: horizontalBars,
		},
	})
}
