// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command linechart renders line charts from CSV data files.
//
// It reads its inputs from the directory given by -data and writes
// 300 DPI PNG images to the directory given by -o. Each chart's CSV
// schema is printed if the input is missing or lacks a required
// column. The command exits with status 1 if any chart failed.
package main

import (
	"github.com/scivis/plotgen/internal/dataset"
	"github.com/scivis/plotgen/internal/suite"
)

func main() {
	suite.Main("linechart", []suite.Chart{
		{
			Name: "basic line chart",
			Out:  "basic_line_chart.png",
			Schema: dataset.Schema{
				File:    "basic_line_data.csv",
				Columns: []string{"time", "amplitude"},
				Purpose: "show how a signal evolves over time",
				Example: []string{"0.0,0.05", "0.2,0.31", "0.4,0.59"},
			},
			Render: basicLine,
		},
		{
			Name: "multiple line chart",
			Out:  "multiple_line_chart.png",
			Schema: dataset.Schema{
				File:    "multiple_line_data.csv",
				Columns: []string{"time", "series_a", "series_b", "series_c"},
				Purpose: "compare several series on a shared time axis",
				Example: []string{"0.0,0.05,0.99,0.02", "0.2,0.31,0.95,0.18"},
			},
			Render: multipleLines,
		},
		{
			Name: "line chart with confidence interval",
			Out:  "line_chart_with_ci.png",
			Schema: dataset.Schema{
				File:    "confidence_interval_data.csv",
				Columns: []string{"time", "mean", "lower_ci", "upper_ci"},
				Purpose: "show a mean response with its confidence band",
				Example: []string{"0.0,0.51,0.42,0.60", "0.2,0.58,0.49,0.67"},
			},
			Render: lineWithCI,
		},
	})
}
