// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command histogram renders histograms from CSV data files.
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
	suite.Main("histogram", []suite.Chart{
		{
			Name: "basic histogram",
			Out:  "basic_histogram.png",
			Schema: dataset.Schema{
				File:    "basic_histogram_data.csv",
				Columns: []string{"values"},
				Purpose: "show the distribution of one variable",
				Example: []string{"-0.32", "1.27", "0.05"},
			},
			Render: basicHistogram,
		},
		{
			Name: "multiple histograms",
			Out:  "multiple_histograms.png",
			Schema: dataset.Schema{
				File:    "multiple_histogram_data.csv",
				Columns: []string{"group_a", "group_b", "group_c"},
				Purpose: "overlay the distributions of three groups",
				Example: []string{"-0.32,2.1,4.8", "1.27,1.8,5.2"},
			},
			Render: multipleHistograms,
		},
		{
			Name: "stacked histogram",
			Out:  "stacked_histogram.png",
			Schema: dataset.Schema{
				File:    "stacked_histogram_data.csv",
				Columns: []string{"value", "category"},
				Purpose: "show a distribution broken down by category",
				Example: []string{"-0.32,Group A", "1.27,Group B"},
			},
			Render: stackedHistogram,
		},
		{
			Name: "2D histogram",
			Out:  "2d_histogram.png",
			Schema: dataset.Schema{
				File:    "2d_histogram_data.csv",
				Columns: []string{"x", "y"},
				Purpose: "show the joint density of two variables",
				Example: []string{"-0.32,0.41", "1.27,-0.88"},
			},
			Render: histogram2D,
		},
		{
			Name: "distribution comparison",
			Out:  "distribution_comparison.png",
			Schema: dataset.Schema{
				File:    "distribution_comparison_data.csv",
				Columns: []string{"observed", "theoretical"},
				Purpose: "compare an observed sample to a theoretical one",
				Example: []string{"-0.32,0.00", "1.27,0.10"},
			},
			Render: distributionComparison,
		},
	})
}
