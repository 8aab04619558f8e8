// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scivis/plotgen/internal/dataset"
)

func loadTable(t *testing.T, name, contents string, cols []string) *dataset.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0666); err != nil {
		t.Fatal(err)
	}
	tab, err := dataset.Load(path, dataset.Schema{File: name, Columns: cols})
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func TestBasicHistogram(t *testing.T) {
	tab := loadTable(t, "basic_histogram_data.csv",
		"values\n-0.32\n1.27\n0.05\n0.88\n-1.1\n0.3\n0.41\n-0.7\n",
		[]string{"values"})
	out := filepath.Join(t.TempDir(), "basic_histogram.png")
	if err := basicHistogram(tab, out); err != nil {
		t.Fatal(err)
	}
	st, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if st.Size() == 0 {
		t.Error("basicHistogram wrote an empty PNG")
	}
}

func TestStackedHistogram(t *testing.T) {
	tab := loadTable(t, "stacked_histogram_data.csv",
		"value,category\n-0.32,Group A\n1.27,Group B\n0.05,Group A\n0.88,Group B\n-1.1,Group A\n0.3,Group B\n",
		[]string{"value", "category"})
	out := filepath.Join(t.TempDir(), "stacked_histogram.png")
	if err := stackedHistogram(tab, out); err != nil {
		t.Fatal(err)
	}
}

func TestHistogram2D(t *testing.T) {
	tab := loadTable(t, "2d_histogram_data.csv",
		"x,y\n-0.32,0.41\n1.27,-0.88\n0.05,0.2\n0.88,0.3\n-1.1,-0.4\n",
		[]string{"x", "y"})
	out := filepath.Join(t.TempDir(), "2d_histogram.png")
	if err := histogram2D(tab, out); err != nil {
		t.Fatal(err)
	}
}

func TestDistributionComparison(t *testing.T) {
	tab := loadTable(t, "distribution_comparison_data.csv",
		"observed,theoretical\n-0.32,0.00\n1.27,0.10\n0.05,-0.10\n0.88,0.20\n",
		[]string{"observed", "theoretical"})
	out := filepath.Join(t.TempDir(), "distribution_comparison.png")
	if err := distributionComparison(tab, out); err != nil {
		t.Fatal(err)
	}
}
