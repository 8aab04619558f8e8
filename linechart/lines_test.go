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

func TestBasicLine(t *testing.T) {
	tab := loadTable(t, "basic_line_data.csv",
		"time,amplitude\n0.0,0.05\n0.2,0.31\n0.4,0.59\n0.6,0.71\n",
		[]string{"time", "amplitude"})
	out := filepath.Join(t.TempDir(), "basic_line_chart.png")
	if err := basicLine(tab, out); err != nil {
		t.Fatal(err)
	}
	st, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if st.Size() == 0 {
		t.Error("basicLine wrote an empty PNG")
	}
}

func TestMultipleLines(t *testing.T) {
	tab := loadTable(t, "multiple_line_data.csv",
		"time,series_a,series_b,series_c\n0.0,0.05,0.99,0.02\n0.2,0.31,0.95,0.18\n0.4,0.59,0.83,0.36\n",
		[]string{"time", "series_a", "series_b", "series_c"})
	out := filepath.Join(t.TempDir(), "multiple_line_chart.png")
	if err := multipleLines(tab, out); err != nil {
		t.Fatal(err)
	}
}

func TestLineWithCI(t *testing.T) {
	tab := loadTable(t, "confidence_interval_data.csv",
		"time,mean,lower_ci,upper_ci\n0.0,0.51,0.42,0.60\n0.2,0.58,0.49,0.67\n0.4,0.62,0.55,0.70\n",
		[]string{"time", "mean", "lower_ci", "upper_ci"})
	out := filepath.Join(t.TempDir(), "line_chart_with_ci.png")
	if err := lineWithCI(tab, out); err != nil {
		t.Fatal(err)
	}
}
