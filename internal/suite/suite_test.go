// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suite

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scivis/plotgen/internal/dataset"
)

var barSchema = dataset.Schema{
	File:    "basic_bar_data.csv",
	Columns: []string{"category", "value"},
	Example: []string{"Method A,85"},
}

func TestRunMissingFile(t *testing.T) {
	dataDir := t.TempDir()
	outDir := t.TempDir()
	var buf bytes.Buffer

	called := false
	failed := Run(&buf, dataDir, outDir, []Chart{{
		Name:   "basic bar chart",
		Out:    "basic_bar_chart.png",
		Schema: barSchema,
		Render: func(tab *dataset.Table, out string) error {
			called = true
			return nil
		},
	}})

	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
	if called {
		t.Error("renderer ran despite missing input")
	}
	if _, err := os.Stat(filepath.Join(outDir, "basic_bar_chart.png")); !os.IsNotExist(err) {
		t.Error("output image exists after failure")
	}
	if !strings.Contains(buf.String(), "required columns: category, value") {
		t.Errorf("missing format explanation in output:\n%s", buf.String())
	}
}

func TestRunMissingColumn(t *testing.T) {
	dataDir := t.TempDir()
	outDir := t.TempDir()
	csv := filepath.Join(dataDir, "basic_bar_data.csv")
	if err := os.WriteFile(csv, []byte("category,score\nA,1\n"), 0666); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	failed := Run(&buf, dataDir, outDir, []Chart{{
		Name:   "basic bar chart",
		Out:    "basic_bar_chart.png",
		Schema: barSchema,
		Render: func(tab *dataset.Table, out string) error { return nil },
	}})

	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
	if !strings.Contains(buf.String(), "missing required columns: value") {
		t.Errorf("missing-column report absent:\n%s", buf.String())
	}
}

func TestRunRendererPanic(t *testing.T) {
	dataDir := t.TempDir()
	outDir := t.TempDir()
	csv := filepath.Join(dataDir, "basic_bar_data.csv")
	if err := os.WriteFile(csv, []byte("category,value\nA,1\n"), 0666); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	failed := Run(&buf, dataDir, outDir, []Chart{{
		Name:   "basic bar chart",
		Out:    "basic_bar_chart.png",
		Schema: barSchema,
		Render: func(tab *dataset.Table, out string) error {
			panic("malformed data")
		},
	}})

	if failed != 1 {
		t.Errorf("failed = %d, want 1 after renderer panic", failed)
	}
	if !strings.Contains(buf.String(), "malformed data") {
		t.Errorf("panic message not reported:\n%s", buf.String())
	}
}

func TestRunSuccessAndFailureMix(t *testing.T) {
	dataDir := t.TempDir()
	outDir := t.TempDir()
	csv := filepath.Join(dataDir, "basic_bar_data.csv")
	if err := os.WriteFile(csv, []byte("category,value\nA,1\nB,2\n"), 0666); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	failed := Run(&buf, dataDir, outDir, []Chart{
		{
			Name:   "basic bar chart",
			Out:    "basic_bar_chart.png",
			Schema: barSchema,
			Render: func(tab *dataset.Table, out string) error {
				return os.WriteFile(out, []byte("png"), 0666)
			},
		},
		{
			Name:   "grouped bar chart",
			Out:    "grouped_bar_chart.png",
			Schema: dataset.Schema{File: "grouped_bar_data.csv", Columns: []string{"category"}},
			Render: func(tab *dataset.Table, out string) error { return nil },
		},
	})

	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
	if _, err := os.Stat(filepath.Join(outDir, "basic_bar_chart.png")); err != nil {
		t.Errorf("successful chart's output missing: %v", err)
	}
}
