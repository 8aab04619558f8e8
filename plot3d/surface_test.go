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

const surfaceCSV = "x,y,z\n" +
	"0,0,0.5\n1,0,0.6\n2,0,0.4\n" +
	"0,1,0.7\n1,1,0.8\n2,1,0.3\n" +
	"0,2,0.2\n1,2,0.9\n2,2,0.1\n"

func TestSurfacePlot(t *testing.T) {
	tab := loadTable(t, "3d_surface_data.csv", surfaceCSV, []string{"x", "y", "z"})
	out := filepath.Join(t.TempDir(), "3d_surface_plot.png")
	if err := surfacePlot(tab, out); err != nil {
		t.Fatal(err)
	}
	st, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if st.Size() == 0 {
		t.Error("surfacePlot wrote an empty PNG")
	}
}

func TestSurfacePlotIncompleteGrid(t *testing.T) {
	// Missing (1, 1): the reconstructor fills it with the global
	// mean; rendering must still succeed.
	csv := "x,y,z\n0,0,0.5\n1,0,0.6\n0,1,0.7\n"
	tab := loadTable(t, "3d_surface_data.csv", csv, []string{"x", "y", "z"})
	out := filepath.Join(t.TempDir(), "3d_surface_plot.png")
	if err := surfacePlot(tab, out); err != nil {
		t.Fatal(err)
	}
}

func TestWireframeFlatField(t *testing.T) {
	csv := "x,y,z\n0,0,1\n1,0,1\n0,1,1\n1,1,1\n"
	tab := loadTable(t, "3d_wireframe_data.csv", csv, []string{"x", "y", "z"})
	out := filepath.Join(t.TempDir(), "3d_wireframe_plot.png")
	if err := wireframePlot(tab, out); err != nil {
		t.Fatal(err)
	}
}

func TestBar3D(t *testing.T) {
	csv := "x_pos,y_pos,height\n0,0,5.2\n1,0,7.8\n2,0,3.4\n0,1,6.1\n1,1,8.9\n2,1,4.7\n"
	tab := loadTable(t, "3d_bar_data.csv", csv, []string{"x_pos", "y_pos", "height"})
	out := filepath.Join(t.TempDir(), "3d_bar_plot.png")
	if err := bar3D(tab, out); err != nil {
		t.Fatal(err)
	}
}

func TestScatter3D(t *testing.T) {
	csv := "x,y,z,group\n1.2,2.4,3.1,Group A\n2.1,4.3,2.8,Group B\n3.5,6.8,4.2,Group A\n"
	tab := loadTable(t, "3d_scatter_data.csv", csv, []string{"x", "y", "z", "group"})
	out := filepath.Join(t.TempDir(), "3d_scatter_plot.png")
	if err := scatter3D(tab, out); err != nil {
		t.Fatal(err)
	}
}

func TestParametricPlot(t *testing.T) {
	csv := "t,x,y,z,curve_type\n0.2,0.81,0.59,0.2,helix\n0.0,1.0,0.0,0.0,helix\n0.1,0.95,0.31,0.1,helix\n0.0,1.0,0.0,0.0,spiral\n0.1,0.90,0.28,0.0,spiral\n"
	tab := loadTable(t, "parametric_3d_data.csv", csv, []string{"t", "x", "y", "z", "curve_type"})
	out := filepath.Join(t.TempDir(), "parametric_3d_plot.png")
	if err := parametricPlot(tab, out); err != nil {
		t.Fatal(err)
	}
}
