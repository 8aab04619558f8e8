// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func TestSavePNG(t *testing.T) {
	p := New()
	p.Title.Text = "test"
	line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		t.Fatal(err)
	}
	p.Add(line)

	path := filepath.Join(t.TempDir(), "out", "test.png")
	if err := SavePNG(p, path, 4*vg.Inch, 3*vg.Inch); err != nil {
		t.Fatal(err)
	}
	st, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.Size() == 0 {
		t.Error("SavePNG wrote an empty file")
	}
}

func TestPaletteCycles(t *testing.T) {
	cs := Palette(25)
	if len(cs) != 25 {
		t.Fatalf("Palette(25) returned %d colors", len(cs))
	}
	for i, c := range cs {
		if c == nil {
			t.Errorf("color %d is nil", i)
		}
	}
}

func TestHeat(t *testing.T) {
	if got := len(Heat(64).Colors()); got != 64 {
		t.Errorf("Heat(64) has %d colors, want 64", got)
	}
}
