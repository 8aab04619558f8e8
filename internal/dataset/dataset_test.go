// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	s := Schema{File: "nope.csv", Columns: []string{"x", "y"}}
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), s)
	var mf *MissingFileError
	if !errors.As(err, &mf) {
		t.Fatalf("Load of missing file: got err %v, want *MissingFileError", err)
	}
}

func TestLoadMissingColumns(t *testing.T) {
	path := writeCSV(t, "bad.csv", "x,weight\n1,2\n3,4\n")
	s := Schema{File: "bad.csv", Columns: []string{"x", "y", "z"}}
	_, err := Load(path, s)
	var mc *MissingColumnsError
	if !errors.As(err, &mc) {
		t.Fatalf("Load with missing columns: got err %v, want *MissingColumnsError", err)
	}
	if want := []string{"y", "z"}; !reflect.DeepEqual(mc.Missing, want) {
		t.Errorf("Missing = %v, want %v", mc.Missing, want)
	}
	if want := []string{"x", "weight"}; !reflect.DeepEqual(mc.Have, want) {
		t.Errorf("Have = %v, want %v", mc.Have, want)
	}
}

func TestLoadAccessors(t *testing.T) {
	path := writeCSV(t, "ok.csv", "category,value\nA,10\nB,20\nA,30\n")
	s := Schema{File: "ok.csv", Columns: []string{"category", "value"}}
	tab, err := Load(path, s)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 3 {
		t.Errorf("Len = %d, want 3", tab.Len())
	}
	if got, want := tab.Strings("category"), []string{"A", "B", "A"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Strings(category) = %v, want %v", got, want)
	}
	if got, want := tab.Floats("value"), []float64{10, 20, 30}; !reflect.DeepEqual(got, want) {
		t.Errorf("Floats(value) = %v, want %v", got, want)
	}
	if got, want := tab.Levels("category"), []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Levels(category) = %v, want %v", got, want)
	}
	if got, want := tab.FloatsWhere("value", "category", "A"), []float64{10, 30}; !reflect.DeepEqual(got, want) {
		t.Errorf("FloatsWhere(value, category, A) = %v, want %v", got, want)
	}
}

func TestExplainNamesColumns(t *testing.T) {
	s := Schema{
		File:    "basic_bar_data.csv",
		Columns: []string{"category", "value"},
		Example: []string{"Method A,85", "Method B,72"},
	}
	got := s.Explain()
	for _, want := range []string{"basic_bar_data.csv", "category, value", "Method A,85"} {
		if !strings.Contains(got, want) {
			t.Errorf("Explain() missing %q:\n%s", want, got)
		}
	}
}
