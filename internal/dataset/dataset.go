// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset loads tabular chart inputs from CSV files and
// validates that the columns a chart requires are present.
package dataset

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// A Schema describes the CSV file a chart consumes: the file's base
// name, the columns that must be present, and a few example rows shown
// to the user when the file is missing or malformed.
type Schema struct {
	File    string   // base name of the CSV file
	Columns []string // required column names
	Purpose string   // one-line description of what the chart shows
	Example []string // example data rows, without the header
}

// Explain returns a human-readable description of the expected CSV
// format, suitable for printing after a load failure.
func (s Schema) Explain() string {
	var b strings.Builder
	fmt.Fprintf(&b, "expected CSV format for %s:\n", s.File)
	fmt.Fprintf(&b, "  required columns: %s\n", strings.Join(s.Columns, ", "))
	if s.Purpose != "" {
		fmt.Fprintf(&b, "  purpose: %s\n", s.Purpose)
	}
	fmt.Fprintf(&b, "  example:\n")
	fmt.Fprintf(&b, "    %s\n", strings.Join(s.Columns, ","))
	for _, row := range s.Example {
		fmt.Fprintf(&b, "    %s\n", row)
	}
	return b.String()
}

// A MissingFileError reports that a chart's CSV input does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("data file not found: %s", e.Path)
}

// A MissingColumnsError reports that a loaded CSV lacks columns the
// chart requires.
type MissingColumnsError struct {
	Path    string
	Missing []string // required columns absent from the file
	Have    []string // columns actually present
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s (have: %s)",
		e.Path, strings.Join(e.Missing, ", "), strings.Join(e.Have, ", "))
}

// A Table is an in-memory table loaded from a CSV file. Row order is
// the order of the rows in the file.
type Table struct {
	df dataframe.DataFrame
}

// Load reads the CSV file at path and checks it against the schema's
// required columns. It returns a *MissingFileError if the path does
// not exist and a *MissingColumnsError if any required column is
// absent. There is no type checking beyond column presence.
func Load(path string, s Schema) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	df := dataframe.ReadCSV(f)
	if df.Err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, df.Err)
	}

	have := df.Names()
	var missing []string
	for _, col := range s.Columns {
		found := false
		for _, name := range have {
			if name == col {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Path: path, Missing: missing, Have: have}
	}
	return &Table{df: df}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.df.Nrow()
}

// Columns returns the table's column names in file order.
func (t *Table) Columns() []string {
	return t.df.Names()
}

// Floats returns col parsed as float64s, row by row. Values that do
// not parse become NaN, per the underlying dataframe.
func (t *Table) Floats(col string) []float64 {
	return t.df.Col(col).Float()
}

// Strings returns col as strings, row by row.
func (t *Table) Strings(col string) []string {
	return t.df.Col(col).Records()
}

// Levels returns the distinct values of col in first-occurrence order.
func (t *Table) Levels(col string) []string {
	seen := make(map[string]bool)
	var levels []string
	for _, v := range t.Strings(col) {
		if !seen[v] {
			seen[v] = true
			levels = append(levels, v)
		}
	}
	return levels
}

// FloatsWhere returns the values of col on the rows where column by
// equals level, preserving row order.
func (t *Table) FloatsWhere(col, by, level string) []float64 {
	keys := t.Strings(by)
	vals := t.Floats(col)
	var out []float64
	for i, k := range keys {
		if k == level {
			out = append(out, vals[i])
		}
	}
	return out
}
