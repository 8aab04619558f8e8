// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package suite runs a family of charts: for each chart it loads and
// validates the CSV input, invokes the renderer, and reports failures
// with an explanation of the expected data format. Failures never
// abort the family; every chart is attempted.
package suite

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/scivis/plotgen/internal/dataset"
)

// A Chart binds one CSV schema to one renderer. Render receives the
// validated table and the output image path.
type Chart struct {
	Name   string
	Out    string // output image base name
	Schema dataset.Schema
	Render func(t *dataset.Table, outPath string) error
}

// Main is the entry point shared by the chart family commands. It
// parses the -data and -o flags, renders every chart, and exits with
// status 1 if any chart failed.
func Main(name string, charts []Chart) {
	log.SetPrefix(name + ": ")
	log.SetFlags(0)

	var (
		flagData = flag.String("data", "../data", "read CSV inputs from `directory`")
		flagOut  = flag.String("o", "../plot", "write PNG images to `directory`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	fmt.Printf("creating %s...\n", name)
	failed := Run(os.Stdout, *flagData, *flagOut, charts)
	fmt.Printf("\n%s: %d/%d charts created\n", name, len(charts)-failed, len(charts))
	if failed > 0 {
		os.Exit(1)
	}
}

// Run renders each chart in order, writing progress to w, and returns
// the number of charts that failed. A failed chart leaves no output
// image behind.
func Run(w io.Writer, dataDir, outDir string, charts []Chart) int {
	failed := 0
	for i, c := range charts {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, c.Name)
		out := filepath.Join(outDir, c.Out)
		if err := render(c, dataDir, out); err != nil {
			failed++
			fmt.Fprintf(w, "cannot create %s: %v\n", c.Name, err)
			var mf *dataset.MissingFileError
			var mc *dataset.MissingColumnsError
			if errors.As(err, &mf) || errors.As(err, &mc) {
				fmt.Fprint(w, c.Schema.Explain())
			}
			os.Remove(out)
			continue
		}
		fmt.Fprintf(w, "plot saved as: %s\n", out)
	}
	return failed
}

// render loads the chart's input and invokes its renderer, converting
// panics from malformed data into errors so one bad chart cannot take
// down the rest of the family.
func render(c Chart, dataDir, out string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("rendering %s: %v", c.Name, p)
		}
	}()
	t, err := dataset.Load(filepath.Join(dataDir, c.Schema.File), c.Schema)
	if err != nil {
		return err
	}
	return c.Render(t, out)
}
