// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plotall runs every chart family command in sequence and
// prints a summary report.
//
// Family commands are looked up in the directory given by -bin
// (default: the directory containing the plotall executable). Each
// family's data and plot directories live under the directory given
// by -C, named after the family (for example linechart/data and
// linechart/plot). Modules run one at a time with a fixed timeout; a
// failing module does not stop the suite. plotall exits 0 only if
// every module succeeded.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// A module is one chart family command and its display title.
type module struct {
	Dir   string // command name and per-family directory
	Title string
}

var modules = []module{
	{"linechart", "Line Charts"},
	{"barchart", "Bar Charts"},
	{"scatterplot", "Scatter Plots"},
	{"boxplot", "Box Plots"},
	{"histogram", "Histograms"},
	{"plot3d", "3D Plots"},
}

var (
	flagBin     = flag.String("bin", "", "run family commands from `directory` (default: the plotall executable's directory)")
	flagRoot    = flag.String("C", ".", "look for per-family data/plot directories under `directory`")
	flagTimeout = flag.Duration("timeout", 300*time.Second, "kill a family command after `duration`")
	flagDelay   = flag.Duration("delay", time.Second, "pause between family commands for `duration`")
)

func main() {
	log.SetPrefix("plotall: ")
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	bin := *flagBin
	if bin == "" {
		exe, err := os.Executable()
		if err != nil {
			log.Fatal(err)
		}
		bin = filepath.Dir(exe)
	}

	results := runAll(modules, bin, *flagRoot, *flagTimeout, *flagDelay)
	if !report(results) {
		os.Exit(1)
	}
}
