// Copyright 2025 The Plotgen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
)

// A result records one module run.
type result struct {
	module
	ok      bool
	err     error
	elapsed time.Duration
}

// command builds the argument vector for a module: the family binary
// plus its data and output directories under root.
func command(bin, root string, m module) []string {
	dir := filepath.Join(root, m.Dir)
	return []string{
		filepath.Join(bin, m.Dir),
		"-data", filepath.Join(dir, "data"),
		"-o", filepath.Join(dir, "plot"),
	}
}

// runOne executes argv with the given timeout, returning the combined
// output. A timeout is reported as an error.
func runOne(argv []string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return out, fmt.Errorf("timed out after %v", timeout)
	}
	return out, err
}

// runAll runs each module in order with a fixed delay in between.
// Failures are recorded, not fatal.
func runAll(modules []module, bin, root string, timeout, delay time.Duration) []result {
	results := make([]result, 0, len(modules))
	for i, m := range modules {
		if i > 0 {
			time.Sleep(delay)
		}
		argv := command(bin, root, m)
		pterm.DefaultSection.Printf("Running %s", m.Title)
		pterm.Printf("$ %s\n", shellquote.Join(argv...))

		start := time.Now()
		out, err := runOne(argv, timeout)
		elapsed := time.Since(start)
		if len(out) > 0 {
			os.Stdout.Write(out)
		}
		if err != nil {
			pterm.Error.Printf("%s failed: %v\n", m.Title, err)
		} else {
			pterm.Success.Printf("%s completed in %.2fs\n", m.Title, elapsed.Seconds())
		}
		results = append(results, result{module: m, ok: err == nil, err: err, elapsed: elapsed})
	}
	return results
}

// report prints the summary table and returns whether every module
// succeeded.
func report(results []result) bool {
	pterm.DefaultSection.Println("Summary Report")

	rows := pterm.TableData{{"Module", "Status", "Time"}}
	var total time.Duration
	failed := 0
	for _, r := range results {
		status := "ok"
		if !r.ok {
			failed++
			status = fmt.Sprintf("failed: %v", r.err)
		}
		rows = append(rows, []string{r.Title, status, fmt.Sprintf("%.2fs", r.elapsed.Seconds())})
		total += r.elapsed
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		pterm.Println(err)
	}

	pterm.Printf("\nModules run: %d, total time: %.2fs\n", len(results), total.Seconds())
	if failed == 0 {
		pterm.Success.Println("All plotting modules completed successfully")
		return true
	}
	pterm.Error.Printf("%d of %d modules failed\n", failed, len(results))
	return false
}
