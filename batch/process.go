// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sparsemat/pipeline"
)

// Result is the outcome of one (pair, operation) unit.
type Result struct {
	Pair   Pair
	Op     pipeline.Operation
	Output string // target file; exists only when Err == nil
	Err    error
}

// Report collects every unit outcome in (stem, operation) order.
type Report struct {
	Results []Result
	Skipped []string // missing right-hand files
}

// Failed counts units that returned an error.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}

	return n
}

// Succeeded counts units that wrote their output.
func (r Report) Succeeded() int { return len(r.Results) - r.Failed() }

// Process discovers pairs under cfg.InputDir and runs add, subtract and
// multiply for each, cfg.Workers units at a time. Unit failures are kept in
// the Report and logged; they never abort other units. The returned error is
// non-nil only for setup failures or when ctx ends before all units ran.
func Process(ctx context.Context, cfg Config, logger *log.Logger) (Report, error) {
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	pairs, skipped, err := Discover(cfg.InputDir)
	if err != nil {
		return Report{}, err
	}
	if err = os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Report{}, fmt.Errorf("create output dir: %w", err)
	}

	ops := pipeline.Operations()
	rep := Report{Results: make([]Result, 0, len(pairs)*len(ops)), Skipped: skipped}
	for _, p := range pairs {
		for _, op := range ops {
			rep.Results = append(rep.Results, Result{Pair: p, Op: op, Output: OutputPath(cfg.OutputDir, p.Stem, op)})
		}
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	opts := cfg.MatrixOptions()

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range rep.Results {
		res := &rep.Results[i] // each unit owns its slot
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				res.Err = err
				return nil
			}
			res.Err = pipeline.RunToFile(res.Pair.Left, res.Pair.Right, res.Op.String(), res.Output, opts...)
			return nil // unit failures stay in the report
		})
	}
	_ = g.Wait() // goroutines never return errors

	for _, path := range rep.Skipped {
		logger.Printf("Matrix file %s does not exist, skipping.", path)
	}
	for _, res := range rep.Results {
		if res.Err != nil {
			logger.Printf("Failed to %s matrices for %s: %v", res.Op.Verb(), filepath.Base(res.Pair.Left), res.Err)
			continue
		}
		logger.Printf("%s result written to %s", res.Op.Noun(), res.Output)
	}
	logger.Printf("%d pairs: %d written, %d failed, %d skipped",
		len(pairs), rep.Succeeded(), rep.Failed(), len(rep.Skipped))

	if err = ctx.Err(); err != nil {
		return rep, fmt.Errorf("batch interrupted: %w", err)
	}

	return rep, nil
}
