// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/katalvlaran/sparsemat/matrix"
)

// ErrNoInputDir is returned when no input directory is configured.
var ErrNoInputDir = errors.New("batch: input directory is required")

// ErrBadWorkers is returned for a negative worker count.
var ErrBadWorkers = errors.New("batch: workers must be >= 0")

// Config holds batch configuration.
type Config struct {
	InputDir  string        `env:"SPARSEMAT_INPUT_DIR" envDefault:"sample_inputs"`
	OutputDir string        `env:"SPARSEMAT_OUTPUT_DIR" envDefault:"sample_results"`
	Workers   int           `env:"SPARSEMAT_WORKERS" envDefault:"1"`
	Sorted    bool          `env:"SPARSEMAT_SORTED"`
	Strict    bool          `env:"SPARSEMAT_STRICT"`
	Timeout   time.Duration `env:"SPARSEMAT_TIMEOUT" envDefault:"10m"`
}

// ParseConfig loads Config from the environment, then lets flags in args
// override it. Callers may register extra flags on fs before calling.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.InputDir, "in", cfg.InputDir, "directory holding <stem>_1.txt / <stem>_2.txt pairs (default: SPARSEMAT_INPUT_DIR)")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "directory for <stem>_<op>_results.txt files (default: SPARSEMAT_OUTPUT_DIR)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "operations run concurrently (0 = one per CPU)")
	fs.BoolVar(&cfg.Sorted, "sorted", cfg.Sorted, "write entries ordered by (row, col)")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "reject entries outside the rows=/cols= header")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the fields Process depends on.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return ErrNoInputDir
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrBadWorkers)
	}

	return nil
}

// MatrixOptions translates the config into parser/serializer options.
func (c Config) MatrixOptions() []matrix.Option {
	opts := make([]matrix.Option, 0, 2)
	if c.Sorted {
		opts = append(opts, matrix.WithSortedOutput())
	}
	if c.Strict {
		opts = append(opts, matrix.WithStrictBounds())
	}

	return opts
}
