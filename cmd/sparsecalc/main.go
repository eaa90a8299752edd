// Package main runs sparse-matrix arithmetic over text files.
//
// Batch mode (default) pairs <stem>_1.txt with <stem>_2.txt under -in and
// writes <stem>_{add,subtract,multiply}_results.txt under -out:
//
//	sparsecalc -in sample_inputs -out sample_results -workers 4
//
// Single mode runs one operation on two files and prints or writes it:
//
//	sparsecalc -a A.txt -b B.txt -op multiply [-o C.txt]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/sparsemat/batch"
	"github.com/katalvlaran/sparsemat/pipeline"
)

// single holds the flags of single-operation mode.
type single struct {
	left, right string
	op          string
	out         string
}

func main() {
	var one single
	flag.StringVar(&one.left, "a", "", "left matrix file (single mode)")
	flag.StringVar(&one.right, "b", "", "right matrix file (single mode)")
	flag.StringVar(&one.op, "op", string(pipeline.OpAdd), "operation: add, subtract or multiply (single mode)")
	flag.StringVar(&one.out, "o", "", "output file (single mode; default stdout)")

	cfg, err := batch.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("Error: %v", err)
	}

	if one.left != "" || one.right != "" {
		if err := runSingle(one, cfg, os.Stdout); err != nil {
			exitf("Error: %v", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	logger := log.New(os.Stdout, "", 0)
	rep, err := batch.Process(ctx, cfg, logger)
	if err != nil {
		exitf("Error: %v", err)
	}
	if rep.Failed() > 0 {
		os.Exit(1)
	}
}

// runSingle executes one operation; the result goes to one.out or w.
func runSingle(one single, cfg batch.Config, w io.Writer) error {
	if one.left == "" || one.right == "" {
		return errors.New("single mode needs both -a and -b")
	}
	if one.out != "" {
		return pipeline.RunToFile(one.left, one.right, one.op, one.out, cfg.MatrixOptions()...)
	}
	text, err := pipeline.Run(one.left, one.right, one.op, cfg.MatrixOptions()...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, text)

	return err
}

// exitf writes a formatted error message to stderr and exits with code 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
