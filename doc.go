// Package sparsemat is a small toolkit for integer sparse matrices stored
// as text files.
//
// What is in the box?
//
//	matrix/          — Sparse (dictionary of keys), Add/Sub/Mul kernels,
//	                   Parse/ReadFile and String/WriteFile codec
//	pipeline/        — one operation end to end: parse → operate → serialize
//	batch/           — pair discovery and concurrent per-operation runs
//	cmd/sparsecalc/  — command-line entry point
//	examples/        — walk counting with sparse matrix powers
//
// File format:
//
//	rows=3
//	cols=3
//	(0, 0, 1)
//	(1, 2, -4)
//
// Only non-zero entries are listed; blank lines between entries are allowed.
//
//	go install github.com/katalvlaran/sparsemat/cmd/sparsecalc@latest
package sparsemat
