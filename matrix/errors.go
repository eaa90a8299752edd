// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels and the parser MUST return these sentinels (optionally
// wrapped with a call-site tag) and tests MUST check them via errors.Is.
// No function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("ctx: %w", ErrX);
// callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> dimension mismatch.
// The parser folds every cause (I/O, header, integer, line shape, bounds)
// into ErrFormat.

var (
	// ErrFormat is returned when text does not follow the rows=/cols=/(r, c, v)
	// layout, or the input could not be read at all. There is no
	// sub-classification: missing header, bad integer, unmatched line and
	// unreadable file all collapse to this one kind.
	ErrFormat = errors.New("matrix: input has wrong format")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadShape is returned when a requested shape is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNilMatrix indicates that a nil *Sparse was passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates a coordinate outside [0,rows)×[0,cols).
	// Only produced under WithStrictBounds, and then always wrapped together
	// with ErrFormat by the parser.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
