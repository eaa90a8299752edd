// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand validation.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites
//    can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate only on failure.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Sparse) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Used by Add and Sub.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (message names the axis and
// both extents).
// Complexity: O(1).
func ValidateSameShape(a, b *Sparse) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.rows != b.rows {
		return fmt.Errorf("ValidateSameShape: rows %d != %d: %w", a.rows, b.rows, ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return fmt.Errorf("ValidateSameShape: cols %d != %d: %w", a.cols, b.cols, ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Sparse) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.cols != b.rows {
		return fmt.Errorf("ValidateMulCompatible: cols %d != rows %d: %w", a.cols, b.rows, ErrDimensionMismatch)
	}

	return nil
}

// validateShape rejects negative extents.
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("shape %dx%d: %w", rows, cols, ErrBadShape)
	}

	return nil
}

// inBounds reports whether (row, col) lies within [0,rows)×[0,cols).
func (m *Sparse) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}
