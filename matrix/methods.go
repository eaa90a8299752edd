// SPDX-License-Identifier: MIT

// Package matrix provides the arithmetic kernels on Sparse matrices:
// element-wise addition and subtraction, matrix multiplication, transpose
// and scalar scaling. All kernels validate fail-fast, never mutate their
// operands and return a freshly allocated result.
package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and the union walk.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result with a's shape and options.
//   - Stage 2: walk a's keys, then b's keys missing from a (the key union).
//     Every cell is committed through Set, so a zero sum stores nothing.
//
// Complexity: O(nnz(a) + nnz(b)) time, O(nnz(a) + nnz(b)) space.
func addSub(a, b *Sparse, sign int64, tag string) (*Sparse, error) {
	// Stage 1: Validate operands
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res := newSparse(a.rows, a.cols, a.opts)

	// Stage 2: union of occupied coordinates
	for k, av := range a.data {
		res.Set(k.row, k.col, av+sign*b.data[k]) // b.data[k] is 0 when absent
	}
	for k, bv := range b.data {
		if _, seen := a.data[k]; seen {
			continue // already combined above
		}
		res.Set(k.row, k.col, sign*bv)
	}

	return res, nil
}

// Add returns a new matrix C = A + B.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Execute): for every coordinate occupied in A or B, C = A.At + B.At.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz(A) + nnz(B)).
func Add(a, b *Sparse) (*Sparse, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a new matrix C = A - B.
// Same contract as Add.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz(A) + nnz(B)).
func Sub(a, b *Sparse) (*Sparse, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product C = A × B with shape A.Rows × B.Cols.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: A's stored entries drive the outer loop; for each (i,k) the
//     columns j of B are swept densely. The running total for (i,j) is read
//     back with At and committed with Set, so cancelled totals are dropped.
//
// Complexity:
//   - Time O(nnz(A) · B.Cols) regardless of B's sparsity. Space O(nnz(C)).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Mul(a, b *Sparse) (*Sparse, error) {
	// Stage 1: Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := newSparse(a.rows, b.cols, a.opts)

	// Stage 2: sparse outer driver, dense column sweep
	var j int
	for k, av := range a.data {
		for j = 0; j < b.cols; j++ {
			res.Set(k.row, j, res.At(k.row, j)+av*b.At(k.col, j))
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped.
// Errors: ErrNilMatrix.
// Complexity: O(nnz).
func Transpose(m *Sparse) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newSparse(m.cols, m.rows, m.opts)
	for k, v := range m.data {
		res.data[coord{k.col, k.row}] = v // non-zero stays non-zero
	}

	return res, nil
}

// Scale returns a new matrix alpha·m. Scaling by 0 yields an empty matrix
// of the same shape.
// Errors: ErrNilMatrix.
// Complexity: O(nnz).
func Scale(m *Sparse, alpha int64) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newSparse(m.rows, m.cols, m.opts)
	for k, v := range m.data {
		res.Set(k.row, k.col, alpha*v)
	}

	return res, nil
}
