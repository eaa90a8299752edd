// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical kernels.
//   - Avoid logic duplication: each facade delegates to exactly one kernel.

package matrix

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(nnz(a) + nnz(b)).
func Sum(a, b *Sparse) (*Sparse, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(nnz(a) + nnz(b)).
func Diff(a, b *Sparse) (*Sparse, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(nnz(a) · b.Cols()).
func Product(a, b *Sparse) (*Sparse, error) { return Mul(a, b) }

// T is an alias for Transpose.
func T(m *Sparse) (*Sparse, error) { return Transpose(m) }

// ZerosLike returns an empty matrix with the shape and options of m.
// Errors: ErrNilMatrix.
func ZerosLike(m *Sparse) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newSparse(m.rows, m.cols, m.opts), nil
}

// FromEntries builds a rows×cols matrix and Sets every entry in order
// (later duplicates overwrite earlier ones; zero values delete).
// Errors: ErrBadShape.
func FromEntries(rows, cols int, entries []Entry, opts ...Option) (*Sparse, error) {
	m, err := New(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		m.Set(e.Row, e.Col, e.Value)
	}

	return m, nil
}
