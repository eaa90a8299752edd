// Package matrix offers a sparse integer matrix and its text encoding.
//
// The matrix package provides:
//
//   - Sparse, a dictionary-of-keys matrix that stores only non-zero int64
//     entries keyed by (row, col). Zero is never stored: Set(i, j, 0)
//     deletes the entry.
//   - Add, Sub and Mul kernels that walk the stored entries instead of a
//     dense r×c grid. Operands are never mutated.
//   - Parse / ReadFile and String / WriteTo / WriteFile for the line-based
//     format:
//
//     rows=<R>
//     cols=<C>
//     (r, c, v)
//     ...
//
// Every ingestion failure is reported as ErrFormat; every shape conflict
// between operands as ErrDimensionMismatch. Match them with errors.Is.
//
// Entry order follows map iteration unless the matrix was built with
// WithSortedOutput, in which case entries are emitted row-major.
//
// See the examples in this package for usage patterns.
package matrix
