// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (dictionary of keys) & accessors.
//
// Purpose:
//   - Store only non-zero int64 entries in a map keyed by (row, col).
//   - Keep the "no stored zero" invariant in exactly one place: Set.
//   - Never fail on access: At returns 0 for absent coordinates and Set
//     accepts any coordinate, inside the declared shape or not.
//
// Complexity quicksheet:
//   - New: O(1); At/Set/Has: O(1) average; Entries: O(nnz) (+ sort when
//     WithSortedOutput); Clone/Equal: O(nnz).

package matrix

import (
	"cmp"
	"fmt"
	"slices"
)

const ctxNew = "New" // ctor tag used in error wrappers

// Sparse is a rows×cols integer matrix that stores only its non-zero
// entries. The zero value is a usable empty 0×0 matrix.
type Sparse struct {
	rows, cols int             // declared shape, fixed once set
	data       map[coord]int64 // non-zero entries only
	opts       Options         // output / ingestion policy
}

// New creates an empty rows×cols Sparse matrix.
// Stage 1 (Validate): rows, cols >= 0; negative extents yield ErrBadShape.
// Stage 2 (Prepare): resolve options and allocate the entry map.
// Complexity: O(1).
func New(rows, cols int, opts ...Option) (*Sparse, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return newSparse(rows, cols, gatherOptions(opts...)), nil
}

// Zero returns an empty 0×0 matrix with default options.
func Zero() *Sparse {
	return newSparse(0, 0, defaultOptions())
}

// newSparse is the unchecked constructor used by kernels and the parser.
func newSparse(rows, cols int, o Options) *Sparse {
	return &Sparse{rows: rows, cols: cols, data: make(map[coord]int64), opts: o}
}

// Rows returns the declared row count.
// Complexity: O(1).
func (m *Sparse) Rows() int { return m.rows }

// Cols returns the declared column count.
// Complexity: O(1).
func (m *Sparse) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Sparse) Shape() (rows, cols int) { return m.rows, m.cols }

// Options returns the matrix policy.
func (m *Sparse) Options() Options { return m.opts }

// NNZ returns the number of stored (non-zero) entries.
// Complexity: O(1).
func (m *Sparse) NNZ() int { return len(m.data) }

// At returns the value stored at (row, col), or 0 if nothing is stored.
// Never fails; coordinates outside the declared shape simply read as 0
// unless something was Set there.
// Complexity: O(1) average.
func (m *Sparse) At(row, col int) int64 {
	return m.data[coord{row, col}] // missing key reads as zero
}

// Has reports whether a non-zero entry is stored at (row, col).
func (m *Sparse) Has(row, col int) bool {
	_, ok := m.data[coord{row, col}]

	return ok
}

// Set stores v at (row, col). A zero v removes any existing entry instead
// of storing it (no-op if absent). Coordinates are not bounds-checked.
// Complexity: O(1) average.
func (m *Sparse) Set(row, col int, v int64) {
	k := coord{row, col}
	if v == 0 {
		delete(m.data, k) // zero is represented by absence
		return
	}
	if m.data == nil {
		m.data = make(map[coord]int64) // zero-value Sparse
	}
	m.data[k] = v
}

// Each calls fn for every stored entry until fn returns false.
// Order is map iteration order, or row-major under WithSortedOutput.
func (m *Sparse) Each(fn func(Entry) bool) {
	if m.opts.sorted {
		for _, e := range m.sortedEntries() {
			if !fn(e) {
				return
			}
		}
		return
	}
	for k, v := range m.data {
		if !fn(Entry{Row: k.row, Col: k.col, Value: v}) {
			return
		}
	}
}

// Entries returns a snapshot of the stored entries.
// Order is map iteration order, or row-major under WithSortedOutput.
// Complexity: O(nnz) (+ O(nnz log nnz) when sorted).
func (m *Sparse) Entries() []Entry {
	if m.opts.sorted {
		return m.sortedEntries()
	}
	out := make([]Entry, 0, len(m.data))
	for k, v := range m.data {
		out = append(out, Entry{Row: k.row, Col: k.col, Value: v})
	}

	return out
}

// sortedEntries returns the entries ordered by (row, col).
func (m *Sparse) sortedEntries() []Entry {
	out := make([]Entry, 0, len(m.data))
	for k, v := range m.data {
		out = append(out, Entry{Row: k.row, Col: k.col, Value: v})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})

	return out
}

// Clone returns a deep copy with the same shape, entries and options.
// Complexity: O(nnz).
func (m *Sparse) Clone() *Sparse {
	cp := newSparse(m.rows, m.cols, m.opts)
	for k, v := range m.data {
		cp.data[k] = v
	}

	return cp
}

// Equal reports whether m and o have the same shape and the same entry set.
// Options are not compared. Two nil matrices are equal.
// Complexity: O(nnz).
func (m *Sparse) Equal(o *Sparse) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols || len(m.data) != len(o.data) {
		return false
	}
	for k, v := range m.data {
		if ov, ok := o.data[k]; !ok || ov != v {
			return false
		}
	}

	return true
}

// GoString gives a compact description for %#v and test failure output.
func (m *Sparse) GoString() string {
	return fmt.Sprintf("matrix.Sparse{rows:%d, cols:%d, nnz:%d}", m.rows, m.cols, len(m.data))
}
