// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, kernels and the codec.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "strconv"

// coord is the composite (row, col) map key of a Sparse matrix.
// Using two ints keeps the key compact and hash-friendly.
type coord struct {
	row int // row index
	col int // column index
}

// Entry is one stored (row, col, value) triple. Value is never zero for
// entries produced by a Sparse.
type Entry struct {
	Row   int
	Col   int
	Value int64
}

// String renders the entry in the file encoding: "(r, c, v)".
func (e Entry) String() string {
	return string(e.appendTo(make([]byte, 0, 24)))
}

// appendTo appends the "(r, c, v)" encoding of e to b.
func (e Entry) appendTo(b []byte) []byte {
	b = append(b, _entryOpen...)
	b = strconv.AppendInt(b, int64(e.Row), 10)
	b = append(b, _entrySep...)
	b = strconv.AppendInt(b, int64(e.Col), 10)
	b = append(b, _entrySep...)
	b = strconv.AppendInt(b, e.Value, 10)

	return append(b, _entryClose...)
}
