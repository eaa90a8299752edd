// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Sparse storage and accessors.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewBadShape ensures that New rejects negative dimensions.
func TestNewBadShape(t *testing.T) {
	_, err := matrix.New(-1, 5) // negative rows
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New(5, -1) // negative cols
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewEmptyShapes verifies zero-extent matrices are legal.
func TestNewEmptyShapes(t *testing.T) {
	m, err := matrix.New(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Zero(t, m.NNZ())

	z := matrix.Zero()
	require.True(t, z.Equal(m))

	var zero matrix.Sparse // zero value is usable
	zero.Set(0, 0, 3)
	require.Equal(t, int64(3), zero.At(0, 0))
}

// TestRowsColsShape verifies the shape accessors.
func TestRowsColsShape(t *testing.T) {
	m, err := matrix.New(3, 4)
	require.NoError(t, err)

	r, c := m.Shape()
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
}

// TestSetGet covers get(set(M,r,c,v),r,c) == v and zero-deletes.
func TestSetGet(t *testing.T) {
	m, err := matrix.New(2, 3)
	require.NoError(t, err)

	m.Set(1, 2, 7)
	require.Equal(t, int64(7), m.At(1, 2))
	require.True(t, m.Has(1, 2))
	require.Equal(t, 1, m.NNZ())

	m.Set(1, 2, -4) // overwrite
	require.Equal(t, int64(-4), m.At(1, 2))
	require.Equal(t, 1, m.NNZ())

	m.Set(1, 2, 0) // zero removes the entry
	require.Equal(t, int64(0), m.At(1, 2))
	require.False(t, m.Has(1, 2))
	require.Zero(t, m.NNZ())

	m.Set(0, 0, 0) // removing an absent entry is a no-op
	require.Zero(t, m.NNZ())
}

// TestAtAbsentNeverFails reads inside and outside the declared shape.
func TestAtAbsentNeverFails(t *testing.T) {
	m, err := matrix.New(2, 2)
	require.NoError(t, err)

	require.Equal(t, int64(0), m.At(1, 1))
	require.Equal(t, int64(0), m.At(-1, 9))
}

// TestSetOutOfRangeAccepted keeps the permissive mutation policy.
func TestSetOutOfRangeAccepted(t *testing.T) {
	m, err := matrix.New(2, 2)
	require.NoError(t, err)

	m.Set(5, 7, 9)
	require.Equal(t, int64(9), m.At(5, 7))
	require.Equal(t, 2, m.Rows()) // shape is not widened
	require.Equal(t, 2, m.Cols())
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := mustSparse(t, 2, 2, e(0, 0, 1), e(1, 1, 2))

	clone := m.Clone()
	require.True(t, clone.Equal(m))

	clone.Set(0, 0, 3)
	clone.Set(0, 1, 5)
	require.Equal(t, int64(1), m.At(0, 0)) // original unchanged
	require.False(t, m.Has(0, 1))
	require.Equal(t, int64(3), clone.At(0, 0))
	require.False(t, clone.Equal(m))
}

// TestEqual compares shapes and entry sets.
func TestEqual(t *testing.T) {
	a := mustSparse(t, 2, 2, e(0, 0, 1))
	tests := []struct {
		name string
		b    *matrix.Sparse
		want bool
	}{
		{"same", mustSparse(t, 2, 2, e(0, 0, 1)), true},
		{"other value", mustSparse(t, 2, 2, e(0, 0, 2)), false},
		{"other key", mustSparse(t, 2, 2, e(1, 0, 1)), false},
		{"extra entry", mustSparse(t, 2, 2, e(0, 0, 1), e(1, 1, 1)), false},
		{"other shape", mustSparse(t, 3, 2, e(0, 0, 1)), false},
		{"nil", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, a.Equal(tc.b))
		})
	}

	var n1, n2 *matrix.Sparse
	require.True(t, n1.Equal(n2))
}

// TestEntriesSorted checks row-major order under WithSortedOutput.
func TestEntriesSorted(t *testing.T) {
	m, err := matrix.FromEntries(3, 3,
		[]matrix.Entry{e(2, 0, 1), e(0, 2, 2), e(1, 1, 3), e(0, 0, 4)},
		matrix.WithSortedOutput())
	require.NoError(t, err)

	require.Equal(t, []matrix.Entry{e(0, 0, 4), e(0, 2, 2), e(1, 1, 3), e(2, 0, 1)}, m.Entries())
}

// TestEntriesUnsortedSameSet checks the default order carries the same set.
func TestEntriesUnsortedSameSet(t *testing.T) {
	m := mustSparse(t, 3, 3, e(2, 0, 1), e(0, 2, 2), e(1, 1, 3))
	require.ElementsMatch(t, []matrix.Entry{e(0, 2, 2), e(1, 1, 3), e(2, 0, 1)}, m.Entries())
}

// TestEachStopsEarly ensures Each honours a false return.
func TestEachStopsEarly(t *testing.T) {
	for _, opt := range []matrix.Option{matrix.WithSortedOutput(), matrix.WithUnsortedOutput()} {
		m, err := matrix.FromEntries(2, 2, []matrix.Entry{e(0, 0, 1), e(0, 1, 2), e(1, 1, 3)}, opt)
		require.NoError(t, err)

		calls := 0
		m.Each(func(matrix.Entry) bool {
			calls++
			return false
		})
		require.Equal(t, 1, calls)
	}
}

// TestEntryString checks the file encoding of one entry.
func TestEntryString(t *testing.T) {
	require.Equal(t, "(3, 4, -12)", e(3, 4, -12).String())
}
