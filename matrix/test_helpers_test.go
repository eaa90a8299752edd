// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels and codec.
//   • Keep random fills seeded so failures reproduce.

package matrix_test

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
)

// mustParse parses s or fails the test.
func mustParse(tb testing.TB, s string, opts ...matrix.Option) *matrix.Sparse {
	tb.Helper()
	m, err := matrix.ParseString(s, opts...)
	if err != nil {
		tb.Fatalf("ParseString(%q): %v", s, err)
	}

	return m
}

// mustSparse builds an r×c matrix from entries or fails the test.
func mustSparse(tb testing.TB, r, c int, entries ...matrix.Entry) *matrix.Sparse {
	tb.Helper()
	m, err := matrix.FromEntries(r, c, entries)
	if err != nil {
		tb.Fatalf("FromEntries(%d,%d): %v", r, c, err)
	}

	return m
}

// e is a terse Entry literal for tables.
func e(r, c int, v int64) matrix.Entry { return matrix.Entry{Row: r, Col: c, Value: v} }

// sorted returns m's entries ordered by (row, col) regardless of m's options.
func sorted(m *matrix.Sparse) []matrix.Entry {
	out := m.Entries()
	slices.SortFunc(out, func(a, b matrix.Entry) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})

	return out
}

// randSparse fills an r×c matrix with about nnz random entries in [-9, 9]
// (zeros drawn are simply not stored). Deterministic for a given seed.
func randSparse(tb testing.TB, r, c, nnz int, seed int64) *matrix.Sparse {
	tb.Helper()
	m, err := matrix.New(r, c)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < nnz; i++ {
		m.Set(rng.Intn(r), rng.Intn(c), int64(rng.Intn(19)-9))
	}

	return m
}

// denseOf expands m into a row-major [][]int64 for reference computations.
func denseOf(m *matrix.Sparse) [][]int64 {
	out := make([][]int64, m.Rows())
	for i := range out {
		out[i] = make([]int64, m.Cols())
		for j := range out[i] {
			out[i][j] = m.At(i, j)
		}
	}

	return out
}
