// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Sparse storage and the codec.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic resolution: no global state, last-writer-wins.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Output order: by default entries are emitted in map iteration order,
//     which Go randomizes. WithSortedOutput makes Entries/String/WriteTo
//     row-major and therefore reproducible.
//   - Bounds policy: Set never validates coordinates. WithStrictBounds only
//     affects ingestion: the parser rejects triples outside the header shape.
//   - Options travel with the matrix. Clone and every kernel result inherit
//     the (left) operand's Options.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSortedOutput controls row-major emission of entries.
	// false ⇒ map iteration order (no canonical sort).
	DefaultSortedOutput = false

	// DefaultStrictBounds controls parser bound checks against rows=/cols=.
	// false ⇒ out-of-range triples are stored as-is.
	DefaultStrictBounds = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds the resolved configuration of a Sparse matrix.
// Fields are unexported; build it with NewOptions or pass ...Option.
type Options struct {
	sorted       bool // emit entries row-major
	strictBounds bool // parser rejects coordinates outside the header shape
}

// Sorted reports whether entries are emitted row-major.
func (o Options) Sorted() bool { return o.sorted }

// StrictBounds reports whether the parser validates coordinates.
func (o Options) StrictBounds() bool { return o.strictBounds }

// WithSortedOutput emits entries ordered by (row, col) ascending.
// Complexity: adds O(nnz log nnz) to every Entries/String/WriteTo call.
func WithSortedOutput() Option {
	return func(o *Options) { o.sorted = true }
}

// WithUnsortedOutput restores map-iteration order (the default).
func WithUnsortedOutput() Option {
	return func(o *Options) { o.sorted = false }
}

// WithStrictBounds makes Parse reject triples whose row or column falls
// outside [0,rows)×[0,cols). The failure is reported as ErrFormat.
func WithStrictBounds() Option {
	return func(o *Options) { o.strictBounds = true }
}

// WithPermissiveBounds accepts any non-negative coordinate during parsing
// (the default).
func WithPermissiveBounds() Option {
	return func(o *Options) { o.strictBounds = false }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Stable for a given sequence of opts; last-writer-wins.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		sorted:       DefaultSortedOutput,
		strictBounds: DefaultStrictBounds,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for constructors and the parser.
// Nil setters are skipped.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
