// SPDX-License-Identifier: MIT

// Package matrix - text codec for Sparse matrices.
//
// Format:
//
//	rows=<R>
//	cols=<C>
//	(r, c, v)
//	...
//
// Parsing rules:
//   - Line 1 must be rows=<int>, line 2 cols=<int>; whitespace around the key
//     and the value is tolerated, negative extents are not.
//   - Every further line is trimmed. Blank lines are skipped. Any other line
//     must match (r, c, v) exactly; the first line that does not aborts the
//     parse.
//   - Every failure (unreadable input, short input, bad header, bad integer,
//     unmatched line, strict-bounds violation) is reported as ErrFormat.
//
// Serialization writes the two header lines, each newline-terminated, then
// the entry lines joined by "\n" with no trailing newline.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxParse     = "Parse"
	ctxReadFile  = "ReadFile"
	ctxWriteFile = "WriteFile"
)

// ---------- Formatting literals ----------

const (
	_keyRows    = "rows"
	_keyCols    = "cols"
	_keySep     = "="
	_entryOpen  = "("
	_entrySep   = ", "
	_entryClose = ")"
	_newline    = "\n"
)

// outputFileMode is the permission of files created by WriteFile.
const outputFileMode = 0o644

// maxLineBytes bounds a single input line. Longer lines are a format error.
const maxLineBytes = 1 << 20

// entryPattern is the strict (row, col, value) triple. Whitespace is only
// tolerated after the commas.
var entryPattern = regexp.MustCompile(`^\((\d+),\s*(\d+),\s*(-?\d+)\)$`)

// formatErrorf folds any ingestion failure into ErrFormat, keeping the cause
// and the 1-based line number in the message.
func formatErrorf(tag string, line int, cause error) error {
	if line > 0 {
		return fmt.Errorf("%s: line %d: %w: %w", tag, line, ErrFormat, cause)
	}

	return fmt.Errorf("%s: %w: %w", tag, ErrFormat, cause)
}

// Parse reads one matrix in the text format from r.
//
// Implementation:
//   - Stage 1: read and decode the rows= and cols= header lines.
//   - Stage 2: scan the remaining lines, skip blanks, match each against the
//     strict triple pattern and apply it with Set (zero values are dropped).
//   - Stage 3: under WithStrictBounds, reject coordinates outside the header.
//
// Errors: ErrFormat (always; the cause is wrapped alongside).
// Complexity: O(L) for L input bytes.
func Parse(r io.Reader, opts ...Option) (*Sparse, error) {
	o := gatherOptions(opts...)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	// Stage 1: header
	rows, err := scanHeader(sc, 1, _keyRows)
	if err != nil {
		return nil, err
	}
	cols, err := scanHeader(sc, 2, _keyCols)
	if err != nil {
		return nil, err
	}
	m := newSparse(rows, cols, o)

	// Stage 2: entries
	var (
		text string
		e    Entry
	)
	line := 2 // header lines consumed
	for sc.Scan() {
		line++
		text = strings.TrimSpace(sc.Text())
		if text == "" {
			continue // blank lines are permitted anywhere after the header
		}
		if e, err = parseEntry(text); err != nil {
			return nil, formatErrorf(ctxParse, line, err)
		}
		// Stage 3: optional bound check against the declared shape
		if o.strictBounds && !m.inBounds(e.Row, e.Col) {
			return nil, formatErrorf(ctxParse, line,
				fmt.Errorf("(%d, %d) outside %dx%d: %w", e.Row, e.Col, rows, cols, ErrOutOfRange))
		}
		m.Set(e.Row, e.Col, e.Value)
	}
	if err = sc.Err(); err != nil {
		return nil, formatErrorf(ctxParse, line+1, err)
	}

	return m, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, opts ...Option) (*Sparse, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ReadFile opens path and parses it. The file is closed on every path.
// A missing or unreadable file is reported as ErrFormat.
func ReadFile(path string, opts ...Option) (*Sparse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, formatErrorf(ctxReadFile, 0, err)
	}
	defer f.Close()

	m, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ctxReadFile, path, err)
	}

	return m, nil
}

// scanHeader consumes one "<key>=<int>" line.
func scanHeader(sc *bufio.Scanner, line int, key string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, formatErrorf(ctxParse, line, err)
		}
		return 0, formatErrorf(ctxParse, line, fmt.Errorf("missing %s%s header", key, _keySep))
	}
	k, v, ok := strings.Cut(sc.Text(), _keySep)
	if !ok || strings.TrimSpace(k) != key {
		return 0, formatErrorf(ctxParse, line, fmt.Errorf("want %s%s<int>, got %q", key, _keySep, sc.Text()))
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, formatErrorf(ctxParse, line, err)
	}
	if n < 0 {
		return 0, formatErrorf(ctxParse, line, fmt.Errorf("%s=%d: %w", key, n, ErrBadShape))
	}

	return n, nil
}

// parseEntry decodes one trimmed "(r, c, v)" line.
func parseEntry(text string) (Entry, error) {
	g := entryPattern.FindStringSubmatch(text)
	if g == nil {
		return Entry{}, fmt.Errorf("want (row, col, value), got %q", text)
	}
	row, err := strconv.Atoi(g[1])
	if err != nil {
		return Entry{}, err
	}
	col, err := strconv.Atoi(g[2])
	if err != nil {
		return Entry{}, err
	}
	val, err := strconv.ParseInt(g[3], 10, 64)
	if err != nil {
		return Entry{}, err
	}

	return Entry{Row: row, Col: col, Value: val}, nil
}

// ---------- Serialization ----------

// appendText appends the encoded matrix to b.
// Complexity: O(nnz) (+ sort under WithSortedOutput).
func (m *Sparse) appendText(b []byte) []byte {
	b = append(b, _keyRows+_keySep...)
	b = strconv.AppendInt(b, int64(m.rows), 10)
	b = append(b, _newline+_keyCols+_keySep...)
	b = strconv.AppendInt(b, int64(m.cols), 10)
	b = append(b, _newline...)

	first := true
	m.Each(func(e Entry) bool {
		if !first {
			b = append(b, _newline...) // join; no trailing newline
		}
		first = false
		b = e.appendTo(b)
		return true
	})

	return b
}

// String renders the matrix in the file format. It implements fmt.Stringer.
func (m *Sparse) String() string {
	return string(m.appendText(nil))
}

// Format is the package-level serializer; it equals m.String().
func Format(m *Sparse) string { return m.String() }

// WriteTo writes the encoded matrix to w. It implements io.WriterTo.
func (m *Sparse) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(m.appendText(nil))

	return int64(n), err
}

// WriteFile encodes m fully in memory, writes it to a temporary file next to
// path and renames it into place, so path never holds a partial matrix.
// Every file handle is closed before returning.
func WriteFile(path string, m *Sparse) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxWriteFile, err)
	}
	data := m.appendText(nil)

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%s %s: %w", ctxWriteFile, path, err)
	}
	tmpName := tmp.Name()
	if err = tmp.Chmod(outputFileMode); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s %s: %w", ctxWriteFile, path, err)
	}
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s %s: %w", ctxWriteFile, path, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s %s: %w", ctxWriteFile, path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s %s: %w", ctxWriteFile, path, err)
	}

	return nil
}
