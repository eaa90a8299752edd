// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/sparsemat/pipeline"
)

const (
	leftSuffix    = "_1.txt"
	rightSuffix   = "_2.txt"
	resultsSuffix = "_results.txt"
)

// Pair is one left/right input couple sharing a stem.
type Pair struct {
	Stem  string // file name without the _1.txt suffix
	Left  string // <dir>/<stem>_1.txt
	Right string // <dir>/<stem>_2.txt
}

// Discover lists the pairs in dir, ordered by stem. Left files without a
// right partner are returned in skipped (the missing partner's path).
func Discover(dir string) (pairs []Pair, skipped []string, err error) {
	ents, err := os.ReadDir(dir) // sorted by file name
	if err != nil {
		return nil, nil, fmt.Errorf("discover %s: %w", dir, err)
	}
	for _, ent := range ents {
		name := ent.Name()
		if ent.IsDir() || !strings.HasSuffix(name, leftSuffix) {
			continue
		}
		stem := strings.TrimSuffix(name, leftSuffix)
		right := filepath.Join(dir, stem+rightSuffix)
		if fi, statErr := os.Stat(right); statErr != nil || fi.IsDir() {
			skipped = append(skipped, right)
			continue
		}
		pairs = append(pairs, Pair{Stem: stem, Left: filepath.Join(dir, name), Right: right})
	}

	return pairs, skipped, nil
}

// OutputPath names the result file of op for stem inside outDir.
func OutputPath(outDir, stem string, op pipeline.Operation) string {
	return filepath.Join(outDir, stem+"_"+op.String()+resultsSuffix)
}
