// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/matrix"
)

// Compute parses pathA and pathB, then dispatches on name.
// Both inputs are parsed before the operation name is checked, so an
// unreadable input is reported ahead of an unknown operation.
// opts apply to both parsed matrices and thus to the result.
func Compute(pathA, pathB, name string, opts ...matrix.Option) (*matrix.Sparse, error) {
	a, err := matrix.ReadFile(pathA, opts...)
	if err != nil {
		return nil, err
	}
	b, err := matrix.ReadFile(pathB, opts...)
	if err != nil {
		return nil, err
	}
	op, err := ParseOperation(name)
	if err != nil {
		return nil, err
	}
	res, err := Apply(op, a, b)
	if err != nil {
		return nil, fmt.Errorf("%s %s, %s: %w", op, pathA, pathB, err)
	}

	return res, nil
}

// Run parses both inputs, applies the named operation and returns the
// serialized result.
func Run(pathA, pathB, name string, opts ...matrix.Option) (string, error) {
	res, err := Compute(pathA, pathB, name, opts...)
	if err != nil {
		return "", err
	}

	return res.String(), nil
}

// RunToFile is Run with the result written to outPath. Nothing is written
// unless the whole computation succeeds.
func RunToFile(pathA, pathB, name, outPath string, opts ...matrix.Option) error {
	res, err := Compute(pathA, pathB, name, opts...)
	if err != nil {
		return err
	}

	return matrix.WriteFile(outPath, res)
}
