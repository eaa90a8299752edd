// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsemat/matrix"
)

// ErrInvalidOperation is returned for any operation name other than
// "add", "subtract" or "multiply".
var ErrInvalidOperation = errors.New("pipeline: invalid operation")

// Operation selects the arithmetic kernel applied to a pair of matrices.
type Operation string

// Recognized operations.
const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
)

// Operations returns every recognized operation in driver order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply}
}

// ParseOperation maps a literal name to an Operation.
// Names are case-sensitive.
func ParseOperation(name string) (Operation, error) {
	switch op := Operation(name); op {
	case OpAdd, OpSubtract, OpMultiply:
		return op, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrInvalidOperation)
	}
}

// String returns the literal operation name.
func (op Operation) String() string { return string(op) }

// Noun names the operation in report lines ("Addition", ...).
func (op Operation) Noun() string {
	switch op {
	case OpAdd:
		return "Addition"
	case OpSubtract:
		return "Subtraction"
	case OpMultiply:
		return "Multiplication"
	default:
		return string(op)
	}
}

// Verb names the operation in failure lines ("add", ...).
func (op Operation) Verb() string { return string(op) }

// Apply computes a <op> b.
// Errors: ErrInvalidOperation, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Apply(op Operation, a, b *matrix.Sparse) (*matrix.Sparse, error) {
	switch op {
	case OpAdd:
		return matrix.Add(a, b)
	case OpSubtract:
		return matrix.Sub(a, b)
	case OpMultiply:
		return matrix.Mul(a, b)
	default:
		return nil, fmt.Errorf("%q: %w", string(op), ErrInvalidOperation)
	}
}
