// Package pipeline runs one sparse-matrix operation end to end:
// parse two input files, apply add, subtract or multiply, and serialize the
// result.
//
// Run returns the encoded result; RunToFile writes it only after parsing,
// computing and serializing have all succeeded, so a failed unit never
// leaves an output file behind.
//
// Errors:
//   - matrix.ErrFormat: an input could not be read or parsed.
//   - matrix.ErrDimensionMismatch: operand shapes do not fit the operation.
//   - ErrInvalidOperation: the operation name is not recognized.
package pipeline
