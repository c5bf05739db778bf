// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; kernels wrap them with the
// operation tag (matrixErrorf) and callers match with errors.Is. No kernel
// panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when requested shape is invalid (r<0 or c<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when Gauss-Jordan elimination meets a pivot
	// whose magnitude is below PivotTolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilSnapshot indicates that a nil *core.Snapshot was passed to an adapter.
	ErrNilSnapshot = errors.New("matrix: snapshot is nil")

	// ErrBadPower indicates a negative walk length.
	ErrBadPower = errors.New("matrix: walk length must be >= 0")
)

// Operation tags used in wrapped errors.
const (
	opAdd       = "Add"
	opMul       = "Mul"
	opTrace     = "Trace"
	opInverse   = "Inverse"
	opPower     = "WalksOfLength"
	opTotal     = "TotalWalks"
	opAdjacency = "Adjacency"
)

// matrixErrorf wraps err as "<tag>: <err>"; err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
