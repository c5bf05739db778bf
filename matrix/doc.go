// SPDX-License-Identifier: MIT
// Package matrix provides the dense linear algebra used by socnet's
// matrix-based indices: adjacency construction from a core.Snapshot, walk
// counting and Gauss-Jordan inversion.
//
// Dense is a row-major float64 matrix with bounds-checked At/Set. Kernels
// (Add, Mul, Trace, Inverse, WalksOfLength, TotalWalks) allocate their
// result and never mutate operands. Matrix powers run through gonum/mat via
// ToGonum/FromGonum.
//
// Errors are package sentinels (ErrSingular, ErrNonSquare,
// ErrDimensionMismatch, ...) wrapped with the operation name; match them
// with errors.Is.
//
// Example:
//
//	A, names, _ := matrix.Adjacency(snap, matrix.WithOmitWeights())
//	A3, _ := matrix.WalksOfLength(A, 3)
//	closed, _ := matrix.Trace(A3) // 6 × triangles for a symmetric A
package matrix
