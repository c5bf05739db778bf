// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// PivotTolerance is the smallest pivot magnitude Inverse accepts.
const PivotTolerance = 1e-12

// Inverse computes m⁻¹ by Gauss-Jordan elimination with partial pivoting
// on the augmented matrix [m | I].
//
// Implementation:
//   - Stage 1: Validate non-nil and square; copy m into a working buffer
//     and initialise the result to I.
//   - Stage 2: For each column k pick the row p ≥ k with the largest |m[p][k]|;
//     fail with ErrSingular when it is below PivotTolerance; swap rows
//     p and k in both halves.
//   - Stage 3: Normalise row k, then eliminate column k from every other
//     row.
//
// Behavior highlights:
//   - Deterministic: ties in pivot magnitude keep the lowest row index.
//   - The input is never mutated; a 0×0 input yields a 0×0 result.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (wrapped with the column).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opInverse, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, matrixErrorf(opInverse, ErrNonSquare)
	}
	n := m.r
	work := m.Clone()
	inv, _ := Identity(n)
	a, b := work.data, inv.data

	for k := 0; k < n; k++ {
		p := k
		best := math.Abs(a[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				best, p = v, i
			}
		}
		if best < PivotTolerance {
			return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			swapRows(a, n, p, k)
			swapRows(b, n, p, k)
		}

		pivot := a[k*n+k]
		for j := 0; j < n; j++ {
			a[k*n+j] /= pivot
			b[k*n+j] /= pivot
		}
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			f := a[i*n+k]
			if f == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
				b[i*n+j] -= f * b[k*n+j]
			}
		}
	}

	return inv, nil
}

func swapRows(data []float64, n, i, j int) {
	ri := data[i*n : (i+1)*n]
	rj := data[j*n : (j+1)*n]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
