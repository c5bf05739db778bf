// SPDX-License-Identifier: MIT
// Dense kernels: Add, Mul, Scale, Transpose, Trace.
// Every kernel allocates a fresh result and never mutates its operands.
// Loop orders are fixed, so identical inputs give bit-identical outputs.

package matrix

// Add returns a + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opAdd, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return nil, matrixErrorf(opAdd, ErrDimensionMismatch)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for i := range a.data {
		res.data[i] = a.data[i] + b.data[i]
	}

	return res, nil
}

// Mul returns the product a·b.
//
// Implementation:
//   - i-k-j loop order over the flat slices so the inner loop streams a
//     row of b; zero entries of a are skipped, which keeps sparse
//     adjacency powers cheap.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity: O(r·k·c) worst case.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	res := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		rowA := a.data[i*a.c : (i+1)*a.c]
		rowR := res.data[i*b.c : (i+1)*b.c]
		for k, av := range rowA {
			if av == 0 {
				continue
			}
			rowB := b.data[k*b.c : (k+1)*b.c]
			for j, bv := range rowB {
				rowR[j] += av * bv
			}
		}
	}

	return res, nil
}

// Trace returns Σ m[i][i] of a square matrix.
func Trace(m *Dense) (float64, error) {
	if m == nil {
		return 0, matrixErrorf(opTrace, ErrNilMatrix)
	}
	if m.r != m.c {
		return 0, matrixErrorf(opTrace, ErrNonSquare)
	}
	t := 0.0
	for i := 0; i < m.r; i++ {
		t += m.data[i*m.c+i]
	}

	return t, nil
}
