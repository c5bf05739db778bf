// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// WalksOfLength returns A^length: entry (i,j) counts the walks of exactly
// that many steps from i to j (weighted by arc products when A carries
// weights). A^0 is the identity; WalksOfLength(A, 1) equals A.
//
// Implementation:
//   - gonum mat.Dense.Pow, which squares and multiplies over the binary
//     expansion of length, so the number of products is O(log length).
//
// Complexity: O(n³ log length).
func WalksOfLength(a *Dense, length int) (*Dense, error) {
	if err := checkWalkInput(a, length); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if a.r == 0 {
		return a.Clone(), nil
	}
	var p mat.Dense
	p.Pow(a.ToGonum(), length)

	return FromGonum(&p), nil
}

// TotalWalks returns Σ_{k=1..length} A^k, the number of walks of any
// length from 1 to length. TotalWalks(A, 0) is the zero matrix.
//
// Complexity: O(n³ · length).
func TotalWalks(a *Dense, length int) (*Dense, error) {
	if err := checkWalkInput(a, length); err != nil {
		return nil, matrixErrorf(opTotal, err)
	}
	sum, _ := NewDense(a.r, a.c)
	power := a.Clone()
	var err error
	for k := 1; k <= length; k++ {
		if sum, err = Add(sum, power); err != nil {
			return nil, matrixErrorf(opTotal, err)
		}
		if k < length {
			if power, err = Mul(power, a); err != nil {
				return nil, matrixErrorf(opTotal, err)
			}
		}
	}

	return sum, nil
}

func checkWalkInput(a *Dense, length int) error {
	if a == nil {
		return ErrNilMatrix
	}
	if a.r != a.c {
		return ErrNonSquare
	}
	if length < 0 {
		return fmt.Errorf("%w: %d", ErrBadPower, length)
	}

	return nil
}
