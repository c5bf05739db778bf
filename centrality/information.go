// SPDX-License-Identifier: MIT

package centrality

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/matrix"
)

// Information computes Stephenson–Zelen information centrality (IC).
//
// Implementation:
//   - Stage 1: Build the symmetrized adjacency X without isolates (weights
//     only with WithWeights(true)).
//   - Stage 2: T[i][i] = 1 + Σ_j X[i][j], T[i][j] = 1 − X[i][j].
//   - Stage 3: C = T⁻¹ by Gauss-Jordan; with R the row sum of C (equal for
//     every row), IC(i) = 1 / (C[i][i] + (trace(C) − 2R)/n).
//   - Stage 4: Isolated vertices score 0. Std = IC/ΣIC.
//
// Errors:
//   - ErrSingularMatrix when T cannot be inverted.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Information(snap *core.Snapshot, opts ...Option) (*Report, error) {
	if snap == nil {
		return nil, fmt.Errorf("Information: %w", ErrNilInput)
	}
	o := gather(opts)

	adjOpts := []matrix.Option{matrix.WithDropIsolates(), matrix.WithSymmetrize()}
	if !o.Weights {
		adjOpts = append(adjOpts, matrix.WithOmitWeights())
	}
	x, kept, err := matrix.Adjacency(snap, adjOpts...)
	if err != nil {
		return nil, fmt.Errorf("Information: %w", err)
	}

	raw := make([]float64, snap.Len())
	if k := len(kept); k > 0 {
		rows := make([][]float64, k)
		for i := range rows {
			row := x.Row(i)
			deg := 0.0
			for j, v := range row {
				deg += v
				row[j] = 1 - v
			}
			row[i] = 1 + deg
			rows[i] = row
		}
		t, err := matrix.NewDenseFrom(rows)
		if err != nil {
			return nil, fmt.Errorf("Information: %w", err)
		}
		c, err := matrix.Inverse(t)
		if err != nil {
			return nil, fmt.Errorf("Information: %w", err)
		}
		trace, _ := matrix.Trace(c)
		r := c.RowSum(0)
		kf := float64(k)
		for i, name := range kept {
			cii, _ := c.At(i, i)
			pos, _ := snap.IndexOf(name)
			raw[pos] = safeDiv(1, cii+(trace-2*r)/kf)
		}
	}
	total := 0.0
	for _, v := range raw {
		total += v
	}

	return newReport(InformationCentrality, append([]int(nil), snap.Names...), raw, divideAll(raw, total), nil), nil
}
