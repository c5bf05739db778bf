// SPDX-License-Identifier: MIT

package centrality

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

// Degree computes out-degree centrality (DC).
//
// Raw DC is the number of outbound arcs, or the sum of their weights with
// WithWeights(true); self-loops never count. Std divides by n−1, or by ΣDC
// when weighted. Group = Σ(max SDC − SDC_i)/(n−2).
//
// Complexity: O(V + E).
func Degree(snap *core.Snapshot, opts ...Option) (*Report, error) {
	if snap == nil {
		return nil, fmt.Errorf("Degree: %w", ErrNilInput)
	}

	return degree(DegreeCentrality, snap, snap.Out, gather(opts)), nil
}

// DegreePrestige computes in-degree prestige (DP), the inbound mirror of
// Degree with the same standardization and group index.
func DegreePrestige(snap *core.Snapshot, opts ...Option) (*Report, error) {
	if snap == nil {
		return nil, fmt.Errorf("DegreePrestige: %w", ErrNilInput)
	}

	return degree(DegreePrestigeIndex, snap, snap.In, gather(opts)), nil
}

func degree(idx Index, snap *core.Snapshot, adj [][]core.Arc, o Options) *Report {
	n := snap.Len()
	raw := make([]float64, n)
	for i, row := range adj {
		if !o.Weights {
			raw[i] = float64(len(row))
			continue
		}
		for _, a := range row {
			raw[i] += a.Weight
		}
	}

	var std []float64
	if o.Weights {
		total := 0.0
		for _, v := range raw {
			total += v
		}
		std = divideAll(raw, total)
	} else {
		std = divideAll(raw, float64(n-1))
	}

	return newReport(idx, append([]int(nil), snap.Names...), raw, std, func(s Stats) float64 {
		return safeDiv(deviationSum(std, s.Max), float64(n-2))
	})
}
