// SPDX-License-Identifier: MIT

package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/socnet/core"
)

// PageRank computes PageRank prestige (PRP) with the unnormalized update
//
//	PRP(v) = (1−d) + d·Σ_{u→v} PRP(u)/out(u)
//
// Implementation:
//   - Stage 1: Start every vertex at 1/n.
//   - Stage 2: Jacobi sweeps: each iteration reads only the previous
//     vector, so the result does not depend on vertex order.
//   - Stage 3: Stop when the largest per-vertex change is below Tolerance or
//     after MaxIterations sweeps.
//
// With WithWeights(true) u passes PRP(u)·w(u→v)/Σ_out w(u) instead. A
// vertex without inbound arcs settles at 1−d (0.15 by default). Std =
// PRP/ΣPRP, so the standardized column sums to 1.
//
// Complexity: O(k·(V + E)) for k iterations.
func PageRank(snap *core.Snapshot, opts ...Option) (*Report, error) {
	if snap == nil {
		return nil, fmt.Errorf("PageRank: %w", ErrNilInput)
	}
	o := gather(opts)
	n := snap.Len()

	outW := make([]float64, n)
	for u, row := range snap.Out {
		for _, a := range row {
			if o.Weights {
				outW[u] += a.Weight
			} else {
				outW[u]++
			}
		}
	}

	prev := make([]float64, n)
	next := make([]float64, n)
	for i := range prev {
		prev[i] = 1 / float64(n)
	}
	for iter := 0; iter < o.MaxIterations; iter++ {
		change := 0.0
		for v := 0; v < n; v++ {
			sum := 0.0
			for _, a := range snap.In[v] {
				u := a.To
				if outW[u] == 0 {
					continue
				}
				share := 1.0
				if o.Weights {
					share = a.Weight
				}
				sum += prev[u] * share / outW[u]
			}
			next[v] = (1 - o.Damping) + o.Damping*sum
			change = math.Max(change, math.Abs(next[v]-prev[v]))
		}
		prev, next = next, prev
		if change < o.Tolerance {
			break
		}
	}

	raw := prev
	total := 0.0
	for _, v := range raw {
		total += v
	}

	return newReport(PageRankPrestige, append([]int(nil), snap.Names...), raw, divideAll(raw, total), nil), nil
}
