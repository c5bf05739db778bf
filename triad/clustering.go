// SPDX-License-Identifier: MIT

package triad

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

// Clustering returns the local clustering coefficient of the vertex at
// snapshot position v: the arcs present among its neighbors divided by the
// arcs possible among them.
//
// Neighbors are all vertices joined to v in either direction; self-loops do
// not count. For k neighbors a digraph allows k(k−1) arcs among them; on a
// symmetric snapshot both the count and the possible pairs are taken per
// edge, k(k−1)/2. Fewer than two neighbors yield 0.
//
// Complexity: O(k² log d).
func Clustering(snap *core.Snapshot, v int) (float64, error) {
	if snap == nil {
		return 0, ErrNilSnapshot
	}
	if v < 0 || v >= snap.Len() {
		return 0, fmt.Errorf("Clustering(%d): %w", v, core.ErrVertexNotFound)
	}

	return clustering(snap, v, snap.IsSymmetric()), nil
}

// AverageClustering returns the mean local clustering coefficient over all
// vertices, 0 for an empty snapshot.
func AverageClustering(snap *core.Snapshot) (float64, error) {
	if snap == nil {
		return 0, ErrNilSnapshot
	}
	n := snap.Len()
	if n == 0 {
		return 0, nil
	}
	symmetric := snap.IsSymmetric()
	sum := 0.0
	for v := 0; v < n; v++ {
		sum += clustering(snap, v, symmetric)
	}

	return sum / float64(n), nil
}

func clustering(snap *core.Snapshot, v int, symmetric bool) float64 {
	nb := neighbors(snap, v)
	k := len(nb)
	if k < 2 {
		return 0
	}
	closed := 0
	for a := 0; a < k; a++ {
		for b := 0; b < k; b++ {
			if a != b && snap.HasArc(nb[a], nb[b]) {
				closed++
			}
		}
	}
	possible := k * (k - 1)
	if symmetric {
		closed /= 2
		possible /= 2
	}

	return float64(closed) / float64(possible)
}

// neighbors returns the sorted union of in- and out-neighbors of v.
func neighbors(snap *core.Snapshot, v int) []int {
	out, in := snap.Out[v], snap.In[v]
	nb := make([]int, 0, len(out)+len(in))
	i, j := 0, 0
	for i < len(out) || j < len(in) {
		switch {
		case j == len(in) || (i < len(out) && out[i].To < in[j].To):
			nb = append(nb, out[i].To)
			i++
		case i == len(out) || in[j].To < out[i].To:
			nb = append(nb, in[j].To)
			j++
		default:
			nb = append(nb, out[i].To)
			i++
			j++
		}
	}

	return nb
}
