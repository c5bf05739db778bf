// SPDX-License-Identifier: MIT
package paths

import "math"

// Accumulate replays the tree's discovery order backwards and adds this
// source's dependencies into bc (betweenness) and sc (stress). Either
// slice may be nil to skip that index. Both must have length n otherwise.
//
// Implementation:
//   - Betweenness: δ[u] += σ[u]/σ[w]·(1+δ[w]) for every predecessor u of w;
//     bc[w] += δ[w] for w ≠ source.
//   - Stress: Δ[u] += 1+Δ[w] for every predecessor u of w, so Δ[v] counts
//     shortest-path continuations leaving v; sc[w] += σ[w]·Δ[w] for
//     w ≠ source, which is the number of shortest paths from source that
//     pass through w as an interior vertex.
//
// Complexity:
//   - Time O(V + E), Space O(V).
func (t *Tree) Accumulate(bc, sc []float64) {
	n := len(t.Dist)
	var delta, deltaS []float64
	if bc != nil {
		delta = make([]float64, n)
	}
	if sc != nil {
		deltaS = make([]float64, n)
	}

	for k := len(t.Order) - 1; k >= 0; k-- {
		w := t.Order[k]
		for _, u := range t.Pred[w] {
			if delta != nil {
				delta[u] += t.Sigma[u] / t.Sigma[w] * (1 + delta[w])
			}
			if deltaS != nil {
				deltaS[u] += 1 + deltaS[w]
			}
		}
		if w == t.Source {
			continue
		}
		if delta != nil {
			bc[w] += delta[w]
		}
		if deltaS != nil {
			sc[w] += t.Sigma[w] * deltaS[w]
		}
	}
}

// Reached returns the number of vertices other than the source that the
// traversal reached.
func (t *Tree) Reached() int { return len(t.Order) - 1 }

// IsReached reports whether target has a finite distance.
func (t *Tree) IsReached(target int) bool { return !math.IsInf(t.Dist[target], 1) }

// Eccentricity returns the largest finite distance from the source, or 0
// when nothing else was reached.
func (t *Tree) Eccentricity() float64 {
	ecc := 0.0
	for _, v := range t.Order {
		if t.Dist[v] > ecc {
			ecc = t.Dist[v]
		}
	}

	return ecc
}

// DistanceSum returns the sum of finite distances from the source.
func (t *Tree) DistanceSum() float64 {
	sum := 0.0
	for _, v := range t.Order {
		sum += t.Dist[v]
	}

	return sum
}

// InverseDistanceSum returns Σ_k |N_k|/k over the Levels histogram, which
// equals Σ 1/d(source,t) over reached t ≠ source. Level 0 (zero-weight
// arcs) is skipped.
func (t *Tree) InverseDistanceSum() float64 {
	sum := 0.0
	for k, count := range t.Levels() {
		if k > 0 {
			sum += float64(count) / k
		}
	}

	return sum
}

// Levels returns, for each distinct distance k > 0, the number of reached
// vertices at distance k from the source.
func (t *Tree) Levels() map[float64]int {
	levels := make(map[float64]int)
	for _, v := range t.Order {
		if v == t.Source {
			continue
		}
		levels[t.Dist[v]]++
	}

	return levels
}

// PathTo reconstructs one shortest path from the source to target,
// following the first predecessor at each step. It returns nil when target
// is unreached.
func (t *Tree) PathTo(target int) []int {
	if !t.IsReached(target) {
		return nil
	}
	var rev []int
	for v := target; ; v = t.Pred[v][0] {
		rev = append(rev, v)
		if v == t.Source || len(t.Pred[v]) == 0 {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
