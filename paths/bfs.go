// SPDX-License-Identifier: MIT
package paths

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

// BFS runs an unweighted multi-level traversal from source.
//
// Implementation:
//   - Stage 1: Seed a FIFO queue with source (Dist 0, Sigma 1).
//   - Stage 2: Dequeue u, append it to Order, scan its outbound arcs. A
//     first encounter of w sets Dist[w] = Dist[u]+1 and enqueues w. Any
//     encounter with Dist[w] == Dist[u]+1 adds Sigma[u] to Sigma[w] and
//     appends u to Pred[w].
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func BFS(snap *core.Snapshot, source int) (*Tree, error) {
	if err := validate(snap, source); err != nil {
		return nil, fmt.Errorf("BFS: %w", err)
	}

	t := newTree(snap.Len(), source)
	queue := make([]int, 0, snap.Len())
	queue = append(queue, source)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		t.Order = append(t.Order, u)
		next := t.Dist[u] + 1
		for _, a := range snap.Out[u] {
			w := a.To
			if t.Dist[w] == Unreached {
				t.Dist[w] = next
				queue = append(queue, w)
			}
			if t.Dist[w] == next {
				t.Sigma[w] += t.Sigma[u]
				t.Pred[w] = append(t.Pred[w], u)
			}
		}
	}

	return t, nil
}

// Run computes the shortest-path tree from source, using Dijkstra when the
// snapshot carries non-unit weights and BFS otherwise.
func Run(snap *core.Snapshot, source int, opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if snap != nil && snap.Weighted && !o.ForceUnweighted {
		return dijkstra(snap, source, o)
	}

	return BFS(snap, source)
}

func validate(snap *core.Snapshot, source int) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	if source < 0 || source >= snap.Len() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, snap.Len())
	}

	return nil
}
