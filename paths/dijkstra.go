// SPDX-License-Identifier: MIT
package paths

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/socnet/core"
)

// Dijkstra runs a weighted traversal from source.
//
// Path-count rules for a candidate length alt = Dist[u] + len(u→w):
//   - alt shorter than Dist[w] by more than Epsilon: overwrite Dist[w],
//     reset Sigma[w] to Sigma[u], restart Pred[w] with u.
//   - alt within Epsilon of Dist[w]: add Sigma[u] to Sigma[w], append u.
//
// Arcs into an already settled vertex are ignored, so zero-length arcs
// cannot introduce cycles into the predecessor graph.
//
// Complexity:
//   - Time O((V + E) log V), Space O(V + E) for the lazy heap.
func Dijkstra(snap *core.Snapshot, source int, opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return dijkstra(snap, source, o)
}

func dijkstra(snap *core.Snapshot, source int, o Options) (*Tree, error) {
	if err := validate(snap, source); err != nil {
		return nil, fmt.Errorf("Dijkstra: %w", err)
	}

	r := &runner{
		snap:    snap,
		opts:    o,
		tree:    newTree(snap.Len(), source),
		settled: make([]bool, snap.Len()),
		pq:      make(nodePQ, 0, snap.Len()),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
	if err := r.process(); err != nil {
		return nil, fmt.Errorf("Dijkstra: %w", err)
	}

	return r.tree, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	snap    *core.Snapshot
	opts    Options
	tree    *Tree
	settled []bool
	pq      nodePQ
}

// process pops vertices in distance order and relaxes their arcs.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.settled[u] || item.dist > r.tree.Dist[u] {
			continue // stale entry
		}
		r.settled[u] = true
		r.tree.Order = append(r.tree.Order, u)
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every outbound arc of the settled vertex u.
func (r *runner) relax(u int) error {
	t := r.tree
	for _, a := range r.snap.Out[u] {
		w := a.To
		if r.settled[w] {
			continue
		}
		length, ok, err := r.length(a.Weight)
		if err != nil {
			return fmt.Errorf("%w: arc %d→%d weight=%g", err, r.snap.Names[u], r.snap.Names[w], a.Weight)
		}
		if !ok {
			continue
		}
		alt := t.Dist[u] + length
		switch {
		case alt < t.Dist[w]-Epsilon:
			t.Dist[w] = alt
			t.Sigma[w] = t.Sigma[u]
			t.Pred[w] = append(t.Pred[w][:0], u)
			heap.Push(&r.pq, &nodeItem{id: w, dist: alt})
		case math.Abs(alt-t.Dist[w]) <= Epsilon:
			t.Sigma[w] += t.Sigma[u]
			t.Pred[w] = append(t.Pred[w], u)
		}
	}

	return nil
}

// length converts a weight to an arc length; ok is false for arcs that
// cannot be traversed.
func (r *runner) length(weight float64) (float64, bool, error) {
	if weight < 0 {
		return 0, false, ErrNegativeWeight
	}
	if !r.opts.InvertWeights {
		return weight, true, nil
	}
	if weight == 0 {
		return 0, false, nil
	}

	return 1 / weight, true, nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id for
// deterministic tie-breaking. Outdated entries stay in the heap and are
// skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by ascending distance.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
