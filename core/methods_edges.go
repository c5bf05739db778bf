// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Arc lifecycle, relation management & queries.
//
// Adjacency is stored per vertex as out[relation][target] and mirrored as
// in[relation][source], so both directions answer in O(1).
//
// Concurrency:
//   - All state guarded by Graph.mu; observers are notified after unlock.

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts the arc from→to with the given weight into relation.
//
// With mode == Mutual both directions are inserted in one call and both
// arcs are marked Reciprocal. An arc that already exists in the relation is
// left untouched (no duplicate, no weight overwrite); if nothing was
// inserted the call is a no-op and the version does not change.
//
// Self-loops and zero weights are accepted; see Stats.
//
// Errors:
//   - ErrBadWeight       weight is NaN or ±Inf.
//   - ErrInvalidRelation relation is negative or out of range.
//   - ErrVertexNotFound  from or to does not exist.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to int, weight float64, relation int, mode Reciprocity) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrBadWeight)
	}

	g.mu.Lock()
	if err := g.checkRelation(relation); err != nil {
		g.mu.Unlock()
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, err)
	}
	src, dst, err := g.endpoints(from, to)
	if err != nil {
		g.mu.Unlock()
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, err)
	}

	inserted := insertArc(src, dst, relation, weight)
	if mode == Mutual && from != to {
		if insertArc(dst, src, relation, weight) {
			inserted = true
		}
	}
	if !inserted {
		g.mu.Unlock()
		return nil
	}
	if from != to {
		markReciprocal(src, dst, relation)
	}
	ver := g.bump()
	g.mu.Unlock()

	g.notify(Event{Kind: EventEdgeAdded, From: from, To: to, Relation: relation, Weight: weight, Mode: mode, Version: ver})

	return nil
}

// RemoveEdge deletes from→to (and to→from when mode == Mutual) from relation.
// Returns ErrEdgeNotFound if no arc was removed.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to, relation int, mode Reciprocity) error {
	g.mu.Lock()
	if err := g.checkRelation(relation); err != nil {
		g.mu.Unlock()
		return fmt.Errorf("RemoveEdge(%d→%d): %w", from, to, err)
	}
	src, dst, err := g.endpoints(from, to)
	if err != nil {
		g.mu.Unlock()
		return fmt.Errorf("RemoveEdge(%d→%d): %w", from, to, err)
	}

	removed := deleteArc(src, dst, relation)
	if mode == Mutual && deleteArc(dst, src, relation) {
		removed = true
	}
	if !removed {
		g.mu.Unlock()
		return fmt.Errorf("RemoveEdge(%d→%d): %w", from, to, ErrEdgeNotFound)
	}
	markReciprocal(src, dst, relation)
	ver := g.bump()
	g.mu.Unlock()

	g.notify(Event{Kind: EventEdgeRemoved, From: from, To: to, Relation: relation, Mode: mode, Version: ver})

	return nil
}

// SetEdgeWeight overwrites the weight of an existing arc.
func (g *Graph) SetEdgeWeight(from, to, relation int, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("SetEdgeWeight(%d→%d): %w", from, to, ErrBadWeight)
	}

	return g.updateArc(from, to, relation, func(l *Link) bool {
		if l.Weight == weight {
			return false
		}
		l.Weight = weight

		return true
	}, Event{Kind: EventEdgeWeight, From: from, To: to, Relation: relation, Weight: weight})
}

// SetEdgeEnabled toggles whether traversals may use the arc from→to.
func (g *Graph) SetEdgeEnabled(from, to, relation int, enabled bool) error {
	return g.updateArc(from, to, relation, func(l *Link) bool {
		if l.Enabled == enabled {
			return false
		}
		l.Enabled = enabled

		return true
	}, Event{Kind: EventEdgeToggled, From: from, To: to, Relation: relation, Enabled: enabled})
}

// HasEdge returns the weight of the enabled arc from→to in the current
// relation, or 0 when there is none. A stored zero-weight arc also reads
// as 0; use HasEdgeIn to tell the two apart.
func (g *Graph) HasEdge(from, to int) float64 {
	g.mu.RLock()
	rel := g.current
	g.mu.RUnlock()
	w, _ := g.HasEdgeIn(rel, from, to)

	return w
}

// HasEdgeIn returns the weight of the enabled arc from→to in relation and
// whether such an arc exists. Disabled endpoints hide the arc.
func (g *Graph) HasEdgeIn(relation, from, to int) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	src, dst, err := g.endpoints(from, to)
	if err != nil || !src.Enabled || !dst.Enabled {
		return 0, false
	}
	l, ok := src.out[relation][to]
	if !ok || !l.Enabled {
		return 0, false
	}

	return l.Weight, true
}

// AddRelation appends a new relation and returns its index.
func (g *Graph) AddRelation(name string) int {
	g.mu.Lock()
	g.relations = append(g.relations, name)
	idx := len(g.relations) - 1
	ver := g.bump()
	g.mu.Unlock()

	g.notify(Event{Kind: EventRelationAdded, Relation: idx, Version: ver})

	return idx
}

// ChangeRelation makes idx the current relation used by HasEdge and by
// CurrentSnapshot. Returns ErrInvalidRelation for a bad index.
func (g *Graph) ChangeRelation(idx int) error {
	g.mu.Lock()
	if err := g.checkRelation(idx); err != nil {
		g.mu.Unlock()
		return fmt.Errorf("ChangeRelation(%d): %w", idx, err)
	}
	if g.current == idx {
		g.mu.Unlock()
		return nil
	}
	g.current = idx
	ver := g.bump()
	g.mu.Unlock()

	g.notify(Event{Kind: EventRelationChanged, Relation: idx, Version: ver})

	return nil
}

// CurrentRelation returns the index of the current relation.
func (g *Graph) CurrentRelation() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.current
}

// Relations returns a copy of the relation names, indexed by relation id.
func (g *Graph) Relations() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.relations))
	copy(out, g.relations)

	return out
}

// OutDegree returns the number of enabled, non-loop arcs leaving name in
// relation, counting only enabled targets.
func (g *Graph) OutDegree(name, relation int) (int, error) {
	return g.degree(name, relation, true)
}

// InDegree mirrors OutDegree for inbound arcs.
func (g *Graph) InDegree(name, relation int) (int, error) {
	return g.degree(name, relation, false)
}

func (g *Graph) degree(name, relation int, outbound bool) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	pos, ok := g.index[name]
	if !ok {
		return 0, fmt.Errorf("degree(%d): %w", name, ErrVertexNotFound)
	}
	adj := g.vertices[pos].in[relation]
	if outbound {
		adj = g.vertices[pos].out[relation]
	}
	n := 0
	for other, l := range adj {
		if other == name || !l.Enabled {
			continue
		}
		if op, ok := g.index[other]; ok && g.vertices[op].Enabled {
			n++
		}
	}

	return n, nil
}

// Stats is a read-only summary of the store, including the degenerate
// inputs that analytics treat specially.
type Stats struct {
	Vertices        int
	EnabledVertices int
	Arcs            int // all relations
	SelfLoops       int // all relations
	ZeroWeightArcs  int // all relations
	Relations       int
	Version         uint64
}

// Stats produces a snapshot of catalog sizes. Complexity: O(V+E).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s := Stats{Vertices: len(g.vertices), Relations: len(g.relations), Version: g.version}
	for _, v := range g.vertices {
		if v.Enabled {
			s.EnabledVertices++
		}
		for _, targets := range v.out {
			for to, l := range targets {
				s.Arcs++
				if to == v.Name {
					s.SelfLoops++
				}
				if l.Weight == 0 {
					s.ZeroWeightArcs++
				}
			}
		}
	}

	return s
}

// Internal helper methods:
////////////////////

// checkRelation validates idx; caller holds a lock.
func (g *Graph) checkRelation(idx int) error {
	if idx < 0 || idx >= len(g.relations) {
		return ErrInvalidRelation
	}

	return nil
}

// endpoints resolves both vertices; caller holds a lock.
func (g *Graph) endpoints(from, to int) (*Vertex, *Vertex, error) {
	fp, ok := g.index[from]
	if !ok {
		return nil, nil, ErrVertexNotFound
	}
	tp, ok := g.index[to]
	if !ok {
		return nil, nil, ErrVertexNotFound
	}

	return g.vertices[fp], g.vertices[tp], nil
}

// updateArc applies fn to the arc from→to (both mirrors) under the write
// lock, bumping the version only when fn reports a change.
func (g *Graph) updateArc(from, to, relation int, fn func(*Link) bool, ev Event) error {
	g.mu.Lock()
	if err := g.checkRelation(relation); err != nil {
		g.mu.Unlock()
		return fmt.Errorf("updateArc(%d→%d): %w", from, to, err)
	}
	src, dst, err := g.endpoints(from, to)
	if err != nil {
		g.mu.Unlock()
		return fmt.Errorf("updateArc(%d→%d): %w", from, to, err)
	}
	l, ok := src.out[relation][to]
	if !ok {
		g.mu.Unlock()
		return fmt.Errorf("updateArc(%d→%d): %w", from, to, ErrEdgeNotFound)
	}
	if !fn(&l) {
		g.mu.Unlock()
		return nil
	}
	src.out[relation][to] = l
	dst.in[relation][from] = l
	ev.Version = g.bump()
	g.mu.Unlock()

	g.notify(ev)

	return nil
}

// insertArc stores src→dst if absent and reports whether it inserted.
func insertArc(src, dst *Vertex, relation int, weight float64) bool {
	if _, exists := src.out[relation][dst.Name]; exists {
		return false
	}
	if src.out[relation] == nil {
		src.out[relation] = make(map[int]Link)
	}
	if dst.in[relation] == nil {
		dst.in[relation] = make(map[int]Link)
	}
	l := Link{Weight: weight, Enabled: true}
	src.out[relation][dst.Name] = l
	dst.in[relation][src.Name] = l

	return true
}

// deleteArc removes src→dst and reports whether it existed.
func deleteArc(src, dst *Vertex, relation int) bool {
	if _, exists := src.out[relation][dst.Name]; !exists {
		return false
	}
	delete(src.out[relation], dst.Name)
	delete(dst.in[relation], src.Name)

	return true
}

// markReciprocal recomputes the Reciprocal flag of a↔b in relation.
func markReciprocal(a, b *Vertex, relation int) {
	ab, okAB := a.out[relation][b.Name]
	ba, okBA := b.out[relation][a.Name]
	both := okAB && okBA
	if okAB {
		ab.Reciprocal = both
		a.out[relation][b.Name] = ab
		b.in[relation][a.Name] = ab
	}
	if okBA {
		ba.Reciprocal = both
		b.out[relation][a.Name] = ba
		a.in[relation][b.Name] = ba
	}
}
