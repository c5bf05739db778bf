// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns names in insertion (position) order.
//
// Concurrency:
//   - All state guarded by Graph.mu; observers are notified after unlock.

package core

import "fmt"

// AddVertex inserts an enabled vertex with the given name (idempotent).
//
// Implementation:
//   - Stage 1: Under the write lock, check the index; return early if present.
//   - Stage 2: Append to vertices, record position in index, bump version.
//   - Stage 3: Notify observers outside the lock.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(name int) error {
	g.mu.Lock()
	if _, exists := g.index[name]; exists {
		g.mu.Unlock()
		return nil // no-op for existing vertex
	}
	g.index[name] = len(g.vertices)
	g.vertices = append(g.vertices, newVertex(name))
	ver := g.bump()
	g.mu.Unlock()

	g.notify(Event{Kind: EventVertexAdded, Vertex: name, Version: ver})

	return nil
}

// HasVertex reports whether a vertex with the given name exists.
// Complexity: O(1).
func (g *Graph) HasVertex(name int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[name]

	return ok
}

// RemoveVertex deletes a vertex, every arc referencing it in every
// relation, and renumbers the index of every vertex whose position shifted.
//
// Implementation:
//   - Stage 1: Resolve position (ErrVertexNotFound).
//   - Stage 2: For every relation, detach outbound arcs from the targets'
//     inbound maps and inbound arcs from the sources' outbound maps.
//   - Stage 3: Cut the vertex out of the slice and rewrite index entries
//     for positions pos..n-2.
//
// Complexity:
//   - Time O(deg(v) + n), Space O(1).
func (g *Graph) RemoveVertex(name int) error {
	g.mu.Lock()
	pos, ok := g.index[name]
	if !ok {
		g.mu.Unlock()
		return fmt.Errorf("RemoveVertex(%d): %w", name, ErrVertexNotFound)
	}
	v := g.vertices[pos]

	for rel, targets := range v.out {
		for to := range targets {
			if tp, ok := g.index[to]; ok {
				delete(g.vertices[tp].in[rel], name)
			}
		}
	}
	for rel, sources := range v.in {
		for from := range sources {
			if fp, ok := g.index[from]; ok {
				delete(g.vertices[fp].out[rel], name)
			}
		}
	}

	copy(g.vertices[pos:], g.vertices[pos+1:])
	g.vertices[len(g.vertices)-1] = nil
	g.vertices = g.vertices[:len(g.vertices)-1]
	delete(g.index, name)
	for i := pos; i < len(g.vertices); i++ {
		g.index[g.vertices[i].Name] = i
	}
	ver := g.bump()
	g.mu.Unlock()

	g.notify(Event{Kind: EventVertexRemoved, Vertex: name, Version: ver})

	return nil
}

// SetVertexEnabled toggles whether analytics include the vertex.
// Setting the current value is a no-op and does not bump the version.
func (g *Graph) SetVertexEnabled(name int, enabled bool) error {
	g.mu.Lock()
	pos, ok := g.index[name]
	if !ok {
		g.mu.Unlock()
		return fmt.Errorf("SetVertexEnabled(%d): %w", name, ErrVertexNotFound)
	}
	v := g.vertices[pos]
	if v.Enabled == enabled {
		g.mu.Unlock()
		return nil
	}
	v.Enabled = enabled
	ver := g.bump()
	g.mu.Unlock()

	g.notify(Event{Kind: EventVertexToggled, Vertex: name, Enabled: enabled, Version: ver})

	return nil
}

// IsEnabled reports the enabled flag of a vertex.
func (g *Graph) IsEnabled(name int) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	pos, ok := g.index[name]
	if !ok {
		return false, fmt.Errorf("IsEnabled(%d): %w", name, ErrVertexNotFound)
	}

	return g.vertices[pos].Enabled, nil
}

// Position returns the current slice position of a vertex.
// The position is only stable until the next RemoveVertex.
func (g *Graph) Position(name int) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	pos, ok := g.index[name]

	return pos, ok
}

// Vertices returns all vertex names in position order.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.Name
	}

	return out
}

// VertexCount returns the number of vertices, enabled or not. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Version returns the mutation counter. Two equal versions observed on the
// same Graph describe the same topology, weights and enabled flags.
func (g *Graph) Version() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.version
}

// bump increments the version; caller holds the write lock.
func (g *Graph) bump() uint64 {
	g.version++

	return g.version
}
