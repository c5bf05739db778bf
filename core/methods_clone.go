// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves vertex positions, relation table, current relation and version.
// Concurrency:
//   - Read lock for copying; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: vertices (positions and enabled
// flags), every relation's arcs and the version counter. Observers are not
// carried over.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		vertices:  make([]*Vertex, len(g.vertices)),
		index:     make(map[int]int, len(g.index)),
		relations: append([]string(nil), g.relations...),
		current:   g.current,
		version:   g.version,
	}
	for pos, v := range g.vertices {
		nv := newVertex(v.Name)
		nv.Enabled = v.Enabled
		nv.out = copyAdjacency(v.out)
		nv.in = copyAdjacency(v.in)
		clone.vertices[pos] = nv
		clone.index[v.Name] = pos
	}

	return clone
}

// Clear drops every vertex and arc while keeping the relation table and
// observers. The version keeps growing so stale caches never match.
//
// Complexity: O(1) plus garbage collection of the old catalogs.
func (g *Graph) Clear() {
	g.mu.Lock()
	g.vertices = nil
	g.index = make(map[int]int)
	ver := g.bump()
	g.mu.Unlock()

	g.notify(Event{Kind: EventVertexRemoved, Vertex: -1, Version: ver})
}

func copyAdjacency(src map[int]map[int]Link) map[int]map[int]Link {
	dst := make(map[int]map[int]Link, len(src))
	for rel, row := range src {
		nr := make(map[int]Link, len(row))
		for other, l := range row {
			nr[other] = l
		}
		dst[rel] = nr
	}

	return dst
}
