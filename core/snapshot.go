// SPDX-License-Identifier: MIT
// File: snapshot.go
// Role: Immutable, relation-bound views consumed by every analytic package.
// Determinism:
//   - Vertices appear in graph position order; arcs are sorted by target index.
// Concurrency:
//   - Built under the read lock; the result shares nothing with the Graph.

package core

import (
	"fmt"
	"sort"
)

// Arc is a position-indexed arc inside a Snapshot.
type Arc struct {
	To     int // snapshot index of the other endpoint
	Weight float64
}

// Snapshot is a frozen copy of one relation restricted to enabled vertices
// and enabled arcs. Index i in every slice refers to Names[i].
//
// Self-loops are kept out of Out/In and counted in Loops; every analytic in
// this module excludes them.
type Snapshot struct {
	Names    []int
	Out      [][]Arc
	In       [][]Arc
	Relation int
	Version  uint64
	Weighted bool  // true if any kept arc has weight != 1
	Loops    []int // snapshot indices carrying an enabled self-loop

	index map[int]int
}

// Snapshot freezes relation for analysis.
//
// Implementation:
//   - Stage 1: Under the read lock, collect enabled vertices in position order.
//   - Stage 2: Copy enabled arcs whose endpoints are both enabled; route
//     self-loops to Loops.
//   - Stage 3: Sort adjacency rows by target index.
//
// Complexity:
//   - Time O(V + E log d), Space O(V + E).
func (g *Graph) Snapshot(relation int) (*Snapshot, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.checkRelation(relation); err != nil {
		return nil, fmt.Errorf("Snapshot(%d): %w", relation, err)
	}

	s := &Snapshot{Relation: relation, Version: g.version, index: make(map[int]int)}
	for _, v := range g.vertices {
		if !v.Enabled {
			continue
		}
		s.index[v.Name] = len(s.Names)
		s.Names = append(s.Names, v.Name)
	}
	n := len(s.Names)
	s.Out = make([][]Arc, n)
	s.In = make([][]Arc, n)

	for i, name := range s.Names {
		v := g.vertices[g.index[name]]
		for to, l := range v.out[relation] {
			j, ok := s.index[to]
			if !ok || !l.Enabled {
				continue
			}
			if i == j {
				s.Loops = append(s.Loops, i)
				continue
			}
			s.Out[i] = append(s.Out[i], Arc{To: j, Weight: l.Weight})
			s.In[j] = append(s.In[j], Arc{To: i, Weight: l.Weight})
			if l.Weight != 1 {
				s.Weighted = true
			}
		}
	}
	for i := 0; i < n; i++ {
		sortArcs(s.Out[i])
		sortArcs(s.In[i])
	}
	sort.Ints(s.Loops)

	return s, nil
}

// CurrentSnapshot freezes the current relation.
func (g *Graph) CurrentSnapshot() (*Snapshot, error) {
	return g.Snapshot(g.CurrentRelation())
}

// Len returns the number of vertices in the snapshot.
func (s *Snapshot) Len() int { return len(s.Names) }

// IndexOf maps a vertex name to its snapshot index.
func (s *Snapshot) IndexOf(name int) (int, bool) {
	i, ok := s.index[name]

	return i, ok
}

// Weight returns the weight of arc i→j and whether it exists.
// Complexity: O(log d).
func (s *Snapshot) Weight(i, j int) (float64, bool) {
	row := s.Out[i]
	k := sort.Search(len(row), func(k int) bool { return row[k].To >= j })
	if k < len(row) && row[k].To == j {
		return row[k].Weight, true
	}

	return 0, false
}

// HasArc reports whether arc i→j exists.
func (s *Snapshot) HasArc(i, j int) bool {
	_, ok := s.Weight(i, j)

	return ok
}

// IsSymmetric reports whether every arc i→j has a reverse j→i with the
// same weight. Complexity: O(E log d).
func (s *Snapshot) IsSymmetric() bool {
	for i, row := range s.Out {
		for _, a := range row {
			w, ok := s.Weight(a.To, i)
			if !ok || w != a.Weight {
				return false
			}
		}
	}

	return true
}

// IsIsolated reports whether vertex i has no arcs in either direction.
func (s *Snapshot) IsIsolated(i int) bool {
	return len(s.Out[i]) == 0 && len(s.In[i]) == 0
}

// Isolates counts isolated vertices.
func (s *Snapshot) Isolates() int {
	n := 0
	for i := range s.Names {
		if s.IsIsolated(i) {
			n++
		}
	}

	return n
}

// ArcCount returns the number of (non-loop) arcs.
func (s *Snapshot) ArcCount() int {
	m := 0
	for _, row := range s.Out {
		m += len(row)
	}

	return m
}

// Density returns arcs / (n·(n−1)); for a symmetric snapshot this equals
// edges / (n·(n−1)/2). Zero for n < 2.
func (s *Snapshot) Density() float64 {
	n := len(s.Names)
	if n < 2 {
		return 0
	}

	return float64(s.ArcCount()) / float64(n*(n-1))
}

func sortArcs(row []Arc) {
	sort.Slice(row, func(a, b int) bool { return row[a].To < row[b].To })
}
