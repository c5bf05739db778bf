// SPDX-License-Identifier: MIT
// File: types.go
// Role: Vertex, Link, Graph, GraphOption, Reciprocity, sentinel errors and
// the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrEdgeNotFound     - requested arc does not exist in the given relation.
//	ErrBadWeight        - weight is NaN or ±Inf.
//	ErrInvalidRelation  - relation index is negative or out of range.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent arc.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN or infinite weight.
	ErrBadWeight = errors.New("core: weight must be finite")

	// ErrInvalidRelation indicates a negative or out-of-range relation index.
	ErrInvalidRelation = errors.New("core: invalid relation")
)

// DefaultRelationName is the label of relation 0, created by NewGraph.
const DefaultRelationName = "default"

// Reciprocity selects how AddEdge/RemoveEdge treat the reverse direction.
type Reciprocity int

const (
	// Directed touches only the from→to arc.
	Directed Reciprocity = iota

	// Mutual touches both from→to and to→from in one call and marks
	// the pair reciprocal.
	Mutual
)

// String implements fmt.Stringer.
func (r Reciprocity) String() string {
	if r == Mutual {
		return "mutual"
	}

	return "directed"
}

// Link is one arc endpoint stored in a vertex's per-relation adjacency.
//
// The same Link value is mirrored into the target's inbound map, so
// out[rel][to] on the source and in[rel][from] on the target always agree.
type Link struct {
	// Weight is the arc value. Zero is accepted and tracked by Stats.
	Weight float64

	// Enabled reports whether traversals may use the arc.
	Enabled bool

	// Reciprocal is true when the reverse arc exists in the same relation.
	Reciprocal bool
}

// Vertex represents a node of the graph.
//
// Name is the stable integer identifier chosen by the caller; the
// position of a vertex inside the Graph may change when earlier vertices
// are removed, its Name never does.
type Vertex struct {
	// Name is the stable identifier of the vertex.
	Name int

	// Enabled reports whether analytics include the vertex.
	Enabled bool

	out map[int]map[int]Link // relation → target → link
	in  map[int]map[int]Link // relation → source → link
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithRelations names additional relations beyond the default one.
// The first name replaces DefaultRelationName for relation 0.
func WithRelations(names ...string) GraphOption {
	return func(g *Graph) {
		if len(names) == 0 {
			return
		}
		g.relations = append(g.relations[:0], names...)
	}
}

// WithObserver registers an observer notified after every mutation.
func WithObserver(o Observer) GraphOption {
	return func(g *Graph) {
		if o != nil {
			g.observers = append(g.observers, o)
		}
	}
}

// Graph is the in-memory, multi-relational graph store.
//
// vertices keeps insertion order; index maps Name → position and is kept
// consistent with vertices after every insert and remove. version grows by
// one on every structural or weight mutation and is what derived caches key
// on. mu guards everything except observers, which are fixed after
// construction or appended under obsMu.
type Graph struct {
	mu sync.RWMutex

	vertices  []*Vertex
	index     map[int]int
	relations []string
	current   int
	version   uint64

	obsMu     sync.RWMutex
	observers []Observer
}

// NewGraph creates an empty Graph with one relation named DefaultRelationName.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:     make(map[int]int),
		relations: []string{DefaultRelationName},
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// newVertex allocates an enabled vertex with empty adjacency.
func newVertex(name int) *Vertex {
	return &Vertex{
		Name:    name,
		Enabled: true,
		out:     make(map[int]map[int]Link),
		in:      make(map[int]map[int]Link),
	}
}
