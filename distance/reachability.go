// SPDX-License-Identifier: MIT

package distance

import (
	"math"

	"github.com/katalvlaran/socnet/core"
)

// Reachability is the boolean closure of a Matrix with per-vertex influence
// sets. reach[i][j] holds exactly when d(i,j) is finite and i ≠ j.
type Reachability struct {
	names  []int
	reach  [][]bool
	ranges [][]int
	domain [][]int
}

// NewReachability derives the reachability matrix and influence sets.
// Complexity: O(V²).
func NewReachability(m *Matrix) *Reachability {
	n := m.Len()
	r := &Reachability{
		names:  m.Names,
		reach:  make([][]bool, n),
		ranges: make([][]int, n),
		domain: make([][]int, n),
	}
	for i := 0; i < n; i++ {
		r.reach[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			if i == j || math.IsInf(m.Dist[i][j], 1) {
				continue
			}
			r.reach[i][j] = true
			r.ranges[i] = append(r.ranges[i], j)
			r.domain[j] = append(r.domain[j], i)
		}
	}

	return r
}

// Len returns the number of vertices.
func (r *Reachability) Len() int { return len(r.names) }

// Reachable reports whether j is reachable from i (i ≠ j).
func (r *Reachability) Reachable(i, j int) bool {
	if i < 0 || j < 0 || i >= len(r.reach) || j >= len(r.reach) {
		return false
	}

	return r.reach[i][j]
}

// InfluenceRange returns the positions reachable from i, ascending.
func (r *Reachability) InfluenceRange(i int) []int {
	if i < 0 || i >= len(r.ranges) {
		return nil
	}

	return append([]int(nil), r.ranges[i]...)
}

// InfluenceDomain returns the positions that can reach i, ascending.
func (r *Reachability) InfluenceDomain(i int) []int {
	if i < 0 || i >= len(r.domain) {
		return nil
	}

	return append([]int(nil), r.domain[i]...)
}

// Connectedness classifies the global connectivity of a snapshot.
type Connectedness int

const (
	// StronglyConnected: directed, every vertex reaches every other.
	StronglyConnected Connectedness = iota + 1
	// Connected: symmetric and a single component.
	Connected
	// Disconnected: symmetric, several components, no isolates.
	Disconnected
	// DisconnectedWithIsolates: symmetric, several components, some isolates.
	DisconnectedWithIsolates
	// Unilateral: directed, every pair connected in at least one direction.
	Unilateral
	// DisconnectedDigraph: directed, some pair unconnected both ways, no isolates.
	DisconnectedDigraph
	// DisconnectedDigraphWithIsolates: as DisconnectedDigraph with isolates.
	DisconnectedDigraphWithIsolates
)

var connectednessNames = map[Connectedness]string{
	StronglyConnected:               "strongly connected",
	Connected:                       "connected",
	Disconnected:                    "disconnected",
	DisconnectedWithIsolates:        "disconnected with isolates",
	Unilateral:                      "unilaterally connected",
	DisconnectedDigraph:             "disconnected digraph",
	DisconnectedDigraphWithIsolates: "disconnected digraph with isolates",
}

// String implements fmt.Stringer.
func (c Connectedness) String() string {
	if s, ok := connectednessNames[c]; ok {
		return s
	}

	return "unknown"
}

// Classify decides the Connectedness of snap from its reachability.
//
// Decision table:
//
//	symmetric, no unconnected pair            → Connected
//	symmetric, unconnected pairs, no isolates → Disconnected
//	symmetric, unconnected pairs, isolates    → DisconnectedWithIsolates
//	directed, every ordered pair connected    → StronglyConnected
//	directed, every pair one-way connected    → Unilateral
//	directed, otherwise, no isolates          → DisconnectedDigraph
//	directed, otherwise, isolates             → DisconnectedDigraphWithIsolates
//
// A digraph that is only weakly connected falls in the DisconnectedDigraph
// rows: some pair has no directed path either way.
func Classify(snap *core.Snapshot, r *Reachability) Connectedness {
	n := r.Len()
	strong, unilateral := true, true
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ij, ji := r.reach[i][j], r.reach[j][i]
			if !ij || !ji {
				strong = false
			}
			if !ij && !ji {
				unilateral = false
			}
		}
	}
	isolates := snap.Isolates() > 0

	if snap.IsSymmetric() {
		switch {
		case strong:
			return Connected
		case isolates:
			return DisconnectedWithIsolates
		default:
			return Disconnected
		}
	}
	switch {
	case strong:
		return StronglyConnected
	case unilateral:
		return Unilateral
	case isolates:
		return DisconnectedDigraphWithIsolates
	default:
		return DisconnectedDigraph
	}
}
