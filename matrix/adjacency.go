// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/socnet/core"
)

// Adjacency builds the n×n adjacency matrix of snap. Row i, column j holds
// the weight of arc i→j (1 with WithOmitWeights), 0 when absent. Self-loops
// are never written; the diagonal is zero.
//
// The returned names slice maps matrix rows to vertex names; it differs
// from snap.Names only with WithDropIsolates.
//
// Implementation:
//   - Stage 1: Select the kept snapshot indices and build old→new positions.
//   - Stage 2: Scan outbound arcs of kept vertices and write cells.
//   - Stage 3: With WithSymmetrize, fold (i,j)/(j,i) to their maximum.
//
// Errors:
//   - ErrNilSnapshot.
//
// Complexity:
//   - Time O(n² + E), Space O(n²).
func Adjacency(snap *core.Snapshot, opts ...Option) (*Dense, []int, error) {
	if snap == nil {
		return nil, nil, matrixErrorf(opAdjacency, ErrNilSnapshot)
	}
	o := gatherOptions(opts)

	pos := make([]int, snap.Len())
	names := make([]int, 0, snap.Len())
	for i, name := range snap.Names {
		if o.dropIsolates && snap.IsIsolated(i) {
			pos[i] = -1
			continue
		}
		pos[i] = len(names)
		names = append(names, name)
	}

	n := len(names)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opAdjacency, err)
	}
	for i, row := range snap.Out {
		r := pos[i]
		if r < 0 {
			continue
		}
		for _, a := range row {
			c := pos[a.To]
			if c < 0 {
				continue
			}
			v := a.Weight
			if o.omitWeights {
				v = 1
			}
			m.data[r*n+c] = v
		}
	}
	if o.symmetrize {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				v := m.data[i*n+j]
				if w := m.data[j*n+i]; w > v {
					v = w
				}
				m.data[i*n+j], m.data[j*n+i] = v, v
			}
		}
	}

	return m, names, nil
}
