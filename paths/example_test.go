// SPDX-License-Identifier: MIT
package paths_test

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/paths"
)

// ExampleBFS counts the shortest paths across a square.
func ExampleBFS() {
	g := core.NewGraph()
	for v := 0; v < 4; v++ {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge(0, 1, 1, 0, core.Mutual)
	_ = g.AddEdge(1, 2, 1, 0, core.Mutual)
	_ = g.AddEdge(2, 3, 1, 0, core.Mutual)
	_ = g.AddEdge(3, 0, 1, 0, core.Mutual)
	snap, _ := g.CurrentSnapshot()

	tr, _ := paths.BFS(snap, 0)
	fmt.Println("dist:", tr.Dist[2], "paths:", tr.Sigma[2], "via:", tr.Pred[2])

	// Output:
	// dist: 2 paths: 2 via: [1 3]
}
