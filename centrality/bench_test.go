// SPDX-License-Identifier: MIT
package centrality_test

import (
	"testing"

	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/core"
)

func BenchmarkPageRank(b *testing.B) {
	g := core.NewGraph()
	const n = 2000
	for i := 0; i < n; i++ {
		_ = g.AddVertex(i)
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(i, (i+1)%n, 1, 0, core.Directed)
		_ = g.AddEdge(i, (i*31+7)%n, 1, 0, core.Directed)
	}
	snap, _ := g.CurrentSnapshot()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = centrality.PageRank(snap)
	}
}

func BenchmarkInformation(b *testing.B) {
	g := core.NewGraph()
	const n = 150
	for i := 0; i < n; i++ {
		_ = g.AddVertex(i)
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(i, (i+1)%n, 1, 0, core.Mutual)
	}
	snap, _ := g.CurrentSnapshot()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = centrality.Information(snap)
	}
}
