// SPDX-License-Identifier: MIT
package paths_test

import (
	"testing"

	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/paths"
)

func ringSnapshot(b *testing.B, n int, w float64) *core.Snapshot {
	b.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(i)
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(i, (i+1)%n, w, 0, core.Mutual)
		_ = g.AddEdge(i, (i+7)%n, w, 0, core.Mutual)
	}
	snap, err := g.CurrentSnapshot()
	if err != nil {
		b.Fatal(err)
	}

	return snap
}

func BenchmarkBFS(b *testing.B) {
	snap := ringSnapshot(b, 2000, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr, _ := paths.BFS(snap, i%snap.Len())
		tr.Accumulate(make([]float64, snap.Len()), nil)
	}
}

func BenchmarkDijkstra(b *testing.B) {
	snap := ringSnapshot(b, 2000, 2.5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = paths.Dijkstra(snap, i%snap.Len())
	}
}
