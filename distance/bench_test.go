// SPDX-License-Identifier: MIT
package distance_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/distance"
)

func benchSnapshot(b *testing.B, n int) *core.Snapshot {
	b.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(i)
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(i, (i+1)%n, 1, 0, core.Mutual)
		_ = g.AddEdge(i, (i*13+5)%n, 1, 0, core.Directed)
	}
	snap, err := g.CurrentSnapshot()
	if err != nil {
		b.Fatal(err)
	}

	return snap
}

func BenchmarkComputeSerial(b *testing.B) {
	snap := benchSnapshot(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distance.Compute(context.Background(), snap, distance.WithWorkers(1), distance.WithCentralities(true))
	}
}

func BenchmarkComputeParallel(b *testing.B) {
	snap := benchSnapshot(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distance.Compute(context.Background(), snap, distance.WithCentralities(true))
	}
}
