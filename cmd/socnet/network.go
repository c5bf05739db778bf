// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/socnet/builder"
	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/internal/config"
)

// buildGraph turns a network description into a graph.
func buildGraph(n config.Network) (*core.Graph, error) {
	var gopts []core.GraphOption
	if len(n.Relations) > 0 {
		gopts = append(gopts, core.WithRelations(n.Relations...))
	}
	if n.Kind == config.KindEdges {
		return edgeList(core.NewGraph(gopts...), n.Edges)
	}

	bopts := []builder.BuilderOption{builder.WithSeed(n.Seed)}
	if n.MaxWeight > 0 {
		bopts = append(bopts, builder.WithWeightFn(builder.IntWeightFn(n.MaxWeight)))
	}
	if n.Directed {
		bopts = append(bopts, builder.WithMode(core.Directed))
	}

	var c builder.Constructor
	switch n.Kind {
	case config.KindStar:
		c = builder.Star(n.Vertices)
	case config.KindCycle:
		c = builder.Cycle(n.Vertices)
	case config.KindLattice:
		c = builder.RingLattice(n.Vertices, n.Degree)
	case config.KindComplete:
		c = builder.Complete(n.Vertices)
	case config.KindPath:
		c = builder.Path(n.Vertices)
	case config.KindWheel:
		c = builder.Wheel(n.Vertices)
	case config.KindRandom:
		c = builder.RandomSparse(n.Vertices, n.Probability)
	default:
		return nil, fmt.Errorf("network: unknown kind %q", n.Kind)
	}

	return builder.BuildGraph(gopts, bopts, c)
}

// edgeList adds every edge of the list, creating vertices on first sight.
func edgeList(g *core.Graph, edges []config.Edge) (*core.Graph, error) {
	for i, e := range edges {
		for _, v := range [2]int{e.From, e.To} {
			if err := g.AddVertex(v); err != nil {
				return nil, fmt.Errorf("network: edges[%d]: %w", i, err)
			}
		}
		w := e.EdgeWeight()
		mode := core.Mutual
		if e.Directed {
			mode = core.Directed
		}
		if err := g.AddEdge(e.From, e.To, w, e.Relation, mode); err != nil {
			return nil, fmt.Errorf("network: edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

// centralityOptions maps the analysis section to calculator options.
func centralityOptions(a config.Analysis) []centrality.Option {
	opts := []centrality.Option{centrality.WithWeights(a.Weighted)}
	if a.Damping > 0 {
		opts = append(opts, centrality.WithDamping(a.Damping))
	}

	return opts
}

// indexByCode resolves a short index code (BC, PRP, ...).
func indexByCode(code string) (centrality.Index, bool) {
	for idx := centrality.DegreeCentrality; idx <= centrality.PageRankPrestige; idx++ {
		if idx.String() == code {
			return idx, true
		}
	}

	return 0, false
}

// isPrestige reports whether idx belongs to the prestige family.
func isPrestige(idx centrality.Index) bool {
	switch idx {
	case centrality.DegreePrestigeIndex, centrality.ProximityPrestige, centrality.PageRankPrestige:
		return true
	}

	return false
}
