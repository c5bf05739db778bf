// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"

	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/core"
)

// Centrality computes (or returns the cached) centrality report idx:
// DegreeCentrality, ClosenessCentrality, InfluenceRangeClosenessCentrality,
// BetweennessCentrality, StressCentrality, EccentricityCentrality,
// PowerCentrality or InformationCentrality.
//
// Errors:
//   - ErrUnknownIndex for a prestige index or an undefined value.
//   - centrality.ErrUndefinedIndex (closeness on a graph that is not
//     strongly connected), centrality.ErrSingularMatrix (information).
func (e *Engine) Centrality(ctx context.Context, idx centrality.Index) (*centrality.Report, error) {
	switch idx {
	case centrality.DegreeCentrality, centrality.ClosenessCentrality,
		centrality.InfluenceRangeClosenessCentrality, centrality.BetweennessCentrality,
		centrality.StressCentrality, centrality.EccentricityCentrality,
		centrality.PowerCentrality, centrality.InformationCentrality:
		return e.index(ctx, idx)
	}

	return nil, fmt.Errorf("Centrality(%s): %w", idx, ErrUnknownIndex)
}

// Prestige computes (or returns the cached) prestige report idx:
// DegreePrestigeIndex, ProximityPrestige or PageRankPrestige.
func (e *Engine) Prestige(ctx context.Context, idx centrality.Index) (*centrality.Report, error) {
	switch idx {
	case centrality.DegreePrestigeIndex, centrality.ProximityPrestige, centrality.PageRankPrestige:
		return e.index(ctx, idx)
	}

	return nil, fmt.Errorf("Prestige(%s): %w", idx, ErrUnknownIndex)
}

// index dispatches idx to its calculator under the version cache.
func (e *Engine) index(ctx context.Context, idx centrality.Index) (*centrality.Report, error) {
	v, _, err := e.cached(ctx, kindIndex, int(idx), func(ctx context.Context, snap *core.Snapshot) (interface{}, error) {
		copts := e.opts.Centrality
		switch idx {
		case centrality.DegreeCentrality:
			return centrality.Degree(snap, copts...)
		case centrality.DegreePrestigeIndex:
			return centrality.DegreePrestige(snap, copts...)
		case centrality.InformationCentrality:
			return centrality.Information(snap, copts...)
		case centrality.PageRankPrestige:
			return centrality.PageRank(snap, copts...)
		}

		geo, err := e.geodesicsOn(ctx, snap)
		if err != nil {
			return nil, err
		}
		switch idx {
		case centrality.ClosenessCentrality:
			return centrality.Closeness(geo.m)
		case centrality.InfluenceRangeClosenessCentrality:
			return centrality.InfluenceRangeCloseness(geo.m, geo.r)
		case centrality.BetweennessCentrality:
			return centrality.Betweenness(geo.m)
		case centrality.StressCentrality:
			return centrality.Stress(geo.m)
		case centrality.EccentricityCentrality:
			return centrality.Eccentricity(geo.m)
		case centrality.PowerCentrality:
			return centrality.Power(geo.m)
		case centrality.ProximityPrestige:
			return centrality.Proximity(geo.m, geo.r)
		}

		return nil, ErrUnknownIndex
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", idx, err)
	}

	return v.(*centrality.Report), nil
}
