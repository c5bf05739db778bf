// SPDX-License-Identifier: MIT
// Distance-based indices: closeness, influence-range closeness, proximity
// prestige, betweenness, stress, eccentricity and power.

package centrality

import (
	"fmt"

	"github.com/katalvlaran/socnet/distance"
)

// Closeness computes closeness centrality CC(v) = 1/Σ_t d(v,t).
//
// Std = (n−1)·CC. Group = Σ(max SCC − SCC_i)·(2n−3)/((n−1)(n−2)).
// A single-vertex graph yields 0.
//
// Errors:
//   - ErrUndefinedIndex when some vertex cannot reach another.
func Closeness(m *distance.Matrix) (*Report, error) {
	if m == nil {
		return nil, fmt.Errorf("Closeness: %w", ErrNilInput)
	}
	n := m.Len()
	if !m.StronglyConnected() {
		return nil, fmt.Errorf("Closeness: %w", ErrUndefinedIndex)
	}
	raw := make([]float64, n)
	std := make([]float64, n)
	for i := 0; i < n; i++ {
		raw[i] = safeDiv(1, m.DistanceSum[i])
		std[i] = float64(n-1) * raw[i]
	}
	nf := float64(n)

	return newReport(ClosenessCentrality, names(m), raw, std, func(s Stats) float64 {
		return safeDiv(deviationSum(std, s.Max)*(2*nf-3), (nf-1)*(nf-2))
	}), nil
}

// InfluenceRangeCloseness computes IRCC(v) = (|J|/(n−1)) / mean d(v,J) over
// the influence range J of v, which is defined on disconnected graphs. A
// vertex with an empty range scores 0. Std = raw; no group index.
func InfluenceRangeCloseness(m *distance.Matrix, r *distance.Reachability) (*Report, error) {
	if m == nil || r == nil {
		return nil, fmt.Errorf("InfluenceRangeCloseness: %w", ErrNilInput)
	}
	n := m.Len()
	raw := make([]float64, n)
	for i := 0; i < n; i++ {
		j := r.InfluenceRange(i)
		if len(j) == 0 {
			continue
		}
		sum := 0.0
		for _, t := range j {
			sum += m.Dist[i][t]
		}
		raw[i] = proximity(len(j), sum, n)
	}

	return newReport(InfluenceRangeClosenessCentrality, names(m), raw, append([]float64(nil), raw...), nil), nil
}

// Proximity computes proximity prestige PP(v) = (|I|/(n−1)) / mean d(I,v)
// over the influence domain I of v. Std = raw; no group index.
func Proximity(m *distance.Matrix, r *distance.Reachability) (*Report, error) {
	if m == nil || r == nil {
		return nil, fmt.Errorf("Proximity: %w", ErrNilInput)
	}
	n := m.Len()
	raw := make([]float64, n)
	for v := 0; v < n; v++ {
		in := r.InfluenceDomain(v)
		if len(in) == 0 {
			continue
		}
		sum := 0.0
		for _, u := range in {
			sum += m.Dist[u][v]
		}
		raw[v] = proximity(len(in), sum, n)
	}

	return newReport(ProximityPrestige, names(m), raw, append([]float64(nil), raw...), nil), nil
}

// proximity returns (k/(n−1)) / (sum/k).
func proximity(k int, sum float64, n int) float64 {
	if n < 2 || sum == 0 {
		return 0
	}
	kf := float64(k)

	return (kf / float64(n-1)) / (sum / kf)
}

// Betweenness computes Brandes betweenness BC. Raw values are halved on a
// symmetric graph, where every unordered pair was traversed twice.
//
// Std divides by (n−1)(n−2)/2 when symmetric, (n−1)(n−2) otherwise.
// Group = Σ(max SBC − SBC_i)/(n−1).
//
// Errors:
//   - ErrNoAccumulation when m was computed without WithCentralities(true).
func Betweenness(m *distance.Matrix) (*Report, error) {
	if m == nil {
		return nil, fmt.Errorf("Betweenness: %w", ErrNilInput)
	}
	if m.Betweenness == nil {
		return nil, fmt.Errorf("Betweenness: %w", ErrNoAccumulation)
	}
	n := float64(m.Len())
	raw := halved(m.Betweenness, m.Symmetric)
	max := (n - 1) * (n - 2)
	if m.Symmetric {
		max /= 2
	}
	std := divideAll(raw, max)

	return newReport(BetweennessCentrality, names(m), raw, std, func(s Stats) float64 {
		return safeDiv(deviationSum(std, s.Max), n-1)
	}), nil
}

// Stress computes stress centrality SC: the number of shortest paths that
// pass through v, halved on a symmetric graph. Std = SC/ΣSC.
func Stress(m *distance.Matrix) (*Report, error) {
	if m == nil {
		return nil, fmt.Errorf("Stress: %w", ErrNilInput)
	}
	if m.Stress == nil {
		return nil, fmt.Errorf("Stress: %w", ErrNoAccumulation)
	}
	raw := halved(m.Stress, m.Symmetric)
	total := 0.0
	for _, v := range raw {
		total += v
	}

	return newReport(StressCentrality, names(m), raw, divideAll(raw, total), nil), nil
}

// Eccentricity computes EC(v) = 1/max_t d(v,t) over reachable t; a vertex
// that reaches nothing scores 0. Std = EC / max EC.
func Eccentricity(m *distance.Matrix) (*Report, error) {
	if m == nil {
		return nil, fmt.Errorf("Eccentricity: %w", ErrNilInput)
	}
	n := m.Len()
	raw := make([]float64, n)
	max := 0.0
	for i := 0; i < n; i++ {
		raw[i] = safeDiv(1, m.Eccentricity[i])
		if raw[i] > max {
			max = raw[i]
		}
	}

	return newReport(EccentricityCentrality, names(m), raw, divideAll(raw, max), nil), nil
}

// Power computes Gil-Schmidt power centrality PC(v) = Σ_k |N_k(v)|/k, where
// N_k(v) is the set of vertices at distance exactly k from v. Std = PC/(n−1).
// Group = Σ(max SPC − SPC_i)/(n−2).
func Power(m *distance.Matrix) (*Report, error) {
	if m == nil {
		return nil, fmt.Errorf("Power: %w", ErrNilInput)
	}
	n := m.Len()
	raw := append([]float64(nil), m.InverseSum...)
	std := divideAll(raw, float64(n-1))

	return newReport(PowerCentrality, names(m), raw, std, func(s Stats) float64 {
		return safeDiv(deviationSum(std, s.Max), float64(n-2))
	}), nil
}

func halved(xs []float64, symmetric bool) []float64 {
	out := append([]float64(nil), xs...)
	if symmetric {
		for i := range out {
			out[i] /= 2
		}
	}

	return out
}

func names(m *distance.Matrix) []int { return append([]int(nil), m.Names...) }
