// SPDX-License-Identifier: MIT

package centrality

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/socnet/matrix"
)

// Sentinel errors.
var (
	// ErrUndefinedIndex indicates that an index has no value for this graph;
	// ordinary closeness needs a strongly connected graph, use
	// InfluenceRangeCloseness instead.
	ErrUndefinedIndex = errors.New("centrality: index undefined for this graph")

	// ErrSingularMatrix is matrix.ErrSingular, surfaced by Information.
	ErrSingularMatrix = matrix.ErrSingular

	// ErrNoAccumulation indicates a distance.Matrix computed without
	// betweenness/stress accumulation.
	ErrNoAccumulation = errors.New("centrality: distance matrix lacks path-count accumulation")

	// ErrNilInput indicates a nil snapshot, matrix or reachability.
	ErrNilInput = errors.New("centrality: nil input")
)

// Index identifies a centrality or prestige index.
type Index int

const (
	DegreeCentrality Index = iota + 1
	DegreePrestigeIndex
	ClosenessCentrality
	InfluenceRangeClosenessCentrality
	BetweennessCentrality
	StressCentrality
	EccentricityCentrality
	PowerCentrality
	InformationCentrality
	ProximityPrestige
	PageRankPrestige
)

var indexCodes = map[Index]string{
	DegreeCentrality:                  "DC",
	DegreePrestigeIndex:               "DP",
	ClosenessCentrality:               "CC",
	InfluenceRangeClosenessCentrality: "IRCC",
	BetweennessCentrality:             "BC",
	StressCentrality:                  "SC",
	EccentricityCentrality:            "EC",
	PowerCentrality:                   "PC",
	InformationCentrality:             "IC",
	ProximityPrestige:                 "PP",
	PageRankPrestige:                  "PRP",
}

// String returns the short code of the index (DC, CC, ...).
func (i Index) String() string {
	if s, ok := indexCodes[i]; ok {
		return s
	}

	return "?"
}

// Stats describes the distribution of a standardized column.
// ArgMin/ArgMax are positions (first occurrence); both are -1 when empty.
type Stats struct {
	Sum      float64
	Mean     float64
	Variance float64 // population variance
	Min      float64
	Max      float64
	ArgMin   int
	ArgMax   int
	Classes  int // number of distinct values
}

// Report is the immutable result of one index computation. Position i in
// Raw and Std belongs to vertex Names[i].
type Report struct {
	Index Index
	Names []int
	Raw   []float64
	Std   []float64
	Stats Stats

	// Group is the group centralization index, NaN when undefined.
	Group float64
}

// Value returns the raw and standardized values of the vertex with the
// given name.
func (r *Report) Value(name int) (raw, std float64, ok bool) {
	for i, n := range r.Names {
		if n == name {
			return r.Raw[i], r.Std[i], true
		}
	}

	return 0, 0, false
}

// classTolerance groups standardized values that differ by less than this
// into one class.
const classTolerance = 1e-9

// newReport assembles a Report and its statistics. names, raw and std are
// taken over, not copied.
func newReport(idx Index, names []int, raw, std []float64, group func(Stats) float64) *Report {
	r := &Report{Index: idx, Names: names, Raw: raw, Std: std, Group: math.NaN()}
	r.Stats = describe(std)
	if group != nil && len(std) > 0 {
		r.Group = group(r.Stats)
	}

	return r
}

// describe computes Stats with gonum.
func describe(xs []float64) Stats {
	s := Stats{ArgMin: -1, ArgMax: -1}
	if len(xs) == 0 {
		return s
	}
	s.Sum = floats.Sum(xs)
	s.Mean, s.Variance = stat.PopMeanVariance(xs, nil)
	s.ArgMin = floats.MinIdx(xs)
	s.ArgMax = floats.MaxIdx(xs)
	s.Min, s.Max = xs[s.ArgMin], xs[s.ArgMax]

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	s.Classes = 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] > classTolerance {
			s.Classes++
		}
	}

	return s
}

// deviationSum returns Σ(max − x_i).
func deviationSum(xs []float64, max float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += max - x
	}

	return sum
}

// divideAll returns xs/d, or zeros when d is 0.
func divideAll(xs []float64, d float64) []float64 {
	out := make([]float64, len(xs))
	if d == 0 {
		return out
	}
	for i, x := range xs {
		out[i] = x / d
	}

	return out
}

// safeDiv returns a/b, or 0 when b is not positive.
func safeDiv(a, b float64) float64 {
	if b <= 0 {
		return 0
	}

	return a / b
}
