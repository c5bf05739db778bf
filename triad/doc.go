// SPDX-License-Identifier: MIT
// Package triad classifies every vertex triple of a directed snapshot into
// the 16 Davis–Leinhardt MAN isomorphism classes (the triad census) and
// computes local and average clustering coefficients.
//
// The census encodes the six possible arcs of a triple as a 6-bit code and
// maps it through the 64-entry table published by Batagelj and Mrvar, which
// settles the 021D/021U/021C, 111D/111U, 030T/030C and 120D/120U/120C
// splits without case analysis.
//
// The outer loop over the first vertex of each triple is split across
// workers; progress ticks once per finished outer vertex and the context is
// checked at the same point.
package triad
