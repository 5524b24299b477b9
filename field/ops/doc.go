// Package ops provides advanced, exact linear-algebra routines over the
// field package's Matrix/Vector types: null-space bases, maximal independent
// row subsets, incremental null-space reduction, and matrix inversion.
//
// Every routine here is deterministic given the same input rows in the same
// order — several invariants of the hull engine (stable "first" choices for
// facet normals and lineality bases) depend on that property, so pivot
// search always scans rows/columns in ascending index order and never
// reorders ties arbitrarily.
package ops
