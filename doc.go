// Package beneathbeyond is your in-memory workbench for building convex
// hulls incrementally, exactly, over an ordered field.
//
// 🚀 What is beneathbeyond?
//
//	A deterministic, single-threaded library that brings together:
//
//	  • An exact rational linear-algebra facade (no floating-point fallback)
//	  • An incremental beneath-and-beyond hull engine, one point at a time
//	  • A dual graph of facets and ridges, renumbered densely at the end
//
// ✨ Why choose beneathbeyond?
//
//   - Exact           — arithmetic is over *big.Rat end to end, never float64
//   - Deterministic   — same input points, same facets, same triangulation
//   - Dual-purpose    — run the same engine on inequalities for vertex enumeration
//
// Under the hood, everything is organized into focused packages:
//
//	field/      — exact scalars, vectors, matrices (math/big.Rat)
//	field/ops/  — null space, basis extraction, reduce_nullspace, inverse
//	iset/       — small ordered index sets (facet/simplex vertex sets)
//	core/       — the undirected adjacency substrate under the dual graph
//	dual/       — the facet/ridge dual graph built on core.Graph
//	bfs/        — breadth-first traversal, used to validate dual-graph connectivity
//	builder/    — coordinate generators for the regular-polytope test fixtures
//	hull/       — the beneath-and-beyond engine itself
//
// See DESIGN.md for the component breakdown and the reasoning behind every
// package's design.
//
//	go get github.com/katalvlaran/beneathbeyond
package beneathbeyond
