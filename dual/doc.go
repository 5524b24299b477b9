// Package dual implements the dual-graph store: an undirected graph
// with one node per facet and one edge per ridge, built on top of
// package core's adjacency substrate.
//
// A dual.Graph wraps a *core.Graph purely for its node/edge bookkeeping
// (stable IDs across deletions, O(1) adjacency) and layers the engine's own
// node attribute (FacetRecord) and edge attribute (the ridge point set) on
// top, keyed by the same IDs core hands out. Facet IDs freed by DeleteFacet
// are handed out again by later AddFacet calls (unlike core's edge IDs, which
// come from a counter and are never reused), and Squeeze relabels the node-ID
// space to a contiguous range at the end of a run.
package dual
