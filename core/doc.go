// Package core is the adjacency substrate under the dual graph: an
// undirected simple graph with stable string vertex IDs and catalogued,
// stably identified edges.
//
// The package stores topology only. Attribute payloads — the facet records
// and ridge vertex sets of the dual graph — live in the owning package's own
// side tables, keyed by the vertex and edge IDs handed out here. That split
// is what lets Renumber relabel every vertex while edge-keyed side tables
// carry over untouched.
//
// Graphs are simple by construction: self-loops and parallel edges are
// rejected with ErrSelfLoop and ErrParallelEdge rather than silently
// tolerated, because in a facet lattice a facet is never adjacent to itself
// and two facets share at most one ridge.
//
// All enumeration surfaces (Vertices, Edges, Neighbors, NeighborIDs) return
// deterministically ordered results; higher layers build their own
// reproducibility guarantees on top of that ordering.
//
// Internally two sync.RWMutex locks are held (muVert for the vertex catalog,
// muEdgeAdj for edges and adjacency), acquired in that order wherever both
// are needed.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrSelfLoop       - attempt to connect a vertex to itself.
//	ErrParallelEdge   - attempt to connect an already-connected pair.
package core
