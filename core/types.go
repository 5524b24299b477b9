// File: types.go
// Role: Graph and Edge types, sentinel errors, and the NewGraph constructor.
//
// Concurrency:
//   - muVert guards the vertex catalog; muEdgeAdj guards the edge catalog and
//     the adjacency index. Lock order is muVert -> muEdgeAdj wherever both
//     are held.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation was given an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an attempt to connect a vertex to itself. The
	// graphs this package stores are simple: a facet is never adjacent to
	// itself in a facet lattice.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrParallelEdge indicates an attempt to connect two vertices that are
	// already connected. Two facets share at most one ridge, so a second edge
	// between the same pair is always a caller bug.
	ErrParallelEdge = errors.New("core: parallel edge not allowed")
)

// Edge is an undirected connection between two vertices. From and To record
// the endpoint order AddEdge was called with; adjacency is mirrored on
// insertion, so the distinction never affects queries.
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID string

	// From and To are the endpoint vertex IDs.
	From string
	To   string
}

// Graph is an undirected simple graph over stable string vertex IDs, with
// every edge catalogued under its own stable ID. It carries no attribute
// payloads of its own: packages layering data onto a Graph (the dual graph's
// facet records and ridge vertex sets being the motivating case) keep side
// tables keyed by the vertex and edge IDs this package hands out.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	nextEdgeID uint64 // atomic edge ID generator

	vertices map[string]struct{} // vertex ID membership
	edges    map[string]*Edge    // edge ID -> Edge

	// adjacency[u][v] is the ID of the single edge connecting u and v,
	// present in both orientations for every edge.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}
