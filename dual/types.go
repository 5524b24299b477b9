package dual

import (
	"github.com/katalvlaran/beneathbeyond/field"
	"github.com/katalvlaran/beneathbeyond/iset"
)

// FacetRecord is the node attribute carried by every dual-graph node: the
// geometric and combinatorial data the engine needs about one facet of the
// hull built so far.
type FacetRecord struct {
	// Normal is the inward normal of the facet, expressed in the current
	// effective coordinates: Normal · p >= 0 for every retained vertex p.
	// Nil until this facet's normal has been computed.
	Normal field.Vector

	// SqrNormal caches Normal's squared length so callers can compare
	// facets by normal direction without repeated Dot calls.
	SqrNormal field.Scalar

	// Orientation is the sign of Normal dotted with the point currently being
	// tested against this facet: negative means violated, zero means
	// incident, positive means valid. Stored as a sign for direct arithmetic
	// use instead of a separate bool flag.
	Orientation int

	// Vertices holds the indices (into the engine's running point list) of
	// every point incident to this facet.
	Vertices *iset.Set

	// Simplices is the ordered list of triangulation simplices incident to
	// this facet, paired with the vertex opposite each one. A facet
	// references simplices by stable handle, never by position, so the
	// triangulation list itself can be grown and reordered freely.
	Simplices []IncidentSimplex
}

// NewFacetRecord returns an empty record ready to be filled in as a facet is
// discovered.
func NewFacetRecord() *FacetRecord {
	return &FacetRecord{Vertices: iset.New()}
}

// Simplex is one cell of the placing triangulation: a set of point indices
// of size AffineDim+1. Simplices are referenced by pointer so facets can
// hold a stable handle to one without caring about its position in the
// engine's triangulation list.
type Simplex struct {
	Vertices *iset.Set
}

// NewSimplex returns a simplex over the given vertex indices.
func NewSimplex(vertices ...int) *Simplex {
	return &Simplex{Vertices: iset.New(vertices...)}
}

// IncidentSimplex pairs a simplex incident to some facet with the single
// vertex of that simplex lying opposite the facet (the vertex that, removed
// from the simplex, leaves exactly the facet's own vertex set intersected
// with the simplex).
type IncidentSimplex struct {
	Simplex        *Simplex
	OppositeVertex int
}
