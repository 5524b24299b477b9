package hull

import (
	"github.com/katalvlaran/beneathbeyond/dual"
	"github.com/katalvlaran/beneathbeyond/field"
	"github.com/katalvlaran/beneathbeyond/iset"
)

// State is one of the four phases of the step-driver state machine.
type State int

const (
	// StateZero means no vertex has been committed yet.
	StateZero State = iota
	// StateOne means exactly one vertex (Engine.v0) has been committed and
	// the polyhedron built so far is a single point.
	StateOne
	// StateLowDim means at least two affinely independent points have been
	// absorbed but the affine hull has not yet collapsed to the ambient
	// effective dimension; facet normals may be deferred.
	StateLowDim
	// StateFullDim means the affine hull is empty and every facet carries a
	// valid normal.
	StateFullDim
)

func (s State) String() string {
	switch s {
	case StateZero:
		return "zero"
	case StateOne:
		return "one"
	case StateLowDim:
		return "low_dim"
	case StateFullDim:
		return "full_dim"
	default:
		return "unknown"
	}
}

// EngineOutput bundles every artifact Compute produces.
type EngineOutput struct {
	// Facets is one row per live dual-graph node: its inward facet normal,
	// expressed in the caller's original coordinates.
	Facets *field.Matrix

	// AffineHull is the (possibly empty) list of linear forms every retained
	// point satisfies with equality, in original coordinates.
	AffineHull *field.Matrix

	// Vertices is the subset of the caller's original points that are
	// non-redundant, in their original order.
	Vertices *field.Matrix

	// Linealities is the current lineality basis (input linealities plus any
	// discovered mid-run), in the caller's original coordinates. An affine
	// run that ends with no point retained, or whose lineality spans the
	// whole space, reports it empty; NonRedundantLinealities still lists
	// the basis.
	Linealities *field.Matrix

	// VertexFacetIncidence[f][j] reports whether the j-th column point (see
	// NonRedundantPoints, or every point when ExpectRedundant is false) lies
	// on facet f, in the same row order as Facets.
	VertexFacetIncidence [][]bool

	// DualGraph is the facet/ridge dual graph as stored, renumbered to a
	// dense "0".."n-1" id space.
	DualGraph *dual.Graph

	// Triangulation is the placing triangulation, one entry per simplex,
	// each a sorted list of point indices, in the order the simplices were
	// placed.
	Triangulation [][]int

	// NonRedundantPoints is the complement of the interior-point set, in
	// ascending order.
	NonRedundantPoints []int

	// NonRedundantLinealities indexes the lineality basis: values below the
	// caller's source-lineality row count index that matrix directly; values
	// at or above it are offset-shifted source-point indices (subtract the
	// count to recover the point index) promoted into the basis by a
	// mid-run lineality discovery.
	NonRedundantLinealities []int

	// GenericPosition is false as soon as any incident (orientation-zero)
	// facet was encountered, or any non-simplex was created, during the run.
	// It is always false when ExpectRedundant is set.
	GenericPosition bool
}

// Engine is the mutable state of one beneath-and-beyond run. It is built and
// driven exclusively by Compute; it is not safe for concurrent or re-entrant
// use.
type Engine struct {
	cfg Config

	srcPoints *field.Matrix
	n         int
	d         int

	// lineality is the accumulated lineality basis, in original ambient
	// coordinates: it starts as a row basis of the caller's linealities
	// (the rows themselves when the caller certifies a basis) and grows
	// whenever a mid-run lineality discovery promotes source points into it.
	// It is kept a basis at all times.
	lineality *field.Matrix

	// srcLinealityRows is the row count of the caller's own lineality
	// matrix; srcLinBasisIdx indexes into it (which caller rows entered the
	// basis), pointsInLinBasis lists the source-point indices promoted by
	// addLinealities.
	srcLinealityRows int
	srcLinBasisIdx   []int
	pointsInLinBasis []int

	// transform is the inverse of [complement; lineality], the quotient
	// basis change of the most recent pre-reduction; nil when no lineality
	// is present.
	transform *field.Matrix

	// points is srcPoints projected into the current complement subspace
	// and truncated to dPrime columns; recomputed by every preReduce call.
	points *field.Matrix
	dPrime int

	state State
	ah    *field.Matrix
	dg    *dual.Graph
	tri   []*dual.Simplex // front = most recently created simplex

	v0 int // the committed vertex while state == StateOne

	V               *iset.Set
	I               *iset.Set
	validFacet      string
	genericPosition bool

	// lowDimNormalsUsed records that facet normals were materialized against
	// the current affine hull; the next pyramid step then marks the input
	// non-generic (the base being pyramidized is more than a simplex).
	lowDimNormalsUsed bool

	// step-local working sets, reused across steps to avoid re-allocation
	visited          map[string]bool
	verticesThisStep *iset.Set
	interiorThisStep *iset.Set
}
