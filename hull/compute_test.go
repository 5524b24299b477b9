package hull_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beneathbeyond/bfs"
	"github.com/katalvlaran/beneathbeyond/builder"
	"github.com/katalvlaran/beneathbeyond/field"
	"github.com/katalvlaran/beneathbeyond/hull"
)

// homogeneous builds a field.Matrix whose rows are (1, coords...) for each
// row of coords — the leading-1 convention hull.Compute expects for affine
// (non-cone) input.
func homogeneous(t *testing.T, coords [][]int64) *field.Matrix {
	t.Helper()
	rows := make([]field.Vector, len(coords))
	for i, c := range coords {
		row := make(field.Vector, len(c)+1)
		row[0] = field.NewInt(1)
		for j, x := range c {
			row[j+1] = field.NewInt(x)
		}
		rows[i] = row
	}
	m, err := field.FromRows(rows)
	require.NoError(t, err)
	return m
}

// homogenizeMatrix applies the same leading-1 convention as homogeneous, but
// to a point set already assembled as a field.Matrix — the shape builder's
// Platonic-solid generators return, since they produce bare n×3 coordinate
// rows with no notion of hull.Compute's affine convention.
func homogenizeMatrix(t *testing.T, m *field.Matrix) *field.Matrix {
	t.Helper()
	rows := make([]field.Vector, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		src := m.Row(i)
		row := make(field.Vector, len(src)+1)
		row[0] = field.NewInt(1)
		copy(row[1:], src)
		rows[i] = row
	}
	out, err := field.FromRows(rows)
	require.NoError(t, err)
	return out
}

// rays builds a field.Matrix directly from raw coordinate rows.
func rays(t *testing.T, coords [][]int64) *field.Matrix {
	t.Helper()
	rows := make([]field.Vector, len(coords))
	for i, c := range coords {
		row := make(field.Vector, len(c))
		for j, x := range c {
			row[j] = field.NewInt(x)
		}
		rows[i] = row
	}
	m, err := field.FromRows(rows)
	require.NoError(t, err)
	return m
}

func emptyLineality(t *testing.T, cols int) *field.Matrix {
	t.Helper()
	m, err := field.NewMatrix(0, cols)
	require.NoError(t, err)
	return m
}

// requireInwardFacets asserts the fundamental facet property: every
// non-redundant point lies on the non-negative side of every facet, with
// equality exactly where the incidence matrix says so.
func requireInwardFacets(t *testing.T, pts *field.Matrix, out *hull.EngineOutput) {
	t.Helper()
	r := require.New(t)
	for f := 0; f < out.Facets.Rows(); f++ {
		normal := out.Facets.Row(f)
		for j, p := range out.NonRedundantPoints {
			s := field.Sign(field.Dot(normal, pts.RowRef(p)))
			r.GreaterOrEqual(s, 0, "facet %d vs point %d", f, p)
			if len(out.VertexFacetIncidence) > 0 && j < len(out.VertexFacetIncidence[f]) {
				r.Equal(out.VertexFacetIncidence[f][j], s == 0,
					"incidence of facet %d and point %d must match the sign", f, p)
			}
		}
	}
}

func TestCompute_Triangle(t *testing.T) {
	r := require.New(t)
	pts := homogeneous(t, [][]int64{{0, 0}, {1, 0}, {0, 1}})

	out, err := hull.Compute(pts, emptyLineality(t, 3), hull.NewConfig(), nil)
	r.NoError(err)
	r.Equal(3, out.Facets.Rows())
	r.Equal(0, out.AffineHull.Rows(), "a full-dimensional polytope has no affine-hull constraints")
	r.Equal(3, out.Vertices.Rows())
	r.Equal([]int{0, 1, 2}, out.NonRedundantPoints)
	r.True(out.GenericPosition)
	requireInwardFacets(t, pts, out)
}

func TestCompute_UnitSquare(t *testing.T) {
	r := require.New(t)
	pts := homogeneous(t, [][]int64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})

	out, err := hull.Compute(pts, emptyLineality(t, 3), hull.NewConfig(hull.WithMakeTriangulation()), nil)
	r.NoError(err)
	r.Equal(4, out.Facets.Rows())
	r.Equal(0, out.AffineHull.Rows())
	r.Equal(4, out.Vertices.Rows())
	r.Equal([]int{0, 1, 2, 3}, out.NonRedundantPoints)
	r.Len(out.Triangulation, 2)
	for _, simplex := range out.Triangulation {
		r.Len(simplex, 3)
	}
	requireInwardFacets(t, pts, out)

	res, err := bfs.BFS(out.DualGraph.Underlying(), out.DualGraph.AllFacets()[0])
	r.NoError(err)
	r.Equal(out.DualGraph.NodeCount(), len(res.Order), "dual graph of a convex polygon must be connected")
}

// The placement order fixes the triangulation: the triangle on the first
// three points comes first, then absorbing the far corner replaces the
// vertex behind the one violated facet.
func TestCompute_PlacingTriangulationIsDeterministic(t *testing.T) {
	r := require.New(t)
	pts := homogeneous(t, [][]int64{{0, 0}, {1, 0}, {0, 1}, {1, 1}})

	out, err := hull.Compute(pts, emptyLineality(t, 3), hull.NewConfig(hull.WithMakeTriangulation()), nil)
	r.NoError(err)
	r.Equal([][]int{{0, 1, 2}, {1, 2, 3}}, out.Triangulation)
}

func TestCompute_RedundantInputRejectedByDefault(t *testing.T) {
	t.Run("collinear second ray", func(t *testing.T) {
		r := require.New(t)
		m := rays(t, [][]int64{{1, 0}, {2, 0}})

		_, err := hull.Compute(m, emptyLineality(t, 2), hull.NewConfig(hull.WithForCone()), nil)
		r.Error(err)
		var redundant *hull.UnexpectedRedundantPointError
		r.True(errors.As(err, &redundant), "expected UnexpectedRedundantPointError, got %v", err)
		r.Equal(1, redundant.Index)
	})

	t.Run("strictly interior point", func(t *testing.T) {
		r := require.New(t)
		pts := homogeneous(t, [][]int64{{0, 0}, {3, 0}, {0, 3}, {1, 1}})

		_, err := hull.Compute(pts, emptyLineality(t, 3), hull.NewConfig(), nil)
		r.Error(err)
		var redundant *hull.UnexpectedRedundantPointError
		r.True(errors.As(err, &redundant), "expected UnexpectedRedundantPointError, got %v", err)
		r.Equal(3, redundant.Index)
	})
}

func TestCompute_CollinearAcceptedWithExpectRedundant(t *testing.T) {
	r := require.New(t)
	pts := homogeneous(t, [][]int64{{0}, {1}, {2}})

	out, err := hull.Compute(pts, emptyLineality(t, 2), hull.NewConfig(hull.WithExpectRedundant()), nil)
	r.NoError(err)
	r.Equal(2, out.Facets.Rows())
	r.Equal([]int{0, 2}, out.NonRedundantPoints)
}

func TestCompute_DuplicatePointMarkedInterior(t *testing.T) {
	r := require.New(t)
	pts := homogeneous(t, [][]int64{{0, 0}, {1, 0}, {0, 1}, {0, 0}})

	out, err := hull.Compute(pts, emptyLineality(t, 3), hull.NewConfig(hull.WithExpectRedundant()), nil)
	r.NoError(err)
	r.Equal(3, out.Facets.Rows())
	r.Equal([]int{0, 1, 2}, out.NonRedundantPoints)
}

func TestCompute_InteriorPointMarkedWhenExpected(t *testing.T) {
	r := require.New(t)
	pts := homogeneous(t, [][]int64{{0, 0}, {4, 0}, {0, 4}, {4, 4}, {2, 2}})

	out, err := hull.Compute(pts, emptyLineality(t, 3), hull.NewConfig(hull.WithExpectRedundant()), nil)
	r.NoError(err)
	r.Equal(4, out.Facets.Rows())
	r.Equal([]int{0, 1, 2, 3}, out.NonRedundantPoints)
	requireInwardFacets(t, pts, out)
}

func TestCompute_Cone(t *testing.T) {
	r := require.New(t)
	m := rays(t, [][]int64{{1, 0}, {0, 1}})

	out, err := hull.Compute(m, emptyLineality(t, 2), hull.NewConfig(hull.WithForCone()), nil)
	r.NoError(err)
	r.Equal(2, out.Facets.Rows())
	r.Equal([]int{0, 1}, out.NonRedundantPoints)
}

// A single non-zero ray: one facet whose normal is the ray itself, and a
// one-element triangulation.
func TestCompute_SingleRayCone(t *testing.T) {
	r := require.New(t)
	m := rays(t, [][]int64{{2, 1, 0}})

	out, err := hull.Compute(m, emptyLineality(t, 3), hull.NewConfig(hull.WithForCone(), hull.WithMakeTriangulation()), nil)
	r.NoError(err)
	r.Equal(1, out.Facets.Rows())
	r.Equal(0, field.Sub(out.Facets.Row(0)[0], field.NewInt(2)).Sign())
	r.Equal([][]int{{0}}, out.Triangulation)
	r.Equal([]int{0}, out.NonRedundantPoints)
	r.Equal(2, out.AffineHull.Rows(), "a single ray in 3-space satisfies two independent linear constraints")
}

// Two opposite rays collapse into a lineality direction: the first ray is
// promoted into the lineality basis and both end up redundant.
func TestCompute_OppositeRaysBecomeLineality(t *testing.T) {
	r := require.New(t)
	m := rays(t, [][]int64{{1, 0}, {-1, 0}})

	out, err := hull.Compute(m, emptyLineality(t, 2), hull.NewConfig(hull.WithForCone(), hull.WithExpectRedundant()), nil)
	r.NoError(err)
	r.Equal(0, out.Facets.Rows())
	r.Equal(1, out.AffineHull.Rows(), "the line spanned by the rays satisfies one constraint")
	r.Empty(out.NonRedundantPoints)
	r.Equal(1, out.Linealities.Rows())
	r.Equal([]int{0}, out.NonRedundantLinealities, "ray 0 was promoted into the lineality basis")
}

// A point, a ray upward and a ray downward: processing the third input sees
// every facet violated or incident, so the engine discovers the vertical
// lineality mid-run, re-projects, and re-absorbs the surviving candidate.
func TestCompute_MidRunLinealityDiscoveryRestarts(t *testing.T) {
	r := require.New(t)
	m := rays(t, [][]int64{{1, 0}, {0, 1}, {0, -1}})

	out, err := hull.Compute(m, emptyLineality(t, 2), hull.NewConfig(hull.WithExpectRedundant()), nil)
	r.NoError(err)
	r.Equal([]int{0}, out.NonRedundantPoints)
	r.Equal(1, out.Facets.Rows())
	r.Equal(1, out.Linealities.Rows())
	r.Equal([]int{1}, out.NonRedundantLinealities, "input row 1 was promoted into the lineality basis")
}

func TestCompute_Tetrahedron(t *testing.T) {
	r := require.New(t)
	pts := homogenizeMatrix(t, builder.TetrahedronVertices())

	out, err := hull.Compute(pts, emptyLineality(t, 4), hull.NewConfig(hull.WithMakeTriangulation()), nil)
	r.NoError(err)
	r.Equal(4, out.Facets.Rows())
	r.Equal(0, out.AffineHull.Rows())
	r.Equal([]int{0, 1, 2, 3}, out.NonRedundantPoints)
	r.True(out.GenericPosition)
	r.Len(out.Triangulation, 1)
	r.ElementsMatch([]int{0, 1, 2, 3}, out.Triangulation[0])
	requireInwardFacets(t, pts, out)

	for _, fid := range out.DualGraph.AllFacets() {
		adj, err := out.DualGraph.Underlying().NeighborIDs(fid)
		r.NoError(err)
		r.Len(adj, 3, "every facet of a tetrahedron's dual graph (K4) has exactly 3 neighbors")
	}
}

// TestCompute_CubeFixtureAllCornersAreExtreme runs builder's cube fixture
// through the engine: all 8 corners of a cube are vertices of its own hull
// (none lies in another's convex combination), so every input row must
// survive as non-redundant regardless of how the engine triangulates the
// cube's square facets into simplices.
func TestCompute_CubeFixtureAllCornersAreExtreme(t *testing.T) {
	r := require.New(t)
	pts := homogenizeMatrix(t, builder.CubeVertices())

	out, err := hull.Compute(pts, emptyLineality(t, 4), hull.NewConfig(hull.WithMakeTriangulation()), nil)
	r.NoError(err)
	r.Equal(0, out.AffineHull.Rows())
	r.Equal([]int{0, 1, 2, 3, 4, 5, 6, 7}, out.NonRedundantPoints)
	r.Equal(6, out.Facets.Rows(), "a cube has 6 facets")
	r.NotEmpty(out.Triangulation)
	requireInwardFacets(t, pts, out)

	res, err := bfs.BFS(out.DualGraph.Underlying(), out.DualGraph.AllFacets()[0])
	r.NoError(err)
	r.Equal(out.DualGraph.NodeCount(), len(res.Order), "dual graph of a cube must be connected")
}

// TestCompute_OctahedronFixtureAllVerticesAreExtreme runs builder's
// octahedron fixture (the cross-polytope) through the engine with
// triangulation enabled. The insertion order pyramidizes over a non-simplex
// base, so the run is reported non-generic even though no vertex ever lies
// on a foreign facet of the final polytope.
func TestCompute_OctahedronFixtureAllVerticesAreExtreme(t *testing.T) {
	r := require.New(t)
	pts := homogenizeMatrix(t, builder.OctahedronVertices())

	out, err := hull.Compute(pts, emptyLineality(t, 4), hull.NewConfig(hull.WithMakeTriangulation()), nil)
	r.NoError(err)
	r.Equal(8, out.Facets.Rows(), "the octahedron's facet lattice has 8 triangular faces")
	r.Equal(0, out.AffineHull.Rows())
	r.Equal([]int{0, 1, 2, 3, 4, 5}, out.NonRedundantPoints)
	requireInwardFacets(t, pts, out)

	res, err := bfs.BFS(out.DualGraph.Underlying(), out.DualGraph.AllFacets()[0])
	r.NoError(err)
	r.Equal(out.DualGraph.NodeCount(), len(res.Order), "dual graph of an octahedron must be connected")
}

// TestCompute_PlatonicDispatchIcosahedronAndDodecahedron exercises
// builder.Vertices' name-dispatch path (as opposed to calling a generator
// function directly) for the two solids whose coordinates depend on the
// rational φ convergent, confirming both still produce a full-dimensional,
// fully non-redundant point set under the engine.
func TestCompute_PlatonicDispatchIcosahedronAndDodecahedron(t *testing.T) {
	for _, name := range []builder.PlatonicName{builder.Icosahedron, builder.Dodecahedron} {
		name := name
		t.Run(name.String(), func(t *testing.T) {
			r := require.New(t)
			raw, err := builder.Vertices(name)
			r.NoError(err)
			pts := homogenizeMatrix(t, raw)

			out, err := hull.Compute(pts, emptyLineality(t, 4), hull.NewConfig(), nil)
			r.NoError(err)
			r.Equal(0, out.AffineHull.Rows())
			r.Len(out.NonRedundantPoints, raw.Rows(), "every %s vertex is extreme", name)
			requireInwardFacets(t, pts, out)

			res, err := bfs.BFS(out.DualGraph.Underlying(), out.DualGraph.AllFacets()[0])
			r.NoError(err)
			r.Equal(out.DualGraph.NodeCount(), len(res.Order), "dual graph of a %s must be connected", name)
		})
	}
}

// The facet set does not depend on the insertion order, only the
// triangulation may.
func TestCompute_PermutationInvariantFacets(t *testing.T) {
	r := require.New(t)
	pts := homogeneous(t, [][]int64{{0, 0}, {3, 0}, {3, 3}, {0, 3}, {1, 1}})
	cfg := hull.NewConfig(hull.WithExpectRedundant())

	base, err := hull.Compute(pts, emptyLineality(t, 3), cfg, nil)
	r.NoError(err)

	for _, order := range [][]int{{4, 3, 2, 1, 0}, {2, 0, 4, 1, 3}, {1, 3, 0, 2, 4}} {
		out, err := hull.Compute(pts, emptyLineality(t, 3), cfg, order)
		r.NoError(err)
		r.Equal(base.NonRedundantPoints, out.NonRedundantPoints, "order %v", order)
		r.Equal(base.Facets.Rows(), out.Facets.Rows(), "order %v", order)
		requireInwardFacets(t, pts, out)
	}
}

func TestCompute_InfeasibleInequalitySystem(t *testing.T) {
	r := require.New(t)
	// A 1-d inequality system whose declared lineality already spans the
	// whole ambient line: the pre-reduction complement is empty, so the run
	// degenerates to the full linear space. In dual (compute_vertices) mode
	// with a non-empty inequality list, that degeneracy means the feasible
	// region is empty rather than "everything" — ErrInfeasible, not a
	// silent empty result.
	ineqs := rays(t, [][]int64{{5}})
	lin := rays(t, [][]int64{{1}})

	_, err := hull.Compute(ineqs, lin, hull.NewConfig(hull.WithComputeVertices(), hull.WithExpectRedundant()), nil)
	r.ErrorIs(err, hull.ErrInfeasible)
}

func TestCompute_DualModeOnFeasibleSystemSucceeds(t *testing.T) {
	r := require.New(t)
	pts := homogeneous(t, [][]int64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})

	primal, err := hull.Compute(pts, emptyLineality(t, 3), hull.NewConfig(), nil)
	r.NoError(err)
	r.Equal(4, primal.Facets.Rows())

	// Feed the primal facets back in as the dual problem's inequalities: the
	// system is feasible (it is the square itself), so no ErrInfeasible, and
	// the facet-enumeration of the normal cone succeeds.
	dual, err := hull.Compute(primal.Facets, emptyLineality(t, 3), hull.NewConfig(hull.WithComputeVertices(), hull.WithExpectRedundant()), nil)
	r.NoError(err)
	r.Greater(dual.Facets.Rows(), 0)
}

func TestCompute_DebugChecksExerciseDualConnectivityCheck(t *testing.T) {
	r := require.New(t)
	pts := homogeneous(t, [][]int64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})

	out, err := hull.Compute(pts, emptyLineality(t, 3), hull.NewConfig(hull.WithDebugLevel(hull.DebugFull)), nil)
	r.NoError(err)
	r.Equal(4, out.Facets.Rows())
}

func TestCompute_DegenerateToFullLinearSpace(t *testing.T) {
	r := require.New(t)
	pts := homogeneous(t, [][]int64{{0}, {1}})
	lin := rays(t, [][]int64{{1, 0}, {0, 1}})

	out, err := hull.Compute(pts, lin, hull.NewConfig(hull.WithExpectRedundant()), nil)
	r.NoError(err)
	r.Equal(0, out.Facets.Rows())
	r.Equal(0, out.AffineHull.Rows())
	r.Empty(out.NonRedundantPoints)
	r.Equal(0, out.Linealities.Rows(), "an affine run that degenerates reports the empty polyhedron")
	r.Equal([]int{0, 1}, out.NonRedundantLinealities)
}

func TestCompute_EmptyInputAffine(t *testing.T) {
	r := require.New(t)
	pts := emptyLineality(t, 3) // 0×3: no points at all

	out, err := hull.Compute(pts, emptyLineality(t, 3), hull.NewConfig(hull.WithExpectRedundant()), nil)
	r.NoError(err)
	r.Equal(0, out.Facets.Rows())
	r.Equal(0, out.AffineHull.Rows())
	r.Empty(out.NonRedundantPoints)
	r.Empty(out.Triangulation)
}
