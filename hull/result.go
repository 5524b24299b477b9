package hull

import (
	"github.com/katalvlaran/beneathbeyond/dual"
	"github.com/katalvlaran/beneathbeyond/field"
)

// finalize settles the terminal state after the last point: the degenerate
// low-cardinality states get their synthetic output shape, deferred facet
// normals are computed, and the dual graph is renumbered to a dense id
// space before extraction.
func (e *Engine) finalize() error {
	switch e.state {
	case StateZero:
		// empty polyhedron (affine) or the bare apex (cone)
		if !e.cfg.forCone {
			var err error
			if e.ah, err = field.NewMatrix(0, e.dPrime); err != nil {
				return err
			}
			if e.lineality, err = field.NewMatrix(0, e.d); err != nil {
				return err
			}
		}
	case StateOne:
		// a single ray: one empty facet whose normal is the point itself
		_, rec := e.dg.AddFacet()
		rec.Normal = e.points.Row(e.v0)
		rec.SqrNormal = field.Dot(rec.Normal, rec.Normal)
		if e.cfg.makeTriangulation {
			e.tri = append(e.tri, &dual.Simplex{Vertices: e.V.Clone()})
		}
	case StateLowDim:
		for _, fid := range e.dg.AllFacets() {
			if err := e.computeNormalLowDim(e.dg.Facet(fid)); err != nil {
				return err
			}
		}
	}
	e.dg.Squeeze()
	e.checkDualConnectivity()
	return nil
}

// backProject lifts rows expressed in the current dPrime-wide effective
// coordinates back into the caller's original d-wide ambient space: pad with
// the quotiented-out lineality coordinates (always zero for a dual vector,
// since every facet normal and affine-hull row vanishes on the lineality
// space) and undo the pre-reduction basis change.
func (e *Engine) backProject(rows []field.Vector) (*field.Matrix, error) {
	m, err := field.FromRows(rows)
	if err != nil {
		return nil, err
	}
	if e.transform == nil {
		return m, nil
	}
	padded := m.HCatZeros(e.d - e.dPrime)
	return padded.MulT(e.transform)
}

// nonRedundantLinealityIndices maps the current lineality basis back onto
// the caller's index space: caller-supplied rows keep their own index,
// promoted source points are shifted past the caller's row count.
func (e *Engine) nonRedundantLinealityIndices() []int {
	out := make([]int, 0, len(e.srcLinBasisIdx)+len(e.pointsInLinBasis))
	out = append(out, e.srcLinBasisIdx...)
	for _, q := range e.pointsInLinBasis {
		out = append(out, e.srcLinealityRows+q)
	}
	return out
}

// extractResult reads every output artifact off the engine's final state.
func (e *Engine) extractResult() (*EngineOutput, error) {
	facetIDs := e.dg.AllFacets()

	facetRows := make([]field.Vector, 0, len(facetIDs))
	for _, fid := range facetIDs {
		facetRows = append(facetRows, e.dg.Facet(fid).Normal)
	}
	var facets *field.Matrix
	var err error
	if len(facetRows) == 0 {
		facets, err = field.NewMatrix(0, e.d)
	} else {
		facets, err = e.backProject(facetRows)
	}
	if err != nil {
		return nil, err
	}

	ahRows := make([]field.Vector, 0, e.ah.Rows())
	for i := 0; i < e.ah.Rows(); i++ {
		ahRows = append(ahRows, e.ah.Row(i))
	}
	var affineHull *field.Matrix
	if len(ahRows) == 0 {
		affineHull, err = field.NewMatrix(0, e.d)
	} else {
		affineHull, err = e.backProject(ahRows)
	}
	if err != nil {
		return nil, err
	}

	nonRedundant := make([]int, 0, e.n)
	for i := 0; i < e.n; i++ {
		if !e.I.Contains(i) {
			nonRedundant = append(nonRedundant, i)
		}
	}

	var vertices *field.Matrix
	if len(nonRedundant) == 0 {
		vertices, err = field.NewMatrix(0, e.d)
	} else {
		vrows := make([]field.Vector, len(nonRedundant))
		for i, idx := range nonRedundant {
			vrows[i] = e.srcPoints.Row(idx)
		}
		if e.cfg.computeVertices && e.lineality.Rows() > 0 {
			// canonicalize: project each row onto the orthogonal complement
			// of the lineality space
			for _, v := range vrows {
				projectOffLineality(v, e.lineality)
			}
		}
		vertices, err = field.FromRows(vrows)
	}
	if err != nil {
		return nil, err
	}

	incidenceCols := nonRedundant
	if !e.cfg.expectRedundant {
		incidenceCols = rangeInts(e.n)
	}
	incidence := make([][]bool, len(facetIDs))
	for i, fid := range facetIDs {
		rec := e.dg.Facet(fid)
		row := make([]bool, len(incidenceCols))
		for j, p := range incidenceCols {
			row[j] = rec.Vertices.Contains(p)
		}
		incidence[i] = row
	}

	// e.tri is kept newest-first; the placing triangulation is reported in
	// creation order.
	triangulation := make([][]int, 0, len(e.tri))
	for i := len(e.tri) - 1; i >= 0; i-- {
		triangulation = append(triangulation, e.tri[i].Vertices.Slice())
	}

	return &EngineOutput{
		Facets:                  facets,
		AffineHull:              affineHull,
		Vertices:                vertices,
		Linealities:             e.lineality.Clone(),
		VertexFacetIncidence:    incidence,
		DualGraph:               e.dg.Snapshot(),
		Triangulation:           triangulation,
		NonRedundantPoints:      nonRedundant,
		NonRedundantLinealities: e.nonRedundantLinealityIndices(),
		GenericPosition:         e.genericPosition,
	}, nil
}

// projectOffLineality subtracts from v, in place, its component inside the
// row space of lin: v -= sum_l ((v·l)/sqr(l)) * l.
func projectOffLineality(v field.Vector, lin *field.Matrix) {
	for i := 0; i < lin.Rows(); i++ {
		l := lin.RowRef(i)
		coeff := field.Quo(field.Dot(v, l), field.Dot(l, l))
		for j := range v {
			v[j] = field.Sub(v[j], field.Mul(coeff, l[j]))
		}
	}
}

// degenerateResult is the output for a run whose lineality grew to fill the
// entire ambient space: every point is interior, there are no facets and no
// affine hull, and nothing of the incremental construction survives.
func (e *Engine) degenerateResult() (*EngineOutput, error) {
	facets, err := field.NewMatrix(0, e.d)
	if err != nil {
		return nil, err
	}
	affineHull, err := field.NewMatrix(0, e.d)
	if err != nil {
		return nil, err
	}
	vertices, err := field.NewMatrix(0, e.d)
	if err != nil {
		return nil, err
	}
	linealities := e.lineality.Clone()
	if !e.cfg.forCone {
		if linealities, err = field.NewMatrix(0, e.d); err != nil {
			return nil, err
		}
	}
	return &EngineOutput{
		Facets:                  facets,
		AffineHull:              affineHull,
		Vertices:                vertices,
		Linealities:             linealities,
		VertexFacetIncidence:    [][]bool{},
		DualGraph:               dual.NewGraph(),
		Triangulation:           nil,
		NonRedundantPoints:      []int{},
		NonRedundantLinealities: e.nonRedundantLinealityIndices(),
		GenericPosition:         e.genericPosition,
	}, nil
}
