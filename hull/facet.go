package hull

import (
	"fmt"

	"github.com/katalvlaran/beneathbeyond/dual"
	"github.com/katalvlaran/beneathbeyond/field"
	"github.com/katalvlaran/beneathbeyond/field/ops"
	"github.com/katalvlaran/beneathbeyond/iset"
)

// computeFacetNormal dispatches to the full- or low-dimensional normal
// computation depending on the engine's current state, and caches the
// result on rec.
func (e *Engine) computeFacetNormal(rec *dual.FacetRecord) error {
	if e.state == StateFullDim {
		return e.computeNormalFullDim(rec)
	}
	return e.computeNormalLowDim(rec)
}

// refreshFacetNormal recomputes rec's normal if it has never been computed,
// or if the engine is still in StateLowDim (where the affine hull can shrink
// between steps, invalidating any previously cached low-dimensional normal).
// Once the engine reaches StateFullDim a facet's normal never changes again,
// so the cache is trusted from then on.
func (e *Engine) refreshFacetNormal(rec *dual.FacetRecord) error {
	if rec.Normal == nil || e.state == StateLowDim {
		return e.computeFacetNormal(rec)
	}
	return nil
}

// computeNormalFullDim computes rec's normal as any non-zero row of the
// null space of the matrix whose rows are rec's vertex coordinates, sign-
// fixed against any retained vertex not on the facet.
func (e *Engine) computeNormalFullDim(rec *dual.FacetRecord) error {
	sub := e.points.SelectRows(rec.Vertices.Slice())
	ns, err := ops.NullSpace(sub)
	if err != nil {
		return err
	}
	if ns.Rows() == 0 {
		return fmt.Errorf("hull: full-dimensional facet has no normal (vertex set spans the ambient space)")
	}
	normal := ns.Row(0)
	e.signFix(normal, rec.Vertices)
	rec.Normal = normal
	rec.SqrNormal = field.Dot(normal, normal)
	return nil
}

// computeNormalLowDim computes rec's normal orthogonally to the current
// affine hull: the null space of the hull's hyperplanes — each re-rooted
// through the origin unless it is literally the far hyperplane [1,0,...,0],
// which is preserved, or unless the polyhedron is a cone, where the rows are
// taken as-is — is reduced by rec's vertices in ascending order until a
// single row remains, and the first surviving row is the normal.
func (e *Engine) computeNormalLowDim(rec *dual.FacetRecord) error {
	rows := make([]field.Vector, 0, e.ah.Rows())
	if e.cfg.forCone {
		for i := 0; i < e.ah.Rows(); i++ {
			rows = append(rows, e.ah.Row(i))
		}
	} else {
		far := field.NewVector(e.dPrime)
		far[0] = field.NewInt(1)
		for i := 0; i < e.ah.Rows(); i++ {
			r := e.ah.Row(i)
			if !vecEqual(r, far) {
				r[0] = field.Zero()
			}
			rows = append(rows, r)
		}
	}
	base, err := field.FromRows(rows)
	if err != nil {
		return err
	}
	n, err := ops.NullSpace(base)
	if err != nil {
		return err
	}
	for _, q := range rec.Vertices.Slice() {
		if n.Rows() <= 1 {
			break
		}
		ops.ReduceNullspace(n, e.points.RowRef(q))
	}
	if n.Rows() == 0 {
		return fmt.Errorf("hull: low-dimensional facet nullspace collapsed to zero rows")
	}
	normal := n.Row(0)
	e.signFix(normal, rec.Vertices)
	rec.Normal = normal
	rec.SqrNormal = field.Dot(normal, normal)
	return nil
}

func vecEqual(u, v field.Vector) bool {
	if len(u) != len(v) {
		return false
	}
	for i := range u {
		if u[i].Cmp(v[i]) != 0 {
			return false
		}
	}
	return true
}

// signFix negates normal in place if it points away from the first retained
// vertex outside verts. If every retained vertex lies in verts (e.g. the two
// degenerate facets created right after the second point), the orientation
// is left as computed: there is nothing yet to check it against.
func (e *Engine) signFix(normal field.Vector, verts *iset.Set) {
	for _, q := range e.V.Slice() {
		if verts.Contains(q) {
			continue
		}
		if field.Sign(field.Dot(normal, e.points.RowRef(q))) < 0 {
			for i := range normal {
				normal[i] = field.Neg(normal[i])
			}
		}
		return
	}
}

// attachIncidentSimplices records, on rec, every simplex in prefix that is
// incident to it: a simplex S is incident to a facet F iff |S \ F.vertices|
// == 1, and the sole surviving element is the opposite vertex.
func attachIncidentSimplices(rec *dual.FacetRecord, prefix []*dual.Simplex) {
	for _, s := range prefix {
		diff := s.Vertices.Clone()
		for _, v := range rec.Vertices.Slice() {
			diff.Remove(v)
		}
		if opp, ok := diff.SoleElement(); ok {
			rec.Simplices = append(rec.Simplices, dual.IncidentSimplex{Simplex: s, OppositeVertex: opp})
		}
	}
}
