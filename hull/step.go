package hull

import (
	"fmt"

	"github.com/katalvlaran/beneathbeyond/dual"
	"github.com/katalvlaran/beneathbeyond/field"
	"github.com/katalvlaran/beneathbeyond/field/ops"
	"github.com/katalvlaran/beneathbeyond/iset"
)

// run drives the state machine over order, point by point. A mid-run
// lineality discovery re-transforms the points, clears the polyhedron built
// so far, and re-absorbs the affected points inside processNewLineality; the
// loop here simply continues with the rest of the order afterwards.
func (e *Engine) run(order []int) error {
	for _, p := range order {
		if err := e.processPoint(p); err != nil {
			return err
		}
		e.logStep(p)
	}
	return nil
}

// processPoint classifies point p against the engine's current state and
// dispatches to the matching update routine.
func (e *Engine) processPoint(p int) error {
	if e.cfg.expectRedundant && e.points.RowRef(p).IsZero() {
		e.I.Add(p)
		return nil
	}

	switch e.state {
	case StateZero:
		ops.ReduceNullspace(e.ah, e.points.RowRef(p))
		e.V = iset.New(p)
		e.v0 = p
		e.state = StateOne
		return nil
	case StateOne:
		return e.addSecondPoint(p)
	case StateLowDim:
		return e.addPointLowDim(p)
	case StateFullDim:
		return e.addPointFullDim(p)
	default:
		return fmt.Errorf("hull: unknown state %v", e.state)
	}
}

// addSecondPoint handles state one: either p spans a segment together with
// the committed point, or it is collinear with it — redundant when the signs
// agree, a lineality generator when they differ.
func (e *Engine) addSecondPoint(p int) error {
	pt := e.points.RowRef(p)

	if ops.ReduceNullspace(e.ah, pt) {
		// Two different points found: initialize the polytope.
		id0, rec0 := e.dg.AddFacet()
		rec0.Vertices = iset.New(e.v0)
		id1, rec1 := e.dg.AddFacet()
		rec1.Vertices = iset.New(p)
		if _, err := e.dg.AddRidge(id0, id1, iset.New()); err != nil {
			return err
		}

		e.V.Add(p)
		if e.cfg.makeTriangulation {
			s := &dual.Simplex{Vertices: iset.New(e.v0, p)}
			e.tri = append(e.tri, s)
			rec0.Simplices = []dual.IncidentSimplex{{Simplex: s, OppositeVertex: p}}
			rec1.Simplices = []dual.IncidentSimplex{{Simplex: s, OppositeVertex: e.v0}}
		}
		e.validFacet = id0

		if e.ah.Rows() == 0 {
			// dimension 1: the facet normals are needed immediately
			e.state = StateFullDim
			if err := e.computeNormalFullDim(rec0); err != nil {
				return err
			}
			if err := e.computeNormalFullDim(rec1); err != nil {
				return err
			}
		} else {
			e.state = StateLowDim
		}
		return nil
	}

	if !e.cfg.expectRedundant {
		return &UnexpectedRedundantPointError{Index: p}
	}

	// p and the committed point are collinear; opposite signs span a
	// lineality direction.
	if pt.SignOf() != e.points.RowRef(e.v0).SignOf() {
		e.I.Add(e.v0)
		e.V = iset.New()
		if err := e.addLinealities([]int{e.v0}); err != nil {
			return err
		}
		e.state = StateZero
	}
	e.I.Add(p)
	return nil
}

// addPointLowDim absorbs a point while the polyhedron is not yet
// full-dimensional in the effective space: either p enlarges the affine hull
// (pyramid step) or it falls inside and is handled by the regular visibility
// walk, with facet normals materialized on demand.
func (e *Engine) addPointLowDim(p int) error {
	pt := e.points.RowRef(p)

	if ops.ReduceNullspace(e.ah, pt) {
		return e.pyramidStep(p)
	}

	e.lowDimNormalsUsed = true
	return e.addPointFullDim(p)
}

// pyramidStep absorbs a point that enlarged the affine hull (the hull was
// already reduced by the caller). Every existing facet and every existing
// ridge is extended with p; one new apex-opposite facet, spanning the old
// vertex set, is created.
func (e *Engine) pyramidStep(p int) error {
	if e.lowDimNormalsUsed {
		// the base being pyramidized is more than a simplex
		e.genericPosition = false
		e.lowDimNormalsUsed = false
	}

	apex := e.V.Clone()
	if e.cfg.expectRedundant {
		apex.RemoveAll(e.I)
	}
	nid, nrec := e.dg.AddFacet()
	nrec.Vertices = apex

	if e.cfg.makeTriangulation {
		for _, s := range e.tri {
			s.Vertices.Add(p)
			nrec.Simplices = append(nrec.Simplices, dual.IncidentSimplex{Simplex: s, OppositeVertex: p})
		}
	}

	e.V.Add(p)
	fullDim := e.ah.Rows() == 0
	if fullDim {
		e.state = StateFullDim
	} else {
		e.state = StateLowDim
	}

	e.dg.ExtendAllRidges(p)
	for _, fid := range e.dg.AllFacets() {
		if fid == nid {
			continue
		}
		frec := e.dg.Facet(fid)
		if _, err := e.dg.AddRidge(fid, nid, frec.Vertices.Clone()); err != nil {
			return err
		}
		frec.Vertices.Add(p)
		if fullDim {
			if err := e.computeNormalFullDim(frec); err != nil {
				return err
			}
		}
	}
	if fullDim {
		if err := e.computeNormalFullDim(nrec); err != nil {
			return err
		}
	}
	return nil
}

// currentDim reports the dimension of the polyhedron built so far in the
// effective space.
func (e *Engine) currentDim() int {
	return e.dPrime - e.ah.Rows()
}

// squaredDist returns dot²/sqrNormal, the squared Euclidean distance from
// the current point to the hyperplane carrying normal, used to steer the
// visibility descent.
func squaredDist(dot, sqrNormal field.Scalar) field.Scalar {
	return field.Quo(field.Sqr(dot), sqrNormal)
}

// descendToViolatedFacet walks the dual graph from f, following the steepest
// descent of squared distance to p, until a facet violated by or incident
// with p is found. It returns "" when the walk bottoms out in a local
// minimum with every facet around it still valid.
func (e *Engine) descendToViolatedFacet(f string, pt field.Vector) (string, error) {
	e.visited[f] = true
	rec := e.dg.Facet(f)
	if err := e.refreshFacetNormal(rec); err != nil {
		return "", err
	}
	fxp := field.Dot(rec.Normal, pt)
	rec.Orientation = field.Sign(fxp)
	if rec.Orientation <= 0 {
		return f, nil
	}
	if e.cfg.expectRedundant {
		e.verticesThisStep.AddAll(rec.Vertices)
	}
	dist := squaredDist(fxp, rec.SqrNormal)

	for {
		next := ""
		nbrs, err := e.dg.AdjacentFacets(f)
		if err != nil {
			return "", err
		}
		for _, f2 := range nbrs {
			if e.visited[f2] {
				continue
			}
			e.visited[f2] = true
			rec2 := e.dg.Facet(f2)
			if err := e.refreshFacetNormal(rec2); err != nil {
				return "", err
			}
			f2xp := field.Dot(rec2.Normal, pt)
			rec2.Orientation = field.Sign(f2xp)
			if rec2.Orientation <= 0 {
				return f2, nil
			}
			if e.cfg.expectRedundant {
				e.verticesThisStep.AddAll(rec2.Vertices)
			}
			d2 := squaredDist(f2xp, rec2.SqrNormal)
			if d2.Cmp(dist) <= 0 {
				next = f2
				dist = d2
			}
		}
		if next == "" {
			return "", nil
		}
		f = next
	}
}

// addPointFullDim is the first phase of a regular step: look for a facet
// violated by p, starting the descent from the facet added last in the
// previous step and restarting from an arbitrary unvisited facet whenever
// the descent bottoms out. If every facet stays valid, p is redundant.
func (e *Engine) addPointFullDim(p int) error {
	pt := e.points.RowRef(p)

	for k := range e.visited {
		delete(e.visited, k)
	}
	if e.cfg.expectRedundant {
		e.verticesThisStep.Clear()
	}

	tryFacet := e.validFacet
	if tryFacet == "" || e.dg.Facet(tryFacet) == nil {
		all := e.dg.AllFacets()
		if len(all) == 0 {
			return fmt.Errorf("hull: visibility search has no facet to start from")
		}
		tryFacet = all[0]
	}

	for {
		found, err := e.descendToViolatedFacet(tryFacet, pt)
		if err != nil {
			return err
		}
		if found != "" {
			return e.updateFacets(found, p)
		}
		tryFacet = e.firstUnvisited()
		if tryFacet == "" {
			break
		}
	}

	// no violated facet found: p must be a redundant point
	if !e.cfg.expectRedundant {
		return &UnexpectedRedundantPointError{Index: p}
	}
	e.I.Add(p)
	return nil
}

func (e *Engine) firstUnvisited() string {
	for _, id := range e.dg.AllFacets() {
		if !e.visited[id] {
			return id
		}
	}
	return ""
}

// updateFacets is the BFS over the visible hemisphere: every facet violated
// by or incident with p is visited. Incident facets matter because they can
// contain redundant points not discovered before this step. Violated facets
// die; each border ridge between a violated and a valid facet spawns a new
// facet through p.
func (e *Engine) updateFacets(seedF string, p int) error {
	pt := e.points.RowRef(p)
	queue := []string{seedF}

	var incidentFacets []string
	var stepSimps []*dual.Simplex // front = newest, this step's prefix

	if e.cfg.expectRedundant {
		e.interiorThisStep.Clear()
	}

	seedRec := e.dg.Facet(seedF)
	if seedRec.Orientation == 0 {
		seedRec.Vertices.Add(p)
		e.genericPosition = false
		incidentFacets = append(incidentFacets, seedF)
	}

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		frec := e.dg.Facet(f)
		fOrientation := frec.Orientation

		// the simplices created while processing this one facet
		var newSimps []*dual.Simplex

		if fOrientation < 0 {
			if e.cfg.expectRedundant {
				e.interiorThisStep.AddAll(frec.Vertices)
			}
			// build new triangulation simplices from the facet's own: replace
			// the vertex behind the facet by the new point
			if e.cfg.makeTriangulation {
				for _, is := range frec.Simplices {
					nv := is.Simplex.Vertices.Clone()
					nv.Remove(is.OppositeVertex)
					nv.Add(p)
					newSimps = append([]*dual.Simplex{{Vertices: nv}}, newSimps...)
				}
			}
		}

		ridges, err := e.dg.OutRidges(f)
		if err != nil {
			return err
		}
		for _, re := range ridges {
			g := re.Other
			grec := e.dg.Facet(g)

			if !e.visited[g] {
				e.visited[g] = true
				if err := e.refreshFacetNormal(grec); err != nil {
					return err
				}
				grec.Orientation = field.Sign(field.Dot(grec.Normal, pt))
				if grec.Orientation == 0 {
					grec.Vertices.Add(p)
					e.genericPosition = false
					incidentFacets = append(incidentFacets, g)
				}
				if grec.Orientation <= 0 {
					queue = append(queue, g)
				} else if e.cfg.expectRedundant {
					e.verticesThisStep.AddAll(grec.Vertices)
				}
			}

			switch {
			case fOrientation < 0 && grec.Orientation > 0:
				// a ridge on the visibility border: create a new facet
				ridgeVerts := re.Ridge.Clone()
				nid, nrec := e.dg.AddFacet()
				nrec.Vertices = ridgeVerts.Clone()
				nrec.Vertices.Add(p)
				if err := e.computeFacetNormal(nrec); err != nil {
					return err
				}
				if _, err := e.dg.AddRidge(nid, g, ridgeVerts); err != nil {
					return err
				}
				incidentFacets = append(incidentFacets, nid)
				if e.cfg.makeTriangulation {
					attachIncidentSimplices(nrec, newSimps)
				}
				e.logFull("created facet on visibility border", nid)
			case fOrientation < 0 && grec.Orientation == 0:
				if e.cfg.makeTriangulation {
					attachIncidentSimplices(grec, newSimps)
				}
			case fOrientation == 0 && grec.Orientation == 0:
				// the point is incident to both facets: extend the ridge
				extended := re.Ridge.Clone()
				extended.Add(p)
				e.dg.SetRidge(re.EdgeID, extended)
			}
		}

		if e.cfg.makeTriangulation && len(newSimps) > 0 {
			stepSimps = append(newSimps, stepSimps...)
		}
		if fOrientation < 0 {
			if err := e.dg.DeleteFacet(f); err != nil {
				return err
			}
		}
	}

	if e.cfg.makeTriangulation && len(stepSimps) > 0 {
		e.tri = append(stepSimps, e.tri...)
	}

	if e.cfg.expectRedundant {
		if e.interiorThisStep.Len() == 0 {
			// no violated facets visited: p lies on the boundary
			e.I.Add(p)
			return nil
		}
		if e.verticesThisStep.Len() == 0 {
			// no retained vertex on any valid facet: new lineality
			return e.processNewLineality(p, incidentFacets)
		}
		e.interiorThisStep.RemoveAll(e.verticesThisStep)
		e.I.AddAll(e.interiorThisStep)
	}

	e.createRidgesAmongIncident(incidentFacets)

	if e.ah.Rows() != 0 {
		e.V.Add(p)
		if e.cfg.expectRedundant {
			e.V.RemoveAll(e.interiorThisStep)
		}
	}
	if len(incidentFacets) > 0 {
		e.validFacet = incidentFacets[len(incidentFacets)-1]
	}
	return nil
}

// createRidgesAmongIncident is the final phase of a step: every pair of
// facets incident to p that is not already connected and shares enough
// vertices gets a new ridge; existing ridges of the first facet that the
// candidate covers are removed, and a candidate covered by an existing ridge
// is dropped.
func (e *Engine) createRidgesAmongIncident(incidentFacets []string) {
	minRidge := e.dPrime - e.ah.Rows() - 2

	for i := 0; i < len(incidentFacets); i++ {
		f := incidentFacets[i]
		fVisited := e.visited[f]
		for j := i + 1; j < len(incidentFacets); j++ {
			g := incidentFacets[j]
			// both facets pre-date this step: they may already be connected
			if fVisited && e.visited[g] && e.connected(f, g) {
				continue
			}
			rv := e.dg.Facet(f).Vertices.Intersect(e.dg.Facet(g).Vertices)
			if rv.Len() < minRidge {
				continue
			}
			add := true
			outs, err := e.dg.OutRidges(f)
			if err != nil {
				continue
			}
			for _, re := range outs {
				covered := re.Ridge.Subset(rv)
				covers := rv.Subset(re.Ridge)
				if !covered && !covers {
					continue
				}
				if covered {
					_ = e.dg.EraseRidge(re.EdgeID)
				}
				if covers {
					add = false
					break
				}
			}
			if add {
				_, _ = e.dg.AddRidge(f, g, rv)
			}
		}
	}
}

func (e *Engine) connected(f, g string) bool {
	nbrs, err := e.dg.AdjacentFacets(f)
	if err != nil {
		return false
	}
	for _, n := range nbrs {
		if n == g {
			return true
		}
	}
	return false
}

// processNewLineality handles the case where no retained vertex was ever
// seen on a valid facet during this step: together with p, the points
// common to all incident facets span a new lineality direction. The source
// rows of those points join the lineality basis, the points are
// re-projected into the smaller quotient space, and the remaining candidate
// points of the step are absorbed again from scratch.
func (e *Engine) processNewLineality(p int, incidentFacets []string) error {
	raysInLineality := iset.New()
	candidates := iset.New()

	switch {
	case len(incidentFacets) == 0:
		// all rays absorbed so far belong to the new lineality
		if e.ah.Rows() == 0 {
			// lineality fills the entire affine hull
			return errDegenerate
		}
		raysInLineality = e.V.Clone()
		raysInLineality.RemoveAll(e.I)
	case e.dg.NodeCount() > 1:
		// the intersection of all incident facets is the new lineality,
		// their remaining vertices are candidates for re-absorption
		first := e.dg.Facet(incidentFacets[0]).Vertices
		raysInLineality = first.Clone()
		candidates = first.Clone()
		for _, fid := range incidentFacets[1:] {
			v := e.dg.Facet(fid).Vertices
			raysInLineality = raysInLineality.Intersect(v)
			candidates.AddAll(v)
		}
		candidates.RemoveAll(raysInLineality)
		raysInLineality.Remove(p)
	default:
		// two points and two facets: the only candidate belongs to the
		// violated facet
		candidates = e.interiorThisStep.Clone()
		raysInLineality = e.dg.Facet(incidentFacets[0]).Vertices.Clone()
	}

	e.logCheck("new lineality direction discovered", map[string]interface{}{
		"point":      p,
		"rays":       raysInLineality.Slice(),
		"candidates": candidates.Slice(),
	})

	if err := e.addLinealities(raysInLineality.Slice()); err != nil {
		return err
	}

	e.interiorThisStep.RemoveAll(candidates)
	e.I.AddAll(e.interiorThisStep)
	e.I.Add(p)
	e.I.AddAll(raysInLineality)
	e.V = iset.New()
	e.dg.Reset()
	e.validFacet = ""
	if e.cfg.makeTriangulation {
		e.tri = nil
	}
	e.state = StateZero

	for _, cp := range candidates.Slice() {
		if err := e.processPoint(cp); err != nil {
			return err
		}
	}
	return nil
}

// addLinealities appends the source rows of pointSet to the lineality
// basis, records which of them were genuinely independent, and re-projects
// every point into the complement of the enlarged lineality space.
func (e *Engine) addLinealities(pointSet []int) error {
	prev := e.lineality.Rows()
	for _, q := range pointSet {
		e.lineality.AppendRow(e.srcPoints.RowRef(q))
	}
	basis := ops.BasisRows(e.lineality)
	// the first prev rows were a basis already, so they all survive; rows
	// beyond them that survived are the newly promoted points
	for _, row := range basis {
		if row >= prev {
			e.pointsInLinBasis = append(e.pointsInLinBasis, pointSet[row-prev])
		}
	}
	e.lineality = e.lineality.SelectRows(basis)

	if err := e.preReduce(); err != nil {
		return err
	}
	e.ah = field.Identity(e.dPrime)
	return nil
}
