// Package hull is the beneath-and-beyond incremental convex-hull engine: it
// grows a polyhedron one point at a time and simultaneously produces its
// facets and affine hull, a placing triangulation, the dual graph of the
// facet lattice, and the subset of input points that are genuinely
// non-redundant (vertices or rays).
//
// Coordinate convention. Points are consumed exactly as given — the engine
// performs no implicit homogenization. Callers modeling an affine polytope
// (ForCone unset) are expected to supply points with a leading homogeneous
// coordinate (1, x1, ..., xk), mirroring the "far hyperplane" [1,0,...,0]
// that low-dimensional facet normals are computed relative to (see
// computeNormalLowDim in facet.go). Callers modeling a cone (ForCone set)
// supply raw ray coordinates; the origin is always a feasible apex.
//
// The dual problem — vertex/ray enumeration from an inequality system — is
// the same engine with ComputeVertices set: the caller hands the engine the
// inequalities in place of points, and the roles of "facets produced" and
// "vertices produced" are swapped by the caller's interpretation of
// EngineOutput.
//
// Package layout:
//
//	options.go    — the four-switch Config builder
//	errors.go     — the three error kinds, one of them internal to Compute
//	types.go      — State, Engine, EngineOutput
//	lineality.go  — lineality pre-reduction and the quotient transform
//	facet.go      — per-facet normal computation, full- and low-dimensional
//	step.go       — the state machine, visibility BFS, and lineality restarts
//	result.go     — snapshot extraction, undoing the lineality transform
//	compute.go    — the single exported entry point, Compute
//	debug.go      — the opt-in zerolog diagnostic channel
//
// See DESIGN.md at the module root for the component breakdown and the
// reasoning behind this package's design.
package hull
