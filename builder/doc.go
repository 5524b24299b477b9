// Package builder provides deterministic point-set generators used as test
// fixtures for the hull engine: the five regular (Platonic) solids, each
// returned as an exact-coordinate field.Matrix ready to feed straight into
// hull.Engine. Vertex ordering is fixed per solid so that engine output
// (facet lists, triangulations) is reproducible across test runs.
package builder
