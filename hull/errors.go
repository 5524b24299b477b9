package hull

import (
	"errors"
	"fmt"
)

// UnexpectedRedundantPointError is returned when Config.ExpectRedundant is
// false and a point is discovered to be a duplicate, collinear, or strictly
// interior. It is fatal and always surfaced to the caller.
type UnexpectedRedundantPointError struct {
	// Index is the position of the offending point in the caller's original
	// point list.
	Index int
}

func (e *UnexpectedRedundantPointError) Error() string {
	return fmt.Sprintf("hull: point %d is redundant; expect_redundant is false", e.Index)
}

// ErrInfeasible is returned only when Config.ComputeVertices is set and, after
// the run, both the facet list and the affine hull are empty while the input
// inequalities/equations were non-empty.
var ErrInfeasible = errors.New("hull: infeasible inequality system")

// errDegenerate is the internal signal that the accumulated lineality fills
// the whole ambient space. It never escapes Compute: the top level catches
// it and substitutes the empty-polyhedron result (or ErrInfeasible in dual
// mode).
var errDegenerate = errors.New("hull: degenerate to full linear space")
