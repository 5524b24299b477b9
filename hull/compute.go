package hull

import (
	"errors"

	"github.com/katalvlaran/beneathbeyond/dual"
	"github.com/katalvlaran/beneathbeyond/field"
	"github.com/katalvlaran/beneathbeyond/field/ops"
	"github.com/katalvlaran/beneathbeyond/iset"
)

// Compute runs the beneath-and-beyond engine to completion. points is one row
// per input point (or, with WithComputeVertices, one row per input
// inequality); linealities is the caller's known lineality basis, which may
// be nil or a zero-row matrix of the same column count. order, if non-nil,
// fixes the insertion order; otherwise points are absorbed in row order.
//
// The returned *EngineOutput is always non-nil on a nil error. ErrInfeasible
// is returned, with a nil *EngineOutput, only when WithComputeVertices is set
// and a non-empty affine inequality system was found to admit no feasible
// point.
func Compute(points, linealities *field.Matrix, cfg Config, order []int) (*EngineOutput, error) {
	n := points.Rows()
	d := points.Cols()

	lin := linealities
	if lin == nil {
		var err error
		lin, err = field.NewMatrix(0, d)
		if err != nil {
			return nil, err
		}
	}

	e := &Engine{
		cfg:              cfg,
		srcPoints:        points,
		n:                n,
		d:                d,
		srcLinealityRows: lin.Rows(),
		dg:               dual.NewGraph(),
		V:                iset.New(),
		I:                iset.New(),
		genericPosition:  !cfg.expectRedundant,
		visited:          make(map[string]bool),
		verticesThisStep: iset.New(),
		interiorThisStep: iset.New(),
	}

	// The lineality input is reduced to a basis up front when redundancy is
	// allowed; otherwise the caller asserts it already is one.
	if cfg.expectRedundant {
		e.srcLinBasisIdx = ops.BasisRows(lin)
		e.lineality = lin.SelectRows(e.srcLinBasisIdx)
	} else {
		e.srcLinBasisIdx = rangeInts(lin.Rows())
		e.lineality = lin.Clone()
	}

	runOrder := order
	if runOrder == nil {
		runOrder = rangeInts(n)
	}

	err := e.preReduce()
	if err == nil {
		e.state = StateZero
		e.ah = field.Identity(e.dPrime)
		err = e.run(runOrder)
	}
	if err != nil {
		if errors.Is(err, errDegenerate) {
			if cfg.computeVertices && !cfg.forCone && (n > 0 || e.srcLinealityRows > 0) {
				return nil, ErrInfeasible
			}
			return e.degenerateResult()
		}
		return nil, err
	}

	if err := e.finalize(); err != nil {
		return nil, err
	}

	out, err := e.extractResult()
	if err != nil {
		return nil, err
	}

	if cfg.computeVertices && !cfg.forCone &&
		(n > 0 || e.srcLinealityRows > 0) &&
		out.Facets.Rows() == 0 && out.AffineHull.Rows() == 0 {
		return nil, ErrInfeasible
	}

	return out, nil
}
