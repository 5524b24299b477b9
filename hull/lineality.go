package hull

import (
	"github.com/katalvlaran/beneathbeyond/field"
	"github.com/katalvlaran/beneathbeyond/field/ops"
)

// preReduce rebuilds e.points, e.dPrime, and e.transform from the current
// lineality basis, leaving e.srcPoints and e.lineality untouched. It is
// called once at the start of Compute and again every time addLinealities
// grows the basis mid-run.
//
// With a non-empty basis L (r rows), the complement C = null_space(L) is
// computed, the square basis change M = [C; L] inverted, and every source
// point projected through the inverse and truncated to its first d-r
// coordinates. An empty complement means the lineality fills the whole
// ambient space: errDegenerate.
func (e *Engine) preReduce() error {
	if e.lineality.Rows() == 0 {
		e.points = e.srcPoints.Clone()
		e.dPrime = e.d
		e.transform = nil
		return nil
	}

	comp, err := ops.NullSpace(e.lineality)
	if err != nil {
		return err
	}
	if comp.Rows() == 0 {
		return errDegenerate
	}

	rows := make([]field.Vector, 0, e.d)
	for i := 0; i < comp.Rows(); i++ {
		rows = append(rows, comp.Row(i))
	}
	for i := 0; i < e.lineality.Rows(); i++ {
		rows = append(rows, e.lineality.Row(i))
	}
	square, err := field.FromRows(rows)
	if err != nil {
		return err
	}
	t, err := ops.Inverse(square)
	if err != nil {
		return err
	}

	e.transform = t
	e.dPrime = e.d - e.lineality.Rows()

	proj, err := e.srcPoints.Mul(t)
	if err != nil {
		return err
	}
	e.points = proj.SelectCols(e.dPrime)
	return nil
}

// rangeInts returns [0, 1, ..., n-1].
func rangeInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
