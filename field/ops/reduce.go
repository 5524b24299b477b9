package ops

import "github.com/katalvlaran/beneathbeyond/field"

// ReduceNullspace updates ns, a basis of a subspace N, in place so that it
// becomes a basis of N ∩ v⊥. It reports true iff v was linearly independent
// of N⊥ — equivalently, iff some row of ns had a non-zero dot product with
// v, in which case the subspace's rank dropped by exactly one.
//
// This is the primitive behind both the affine-hull update and the
// low-dimensional facet-normal search.
func ReduceNullspace(ns *field.Matrix, v field.Vector) bool {
	n := ns.Rows()
	pivot := -1
	dots := make([]field.Scalar, n)
	for i := 0; i < n; i++ {
		dots[i] = field.Dot(ns.RowRef(i), v)
		if pivot < 0 && !field.IsZero(dots[i]) {
			pivot = i
		}
	}
	if pivot < 0 {
		return false
	}

	pivotRow := ns.Row(pivot)
	pivotDot := dots[pivot]
	for i := 0; i < n; i++ {
		if i == pivot || field.IsZero(dots[i]) {
			continue
		}
		factor := field.Quo(dots[i], pivotDot)
		row := ns.RowRef(i)
		for j := range row {
			row[j] = field.Sub(row[j], field.Mul(factor, pivotRow[j]))
		}
	}
	ns.RemoveRow(pivot)

	return true
}
