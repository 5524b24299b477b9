package ops

import "github.com/katalvlaran/beneathbeyond/field"

// BasisRows returns the indices, in ascending order, of a maximal linearly
// independent subset of m's rows. Rows are considered in their original
// order; a row is kept iff it is not a linear combination of the
// previously-kept rows, which makes the result deterministic for a given
// row order (a different row order can select different rows).
func BasisRows(m *field.Matrix) []int {
	ncols := m.Cols()
	var pivotRows []field.Vector
	var pivotCols []int
	var basis []int

	for i := 0; i < m.Rows(); i++ {
		cand := m.Row(i)
		// Reduce cand against every pivot row accumulated so far.
		for ri, pc := range pivotCols {
			if !field.IsZero(cand[pc]) {
				factor := cand[pc]
				for j := pc; j < ncols; j++ {
					cand[j] = field.Sub(cand[j], field.Mul(factor, pivotRows[ri][j]))
				}
			}
		}

		// Find the new row's leading non-zero column, if any.
		lead := -1
		for j := 0; j < ncols; j++ {
			if !field.IsZero(cand[j]) {
				lead = j
				break
			}
		}
		if lead < 0 {
			continue // linearly dependent on the rows already kept
		}

		inv := field.Quo(field.NewInt(1), cand[lead])
		for j := lead; j < ncols; j++ {
			cand[j] = field.Mul(cand[j], inv)
		}
		pivotRows = append(pivotRows, cand)
		pivotCols = append(pivotCols, lead)
		basis = append(basis, i)
	}

	return basis
}
