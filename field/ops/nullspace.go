package ops

import "github.com/katalvlaran/beneathbeyond/field"

// eliminate reduces rows to row-echelon form (RREF) in place, scanning
// columns left to right and, for each, choosing the first remaining row
// (in current order) with a non-zero entry there as the pivot.
//
// Returns the pivot column for each surviving (non-zero) row, in the order
// those rows appear in the returned slice; zero rows are dropped.
func eliminate(rows []field.Vector, ncols int) (pivotRows []field.Vector, pivotCols []int) {
	work := make([]field.Vector, len(rows))
	for i, r := range rows {
		work[i] = r.Clone()
	}

	next := 0 // index of the next row slot to fill with a pivot
	for col := 0; col < ncols && next < len(work); col++ {
		// Stage 1: find the first row at or after `next` with a non-zero entry in col.
		pivot := -1
		for i := next; i < len(work); i++ {
			if !field.IsZero(work[i][col]) {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue // column is free; no pivot here
		}
		work[next], work[pivot] = work[pivot], work[next]

		// Stage 2: normalize the pivot row so the pivot entry is 1.
		inv := field.Quo(field.NewInt(1), work[next][col])
		for j := col; j < ncols; j++ {
			work[next][j] = field.Mul(work[next][j], inv)
		}

		// Stage 3: eliminate this column from every other row (full RREF, not
		// just upper-triangular), so later null-space extraction is direct.
		for i := range work {
			if i == next || field.IsZero(work[i][col]) {
				continue
			}
			factor := work[i][col]
			for j := col; j < ncols; j++ {
				work[i][j] = field.Sub(work[i][j], field.Mul(factor, work[next][j]))
			}
		}

		pivotCols = append(pivotCols, col)
		next++
	}

	return work[:next], pivotCols
}

// NullSpace returns a basis of { x : M x = 0 }, one row per free column of
// M's row-echelon form, ordered by increasing free-column index. If M has
// zero rows, the result is the ncols×ncols identity (the whole space).
func NullSpace(m *field.Matrix) (*field.Matrix, error) {
	ncols := m.Cols()
	if m.Rows() == 0 {
		return field.Identity(ncols), nil
	}

	rows := make([]field.Vector, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		rows[i] = m.RowRef(i)
	}
	pivotRows, pivotCols := eliminate(rows, ncols)

	isPivot := make([]bool, ncols)
	for _, c := range pivotCols {
		isPivot[c] = true
	}

	var basis []field.Vector
	for f := 0; f < ncols; f++ {
		if isPivot[f] {
			continue
		}
		x := field.NewVector(ncols)
		x[f] = field.NewInt(1)
		for ri, pc := range pivotCols {
			x[pc] = field.Neg(pivotRows[ri][f])
		}
		basis = append(basis, x)
	}

	if len(basis) == 0 {
		// trivial null space: return a 0×ncols matrix (empty basis)
		return field.NewMatrix(0, ncols)
	}
	return field.FromRows(basis)
}
