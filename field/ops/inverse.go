package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/beneathbeyond/field"
)

// ErrSingular is returned when a square matrix has no inverse.
var ErrSingular = errors.New("ops: matrix is singular")

// Inverse returns the inverse of the square matrix m via Gauss-Jordan
// elimination on the augmented matrix [m | I], with partial pivoting
// (the first available non-zero pivot in each column) so singular input is
// always detected rather than silently dividing by zero.
//
// Complexity: O(n^3) time, O(n^2) memory, where n = m.Rows().
func Inverse(m *field.Matrix) (*field.Matrix, error) {
	n := m.Rows()
	if n != m.Cols() {
		return nil, fmt.Errorf("Inverse: non-square %dx%d: %w", n, m.Cols(), field.ErrDimensionMismatch)
	}

	// Stage 1: build the augmented [A | I] working rows.
	aug := make([]field.Vector, n)
	for i := 0; i < n; i++ {
		row := field.NewVector(2 * n)
		for j := 0; j < n; j++ {
			v, _ := m.At(i, j)
			row[j].Set(v)
		}
		row[n+i] = field.NewInt(1)
		aug[i] = row
	}

	// Stage 2: Gauss-Jordan elimination, column by column.
	for col := 0; col < n; col++ {
		pivot := -1
		for i := col; i < n; i++ {
			if !field.IsZero(aug[i][col]) {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			return nil, fmt.Errorf("Inverse: zero pivot at %d: %w", col, ErrSingular)
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		inv := field.Quo(field.NewInt(1), aug[col][col])
		for j := 0; j < 2*n; j++ {
			aug[col][j] = field.Mul(aug[col][j], inv)
		}
		for i := 0; i < n; i++ {
			if i == col || field.IsZero(aug[i][col]) {
				continue
			}
			factor := aug[i][col]
			for j := 0; j < 2*n; j++ {
				aug[i][j] = field.Sub(aug[i][j], field.Mul(factor, aug[col][j]))
			}
		}
	}

	// Stage 3: peel off the right half as the inverse.
	out, _ := field.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = out.Set(i, j, aug[i][n+j])
		}
	}
	return out, nil
}
