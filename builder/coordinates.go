// File: coordinates.go
// Role: exact-rational coordinate generators for the five Platonic solids,
// used as hull-engine test fixtures.
//
// The classic dodecahedron/icosahedron embeddings use the golden ratio
// φ = (1+√5)/2, which is irrational and has no exact big.Rat representation.
// φ is replaced here by a close rational convergent (13/8, with 8/13 for
// 1/φ); the resulting point sets are full-dimensional and every point is a
// vertex of their hull, but they are not metrically regular. The
// icosahedron keeps its face lattice; the dodecahedron does not, since its
// pentagon vertices are no longer coplanar and each pentagon splits into
// several facets.

package builder

import (
	"fmt"

	"github.com/katalvlaran/beneathbeyond/field"
)

// phi is a rational convergent of the golden ratio, accurate to 1/104.
var (
	phiNum, phiDen       int64 = 13, 8
	invPhiNum, invPhiDen int64 = 8, 13
)

func rat(num, den int64) field.Scalar {
	return field.Quo(field.NewInt(num), field.NewInt(den))
}

func row3(x, y, z field.Scalar) field.Vector { return field.Vector{x, y, z} }

func matrixFromRows(rows []field.Vector) *field.Matrix {
	m, err := field.FromRows(rows)
	if err != nil {
		panic(fmt.Sprintf("builder: malformed fixture rows: %v", err))
	}
	return m
}

// TetrahedronVertices returns the 4 vertices of a regular tetrahedron
// inscribed in the cube {-1,1}^3 (alternating corners), as an n×3 exact
// matrix.
func TetrahedronVertices() *field.Matrix {
	one := field.NewInt(1)
	neg := field.Neg(one)
	return matrixFromRows([]field.Vector{
		row3(one, one, one),
		row3(one, neg, neg),
		row3(neg, one, neg),
		row3(neg, neg, one),
	})
}

// CubeVertices returns the 8 corners of {-1,1}^3.
func CubeVertices() *field.Matrix {
	one := field.NewInt(1)
	neg := field.Neg(one)
	signs := []field.Scalar{neg, one}
	rows := make([]field.Vector, 0, 8)
	for _, x := range signs {
		for _, y := range signs {
			for _, z := range signs {
				rows = append(rows, row3(x, y, z))
			}
		}
	}
	return matrixFromRows(rows)
}

// OctahedronVertices returns the 6 unit points along each coordinate axis.
func OctahedronVertices() *field.Matrix {
	one := field.NewInt(1)
	zero := field.Zero()
	neg := field.Neg(one)
	return matrixFromRows([]field.Vector{
		row3(one, zero, zero), row3(neg, zero, zero),
		row3(zero, one, zero), row3(zero, neg, zero),
		row3(zero, zero, one), row3(zero, zero, neg),
	})
}

// IcosahedronVertices returns the 12 cyclic-permutation vertices
// (0, ±1, ±φ), (±1, ±φ, 0), (±φ, 0, ±1).
func IcosahedronVertices() *field.Matrix {
	zero := field.Zero()
	one := field.NewInt(1)
	negOne := field.Neg(one)
	phi := rat(phiNum, phiDen)
	negPhi := field.Neg(phi)

	rows := []field.Vector{
		row3(zero, one, phi), row3(zero, one, negPhi),
		row3(zero, negOne, phi), row3(zero, negOne, negPhi),
		row3(one, phi, zero), row3(one, negPhi, zero),
		row3(negOne, phi, zero), row3(negOne, negPhi, zero),
		row3(phi, zero, one), row3(phi, zero, negOne),
		row3(negPhi, zero, one), row3(negPhi, zero, negOne),
	}
	return matrixFromRows(rows)
}

// DodecahedronVertices returns the 20 vertices {-1,1}^3 union the cyclic
// permutations of (0, ±1/φ, ±φ).
func DodecahedronVertices() *field.Matrix {
	cube := CubeVertices()
	zero := field.Zero()
	phi := rat(phiNum, phiDen)
	negPhi := field.Neg(phi)
	invPhi := rat(invPhiNum, invPhiDen)
	negInvPhi := field.Neg(invPhi)

	extra := []field.Vector{
		row3(zero, invPhi, phi), row3(zero, invPhi, negPhi),
		row3(zero, negInvPhi, phi), row3(zero, negInvPhi, negPhi),
		row3(invPhi, phi, zero), row3(invPhi, negPhi, zero),
		row3(negInvPhi, phi, zero), row3(negInvPhi, negPhi, zero),
		row3(phi, zero, invPhi), row3(phi, zero, negInvPhi),
		row3(negPhi, zero, invPhi), row3(negPhi, zero, negInvPhi),
	}
	rows := make([]field.Vector, 0, cube.Rows()+len(extra))
	for i := 0; i < cube.Rows(); i++ {
		rows = append(rows, cube.Row(i))
	}
	rows = append(rows, extra...)
	return matrixFromRows(rows)
}

// Vertices dispatches to the generator for name, validated against
// platonicVertexCounts so a future enum addition without a generator fails
// loudly instead of returning an incomplete point set.
func Vertices(name PlatonicName) (*field.Matrix, error) {
	var m *field.Matrix
	switch name {
	case Tetrahedron:
		m = TetrahedronVertices()
	case Cube:
		m = CubeVertices()
	case Octahedron:
		m = OctahedronVertices()
	case Dodecahedron:
		m = DodecahedronVertices()
	case Icosahedron:
		m = IcosahedronVertices()
	default:
		return nil, fmt.Errorf("builder: unknown platonic solid %v", name)
	}
	if want := platonicVertexCounts[name]; m.Rows() != want {
		return nil, fmt.Errorf("builder: %v: generated %d rows, want %d", name, m.Rows(), want)
	}
	return m, nil
}
