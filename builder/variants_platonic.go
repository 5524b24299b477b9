// SPDX-License-Identifier: MIT
// Package: beneathbeyond/builder
//
// variants_platonic.go — the PlatonicName enum and per-solid vertex counts,
// shared by coordinates.go's point-set generators.

package builder

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron PlatonicName = iota // V=4
	Cube                            // V=8
	Octahedron                      // V=6
	Dodecahedron                    // V=20
	Icosahedron                     // V=12
)

// platonicVertexCounts maps each PlatonicName to its vertex count, the
// cross-check Vertices applies to every generated point set.
var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}
