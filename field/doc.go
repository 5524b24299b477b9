// Package field provides the exact-arithmetic linear algebra facade consumed
// by the hull engine: vectors and matrices over *big.Rat, with dot products,
// sign tests, and a Dense-style row-major matrix type.
//
// No floating-point type ever appears on this boundary: every computation
// the engine needs (null spaces, row bases, matrix inversion) is exact, so
// two runs over the same input in the same order always agree bit-for-bit.
//
//	field/     — Scalar, Vector, Matrix primitives
//	field/ops/ — NullSpace, BasisRows, ReduceNullspace, Inverse
package field
