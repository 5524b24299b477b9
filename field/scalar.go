package field

import "math/big"

// Scalar is an element of the exact ordered field E.
type Scalar = *big.Rat

// Zero returns a freshly allocated zero scalar.
func Zero() Scalar { return new(big.Rat) }

// NewInt returns the scalar n/1.
func NewInt(n int64) Scalar { return new(big.Rat).SetInt64(n) }

// Sign reports -1, 0, or +1 according to the sign of x.
func Sign(x Scalar) int { return x.Sign() }

// IsZero reports whether x is the additive identity.
func IsZero(x Scalar) bool { return x.Sign() == 0 }

// Add returns a+b as a new Scalar.
func Add(a, b Scalar) Scalar { return new(big.Rat).Add(a, b) }

// Sub returns a-b as a new Scalar.
func Sub(a, b Scalar) Scalar { return new(big.Rat).Sub(a, b) }

// Mul returns a*b as a new Scalar.
func Mul(a, b Scalar) Scalar { return new(big.Rat).Mul(a, b) }

// Quo returns a/b as a new Scalar. Panics if b is zero, mirroring big.Rat.
func Quo(a, b Scalar) Scalar { return new(big.Rat).Quo(a, b) }

// Neg returns -a as a new Scalar.
func Neg(a Scalar) Scalar { return new(big.Rat).Neg(a) }

// Sqr returns x*x.
func Sqr(x Scalar) Scalar { return new(big.Rat).Mul(x, x) }
