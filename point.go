// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import "math/big"

// Commonly used small integers, declared once to avoid churn.
var (
	zero  = big.NewInt(0)
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
	four  = big.NewInt(4)
	seven = big.NewInt(7)
	eight = big.NewInt(8)
)

// Point is an affine point on an elliptic curve, or the point at infinity
// when both X and Y are nil.  Points are immutable values: every operation
// that produces a point returns a new one rather than mutating an existing
// value, so a Point is safe to share and compare across goroutines.
type Point struct {
	X, Y *big.Int
}

// Infinity is the distinguished point at infinity, 𝒪, the identity element
// of the curve group.
var Infinity = Point{}

// NewPoint constructs the affine point (x, y).  Passing nil for either
// coordinate returns the point at infinity, mirroring the data model's rule
// that 𝒪 is the only point without both coordinates present.
func NewPoint(x, y *big.Int) Point {
	if x == nil || y == nil {
		return Infinity
	}
	return Point{X: x, Y: y}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.X == nil || p.Y == nil
}

// Equal reports whether p and q represent the same point.  Two points
// compare equal iff both are 𝒪 or both have identical (x, y).
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Neg returns -p, the point with the same x and y' = (p - y) mod fieldPrime.
// Neg of the point at infinity is the point at infinity.
func (c *EllipticCurve) Neg(p Point) Point {
	if p.IsInfinity() {
		return Infinity
	}
	negY := new(big.Int).Sub(c.P, p.Y)
	negY.Mod(negY, c.P)
	return NewPoint(new(big.Int).Set(p.X), negY)
}

// String renders the point in a human-readable form, used by tests and
// error messages.
func (p Point) String() string {
	if p.IsInfinity() {
		return "Point(∞)"
	}
	return "Point(" + p.X.String() + ", " + p.Y.String() + ")"
}
