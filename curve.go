// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import "math/big"

// Backend selects the internal coordinate representation EllipticCurve uses
// while performing scalar multiplication.  It has no effect on the result,
// only on how it is computed internally.
type Backend int

const (
	// BackendAffine performs scalar multiplication with the affine
	// double-and-add law directly, reducing modulo P after every step.
	BackendAffine Backend = iota

	// BackendJacobian converts to Jacobian projective coordinates before
	// the double-and-add loop and converts back to affine once at the
	// end, trading many modular inversions for one.
	BackendJacobian
)

// EllipticCurve is a short-Weierstrass curve y² = x³ + ax + b (mod p) along
// with the generator G, its order n, and the curve's cofactor h.  Values are
// immutable once constructed; the only mutation is construction itself.
type EllipticCurve struct {
	// Name identifies the curve for cache-key purposes.  It may be empty
	// for ad hoc curves built outside the named registry; P, A, and B
	// still make the cache key unique in that case.
	Name string

	P *big.Int // field prime
	A *big.Int // curve coefficient a
	B *big.Int // curve coefficient b
	G Point    // base point / generator
	N *big.Int // order of G
	H int      // cofactor

	Backend Backend
}

// NewEllipticCurve constructs a curve from its domain parameters.  It does
// not validate that the parameters describe a non-singular curve or that G
// lies on it; callers that need that assurance should call
// IsPointOnCurve(G) themselves.
func NewEllipticCurve(name string, p, a, b *big.Int, g Point, n *big.Int, h int, backend Backend) *EllipticCurve {
	return &EllipticCurve{
		Name:    name,
		P:       p,
		A:       a,
		B:       b,
		G:       g,
		N:       n,
		H:       h,
		Backend: backend,
	}
}

// mod reduces x into [0, c.P) and stores the result in x.
func (c *EllipticCurve) mod(x *big.Int) *big.Int {
	x.Mod(x, c.P)
	return x
}

// addAffine implements the reference affine addition law from the
// specification.  It assumes neither input needs further validation beyond
// the identity/opposite-point cases it already special-cases.
func (c *EllipticCurve) addAffine(p, q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	sameX := p.X.Cmp(q.X) == 0
	if sameX {
		ySum := new(big.Int).Add(p.Y, q.Y)
		ySum.Mod(ySum, c.P)
		if ySum.Sign() == 0 {
			// Either y1 != y2 (opposite points) or y1 == y2 == 0
			// (a 2-torsion point doubled onto infinity); both
			// collapse to the identity.
			return Infinity
		}
	}

	var lambda *big.Int
	if p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0 {
		// Doubling: lambda = (3x^2 + a) / (2y) mod p.
		num := new(big.Int).Mul(p.X, p.X)
		num.Mul(num, three)
		num.Add(num, c.A)
		num.Mod(num, c.P)

		den := new(big.Int).Mul(two, p.Y)
		den.Mod(den, c.P)

		denInv, err := mmi(den, c.P)
		if err != nil {
			// 2y ≡ 0 (mod p) means y = 0: a 2-torsion point, whose
			// double is the identity per the group law.
			return Infinity
		}
		lambda = new(big.Int).Mul(num, denInv)
		lambda.Mod(lambda, c.P)
	} else {
		// General addition: lambda = (y2 - y1) / (x2 - x1) mod p.
		num := new(big.Int).Sub(q.Y, p.Y)
		num.Mod(num, c.P)

		den := new(big.Int).Sub(q.X, p.X)
		den.Mod(den, c.P)

		denInv, err := mmi(den, c.P)
		if err != nil {
			return Infinity
		}
		lambda = new(big.Int).Mul(num, denInv)
		lambda.Mod(lambda, c.P)
	}

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.X)
	x3.Sub(x3, q.X)
	x3.Mod(x3, c.P)

	y3 := new(big.Int).Sub(p.X, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.Y)
	y3.Mod(y3, c.P)

	return NewPoint(x3, y3)
}

// AddPoints returns p + q under the curve's group law, consulting and
// populating the shared LRU cache.  𝒪 is handled as the group identity; no
// error is returned for any algebraic edge case.
func (c *EllipticCurve) AddPoints(p, q Point) Point {
	key := c.cacheKeyPoints("add", p, q)
	if v, ok := globalCache.getPoint(key); ok {
		return v
	}
	result := c.addAffine(p, q)
	globalCache.putPoint(key, result)
	return result
}

// DoublePoint returns 2*p.  It is defined as AddPoints(p, p) and is provided
// as a named operation both because the specification calls for it and
// because it gets its own cache entries.
func (c *EllipticCurve) DoublePoint(p Point) Point {
	key := c.cacheKeyPoints("double", p, Infinity)
	if v, ok := globalCache.getPoint(key); ok {
		return v
	}
	result := c.addAffine(p, p)
	globalCache.putPoint(key, result)
	return result
}

// MultiplyPoint returns k*p using left-to-right double-and-add over the
// binary expansion of k, starting from the identity.  k must be
// non-negative; k = 0 yields 𝒪.  k >= N is permitted and produces the
// mathematically correct multiple without requiring the caller to reduce it
// modulo N first.
func (c *EllipticCurve) MultiplyPoint(k *big.Int, p Point) Point {
	if k.Sign() < 0 {
		panic("ecc: MultiplyPoint requires a non-negative scalar")
	}
	if k.Sign() == 0 || p.IsInfinity() {
		return Infinity
	}

	key := c.cacheKeyScalarPoint("multiply", k, p)
	if v, ok := globalCache.getPoint(key); ok {
		return v
	}

	var result Point
	switch c.Backend {
	case BackendJacobian:
		result = c.multiplyJacobian(k, p)
	default:
		result = c.multiplyAffine(k, p)
	}

	globalCache.putPoint(key, result)
	return result
}

// multiplyAffine implements double-and-add directly with the affine law.
func (c *EllipticCurve) multiplyAffine(k *big.Int, p Point) Point {
	result := Infinity
	addend := p
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = c.addAffine(result, result)
		if k.Bit(i) == 1 {
			result = c.addAffine(result, addend)
		}
	}
	return result
}

// IsPointOnCurve reports whether p satisfies y² ≡ x³ + ax + b (mod p). It
// returns false for 𝒪.
func (c *EllipticCurve) IsPointOnCurve(p Point) bool {
	if p.IsInfinity() {
		return false
	}

	lhs := new(big.Int).Mul(p.Y, p.Y)
	lhs.Mod(lhs, c.P)

	rhs := new(big.Int).Mul(p.X, p.X)
	rhs.Mul(rhs, p.X)
	ax := new(big.Int).Mul(c.A, p.X)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, c.B)
	rhs.Mod(rhs, c.P)

	return lhs.Cmp(rhs) == 0
}
