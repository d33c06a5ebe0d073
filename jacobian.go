// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

// This file implements the Jacobian projective coordinate backend used by
// MultiplyPoint when the curve is constructed with BackendJacobian. For a
// given affine point (x, y), the Jacobian triple (X, Y, Z) represents
// (X/Z², Y/Z³). The point at infinity is represented by Z = 0.
//
// Using Jacobian coordinates during the double-and-add loop trades the
// single modular inversion per affine add/double for multiplications only,
// paying for exactly one inversion at the very end when converting back to
// affine.

import "math/big"

// jacobianPoint is the internal (X, Y, Z) representation. It is never
// exposed outside this package.
type jacobianPoint struct {
	X, Y, Z *big.Int
}

// jacobianInfinity returns the Jacobian representation of 𝒪.
func jacobianInfinity() jacobianPoint {
	return jacobianPoint{X: big.NewInt(1), Y: big.NewInt(1), Z: big.NewInt(0)}
}

// toJacobian converts an affine point to its Jacobian representation.
func toJacobian(p Point) jacobianPoint {
	if p.IsInfinity() {
		return jacobianInfinity()
	}
	return jacobianPoint{
		X: new(big.Int).Set(p.X),
		Y: new(big.Int).Set(p.Y),
		Z: big.NewInt(1),
	}
}

// toAffine converts a Jacobian point back to affine coordinates, performing
// exactly one modular inversion (of Z) when the point is not at infinity.
func (c *EllipticCurve) toAffine(j jacobianPoint) Point {
	if j.Z.Sign() == 0 {
		return Infinity
	}

	zInv, err := mmi(j.Z, c.P)
	if err != nil {
		// Z is only ever a product of field elements reduced mod P, so
		// a missing inverse here means Z ≡ 0, already handled above.
		return Infinity
	}

	zInv2 := new(big.Int).Mul(zInv, zInv)
	zInv2.Mod(zInv2, c.P)
	zInv3 := new(big.Int).Mul(zInv2, zInv)
	zInv3.Mod(zInv3, c.P)

	x := new(big.Int).Mul(j.X, zInv2)
	x.Mod(x, c.P)
	y := new(big.Int).Mul(j.Y, zInv3)
	y.Mod(y, c.P)

	return NewPoint(x, y)
}

// doubleJacobian doubles a Jacobian point per the specification's formulas:
//
//	S = 4·X·Y² mod p; M = 3·X² + a·Z⁴ mod p
//	X' = M² − 2S mod p; Y' = M·(S − X') − 8·Y⁴ mod p; Z' = 2·Y·Z mod p
func (c *EllipticCurve) doubleJacobian(p jacobianPoint) jacobianPoint {
	if p.Z.Sign() == 0 {
		return jacobianInfinity()
	}

	y2 := new(big.Int).Mul(p.Y, p.Y)
	y2.Mod(y2, c.P)

	s := new(big.Int).Mul(p.X, y2)
	s.Mul(s, four)
	s.Mod(s, c.P)

	x2 := new(big.Int).Mul(p.X, p.X)
	z2 := new(big.Int).Mul(p.Z, p.Z)
	z2.Mod(z2, c.P)
	z4 := new(big.Int).Mul(z2, z2)
	az4 := new(big.Int).Mul(c.A, z4)
	m := new(big.Int).Mul(three, x2)
	m.Add(m, az4)
	m.Mod(m, c.P)

	twoS := new(big.Int).Mul(two, s)
	xOut := new(big.Int).Mul(m, m)
	xOut.Sub(xOut, twoS)
	xOut.Mod(xOut, c.P)

	y4 := new(big.Int).Mul(y2, y2)
	eightY4 := new(big.Int).Mul(eight, y4)

	sMinusX := new(big.Int).Sub(s, xOut)
	yOut := new(big.Int).Mul(m, sMinusX)
	yOut.Sub(yOut, eightY4)
	yOut.Mod(yOut, c.P)

	zOut := new(big.Int).Mul(two, p.Y)
	zOut.Mul(zOut, p.Z)
	zOut.Mod(zOut, c.P)

	return jacobianPoint{X: xOut, Y: yOut, Z: zOut}
}

// addJacobian adds two Jacobian points per the specification's formulas:
//
//	U1 = X1·Z2² ; U2 = X2·Z1² ; S1 = Y1·Z2³ ; S2 = Y2·Z1³
//	H = U2 − U1 ; R = S2 − S1
//	X3 = R² − H³ − 2·U1·H² ; Y3 = R·(U1·H² − X3) − S1·H³ ; Z3 = H·Z1·Z2
func (c *EllipticCurve) addJacobian(p, q jacobianPoint) jacobianPoint {
	if p.Z.Sign() == 0 {
		return q
	}
	if q.Z.Sign() == 0 {
		return p
	}

	z1z1 := new(big.Int).Mul(p.Z, p.Z)
	z1z1.Mod(z1z1, c.P)
	z2z2 := new(big.Int).Mul(q.Z, q.Z)
	z2z2.Mod(z2z2, c.P)

	u1 := new(big.Int).Mul(p.X, z2z2)
	u1.Mod(u1, c.P)
	u2 := new(big.Int).Mul(q.X, z1z1)
	u2.Mod(u2, c.P)

	z2Cubed := new(big.Int).Mul(z2z2, q.Z)
	z2Cubed.Mod(z2Cubed, c.P)
	z1Cubed := new(big.Int).Mul(z1z1, p.Z)
	z1Cubed.Mod(z1Cubed, c.P)

	s1 := new(big.Int).Mul(p.Y, z2Cubed)
	s1.Mod(s1, c.P)
	s2 := new(big.Int).Mul(q.Y, z1Cubed)
	s2.Mod(s2, c.P)

	if u1.Cmp(u2) == 0 {
		if s1.Cmp(s2) != 0 {
			return jacobianInfinity()
		}
		return c.doubleJacobian(p)
	}

	h := new(big.Int).Sub(u2, u1)
	h.Mod(h, c.P)
	r := new(big.Int).Sub(s2, s1)
	r.Mod(r, c.P)

	h2 := new(big.Int).Mul(h, h)
	h2.Mod(h2, c.P)
	h3 := new(big.Int).Mul(h2, h)
	h3.Mod(h3, c.P)

	u1h2 := new(big.Int).Mul(u1, h2)
	u1h2.Mod(u1h2, c.P)

	xOut := new(big.Int).Mul(r, r)
	xOut.Sub(xOut, h3)
	twoU1H2 := new(big.Int).Mul(two, u1h2)
	xOut.Sub(xOut, twoU1H2)
	xOut.Mod(xOut, c.P)

	s1h3 := new(big.Int).Mul(s1, h3)
	yOut := new(big.Int).Sub(u1h2, xOut)
	yOut.Mul(yOut, r)
	yOut.Sub(yOut, s1h3)
	yOut.Mod(yOut, c.P)

	zOut := new(big.Int).Mul(h, p.Z)
	zOut.Mul(zOut, q.Z)
	zOut.Mod(zOut, c.P)

	return jacobianPoint{X: xOut, Y: yOut, Z: zOut}
}

// multiplyJacobian performs left-to-right double-and-add over k entirely in
// Jacobian coordinates, converting to affine exactly once at the end.
func (c *EllipticCurve) multiplyJacobian(k *big.Int, p Point) Point {
	result := jacobianInfinity()
	addend := toJacobian(p)
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = c.doubleJacobian(result)
		if k.Bit(i) == 1 {
			result = c.addJacobian(result, addend)
		}
	}
	return c.toAffine(result)
}
