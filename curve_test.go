// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// secp192k1 fixture, duplicated here (rather than imported from the curves
// sub-package) to avoid an import cycle, matching the way the teacher's own
// curve_test.go hard codes its fixture values rather than depending on
// another package.
func secp192k1(backend Backend) *EllipticCurve {
	p := hx("fffffffffffffffffffffffffffffffffffffffeffffee37")
	a := big.NewInt(0)
	b := big.NewInt(3)
	gx := hx("db4ff10ec057e9ae26b07d0280b7f4341da5d1b1eae06c7d")
	gy := hx("9b2f2f6d9c5628a7844163d015be86344082aa88d95e2f9d")
	n := hx("fffffffffffffffffffffffe26f2fc170f69466a74defd8d")
	return NewEllipticCurve("secp192k1", p, a, b, NewPoint(gx, gy), n, 1, backend)
}

func hx(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("bad hex literal: " + s)
	}
	return n
}

func TestAddIdentity(t *testing.T) {
	curve := secp192k1(BackendAffine)
	g := curve.G
	if !curve.AddPoints(g, Infinity).Equal(g) {
		t.Error("P + O != P")
	}
	if !curve.AddPoints(Infinity, g).Equal(g) {
		t.Error("O + P != P")
	}
}

func TestAddCommutative(t *testing.T) {
	curve := secp192k1(BackendAffine)
	g := curve.G
	g2 := curve.DoublePoint(g)
	if !curve.AddPoints(g, g2).Equal(curve.AddPoints(g2, g)) {
		t.Error("P + Q != Q + P")
	}
}

func TestAddOpposite(t *testing.T) {
	curve := secp192k1(BackendAffine)
	g := curve.G
	neg := curve.Neg(g)
	if !curve.IsPointOnCurve(neg) {
		t.Fatal("-G is not on the curve")
	}
	if !curve.AddPoints(g, neg).Equal(Infinity) {
		t.Error("P + (-P) != O")
	}
}

func TestAddAssociative(t *testing.T) {
	curve := secp192k1(BackendAffine)
	g := curve.G
	g2 := curve.DoublePoint(g)
	g3 := curve.AddPoints(g2, g)

	left := curve.AddPoints(curve.AddPoints(g, g2), g3)
	right := curve.AddPoints(g, curve.AddPoints(g2, g3))
	if !left.Equal(right) {
		t.Error("(P+Q)+R != P+(Q+R)")
	}
}

func TestDoubleEqualsAdd(t *testing.T) {
	curve := secp192k1(BackendAffine)
	g := curve.G
	if !curve.DoublePoint(g).Equal(curve.AddPoints(g, g)) {
		t.Error("double(P) != P + P")
	}
}

func TestDoubleTorsionYieldsInfinity(t *testing.T) {
	// A small textbook curve y^2 = x^3 + x (mod 23); (0,0) is on it and
	// has y = 0, making it a 2-torsion point. Doubling it must yield the
	// identity per invariant B4.
	curve := NewEllipticCurve("toy23", big.NewInt(23), big.NewInt(1), big.NewInt(0),
		NewPoint(big.NewInt(3), big.NewInt(10)), big.NewInt(28), 1, BackendAffine)

	torsion := NewPoint(big.NewInt(0), big.NewInt(0))
	if !curve.IsPointOnCurve(torsion) {
		t.Fatal("(0,0) is not on the toy curve")
	}
	if !curve.DoublePoint(torsion).Equal(Infinity) {
		t.Error("doubling a y=0 point did not yield infinity")
	}
}

func TestScalarMultByOrderYieldsInfinity(t *testing.T) {
	for _, backend := range []Backend{BackendAffine, BackendJacobian} {
		curve := secp192k1(backend)
		result := curve.MultiplyPoint(curve.N, curve.G)
		if !result.Equal(Infinity) {
			t.Errorf("backend %v: n*G != O, got %v", backend, result)
		}
	}
}

func TestScalarMultZero(t *testing.T) {
	curve := secp192k1(BackendAffine)
	if !curve.MultiplyPoint(big.NewInt(0), curve.G).Equal(Infinity) {
		t.Error("0*P != O")
	}
}

func TestScalarMultReductionModN(t *testing.T) {
	curve := secp192k1(BackendAffine)
	k := big.NewInt(12345)
	kPlusN := new(big.Int).Add(k, curve.N)

	got := curve.MultiplyPoint(kPlusN, curve.G)
	want := curve.MultiplyPoint(k, curve.G)
	if !got.Equal(want) {
		t.Error("(k+n)*P != k*P")
	}
}

func TestScalarMultBackendsAgree(t *testing.T) {
	affine := secp192k1(BackendAffine)
	jacobian := secp192k1(BackendJacobian)

	k := big.NewInt(123456789)
	a := affine.MultiplyPoint(k, affine.G)
	j := jacobian.MultiplyPoint(k, jacobian.G)
	if !a.Equal(j) {
		t.Errorf("affine and jacobian backends disagree:\n%s", spew.Sdump(a, j))
	}
}

func TestIsPointOnCurve(t *testing.T) {
	curve := secp192k1(BackendAffine)
	if !curve.IsPointOnCurve(curve.G) {
		t.Error("G is not reported on curve")
	}
	if curve.IsPointOnCurve(Infinity) {
		t.Error("infinity reported on curve")
	}

	d := big.NewInt(7)
	dG := curve.MultiplyPoint(d, curve.G)
	if !curve.IsPointOnCurve(dG) {
		t.Error("7*G is not reported on curve")
	}
}

func TestIsPointOnCurveRejectsBumpedY(t *testing.T) {
	curve := secp192k1(BackendAffine)
	bumped := NewPoint(new(big.Int).Set(curve.G.X), new(big.Int).Add(curve.G.Y, one))
	if curve.IsPointOnCurve(bumped) {
		t.Error("point with bumped y reported on curve")
	}
}

func TestDoubleG(t *testing.T) {
	curve := secp192k1(BackendAffine)
	doubled := curve.DoublePoint(curve.G)
	added := curve.AddPoints(curve.G, curve.G)
	if !doubled.Equal(added) {
		t.Error("2*G via double != 2*G via add")
	}
	if !curve.IsPointOnCurve(doubled) {
		t.Error("2*G is not on the curve")
	}
}
