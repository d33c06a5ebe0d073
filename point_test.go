// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"math/big"
	"testing"
)

func TestPointEqual(t *testing.T) {
	p1 := NewPoint(big.NewInt(1), big.NewInt(2))
	p2 := NewPoint(big.NewInt(1), big.NewInt(2))
	p3 := NewPoint(big.NewInt(1), big.NewInt(3))

	if !p1.Equal(p2) {
		t.Error("identical points compared unequal")
	}
	if p1.Equal(p3) {
		t.Error("distinct points compared equal")
	}
	if !Infinity.Equal(NewPoint(nil, nil)) {
		t.Error("two points at infinity compared unequal")
	}
	if p1.Equal(Infinity) {
		t.Error("finite point compared equal to infinity")
	}
}

func TestPointIsInfinity(t *testing.T) {
	if !Infinity.IsInfinity() {
		t.Error("Infinity.IsInfinity() = false")
	}
	if NewPoint(big.NewInt(1), big.NewInt(1)).IsInfinity() {
		t.Error("finite point reported as infinity")
	}
	if !NewPoint(nil, big.NewInt(1)).IsInfinity() {
		t.Error("point with nil X not treated as infinity")
	}
}
