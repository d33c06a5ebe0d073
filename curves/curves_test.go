// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curves

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ecckit/go-ecc"
)

func TestLookupKnownCurves(t *testing.T) {
	for _, name := range Names() {
		curve, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q) returned error: %v", name, err)
			continue
		}
		if curve.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, curve.Name)
		}
		if !curve.IsPointOnCurve(curve.G) {
			t.Errorf("Lookup(%q): generator is not on the curve", name)
		}
		if curve.H != 1 {
			t.Errorf("Lookup(%q): cofactor = %d, want 1", name, curve.H)
		}
	}
}

func TestLookupUnknownCurve(t *testing.T) {
	_, err := Lookup("secp999k1")
	if !errors.Is(err, ecc.ErrUnknownCurve) {
		t.Errorf("Lookup(unknown) error = %v, want ErrUnknownCurve", err)
	}
}

func TestLookupBackendOption(t *testing.T) {
	jacobian, err := Lookup("secp256k1")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if jacobian.Backend != ecc.BackendJacobian {
		t.Error("default Lookup did not select the Jacobian backend")
	}

	affine, err := Lookup("secp256k1", UseProjectiveCoordinates(false))
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if affine.Backend != ecc.BackendAffine {
		t.Error("UseProjectiveCoordinates(false) did not select the affine backend")
	}

	// Both backends must agree on the group law regardless of the
	// internal coordinate representation.
	k := big.NewInt(12345)
	a := affine.MultiplyPoint(k, affine.G)
	j := jacobian.MultiplyPoint(k, jacobian.G)
	if !a.Equal(j) {
		t.Error("affine and Jacobian backends from Lookup disagree")
	}
}

func TestNamesSortedAndComplete(t *testing.T) {
	want := []string{
		"secp192k1", "secp192r1", "secp224k1", "secp224r1",
		"secp256k1", "secp256r1", "secp384r1", "secp521r1",
	}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// secp224k1 and secp224r1 both have p ≡ 1 (mod 4), unlike the other six
// curves in the registry; any square-root logic built on these curves must
// not assume the p ≡ 3 (mod 4) fast path.
func TestOddModuliCurvesSupportModularSquareRoot(t *testing.T) {
	for _, name := range []string{"secp224k1", "secp224r1"} {
		curve, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) returned error: %v", name, err)
		}
		mod4 := new(big.Int).Mod(curve.P, big.NewInt(4))
		if mod4.Cmp(big.NewInt(1)) != 0 {
			t.Fatalf("%s: expected p mod 4 == 1, got %v (fixture drifted)", name, mod4)
		}

		y := new(big.Int).ModSqrt(curve.G.Y, curve.P)
		if y == nil {
			t.Fatalf("%s: ModSqrt failed to recover a root from the generator's own y", name)
		}
	}
}
