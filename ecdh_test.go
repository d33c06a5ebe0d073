// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"math/big"
	"testing"
)

func TestECDHSharedSecretAgrees(t *testing.T) {
	curve := secp192k1(BackendAffine)

	alice := NewECDH(NewPrivateKey(curve, big.NewInt(7)))
	bob := NewECDH(NewPrivateKey(curve, big.NewInt(21)))

	secretA := alice.ComputeSharedSecret(bob.PubKey().Q)
	secretB := bob.ComputeSharedSecret(alice.PubKey().Q)

	if !secretA.Equal(secretB) {
		t.Errorf("shared secrets disagree: alice=%v bob=%v", secretA, secretB)
	}
	if secretA.IsInfinity() {
		t.Error("shared secret is the identity")
	}
}

func TestECDHSharedSecretMatchesScalarMultiplication(t *testing.T) {
	curve := secp192k1(BackendAffine)
	dA := big.NewInt(7)
	dB := big.NewInt(21)

	alice := NewECDH(NewPrivateKey(curve, dA))
	bobPub := curve.MultiplyPoint(dB, curve.G)

	got := alice.ComputeSharedSecret(bobPub)
	want := curve.MultiplyPoint(dA, curve.MultiplyPoint(dB, curve.G))
	if !got.Equal(want) {
		t.Errorf("shared secret = %v, want %v", got, want)
	}
}
