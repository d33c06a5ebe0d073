// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package masseyomura implements the three-pass Massey-Omura commutative
// encryption protocol over an elliptic curve group. Each party's private
// exponent commutes with the other's because scalar multiplication of a
// curve point is commutative: e_A * (e_B * M) == e_B * (e_A * M).
package masseyomura

import (
	"math/big"

	"github.com/ecckit/go-ecc"
)

// Party holds one participant's private exponent e and its inverse d = e⁻¹
// mod n, precomputed once since both decryption steps need it.
type Party struct {
	Curve *ecc.EllipticCurve
	E     *big.Int
	d     *big.Int
}

// NewParty wraps the private exponent e, in [1, n-1], for use with curve.
func NewParty(curve *ecc.EllipticCurve, e *big.Int) (*Party, error) {
	d, err := ecc.ModInverse(e, curve.N)
	if err != nil {
		return nil, err
	}
	return &Party{Curve: curve, E: e, d: d}, nil
}

// FirstEncryptionStep is the sender's first pass: C1 = e_A * M.
func (p *Party) FirstEncryptionStep(m ecc.Point) ecc.Point {
	return p.Curve.MultiplyPoint(p.E, m)
}

// SecondEncryptionStep is the receiver's second pass: C2 = e_B * C1.
func (p *Party) SecondEncryptionStep(c1 ecc.Point) ecc.Point {
	return p.Curve.MultiplyPoint(p.E, c1)
}

// PartialDecryptionStep removes this party's own encryption layer:
// d * C = e_other * M. The same method is called by both parties, each with
// their own Party instance, to strip their own layer in turn. The protocol
// does not enforce step ordering; calling it out of order produces wrong
// output but never panics.
func (p *Party) PartialDecryptionStep(c ecc.Point) ecc.Point {
	return p.Curve.MultiplyPoint(p.d, c)
}
