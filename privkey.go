// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"math/big"
	"sync"
)

// PrivateKey wraps a scalar d in [1, N-1] together with the curve it is
// defined over, and lazily derives and caches the corresponding public key
// Q = d*G on first use.
type PrivateKey struct {
	Curve *EllipticCurve
	D     *big.Int

	pubOnce sync.Once
	pub     *PublicKey
}

// PublicKey is a point Q on a curve, typically Q = d*G for some private
// scalar d.
type PublicKey struct {
	Curve *EllipticCurve
	Q     Point
}

// NewPrivateKey wraps the scalar d for use with curve. It does not validate
// that d lies in [1, N-1]; callers that need that assurance should check it
// themselves.
func NewPrivateKey(curve *EllipticCurve, d *big.Int) *PrivateKey {
	return &PrivateKey{Curve: curve, D: d}
}

// PubKey computes and caches the public key Q = d*G corresponding to this
// private key.
func (p *PrivateKey) PubKey() *PublicKey {
	p.pubOnce.Do(func() {
		q := p.Curve.MultiplyPoint(p.D, p.Curve.G)
		p.pub = &PublicKey{Curve: p.Curve, Q: q}
	})
	return p.pub
}

// NewPublicKey wraps a known point q for use with curve.
func NewPublicKey(curve *EllipticCurve, q Point) *PublicKey {
	return &PublicKey{Curve: curve, Q: q}
}
