// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Signature is an ECDSA signature, a pair (r, s) of integers in [1, N-1].
type Signature struct {
	R *big.Int
	S *big.Int
}

// randScalar draws a uniform random scalar in [1, n-1] from rnd, matching
// the rejection-sampling approach crypto/ecdsa itself uses for nonce and key
// generation: draw n.BitLen() random bits, reject out-of-range draws, and
// retry.
func randScalar(rnd io.Reader, n *big.Int) (*big.Int, error) {
	bitSize := n.BitLen()
	byteSize := (bitSize + 7) / 8
	buf := make([]byte, byteSize)

	for {
		if _, err := io.ReadFull(rnd, buf); err != nil {
			return nil, err
		}
		// Mask off any excess bits in the top byte so the candidate
		// isn't biased toward needing extra rejections.
		excess := byteSize*8 - bitSize
		if excess > 0 {
			buf[0] &= 0xff >> uint(excess)
		}
		k := new(big.Int).SetBytes(buf)
		if k.Sign() > 0 && k.Cmp(n) < 0 {
			return k, nil
		}
	}
}

// Sign generates an ECDSA signature for the integer message hash h using
// priv, drawing the nonce from rnd (SignHash passes crypto/rand.Reader).
// Hashing the original message into h is the caller's responsibility.
func Sign(rnd io.Reader, priv *PrivateKey, h *big.Int) (*Signature, error) {
	curve := priv.Curve
	n := curve.N

	for {
		k, err := randScalar(rnd, n)
		if err != nil {
			return nil, err
		}

		r := curve.MultiplyPoint(k, curve.G)
		if r.IsInfinity() {
			continue
		}
		rMod := new(big.Int).Mod(r.X, n)
		if rMod.Sign() == 0 {
			continue
		}

		kInv, err := mmi(k, n)
		if err != nil {
			continue
		}

		s := new(big.Int).Mul(rMod, priv.D)
		s.Add(s, h)
		s.Mul(s, kInv)
		s.Mod(s, n)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{R: rMod, S: s}, nil
	}
}

// SignHash is a convenience wrapper around Sign that draws its nonce from
// crypto/rand.Reader, the standard cryptographically secure source.
func SignHash(priv *PrivateKey, h *big.Int) (*Signature, error) {
	return Sign(rand.Reader, priv, h)
}

// Sign signs the integer message hash h with this key, drawing its nonce
// from crypto/rand.Reader. It mirrors the shape of crypto.Signer.Sign,
// adapted to this package's integer-hash convention in place of a byte
// digest.
func (p *PrivateKey) Sign(h *big.Int) (*Signature, error) {
	return SignHash(p, h)
}

// Verify reports whether (r, s) is a valid ECDSA signature of the integer
// message hash h under pub. Invalid signatures and out-of-range components
// produce false, never an error: per the specification, the verifier never
// raises for an algebraically invalid signature.
func Verify(pub *PublicKey, h, r, s *big.Int) bool {
	curve := pub.Curve
	n := curve.N

	if r.Sign() <= 0 || r.Cmp(n) >= 0 {
		return false
	}
	if s.Sign() <= 0 || s.Cmp(n) >= 0 {
		return false
	}

	w, err := mmi(s, n)
	if err != nil {
		return false
	}

	u1 := new(big.Int).Mul(h, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, n)

	p1 := curve.MultiplyPoint(u1, curve.G)
	p2 := curve.MultiplyPoint(u2, pub.Q)
	x := curve.AddPoints(p1, p2)
	if x.IsInfinity() {
		return false
	}

	xMod := new(big.Int).Mod(x.X, n)
	return xMod.Cmp(r) == 0
}
