// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

// ECDH wraps a private scalar for Diffie-Hellman key agreement. It derives
// Q = d*G lazily through the embedded PrivateKey and reduces shared-secret
// computation to a single scalar multiplication.
type ECDH struct {
	*PrivateKey
}

// NewECDH wraps priv for use in Diffie-Hellman shared-secret derivation.
func NewECDH(priv *PrivateKey) *ECDH {
	return &ECDH{PrivateKey: priv}
}

// ComputeSharedSecret returns d * otherQ, the shared point both parties
// arrive at when each combines their own private scalar with the other
// party's public point. The caller is responsible for deriving a symmetric
// key from the result, e.g. by hashing the x-coordinate; this package
// performs no KDF.
func (e *ECDH) ComputeSharedSecret(otherQ Point) Point {
	return e.Curve.MultiplyPoint(e.D, otherQ)
}
