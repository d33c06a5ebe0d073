// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecc implements generic prime-field short-Weierstrass elliptic curve
arithmetic in pure Go.

Unlike a curve-specific package, ecc does not hard code a single field prime
or a single set of domain parameters. An EllipticCurve value is built from
(p, a, b, G, n, h) taken from the curves sub-package's named registry, or
supplied directly by the caller, and the same add/double/multiply/
is-on-curve operations work for any of them.

An overview of the features provided by this package:

  - Arbitrary-precision field and scalar arithmetic via math/big
  - Affine point values, including the point at infinity
  - Point addition, doubling, and scalar multiplication
  - Two interchangeable coordinate backends: affine and Jacobian projective
  - A bounded LRU cache memoizing the arithmetic operations and the modular
    inverse helper they depend on
  - ECDSA signature generation and verification
  - ECDH shared-secret derivation

Three sub-packages build on top of this one:

  - ecc/curves, the named curve parameter registry (secp192k1 .. secp521r1)
  - ecc/koblitz, deterministic message-to-point encoding and its inverse
  - ecc/masseyomura, the three-pass Massey-Omura commutative encryption
    protocol

This package does not guarantee side-channel resistance. It is intended for
educational and prototyping use, not for protecting high-value secrets
against an adversary able to observe timing or memory access patterns.
*/
package ecc
