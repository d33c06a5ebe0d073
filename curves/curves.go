// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package curves provides a lookup-by-name registry of the standard SEC2
// prime-field curve domain parameters, grounded on the multi-curve table in
// yinheli-koblitz/kelliptic's initS160/initS192/initS224/initS256 family,
// generalized to the full set of curves this library names.
package curves

import (
	"math/big"

	"github.com/ecckit/go-ecc"
)

// Option configures Lookup.
type Option func(*options)

type options struct {
	useProjective bool
}

// UseProjectiveCoordinates selects the coordinate backend Lookup uses to
// build the curve. It defaults to true (Jacobian); pass false to get an
// EllipticCurve that performs scalar multiplication entirely in affine
// coordinates.
func UseProjectiveCoordinates(use bool) Option {
	return func(o *options) {
		o.useProjective = use
	}
}

// hexInt parses a hex string into a big.Int. It panics on malformed input,
// which only happens if this source file itself is wrong.
func hexInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curves: invalid hex literal in source: " + s)
	}
	return n
}

// params is the raw domain-parameter tuple for a named curve.
type params struct {
	p, a, b, gx, gy, n string
	h                  int
}

// registry holds the eight SEC2 curves named by the specification: the four
// Koblitz (…k1) curves and the four pseudo-random (…r1) curves spanning 192
// to 521 bits. Values are taken from SEC 2: Recommended Elliptic Curve
// Domain Parameters, version 2.0.
var registry = map[string]params{
	"secp192k1": {
		p:  "fffffffffffffffffffffffffffffffffffffffeffffee37",
		a:  "0",
		b:  "3",
		gx: "db4ff10ec057e9ae26b07d0280b7f4341da5d1b1eae06c7d",
		gy: "9b2f2f6d9c5628a7844163d015be86344082aa88d95e2f9d",
		n:  "fffffffffffffffffffffffe26f2fc170f69466a74defd8d",
		h:  1,
	},
	"secp192r1": {
		p:  "fffffffffffffffffffffffffffffffeffffffffffffffff",
		a:  "fffffffffffffffffffffffffffffffefffffffffffffffc",
		b:  "64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1",
		gx: "188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012",
		gy: "7192b95ffc8da78631011ed6b24cdd573f977a11e794811",
		n:  "ffffffffffffffffffffffff99def836146bc9b1b4d22831",
		h:  1,
	},
	"secp224k1": {
		p:  "fffffffffffffffffffffffffffffffffffffffffffffffeffffe56d",
		a:  "0",
		b:  "5",
		gx: "a1455b334df099df30fc28a169a467e9e47075a90f7e650eb6b7a45c",
		gy: "7e089fed7fba344282cafbd6f7e319f7c0b0bd59e2ca4bdb556d61a5",
		n:  "10000000000000000000000000001dce8d2ec6184caf0a971769fb1f7",
		h:  1,
	},
	"secp224r1": {
		p:  "ffffffffffffffffffffffffffffffff000000000000000000000001",
		a:  "fffffffffffffffffffffffffffffffefffffffffffffffffffffffe",
		b:  "b4050a850c04b3abf54132565044b0b7d7bfd8ba270b39432355ffb4",
		gx: "b70e0cbd6bb4bf7f321390b94a03c1d356c21122343280d6115c1d21",
		gy: "bd376388b5f723fb4c22dfe6cd4375a05a07476444d5819985007e34",
		n:  "ffffffffffffffffffffffffffff16a2e0b8f03e13dd29455c5c2a3d",
		h:  1,
	},
	"secp256k1": {
		p:  "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f",
		a:  "0",
		b:  "7",
		gx: "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		gy: "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		n:  "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		h:  1,
	},
	"secp256r1": {
		p:  "ffffffff00000001000000000000000000000000ffffffffffffffffffffffff",
		a:  "ffffffff00000001000000000000000000000000fffffffffffffffffffffffc",
		b:  "5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b",
		gx: "6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
		gy: "4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5",
		n:  "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551",
		h:  1,
	},
	"secp384r1": {
		p:  "fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000ffffffff",
		a:  "fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000fffffffc",
		b:  "b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef",
		gx: "aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7",
		gy: "3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f",
		n:  "ffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf581a0db248b0a77aecec196accc52973",
		h:  1,
	},
	"secp521r1": {
		p:  "1ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		a:  "1fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffc",
		b:  "51953eb9618e1c9a1f929a21a0b68540eea2da725b99b315f3b8b489918ef109e156193951ec7e937b1652c0bd3bb1bf073573df883d2c34f1ef451fd46b503f00",
		gx: "c6858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66",
		gy: "11839296a789a3bc0045c8a5fb42c7d1bd998f54449579b446817afbd17273e662c97ee72995ef42640c550b9013fad0761353c7086a272c24088be94769fd16650",
		n:  "1fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffa51868783bf2f966b7fcc0148f709a5d03bb5c9b8899c47aebb6fb71e91386409",
		h:  1,
	},
}

// Lookup returns the EllipticCurve for the named SEC2 curve. Recognized
// names are secp192k1, secp192r1, secp224k1, secp224r1, secp256k1,
// secp256r1, secp384r1, and secp521r1. Unknown names fail with
// ErrUnknownCurve.
func Lookup(name string, opts ...Option) (*ecc.EllipticCurve, error) {
	cfg := options{useProjective: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	p, ok := registry[name]
	if !ok {
		return nil, ecc.ErrUnknownCurve
	}

	backend := ecc.BackendAffine
	if cfg.useProjective {
		backend = ecc.BackendJacobian
	}

	g := ecc.NewPoint(hexInt(p.gx), hexInt(p.gy))
	curve := ecc.NewEllipticCurve(name, hexInt(p.p), hexInt(p.a), hexInt(p.b), g, hexInt(p.n), p.h, backend)
	return curve, nil
}

// Names returns the sorted list of curve names Lookup recognizes. It is
// provided for iteration in tests and in callers that want to enumerate the
// supported curves.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	// Simple insertion sort: the registry is small and fixed in size, so
	// pulling in sort for eight elements isn't worth it.
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}
