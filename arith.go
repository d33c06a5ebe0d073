// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import "math/big"

// gcd returns the greatest common divisor of m and n as a non-negative
// integer.  gcd(0, 0) is defined to be 0.
func gcd(m, n *big.Int) *big.Int {
	result := new(big.Int).GCD(nil, nil, new(big.Int).Abs(m), new(big.Int).Abs(n))
	return result
}

// egcd runs the extended Euclidean algorithm on m and n and returns
// (g, x, y) such that g = gcd(|m|, |n|) and m*x + n*y = g.  It handles zero
// inputs without dividing by zero, matching math/big.Int.GCD's own handling
// of those cases.
func egcd(m, n *big.Int) (g, x, y *big.Int) {
	g, x, y = new(big.Int), new(big.Int), new(big.Int)
	g.GCD(x, y, m, n)
	return g, x, y
}

// mmi computes the modular multiplicative inverse of a modulo m, returned
// in the range [0, m).  It fails with ErrNoModularInverse when
// gcd(a, m) != 1.
func mmi(a, m *big.Int) (*big.Int, error) {
	if c, ok := globalCache.getInverse(m, a); ok {
		return c, nil
	}

	g, x, _ := egcd(a, m)
	if g.Cmp(one) != 0 {
		return nil, makeError(ErrNoModularInverse, "mmi: gcd(a, m) != 1, no inverse exists")
	}

	result := new(big.Int).Mod(x, m)
	if result.Sign() < 0 {
		result.Add(result, m)
	}

	globalCache.putInverse(m, a, result)
	return result, nil
}

// ModInverse computes the modular multiplicative inverse of a modulo m, in
// the range [0, m), for use by the higher-level constructs built on top of
// this package (Massey-Omura exponent pairs). It is the
// exported form of the same memoized mmi the curve's own arithmetic uses.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	return mmi(a, m)
}
