// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package koblitz implements deterministic, reversible encoding of byte
// strings into points on a curve and back, following the scheme described
// in Koblitz's 1987 paper on elliptic curve cryptosystems. The root-finding
// step is grounded on the multi-curve arithmetic style of
// yinheli-koblitz/kelliptic, in particular its Tonelli-Shanks Sqrt helper,
// here delegated to math/big.Int.ModSqrt, which implements the same
// algorithm. No example in the corpus implements the message-to-point
// embedding itself; that construction (and the witness-j byte recording the
// retry count) follows the paper directly.
package koblitz

import (
	"math/big"

	"github.com/ecckit/go-ecc"
)

// DefaultAlphabetSize is the alphabet size A used when encoding byte
// strings: every byte is a value in [0, 256).
const DefaultAlphabetSize = 256

// Encoded is a single encoded chunk: the point it was embedded into and the
// witness j needed to recover the original bytes.
type Encoded struct {
	Point ecc.Point
	J     int
}

// sqrtModP returns a square root of r modulo p if one exists, choosing the
// smaller of the two roots {y, p-y} so that encode/decode forms a bijection
// on its domain, as the specification requires. It reports false if r is
// not a quadratic residue mod p.
func sqrtModP(p, r *big.Int) (*big.Int, bool) {
	y := new(big.Int).ModSqrt(r, p)
	if y == nil {
		return nil, false
	}
	other := new(big.Int).Sub(p, y)
	if other.Cmp(y) < 0 {
		y = other
	}
	return y, true
}

// rhs evaluates x³ + ax + b mod p for the given curve.
func rhs(curve *ecc.EllipticCurve, x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)
	ax := new(big.Int).Mul(curve.A, x)
	x3.Add(x3, ax)
	x3.Add(x3, curve.B)
	x3.Mod(x3, curve.P)
	return x3
}

// maxChunkBytes returns ⌊log_A p⌋ - 1, the largest chunk size in bytes that
// is guaranteed to leave room for the "* A + j" embedding step without
// overrunning p.
func maxChunkBytes(p *big.Int, alphabetSize int) int {
	a := big.NewInt(int64(alphabetSize))
	val := big.NewInt(1)
	l := 0
	for {
		next := new(big.Int).Mul(val, a)
		if next.Cmp(p) > 0 {
			break
		}
		val = next
		l++
	}
	return l - 1
}

// Encode embeds message m into a single point on curve, returning the point
// and the witness j needed to decode it. It fails with an EncodingError if
// curve's cofactor is not 1, or if no valid embedding is found for any
// witness j in [0, alphabetSize].
func Encode(curve *ecc.EllipticCurve, m []byte, alphabetSize int) (ecc.Point, int, error) {
	if curve.H != 1 {
		return ecc.Point{}, 0, ecc.ErrEncoding
	}

	bigM := new(big.Int).SetBytes(m)
	a := big.NewInt(int64(alphabetSize))

	base := new(big.Int).Mul(bigM, a)

	for j := 0; j <= alphabetSize; j++ {
		x := new(big.Int).Add(base, big.NewInt(int64(j)))
		if x.Cmp(curve.P) >= 0 {
			return ecc.Point{}, 0, ecc.ErrEncoding
		}

		y, ok := sqrtModP(curve.P, rhs(curve, x))
		if !ok {
			continue
		}
		return ecc.NewPoint(x, y), j, nil
	}

	return ecc.Point{}, 0, ecc.ErrEncoding
}

// Decode recovers the original message bytes from a point/witness pair
// produced by Encode.
func Decode(curve *ecc.EllipticCurve, p ecc.Point, j int, alphabetSize int) ([]byte, error) {
	if p.IsInfinity() {
		return nil, ecc.ErrDecoding
	}

	a := big.NewInt(int64(alphabetSize))
	numerator := new(big.Int).Sub(p.X, big.NewInt(int64(j)))
	if numerator.Sign() < 0 {
		return nil, ecc.ErrDecoding
	}

	m := new(big.Int)
	rem := new(big.Int)
	m.DivMod(numerator, a, rem)
	if rem.Sign() != 0 {
		return nil, ecc.ErrDecoding
	}

	if m.Sign() == 0 {
		return []byte{}, nil
	}
	return m.Bytes(), nil
}

// EncodeChunked splits m into fixed-size chunks that each fit under the
// curve's byte budget and encodes each chunk independently, returning the
// resulting (point, j) pairs in order.
func EncodeChunked(curve *ecc.EllipticCurve, m []byte, alphabetSize int) ([]Encoded, error) {
	chunkSize := maxChunkBytes(curve.P, alphabetSize)
	if chunkSize <= 0 {
		return nil, ecc.ErrEncoding
	}

	var out []Encoded
	for i := 0; i < len(m); i += chunkSize {
		end := i + chunkSize
		if end > len(m) {
			end = len(m)
		}
		point, j, err := Encode(curve, m[i:end], alphabetSize)
		if err != nil {
			return nil, err
		}
		out = append(out, Encoded{Point: point, J: j})
	}
	return out, nil
}

// DecodeChunked decodes a sequence of (point, j) pairs produced by
// EncodeChunked and concatenates the results in order.
//
// EncodeChunked cuts every chunk but the last to exactly
// maxChunkBytes(curve.P, alphabetSize) bytes. A big-endian integer can't tell
// a genuine leading zero byte from the absence of one, so every non-final
// chunk's decoded bytes are left-padded back out to that width before
// concatenation.
func DecodeChunked(curve *ecc.EllipticCurve, chunks []Encoded, alphabetSize int) ([]byte, error) {
	chunkSize := maxChunkBytes(curve.P, alphabetSize)

	var out []byte
	for i, c := range chunks {
		b, err := Decode(curve, c.Point, c.J, alphabetSize)
		if err != nil {
			return nil, err
		}
		if i != len(chunks)-1 && len(b) < chunkSize {
			padded := make([]byte, chunkSize)
			copy(padded[chunkSize-len(b):], b)
			b = padded
		}
		out = append(out, b...)
	}
	return out, nil
}
