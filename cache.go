// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"math/big"
	"os"
	"strconv"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheCapacity is the LRU capacity used when LRU_CACHE_MAXSIZE is not
// set in the environment.
const DefaultCacheCapacity = 1024

// opCache is the process-wide bounded LRU memoizing AddPoints, DoublePoint,
// MultiplyPoint, and mmi. Capacity is read once, from LRU_CACHE_MAXSIZE, the
// first time any cached operation runs; it cannot be changed afterward. A
// capacity of 0 disables caching entirely: every get is a miss and every put
// is a no-op.
type opCache struct {
	initOnce sync.Once
	capacity int

	points   *lru.Cache[string, Point]
	inverses *lru.Cache[string, *big.Int]
}

// globalCache is the single shared cache instance used by every
// EllipticCurve value in the process, matching the specification's
// "process-wide" cache requirement.
var globalCache = &opCache{}

func (c *opCache) init() {
	c.initOnce.Do(func() {
		c.capacity = lookupCacheCapacity()
		if c.capacity <= 0 {
			return
		}
		// The constructors only fail when capacity <= 0, which is
		// already handled above.
		c.points, _ = lru.New[string, Point](c.capacity)
		c.inverses, _ = lru.New[string, *big.Int](c.capacity)
	})
}

// lookupCacheCapacity parses LRU_CACHE_MAXSIZE from the environment,
// defaulting to DefaultCacheCapacity when it is unset, empty, or not a
// valid non-negative integer.
func lookupCacheCapacity() int {
	raw, ok := os.LookupEnv("LRU_CACHE_MAXSIZE")
	if !ok {
		return DefaultCacheCapacity
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return DefaultCacheCapacity
	}
	return n
}

func (c *opCache) getPoint(key string) (Point, bool) {
	c.init()
	if c.points == nil {
		return Point{}, false
	}
	return c.points.Get(key)
}

func (c *opCache) putPoint(key string, p Point) {
	c.init()
	if c.points == nil {
		return
	}
	c.points.Add(key, p)
}

func (c *opCache) getInverse(m, a *big.Int) (*big.Int, bool) {
	c.init()
	if c.inverses == nil {
		return nil, false
	}
	return c.inverses.Get(inverseKey(m, a))
}

func (c *opCache) putInverse(m, a, result *big.Int) {
	c.init()
	if c.inverses == nil {
		return
	}
	c.inverses.Add(inverseKey(m, a), result)
}

func inverseKey(m, a *big.Int) string {
	var b strings.Builder
	b.WriteString("mmi:")
	b.WriteString(m.Text(16))
	b.WriteByte(':')
	b.WriteString(a.Text(16))
	return b.String()
}

// curveIdentity returns a short string identifying this curve's domain
// parameters for cache-key purposes. Two EllipticCurve values with the same
// Name, P, A, and B share cache entries; curves that differ in Name get
// separate entries even when their parameters match.
func (c *EllipticCurve) curveIdentity() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte(':')
	b.WriteString(c.P.Text(16))
	b.WriteByte(':')
	b.WriteString(c.A.Text(16))
	b.WriteByte(':')
	b.WriteString(c.B.Text(16))
	return b.String()
}

func appendPoint(b *strings.Builder, p Point) {
	if p.IsInfinity() {
		b.WriteString("O")
		return
	}
	b.WriteString(p.X.Text(16))
	b.WriteByte(',')
	b.WriteString(p.Y.Text(16))
}

// cacheKeyPoints builds the cache key for a binary point operation (add,
// double) on this curve.
func (c *EllipticCurve) cacheKeyPoints(op string, p, q Point) string {
	var b strings.Builder
	b.WriteString(c.curveIdentity())
	b.WriteByte(':')
	b.WriteString(op)
	b.WriteByte(':')
	appendPoint(&b, p)
	b.WriteByte(';')
	appendPoint(&b, q)
	return b.String()
}

// cacheKeyScalarPoint builds the cache key for MultiplyPoint.
func (c *EllipticCurve) cacheKeyScalarPoint(op string, k *big.Int, p Point) string {
	var b strings.Builder
	b.WriteString(c.curveIdentity())
	b.WriteByte(':')
	b.WriteString(op)
	b.WriteByte(':')
	b.WriteString(k.Text(16))
	b.WriteByte(':')
	appendPoint(&b, p)
	return b.String()
}
