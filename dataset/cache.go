// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of pair distances a DistanceCache keeps
// when the caller passes a non-positive size.
const DefaultCacheSize = 4096

// DistanceCache memoizes Euclidean pair distances behind a bounded LRU.
// Distances are symmetric, so (v,u) and (u,v) share one slot.
// It is safe for concurrent use.
type DistanceCache struct {
	ds    *Dataset
	cache *lru.Cache[Pair, float64]
}

// NewDistanceCache returns a cache over ds holding at most size entries.
func NewDistanceCache(ds *Dataset, size int) (*DistanceCache, error) {
	if ds == nil {
		return nil, fmt.Errorf("dataset: nil dataset for distance cache: %w", ErrInvalidArgument)
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[Pair, float64](size)
	if err != nil {
		return nil, fmt.Errorf("dataset: distance cache: %w", err)
	}

	return &DistanceCache{ds: ds, cache: c}, nil
}

// Distance returns the (possibly cached) Euclidean distance between v and u.
func (c *DistanceCache) Distance(v, u int) float64 {
	key := Pair{From: v, To: u}.Unordered()
	if d, ok := c.cache.Get(key); ok {
		return d
	}
	d := c.ds.Distance(v, u)
	c.cache.Add(key, d)

	return d
}

// Len reports how many distances are currently cached.
func (c *DistanceCache) Len() int { return c.cache.Len() }

// Dataset returns the dataset the cache reads from.
func (c *DistanceCache) Dataset() *Dataset { return c.ds }
