// seehuhn.de/go/zhconv - a library for Chinese/Japanese script conversion
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package plan

import (
	"sync"

	"seehuhn.de/go/zhconv/dict"
	"seehuhn.de/go/zhconv/union"
)

// UnionCache maps slot IDs to their precomputed starter union, shared
// across every plan that uses a given slot. It is built on first use;
// a duplicate build race (two goroutines computing the same slot's
// union concurrently) is allowed, but only one result is ever stored.
//
// Unlike an LRU object cache that evicts on capacity, a UnionCache
// never evicts; entries live exactly as long as the Cache that owns
// them.
type UnionCache struct {
	mu   sync.Mutex
	byID map[SlotID]*union.Union
}

func newUnionCache() *UnionCache {
	return &UnionCache{byID: make(map[SlotID]*union.Union)}
}

func (c *UnionCache) get(id SlotID, set *dict.Set) *union.Union {
	c.mu.Lock()
	if u, ok := c.byID[id]; ok {
		c.mu.Unlock()
		return u
	}
	c.mu.Unlock()

	// Build outside the lock: a concurrent duplicate build is allowed.
	u := union.Build(id.Dicts(set))

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.byID[id]; ok {
		return existing
	}
	c.byID[id] = u
	return u
}

// planKey identifies one (direction, punctuation) pair in Cache.plans.
type planKey struct {
	direction string
	punct     bool
}

// Cache maps (direction, punctuation) to a Plan, and slot IDs to a
// shared UnionCache. Cache
// is safe for concurrent use; Get is lock-free for readers that hit
// (a sync.Map-backed fast path) and synchronizes only on a miss.
type Cache struct {
	set    *dict.Set
	plans  sync.Map // planKey -> *Plan
	unions *UnionCache
}

// NewCache returns a fresh, empty Cache bound to set. Binding is
// permanent: a Cache never outlives the Set it was built for: the
// provider facade (root package) publishes a new Cache whenever the
// active Set is replaced.
func NewCache(set *dict.Set) *Cache {
	return &Cache{set: set, unions: newUnionCache()}
}

// Get returns the Plan for (directionName, punctuation), building and
// storing it on first request for that pair.
func (c *Cache) Get(directionName string, punctuation bool) (*Plan, error) {
	key := planKey{direction: directionName, punct: punctuation}
	if v, ok := c.plans.Load(key); ok {
		return v.(*Plan), nil
	}

	p, err := Build(directionName, punctuation, c.set, c.unions)
	if err != nil {
		return nil, err
	}

	actual, _ := c.plans.LoadOrStore(key, p)
	return actual.(*Plan), nil
}

// Clear drops every cached plan and starter union. The provider
// facade never calls it in the ordinary swap path (which publishes a
// brand new Cache instead), but a caller wanting to force a full
// in-place rebuild against the same Set may call it directly.
func (c *Cache) Clear() {
	c.plans.Range(func(k, _ any) bool {
		c.plans.Delete(k)
		return true
	})
	c.unions.mu.Lock()
	c.unions.byID = make(map[SlotID]*union.Union)
	c.unions.mu.Unlock()
}
