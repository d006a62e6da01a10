// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package recommend

import (
	"context"
	"fmt"

	"github.com/tomtom215/tagmine/internal/itemset"
	"github.com/tomtom215/tagmine/internal/mining"
)

// Catalog finds entities whose tags match an itemset.
// Implementations must be safe for concurrent use.
type Catalog interface {
	// Match returns the entities matching set under mode, in a stable order.
	// An empty set matches nothing.
	Match(ctx context.Context, set itemset.Itemset, mode MatchMode) ([]Entity, error)
}

// MemoryCatalog is an immutable in-memory Catalog backed by an inverted
// index from item to entity positions.
type MemoryCatalog struct {
	entities []Entity
	byKey    map[string][]int
	postings map[string]mining.TIDList
}

// NewMemoryCatalog indexes entities. Several entities may share an identity
// key, such as a remake with its original's title; they are all kept and
// are excluded together when one of them is watched.
func NewMemoryCatalog(entities []Entity) (*MemoryCatalog, error) {
	c := &MemoryCatalog{
		entities: make([]Entity, len(entities)),
		byKey:    make(map[string][]int, len(entities)),
		postings: make(map[string]mining.TIDList),
	}
	copy(c.entities, entities)

	for i, e := range c.entities {
		key := e.IdentityKey()
		c.byKey[key] = append(c.byKey[key], i)
		for j := 0; j < e.Tags.Len(); j++ {
			it := e.Tags.At(j)
			c.postings[it] = append(c.postings[it], i)
		}
	}
	return c, nil
}

// Len returns the number of entities.
func (c *MemoryCatalog) Len() int {
	return len(c.entities)
}

// Entities returns a copy of every entity in insertion order.
func (c *MemoryCatalog) Entities() []Entity {
	out := make([]Entity, len(c.entities))
	copy(out, c.entities)
	return out
}

// Get looks up an entity by identity key. The key is normalized first.
// When several entities share the key, the first inserted is returned.
func (c *MemoryCatalog) Get(key string) (Entity, bool) {
	all := c.GetAll(key)
	if len(all) == 0 {
		return Entity{}, false
	}
	return all[0], true
}

// GetAll returns every entity with the identity key, in insertion order.
func (c *MemoryCatalog) GetAll(key string) []Entity {
	positions := c.byKey[NormalizeKey(key)]
	out := make([]Entity, len(positions))
	for i, pos := range positions {
		out[i] = c.entities[pos]
	}
	return out
}

// ResolveWatched fills in watched entries that carry no tags from the
// catalog. A watched title shared by several entities takes the first
// entity's fields and the union of all their tags. Entries with tags, and
// entries the catalog does not know, are returned unchanged.
func (c *MemoryCatalog) ResolveWatched(watched []Entity) []Entity {
	out := make([]Entity, len(watched))
	for i, w := range watched {
		out[i] = w
		if !w.Tags.IsEmpty() {
			continue
		}
		matches := c.GetAll(w.IdentityKey())
		if len(matches) == 0 {
			continue
		}
		out[i] = matches[0]
		for _, m := range matches[1:] {
			out[i].Tags = out[i].Tags.Union(m.Tags)
		}
	}
	return out
}

// Match implements Catalog. Results are in insertion order.
func (c *MemoryCatalog) Match(ctx context.Context, set itemset.Itemset, mode MatchMode) ([]Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if mode != MatchSuperset && mode != MatchExact {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMatchingMode, int(mode))
	}
	if set.IsEmpty() {
		return nil, nil
	}

	cand := c.postings[set.At(0)]
	for i := 1; i < set.Len() && len(cand) > 0; i++ {
		cand = mining.Intersect(cand, c.postings[set.At(i)])
	}

	var out []Entity
	for _, pos := range cand {
		e := c.entities[pos]
		if mode == MatchExact && e.Tags.Len() != set.Len() {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

var _ Catalog = (*MemoryCatalog)(nil)
