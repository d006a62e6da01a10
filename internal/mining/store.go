// Tagmine - Maximal Frequent Itemset Mining and Profile Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tagmine

package mining

import (
	"sync"
	"time"
)

// Store holds the most recently published mining result. Readers always see
// a complete result; a publish replaces it atomically.
type Store struct {
	mu          sync.RWMutex
	current     *Result
	version     int64
	publishedAt time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Publish makes r the current result and returns its version. Versions start
// at 1 and increase by one per publish.
func (s *Store) Publish(r *Result) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.version++
	s.current = r
	s.publishedAt = time.Now()
	return s.version
}

// Current returns the latest result and its version. The result is nil and
// the version 0 until the first publish.
func (s *Store) Current() (*Result, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.version
}

// PublishedAt returns when the current result was published.
func (s *Store) PublishedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.publishedAt
}
