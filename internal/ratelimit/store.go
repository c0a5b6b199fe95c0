// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit keeps one token-bucket limiter per client key and
// forgets keys that stayed idle for too long.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Store is a keyed cache of [rate.Limiter] values.
type Store struct {
	mu      sync.Mutex
	entries map[string]*storeEntry

	rps     rate.Limit
	burst   int
	idleTTL time.Duration

	now func() time.Time
}

type storeEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewStore creates a Store handing out limiters that allow rps requests per
// second with bursts of up to burst requests. Keys unused for idleTTL are
// dropped by Cleanup.
func NewStore(rps float64, burst int, idleTTL time.Duration) *Store {
	return &Store{
		entries: make(map[string]*storeEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

func (s *Store) RPS() float64 { return float64(s.rps) }
func (s *Store) Burst() int   { return s.burst }

// Get returns the limiter of key, creating it on first use.
func (s *Store) Get(key string) *rate.Limiter {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(s.rps, s.burst)
	s.entries[key] = &storeEntry{lim: lim, lastSeen: now}
	return lim
}

// Cleanup removes limiters idle for longer than the configured TTL and
// returns how many were removed.
func (s *Store) Cleanup() int {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, ent := range s.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(s.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
