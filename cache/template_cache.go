package cache

import (
	"sync"
	"sync/atomic"
)

// TemplateCache memoizes generated statement text for a small, closed key
// space. Entries are never evicted.
//
// Reads load an immutable map through an atomic pointer and never lock. A miss
// builds the text under a mutex and publishes a copy of the map with the new
// entry, so concurrent first use of the same key builds it exactly once.
type TemplateCache[K comparable] struct {
	mu      sync.Mutex
	entries atomic.Pointer[map[K]string]
}

func NewTemplateCache[K comparable]() *TemplateCache[K] {
	c := &TemplateCache[K]{}
	empty := make(map[K]string)
	c.entries.Store(&empty)
	return c
}

// Get returns the cached text for key.
func (c *TemplateCache[K]) Get(key K) (string, bool) {
	s, ok := (*c.entries.Load())[key]
	return s, ok
}

// GetOrBuild returns the cached text for key, calling build on a miss. hit
// reports whether the text was already cached. A build error is returned as is
// and nothing is cached.
func (c *TemplateCache[K]) GetOrBuild(key K, build func(K) (string, error)) (s string, hit bool, err error) {
	// Fast path: lock free lookup
	if s, ok := c.Get(key); ok {
		return s, true, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring the lock
	current := *c.entries.Load()
	if s, ok := current[key]; ok {
		return s, true, nil
	}

	s, err = build(key)
	if err != nil {
		return "", false, err
	}

	next := make(map[K]string, len(current)+1)
	for k, v := range current {
		next[k] = v
	}
	next[key] = s
	c.entries.Store(&next)

	return s, false, nil
}

// Fill builds every key in one publish. Keys already present are kept.
func (c *TemplateCache[K]) Fill(keys []K, build func(K) (string, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := *c.entries.Load()
	next := make(map[K]string, len(current)+len(keys))
	for k, v := range current {
		next[k] = v
	}
	for _, k := range keys {
		if _, ok := next[k]; ok {
			continue
		}
		s, err := build(k)
		if err != nil {
			return err
		}
		next[k] = s
	}
	c.entries.Store(&next)
	return nil
}

func (c *TemplateCache[K]) Len() int {
	return len(*c.entries.Load())
}
