package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// StatementCache holds statement text for open ended keys, such as fetch
// statements built from caller supplied identifiers. It is bounded by an LRU.
type StatementCache struct {
	cache *lru.Cache[uint64, string]
	mu    sync.Mutex
}

func NewStatementCache(size int) (*StatementCache, error) {
	cache, err := lru.New[uint64, string](size)
	if err != nil {
		return nil, err
	}

	return &StatementCache{
		cache: cache,
	}, nil
}

func (s *StatementCache) Get(key uint64) (string, bool) {
	return s.cache.Get(key)
}

// GetOrBuild returns the statement for key, building and caching it on a miss.
func (s *StatementCache) GetOrBuild(key uint64, build func() string) (stmt string, hit bool) {
	// Fast path: the lru is safe for concurrent use on its own
	if stmt, ok := s.cache.Get(key); ok {
		return stmt, true
	}

	// Slow path: serialize builders so a key is built once
	s.mu.Lock()
	defer s.mu.Unlock()

	if stmt, ok := s.cache.Get(key); ok {
		return stmt, true
	}

	stmt = build()
	s.cache.Add(key, stmt)
	return stmt, false
}

func (s *StatementCache) Len() int {
	return s.cache.Len()
}

func (s *StatementCache) Purge() {
	s.cache.Purge()
}
