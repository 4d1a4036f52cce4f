package cache

import (
	"fmt"
	"sync"

	"github.com/SystemBuilders/ringlist/internal/dll"
	"github.com/rs/zerolog"
)

var _ Cache = (*LRUCache)(nil)

// entry is a single element of the recency list.
type entry struct {
	dll.Node[*entry]
	key   string
	owner string
}

func newEntry(key, owner string) *entry {
	e := &entry{key: key, owner: owner}
	e.Init(e)
	return e
}

func (e *entry) String() string {
	return fmt.Sprintf("%s:%s", e.key, e.owner)
}

// LRUCache implements a cache. It uses a circular linked list as
// the primary data structure along with a hash-map for
// checking existance of an element in the cache.
//
// The list hangs off a sentinel header that is never removed:
// * The element right after the header is the MRU element.
// * The element right before the header is the LRU element.
// * Every insertion and every access moves the element to the
//   position right after the header.
// * When the cache is full, the element before the header is evicted.
//
// The hash map maintains the existance of the element in the cache
// and the list is to maintain the recency of the usage of the element.
type LRUCache struct {
	capacity int
	header   *entry
	m        map[string]*entry
	log      zerolog.Logger
	mu       sync.Mutex
}

// NewLRUCache creates a new LRUCache of provided size.
func NewLRUCache(capacity int, log zerolog.Logger) (*LRUCache, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &LRUCache{
		capacity: capacity,
		header:   newEntry("", ""),
		m:        make(map[string]*entry),
		log:      log,
	}, nil
}

// GetElement gets an element from the cache. It returns
// the owner associated with the element.
//
// Whenever an element is retrieved from the cache,
// it's bumped to the MRU position.
//
// Error is returned only if the element doesn't exist in the cache.
func (lru *LRUCache) GetElement(key string) (string, error) {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	e, ok := lru.m[key]
	if !ok {
		return "", ErrElementDoesntExist
	}
	lru.touch(e)
	return e.owner, nil
}

// PutElement inserts an element in the cache at the MRU position.
//
// If the cache is full, the LRU element is evicted first to
// make place for the new one.
func (lru *LRUCache) PutElement(key, owner string) error {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	if _, ok := lru.m[key]; ok {
		return ErrElementAlreadyExists
	}
	if len(lru.m) == lru.capacity {
		lru.evict()
	}

	e := newEntry(key, owner)
	e.Insert(&lru.header.Node)
	lru.m[key] = e
	lru.
		log.
		Debug().
		Str("key", key).
		Str("owner", owner).
		Msg("cached")
	return nil
}

// RemoveElement deletes an element from the cache.
func (lru *LRUCache) RemoveElement(key string) error {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	e, ok := lru.m[key]
	if !ok {
		return ErrElementDoesntExist
	}
	e.Remove()
	delete(lru.m, key)
	lru.
		log.
		Debug().
		Str("key", key).
		Msg("removed from cache")
	return nil
}

// Capacity returns the max capacity of the cache.
func (lru *LRUCache) Capacity() int {
	return lru.capacity
}

// Size returns the number of elements in the cache.
func (lru *LRUCache) Size() int {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	return len(lru.m)
}

// Full returns true if the cache is full, else returns false.
func (lru *LRUCache) Full() bool {
	return lru.Size() == lru.capacity
}

// Keys returns the keys in the cache from the most to the least
// recently used.
func (lru *LRUCache) Keys() []string {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	keys := make([]string, 0, len(lru.m))
	for e := range lru.header.All() {
		if e != lru.header {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// PrintCache logs the entire cache in decreasing order of recency of usage.
func (lru *LRUCache) PrintCache() {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	lru.
		log.
		Debug().
		Str("list", lru.header.ListString()).
		Int("size", len(lru.m)).
		Int("capacity", lru.capacity).
		Msg("cache")
}

// touch moves e to the MRU position.
func (lru *LRUCache) touch(e *entry) {
	e.Remove()
	e.Insert(&lru.header.Node)
}

// evict drops the LRU element, the one right before the header.
func (lru *LRUCache) evict() {
	it := lru.header.ReverseIterator()
	it.Next()
	tail, ok := it.Next()
	if !ok {
		return
	}
	tail.Remove()
	delete(lru.m, tail.key)
	lru.
		log.
		Debug().
		Str("key", tail.key).
		Msg("evicted")
}
