package catalog

import (
	"sync"

	"metroart/internal/artwork"
)

// searchCache maps one kind of search key (department name, nationality, or
// raw artist query) to the ordered object id list the remote returned for it.
// A present key means "this exact search already ran this session"; entries
// live for the whole process, with no TTL and no eviction.
//
// The browser itself is single-threaded, but the cache keeps the same mutex
// discipline as the rest of the storage layer so callers can grow concurrent
// without revisiting it.
type searchCache struct {
	mu  sync.RWMutex
	ids map[string][]int
}

func newSearchCache() *searchCache {
	return &searchCache{ids: make(map[string][]int)}
}

// Has reports whether the key has already been searched this session.
func (c *searchCache) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.ids[key]
	return ok
}

// Get returns a copy of the cached id list for key.
func (c *searchCache) Get(key string) ([]int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids, ok := c.ids[key]
	if !ok {
		return nil, false
	}
	out := make([]int, len(ids))
	copy(out, ids)
	return out, true
}

// Put stores the id list for a key. The first search for a key wins for the
// session: a second Put for the same key is a no-op and returns false.
func (c *searchCache) Put(key string, ids []int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.ids[key]; ok {
		return false
	}
	stored := make([]int, len(ids))
	copy(stored, ids)
	c.ids[key] = stored
	return true
}

// replace overwrites the id list for an existing key. Only the facade's
// client-side filters use this, to drop rejected ids from the list in place.
func (c *searchCache) replace(key string, ids []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stored := make([]int, len(ids))
	copy(stored, ids)
	c.ids[key] = stored
}

// recordStore is the single deduplicated collection of normalized artworks,
// keyed by object id. Insertion is idempotent; the first record stored for an
// id wins, which guards against duplicate work when the same artwork shows up
// under two different search keys.
type recordStore struct {
	mu      sync.RWMutex
	records map[int]artwork.Artwork
	order   []int
}

func newRecordStore() *recordStore {
	return &recordStore{records: make(map[int]artwork.Artwork)}
}

// PutIfAbsent stores the record unless one with the same id already exists.
// Returns true when the record was inserted.
func (s *recordStore) PutIfAbsent(a artwork.Artwork) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[a.ID]; ok {
		return false
	}
	s.records[a.ID] = a
	s.order = append(s.order, a.ID)
	return true
}

// Get returns the record for id, if any.
func (s *recordStore) Get(id int) (artwork.Artwork, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.records[id]
	return a, ok
}

// All returns every stored record in insertion order.
func (s *recordStore) All() []artwork.Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]artwork.Artwork, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

// Len returns the number of stored records.
func (s *recordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
