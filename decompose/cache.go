package decompose

import (
	"container/list"
	"errors"
)

// ErrInvalidCapacity indicates NewCache was called with a non-positive
// maxsize, mirroring lru_dict.rs's NonZeroUsize::new(maxsize) check.
var ErrInvalidCapacity = errors.New("decompose: cache capacity must be positive")

// entry is the value stored at each list.Element, carrying its own key so
// eviction can remove the matching index entry.
type entry struct {
	key   string
	value GateNet
}

// Cache is a fixed-capacity least-recently-used cache from a rounded SU(2)
// key to its previously computed GateNet, adapted from lru_dict.rs's
// LRUDict (there backed by the `lru` crate; here by container/list, the
// standard library's own recommended LRU building block since neither the
// teacher nor the rest of the retrieval pack ships an LRU implementation).
type Cache struct {
	maxsize int
	ll      *list.List
	index   map[string]*list.Element
}

// NewCache returns an empty Cache holding at most maxsize entries.
func NewCache(maxsize int) (*Cache, error) {
	if maxsize <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Cache{
		maxsize: maxsize,
		ll:      list.New(),
		index:   make(map[string]*list.Element, maxsize),
	}, nil
}

// Get returns the cached GateNet for key and marks it most-recently-used.
func (c *Cache) Get(key string) (GateNet, bool) {
	el, ok := c.index[key]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(el)

	return el.Value.(*entry).value, true
}

// Put inserts or updates key's entry, evicting the least-recently-used
// entry if the cache is at capacity.
func (c *Cache) Put(key string, value GateNet) {
	if el, ok := c.index[key]; ok {
		el.Value.(*entry).value = value
		c.ll.MoveToFront(el)

		return
	}

	el := c.ll.PushFront(&entry{key: key, value: value})
	c.index[key] = el

	if c.ll.Len() > c.maxsize {
		oldest := c.ll.Back()
		if oldest != nil {
			c.ll.Remove(oldest)
			delete(c.index, oldest.Value.(*entry).key)
		}
	}
}

// Len returns the number of entries currently cached.
func (c *Cache) Len() int { return c.ll.Len() }
