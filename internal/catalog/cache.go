package catalog

import (
	"container/list"
	"sync"

	"github.com/aevon-lab/extremes/internal/core/storage"
)

// lruCache is a thread-safe LRU cache of series descriptions keyed by unique ID.
type lruCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List
}

type cacheEntry struct {
	key  string
	desc storage.SeriesDescription
}

func newLRUCache(capacity int) *lruCache {
	if capacity < 1 {
		capacity = 1
	}
	return &lruCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *lruCache) get(key string) (storage.SeriesDescription, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return storage.SeriesDescription{}, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).desc, true
}

// put adds or refreshes an entry, evicting the least recently used when full.
func (c *lruCache) put(desc storage.SeriesDescription) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := desc.UniqueID
	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).desc = desc
		return
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			delete(c.entries, oldest.Value.(*cacheEntry).key)
			c.order.Remove(oldest)
		}
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, desc: desc})
}

func (c *lruCache) invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		delete(c.entries, key)
		c.order.Remove(elem)
	}
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
