// Package cache implements the Frame Cache: a bounded-cost LRU mapping
// (file path, frame index) to an owned decoded RGB24 frame, with cost
// accounted in whole megabytes and at-most-once coalescing of concurrent
// misses for the same key.
package cache

import (
	"container/list"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Key identifies one cached frame.
type Key struct {
	Path  string
	Index int
}

func (k Key) fingerprint() string {
	return fmt.Sprintf("%s#%d", k.Path, k.Index)
}

type entry struct {
	key  Key
	data []byte
	cost int
}

// DefaultBudgetMB is the budget used when Cache is constructed with New.
const DefaultBudgetMB = 512

// Cache is a shared, lock-protected LRU keyed by (path, index). The zero
// value is not usable; construct with New.
type Cache struct {
	mu       sync.Mutex
	budgetMB int
	costMB   int
	ll       *list.List // front = most recently used
	items    map[Key]*list.Element
	flight   singleflight.Group
}

// New returns a Cache with the given cost budget in megabytes.
func New(budgetMB int) *Cache {
	return &Cache{
		budgetMB: budgetMB,
		ll:       list.New(),
		items:    make(map[Key]*list.Element),
	}
}

// Lookup returns the cached frame for key, promoting it to
// most-recently-used, and reports whether it was present.
func (c *Cache) Lookup(key Key) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*entry).data, true
}

// Insert adds data for key with the given cost (megabytes), evicting
// least-recently-used entries until the budget is respected. An entry whose
// cost alone exceeds the budget is not stored (any older entry for key is
// still removed). It returns the byte slice (the caller's data is taken
// as-is; do not mutate it afterward).
func (c *Cache) Insert(key Key, data []byte, costMB int) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.costMB -= el.Value.(*entry).cost
		c.ll.Remove(el)
		delete(c.items, key)
	}
	if costMB > c.budgetMB {
		return data
	}

	el := c.ll.PushFront(&entry{key: key, data: data, cost: costMB})
	c.items[key] = el
	c.costMB += costMB

	for c.costMB > c.budgetMB && c.ll.Len() > 0 {
		back := c.ll.Back()
		if back == el {
			break
		}
		c.evict(back)
	}
	return data
}

func (c *Cache) evict(el *list.Element) {
	ev := el.Value.(*entry)
	c.ll.Remove(el)
	delete(c.items, ev.key)
	c.costMB -= ev.cost
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.items = make(map[Key]*list.Element)
	c.costMB = 0
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// GetOrDecode returns the cached frame for key if present; otherwise it
// calls decode exactly once even if multiple goroutines race on the same
// key (singleflight coalescing), inserts the result at the given cost (see
// Insert), and returns it.
func (c *Cache) GetOrDecode(key Key, costMB int, decode func() ([]byte, error)) ([]byte, error) {
	if data, ok := c.Lookup(key); ok {
		return data, nil
	}

	v, err, _ := c.flight.Do(key.fingerprint(), func() (any, error) {
		// Re-check: another flight may have populated the cache while we
		// were waiting to be scheduled.
		if data, ok := c.Lookup(key); ok {
			return data, nil
		}
		data, err := decode()
		if err != nil {
			return nil, err
		}
		return c.Insert(key, data, costMB), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
