// Package cache provides a small generic LRU cache with TTL, used by the
// HTTP layer to avoid recomputing derived summaries on every request.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Cache is the read/write surface handlers use.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, data T)
	Delete(key string)
}

// LRU is an LRU cache with TTL and size-based eviction.
type LRU[T any] struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	order   *list.List
}

type entry[T any] struct {
	key       string
	data      T
	expiresAt time.Time
}

func NewLRU[T any](maxSize int, ttl time.Duration) *LRU[T] {
	return &LRU[T]{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[string]*list.Element),
		order:   list.New(),
	}
}

func (c *LRU[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	elem, ok := c.items[key]
	if !ok {
		return zero, false
	}
	e := elem.Value.(*entry[T])
	if time.Now().After(e.expiresAt) {
		c.evict(elem)
		return zero, false
	}
	c.order.MoveToFront(elem)
	return e.data, true
}

func (c *LRU[T]) Set(key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := &entry[T]{key: key, data: data, expiresAt: time.Now().Add(c.ttl)}
	if elem, ok := c.items[key]; ok {
		elem.Value = e
		c.order.MoveToFront(elem)
		return
	}
	c.items[key] = c.order.PushFront(e)
	if c.order.Len() > c.maxSize {
		if oldest := c.order.Back(); oldest != nil {
			c.evict(oldest)
		}
	}
}

func (c *LRU[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.evict(elem)
	}
}

// Size returns the current number of cached entries.
func (c *LRU[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// CleanExpired drops every expired entry and reports how many went.
func (c *LRU[T]) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	cleaned := 0
	for elem := c.order.Back(); elem != nil; {
		prev := elem.Prev()
		if now.After(elem.Value.(*entry[T]).expiresAt) {
			c.evict(elem)
			cleaned++
		}
		elem = prev
	}
	return cleaned
}

func (c *LRU[T]) evict(elem *list.Element) {
	c.order.Remove(elem)
	delete(c.items, elem.Value.(*entry[T]).key)
}
