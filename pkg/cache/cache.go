package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type entry[V any] struct {
	key        string
	value      V
	expiration time.Time
}

// LRUCache is a size-bounded store whose entries also expire after ttl of inactivity.
type LRUCache[V any] struct {
	capacity int
	mu       sync.Mutex
	ll       *list.List
	cache    map[string]*list.Element
	ttl      time.Duration
	onEvict  func(key string, value V)
	retain   func(key string, value V) bool
}

func NewLRUCache[V any](capacity int, ttl time.Duration) *LRUCache[V] {
	return &LRUCache[V]{
		capacity: capacity,
		ll:       list.New(),
		cache:    make(map[string]*list.Element),
		ttl:      ttl,
	}
}

// OnEvict registers fn to be called for entries dropped by capacity or expiry.
// fn runs outside the cache lock. Explicit Delete does not trigger it.
func (c *LRUCache[V]) OnEvict(fn func(key string, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Retain registers fn to veto eviction. Entries fn keeps survive expiry and
// capacity pressure, so the cache may briefly hold more than its capacity.
// fn runs under the cache lock and must not call back into the cache.
func (c *LRUCache[V]) Retain(fn func(key string, value V) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.retain = fn
}

func (c *LRUCache[V]) retained(ent *entry[V]) bool {
	return c.retain != nil && c.retain(ent.key, ent.value)
}

func (c *LRUCache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.Lock()
	ele, ok := c.cache[key]
	if !ok {
		c.mu.Unlock()
		return zero, false
	}

	ent := ele.Value.(*entry[V])
	if time.Now().After(ent.expiration) && !c.retained(ent) {
		c.removeElement(ele)
		onEvict := c.onEvict
		c.mu.Unlock()
		c.notify(onEvict, []*entry[V]{ent})
		return zero, false
	}

	c.ll.MoveToFront(ele)
	ent.expiration = time.Now().Add(c.ttl)
	c.mu.Unlock()
	return ent.value, true
}

func (c *LRUCache[V]) Set(key string, value V) {
	c.mu.Lock()

	if ele, ok := c.cache[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry[V])
		ent.value = value
		ent.expiration = time.Now().Add(c.ttl)
		c.mu.Unlock()
		return
	}

	ent := &entry[V]{key: key, value: value, expiration: time.Now().Add(c.ttl)}
	ele := c.ll.PushFront(ent)
	c.cache[key] = ele

	var evicted []*entry[V]
	for c.ll.Len() > c.capacity {
		old := c.removeOldest(ele)
		if old == nil {
			break
		}
		evicted = append(evicted, old)
	}
	onEvict := c.onEvict
	c.mu.Unlock()

	c.notify(onEvict, evicted)
}

func (c *LRUCache[V]) Delete(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.cache[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.removeElement(ele)
	return ele.Value.(*entry[V]).value, true
}

// removeOldest drops the least recently used entry that is neither retained
// nor keep.
func (c *LRUCache[V]) removeOldest(keep *list.Element) *entry[V] {
	for ele := c.ll.Back(); ele != nil; ele = ele.Prev() {
		ent := ele.Value.(*entry[V])
		if ele == keep || c.retained(ent) {
			continue
		}
		c.removeElement(ele)
		return ent
	}
	return nil
}

func (c *LRUCache[V]) removeElement(e *list.Element) {
	c.ll.Remove(e)
	ent := e.Value.(*entry[V])
	delete(c.cache, ent.key)
}

func (c *LRUCache[V]) notify(fn func(string, V), evicted []*entry[V]) {
	if fn == nil {
		return
	}
	for _, ent := range evicted {
		fn(ent.key, ent.value)
	}
}

// Values returns the live entries, most recently used first.
func (c *LRUCache[V]) Values() []V {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	values := make([]V, 0, c.ll.Len())
	for e := c.ll.Front(); e != nil; e = e.Next() {
		ent := e.Value.(*entry[V])
		if now.After(ent.expiration) && !c.retained(ent) {
			continue
		}
		values = append(values, ent.value)
	}
	return values
}

func (c *LRUCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Start runs the janitor until ctx is done.
func (c *LRUCache[V]) Start(ctx context.Context) error {
	c.StartJanitor(ctx)
	return nil
}

func (c *LRUCache[V]) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (c *LRUCache[V]) cleanup() {
	c.mu.Lock()
	var evicted []*entry[V]
	now := time.Now()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		ent := e.Value.(*entry[V])
		if now.After(ent.expiration) && !c.retained(ent) {
			c.removeElement(e)
			evicted = append(evicted, ent)
		}
		e = prev
	}
	onEvict := c.onEvict
	c.mu.Unlock()

	c.notify(onEvict, evicted)
}
