package cache

import (
	"context"
	"testing"
	"time"
)

type form struct {
	id string
}

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache[*form], t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[*form], t *testing.T) {
				c.Set("a", &form{id: "1"})
				if v, ok := c.Get("a"); !ok || v.id != "1" {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[*form], t *testing.T) {
				c.Set("a", &form{id: "1"})
				time.Sleep(time.Millisecond * 60)
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "get extends TTL",
			capacity: 2,
			ttl:      time.Millisecond * 80,
			actions: func(c *LRUCache[*form], t *testing.T) {
				c.Set("a", &form{id: "1"})
				time.Sleep(time.Millisecond * 50)
				if _, ok := c.Get("a"); !ok {
					t.Fatalf("expected key to be alive")
				}
				time.Sleep(time.Millisecond * 50)
				if _, ok := c.Get("a"); !ok {
					t.Errorf("expected access to extend ttl")
				}
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[*form], t *testing.T) {
				c.Set("a", &form{id: "1"})
				c.Set("b", &form{id: "2"})
				c.Set("c", &form{id: "3"})
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key 'a' to be evicted")
				}
				if v, ok := c.Get("b"); !ok || v.id != "2" {
					t.Errorf("expected b=2, got %v", v)
				}
				if v, ok := c.Get("c"); !ok || v.id != "3" {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "eviction callback",
			capacity: 1,
			ttl:      time.Second,
			actions: func(c *LRUCache[*form], t *testing.T) {
				var evicted []string
				c.OnEvict(func(key string, _ *form) { evicted = append(evicted, key) })

				c.Set("a", &form{id: "1"})
				c.Set("b", &form{id: "2"})
				c.Delete("b")

				if len(evicted) != 1 || evicted[0] != "a" {
					t.Errorf("expected only 'a' evicted, got %v", evicted)
				}
			},
		},
		{
			name:     "delete",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[*form], t *testing.T) {
				c.Set("a", &form{id: "1"})
				if v, ok := c.Delete("a"); !ok || v.id != "1" {
					t.Errorf("expected delete to return value")
				}
				if _, ok := c.Delete("a"); ok {
					t.Errorf("expected second delete to miss")
				}
				if c.Size() != 0 {
					t.Errorf("expected empty cache")
				}
			},
		},
		{
			name:     "janitor removes expired",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[*form], t *testing.T) {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				c.StartJanitor(ctx)

				var evicted int
				c.OnEvict(func(string, *form) { evicted++ })

				c.Set("a", &form{id: "1"})
				time.Sleep(time.Millisecond * 60)

				c.cleanup()

				if c.Size() != 0 {
					t.Errorf("expected janitor cleanup to remove expired key")
				}
				if evicted != 1 {
					t.Errorf("expected eviction callback for expired key, got %d", evicted)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLRUCache[*form](tt.capacity, tt.ttl)
			tt.actions(c, t)
		})
	}
}

func TestLRUCache_Values(t *testing.T) {
	c := NewLRUCache[*form](3, 50*time.Millisecond)
	c.Set("a", &form{id: "1"})
	time.Sleep(60 * time.Millisecond)
	c.Set("b", &form{id: "2"})
	c.Set("c", &form{id: "3"})

	values := c.Values()
	if len(values) != 2 {
		t.Fatalf("expected 2 live values, got %d", len(values))
	}
	if values[0].id != "3" || values[1].id != "2" {
		t.Errorf("expected most recent first, got %s, %s", values[0].id, values[1].id)
	}
}

func TestLRUCache_Retain(t *testing.T) {
	busy := map[string]bool{"a": true}
	var evicted []string

	c := NewLRUCache[*form](1, 50*time.Millisecond)
	c.Retain(func(key string, _ *form) bool { return busy[key] })
	c.OnEvict(func(key string, _ *form) { evicted = append(evicted, key) })

	c.Set("a", &form{id: "1"})
	c.Set("b", &form{id: "2"})

	if _, ok := c.Get("a"); !ok {
		t.Errorf("retained entry evicted by capacity")
	}
	if c.Size() != 2 {
		t.Errorf("expected cache to hold 2 entries over capacity, got %d", c.Size())
	}

	time.Sleep(60 * time.Millisecond)
	c.cleanup()
	if _, ok := c.Get("a"); !ok {
		t.Errorf("retained entry evicted by expiry")
	}
	if _, ok := c.Get("b"); ok {
		t.Errorf("expected b to expire")
	}

	busy["a"] = false
	c.Set("c", &form{id: "3"})
	if _, ok := c.Get("a"); ok {
		t.Errorf("expected a to be evicted once released")
	}
	if len(evicted) != 2 || evicted[0] != "b" || evicted[1] != "a" {
		t.Errorf("unexpected evictions: %v", evicted)
	}
}
