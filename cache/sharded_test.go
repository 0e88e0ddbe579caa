package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestShardedCacheGetSet(t *testing.T) {
	c := NewSharded[string, int](8, StringHasher)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) found a value")
	}
	c.Set("a", 1)
	c.Set("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %d, %v, want 2, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestShardedCacheGetOrCreate(t *testing.T) {
	c := NewSharded[string, string](8, StringHasher)
	calls := 0
	create := func() string {
		calls++
		return "value"
	}

	for range 3 {
		if got := c.GetOrCreate("k", create); got != "value" {
			t.Fatalf("GetOrCreate() = %q", got)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats() hits=%d misses=%d, want 2, 1", s.Hits, s.Misses)
	}
}

func TestShardedCacheEviction(t *testing.T) {
	// Identity hasher with multiples of ShardCount keeps every key in shard 0.
	c := NewSharded[uint64, int](2, func(u uint64) uint64 { return u })
	c.Set(0, 0)
	c.Set(ShardCount, 1)
	c.Get(0) // 0 is now most recent
	c.Set(2*ShardCount, 2)

	if _, ok := c.Get(ShardCount); ok {
		t.Error("least recently used key was not evicted")
	}
	if _, ok := c.Get(0); !ok {
		t.Error("recently used key was evicted")
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestShardedCacheDeleteClear(t *testing.T) {
	c := NewSharded[string, int](0, StringHasher)
	if c.Stats().Capacity != DefaultCapacity {
		t.Errorf("Capacity = %d, want %d", c.Stats().Capacity, DefaultCapacity)
	}
	for i := range 40 {
		c.Set(strconv.Itoa(i), i)
	}
	if !c.Delete("7") || c.Delete("7") {
		t.Error("Delete(7) should succeed once")
	}
	if c.Len() != 39 {
		t.Errorf("Len() = %d, want 39", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
}

func TestShardedCacheConcurrent(t *testing.T) {
	c := NewSharded[string, int](64, StringHasher)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				key := strconv.Itoa((g * i) % 97)
				c.GetOrCreate(key, func() int { return i })
			}
		}()
	}
	wg.Wait()
	if c.Len() > 97 {
		t.Errorf("Len() = %d, want <= 97", c.Len())
	}
}
