package text

import (
	"errors"
	"image"
	"sync"
	"testing"
)

func testMask(w int) *GlyphMask {
	r := image.Rect(0, 0, w, 1)
	return &GlyphMask{Rect: r, Alpha: image.NewAlpha(r)}
}

func TestDefaultMaskCacheConfig(t *testing.T) {
	if got := DefaultMaskCacheConfig().MaxEntries; got != 4096 {
		t.Errorf("MaxEntries = %d, want 4096", got)
	}
}

func TestNewMaskCache(t *testing.T) {
	cache := NewMaskCache()
	if cache.Len() != 0 {
		t.Errorf("new cache Len() = %d, want 0", cache.Len())
	}
	if s := cache.shards[0]; s.maxEntries != 4096/numShards {
		t.Errorf("per-shard limit = %d, want %d", s.maxEntries, 4096/numShards)
	}

	cache = NewMaskCacheWithConfig(MaskCacheConfig{})
	if s := cache.shards[0]; s.maxEntries != 4096/numShards {
		t.Errorf("zero config should use defaults, got per-shard %d", s.maxEntries)
	}
}

func TestMaskCache_SetGet(t *testing.T) {
	cache := NewMaskCache()
	key := MaskKey{GID: 42, Size: 16, SubX: 1}

	if got := cache.Get(key); got != nil {
		t.Fatalf("Get on empty cache = %v, want nil", got)
	}

	m := testMask(3)
	cache.Set(key, m)
	if got := cache.Get(key); got != m {
		t.Errorf("Get = %p, want %p", got, m)
	}
	if other := cache.Get(MaskKey{GID: 42, Size: 16, SubX: 2}); other != nil {
		t.Error("different SubX must miss")
	}

	replacement := testMask(5)
	cache.Set(key, replacement)
	if got := cache.Get(key); got != replacement {
		t.Error("Set on existing key should replace the mask")
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}

	cache.Set(MaskKey{GID: 1}, nil)
	if cache.Len() != 1 {
		t.Error("nil masks must not be cached")
	}
}

func TestMaskCache_Eviction(t *testing.T) {
	cache := NewMaskCacheWithConfig(MaskCacheConfig{MaxEntries: numShards})

	for gid := range GlyphID(200) {
		cache.Set(MaskKey{GID: gid, Size: 1}, testMask(1))
	}

	if got := cache.Len(); got > numShards {
		t.Errorf("Len() = %d, want <= %d", got, numShards)
	}
	if stats := cache.Stats(); stats.Evictions == 0 {
		t.Error("expected evictions")
	}
}

func TestMaskCache_LRUOrder(t *testing.T) {
	cache := NewMaskCacheWithConfig(MaskCacheConfig{MaxEntries: 2 * numShards})

	// Pick three keys that land in the same shard.
	var keys []MaskKey
	target := cache.getShard(MaskKey{GID: 0})
	for gid := GlyphID(0); len(keys) < 3; gid++ {
		k := MaskKey{GID: gid}
		if cache.getShard(k) == target {
			keys = append(keys, k)
		}
	}

	cache.Set(keys[0], testMask(1))
	cache.Set(keys[1], testMask(1))
	cache.Get(keys[0]) // keys[1] is now least recently used
	cache.Set(keys[2], testMask(1))

	if cache.Get(keys[1]) != nil {
		t.Error("least recently used entry should have been evicted")
	}
	if cache.Get(keys[0]) == nil || cache.Get(keys[2]) == nil {
		t.Error("recently used entries should survive")
	}
}

func TestMaskCache_GetOrCreate(t *testing.T) {
	cache := NewMaskCache()
	key := MaskKey{GID: 7}

	calls := 0
	create := func() (*GlyphMask, error) {
		calls++
		return testMask(2), nil
	}

	m1, err := cache.GetOrCreate(key, create)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	m2, err := cache.GetOrCreate(key, create)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if m1 != m2 {
		t.Error("second call should hit the cache")
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	boom := errors.New("boom")
	_, err = cache.GetOrCreate(MaskKey{GID: 8}, func() (*GlyphMask, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
	if cache.Get(MaskKey{GID: 8}) != nil {
		t.Error("failed creations must not be cached")
	}
}

func TestMaskCache_ClearAndStats(t *testing.T) {
	cache := NewMaskCache()
	cache.Set(MaskKey{GID: 1}, testMask(1))
	cache.Get(MaskKey{GID: 1})
	cache.Get(MaskKey{GID: 2})

	stats := cache.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Len != 1 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss, len 1", stats)
	}

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", cache.Len())
	}
	if cache.Get(MaskKey{GID: 1}) != nil {
		t.Error("Get after Clear should miss")
	}
}

func TestMaskCache_Concurrent(t *testing.T) {
	cache := NewMaskCacheWithConfig(MaskCacheConfig{MaxEntries: 64})

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				key := MaskKey{GID: GlyphID((w*500 + i) % 128)}
				_, _ = cache.GetOrCreate(key, func() (*GlyphMask, error) {
					return testMask(1), nil
				})
			}
		}()
	}
	wg.Wait()

	if got := cache.Len(); got > 64 {
		t.Errorf("Len() = %d, want <= 64", got)
	}
}
