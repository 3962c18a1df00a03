package text

import (
	"image"
	"math"
	"sync"
	"sync/atomic"
)

// MaskCacheConfig holds configuration for MaskCache.
type MaskCacheConfig struct {
	// MaxEntries is the maximum number of cached glyph masks.
	// Default: 4096
	MaxEntries int
}

// DefaultMaskCacheConfig returns the default cache configuration.
func DefaultMaskCacheConfig() MaskCacheConfig {
	return MaskCacheConfig{
		MaxEntries: 4096,
	}
}

// MaskKey uniquely identifies a rasterized glyph mask within one font.
type MaskKey struct {
	// GID is the glyph index within the font.
	GID GlyphID

	// Size is the font size in pixels per em. Sizes are compared exactly,
	// so nearby sizes never share a mask.
	Size float64

	// SubX is the quantized horizontal subpixel position.
	SubX uint8
}

// maskEntry is an internal cache entry.
type maskEntry struct {
	key  MaskKey
	mask *GlyphMask

	// prev and next for LRU doubly-linked list
	prev *maskEntry
	next *maskEntry
}

// MaskCache is a thread-safe LRU cache for rasterized glyph masks.
//
// The cache is sharded to reduce lock contention when several canvases
// sharing one FontSource draw concurrently.
//
// MaskCache is safe for concurrent use.
type MaskCache struct {
	shards [numShards]*maskShard

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// numShards is the number of cache shards for reduced lock contention.
const numShards = 16

// maskShard is a single shard of the mask cache.
type maskShard struct {
	mu sync.Mutex

	entries map[MaskKey]*maskEntry

	// head is the most recently used entry
	head *maskEntry

	// tail is the least recently used entry
	tail *maskEntry

	maxEntries int
}

// MaskCacheStats holds a snapshot of cache statistics.
type MaskCacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Len       int
}

// NewMaskCache creates a new mask cache with default configuration.
func NewMaskCache() *MaskCache {
	return NewMaskCacheWithConfig(DefaultMaskCacheConfig())
}

// NewMaskCacheWithConfig creates a new mask cache with the given configuration.
func NewMaskCacheWithConfig(config MaskCacheConfig) *MaskCache {
	if config.MaxEntries <= 0 {
		config.MaxEntries = DefaultMaskCacheConfig().MaxEntries
	}

	c := &MaskCache{}

	// Divide entries among shards
	entriesPerShard := (config.MaxEntries + numShards - 1) / numShards

	for i := range c.shards {
		c.shards[i] = &maskShard{
			entries:    make(map[MaskKey]*maskEntry, entriesPerShard),
			maxEntries: entriesPerShard,
		}
	}

	return c
}

// Get retrieves a cached mask.
// Returns nil if not found.
func (c *MaskCache) Get(key MaskKey) *GlyphMask {
	shard := c.getShard(key)

	shard.mu.Lock()
	entry, ok := shard.entries[key]
	if !ok {
		shard.mu.Unlock()
		c.misses.Add(1)
		return nil
	}
	shard.moveToFront(entry)
	mask := entry.mask
	shard.mu.Unlock()

	c.hits.Add(1)
	return mask
}

// peek returns a cached mask without touching statistics or LRU order.
func (c *MaskCache) peek(key MaskKey) *GlyphMask {
	shard := c.getShard(key)

	shard.mu.Lock()
	defer shard.mu.Unlock()
	if entry, ok := shard.entries[key]; ok {
		return entry.mask
	}
	return nil
}

// Set stores a mask in the cache.
// If the shard is full, its least recently used entry is evicted.
func (c *MaskCache) Set(key MaskKey, mask *GlyphMask) {
	if mask == nil {
		return
	}

	shard := c.getShard(key)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	if existing, ok := shard.entries[key]; ok {
		existing.mask = mask
		shard.moveToFront(existing)
		return
	}

	for len(shard.entries) >= shard.maxEntries && shard.tail != nil {
		shard.removeTail()
		c.evictions.Add(1)
	}

	entry := &maskEntry{key: key, mask: mask}
	shard.entries[key] = entry
	shard.addToFront(entry)
}

// GetOrCreate retrieves a cached mask or creates one using the provided
// function. Masks are immutable once cached, so two goroutines racing on
// the same key may both create it; the last one wins and both results are
// identical.
func (c *MaskCache) GetOrCreate(key MaskKey, create func() (*GlyphMask, error)) (*GlyphMask, error) {
	if mask := c.Get(key); mask != nil {
		return mask, nil
	}

	mask, err := create()
	if err != nil {
		return nil, err
	}
	c.Set(key, mask)
	return mask, nil
}

// Clear removes all entries from the cache.
func (c *MaskCache) Clear() {
	for _, shard := range c.shards {
		shard.mu.Lock()
		shard.entries = make(map[MaskKey]*maskEntry, shard.maxEntries)
		shard.head = nil
		shard.tail = nil
		shard.mu.Unlock()
	}
}

// Len returns the total number of cached entries.
func (c *MaskCache) Len() int {
	total := 0
	for _, shard := range c.shards {
		shard.mu.Lock()
		total += len(shard.entries)
		shard.mu.Unlock()
	}
	return total
}

// Stats returns cache statistics.
func (c *MaskCache) Stats() MaskCacheStats {
	return MaskCacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Len:       c.Len(),
	}
}

// getShard returns the shard for the given key.
func (c *MaskCache) getShard(key MaskKey) *maskShard {
	h := uint64(key.GID)
	h = h*31 + math.Float64bits(key.Size)
	h = h*31 + uint64(key.SubX)
	return c.shards[h%numShards]
}

// addToFront adds an entry to the front of the LRU list.
func (s *maskShard) addToFront(entry *maskEntry) {
	entry.prev = nil
	entry.next = s.head

	if s.head != nil {
		s.head.prev = entry
	}
	s.head = entry

	if s.tail == nil {
		s.tail = entry
	}
}

// moveToFront moves an entry to the front of the LRU list.
func (s *maskShard) moveToFront(entry *maskEntry) {
	if entry == s.head {
		return
	}

	s.remove(entry)
	s.addToFront(entry)
}

// remove removes an entry from the LRU list (does not delete from map).
func (s *maskShard) remove(entry *maskEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		s.head = entry.next
	}

	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		s.tail = entry.prev
	}

	entry.prev = nil
	entry.next = nil
}

// removeTail drops the least recently used entry.
func (s *maskShard) removeTail() {
	entry := s.tail
	delete(s.entries, entry.key)
	s.remove(entry)
}

// Mask returns the coverage mask of glyph gid at size pixels per em,
// rasterized at horizontal subpixel position subX (see Quantize).
// Masks are cached per source and shared by all of its faces.
func (s *FontSource) Mask(gid GlyphID, size float64, subX uint8) (*GlyphMask, error) {
	s.copyCheck()

	key := MaskKey{GID: gid, Size: size, SubX: subX}
	return s.masks.GetOrCreate(key, func() (*GlyphMask, error) {
		outline, err := s.outline(gid, size)
		if err != nil {
			return nil, err
		}
		return RasterizeOutline(outline, SubpixelOffset(subX, Subpixel4)), nil
	})
}

// GlyphRect returns the pixel rectangle of the mask Mask would return for
// the same arguments. A cached mask is used when present; otherwise the
// rectangle is computed from the outline and nothing is rasterized or
// cached.
func (s *FontSource) GlyphRect(gid GlyphID, size float64, subX uint8) (image.Rectangle, error) {
	s.copyCheck()

	if mask := s.masks.peek(MaskKey{GID: gid, Size: size, SubX: subX}); mask != nil {
		return mask.Rect, nil
	}
	outline, err := s.outline(gid, size)
	if err != nil {
		return image.Rectangle{}, err
	}
	return OutlineRect(outline, SubpixelOffset(subX, Subpixel4)), nil
}

func (s *FontSource) outline(gid GlyphID, size float64) (*GlyphOutline, error) {
	parsed := s.Parsed()
	if parsed == nil {
		return nil, ErrClosed
	}
	return outlineExtractor.ExtractOutline(parsed, gid, size)
}

var outlineExtractor = NewOutlineExtractor()
