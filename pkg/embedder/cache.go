package embedder

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// CacheKey identifies an ordered batch of texts.
type CacheKey string

// KeyFor derives the cache key of a batch. Each text is length-prefixed before
// hashing so that ["ab", "c"] and ["a", "bc"] never collide. The key is order
// sensitive.
func KeyFor(texts []string) CacheKey {
	h := sha256.New()
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(texts)))
	h.Write(n[:])
	for _, text := range texts {
		binary.BigEndian.PutUint64(n[:], uint64(len(text)))
		h.Write(n[:])
		h.Write([]byte(text))
	}
	return CacheKey(hex.EncodeToString(h.Sum(nil)))
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Entries int   `json:"entries"`
}

// Cache memoizes embedding batches for the lifetime of the process.
//
// A Cache created with size <= 0 never evicts. A positive size bounds the
// number of batches kept, evicting the least recently used.
type Cache struct {
	mu      sync.RWMutex
	entries map[CacheKey][][]float32
	bounded *lru.Cache[CacheKey, [][]float32]

	group  singleflight.Group
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache creates a cache holding at most size batches, or an unbounded
// cache when size <= 0.
func NewCache(size int) *Cache {
	c := &Cache{}
	if size > 0 {
		// lru.New only fails for non-positive sizes
		c.bounded, _ = lru.New[CacheKey, [][]float32](size)
	} else {
		c.entries = make(map[CacheKey][][]float32)
	}
	return c
}

// Get returns the batch stored under key.
func (c *Cache) Get(key CacheKey) ([][]float32, bool) {
	if c.bounded != nil {
		return c.bounded.Get(key)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *Cache) put(key CacheKey, value [][]float32) {
	if c.bounded != nil {
		c.bounded.Add(key, value)
		return
	}
	c.mu.Lock()
	c.entries[key] = value
	c.mu.Unlock()
}

// GetOrCompute returns the batch cached under key, or runs produce to compute
// it. Concurrent callers with the same key share one produce call. Results are
// stored only when produce succeeds; errors are returned to every waiting
// caller and nothing is cached.
func (c *Cache) GetOrCompute(ctx context.Context, key CacheKey, produce func(context.Context) ([][]float32, error)) ([][]float32, error) {
	if v, ok := c.Get(key); ok {
		c.hits.Add(1)
		return v, nil
	}

	v, err, _ := c.group.Do(string(key), func() (any, error) {
		// Another caller may have stored the batch between Get and Do.
		if v, ok := c.Get(key); ok {
			c.hits.Add(1)
			return v, nil
		}
		c.misses.Add(1)
		result, err := produce(ctx)
		if err != nil {
			return nil, err
		}
		c.put(key, result)
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([][]float32), nil
}

// Len returns the number of cached batches.
func (c *Cache) Len() int {
	if c.bounded != nil {
		return c.bounded.Len()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns hit and miss counters along with the current entry count.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.Len(),
	}
}

// CachedClient wraps a Client and memoizes batch embeddings. Single-text
// embeddings (questions) always go to the wrapped client.
type CachedClient struct {
	client Client
	cache  *Cache
}

// NewCachedClient wraps client with cache. A nil cache creates an unbounded one.
func NewCachedClient(client Client, cache *Cache) *CachedClient {
	if cache == nil {
		cache = NewCache(0)
	}
	return &CachedClient{
		client: client,
		cache:  cache,
	}
}

// Embed returns the embeddings for texts, computing them at most once per
// distinct ordered batch.
func (c *CachedClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	return c.cache.GetOrCompute(ctx, KeyFor(texts), func(ctx context.Context) ([][]float32, error) {
		vectors, err := c.client.Embed(ctx, texts)
		if err != nil {
			return nil, err
		}
		if len(vectors) != len(texts) {
			return nil, fmt.Errorf("%w: sent %d, got %d", ErrVectorCountMismatch, len(texts), len(vectors))
		}
		return vectors, nil
	})
}

// EmbedSingle embeds one text without caching.
func (c *CachedClient) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	return c.client.EmbedSingle(ctx, text)
}

// Dimensions returns the dimensions of the wrapped client.
func (c *CachedClient) Dimensions() int {
	return c.client.Dimensions()
}

// Close closes the wrapped client.
func (c *CachedClient) Close() error {
	return c.client.Close()
}

// Cache returns the underlying cache.
func (c *CachedClient) Cache() *Cache {
	return c.cache
}

// Stats returns the cache statistics.
func (c *CachedClient) Stats() CacheStats {
	return c.cache.Stats()
}
