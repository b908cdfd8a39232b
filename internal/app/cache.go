package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Nikhil-NP/vibe-check/internal/domain"
)

// maxCacheEntries bounds memory use; expired entries are swept on writes
// once the cache is full.
const maxCacheEntries = 1024

// enhanceCache memoizes generative enhancement responses by input hash so
// repeated requests for identical text do not burn paid API calls within
// the TTL window.
type enhanceCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
	clock   clockwork.Clock
}

type cacheEntry struct {
	enhancement domain.Enhancement
	expiresAt   time.Time
}

func newEnhanceCache(ttl time.Duration, clock clockwork.Clock) *enhanceCache {
	return &enhanceCache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get retrieves a cached enhancement if present and not expired.
func (c *enhanceCache) Get(key string) (*domain.Enhancement, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.clock.Now().After(entry.expiresAt) {
		// Expired entry, treat as miss. Eviction happens on writes.
		return nil, false
	}

	result := entry.enhancement
	return &result, true
}

// Set stores an enhancement with the configured TTL, sweeping expired
// entries first when the cache is at capacity.
func (c *enhanceCache) Set(key string, enhancement *domain.Enhancement) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= maxCacheEntries {
		now := c.clock.Now()
		for k, e := range c.entries {
			if now.After(e.expiresAt) {
				delete(c.entries, k)
			}
		}
	}
	if len(c.entries) >= maxCacheEntries {
		return
	}

	c.entries[key] = &cacheEntry{
		enhancement: *enhancement,
		expiresAt:   c.clock.Now().Add(c.ttl),
	}
}

// Size returns the current number of entries (including expired).
func (c *enhanceCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// cacheKey hashes the text together with the optional caller-provided
// sentiment data; json.Marshal sorts map keys, so the key is deterministic.
func cacheKey(text string, sentimentData map[string]any) string {
	h := sha256.New()
	h.Write([]byte(text))
	if len(sentimentData) > 0 {
		if encoded, err := json.Marshal(sentimentData); err == nil {
			h.Write(encoded)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
