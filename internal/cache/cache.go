package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/JustJay7/jagriti-case-api/internal/jagriti"
)

// DirectoryCache holds short-lived commission directory snapshots.
// A nil or zero-TTL cache is a no-op, preserving the portal's
// fetch-on-every-call behavior.
type DirectoryCache struct {
	cache *gocache.Cache
}

// New creates a directory cache with the given TTL. TTL <= 0 disables caching.
func New(ttl time.Duration) *DirectoryCache {
	if ttl <= 0 {
		return &DirectoryCache{}
	}
	return &DirectoryCache{cache: gocache.New(ttl, ttl*2)}
}

// Get returns the cached directory snapshot for key, if present
func (c *DirectoryCache) Get(key string) ([]jagriti.Commission, bool) {
	if c == nil || c.cache == nil {
		return nil, false
	}
	if data, found := c.cache.Get(key); found {
		if entries, ok := data.([]jagriti.Commission); ok {
			return entries, true
		}
	}
	return nil, false
}

// Set stores a directory snapshot under key
func (c *DirectoryCache) Set(key string, entries []jagriti.Commission) {
	if c == nil || c.cache == nil {
		return
	}
	c.cache.Set(key, entries, gocache.DefaultExpiration)
}

// StatesKey is the cache key for the state commission directory
func StatesKey() string {
	return "states"
}

// DistrictsKey is the cache key for one state's district directory
func DistrictsKey(stateCommissionID int) string {
	return fmt.Sprintf("districts:%d", stateCommissionID)
}
