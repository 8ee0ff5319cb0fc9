package common

import (
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// CacheService is the in-memory cache implementation.
type CacheService struct {
	cache *cache.Cache
	group singleflight.Group
}

var _ CacheInterface = (*CacheService)(nil)

func NewCacheService(defaultExpiration, cleanUpInterval time.Duration) *CacheService {
	return &CacheService{cache: cache.New(defaultExpiration, cleanUpInterval)}
}

func (cs *CacheService) Set(key string, value interface{}, duration time.Duration) {
	cs.cache.Set(key, value, duration)
}

func (cs *CacheService) Get(key string) (interface{}, bool) {
	return cs.cache.Get(key)
}

func (cs *CacheService) Delete(key string) {
	cs.cache.Delete(key)
}

// GetOrSet loads through a singleflight group so concurrent misses on the
// same key trigger a single loader call.
func (cs *CacheService) GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error) {
	if val, found := cs.Get(key); found {
		return val, nil
	}

	val, err, _ := cs.group.Do(key, func() (any, error) {
		if val, found := cs.Get(key); found {
			return val, nil
		}
		val, err := loader()
		if err != nil {
			return nil, err
		}
		cs.Set(key, val, duration)
		return val, nil
	})
	return val, err
}

// Close is a no-op for the in-memory cache.
func (cs *CacheService) Close() error {
	return nil
}
