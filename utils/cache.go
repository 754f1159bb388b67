package utils

import (
	"FlashVault/internal/repo"
	"FlashVault/model"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis cache client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client: client,
	}
}

// Get reads a cached value.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Set writes a cached value.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, string(data), expiration).Err()
}

// Delete removes a cache entry.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Exists checks whether a cache key exists.
func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	count, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type CacheManager struct {
	cache Cache
}

var globalCacheManager *CacheManager
var cacheManagerOnce sync.Once

// InitCacheManager initializes the cache manager.
func InitCacheManager() {
	cacheManagerOnce.Do(func() {
		globalCacheManager = &CacheManager{
			cache: NewRedisCache(repo.Redis),
		}
	})
}

// GetCacheManager returns the cache manager.
func GetCacheManager() *CacheManager {
	if globalCacheManager == nil {
		InitCacheManager()
	}
	return globalCacheManager
}

// BuildCacheKey builds a cache key.
func BuildCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += fmt.Sprintf(":%v", param)
	}
	return key
}

const (
	CacheKeyDeckCards = "deck:cards"
)

// GetDeckCardsFromCache reads the cached card list of a deck.
func GetDeckCardsFromCache(ctx context.Context, deckId uint64) ([]model.Card, bool) {
	manager := GetCacheManager()
	key := BuildCacheKey(CacheKeyDeckCards, deckId)

	var result []model.Card
	if err := manager.cache.Get(ctx, key, &result); err != nil {
		return nil, false
	}
	return result, true
}

// SetDeckCardsToCache writes the cached card list of a deck.
func SetDeckCardsToCache(ctx context.Context, deckId uint64, cards []model.Card, expiration time.Duration) error {
	manager := GetCacheManager()
	key := BuildCacheKey(CacheKeyDeckCards, deckId)
	return manager.cache.Set(ctx, key, cards, expiration)
}

// InvalidateDeckCardsCache clears the cached card list of a deck.
func InvalidateDeckCardsCache(ctx context.Context, deckId uint64) error {
	manager := GetCacheManager()
	key := BuildCacheKey(CacheKeyDeckCards, deckId)
	return manager.cache.Delete(ctx, key)
}
