// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

package post

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minhanhvo/plume/internal/platform/constants"
)

// postCacheTTL bounds staleness for cached posts. Mutations invalidate
// eagerly; the TTL only covers entries orphaned by a failed invalidation.
const postCacheTTL = 5 * time.Minute

// RedisCache implements the [Cache] contract on Redis.
//
// All operations are best-effort: a Redis failure degrades to a storage
// read, never to a request failure.
type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisCache creates a Redis-backed post cache.
func NewRedisCache(client *redis.Client, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, logger: logger}
}

// Get returns the cached post and whether the lookup hit.
func (cache *RedisCache) Get(context context.Context, id string) (*Post, bool) {
	payload, err := cache.client.Get(context, constants.RedisPrefixPost+id).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.Debug("post_cache_get_failed", slog.String("post_id", id), slog.String("error", err.Error()))
		}
		return nil, false
	}

	post := &Post{}
	if err := json.Unmarshal(payload, post); err != nil {
		// A corrupt entry is dropped so the next read repopulates it.
		cache.Invalidate(context, id)
		return nil, false
	}

	return post, true
}

// Set stores a post under its ID with the configured TTL.
func (cache *RedisCache) Set(context context.Context, post *Post) {
	payload, err := json.Marshal(post)
	if err != nil {
		return
	}

	if err := cache.client.Set(context, constants.RedisPrefixPost+post.ID, payload, postCacheTTL).Err(); err != nil {
		cache.logger.Debug("post_cache_set_failed", slog.String("post_id", post.ID), slog.String("error", err.Error()))
	}
}

// Invalidate drops the cached entry for a post ID.
func (cache *RedisCache) Invalidate(context context.Context, id string) {
	if err := cache.client.Del(context, constants.RedisPrefixPost+id).Err(); err != nil {
		cache.logger.Debug("post_cache_invalidate_failed", slog.String("post_id", id), slog.String("error", err.Error()))
	}
}

// NoopCache is a [Cache] that never hits. It stands in when Redis is not
// configured, keeping the service wiring unconditional.
type NoopCache struct{}

// Get always misses.
func (NoopCache) Get(context.Context, string) (*Post, bool) { return nil, false }

// Set discards the entry.
func (NoopCache) Set(context.Context, *Post) {}

// Invalidate does nothing.
func (NoopCache) Invalidate(context.Context, string) {}
