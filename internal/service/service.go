// Package service serves the menu API from the response cache, falling back
// to the repository on a miss.
package service

import (
	"context"

	"menuapp/internal/cache"
	applog "menuapp/internal/log"
	"menuapp/internal/repository"
)

// Service combines the repository with the response cache.
type Service struct {
	repo  *repository.Repository
	cache cache.Store
}

// New builds a Service. A nil store disables caching.
func New(repo *repository.Repository, store cache.Store) *Service {
	if store == nil {
		store = cache.Noop{}
	}
	return &Service{repo: repo, cache: store}
}

// cached returns the value stored under key or computes it with load and
// stores the result. Cache failures are logged and never returned.
func cached[T any](ctx context.Context, s *Service, key string, load func() (T, error)) (T, error) {
	var value T
	hit, err := s.cache.Get(ctx, key, &value)
	if err != nil {
		applog.Warn(ctx, "cache read failed", "key", key, "error", err)
	}
	if hit {
		applog.Debug(ctx, "cache hit", "key", key)
		return value, nil
	}

	value, err = load()
	if err != nil {
		return value, err
	}

	if err := s.cache.Set(ctx, key, value); err != nil {
		applog.Warn(ctx, "cache write failed", "key", key, "error", err)
	}
	return value, nil
}

// invalidate drops the given keys and every key under the given prefixes.
func (s *Service) invalidate(ctx context.Context, keys []string, prefixes ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		applog.Warn(ctx, "cache invalidation failed", "keys", keys, "error", err)
	}
	for _, prefix := range prefixes {
		if err := s.cache.DeletePrefix(ctx, prefix); err != nil {
			applog.Warn(ctx, "cache invalidation failed", "prefix", prefix, "error", err)
		}
	}
}

// FlushCache drops every cached response.
func (s *Service) FlushCache(ctx context.Context) {
	if err := s.cache.Flush(ctx); err != nil {
		applog.Warn(ctx, "cache flush failed", "error", err)
		return
	}
	applog.Debug(ctx, "cache flushed")
}
