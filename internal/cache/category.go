// Package cache holds the Redis-backed helpers: a read-through category
// cache and a fixed-window rate limiter.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

const (
	// Redis key prefix shared by every trivia key
	keyPrefix = "trivia:"

	categoriesKey = keyPrefix + "categories"
)

// CategoryCache decorates a CategoryRepository with a Redis copy of the
// category list. Redis errors fall back to the wrapped repository.
type CategoryCache struct {
	next  domain.CategoryRepository
	redis *redis.Client
	ttl   time.Duration
	log   *slog.Logger
}

// NewCategoryCache creates a category cache in front of next
func NewCategoryCache(next domain.CategoryRepository, client *redis.Client, ttl time.Duration, log *slog.Logger) *CategoryCache {
	return &CategoryCache{
		next:  next,
		redis: client,
		ttl:   ttl,
		log:   log,
	}
}

// List returns the cached categories, loading them on a miss
func (c *CategoryCache) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := c.load(ctx)
	if err == nil {
		return categories, nil
	}
	if !errors.Is(err, redis.Nil) {
		c.log.Warn("category cache read failed", slog.String("error", err.Error()))
	}

	categories, err = c.next.List(ctx)
	if err != nil {
		return nil, err
	}

	// An empty list is not cached so freshly seeded categories show up.
	if len(categories) > 0 {
		if err := c.store(ctx, categories); err != nil {
			c.log.Warn("category cache write failed", slog.String("error", err.Error()))
		}
	}
	return categories, nil
}

// GetByID looks the category up in the cached list
func (c *CategoryCache) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	categories, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		if category.ID == id {
			return &category, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (c *CategoryCache) load(ctx context.Context) ([]domain.Category, error) {
	data, err := c.redis.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		return nil, err
	}

	var categories []domain.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	return categories, nil
}

func (c *CategoryCache) store(ctx context.Context, categories []domain.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	return c.redis.Set(ctx, categoriesKey, data, c.ttl).Err()
}
