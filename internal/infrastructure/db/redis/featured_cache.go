package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openplate/foodshare-api/internal/core/domain"
)

const (
	featuredTTL       = time.Minute
	featuredKeyPrefix = "featured:"
)

// FeaturedCache stores the featured-listings view in Redis as a JSON blob
// keyed by limit. A short TTL bounds staleness; writes to the foods
// collection additionally invalidate every cached variant.
type FeaturedCache struct {
	client *redis.Client
}

// NewFeaturedCache creates a FeaturedCache wrapping the given Redis client.
func NewFeaturedCache(client *redis.Client) *FeaturedCache {
	return &FeaturedCache{client: client}
}

// Get returns the cached view for limit. The second return value reports
// whether the key was present.
func (c *FeaturedCache) Get(ctx context.Context, limit int) ([]*domain.Listing, bool, error) {
	raw, err := c.client.Get(ctx, c.key(limit)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("featured cache get: %w", err)
	}

	var listings []*domain.Listing
	if err := json.Unmarshal(raw, &listings); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		return nil, false, fmt.Errorf("featured cache decode: %w", err)
	}
	return listings, true, nil
}

// Set stores the view for limit with the cache TTL.
func (c *FeaturedCache) Set(ctx context.Context, limit int, listings []*domain.Listing) error {
	raw, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("featured cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(limit), raw, featuredTTL).Err(); err != nil {
		return fmt.Errorf("featured cache set: %w", err)
	}
	return nil
}

// Invalidate drops every cached featured variant. Called after any listing
// write so the view never outlives a change longer than one round trip.
func (c *FeaturedCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, featuredKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("featured cache scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("featured cache del: %w", err)
	}
	return nil
}

func (c *FeaturedCache) key(limit int) string {
	return fmt.Sprintf("%s%d", featuredKeyPrefix, limit)
}
