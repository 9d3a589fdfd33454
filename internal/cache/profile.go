package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/notekeeper/notekeeper/internal/model"
)

const (
	// profileCachePrefix is the Redis key prefix for cached user profiles.
	profileCachePrefix = "profile:user:"
	// DefaultProfileTTL is the default time-to-live for cached profiles.
	DefaultProfileTTL = 5 * time.Minute
)

// CachedProfile is the profile representation stored in Redis.
// It never carries the password hash.
type CachedProfile struct {
	ID        string    `json:"user_id"`
	Name      string    `json:"user_name"`
	Email     string    `json:"user_email"`
	CreatedAt time.Time `json:"created_on"`
	UpdatedAt time.Time `json:"last_update"`
}

// ProfileCache caches user profiles keyed by user ID.
type ProfileCache struct {
	cache *Cache
	ttl   time.Duration
}

// NewProfileCache wraps a Cache for profile lookups.
func NewProfileCache(c *Cache, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = DefaultProfileTTL
	}
	return &ProfileCache{cache: c, ttl: ttl}
}

func profileKey(userID string) string {
	return profileCachePrefix + userID
}

// GetProfile retrieves a cached profile.
// Returns nil, nil on a cache miss.
func (p *ProfileCache) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	data, err := p.cache.client.Get(ctx, profileKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached profile: %w", err)
	}

	var cached CachedProfile
	if err := json.Unmarshal(data, &cached); err != nil {
		// Corrupted cache entry - treat as miss
		return nil, nil //nolint:nilerr
	}

	return &model.User{
		ID:        cached.ID,
		Name:      cached.Name,
		Email:     cached.Email,
		CreatedAt: cached.CreatedAt,
		UpdatedAt: cached.UpdatedAt,
	}, nil
}

// SetProfile caches a profile.
func (p *ProfileCache) SetProfile(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(toCachedProfile(user))
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	return p.cache.client.Set(ctx, profileKey(user.ID), data, p.ttl).Err()
}

func toCachedProfile(user *model.User) CachedProfile {
	return CachedProfile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
