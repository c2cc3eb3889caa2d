package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cvlens/cvlens/internal/domain"
)

// Redis is a shared cache backed by a Redis instance, for deployments where
// several workers analyze the same documents. Records are stored as JSON
// under a namespaced key with a TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

const redisKeyPrefix = "cvlens:analysis:"

// NewRedis wraps an existing client. A non-positive ttl disables expiry.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Get implements domain.AnalysisCache. A missing key is a miss, not an
// error; a corrupt payload is reported as an error and treated by callers
// like a miss.
func (r *Redis) Get(ctx context.Context, key string) (domain.CVRecord, bool, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.CVRecord{}, false, nil
	}
	if err != nil {
		return domain.CVRecord{}, false, fmt.Errorf("op=cache.Get: %w", err)
	}
	var rec domain.CVRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.CVRecord{}, false, fmt.Errorf("op=cache.Get: decode: %w", err)
	}
	return rec, true, nil
}

// Put implements domain.AnalysisCache.
func (r *Redis) Put(ctx context.Context, key string, rec domain.CVRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("op=cache.Put: encode: %w", err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("op=cache.Put: %w", err)
	}
	return nil
}
