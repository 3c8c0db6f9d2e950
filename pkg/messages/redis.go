package messages

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// HashReader is the subset of redis.Cmdable used to read a catalog.
// *redis.Client and *redis.ClusterClient satisfy it.
type HashReader interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// LoadRedis reads a catalog stored as a Redis hash of rule name to template.
// A missing key yields an empty catalog.
func LoadRedis(ctx context.Context, client HashReader, key string) (map[string]string, error) {
	if client == nil {
		return nil, ErrRedisClientIsNil
	}
	if key == "" {
		return nil, ErrRedisKeyIsEmpty
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrRedisLoadCancelled, err)
	}

	catalog, err := client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadRedis, err)
	}
	for rule := range catalog {
		if rule == "" {
			return nil, errors.Join(ErrFailedToLoadRedis, ErrInvalidCatalog)
		}
	}
	return catalog, nil
}
