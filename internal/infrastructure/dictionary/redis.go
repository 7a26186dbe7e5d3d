package dictionary

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"pwstrength/internal/domain/value"
)

const (
	DefaultRedisKey = "pwstrength:common-passwords"
	redisBatchSize  = 1000
)

// Redis keeps the dictionary in a Redis set.
type Redis struct {
	client redis.Cmdable
	key    string
}

func NewRedis(client redis.Cmdable, key string) *Redis {
	if key == "" {
		key = DefaultRedisKey
	}

	return &Redis{
		client: client,
		key:    key,
	}
}

func (r *Redis) Contains(ctx context.Context, password string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, r.key, value.NormalizePassword(password)).Result()
	if err != nil {
		return false, fmt.Errorf("redis.SIsMember: %w", err)
	}

	return ok, nil
}

// Import replaces the set with words. The new set is built under a temporary
// key and renamed over the live one, readers never see a partial list.
func (r *Redis) Import(ctx context.Context, words []string) error {
	tmpKey := r.key + ":import"

	if err := r.client.Del(ctx, tmpKey).Err(); err != nil {
		return fmt.Errorf("redis.Del: %w", err)
	}

	if len(words) == 0 {
		if err := r.client.Del(ctx, r.key).Err(); err != nil {
			return fmt.Errorf("redis.Del: %w", err)
		}

		return nil
	}

	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, chunk := range lo.Chunk(words, redisBatchSize) {
			pipe.SAdd(ctx, tmpKey, lo.ToAnySlice(chunk)...)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("redis.Pipelined: %w", err)
	}

	if err := r.client.Rename(ctx, tmpKey, r.key).Err(); err != nil {
		return fmt.Errorf("redis.Rename: %w", err)
	}

	return nil
}
