package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisapp "gallery_board/internal/storage/redis"

	"github.com/redis/go-redis/v9"
)

// RedisTokenRepo keeps the ids of logged-out tokens until they would have
// expired anyway.
type RedisTokenRepo struct {
	Client *redisapp.Client
}

func NewRedisTokenRepo(client *redisapp.Client) *RedisTokenRepo {
	return &RedisTokenRepo{Client: client}
}

func (r *RedisTokenRepo) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	const op = "repository.RedisTokenRepo.Revoke"

	if ttl <= 0 {
		return nil
	}

	if err := r.Client.Set(ctx, revokedTokenKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *RedisTokenRepo) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	const op = "repository.RedisTokenRepo.IsRevoked"

	n, err := r.Client.Exists(ctx, revokedTokenKey(tokenID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return n > 0, nil
}

func revokedTokenKey(tokenID string) string {
	return "revoked:" + tokenID
}

var _ TokenRepository = (*RedisTokenRepo)(nil)
