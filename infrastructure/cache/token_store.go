package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"videotube/infrastructure/logger"
)

const refreshTokenPrefix = "refresh_token:"

// ITokenStore tracks the currently valid refresh token per user. A logout or
// a rotation invalidates the previous token.
type ITokenStore interface {
	Save(ctx context.Context, userID, token string, ttl time.Duration) error
	Get(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, userID string) error
}

type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) ITokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) Save(ctx context.Context, userID, token string, ttl time.Duration) error {
	if s.client == nil {
		logger.GetLogger().Warn("Redis not available - refresh token not persisted")
		return nil
	}
	return s.client.Set(ctx, refreshTokenPrefix+userID, token, ttl).Err()
}

func (s *TokenStore) Get(ctx context.Context, userID string) (string, error) {
	if s.client == nil {
		return "", errors.New("redis not available")
	}
	val, err := s.client.Get(ctx, refreshTokenPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (s *TokenStore) Delete(ctx context.Context, userID string) error {
	if s.client == nil {
		return nil
	}
	return s.client.Del(ctx, refreshTokenPrefix+userID).Err()
}
