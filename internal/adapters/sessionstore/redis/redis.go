package redis

import (
	"context"
	"fmt"
	"time"

	"filevault/internal/config"
	"filevault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// Store is a Redis-backed session store with a sliding TTL
type Store struct {
	client *redis.Client
	config config.SessionConfig
}

// NewStore connects to Redis and returns Store
func NewStore(ctx context.Context, cfg config.SessionConfig) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Store{client: client, config: cfg}, nil
}

// Create issues a fresh opaque session identifier
func (s *Store) Create(ctx context.Context) (string, error) {
	sessionID := uuid.NewString()

	err := s.client.Set(ctx, sessionKeyPrefix+sessionID, time.Now().UTC().Format(time.RFC3339), s.config.TTL).Err()
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return sessionID, nil
}

// Validate reports whether the session identifier is known and unexpired
func (s *Store) Validate(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to validate session: %w", err)
	}
	return n == 1, nil
}

// Touch extends the session's sliding expiry window
func (s *Store) Touch(ctx context.Context, sessionID string) error {
	ok, err := s.client.Expire(ctx, sessionKeyPrefix+sessionID, s.config.TTL).Result()
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	if !ok {
		return domain.ErrSessionNotFound
	}
	return nil
}

// Close releases the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}
