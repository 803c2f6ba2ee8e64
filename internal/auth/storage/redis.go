package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/estateops/estate-api/internal/common/config"
	"github.com/redis/go-redis/v9"
)

const defaultSessionPrefix = "estate:session:"

// RedisStorage implements the Store interface using Redis
type RedisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedisStorage creates a new Redis storage instance
func NewRedisStorage(cfg config.SessionRedisConfig) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultSessionPrefix
	}

	return &RedisStorage{
		client: client,
		prefix: prefix,
	}, nil
}

func (s *RedisStorage) key(token string) string {
	return s.prefix + token
}

// SaveSession stores a session with a TTL matching its expiry
func (s *RedisStorage) SaveSession(ctx context.Context, session *Session) error {
	session.CreatedAt = time.Now().Unix()
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	ttl := time.Duration(session.ExpiresAt-session.CreatedAt) * time.Second
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}
	return s.client.Set(ctx, s.key(session.Token), data, ttl).Err()
}

// GetSession retrieves a session by refresh token
func (s *RedisStorage) GetSession(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}

	if session.ExpiresAt < time.Now().Unix() {
		s.client.Del(ctx, s.key(token))
		return nil, ErrSessionNotFound
	}

	return &session, nil
}

// DeleteSession revokes a session
func (s *RedisStorage) DeleteSession(ctx context.Context, token string) error {
	deleted, err := s.client.Del(ctx, s.key(token)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteSessionsByUser revokes every session the user holds
func (s *RedisStorage) DeleteSessionsByUser(ctx context.Context, userID string) error {
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		data, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			continue
		}

		var session Session
		if err := json.Unmarshal(data, &session); err != nil {
			continue
		}

		if session.UserID == userID {
			s.client.Del(ctx, key)
		}
	}

	return iter.Err()
}

// Close closes the underlying Redis client
func (s *RedisStorage) Close() error {
	return s.client.Close()
}
