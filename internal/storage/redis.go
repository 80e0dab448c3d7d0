package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"landing-builder-backend/internal/models"
)

const redisOperationTimeout = 5 * time.Second

// RedisStore persists sessions in Redis under "session:<id>" keys with the
// configured TTL. Redis handles expiry itself, no sweeper is needed.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.ChatSession, error) {
	ctx, cancel := context.WithTimeout(ctx, redisOperationTimeout)
	defer cancel()

	val, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	var session models.ChatSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisStore) Save(ctx context.Context, session *models.ChatSession) error {
	ctx, cancel := context.WithTimeout(ctx, redisOperationTimeout)
	defer cancel()

	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.ID), payload, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, redisOperationTimeout)
	defer cancel()

	return s.client.Del(ctx, sessionKey(id)).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
