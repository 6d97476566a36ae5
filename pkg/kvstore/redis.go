package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"gospel-keys/pkg/config"
	"gospel-keys/pkg/logger"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

type RedisStore struct {
	client *redis.Client
	logger *logger.Logger
}

func NewRedisStore(client *redis.Client, log *logger.Logger) *RedisStore {
	return &RedisStore{client: client, logger: log}
}

func (s *RedisStore) Get(ctx context.Context, key string, dest interface{}) bool {
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		s.logger.Error("Error reading %s from storage: %v", key, err)
		return false
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		s.logger.Error("Error decoding %s from storage: %v", key, err)
		return false
	}
	return true
}

func (s *RedisStore) Set(ctx context.Context, key string, value interface{}) bool {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("Error encoding %s for storage: %v", key, err)
		return false
	}

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		s.logger.Error("Error writing %s to storage: %v", key, err)
		return false
	}
	return true
}

func (s *RedisStore) Remove(ctx context.Context, key string) bool {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.Error("Error removing %s from storage: %v", key, err)
		return false
	}
	return true
}

func (s *RedisStore) Clear(ctx context.Context) bool {
	if err := s.client.FlushDB(ctx).Err(); err != nil {
		s.logger.Error("Error clearing storage: %v", err)
		return false
	}
	return true
}

func (s *RedisStore) Has(ctx context.Context, key string) bool {
	count, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		s.logger.Error("Error checking %s in storage: %v", key, err)
		return false
	}
	return count > 0
}
