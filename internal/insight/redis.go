package insight

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"aura.app/relay/core/config"
)

// redisSetReader is the subset of redis.Cmdable used for sampling.
type redisSetReader interface {
	SRandMemberN(ctx context.Context, key string, count int64) *redis.StringSliceCmd
}

type redisSource struct {
	reader    redisSetReader
	close     func() error
	keyPrefix string
}

// NewRedisSource samples from one Redis set per topic, keyed keyPrefix+topic.
func NewRedisSource(ctx context.Context, cfg config.RedisConfig) (Source, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &redisSource{reader: client, close: client.Close, keyPrefix: cfg.KeyPrefix}, nil
}

func (s *redisSource) Sample(ctx context.Context, topic string, limit int) ([]string, error) {
	texts, err := s.reader.SRandMemberN(ctx, s.keyPrefix+topic, int64(limit)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis srandmember: %w", err)
	}
	return texts, nil
}

func (s *redisSource) Name() string {
	return config.BackendRedis
}

func (s *redisSource) Close() error {
	return s.close()
}
