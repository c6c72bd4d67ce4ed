package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/prefs"
)

// Store is a Redis-backed preference store
type Store struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis preference store
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Store{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Store {
	return &Store{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements the interface
var _ prefs.Store = (*Store)(nil)

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.HGet(ctx, prefsKey(s.cfg.Profile), key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrPreferenceNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	hashKey := prefsKey(s.cfg.Profile)

	// Use pipeline so the write and TTL refresh land together
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, hashKey, key, value)
	if s.cfg.TTL > 0 {
		pipe.Expire(ctx, hashKey, s.cfg.TTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}
