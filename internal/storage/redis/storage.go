package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/arenahub/internal/model"
	"github.com/mcoot/arenahub/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
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
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveStats(ctx context.Context, stats *model.PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	// Pipeline for atomic record + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, statsKey(stats.PlayerID), data, s.cfg.StatsTTL)
	pipe.SAdd(ctx, statsIndexKey(), string(stats.PlayerID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetStats(ctx context.Context, id model.PlayerID) (*model.PlayerStats, error) {
	data, err := s.client.Get(ctx, statsKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrStatsNotFound
		}
		return nil, err
	}

	var stats model.PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Storage) ListStats(ctx context.Context) ([]*model.PlayerStats, error) {
	ids, err := s.client.SMembers(ctx, statsIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	out := make([]*model.PlayerStats, 0, len(ids))
	for _, id := range ids {
		stats, err := s.GetStats(ctx, model.PlayerID(id))
		if err != nil {
			if errors.Is(err, model.ErrStatsNotFound) {
				// Record expired but index entry lingered; drop it
				_ = s.client.SRem(ctx, statsIndexKey(), id).Err()
				continue
			}
			return nil, err
		}
		out = append(out, stats)
	}
	return out, nil
}

func (s *Storage) DeleteStats(ctx context.Context, id model.PlayerID) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, statsKey(id))
	pipe.SRem(ctx, statsIndexKey(), string(id))
	_, err := pipe.Exec(ctx)
	return err
}
