package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/storage"
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
		_ = client.Close()
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

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, record *model.PlayerRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	// Previous gamer tag, if any, must leave the index
	previous, err := s.GetPlayer(ctx, record.ID)
	if err != nil && !errors.Is(err, model.ErrPlayerNotFound) {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, playerKey(record.ID), data, s.cfg.PlayerTTL)
		pipe.SAdd(ctx, playersIndexKey(), string(record.ID))
		if previous != nil && previous.GamerTag != "" && previous.GamerTag != record.GamerTag {
			pipe.Del(ctx, gamerTagIndexKey(previous.GamerTag))
		}
		if record.GamerTag != "" {
			pipe.Set(ctx, gamerTagIndexKey(record.GamerTag), string(record.ID), s.cfg.PlayerTTL)
		}
		return nil
	})
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.PlayerRecord, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var record model.PlayerRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Storage) GetPlayerByGamerTag(ctx context.Context, gamerTag string) (*model.PlayerRecord, error) {
	if gamerTag == "" {
		return nil, model.ErrPlayerNotFound
	}

	// Look up player ID from gamer tag index
	playerIDStr, err := s.client.Get(ctx, gamerTagIndexKey(gamerTag)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return s.GetPlayer(ctx, model.PlayerID(playerIDStr))
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.PlayerRecord, error) {
	ids, err := s.client.SMembers(ctx, playersIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.PlayerRecord{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = playerKey(model.PlayerID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*model.PlayerRecord, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Player may have expired
		}
		str, ok := val.(string)
		if !ok {
			continue
		}
		var record model.PlayerRecord
		if err := json.Unmarshal([]byte(str), &record); err != nil {
			continue // Skip invalid data
		}
		records = append(records, &record)
	}

	return records, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	existing, err := s.GetPlayer(ctx, id)
	if err != nil && !errors.Is(err, model.ErrPlayerNotFound) {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, playerKey(id))
		pipe.SRem(ctx, playersIndexKey(), string(id))
		pipe.ZRem(ctx, leaderboardKey(), string(id))
		if existing != nil && existing.GamerTag != "" {
			pipe.Del(ctx, gamerTagIndexKey(existing.GamerTag))
		}
		return nil
	})
	return err
}

// Leaderboard operations

func (s *Storage) RecordScore(ctx context.Context, id model.PlayerID, score int) error {
	return s.client.ZAddGT(ctx, leaderboardKey(), redis.Z{
		Score:  float64(score),
		Member: string(id),
	}).Err()
}

func (s *Storage) TopScores(ctx context.Context, limit int) ([]model.ScoreEntry, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	results, err := s.client.ZRevRangeWithScores(ctx, leaderboardKey(), 0, stop).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.ScoreEntry, 0, len(results))
	for _, z := range results {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, model.ScoreEntry{
			PlayerID: model.PlayerID(member),
			Score:    int(z.Score),
		})
	}
	return entries, nil
}
