package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/dicegame-go/internal/dependencies/clock"
	"github.com/mcoot/dicegame-go/internal/dependencies/random"
	"github.com/mcoot/dicegame-go/internal/metrics"
	"github.com/mcoot/dicegame-go/internal/services/player"
	"github.com/mcoot/dicegame-go/internal/storage"
	"github.com/mcoot/dicegame-go/internal/storage/memory"
	redisstorage "github.com/mcoot/dicegame-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// ErrInvalidStorageType is returned for an unknown StorageType
var ErrInvalidStorageType = errors.New("invalid StorageType: must be 'memory' or 'redis'")

// App contains all wired application components
type App struct {
	Storage storage.Storage

	Clock  clock.Clock
	Random random.Random

	Metrics *metrics.Metrics

	PlayerService *player.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger. If nil, a no-op logger is used.
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis").
	// If empty, defaults to "memory".
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	switch cfg.StorageType {
	case "", StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		store = redisStore
	default:
		return nil, ErrInvalidStorageType
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// Close releases storage resources held by the app
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	m := metrics.New()

	return &App{
		Storage:       store,
		Clock:         clk,
		Random:        rnd,
		Metrics:       m,
		PlayerService: player.New(store, clk, rnd, m, logger),
	}
}
