// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/mcoot/dicegame-go/internal/api"
	redisstorage "github.com/mcoot/dicegame-go/internal/storage/redis"
)

// Server holds the dicegame server settings
type Server struct {
	Host        string `env:"DICEGAME_HOST"`
	Port        int    `env:"DICEGAME_PORT" envDefault:"8080"`
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	LogLevel    string `env:"DICEGAME_LOG_LEVEL" envDefault:"info"`

	RedisURL       string        `env:"REDIS_URL"`
	RedisPoolSize  int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisPlayerTTL time.Duration `env:"REDIS_PLAYER_TTL"`
}

// ErrRedisURLRequired is returned when redis storage has no URL
var ErrRedisURLRequired = errors.New("REDIS_URL required when STORAGE_TYPE=redis")

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServer parses and validates the server settings from the process environment
func LoadServer() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return Server{}, err
	}
	return cfg, cfg.validate()
}

// LoadServerFrom parses and validates the server settings from environ
func LoadServerFrom(environ map[string]string) (Server, error) {
	var cfg Server
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Server) validate() error {
	if c.StorageType == "redis" && c.RedisURL == "" {
		return ErrRedisURLRequired
	}
	return nil
}

// HTTP returns the HTTP server settings
func (c Server) HTTP() api.ServerConfig {
	cfg := api.DefaultServerConfig()
	cfg.Host = c.Host
	cfg.Port = c.Port
	return cfg
}

// Redis returns the Redis settings, or nil when Redis is not in use
func (c Server) Redis() *redisstorage.Config {
	if c.RedisURL == "" {
		return nil
	}
	cfg := redisstorage.DefaultConfig()
	cfg.URL = c.RedisURL
	cfg.PoolSize = c.RedisPoolSize
	cfg.PlayerTTL = c.RedisPlayerTTL
	return &cfg
}

// Level maps LogLevel to a slog level, defaulting to info
func (c Server) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
