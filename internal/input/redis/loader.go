// Package redis fetches the session dataset document from a Redis key.
// This is a one-shot read at startup: the store never goes back to Redis
// once the dataset is loaded.
package redis

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Config configures the Redis dataset source.
type Config struct {
	Addr     string
	Password string
	DB       int
	Key      string
	Timeout  time.Duration
}

// Loader wraps a Redis client for dataset retrieval.
type Loader struct {
	client  *redis.Client
	key     string
	timeout time.Duration
}

// NewLoader creates a loader for the configured key.
func NewLoader(cfg Config) (*Loader, error) {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:6379"
	}
	if cfg.Key == "" {
		return nil, fmt.Errorf("redis dataset key is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &Loader{
		client:  client,
		key:     cfg.Key,
		timeout: cfg.Timeout,
	}, nil
}

// Fetch reads the raw dataset document.
func (l *Loader) Fetch(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	res, err := l.client.Get(ctx, l.key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("dataset key %q not found", l.key)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Close closes the loader.
func (l *Loader) Close() error {
	return l.client.Close()
}
