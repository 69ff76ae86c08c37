package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	InsiderWatch InsiderWatchConfig `yaml:"insiderwatch"`
}

// InsiderWatchConfig is the project configuration.
type InsiderWatchConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig controls the HTTP API listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatasetConfig controls where the session dataset comes from.
// Mode is one of sample, file, or redis.
type DatasetConfig struct {
	Mode  string            `yaml:"mode"`
	File  FileSourceConfig  `yaml:"file"`
	Redis RedisSourceConfig `yaml:"redis"`
}

// FileSourceConfig config for a dataset document on disk.
type FileSourceConfig struct {
	Path string `yaml:"path"`
}

// RedisSourceConfig config for a dataset document held in a Redis key.
type RedisSourceConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Key      string        `yaml:"key"`
	Timeout  time.Duration `yaml:"timeout"`
}

// LoggingConfig controls logging output.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	File    string `yaml:"file"`
	Console bool   `yaml:"console"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
