// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/absorb/cache"
)

// Config holds settings shared by batch and serve. Flags override it.
type Config struct {
	Workers int          `yaml:"workers" toml:"workers"`
	Redis   RedisConfig  `yaml:"redis" toml:"redis"`
	Server  ServerConfig `yaml:"server" toml:"server"`
}

// ServerConfig configures serve.
type ServerConfig struct {
	Addr string `yaml:"addr" toml:"addr"`
}

// RedisConfig configures the shared result cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string `yaml:"addr" toml:"addr"`
	Password string `yaml:"password" toml:"password"`
	DB       int    `yaml:"db" toml:"db"`
	Prefix   string `yaml:"prefix" toml:"prefix"`
	TTL      string `yaml:"ttl" toml:"ttl"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Redis.Prefix = cache.DefaultPrefix
	cfg.Server.Addr = ":8080"
	return cfg
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file over the
// defaults. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if _, err := cfg.ttl(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) ttl() (time.Duration, error) {
	if c.Redis.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Redis.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid redis ttl %q: %w", c.Redis.TTL, err)
	}
	return d, nil
}

// openCache returns a Redis cache when an address is configured, otherwise
// fallback. The Redis server must answer a ping.
func (c *Config) openCache(ctx context.Context, fallback cache.Cache) (cache.Cache, error) {
	if c.Redis.Addr == "" {
		return fallback, nil
	}
	ttl, err := c.ttl()
	if err != nil {
		return nil, err
	}
	rc := cache.NewRedisCache(c.Redis.Addr, c.Redis.Password, c.Redis.DB,
		cache.WithPrefix(c.Redis.Prefix),
		cache.WithTTL(ttl),
	)
	if err := rc.Ping(ctx); err != nil {
		_ = rc.Close()
		return nil, err
	}
	return rc, nil
}
