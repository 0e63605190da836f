package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the optional configuration file contents. Every field has a
// working default, so running without a config file is fully supported.
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Cache  CacheConfig  `toml:"cache"`
	Serve  ServeConfig  `toml:"serve"`
}

// SolverConfig tunes the minimization algorithms.
type SolverConfig struct {
	// Algorithm selects the solver: "auto" (default), "brute-force", "subset".
	Algorithm string `toml:"algorithm"`

	// MemoWidth overrides the subset solver's per-subset memo slots.
	MemoWidth int `toml:"memo_width"`
}

// CacheConfig selects and configures the result cache backend.
type CacheConfig struct {
	// Backend is one of "file" (default), "memory", "redis", "mongo", "none".
	Backend string `toml:"backend"`

	// Dir overrides the file backend's directory.
	Dir string `toml:"dir"`

	// TTLHours bounds the lifetime of cached results; 0 keeps them forever.
	TTLHours int `toml:"ttl_hours"`

	// Redis backend settings.
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`

	// Mongo backend settings.
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// ServeConfig configures the HTTP API.
type ServeConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Algorithm: "auto",
		},
		Cache: CacheConfig{
			Backend:         "file",
			MongoDatabase:   appName,
			MongoCollection: "results",
		},
		Serve: ServeConfig{
			Addr: ":8080",
		},
	}
}

// LoadConfig reads the TOML config at path, or the default location when
// path is empty. A missing file is not an error; defaults apply.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		var err error
		path, err = configPath()
		if err != nil {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
