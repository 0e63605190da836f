package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/linarr-project/linarr/pkg/cache"
	"github.com/linarr-project/linarr/pkg/graph"
	"github.com/linarr-project/linarr/pkg/linarr"
)

// appName is the application name used for directories and display.
const appName = "linarr"

// =============================================================================
// Input Loading
// =============================================================================

// loadGraph reads a graph document from path, or from stdin when path is "-".
func loadGraph(path string) (graph.Graph, error) {
	if path == "-" {
		return graph.ReadGraph(os.Stdin)
	}
	g, err := graph.ReadGraphFile(path)
	if err != nil {
		return nil, fmt.Errorf("load graph %s: %w", path, err)
	}
	return g, nil
}

// parseArrangement parses a comma-separated vertex order like "2,0,1,3".
func parseArrangement(s string, n int) (*linarr.Arrangement, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("arrangement has %d positions, graph has %d vertices", len(parts), n)
	}
	order := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		order[i] = v
	}
	return linarr.FromOrder(order)
}

// =============================================================================
// Cache Construction
// =============================================================================

// newResultCache builds the cache backend selected by config and flags.
// Local backends degrade to the null cache on failure - caching is an
// optimization, never a prerequisite - while remote backends report their
// connection errors so misconfiguration is visible.
func newResultCache(ctx context.Context, cfg *Config, noCache bool) (cache.Cache, error) {
	if noCache || cfg.Cache.Backend == "none" {
		return cache.NewNullCache(), nil
	}

	switch cfg.Cache.Backend {
	case "memory":
		return cache.NewMemoryCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
	case "mongo":
		return cache.NewMongoStore(ctx, cfg.Cache.MongoURI, cfg.Cache.MongoDatabase, cfg.Cache.MongoCollection)
	default:
		dir := cfg.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
		}
		c, err := cache.NewFileCache(dir)
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return c, nil
	}
}

// cacheTTL converts the configured TTL to a duration; zero means no expiry.
func cacheTTL(cfg *Config) time.Duration {
	return time.Duration(cfg.Cache.TTLHours) * time.Hour
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/linarr/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configPath returns the default config file path (~/.config/linarr/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
