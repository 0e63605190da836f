package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Solver.Algorithm != "auto" {
		t.Errorf("default algorithm = %q, want auto", cfg.Solver.Algorithm)
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("default cache backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.Serve.Addr == "" {
		t.Error("default serve address should be set")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[solver]
algorithm = "subset"
memo_width = 4

[cache]
backend = "redis"
redis_addr = "localhost:6379"

[serve]
addr = ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Solver.Algorithm != "subset" || cfg.Solver.MemoWidth != 4 {
		t.Errorf("solver config = %+v", cfg.Solver)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("cache config = %+v", cfg.Cache)
	}
	if cfg.Serve.Addr != ":9090" {
		t.Errorf("serve addr = %q", cfg.Serve.Addr)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[solver]\nalgorithm = \"brute-force\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Solver.Algorithm != "brute-force" {
		t.Errorf("algorithm = %q", cfg.Solver.Algorithm)
	}
	// unset sections keep their defaults
	if cfg.Cache.Backend != "file" {
		t.Errorf("cache backend = %q, want default", cfg.Cache.Backend)
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("an explicitly named missing config file should fail")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed config should fail")
	}
}
