package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage != "sqlite" || cfg.SQLitePath != "coachcore.db" {
		t.Fatalf("storage defaults: %+v", cfg)
	}
	if cfg.Archive != "fs" || cfg.ArchiveFSRoot != "./snapshots" {
		t.Fatalf("archive defaults: %+v", cfg)
	}
	if cfg.PollInterval != 0 || cfg.RedisAddr != "" {
		t.Fatalf("signal defaults: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("log defaults: %+v", cfg)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("COACHCORE_STORAGE", "postgres")
	t.Setenv("COACHCORE_POSTGRES_DSN", "postgres://db/coach")
	t.Setenv("COACHCORE_POLL_INTERVAL", "30s")
	t.Setenv("COACHCORE_REDIS_ADDR", "localhost:6379")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage != "postgres" || cfg.PostgresDSN != "postgres://db/coach" {
		t.Fatalf("storage overrides: %+v", cfg)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("poll interval: %v", cfg.PollInterval)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("redis addr: %q", cfg.RedisAddr)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "storage: memory\nlog_format: console\ns3_path_style: true\n"
	if err := os.WriteFile(filepath.Join(dir, "coachcore.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage != "memory" || cfg.LogFormat != "console" || !cfg.S3PathStyle {
		t.Fatalf("file values: %+v", cfg)
	}
	// untouched keys keep their defaults
	if cfg.SQLitePath != "coachcore.db" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
	if cfg.Storage != "sqlite" {
		t.Fatalf("defaults: %+v", cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "coachcore.yaml"), []byte("storage: [unterminated"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected parse error")
	}
}
