// Package config loads runtime configuration from a file or from COACHCORE_
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures every tunable of the data layer.
type Config struct {
	// Storage selects the keyspace backend: memory, sqlite, or postgres.
	Storage     string `mapstructure:"storage"`
	SQLitePath  string `mapstructure:"sqlite_path"`
	PostgresDSN string `mapstructure:"postgres_dsn"`

	// RedisAddr enables the cross-process change feed when non-empty.
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`

	// PollInterval adds timer-driven re-reads on top of change signals.
	// Zero disables polling.
	PollInterval time.Duration `mapstructure:"poll_interval"`

	// Archive selects the snapshot archive backend: fs, s3, or memory.
	Archive       string `mapstructure:"archive"`
	ArchiveFSRoot string `mapstructure:"archive_fs_root"`
	S3Bucket      string `mapstructure:"s3_bucket"`
	S3Region      string `mapstructure:"s3_region"`
	S3Endpoint    string `mapstructure:"s3_endpoint"`
	S3PathStyle   bool   `mapstructure:"s3_path_style"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Load reads an optional config file (coachcore.yaml in path, when path is
// non-empty) and applies environment overrides with the COACHCORE_ prefix.
// A missing file is not an error; the defaults plus environment win.
func Load(path string) (Config, error) {
	v := viper.New()
	// Every key needs a default so environment overrides survive Unmarshal.
	v.SetDefault("storage", "sqlite")
	v.SetDefault("sqlite_path", "coachcore.db")
	v.SetDefault("postgres_dsn", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("poll_interval", time.Duration(0))
	v.SetDefault("archive", "fs")
	v.SetDefault("archive_fs_root", "./snapshots")
	v.SetDefault("s3_bucket", "")
	v.SetDefault("s3_region", "")
	v.SetDefault("s3_endpoint", "")
	v.SetDefault("s3_path_style", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetEnvPrefix("COACHCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.AddConfigPath(path)
		v.SetConfigName("coachcore")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
