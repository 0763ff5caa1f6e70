// Package config loads process configuration from the environment and builds the logger.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rcliao/inkind/internal/policy"
)

// Config holds settings read from INKIND_* variables. An empty Policy means
// the built-in policy; LogMaxSize is in megabytes and LogMaxAge in days.
type Config struct {
	DB            string `json:"db" env:"INKIND_DB"`
	Policy        string `json:"policy,omitempty" env:"INKIND_POLICY"`
	Format        string `json:"format,omitempty" env:"INKIND_FORMAT"`
	LogFormat     string `json:"log_format" env:"INKIND_LOG_FORMAT" envDefault:"text"`
	LogLevel      string `json:"log_level" env:"INKIND_LOG_LEVEL" envDefault:"warn"`
	LogFile       string `json:"log_file,omitempty" env:"INKIND_LOG_FILE"`
	LogMaxSize    int    `json:"log_max_size" env:"INKIND_LOG_MAX_SIZE" envDefault:"10"`
	LogMaxBackups int    `json:"log_max_backups" env:"INKIND_LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `json:"log_max_age" env:"INKIND_LOG_MAX_AGE" envDefault:"28"`
}

// Load reads envFile (or ./.env when envFile is empty and it exists) into the
// process environment without overriding variables already set, then parses Config.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DB == "" {
		cfg.DB = DefaultDBPath()
	}
	return cfg, nil
}

// DefaultDBPath returns ~/.inkind/contributions.db.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".inkind", "contributions.db")
}

// LoadPolicy returns the policy file named by cfg, or the built-in default.
func (cfg Config) LoadPolicy() (*policy.Policy, error) {
	if cfg.Policy == "" {
		return policy.Default(), nil
	}
	return policy.Load(cfg.Policy)
}

// NewLogger builds the process logger. The returned closer releases the log
// file when INKIND_LOG_FILE is set.
func (cfg Config) NewLogger() (*slog.Logger, io.Closer, error) {
	level := slog.LevelWarn
	if cfg.LogLevel != "" {
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
		}
	}

	var out io.WriteCloser = nopCloser{os.Stderr}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		out = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSize,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAge,
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch strings.ToLower(cfg.LogFormat) {
	case "", "text":
		h = slog.NewTextHandler(out, opts)
	case "json":
		h = slog.NewJSONHandler(out, opts)
	default:
		return nil, nil, errors.New("log format must be text or json")
	}
	return slog.New(h), out, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
