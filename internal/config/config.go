package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds the settings read from the environment
type Config struct {
	LogLevel    string `validate:"required,oneof=debug info warn error"`
	SeqURL      string `validate:"omitempty,url"`
	MaxDecimals int    `validate:"min=1,max=15"`
	Describe    bool
}

// Load reads the TABLECLEAN_* environment variables and validates the result
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom is Load with a custom lookup, used by tests
func LoadFrom(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		LogLevel:    getEnvOrDefault(getenv, "TABLECLEAN_LOG_LEVEL", "info"),
		SeqURL:      getenv("TABLECLEAN_SEQ_URL"),
		MaxDecimals: 6,
		Describe:    true,
	}

	if v := getenv("TABLECLEAN_MAX_DECIMALS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("TABLECLEAN_MAX_DECIMALS: %w", err)
		}
		cfg.MaxDecimals = n
	}

	if v := getenv("TABLECLEAN_DESCRIBE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("TABLECLEAN_DESCRIBE: %w", err)
		}
		cfg.Describe = b
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Level maps LogLevel onto a slog level
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}
