package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/hupe1980/nearpoint"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix prefixes every environment variable read into Config.
const envPrefix = "NEARPOINT"

// Config holds the benchmark configuration.
// Precedence: defaults < .env file < environment < flags.
type Config struct {
	NumPoints   int    `envconfig:"NUM_POINTS" default:"100000"`
	Repeat      int    `envconfig:"NREPEAT" default:"10"`
	Seed        int64  `envconfig:"SEED" default:"90391"`
	Workers     int    `envconfig:"WORKERS" default:"0"`
	MinChunk    int    `envconfig:"MIN_CHUNK" default:"0"`
	Kernel      string `envconfig:"KERNEL" default:"auto"`
	MemoryLimit int64  `envconfig:"MEMORY_LIMIT" default:"0"`
	MetricsFile string `envconfig:"METRICS_FILE"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text"`
}

// Config validation errors
var (
	ErrInvalidMemoryLimit = errors.New("memory_limit must not be negative")
	ErrInvalidMinChunk    = errors.New("min_chunk must not be negative")
	ErrInvalidLogFormat   = errors.New("log_format must be 'json' or 'text'")
	ErrInvalidLogLevel    = errors.New("log_level must be debug, info, warn, or error")
)

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		NumPoints: 100000,
		Repeat:    10,
		Seed:      90391,
		Kernel:    "auto",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadConfig reads envFile (if it exists) into the environment without
// overriding variables already set, then processes NEARPOINT_* variables.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	return cfg, nil
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if err := nearpoint.ValidatePointCount(cfg.NumPoints); err != nil {
		return err
	}
	if err := nearpoint.ValidateRepeat(cfg.Repeat); err != nil {
		return err
	}
	if cfg.MinChunk < 0 {
		return ErrInvalidMinChunk
	}
	if cfg.MemoryLimit < 0 {
		return ErrInvalidMemoryLimit
	}
	if _, err := nearpoint.ParseKernel(cfg.Kernel); err != nil {
		return err
	}
	if f := strings.ToLower(cfg.LogFormat); f != "json" && f != "text" {
		return ErrInvalidLogFormat
	}
	if _, err := nearpoint.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}
	return nil
}
