package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// =============================================================================
// Config Types
// =============================================================================

// Config holds all rigctl configuration.
type Config struct {
	Manifest ManifestConfig `mapstructure:"manifest"`
	Env      EnvConfig      `mapstructure:"env"`
	Probe    ProbeConfig    `mapstructure:"probe"`
	Log      LogConfig      `mapstructure:"log"`
}

// ManifestConfig holds topology generation configuration.
type ManifestConfig struct {
	// Path is the orchestration manifest to regenerate.
	Path string `mapstructure:"path"`

	// Anchor is the substring identifying the reference worker block's
	// last line. Empty means the built-in default.
	Anchor string `mapstructure:"anchor"`

	// Service is the dependent service whose depends_on is regenerated.
	// Empty means the built-in default.
	Service string `mapstructure:"service"`
}

// EnvConfig holds capacity tuning output configuration.
type EnvConfig struct {
	// Path is the dotenv file receiving the capacity parameters.
	Path string `mapstructure:"path"`

	// MaxConcurrentKey and PeakRateKey name the upserted variables.
	MaxConcurrentKey string `mapstructure:"max_concurrent_key"`
	PeakRateKey      string `mapstructure:"peak_rate_key"`
}

// ProbeConfig holds device enumeration configuration.
type ProbeConfig struct {
	// Binary is the device enumeration tool.
	Binary string `mapstructure:"binary"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// =============================================================================
// Config Loading
// =============================================================================

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("manifest.path", "docker-compose.yml")
	v.SetDefault("manifest.anchor", "")
	v.SetDefault("manifest.service", "")
	v.SetDefault("env.path", ".env")
	v.SetDefault("env.max_concurrent_key", "MAX_PARALLEL_PROOFS")
	v.SetDefault("env.peak_rate_key", "PROOF_RATE_LIMIT")
	v.SetDefault("probe.binary", "nvidia-smi")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Load from file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			// Only return error if file was explicitly specified and is invalid
			if _, ok := err.(viper.ConfigParseError); ok {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			// File not found is OK, we'll use defaults
		}
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("RIGCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// =============================================================================
// Logger Setup
// =============================================================================

// SetupLogger creates a logger with the configured level and format.
func SetupLogger(cfg *Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
