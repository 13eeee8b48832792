// FitScout - Fitness Venue Discovery and Matching Engine
// Copyright 2026 FitScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fitscout/fitscout

// Package config loads FitScout configuration from layered sources:
// built-in defaults, an optional YAML file, and FITSCOUT_* environment
// variables, in ascending order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// ConfigPathEnvVar overrides the config file search path.
	ConfigPathEnvVar = "FITSCOUT_CONFIG"

	// EnvPrefix is stripped from environment variables before mapping
	// them onto config paths: FITSCOUT_SERVER_PORT -> server.port.
	EnvPrefix = "FITSCOUT_"
)

// DefaultConfigPaths are searched in order when FITSCOUT_CONFIG is unset.
var DefaultConfigPaths = []string{
	"fitscout.yaml",
	"config/fitscout.yaml",
	"/etc/fitscout/fitscout.yaml",
}

// Config is the root configuration for the FitScout server.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	CORS      CORSConfig      `koanf:"cors"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Engine    EngineConfig    `koanf:"engine"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// CORSConfig holds cross-origin settings for browser clients.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
	MaxAge         int      `koanf:"max_age"`
}

// RateLimitConfig holds per-IP request throttling settings.
type RateLimitConfig struct {
	Disabled bool          `koanf:"disabled"`
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
}

// EngineConfig holds matching and ranking engine tunables.
//
// The blend weights control the final recommendation score. They are
// applied as given; callers relying on the documented 0.5/0.3/0.2 split
// should leave them at their defaults.
type EngineConfig struct {
	// DefaultLimit is the page size used when a request omits limit.
	DefaultLimit int `koanf:"default_limit"`

	// MaxLimit caps the page size a request may ask for.
	MaxLimit int `koanf:"max_limit"`

	// ChatRelatedLimit caps how many venues a chat reply references.
	ChatRelatedLimit int `koanf:"chat_related_limit"`

	ContentWeight       float64 `koanf:"content_weight"`
	CollaborativeWeight float64 `koanf:"collaborative_weight"`
	PopularityWeight    float64 `koanf:"popularity_weight"`
}

// defaultConfig returns the built-in defaults, the lowest-precedence layer.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			MaxAge:         300,
		},
		RateLimit: RateLimitConfig{
			Requests: 100,
			Window:   time.Minute,
		},
		Engine: EngineConfig{
			DefaultLimit:        6,
			MaxLimit:            50,
			ChatRelatedLimit:    3,
			ContentWeight:       0.5,
			CollaborativeWeight: 0.3,
			PopularityWeight:    0.2,
		},
	}
}

// Load builds the configuration from defaults, an optional config file,
// and environment variables, then validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// FITSCOUT_SERVER_PORT -> server.port, FITSCOUT_ENGINE_MAX_LIMIT ->
	// engine.max_limit, and so on.
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first readable config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransform maps an environment variable name to a koanf config path.
// Only the first underscore separates the section from the key, so
// FITSCOUT_ENGINE_DEFAULT_LIMIT becomes engine.default_limit.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	// rate_limit is the one two-word section.
	if strings.HasPrefix(key, "rate_limit_") {
		return "rate_limit." + strings.TrimPrefix(key, "rate_limit_")
	}

	parts := strings.SplitN(key, "_", 2)
	if len(parts) != 2 {
		return key
	}
	return parts[0] + "." + parts[1]
}

// sliceConfigPaths are paths whose env-var values arrive as
// comma-separated strings but unmarshal into []string.
var sliceConfigPaths = []string{
	"cors.allowed_origins",
}

// processSliceFields splits comma-separated string values for known
// slice paths. YAML-sourced values are already slices and are skipped.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Engine.DefaultLimit < 1 {
		return fmt.Errorf("engine.default_limit must be positive, got %d", c.Engine.DefaultLimit)
	}
	if c.Engine.MaxLimit < c.Engine.DefaultLimit {
		return fmt.Errorf("engine.max_limit (%d) must be >= engine.default_limit (%d)",
			c.Engine.MaxLimit, c.Engine.DefaultLimit)
	}
	if c.Engine.ChatRelatedLimit < 0 {
		return fmt.Errorf("engine.chat_related_limit must not be negative, got %d", c.Engine.ChatRelatedLimit)
	}

	for _, w := range []struct {
		name  string
		value float64
	}{
		{"engine.content_weight", c.Engine.ContentWeight},
		{"engine.collaborative_weight", c.Engine.CollaborativeWeight},
		{"engine.popularity_weight", c.Engine.PopularityWeight},
	} {
		if w.value < 0 || w.value > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %g", w.name, w.value)
		}
	}

	if !c.RateLimit.Disabled {
		if c.RateLimit.Requests < 1 {
			return fmt.Errorf("rate_limit.requests must be positive, got %d", c.RateLimit.Requests)
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("rate_limit.window must be positive, got %s", c.RateLimit.Window)
		}
	}

	return nil
}
