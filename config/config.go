// Package config loads the settings of the archive query layer from YAML and
// the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Konsultn-Engineering/hdbpp/query"
	"github.com/united-manufacturing-hub/umh-utils/env"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the file.
const (
	EnvLogLevel       = "HDBPP_LOG_LEVEL"
	EnvPrecompute     = "HDBPP_PRECOMPUTE"
	EnvFetchCacheSize = "HDBPP_FETCH_CACHE_SIZE"
)

// Config represents the archive query layer configuration.
type Config struct {
	LogLevel string        `json:"log_level" yaml:"log_level"`
	Builder  BuilderConfig `json:"builder" yaml:"builder"`
}

// BuilderConfig defines query builder settings.
type BuilderConfig struct {
	Precompute     bool `json:"precompute" yaml:"precompute"`
	FetchCacheSize int  `json:"fetch_cache_size" yaml:"fetch_cache_size"`
}

func Default() Config {
	return Config{
		LogLevel: "PRODUCTION",
		Builder: BuilderConfig{
			Precompute:     true,
			FetchCacheSize: query.DefaultFetchCacheSize,
		},
	}
}

// Load reads path on top of Default, then applies the environment. An empty
// path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}

		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var err error

	c.LogLevel, err = env.GetAsString(EnvLogLevel, false, c.LogLevel)
	if err != nil {
		return err
	}
	c.Builder.Precompute, err = env.GetAsBool(EnvPrecompute, false, c.Builder.Precompute)
	if err != nil {
		return fmt.Errorf("%s: %w", EnvPrecompute, err)
	}
	c.Builder.FetchCacheSize, err = env.GetAsInt(EnvFetchCacheSize, false, c.Builder.FetchCacheSize)
	if err != nil {
		return fmt.Errorf("%s: %w", EnvFetchCacheSize, err)
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Builder.FetchCacheSize <= 0 {
		return fmt.Errorf("fetch_cache_size must be positive, got %d", c.Builder.FetchCacheSize)
	}
	return nil
}

// BuilderOptions translates the builder settings into query options.
func (c *Config) BuilderOptions() []query.Option {
	return []query.Option{
		query.WithPrecompute(c.Builder.Precompute),
		query.WithFetchCacheSize(c.Builder.FetchCacheSize),
	}
}
