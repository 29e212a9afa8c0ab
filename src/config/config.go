// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigFile names the environment variable holding the config file path.
	EnvConfigFile = "SSLLABS_CONFIG_FILE"
	// EnvPrefix is the prefix for every environment override, e.g. SSLLABS_API_PROXY.
	EnvPrefix = "SSLLABS"
	// EnvDebug toggles request/response diagnostics without touching the config file.
	EnvDebug = EnvPrefix + "_DEBUG"

	// DefaultAPIURL is the versioned base of the public assessment service.
	DefaultAPIURL = "https://api.ssllabs.com/api/v2/"
	// DefaultTimeoutSeconds bounds a single HTTP call.
	DefaultTimeoutSeconds = 30
	// DefaultNotStartedDelayMs is the poll delay while an assessment has not started yet.
	DefaultNotStartedDelayMs = 5000
	// DefaultInProgressDelayMs is the poll delay while an assessment is running.
	DefaultInProgressDelayMs = 10000
	// DefaultMaxParallel bounds concurrent scans started by one command.
	DefaultMaxParallel = 2
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config is the scanner configuration shared by the CLI, the MCP server and
// the client library.
//
// Values are layered: defaults, then the config file, then environment
// variables prefixed with SSLLABS (for example SSLLABS_API_URL,
// SSLLABS_API_PROXY, SSLLABS_POLL_IN_PROGRESS_DELAY_MS).
type Config struct {
	API struct {
		// URL is the versioned API base, every operation name is appended to it.
		URL string `json:"url" yaml:"url" split_words:"true"`
		// Proxy is an optional forward proxy for every outbound call.
		Proxy string `json:"proxy,omitempty" yaml:"proxy,omitempty" split_words:"true"`
		// TimeoutSeconds bounds a single HTTP call, not a whole scan.
		TimeoutSeconds int `json:"timeoutSeconds" yaml:"timeoutSeconds" split_words:"true"`
		// UserAgent overrides the default User-Agent header.
		UserAgent string `json:"userAgent,omitempty" yaml:"userAgent,omitempty" split_words:"true"`
	} `json:"api" yaml:"api"`

	Poll struct {
		NotStartedDelayMs int `json:"notStartedDelayMs" yaml:"notStartedDelayMs" split_words:"true"`
		InProgressDelayMs int `json:"inProgressDelayMs" yaml:"inProgressDelayMs" split_words:"true"`
	} `json:"poll" yaml:"poll"`

	Scan struct {
		MaxParallel int `json:"maxParallel" yaml:"maxParallel" split_words:"true"`
	} `json:"scan" yaml:"scan"`

	// Debug enables verbose request/response diagnostics. SSLLABS_DEBUG is
	// not folded in here; the client reads it at every diagnostic point.
	Debug bool `json:"debug" yaml:"debug" ignored:"true"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.API.URL = DefaultAPIURL
	cfg.API.TimeoutSeconds = DefaultTimeoutSeconds
	cfg.Poll.NotStartedDelayMs = DefaultNotStartedDelayMs
	cfg.Poll.InProgressDelayMs = DefaultInProgressDelayMs
	cfg.Scan.MaxParallel = DefaultMaxParallel
	return cfg
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// NotStartedDelay returns the poll delay used before an assessment starts running.
func (c *Config) NotStartedDelay() time.Duration {
	return time.Duration(c.Poll.NotStartedDelayMs) * time.Millisecond
}

// InProgressDelay returns the poll delay used while an assessment is running.
func (c *Config) InProgressDelay() time.Duration {
	return time.Duration(c.Poll.InProgressDelayMs) * time.Millisecond
}

// detectConfigFormat determines the configuration file format based on file extension.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load builds the configuration from defaults, an optional file and the environment.
//
// Parameters:
//   - configPath: Path to a .json, .yaml or .yml file. When empty, the
//     SSLLABS_CONFIG_FILE environment variable is consulted.
//
// Returns:
//   - *Config: The merged configuration
//   - error: If the file cannot be read or parsed, or an environment value is malformed
//
// Configuration Priority:
//  1. Default values are set
//  2. Config file values override defaults
//  3. SSLLABS_* environment variables override both
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
			return nil, err
		}
	}

	// No default tags, so unset variables leave file values alone.
	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	config.applyFallbacks()
	return config, nil
}

// applyFallbacks replaces invalid values with their defaults.
func (c *Config) applyFallbacks() {
	if c.API.URL == "" {
		c.API.URL = DefaultAPIURL
	}
	if !strings.HasSuffix(c.API.URL, "/") {
		c.API.URL += "/"
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Poll.NotStartedDelayMs <= 0 {
		c.Poll.NotStartedDelayMs = DefaultNotStartedDelayMs
	}
	if c.Poll.InProgressDelayMs <= 0 {
		c.Poll.InProgressDelayMs = DefaultInProgressDelayMs
	}
	if c.Scan.MaxParallel <= 0 {
		c.Scan.MaxParallel = DefaultMaxParallel
	}
}
