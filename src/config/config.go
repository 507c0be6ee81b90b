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
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by [Load].
const (
	EnvConfigFile    = "BFHL_CONFIG_FILE"
	EnvOfficialEmail = "OFFICIAL_EMAIL"
	EnvGeminiAPIKey  = "GEMINI_API_KEY"
	EnvPort          = "PORT"
)

// Defaults applied before the file and environment layers.
const (
	DefaultAddr           = ":3000"
	DefaultBodyLimitBytes = 50 * 1024
	DefaultReadTimeout    = 10
	DefaultWriteTimeout   = 30
	DefaultModel          = "gemini-2.5-flash"
	DefaultFallbackWord   = "Unknown"
	DefaultOfficialEmail  = "YOUR CHITKARA EMAIL"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config is the complete service configuration. It is built once at start-up
// and treated as read-only afterwards.
type Config struct {
	// OfficialEmail is reported in every response envelope.
	OfficialEmail string `json:"officialEmail" yaml:"officialEmail"`

	// Server configures the HTTP listener.
	Server struct {
		// Addr is the listen address, e.g. ":3000".
		Addr string `json:"addr" yaml:"addr"`
		// BodyLimitBytes caps request bodies; larger bodies are rejected as malformed.
		BodyLimitBytes int `json:"bodyLimitBytes" yaml:"bodyLimitBytes"`
		// ReadTimeout and WriteTimeout are in seconds.
		ReadTimeout  int `json:"readTimeoutSeconds" yaml:"readTimeoutSeconds"`
		WriteTimeout int `json:"writeTimeoutSeconds" yaml:"writeTimeoutSeconds"`
	} `json:"server" yaml:"server"`

	// AI configures the Gemini adapter.
	AI struct {
		// APIKey authenticates against the Gemini API (also GEMINI_API_KEY).
		APIKey string `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
		// Model is the Gemini model name.
		Model string `json:"model,omitempty" yaml:"model,omitempty"`
		// BaseURL overrides the Gemini endpoint.
		BaseURL string `json:"baseURL,omitempty" yaml:"baseURL,omitempty"`
		// Timeout bounds one AI call, in seconds; 0 disables it.
		Timeout int `json:"timeoutSeconds,omitempty" yaml:"timeoutSeconds,omitempty"`
		// FallbackWord is answered when the model reply has no usable word.
		FallbackWord string `json:"fallbackWord,omitempty" yaml:"fallbackWord,omitempty"`
	} `json:"ai" yaml:"ai"`
}

// ReadTimeout returns the server read timeout as a duration.
func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeout) * time.Second
}

// WriteTimeout returns the server write timeout as a duration.
func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeout) * time.Second
}

// AITimeout returns the per-call AI timeout; zero means none.
func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AI.Timeout) * time.Second
}

// Default returns a Config holding only built-in defaults.
func Default() *Config {
	c := &Config{OfficialEmail: DefaultOfficialEmail}
	c.Server.Addr = DefaultAddr
	c.Server.BodyLimitBytes = DefaultBodyLimitBytes
	c.Server.ReadTimeout = DefaultReadTimeout
	c.Server.WriteTimeout = DefaultWriteTimeout
	c.AI.Model = DefaultModel
	c.AI.FallbackWord = DefaultFallbackWord
	return c
}

// detectConfigFormat picks the parser from the file extension,
// case-insensitively. Anything but .yaml and .yml is treated as JSON.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

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

// Load builds the configuration.
//
// Parameters:
//   - configPath: Path to a .json, .yaml or .yml file; when empty the
//     BFHL_CONFIG_FILE environment variable is consulted, and when that is
//     empty too only defaults and environment overrides apply
//
// Returns:
//   - *Config: The resolved configuration
//   - error: When the file cannot be read or parsed, or PORT is not a valid port
//
// Configuration Priority:
//  1. Default values are set
//  2. Config file values override defaults; invalid values fall back to defaults
//  3. OFFICIAL_EMAIL, GEMINI_API_KEY and PORT override the file when set
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

	if err := applyEnv(config); err != nil {
		return nil, err
	}

	config.normalize()
	return config, nil
}

func applyEnv(config *Config) error {
	if v := os.Getenv(EnvOfficialEmail); v != "" {
		config.OfficialEmail = v
	}
	if v := os.Getenv(EnvGeminiAPIKey); v != "" {
		config.AI.APIKey = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.ParseUint(strings.TrimSpace(v), 10, 16)
		if err != nil || port == 0 {
			return fmt.Errorf("invalid %s %q: must be a port number between 1 and 65535", EnvPort, v)
		}
		config.Server.Addr = ":" + strconv.FormatUint(port, 10)
	}
	return nil
}

// normalize replaces zero or negative values with their defaults.
func (c *Config) normalize() {
	if strings.TrimSpace(c.OfficialEmail) == "" {
		c.OfficialEmail = DefaultOfficialEmail
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.BodyLimitBytes <= 0 {
		c.Server.BodyLimitBytes = DefaultBodyLimitBytes
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.AI.Model == "" {
		c.AI.Model = DefaultModel
	}
	if c.AI.Timeout < 0 {
		c.AI.Timeout = 0
	}
	if c.AI.FallbackWord == "" {
		c.AI.FallbackWord = DefaultFallbackWord
	}
}
