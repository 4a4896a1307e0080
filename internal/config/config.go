// Package config handles configuration for the wastenot client.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/wastenot/wastenot/internal/models"
)

// EnvPrefix is the prefix for environment overrides (WASTENOT_BASE_URL, ...)
const EnvPrefix = "WASTENOT"

// MarkdownConfig configures markdown rendering of assistant replies
type MarkdownConfig struct {
	Style       string `json:"style" mapstructure:"style"`               // "dark", "light", or path to JSON theme
	EnableEmoji bool   `json:"enable_emoji" mapstructure:"enable_emoji"` // Convert :emoji: to unicode
}

// Config represents the user configuration
type Config struct {
	// BaseURL is the address of the Waste Not service, e.g. http://localhost:8123
	BaseURL string `json:"base_url" mapstructure:"base_url"`
	// RequestTimeout is the per-request deadline in seconds. 0 disables it.
	RequestTimeout int `json:"request_timeout" mapstructure:"request_timeout"`
	// RateLimit caps outbound requests per second. 0 disables throttling.
	RateLimit       float64        `json:"rate_limit" mapstructure:"rate_limit"`
	CopyToClipboard bool           `json:"copy_to_clipboard" mapstructure:"copy_to_clipboard"`
	TUITheme        string         `json:"tui_theme,omitempty" mapstructure:"tui_theme"`
	LogLevel        string         `json:"log_level" mapstructure:"log_level"`
	LogFile         string         `json:"log_file,omitempty" mapstructure:"log_file"`
	Telemetry       bool           `json:"telemetry" mapstructure:"telemetry"`
	Markdown        MarkdownConfig `json:"markdown" mapstructure:"markdown"`
}

// Timeout returns RequestTimeout as a duration
func (c Config) Timeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return 0
	}
	return time.Duration(c.RequestTimeout) * time.Second
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:       "dark",
		EnableEmoji: true,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		BaseURL:         models.DefaultBaseURL,
		RequestTimeout:  30,
		RateLimit:       0,
		CopyToClipboard: false,
		TUITheme:        "harvest",
		LogLevel:        "info",
		Telemetry:       false,
		Markdown:        DefaultMarkdownConfig(),
	}
}

// GetConfigDir returns the configuration directory path.
// WASTENOT_HOME overrides the default ~/.wastenot.
func GetConfigDir() (string, error) {
	if dir := os.Getenv(EnvPrefix + "_HOME"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".wastenot"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// GetLogPath returns the log file path from config, defaulting into the config dir
func GetLogPath(cfg Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "logs", "wastenot.log"), nil
}

// newViper builds a viper instance seeded with defaults. withEnv binds the
// WASTENOT_* environment overrides.
func newViper(withEnv bool) *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	if withEnv {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	def := DefaultConfig()
	v.SetDefault("base_url", def.BaseURL)
	v.SetDefault("request_timeout", def.RequestTimeout)
	v.SetDefault("rate_limit", def.RateLimit)
	v.SetDefault("copy_to_clipboard", def.CopyToClipboard)
	v.SetDefault("tui_theme", def.TUITheme)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("telemetry", def.Telemetry)
	v.SetDefault("markdown.style", def.Markdown.Style)
	v.SetDefault("markdown.enable_emoji", def.Markdown.EnableEmoji)
	return v
}

// LoadConfig loads the effective configuration: defaults, then the config
// file, then WASTENOT_* environment variables.
func LoadConfig() (Config, error) {
	return load(true)
}

// LoadFileConfig loads defaults and the config file only. Use it when the
// result is written back, so environment overrides stay out of the file.
func LoadFileConfig() (Config, error) {
	return load(false)
}

func load(withEnv bool) (Config, error) {
	v := newViper(withEnv)

	configPath, err := GetConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}

	// A missing file is fine, defaults still apply
	if _, statErr := os.Stat(configPath); statErr == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Keys returns the settable configuration keys in sorted order
func Keys() []string {
	keys := []string{
		"base_url",
		"request_timeout",
		"rate_limit",
		"copy_to_clipboard",
		"tui_theme",
		"log_level",
		"log_file",
		"telemetry",
		"markdown.style",
		"markdown.enable_emoji",
	}
	sort.Strings(keys)
	return keys
}

// Set updates a single key on cfg from its string form
func Set(cfg *Config, key, value string) error {
	switch key {
	case "base_url":
		cfg.BaseURL = strings.TrimRight(value, "/")
	case "request_timeout":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("request_timeout must be a non-negative integer, got %q", value)
		}
		cfg.RequestTimeout = n
	case "rate_limit":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("rate_limit must be a non-negative number, got %q", value)
		}
		cfg.RateLimit = f
	case "copy_to_clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("copy_to_clipboard must be true or false, got %q", value)
		}
		cfg.CopyToClipboard = b
	case "tui_theme":
		cfg.TUITheme = value
	case "log_level":
		switch value {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = value
		default:
			return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", value)
		}
	case "log_file":
		cfg.LogFile = value
	case "telemetry":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("telemetry must be true or false, got %q", value)
		}
		cfg.Telemetry = b
	case "markdown.style":
		cfg.Markdown.Style = value
	case "markdown.enable_emoji":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("markdown.enable_emoji must be true or false, got %q", value)
		}
		cfg.Markdown.EnableEmoji = b
	default:
		return fmt.Errorf("unknown config key %q (available: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}
