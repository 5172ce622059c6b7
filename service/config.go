package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harshzz13/medscribe/summarize"
)

// Config holds the full medscribe service configuration.
type Config struct {
	Listen           string `yaml:"listen"`
	MaxFileMB        int    `yaml:"max_file_mb"`
	LogLevel         string `yaml:"log_level"`
	AuthPasswordHash string `yaml:"auth_password_hash"` // bcrypt hash; empty disables auth
	DefaultLength    string `yaml:"default_length"`     // short | medium | long
}

// DefaultConfig returns sane defaults.
func DefaultConfig() *Config {
	return &Config{
		Listen:        ":8080",
		MaxFileMB:     16,
		LogLevel:      "info",
		DefaultLength: string(summarize.LengthMedium),
	}
}

// LoadConfig reads and parses a YAML config file. Returns DefaultConfig merged with the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen is required")
	}
	if c.MaxFileMB <= 0 {
		return fmt.Errorf("max_file_mb must be > 0")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log_level %q (use debug, info, warn or error)", c.LogLevel)
	}
	switch summarize.Length(c.DefaultLength) {
	case summarize.LengthShort, summarize.LengthMedium, summarize.LengthLong:
	default:
		return fmt.Errorf("unsupported default_length %q (use short, medium or long)", c.DefaultLength)
	}
	return nil
}

// MaxFileBytes returns max file size in bytes.
func (c *Config) MaxFileBytes() int64 { return int64(c.MaxFileMB) * 1024 * 1024 }
