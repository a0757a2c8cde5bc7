package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"xltotxt/internal/logger"
	"xltotxt/internal/prompt"
)

type Config struct {
	Output    OutputConfig    `toml:"output"`
	Discovery DiscoveryConfig `toml:"discovery"`
	Prompt    PromptConfig    `toml:"prompt"`
	Log       LogConfig       `toml:"log"`
}

type OutputConfig struct {
	Extension string `toml:"extension"`
	Encoding  string `toml:"encoding"`
}

type DiscoveryConfig struct {
	Pattern         string `toml:"pattern"`
	StrictExtension bool   `toml:"strict_extension"`
}

type PromptConfig struct {
	Mode string `toml:"mode"`
}

type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig loads configuration from the specified config file path.
// An empty path yields the defaults; nothing is ever written back to disk.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return &config, nil
}

// Validate checks the values that have a fixed set of options
func (c *Config) Validate() error {
	switch c.Prompt.Mode {
	case prompt.ModeAuto, prompt.ModeLine, prompt.ModeTUI:
	default:
		return fmt.Errorf("prompt mode %q: must be auto, line or tui", c.Prompt.Mode)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if !strings.HasPrefix(c.Output.Extension, ".") {
		return fmt.Errorf("output extension %q must start with a dot", c.Output.Extension)
	}
	return nil
}

func (c *Config) applyDefaults() {
	// Set defaults if missing
	if c.Output.Extension == "" {
		c.Output.Extension = ".txt"
	}
	if c.Output.Encoding == "" {
		c.Output.Encoding = "utf-8"
	}
	if c.Discovery.Pattern == "" {
		c.Discovery.Pattern = ".xls"
	}
	if c.Prompt.Mode == "" {
		c.Prompt.Mode = prompt.ModeAuto
	}
	c.Prompt.Mode = strings.ToLower(c.Prompt.Mode)
	if c.Log.File == "" {
		c.Log.File = logger.DefaultFile()
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
