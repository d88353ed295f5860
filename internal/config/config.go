package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// envDirOverride relocates the config directory, mainly for tests.
const envDirOverride = "ORACULO_CONFIG_DIR"

// envAPIKey overrides the stored API key when set.
const envAPIKey = "GEMINI_API_KEY"

type Config struct {
	Model          string  `yaml:"model"`
	APIKey         string  `yaml:"api_key,omitempty"`
	Temperature    float64 `yaml:"temperature"`
	ThinkingBudget int     `yaml:"thinking_budget"`
	Debug          bool    `yaml:"debug,omitempty"`
}

// DefaultConfig carries the sampling the oracle runs with: a high
// temperature favoring novelty, and an extended reasoning budget.
func DefaultConfig() *Config {
	return &Config{
		Model:          "gemini-3-pro-preview",
		Temperature:    0.9,
		ThinkingBudget: 32768,
	}
}

// ResolvedAPIKey returns the environment key when present, else the
// stored one. A .env file next to the binary is honored via godotenv.
func (c *Config) ResolvedAPIKey() string {
	if key := os.Getenv(envAPIKey); key != "" {
		return key
	}
	return c.APIKey
}

// HasAPIKey reports whether a credential is available from any source.
func (c *Config) HasAPIKey() bool {
	return c.ResolvedAPIKey() != ""
}

func ConfigDir() (string, error) {
	if dir := os.Getenv(envDirOverride); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "oraculo"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file, returning (nil, nil) when none exists yet.
// Environment variables from a local .env file are loaded first, best
// effort.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Model == "" {
		cfg.Model = DefaultConfig().Model
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultConfig().Temperature
	}
	if cfg.ThinkingBudget == 0 {
		cfg.ThinkingBudget = DefaultConfig().ThinkingBudget
	}

	return &cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
