package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultDatasetURL is used when no dataset URL is configured
const DefaultDatasetURL = "https://restcountries.com/v2/all?fields=name,region,code,capital"

// Config represents the application configuration
type Config struct {
	Version             int        `toml:"version"`
	DatasetURL          string     `toml:"dataset_url"`
	FetchTimeoutSeconds int        `toml:"fetch_timeout_seconds"`
	UISettings          UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowRegion  bool `toml:"show_region"`
	ShowCapital bool `toml:"show_capital"`
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// service is the concrete implementation
type service struct {
	filePath string
}

// NewService creates a new config service rooted at the user config dir
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	atlasDir := filepath.Join(configDir, "atlas")
	os.MkdirAll(atlasDir, 0755)

	return &service{
		filePath: filepath.Join(atlasDir, "config.toml"),
	}
}

// Load loads the configuration from the default path
func (cs *service) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default path
func (cs *service) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Fill in anything the file leaves unset
	if cfg.DatasetURL == "" {
		cfg.DatasetURL = DefaultDatasetURL
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		cfg.FetchTimeoutSeconds = defaultFetchTimeoutSeconds
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *service) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

const defaultFetchTimeoutSeconds = 30

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:             1,
		DatasetURL:          DefaultDatasetURL,
		FetchTimeoutSeconds: defaultFetchTimeoutSeconds,
		UISettings: UISettings{
			ShowRegion:  true,
			ShowCapital: true,
		},
	}
}
