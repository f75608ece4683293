package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	currentVersion        = 1
	defaultPageSize       = 25
	defaultCachedListings = 32
	defaultCharset        = "windows-1252"
	defaultLogLevel       = "info"
)

// Config represents the application configuration
type Config struct {
	Version          int        `toml:"version"`
	PageSize         int        `toml:"page_size"`
	HomeFile         string     `toml:"home_file,omitempty"`
	FallbackCharset  string     `toml:"fallback_charset"`
	CachedListings   int        `toml:"cached_listings"`
	MaxResponseBytes int64      `toml:"max_response_bytes"`
	LogFile          string     `toml:"log_file,omitempty"`
	LogLevel         string     `toml:"log_level"`
	UISettings       UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowTypeLabels bool   `toml:"show_type_labels"`
	ExternalOpener string `toml:"external_opener,omitempty"` // empty means the platform default
	StartURL       string `toml:"start_url,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service backed by the user's config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "burrow", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service backed by an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file a service reads and writes
func Path(cs ConfigService) string {
	if s, ok := cs.(*configService); ok {
		return s.filePath
	}
	return ""
}

// Load loads the configuration from file, or the defaults if there is none yet
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so that keys missing from the file keep their default
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Normalize replaces out-of-range values with their defaults
func (c *Config) Normalize() {
	if c.Version < 1 {
		c.Version = currentVersion
	}
	if c.PageSize < 1 {
		c.PageSize = defaultPageSize
	}
	if c.CachedListings < 1 {
		c.CachedListings = defaultCachedListings
	}
	if c.MaxResponseBytes < 0 {
		c.MaxResponseBytes = 0
	}
	if strings.TrimSpace(c.FallbackCharset) == "" {
		c.FallbackCharset = defaultCharset
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		c.LogLevel = defaultLogLevel
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:         currentVersion,
		PageSize:        defaultPageSize,
		FallbackCharset: defaultCharset,
		CachedListings:  defaultCachedListings,
		LogLevel:        defaultLogLevel,
		UISettings: UISettings{
			ShowTypeLabels: true,
		},
	}
}
