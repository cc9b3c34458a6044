package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bothint/internal/domain"

	"github.com/pelletier/go-toml/v2"
)

// CurrentVersion is the config file format version written by Save
const CurrentVersion = 1

// Config represents the application configuration
type Config struct {
	Version  int              `toml:"version"`
	Hint     HintSettings     `toml:"hint"`
	Keys     KeySettings      `toml:"keys"`
	Commands []domain.Command `toml:"commands"`
}

// HintSettings controls the layout of the suggestion list
type HintSettings struct {
	VisibleRows int `toml:"visible_rows"`
	RowHeight   int `toml:"row_height"` // terminal lines per row
	Width       int `toml:"width"`
}

// KeySettings overrides the suggestion list key bindings; empty keeps the default
type KeySettings struct {
	Up     []string `toml:"up,omitempty"`
	Down   []string `toml:"down,omitempty"`
	Next   []string `toml:"next,omitempty"`
	Select []string `toml:"select,omitempty"`
	Close  []string `toml:"close,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/bothint/config.toml or the platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "bothint", "config.toml")
}

// NewConfigService creates a config service for path; empty means DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

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

// Parse decodes a TOML document, fills unset values and validates it
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = CurrentVersion
	}
	if c.Hint.VisibleRows == 0 {
		c.Hint.VisibleRows = 3
	}
	if c.Hint.RowHeight == 0 {
		c.Hint.RowHeight = 1
	}
	if c.Hint.Width == 0 {
		c.Hint.Width = 60
	}
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if c.Version > CurrentVersion {
		return fmt.Errorf("unsupported config version %d", c.Version)
	}
	if c.Hint.VisibleRows < 1 {
		return fmt.Errorf("hint.visible_rows must be at least 1, got %d", c.Hint.VisibleRows)
	}
	if c.Hint.RowHeight < 1 {
		return fmt.Errorf("hint.row_height must be at least 1, got %d", c.Hint.RowHeight)
	}
	if c.Hint.Width < 10 {
		return fmt.Errorf("hint.width must be at least 10, got %d", c.Hint.Width)
	}
	for i, cmd := range c.Commands {
		if domain.NormalizeName(cmd.Command) == "" {
			return fmt.Errorf("commands[%d]: empty command name", i)
		}
	}
	return nil
}

// DefaultConfig returns the default configuration with a moderation command set
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Hint: HintSettings{
			VisibleRows: 3,
			RowHeight:   1,
			Width:       60,
		},
		Commands: []domain.Command{
			{Command: "ban", Description: "Ban a user from the chat"},
			{Command: "mute", Description: "Mute a user for a while"},
			{Command: "kick", Description: "Remove a user from the chat"},
			{Command: "warn", Description: "Send a user a warning"},
			{Command: "help", Description: "Show what the bot can do"},
			{Command: "start", Description: "Start a conversation with the bot"},
			{Command: "settings", Description: "Change bot settings"},
		},
	}
}
