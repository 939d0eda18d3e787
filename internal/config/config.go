package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zhubert/numbox/internal/calc"
	"github.com/zhubert/numbox/internal/errors"
)

// EnvPath overrides the config file location when set.
const EnvPath = "NUMBOX_CONFIG"

// Modes accepted for the mode setting and per-field overrides.
const (
	ModeInteger = "integer"
	ModeFloat   = "float"
)

// Field describes one numeric field shown in the form
type Field struct {
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
	Mode  string `json:"mode,omitempty"` // Overrides the global mode when set
}

// Config holds the application configuration
type Config struct {
	Mode   string  `json:"mode,omitempty"`  // "integer" or "float"
	Theme  string  `json:"theme,omitempty"` // UI theme name (e.g., "dark-purple", "nord")
	Fields []Field `json:"fields"`

	mu       sync.RWMutex
	filePath string
}

// DefaultFields returns the fields used when the config defines none.
func DefaultFields() []Field {
	return []Field{
		{Label: "Amount"},
		{Label: "Quantity", Mode: ModeInteger},
		{Label: "Price"},
	}
}

// New returns an empty config that saves to path.
func New(path string) *Config {
	cfg := &Config{filePath: path}
	cfg.ensureInitialized()
	return cfg
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".numbox"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.numbox", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.ensureInitialized()
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	// Must happen before Validate() since Validate() only reads
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized fills in defaults after unmarshaling.
//
// Not thread-safe: only called from Load/New before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.Mode == "" {
		c.Mode = ModeFloat
	}
	if len(c.Fields) == 0 {
		c.Fields = DefaultFields()
	}
}

// ValidMode reports whether m names a field mode.
func ValidMode(m string) bool {
	return m == ModeInteger || m == ModeFloat
}

// Validate checks that the config is internally consistent.
// This is a read-only operation - call ensureInitialized() first if needed.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !ValidMode(c.Mode) {
		return errors.ConfigInvalid(fmt.Sprintf("unknown mode %q", c.Mode))
	}

	seen := make(map[string]bool)
	for i, f := range c.Fields {
		if f.Label == "" {
			return errors.ConfigInvalid(fmt.Sprintf("field %d has empty label", i))
		}
		if seen[f.Label] {
			return errors.ConfigInvalid(fmt.Sprintf("duplicate field label: %s", f.Label))
		}
		seen[f.Label] = true

		if f.Mode != "" && !ValidMode(f.Mode) {
			return errors.ConfigInvalid(fmt.Sprintf("field %s has unknown mode %q", f.Label, f.Mode))
		}
		if f.Value != "" {
			if _, err := calc.ParseNumber(f.Value); err != nil {
				return errors.ConfigInvalid(fmt.Sprintf("field %s has non-numeric value %q", f.Label, f.Value))
			}
		}
	}

	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the file the config saves to
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetMode returns the default field mode
func (c *Config) GetMode() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Mode
}

// SetMode sets the default field mode. Unknown modes are rejected.
func (c *Config) SetMode(mode string) bool {
	if !ValidMode(mode) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Mode = mode
	return true
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetFields returns a copy of the configured fields
func (c *Config) GetFields() []Field {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fields := make([]Field, len(c.Fields))
	copy(fields, c.Fields)
	return fields
}

// FieldMode returns the effective mode for a field: its override or the global mode.
func (c *Config) FieldMode(f Field) string {
	if f.Mode != "" {
		return f.Mode
	}
	return c.GetMode()
}

// SetFieldValue stores the value of the field with the given label.
// Returns false if no such field exists.
func (c *Config) SetFieldValue(label, value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.Fields {
		if c.Fields[i].Label == label {
			c.Fields[i].Value = value
			return true
		}
	}
	return false
}
