package config

import (
	"os"
	"path/filepath"

	"pickd/internal/errors"

	"gopkg.in/yaml.v3"
)

// Config represents the picker configuration structure. It covers the
// external ranking engine, session defaults, the preview pane, and theme
// color overrides.
type Config struct {
	Engine struct {
		Command string   `yaml:"command"` // External ranking command; empty means the built-in "pickd rank"
		Args    []string `yaml:"args"`    // Extra arguments placed before the query
	} `yaml:"engine"`
	Picker struct {
		Directory string   `yaml:"directory"` // Initial working directory; empty means the process cwd
		Query     string   `yaml:"query"`     // Initial query text
		Ignore    []string `yaml:"ignore"`    // Glob patterns excluded from the built-in listing
	} `yaml:"picker"`
	Preview struct {
		Disabled bool `yaml:"disabled"`  // Hide the preview pane in the standalone TUI
		MaxBytes int  `yaml:"max_bytes"` // Truncate preview content beyond this size
	} `yaml:"preview"`
	Theme struct {
		Selected  string `yaml:"selected"`  // Highlight color for the selected row
		Directory string `yaml:"directory"` // Color for directory entries
		Header    string `yaml:"header"`    // Color for the working directory header
		Prompt    string `yaml:"prompt"`    // Color for the query prompt
		Help      string `yaml:"help"`      // Color for the status/help bar
	} `yaml:"theme"`
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Picker.Ignore = []string{".git"}
	cfg.Preview.MaxBytes = 50000
	return cfg
}

// LoadConfig loads configuration from the default location
// (~/.config/pickd/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "pickd", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "error reading config file")
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if tempCfg.Engine.Command != "" {
		cfg.Engine.Command = tempCfg.Engine.Command
		cfg.Engine.Args = tempCfg.Engine.Args
	}
	if tempCfg.Picker.Directory != "" {
		cfg.Picker.Directory = tempCfg.Picker.Directory
	}
	if tempCfg.Picker.Query != "" {
		cfg.Picker.Query = tempCfg.Picker.Query
	}
	if len(tempCfg.Picker.Ignore) > 0 {
		cfg.Picker.Ignore = tempCfg.Picker.Ignore
	}
	cfg.Preview.Disabled = tempCfg.Preview.Disabled
	if tempCfg.Preview.MaxBytes > 0 {
		cfg.Preview.MaxBytes = tempCfg.Preview.MaxBytes
	}
	if tempCfg.Theme.Selected != "" {
		cfg.Theme.Selected = tempCfg.Theme.Selected
	}
	if tempCfg.Theme.Directory != "" {
		cfg.Theme.Directory = tempCfg.Theme.Directory
	}
	if tempCfg.Theme.Header != "" {
		cfg.Theme.Header = tempCfg.Theme.Header
	}
	if tempCfg.Theme.Prompt != "" {
		cfg.Theme.Prompt = tempCfg.Theme.Prompt
	}
	if tempCfg.Theme.Help != "" {
		cfg.Theme.Help = tempCfg.Theme.Help
	}

	return cfg, nil
}
