package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Catalog CatalogConfig `yaml:"catalog"`
	TUI     TUIConfig     `yaml:"tui"`
	Log     LogConfig     `yaml:"log"`
}

// SearchConfig holds search pipeline settings.
type SearchConfig struct {
	Debounce   string `yaml:"debounce"` // e.g., "500ms", "1s"
	IgnoreCase bool   `yaml:"ignore_case"`
}

// CatalogConfig holds the candidate list. Empty means the built-in menu.
type CatalogConfig struct {
	Items []string `yaml:"items"`
}

// TUIConfig holds TUI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		Search: SearchConfig{
			Debounce:   "500ms",
			IgnoreCase: false,
		},
		TUI: TUIConfig{
			Theme: "auto",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DebounceInterval parses Search.Debounce.
func (c Config) DebounceInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Search.Debounce)
	if err != nil {
		return 0, fmt.Errorf("search.debounce: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("search.debounce: must not be negative, got %s", d)
	}
	return d, nil
}

// LogPath returns Log.File, or the default log file when unset.
func (c Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return LogFile()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := c.DebounceInterval(); err != nil {
		return err
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	switch c.TUI.Theme {
	case "auto", "dark", "light", "notty":
	default:
		return fmt.Errorf("tui.theme: unknown theme %q", c.TUI.Theme)
	}
	return nil
}

// Load reads the config from disk. If the file doesn't exist, returns defaults.
func Load() (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(ConfigFile())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parsing %s: %w", ConfigFile(), err)
	}

	if err := cfg.Validate(); err != nil {
		return Defaults(), fmt.Errorf("invalid config %s: %w", ConfigFile(), err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigFile(), data, 0o644)
}

// IsFirstRun returns true if the config file does not exist.
func IsFirstRun() bool {
	_, err := os.Stat(ConfigFile())
	return os.IsNotExist(err)
}
