package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"popover/internal/geometry"
)

const fileName = "config.yaml"

type Config struct {
	Theme         string        `yaml:"theme"`
	LogLevel      string        `yaml:"log_level"`
	LogFile       string        `yaml:"log_file"`
	Breakpoint    int           `yaml:"breakpoint"`
	Gap           string        `yaml:"gap"`
	Spacing       SpacingConfig `yaml:"spacing"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	Menu          MenuConfig    `yaml:"menu"`
}

// SpacingConfig is the gap step table in terminal cells.
type SpacingConfig struct {
	Steps      []float64 `yaml:"steps"`
	DefaultKey int       `yaml:"default_key"`
}

type MenuConfig struct {
	Label string   `yaml:"label"`
	Items []string `yaml:"items"`
}

var themes = map[string]bool{"latte": true, "frappe": true, "macchiato": true, "mocha": true}

func DefaultConfig() Config {
	return Config{
		Theme:      "mocha",
		LogLevel:   "info",
		Breakpoint: 80,
		Gap:        "3",
		Spacing: SpacingConfig{
			Steps:      []float64{0, 0, 1, 2, 3, 4, 6, 8},
			DefaultKey: 3,
		},
		FrameInterval: 16 * time.Millisecond,
		Menu: MenuConfig{
			Label: "☰ Menu",
			Items: []string{"New chat", "Rename", "Export", "Settings", "Sign out"},
		},
	}
}

// Load reads the config from the default location.
func Load() (Config, error) {
	return LoadFrom(Path(""))
}

// LoadFromDir reads config.yaml from dir.
func LoadFromDir(dir string) (Config, error) {
	return LoadFrom(Path(dir))
}

// LoadFrom reads a config file. A missing file yields defaults. Fields left
// out of the file keep their defaults.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.Theme == "" {
		cfg.Theme = "mocha"
	}
	return cfg, nil
}

// Validate reports every setting that cannot be used.
func (c Config) Validate() error {
	var errs []error
	if !themes[c.Theme] {
		errs = append(errs, fmt.Errorf("unknown theme %q", c.Theme))
	}
	if c.Breakpoint <= 0 {
		errs = append(errs, fmt.Errorf("breakpoint must be positive, got %d", c.Breakpoint))
	}
	if !c.SpacingTable().Valid() {
		errs = append(errs, errors.New("spacing steps must be non-empty, non-negative, non-decreasing and contain default_key"))
	}
	if c.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("frame_interval must be positive, got %s", c.FrameInterval))
	}
	if len(c.Menu.Items) == 0 {
		errs = append(errs, errors.New("menu needs at least one item"))
	}
	return errors.Join(errs...)
}

// SpacingTable converts the configured steps for the positioning engine.
func (c Config) SpacingTable() geometry.Spacing {
	return geometry.Spacing{Steps: c.Spacing.Steps, DefaultKey: c.Spacing.DefaultKey}
}

// Path returns the config file location. An empty dir means
// $XDG_CONFIG_HOME/popover, falling back to ~/.config/popover.
func Path(dir string) string {
	if dir != "" {
		return filepath.Join(dir, fileName)
	}
	return filepath.Join(DefaultDir(), fileName)
}

// DefaultDir is the directory holding config and data files.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "popover")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "popover")
	}
	return filepath.Join(home, ".config", "popover")
}

// WriteDefault writes DefaultConfig to path. An existing file is left alone
// and reported as os.ErrExist.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, os.ErrExist)
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
