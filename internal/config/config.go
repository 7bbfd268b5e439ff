package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/ytget/launchgrid/internal/hover"
	"github.com/ytget/launchgrid/internal/layout"
	"github.com/ytget/launchgrid/internal/platform"
)

// EnvPrefix prefixes every environment override, e.g. LAUNCHGRID_GRID_COLUMNS
const EnvPrefix = "LAUNCHGRID"

// Config holds the launcher configuration read from config.toml and the
// environment. Environment variables win over the file.
type Config struct {
	Grid      GridConfig      `toml:"grid"`
	Hover     HoverConfig     `toml:"hover"`
	Discovery DiscoveryConfig `toml:"discovery"`
	Storage   StorageConfig   `toml:"storage"`
	Logging   LogConfig       `toml:"logging"`
}

// GridConfig holds the page geometry.
type GridConfig struct {
	Columns int `toml:"columns" split_words:"true"`
	Rows    int `toml:"rows" split_words:"true"`
}

// HoverConfig holds the long-hover threshold.
type HoverConfig struct {
	ThresholdMS int `toml:"threshold_ms" split_words:"true"`
}

// DiscoveryConfig holds where and how installed applications are found.
type DiscoveryConfig struct {
	Roots      []string `toml:"roots" split_words:"true"`
	Pattern    string   `toml:"pattern" split_words:"true"`
	MaxDepth   int      `toml:"max_depth" split_words:"true"`
	DebounceMS int      `toml:"debounce_ms" split_words:"true"`
	Watch      bool     `toml:"watch" split_words:"true"`
}

// StorageConfig holds file locations.
type StorageConfig struct {
	LayoutPath string `toml:"layout_path" split_words:"true"`
	LockPath   string `toml:"lock_path" split_words:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `toml:"level" split_words:"true"`
	Development bool   `toml:"development" split_words:"true"`
	File        string `toml:"file" split_words:"true"`
}

// Default returns the configuration for the current platform.
func Default() *Config {
	home, _ := os.UserHomeDir()
	dataDir, err := platform.DataDir()
	if err != nil {
		dataDir = filepath.Join(os.TempDir(), platform.AppDirName)
	}

	return &Config{
		Grid: GridConfig{
			Columns: layout.DefaultColumns,
			Rows:    layout.DefaultRows,
		},
		Hover: HoverConfig{
			ThresholdMS: int(hover.DefaultThreshold / time.Millisecond),
		},
		Discovery: DiscoveryConfig{
			Roots:      platform.DefaultRoots(runtime.GOOS, home),
			Pattern:    platform.DefaultBundlePattern(runtime.GOOS),
			MaxDepth:   platform.DefaultMaxDepth(runtime.GOOS),
			DebounceMS: 300,
			Watch:      true,
		},
		Storage: StorageConfig{
			LayoutPath: filepath.Join(dataDir, platform.LayoutFileName),
			LockPath:   filepath.Join(dataDir, platform.LockFileName),
		},
		Logging: LogConfig{
			Level: "info",
			File:  filepath.Join(dataDir, platform.LogFileName),
		},
	}
}

// DefaultPath returns the location of config.toml
func DefaultPath() string {
	dir, err := platform.ConfigDir()
	if err != nil {
		return platform.ConfigFileName
	}
	return filepath.Join(dir, platform.ConfigFileName)
}

// Load builds the configuration from defaults, then the TOML file at path
// (a missing file is not an error), then LAUNCHGRID_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	cfg.expandPaths()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads configuration or returns the default on error.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if c.Grid.Columns <= 0 || c.Grid.Rows <= 0 {
		return fmt.Errorf("invalid grid %dx%d: columns and rows must be positive", c.Grid.Columns, c.Grid.Rows)
	}
	if c.Hover.ThresholdMS <= 0 {
		return fmt.Errorf("invalid hover threshold %dms", c.Hover.ThresholdMS)
	}
	if c.Discovery.MaxDepth <= 0 {
		return fmt.Errorf("invalid discovery depth %d", c.Discovery.MaxDepth)
	}
	if c.Discovery.DebounceMS < 0 {
		return fmt.Errorf("invalid debounce %dms", c.Discovery.DebounceMS)
	}
	if strings.TrimSpace(c.Storage.LayoutPath) == "" {
		return errors.New("layout path must not be empty")
	}
	return nil
}

// PageSize returns the number of slots on one page
func (c *Config) PageSize() int {
	return c.Grid.Columns * c.Grid.Rows
}

// HoverThreshold returns the long-hover threshold as a duration
func (c *Config) HoverThreshold() time.Duration {
	return time.Duration(c.Hover.ThresholdMS) * time.Millisecond
}

// Debounce returns the discovery watcher quiet period
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Discovery.DebounceMS) * time.Millisecond
}

func (c *Config) expandPaths() {
	for i, root := range c.Discovery.Roots {
		c.Discovery.Roots[i] = expandHome(root)
	}
	c.Storage.LayoutPath = expandHome(c.Storage.LayoutPath)
	c.Storage.LockPath = expandHome(c.Storage.LockPath)
	c.Logging.File = expandHome(c.Logging.File)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
