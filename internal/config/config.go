package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the configuration file looked up in the editor root.
const FileName = "zeno.toml"

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "ZENO_"

// Config holds session settings. Zero values are never used directly;
// Default() supplies the baseline and Load layers file and environment
// values on top.
type Config struct {
	// DefaultMode is the mode activated for new sessions.
	DefaultMode string `toml:"default_mode"`

	// TabWidth is the display width of a tab stop.
	TabWidth int `toml:"tab_width"`

	// LogLevel selects the minimum diagnostic severity.
	LogLevel string `toml:"log_level"`

	// Scripting enables the embedded script host.
	Scripting bool `toml:"scripting"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		DefaultMode: "vim",
		TabWidth:    4,
		LogLevel:    "info",
		Scripting:   false,
	}
}

// Load resolves the configuration for an editor rooted at root: defaults,
// then zeno.toml from the root if present, then ZENO_* environment
// overrides. A missing file is not an error; a malformed one is.
func Load(root string) (Config, error) {
	cfg := Default()

	path := filepath.Join(root, FileName)
	if err := loadFile(&cfg, path); err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	cfg.normalize()
	return cfg, nil
}

// LoadFile resolves defaults plus a single TOML file, without the
// environment layer. Used by the watcher on reload.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if err := loadFile(&cfg, path); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays ZENO_* variables. Unparseable values are ignored so
// a stray variable cannot poison a session.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvPrefix + "MODE"); ok && v != "" {
		cfg.DefaultMode = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "TAB_WIDTH"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TabWidth = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SCRIPTING"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Scripting = b
		}
	}
}

// normalize clamps values into usable ranges.
func (c *Config) normalize() {
	if c.TabWidth < 1 {
		c.TabWidth = 1
	}
	if c.TabWidth > 16 {
		c.TabWidth = 16
	}
	c.DefaultMode = strings.ToLower(strings.TrimSpace(c.DefaultMode))
	if c.DefaultMode == "" {
		c.DefaultMode = Default().DefaultMode
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = Default().LogLevel
	}
}
