// Package config loads whisker settings from TOML.
//
// Settings are layered: [Default] values, then an optional file, then
// command-line flags applied by the caller. A file looks like:
//
//	expression = "angry"
//	cache_size = 5
//	background = "#1e1e2e"   # or an SVG color name such as "navy"
//	log_level  = "debug"
//	log_file   = "/tmp/whisker.log"
//
//	[serve]
//	addr = "127.0.0.1:8080"
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/whisker/pkg/cache"
	"github.com/matzehuels/whisker/pkg/errors"
	"github.com/matzehuels/whisker/pkg/face"
)

// FileName is the config file looked up in the user config directory.
const FileName = "config.toml"

// Config is the full set of settings.
type Config struct {
	Expression face.Expression `toml:"expression"`
	CacheSize  int             `toml:"cache_size"`
	Background string          `toml:"background"`
	LogLevel   string          `toml:"log_level"`
	LogFile    string          `toml:"log_file"`
	Serve      Serve           `toml:"serve"`
}

// Serve configures the preview HTTP server.
type Serve struct {
	Addr string `toml:"addr"`
	// MaxCells caps the cols/rows a client may request.
	MaxCells int `toml:"max_cells"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Expression: face.Neutral,
		CacheSize:  cache.DefaultSize,
		LogLevel:   "info",
		Serve: Serve{
			Addr:     "127.0.0.1:8080",
			MaxCells: 400,
		},
	}
}

// Load reads path over the defaults. A missing file is an error; use
// [LoadDefault] for optional lookup.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return decode(path, string(data))
}

// Parse decodes TOML text over the defaults.
func Parse(text string) (Config, error) {
	return decode("config", text)
}

// decode applies text over the defaults, rejects keys that map to no
// field and validates the result. name labels error messages.
func decode(name, text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", name)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", name, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// LoadDefault loads the file at [Path] if it exists and returns the
// defaults otherwise. The returned string is the file used, if any.
func LoadDefault() (Config, string, error) {
	path, err := Path()
	if err != nil {
		return Default(), "", nil
	}
	if _, err := os.Stat(path); err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// Path returns the default config file location
// ($XDG_CONFIG_HOME/whisker/config.toml, or ~/.config/whisker/config.toml).
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "whisker", FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "whisker", FileName), nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if !c.Expression.Valid() {
		return errors.New(errors.ErrCodeInvalidExpression, "invalid expression %d", c.Expression)
	}
	if err := errors.ValidateCacheSize(c.CacheSize); err != nil {
		return err
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Serve.MaxCells < 1 || c.Serve.MaxCells > errors.MaxCells {
		return errors.New(errors.ErrCodeInvalidConfig, "serve.max_cells must be between 1 and %d, got %d", errors.MaxCells, c.Serve.MaxCells)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, errors.Wrap(errors.ErrCodeInvalidConfig, err, "log_level")
	}
	return lvl, nil
}
