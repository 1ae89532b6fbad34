// Package cli implements the whisker command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/whisker/pkg/cache"
	"github.com/matzehuels/whisker/pkg/config"
	"github.com/matzehuels/whisker/pkg/errors"
	"github.com/matzehuels/whisker/pkg/grid"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "whisker"

	defaultCols  = 40
	defaultRows  = 20
	defaultScale = 8
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger    *log.Logger
	Config    config.Config
	SessionID string

	stderr  io.Writer
	logFile *os.File
	flags   rootFlags
}

// rootFlags are the persistent flags that override config values.
type rootFlags struct {
	configPath string
	verbose    bool
	expression string
	cacheSize  int
	background string
	logFile    string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:    newLogger(w, level),
		Config:    config.Default(),
		SessionID: uuid.NewString(),
		stderr:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Close releases the log file, if one was opened.
func (c *CLI) Close() error {
	if c.logFile == nil {
		return nil
	}
	err := c.logFile.Close()
	c.logFile = nil
	return err
}

// =============================================================================
// Store Factory
// =============================================================================

// newStore builds a rasterization store sized from the config.
func (c *CLI) newStore() (*cache.Store, error) {
	return cache.NewStore(
		cache.WithSize(c.Config.CacheSize),
		cache.WithLogger(c.Logger),
	)
}

// background parses the configured background color.
func (c *CLI) background() (grid.Color, error) {
	return config.ParseColor(c.Config.Background)
}

// =============================================================================
// Logging Destinations
// =============================================================================

// openLogFile redirects the logger to path, appending.
func (c *CLI) openLogFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "open log file")
	}
	c.logFile = f
	c.Logger.SetOutput(f)
	return nil
}

// quietForTUI keeps log lines off the alternate screen. With a log file
// open the logger already writes there.
func (c *CLI) quietForTUI() {
	if c.logFile == nil {
		c.Logger.SetOutput(io.Discard)
	}
}

// restoreAfterTUI sends logs back to stderr after the TUI exits.
func (c *CLI) restoreAfterTUI() {
	if c.logFile == nil {
		c.Logger.SetOutput(c.stderr)
	}
}
