// Package config provides configuration for the chessboard driver.
package config

import (
	"io"
	"os"
)

// Verbosity levels for diagnostics written to LogFile.
const (
	Silent   = 0 // nothing
	Sessions = 1 // game created/reset, rejected moves
	Moves    = 2 // running commentary of every applied move
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// Grouped settings
	Output *OutputConfig
	Game   *GameConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Sessions,
		Output:     NewOutputConfig(),
		Game:       NewGameConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer that receives boards and envelopes.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer that receives diagnostics.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logs reports whether messages at level should be written.
func (c *Config) Logs(level int) bool {
	return c.LogFile != nil && c.Verbosity >= level
}

// Validate checks every grouped setting.
func (c *Config) Validate() error {
	if err := validateVerbosity(c.Verbosity); err != nil {
		return err
	}
	return c.Game.Validate()
}
