// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
)

var (
	// Game options
	startFEN = flag.String("fen", engine.InitialFEN, "Starting position in FEN (placement and side to move)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Write one JSON envelope per response")
	colorBoard   = flag.Bool("color", false, "Render boards with terminal styling")
	prompt       = flag.String("prompt", config.DefaultPrompt, "Prompt printed before each command (empty to disable)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", config.Sessions, "Verbosity: 0=silent, 1=session events, 2=every move")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyGameFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
}

// applyOutputFlags configures response formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.Color = *colorBoard
	cfg.Output.Prompt = *prompt
}

// applyGameFlags configures the starting position.
func applyGameFlags(cfg *config.Config) {
	cfg.Game.StartFEN = *startFEN
}
