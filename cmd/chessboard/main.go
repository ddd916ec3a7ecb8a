// chessboard is a line-oriented terminal driver for a two-player chess game.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessboard-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessboard-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := redirectStreams(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	d, err := newDriver(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		os.Exit(1)
	}

	if err := d.run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// redirectStreams points the log and output streams at the files named by
// -l/-L and -o/-a. -L wins when both log flags are given.
func redirectStreams(cfg *config.Config) error {
	if name, appendMode := logTarget(); name != "" {
		file, err := openStream(name, appendMode)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		cfg.SetLog(file)
	}

	if *outputFile != "" {
		file, err := openStream(*outputFile, *appendOutput)
		if err != nil {
			return fmt.Errorf("opening output file: %w", err)
		}
		cfg.SetOutput(file)
	}
	return nil
}

func logTarget() (name string, appendMode bool) {
	if *appendLog != "" {
		return *appendLog, true
	}
	return *logFile, false
}

// openStream truncates name, or appends to it when appendMode is set.
func openStream(name string, appendMode bool) (*os.File, error) {
	mode := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendMode {
		mode = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	return os.OpenFile(name, mode, 0644) //nolint:gosec // G302: user-created log and output files
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessboard [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess by typing moves as board coordinates.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\n%s", helpText)
}
