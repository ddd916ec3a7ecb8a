package config

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// GameConfig holds settings for new games.
type GameConfig struct {
	// StartFEN is the position every new or reset game starts from
	StartFEN string
}

// NewGameConfig creates a GameConfig starting from the standard position.
func NewGameConfig() *GameConfig {
	return &GameConfig{StartFEN: engine.InitialFEN}
}

// Validate checks that the starting position can be loaded.
func (g *GameConfig) Validate() error {
	if g.StartFEN == "" {
		return fmt.Errorf("empty starting position: %w", errors.ErrInvalidConfig)
	}
	if _, err := engine.NewGameFromFEN(g.StartFEN); err != nil {
		return fmt.Errorf("starting position %q: %v: %w", g.StartFEN, err, errors.ErrInvalidConfig)
	}
	return nil
}

func validateVerbosity(level int) error {
	if level < Silent || level > Moves {
		return fmt.Errorf("verbosity %d outside %d..%d: %w", level, Silent, Moves, errors.ErrInvalidConfig)
	}
	return nil
}
