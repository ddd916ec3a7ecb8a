// Package session keeps an in-memory registry of live games keyed by uuid.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chessboard-go/internal/engine"
)

// Session is one registered game.
type Session struct {
	ID        uuid.UUID
	StartFEN  string
	Game      *engine.Game
	Moves     int // applied moves since the last reset
	CreatedAt time.Time
	UpdatedAt time.Time
}
