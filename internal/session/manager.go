package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Manager owns every live game. Moves on one game are serialised by the
// manager's lock; readers of a returned Session must not race with Move.
type Manager struct {
	mu    sync.RWMutex
	games map[uuid.UUID]*Session
}

// NewManager creates an empty registry.
func NewManager() *Manager {
	return &Manager{games: make(map[uuid.UUID]*Session)}
}

// NewGame registers a game starting from fen. An empty fen means the
// standard starting position.
func (m *Manager) NewGame(fen string) (*Session, error) {
	if fen == "" {
		fen = engine.InitialFEN
	}
	game, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	s := &Session{
		ID:        uuid.New(),
		StartFEN:  fen,
		Game:      game,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[s.ID] = s
	return s, nil
}

// Get returns the session registered under id.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
	}
	return s, nil
}

// Reset replaces the game under id with a fresh instance built from the
// session's starting position. The id is kept.
func (m *Manager) Reset(id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "reset game %s", id)
	}
	game, err := engine.NewGameFromFEN(s.StartFEN)
	if err != nil {
		return nil, errors.Wrap(err, "reset")
	}
	s.Game = game
	s.Moves = 0
	s.UpdatedAt = time.Now()
	return s, nil
}

// Delete removes the game under id.
func (m *Manager) Delete(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "delete game %s", id)
	}
	delete(m.games, id)
	return nil
}

// Len returns the number of registered games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// Move submits a move to the game under id. A rejected move leaves the
// session untouched and returns the engine's error unchanged.
func (m *Manager) Move(id uuid.UUID, from, to chess.Square) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "move in game %s", id)
	}
	if err := s.Game.MovePiece(from, to); err != nil {
		return s, err
	}
	s.Moves++
	s.UpdatedAt = time.Now()
	return s, nil
}
