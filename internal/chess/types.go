// Package chess provides core chess types and operations.
package chess

import "fmt"

// Player represents the side owning a piece or holding the move.
// The value doubles as the sign of that side's piece codes.
type Player int8

const (
	Black Player = -1
	White Player = 1
)

// String returns the string representation of a player.
func (p Player) String() string {
	if p == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite player.
func (p Player) Opposite() Player {
	if p == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a pawn advance for the player.
// White moves toward row 0, Black toward row 7.
func (p Player) Forward() int {
	if p == White {
		return -1
	}
	return 1
}

// Piece is a signed piece code. Zero is an empty square, the magnitude is
// the piece type and the sign is the owner (positive White, negative Black).
type Piece int8

const (
	Empty  Piece = 0
	Pawn   Piece = 1
	Rook   Piece = 2
	Knight Piece = 3
	Bishop Piece = 4
	Queen  Piece = 5
	King   Piece = 6
)

// MakePiece creates the code of a piece of the given type owned by player.
func MakePiece(player Player, kind Piece) Piece {
	return kind.Kind() * Piece(player)
}

// W creates a white piece.
func W(kind Piece) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Piece) Piece {
	return MakePiece(Black, kind)
}

// Kind strips the owner from a piece code.
func (p Piece) Kind() Piece {
	if p < 0 {
		return -p
	}
	return p
}

// Owner returns the player owning the piece. ok is false for an empty square.
func (p Piece) Owner() (player Player, ok bool) {
	switch {
	case p > 0:
		return White, true
	case p < 0:
		return Black, true
	}
	return 0, false
}

// BelongsTo reports whether the piece is owned by player.
func (p Piece) BelongsTo(player Player) bool {
	owner, ok := p.Owner()
	return ok && owner == player
}

// IsEnemyOf reports whether p and other are both pieces with different owners.
func (p Piece) IsEnemyOf(other Piece) bool {
	return (p > 0 && other < 0) || (p < 0 && other > 0)
}

// String returns the name of the piece type.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if k := int(p.Kind()); k < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece,
// upper case for White, lower case for Black and '.' for empty.
func (p Piece) Letter() byte {
	letters := []byte{'.', 'P', 'R', 'N', 'B', 'Q', 'K'}
	k := int(p.Kind())
	if k >= len(letters) {
		return '?'
	}
	if p < 0 {
		return letters[k] + ('a' - 'A')
	}
	return letters[k]
}

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Square is a board coordinate. Row 0 is Black's back rank, row 7 White's.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for constructing a Square.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether both coordinates lie in [0,7].
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dr rows and dc columns away.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String formats the square as "(row,col)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}
