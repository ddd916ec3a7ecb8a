package chess

import (
	"strings"
	"testing"
)

func TestInitialGrid(t *testing.T) {
	g := InitialGrid()

	tests := []struct {
		name  string
		sq    Square
		piece Piece
	}{
		// Black back rank
		{"black rook a8", Sq(0, 0), B(Rook)},
		{"black knight b8", Sq(0, 1), B(Knight)},
		{"black bishop c8", Sq(0, 2), B(Bishop)},
		{"black queen d8", Sq(0, 3), B(Queen)},
		{"black king e8", Sq(0, 4), B(King)},
		{"black bishop f8", Sq(0, 5), B(Bishop)},
		{"black knight g8", Sq(0, 6), B(Knight)},
		{"black rook h8", Sq(0, 7), B(Rook)},
		// Pawns
		{"black pawn a7", Sq(1, 0), B(Pawn)},
		{"black pawn h7", Sq(1, 7), B(Pawn)},
		{"white pawn a2", Sq(6, 0), W(Pawn)},
		{"white pawn e2", Sq(6, 4), W(Pawn)},
		// White back rank
		{"white rook a1", Sq(7, 0), W(Rook)},
		{"white knight b1", Sq(7, 1), W(Knight)},
		{"white bishop c1", Sq(7, 2), W(Bishop)},
		{"white queen d1", Sq(7, 3), W(Queen)},
		{"white king e1", Sq(7, 4), W(King)},
		{"white bishop f1", Sq(7, 5), W(Bishop)},
		{"white knight g1", Sq(7, 6), W(Knight)},
		{"white rook h1", Sq(7, 7), W(Rook)},
		// Empty squares
		{"empty e3", Sq(5, 4), Empty},
		{"empty d4", Sq(4, 3), Empty},
		{"empty f5", Sq(3, 5), Empty},
		{"empty c6", Sq(2, 2), Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.At(tt.sq); got != tt.piece {
				t.Errorf("At(%v) = %d; want %d", tt.sq, got, tt.piece)
			}
		})
	}

	t.Run("exactly one king each", func(t *testing.T) {
		if n := g.Count(W(King)); n != 1 {
			t.Errorf("white kings = %d; want 1", n)
		}
		if n := g.Count(B(King)); n != 1 {
			t.Errorf("black kings = %d; want 1", n)
		}
	})
}

func TestGridAtSet(t *testing.T) {
	var g Grid
	g.Set(Sq(4, 4), W(Queen))
	if got := g.At(Sq(4, 4)); got != W(Queen) {
		t.Errorf("At(4,4) = %d; want %d", got, W(Queen))
	}

	// Out of range access is a no-op.
	g.Set(Sq(8, 0), W(Rook))
	if got := g.At(Sq(8, 0)); got != Empty {
		t.Errorf("At(8,0) = %d; want Empty", got)
	}
	if got := g.At(Sq(-1, 3)); got != Empty {
		t.Errorf("At(-1,3) = %d; want Empty", got)
	}
}

func TestGridIsValueType(t *testing.T) {
	g := InitialGrid()
	copied := g
	copied.Set(Sq(6, 4), Empty)
	if g.At(Sq(6, 4)) != W(Pawn) {
		t.Error("mutating a copy changed the original grid")
	}
}

func TestGridFind(t *testing.T) {
	g := InitialGrid()
	sq, ok := g.Find(W(King))
	if !ok || sq != Sq(7, 4) {
		t.Errorf("Find(white king) = %v, %v; want (7,4), true", sq, ok)
	}
	if _, ok := (&Grid{}).Find(B(King)); ok {
		t.Error("Find on empty grid reported a king")
	}
}

func TestGridString(t *testing.T) {
	g := InitialGrid()
	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	if len(lines) != BoardSize {
		t.Fatalf("String() has %d lines; want %d", len(lines), BoardSize)
	}

	want := []string{
		"-2\t-3\t-4\t-5\t-6\t-4\t-3\t-2",
		"-1\t-1\t-1\t-1\t-1\t-1\t-1\t-1",
		"0\t0\t0\t0\t0\t0\t0\t0",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q; want %q", i, lines[i], w)
		}
	}
	if lines[7] != "2\t3\t4\t5\t6\t4\t3\t2" {
		t.Errorf("line 7 = %q", lines[7])
	}
}

func TestPieceOwnership(t *testing.T) {
	tests := []struct {
		piece  Piece
		owner  Player
		hasOne bool
		kind   Piece
		letter byte
	}{
		{W(Pawn), White, true, Pawn, 'P'},
		{B(Pawn), Black, true, Pawn, 'p'},
		{W(King), White, true, King, 'K'},
		{B(Knight), Black, true, Knight, 'n'},
		{Empty, 0, false, Empty, '.'},
	}

	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			owner, ok := tt.piece.Owner()
			if ok != tt.hasOne || owner != tt.owner {
				t.Errorf("Owner() = %v, %v; want %v, %v", owner, ok, tt.owner, tt.hasOne)
			}
			if got := tt.piece.Kind(); got != tt.kind {
				t.Errorf("Kind() = %d; want %d", got, tt.kind)
			}
			if got := tt.piece.Letter(); got != tt.letter {
				t.Errorf("Letter() = %c; want %c", got, tt.letter)
			}
		})
	}

	if !W(Rook).IsEnemyOf(B(Pawn)) {
		t.Error("white rook should be an enemy of a black pawn")
	}
	if W(Rook).IsEnemyOf(W(Pawn)) || W(Rook).IsEnemyOf(Empty) {
		t.Error("IsEnemyOf reported a friend or empty square as an enemy")
	}
}

func TestPlayer(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution between White and Black")
	}
	if White.Forward() != -1 || Black.Forward() != 1 {
		t.Errorf("Forward() = %d/%d; want -1/1", White.Forward(), Black.Forward())
	}
	if !W(Queen).BelongsTo(White) || W(Queen).BelongsTo(Black) {
		t.Error("BelongsTo mismatch for white queen")
	}
}

func TestSquareInBounds(t *testing.T) {
	tests := []struct {
		sq   Square
		want bool
	}{
		{Sq(0, 0), true},
		{Sq(7, 7), true},
		{Sq(3, 4), true},
		{Sq(-1, 0), false},
		{Sq(0, 8), false},
		{Sq(8, 8), false},
	}
	for _, tt := range tests {
		if got := tt.sq.InBounds(); got != tt.want {
			t.Errorf("%v.InBounds() = %v; want %v", tt.sq, got, tt.want)
		}
	}
}
