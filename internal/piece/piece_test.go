package piece

import "testing"

func TestNewColourType(t *testing.T) {
	cases := []struct {
		c    Colour
		t    Piece
		want Piece
	}{
		{White, TypePawn, WhitePawn},
		{Black, TypePawn, BlackPawn},
		{White, TypeKing, WhiteKing},
		{Black, TypeQueen, BlackQueen},
	}
	for _, c := range cases {
		got := New(c.c, c.t)
		if got != c.want {
			t.Errorf("New(%v, %v) = %v, want %v", c.c, c.t, got, c.want)
		}
		if got.Colour() != c.c {
			t.Errorf("New(%v, %v).Colour() = %v, want %v", c.c, c.t, got.Colour(), c.c)
		}
		if got.Type() != c.t {
			t.Errorf("New(%v, %v).Type() = %v, want %v", c.c, c.t, got.Type(), c.t)
		}
	}
}

func TestOther(t *testing.T) {
	if White.Other() != Black {
		t.Errorf("White.Other() = %v, want Black", White.Other())
	}
	if Black.Other() != White {
		t.Errorf("Black.Other() = %v, want White", Black.Other())
	}
}

func TestIsEmpty(t *testing.T) {
	if !Empty.IsEmpty() {
		t.Error("Empty.IsEmpty() = false, want true")
	}
	if WhitePawn.IsEmpty() {
		t.Error("WhitePawn.IsEmpty() = true, want false")
	}
}

func TestPieceValueSharedAcrossColour(t *testing.T) {
	pairs := [][2]Piece{
		{WhitePawn, BlackPawn},
		{WhiteKnight, BlackKnight},
		{WhiteBishop, BlackBishop},
		{WhiteRook, BlackRook},
		{WhiteQueen, BlackQueen},
		{WhiteKing, BlackKing},
	}
	for _, p := range pairs {
		if PieceValue[p[0]] != PieceValue[p[1]] {
			t.Errorf("PieceValue[%v] = %d != PieceValue[%v] = %d", p[0], PieceValue[p[0]], p[1], PieceValue[p[1]])
		}
	}
	if PieceValue[Empty] != 0 {
		t.Errorf("PieceValue[Empty] = %d, want 0", PieceValue[Empty])
	}
}

func TestSymbol(t *testing.T) {
	cases := []struct {
		p    Piece
		want byte
	}{
		{Empty, '.'},
		{WhitePawn, 'P'},
		{BlackPawn, 'p'},
		{WhiteKing, 'K'},
		{BlackKing, 'k'},
	}
	for _, c := range cases {
		if got := c.p.Symbol(); got != c.want {
			t.Errorf("%v.Symbol() = %q, want %q", c.p, got, c.want)
		}
	}
}
