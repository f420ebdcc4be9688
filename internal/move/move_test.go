package move

import (
	"testing"

	"github.com/FireFather/absolute-zero-go/internal/piece"
)

func TestNewFieldRoundTrip(t *testing.T) {
	m := New(12, 28, piece.WhitePawn, piece.BlackKnight, piece.Empty)
	if m.From() != 12 {
		t.Errorf("From() = %d, want 12", m.From())
	}
	if m.To() != 28 {
		t.Errorf("To() = %d, want 28", m.To())
	}
	if m.Moving() != piece.WhitePawn {
		t.Errorf("Moving() = %v, want WhitePawn", m.Moving())
	}
	if m.Captured() != piece.BlackKnight {
		t.Errorf("Captured() = %v, want BlackKnight", m.Captured())
	}
	if !m.IsCapture() {
		t.Error("IsCapture() = false, want true")
	}
}

func TestInvalidIsZero(t *testing.T) {
	if Invalid != 0 {
		t.Errorf("Invalid = %d, want 0", Invalid)
	}
	if New(0, 0, piece.Empty, piece.Empty, piece.Empty) != Invalid {
		t.Error("a move with no moving piece should equal Invalid")
	}
}

func TestIsCastle(t *testing.T) {
	m := New(60, 62, piece.WhiteKing, piece.Empty, piece.WhiteKing)
	if !m.IsCastle() {
		t.Error("IsCastle() = false, want true")
	}
	if m.IsEnPassant() {
		t.Error("IsEnPassant() = true, want false")
	}
}

func TestIsEnPassant(t *testing.T) {
	m := New(35, 44, piece.WhitePawn, piece.BlackPawn, piece.WhitePawn)
	if !m.IsEnPassant() {
		t.Error("IsEnPassant() = false, want true")
	}
	if m.IsCastle() {
		t.Error("IsCastle() = true, want false")
	}
}

func TestIsPromotion(t *testing.T) {
	cases := []struct {
		to   int
		want bool
	}{
		{0, true},   // 8th rank
		{7, true},   // 8th rank
		{56, true},  // 1st rank
		{63, true},  // 1st rank
		{8, false},  // 7th rank
		{35, false}, // middle of the board
	}
	for _, c := range cases {
		m := New(c.to+8, c.to, piece.WhitePawn, piece.Empty, piece.WhiteQueen)
		if got := m.IsPromotion(); got != c.want {
			t.Errorf("IsPromotion() with to=%d = %v, want %v", c.to, got, c.want)
		}
	}
}

func TestIsQueenPromotion(t *testing.T) {
	queenPromo := New(1, 1, piece.WhitePawn, piece.Empty, piece.WhiteQueen)
	if !queenPromo.IsQueenPromotion() {
		t.Error("IsQueenPromotion() = false, want true")
	}
	knightPromo := New(1, 1, piece.WhitePawn, piece.Empty, piece.WhiteKnight)
	if knightPromo.IsQueenPromotion() {
		t.Error("IsQueenPromotion() = true, want false for a knight promotion")
	}
}

func TestUCI(t *testing.T) {
	m := New(52, 36, piece.WhitePawn, piece.Empty, piece.Empty)
	if got := m.UCI(); got != "e2e4" {
		t.Errorf("UCI() = %q, want e2e4", got)
	}

	promo := New(8, 0, piece.WhitePawn, piece.Empty, piece.WhiteQueen)
	if got := promo.UCI(); len(got) != 5 || got[4] != 'q' {
		t.Errorf("UCI() = %q, want a 5-character move ending in 'q'", got)
	}
}

func TestString(t *testing.T) {
	if Invalid.String() != "0000" {
		t.Errorf("Invalid.String() = %q, want 0000", Invalid.String())
	}
}
