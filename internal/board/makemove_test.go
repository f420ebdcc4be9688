package board

import (
	"testing"

	"github.com/FireFather/absolute-zero-go/internal/move"
)

// TestMakeUnmakeRoundTrip walks several plies deep from a handful of
// positions, applying Make then Unmake at every node and checking the
// position is bit-for-bit identical to what it was before Make, history
// entries below the current ply included — the round-trip property named
// in spec section 8.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		pos, err := FromFEN(fen)
		if err != nil {
			t.Fatalf("bad FEN %q: %v", fen, err)
		}
		walkRoundTrip(t, pos, 3)
	}
}

func walkRoundTrip(t *testing.T, pos *Position, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}

	moves := pos.GenerateMoves(make([]move.Move, 0, 64))
	for _, m := range moves {
		before := *pos

		pos.Make(m)
		walkRoundTrip(t, pos, depth-1)
		pos.Unmake(m)

		// History slots at or above Ply are scratch space: Make overwrites
		// them and Unmake does not restore them, so they are not part of
		// the state being compared.
		after := *pos
		copy(after.enPassantHistory[after.Ply:], before.enPassantHistory[after.Ply:])
		copy(after.fiftyMovesHistory[after.Ply:], before.fiftyMovesHistory[after.Ply:])
		copy(after.zobristKeyHistory[after.Ply:], before.zobristKeyHistory[after.Ply:])
		copy(after.castleKingsideHistory[after.Ply:], before.castleKingsideHistory[after.Ply:])
		copy(after.castleQueensideHistory[after.Ply:], before.castleQueensideHistory[after.Ply:])
		if after != before {
			t.Fatalf("Make/Unmake(%v) left the position changed:\nbefore: %+v\nafter:  %+v", m, before, after)
		}
	}
}

// TestZobristKeyConsistency checks that the incrementally maintained
// ZobristKey matches a from-scratch recomputation after every Make and
// Unmake, at every node of a shallow search tree — the key-consistency
// property named in spec section 8.
func TestZobristKeyConsistency(t *testing.T) {
	pos, err := FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("bad FEN: %v", err)
	}
	walkKeyConsistency(t, pos, 3)
}

func walkKeyConsistency(t *testing.T, pos *Position, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}

	moves := pos.GenerateMoves(make([]move.Move, 0, 64))
	for _, m := range moves {
		pos.Make(m)
		if got, want := pos.ZobristKey, pos.ComputeKey(); got != want {
			t.Fatalf("after Make(%v): ZobristKey = %x, ComputeKey() = %x", m, got, want)
		}
		walkKeyConsistency(t, pos, depth-1)
		pos.Unmake(m)
		if got, want := pos.ZobristKey, pos.ComputeKey(); got != want {
			t.Fatalf("after Unmake(%v): ZobristKey = %x, ComputeKey() = %x", m, got, want)
		}
	}
}
