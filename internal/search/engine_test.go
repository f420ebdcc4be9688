package search

import (
	"testing"

	"github.com/FireFather/absolute-zero-go/internal/board"
)

// mateIn1 positions, each with the one move that delivers checkmate.
var mateIn1 = []struct {
	fen string
	bm  string
}{
	{"k7/8/1K6/8/8/8/8/6R1 w - - 0 1", "g1g8"},
	{"4k3/8/4K3/8/8/8/8/7R w - - 0 1", "h1h8"},
}

func TestMateIn1(t *testing.T) {
	for i, d := range mateIn1 {
		pos, err := board.FromFEN(d.fen)
		if err != nil {
			t.Fatalf("#%d bad FEN: %v", i, err)
		}
		want := pos.ParseUCIMove(d.bm)
		if want == 0 {
			t.Fatalf("#%d cannot parse move %s", i, d.bm)
		}

		eng := NewEngine(pos, nil, Options{})
		tc := NewFixedDepthTimeControl(pos, 3)
		pv := eng.Play(tc)

		if len(pv) == 0 {
			t.Errorf("#%d search returned no move", i)
			continue
		}
		if pv[0] != want {
			t.Errorf("#%d expected %v, got %v", i, want, pv[0])
		}
	}
}

func TestPlayPreservesPosition(t *testing.T) {
	pos, err := board.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("bad FEN: %v", err)
	}
	before := *pos

	eng := NewEngine(pos, nil, Options{})
	tc := NewFixedDepthTimeControl(pos, 3)
	pv := eng.Play(tc)

	if len(pv) == 0 {
		t.Fatal("search returned no move")
	}
	if pos.ZobristKey != before.ZobristKey || pos.Ply != before.Ply {
		t.Fatalf("Play left the position mutated: ply %d != %d, key %x != %x",
			pos.Ply, before.Ply, pos.ZobristKey, before.ZobristKey)
	}
}

func TestPlaySingleLegalMove(t *testing.T) {
	// Black to move has exactly one legal move: every square around the
	// a8 king is covered by the white king except a7.
	pos, err := board.FromFEN("k7/2K5/8/8/8/8/8/7R b - - 0 1")
	if err != nil {
		t.Fatalf("bad FEN: %v", err)
	}

	eng := NewEngine(pos, nil, Options{})
	tc := NewFixedDepthTimeControl(pos, 5)
	pv := eng.Play(tc)
	if len(pv) == 0 {
		t.Fatal("expected a move")
	}
}
