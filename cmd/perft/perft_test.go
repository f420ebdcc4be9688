package main

import (
	"testing"

	"github.com/FireFather/absolute-zero-go/internal/board"
	"github.com/FireFather/absolute-zero-go/internal/move"
)

func testHelper(t *testing.T, fen string, testData []counters) {
	for depth, want := range testData {
		if testing.Short() && want.nodes > 200000 {
			return
		}

		pos, err := board.FromFEN(fen)
		if err != nil {
			t.Fatalf("invalid FEN: %s", fen)
		}

		got := perft(pos, depth, make([]move.Move, 0, 4096))
		if got != want {
			t.Errorf("at depth %d expected %+v got %+v", depth, want, got)
		}
	}
}

func TestPerftInitial(t *testing.T) {
	testHelper(t, known["startpos"], expected[known["startpos"]][:6])
}

func TestPerftKiwipete(t *testing.T) {
	testHelper(t, known["kiwipete"], expected[known["kiwipete"]][:5])
}

func TestPerftDuplain(t *testing.T) {
	testHelper(t, known["duplain"], expected[known["duplain"]][:7])
}

func benchHelper(b *testing.B, fen string, depth int) {
	pos, err := board.FromFEN(fen)
	if err != nil {
		b.Fatalf("invalid FEN: %s", fen)
	}
	scratch := make([]move.Move, 0, 4096)
	for i := 0; i < b.N; i++ {
		perft(pos, depth, scratch[:0])
	}
}

func BenchmarkPerftInitial(b *testing.B) {
	benchHelper(b, known["startpos"], 4)
}

func BenchmarkPerftKiwipete(b *testing.B) {
	benchHelper(b, known["kiwipete"], 3)
}

func BenchmarkPerftDuplain(b *testing.B) {
	benchHelper(b, known["duplain"], 4)
}
