package player

import (
	"strings"
	"testing"

	"github.com/FireFather/absolute-zero-go/internal/board"
	"github.com/FireFather/absolute-zero-go/internal/move"
	"github.com/FireFather/absolute-zero-go/internal/search"
)

func TestEngineGetMoveReturnsLegalMove(t *testing.T) {
	pos, err := board.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("bad FEN: %v", err)
	}

	p := NewEngine(EngineOptions{
		Name: "test-engine",
		BuildTC: func(pos *board.Position) *search.TimeControl {
			return search.NewFixedDepthTimeControl(pos, 2)
		},
	})

	m := p.GetMove(pos)
	if m == move.Invalid {
		t.Fatal("expected a legal move")
	}

	legal := pos.GenerateMoves(make([]move.Move, 0, 64))
	found := false
	for _, cand := range legal {
		if cand == m {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("GetMove returned %v, which is not a legal move in the given position", m)
	}
}

func TestEngineNameAndReset(t *testing.T) {
	p := NewEngine(EngineOptions{Name: "named-engine"})
	if p.Name() != "named-engine" {
		t.Errorf("Name() = %q, want named-engine", p.Name())
	}
	p.Reset() // must not panic on a freshly constructed engine
}

func TestHumanParsesFirstLegalLine(t *testing.T) {
	pos, err := board.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("bad FEN: %v", err)
	}

	h := NewHuman("tester", strings.NewReader("not-a-move\ne2e4\n"))
	m := h.GetMove(pos)
	if m == move.Invalid {
		t.Fatal("expected Human to find the legal move on the second line")
	}
	if got := m.UCI(); got != "e2e4" {
		t.Errorf("GetMove() = %s, want e2e4", got)
	}
}

func TestHumanAcceptsDrawAlwaysFalse(t *testing.T) {
	h := NewHuman("tester", strings.NewReader(""))
	if h.AcceptsDraw() {
		t.Error("Human.AcceptsDraw() should always be false")
	}
}
