package player

import (
	"bufio"
	"io"
	"strings"
	"sync/atomic"

	"github.com/FireFather/absolute-zero-go/internal/board"
	"github.com/FireFather/absolute-zero-go/internal/move"
	"github.com/FireFather/absolute-zero-go/internal/notation"
)

// Human is a Player whose moves come from a line-oriented text source
// (e.g. stdin), one coordinate-notation move per line, in the style of
// the teacher's main.go UCI input loop (a bufio reader over os.Stdin).
// Reading and rendering the source itself — a GUI, a terminal prompt —
// is deliberately out of core scope (spec section 1); this type only
// does the line-to-move parsing a collaborator would otherwise inline.
type Human struct {
	name    string
	in      *bufio.Reader
	stopped atomic.Bool
}

// NewHuman returns a Human player reading moves from r.
func NewHuman(name string, r io.Reader) *Human {
	return &Human{name: name, in: bufio.NewReader(r)}
}

func (h *Human) Name() string { return h.name }

// AcceptsDraw always declines; a human player decides out of band and
// this type has no channel to ask them.
func (h *Human) AcceptsDraw() bool { return false }

// GetMove reads lines from the source until one parses as a legal move
// against pos, or Stop is called, or the source is exhausted.
func (h *Human) GetMove(pos *board.Position) move.Move {
	h.stopped.Store(false)
	for !h.stopped.Load() {
		line, err := h.in.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			if m := notation.ParseUCI(pos, line); m != move.Invalid {
				return m
			}
		}
		if err != nil {
			return move.Invalid
		}
	}
	return move.Invalid
}

func (h *Human) Stop() { h.stopped.Store(true) }

// Reset is a no-op: Human carries no search state.
func (h *Human) Reset() {}
