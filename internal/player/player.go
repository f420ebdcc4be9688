// Package player implements the Player contract (spec section 4.10): a
// narrow interface consumed by collaborators outside the core (a GUI,
// a UCI loop, a tournament harness), with two concrete variants, Human
// and Engine.
//
// Grounded on the teacher's Logger/NulLogger pattern in engine.go (one
// small interface, concrete types behind it) — the teacher itself has
// no Player abstraction; the GUI in the original absolute-zero reached
// straight into engine.Engine, which spec section 1 moves out of core
// scope.
package player

import (
	"github.com/FireFather/absolute-zero-go/internal/board"
	"github.com/FireFather/absolute-zero-go/internal/move"
)

// Player is implemented by both a human move source and the search
// engine, so callers outside the core can treat them identically.
type Player interface {
	// Name returns a human-readable identifier.
	Name() string
	// AcceptsDraw reports whether this player would accept a draw offer
	// in the current state.
	AcceptsDraw() bool
	// GetMove blocks until a move is produced for pos or Stop is called.
	// Non-reentrant: at most one GetMove call may be in flight at a time.
	// Must not leave pos mutated on return.
	GetMove(pos *board.Position) move.Move
	// Stop requests the current GetMove to return as soon as it can.
	// Idempotent, and safe to call from a goroutine other than the one
	// running GetMove.
	Stop()
	// Reset clears any accumulated search state (transposition table,
	// killer tables, root/final alpha).
	Reset()
}
