package search

import (
	"sync/atomic"

	"github.com/FireFather/absolute-zero-go/internal/board"
	"github.com/FireFather/absolute-zero-go/internal/eval"
	"github.com/FireFather/absolute-zero-go/internal/move"
	"github.com/FireFather/absolute-zero-go/internal/piece"
	"github.com/FireFather/absolute-zero-go/internal/tt"
)

// Engine owns one search's mutable state: the position being searched,
// its transposition table, the killer table, the triangular PV table,
// and the soft-cancel abort flag (spec section 5: no package-level
// global state — every cache here is instance-scoped). Move ordering
// follows spec section 4.9 literally (MVV/LVA seed, killer overlay,
// hash-move overlay) with no history heuristic, since spec.md's ordering
// paragraph names only those three.
type Engine struct {
	Position *board.Position
	TT       *tt.Table
	Options  Options
	Stats    Stats
	Log      Logger

	rootPly int
	pv      pvTable
	killers [PlyLimit][KillerSlots]move.Move

	tc         *TimeControl
	stopped    bool
	checkpoint uint64
	external   atomic.Bool // set by Stop(), polled alongside tc

	rootAlpha  int
	finalAlpha int
}

// NewEngine returns an Engine positioned at pos.
func NewEngine(pos *board.Position, log Logger, opts Options) *Engine {
	if log == nil {
		log = NulLogger{}
	}
	bytes := opts.HashBytes
	if bytes <= 0 {
		bytes = DefaultHashBytes
	}
	return &Engine{
		Position: pos,
		TT:       tt.New(bytes),
		Options:  opts,
		Log:      log,
	}
}

// SetPosition replaces the position being searched.
func (eng *Engine) SetPosition(pos *board.Position) {
	eng.Position = pos
}

// Reset clears the transposition table and the killer table and
// resets root_alpha/final_alpha (spec section 4.10's reset operation).
func (eng *Engine) Reset() {
	eng.TT.Clear()
	eng.killers = [PlyLimit][KillerSlots]move.Move{}
	eng.rootAlpha = 0
	eng.finalAlpha = 0
}

// Stop requests the current search to abort as soon as it can. Safe to
// call from a goroutine other than the one running Play.
func (eng *Engine) Stop() {
	eng.external.Store(true)
	if eng.tc != nil {
		eng.tc.Stop()
	}
}

// FinalAlpha returns the root score of the last completed iterative-
// deepening depth, used by the Player contract's AcceptsDraw (spec
// section 4.10: "derived from final_alpha <= DrawValue").
func (eng *Engine) FinalAlpha() int {
	return eng.finalAlpha
}

func (eng *Engine) ply() int {
	return eng.Position.Ply - eng.rootPly
}

// Score evaluates the current position from the side-to-move's
// perspective (spec section 4.9's negamax convention).
func (eng *Engine) Score() int {
	score := eval.Evaluate(eng.Position)
	if eng.Position.SideToMove == piece.Black {
		score = -score
	}
	return score
}

// endPosition reports the game-over/draw score for the current position,
// if the game has already ended, following spec section 4.9's draw
// detection (fifty-move rule, insufficient material, and threefold
// repetition with a two-fold trigger once past the root ply, so a
// repeating line is avoided before it actually completes a third time at
// the root).
func (eng *Engine) endPosition() (int, bool) {
	pos := eng.Position
	if pos.IsFiftyMoveDraw() {
		return DrawValue, true
	}
	if pos.InsufficientMaterial() {
		return DrawValue, true
	}
	r := pos.Repetitions()
	if eng.ply() > 0 && r >= 2 || r >= 3 {
		return DrawValue, true
	}
	return 0, false
}

// pollAbort checks, every NodeResolution nodes, whether the search
// should stop (spec section 5's cooperative cancellation), and grants a
// loss-time extension if the root score is trending worse than the
// previous completed iteration (spec section 4.9).
func (eng *Engine) pollAbort() {
	if eng.stopped {
		return
	}
	if eng.Stats.Nodes < eng.checkpoint {
		return
	}
	eng.checkpoint = eng.Stats.Nodes + NodeResolution

	if loss := eng.finalAlpha - eng.rootAlpha; loss >= 40 {
		eng.tc.GrantLossExtension(loss)
	}
	if eng.external.Load() || eng.tc.Stopped() {
		eng.stopped = true
	}
}

// saveKiller records m as a killer move for the current ply, shifting
// the previous first slot down, unless m is a capture or promotion
// (spec section 4.9: only "reducible" quiet cutoffs become killers).
func (eng *Engine) saveKiller(ply int, m move.Move) {
	if m.IsCapture() || m.IsPromotion() {
		return
	}
	slots := &eng.killers[ply]
	if slots[0] == m {
		return
	}
	slots[1] = slots[0]
	slots[0] = m
}
