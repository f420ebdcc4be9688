package search

import (
	"sync/atomic"
	"time"

	"github.com/FireFather/absolute-zero-go/internal/board"
	"github.com/FireFather/absolute-zero-go/internal/piece"
)

// expectedLatency is subtracted from the computed time budget to leave
// room for whatever sits between the search returning and the move
// actually reaching the board (spec section 4.9).
const expectedLatency = ExpectedLatencyMicro * time.Microsecond

// TimeControl allocates a per-move time budget and tracks whether the
// search should stop, following the formula spec.md gives in section
// 4.9. Grounded on the shape of the teacher's TimeControl (WTime/BTime,
// an atomic stopped flag, a Start/Stopped/Stop API), replacing the
// teacher's branch-factor-based allocation with spec's explicit formula.
type TimeControl struct {
	WTime, WInc time.Duration
	BTime, BInc time.Duration
	MoveTime    time.Duration // when > 0, a fixed budget that bypasses the formula
	Depth       int           // maximum depth to search, inclusive
	HalfMoves   int           // half-moves already played, for the time divisor

	sideToMove piece.Colour
	stopped    atomic.Bool

	start            time.Time
	searchLimit      time.Duration
	extensionCeiling time.Duration
	extensionGranted time.Duration
	deadline         time.Time
}

// NewTimeControl returns a time control with no limit and the maximum
// search depth.
func NewTimeControl(pos *board.Position) *TimeControl {
	return &TimeControl{
		WTime:      time.Duration(1) << 62,
		BTime:      time.Duration(1) << 62,
		Depth:      DepthLimit,
		HalfMoves:  pos.Ply,
		sideToMove: pos.SideToMove,
	}
}

// NewFixedDepthTimeControl returns a time control with no time limit,
// stopping purely on reaching depth.
func NewFixedDepthTimeControl(pos *board.Position, depth int) *TimeControl {
	tc := NewTimeControl(pos)
	tc.Depth = depth
	return tc
}

// NewMoveTimeControl returns a time control bounded by a fixed duration
// regardless of clocks.
func NewMoveTimeControl(pos *board.Position, d time.Duration) *TimeControl {
	tc := NewTimeControl(pos)
	tc.MoveTime = d
	return tc
}

// allocation computes spec.md's time_limit formula from the remaining
// time t and increment i.
func (tc *TimeControl) allocation(t, i time.Duration) time.Duration {
	divisor := 100 - 0.5*float64(tc.HalfMoves)
	if divisor < 40 {
		divisor = 40
	}
	limit := time.Duration(float64(t-i)/divisor) + i - expectedLatency
	if limit < 0 {
		limit = 0
	}
	ceiling := time.Duration(0.3 * float64(t-i))
	if ceiling < 0 {
		ceiling = 0
	}
	if limit > t {
		limit = t
	}
	tc.extensionCeiling = ceiling
	return limit
}

// Start computes the search-time budget and arms the deadline. Should
// be called as soon as the engine begins thinking, to keep elapsed-time
// measurement accurate.
func (tc *TimeControl) Start() {
	var t, i time.Duration
	if tc.sideToMove == piece.White {
		t, i = tc.WTime, tc.WInc
	} else {
		t, i = tc.BTime, tc.BInc
	}

	if tc.MoveTime > 0 {
		tc.searchLimit = tc.MoveTime
		tc.extensionCeiling = 0
	} else {
		tc.searchLimit = tc.allocation(t, i)
	}

	tc.stopped.Store(false)
	tc.extensionGranted = 0
	tc.start = time.Now()
	tc.deadline = tc.start.Add(tc.searchLimit)
}

// ExtendForResearch grants spec's aspiration-window research extension
// (threshold 0.5 of the budget elapsed, extension 0.8 of the budget)
// when a research at the full window is about to be run. Reports
// whether an extension was actually granted.
func (tc *TimeControl) ExtendForResearch() bool {
	if tc.searchLimit <= 0 {
		return false
	}
	if tc.ElapsedRatio() <= 0.5 {
		return false
	}
	return tc.grantExtension(time.Duration(0.8 * float64(tc.searchLimit)))
}

// GrantLossExtension grants spec's loss-time extension when the root
// score has worsened by loss centipawns relative to the previous
// iteration.
func (tc *TimeControl) GrantLossExtension(loss int) bool {
	idx := loss / 40
	if idx > 4 {
		idx = 4
	}
	if idx < 0 {
		idx = 0
	}
	frac := lossExtensionFraction[idx]
	if frac == 0 {
		return false
	}
	return tc.grantExtension(time.Duration(frac * float64(tc.searchLimit)))
}

func (tc *TimeControl) grantExtension(extra time.Duration) bool {
	if tc.extensionGranted+extra > tc.extensionCeiling {
		extra = tc.extensionCeiling - tc.extensionGranted
	}
	if extra <= 0 {
		return false
	}
	tc.extensionGranted += extra
	tc.deadline = tc.deadline.Add(extra)
	return true
}

// Elapsed returns how long the search has been running.
func (tc *TimeControl) Elapsed() time.Duration {
	return time.Since(tc.start)
}

// ElapsedRatio returns elapsed time as a fraction of the base search
// budget (ignoring any granted extension), used for the "elapsed/limit
// > 0.7" early-stop check.
func (tc *TimeControl) ElapsedRatio() float64 {
	if tc.searchLimit <= 0 {
		return 1
	}
	return float64(tc.Elapsed()) / float64(tc.searchLimit)
}

// NextDepth reports whether iterative deepening should begin depth.
// Depths 1 and 2 always run, so a move is always available even under
// an extremely tight budget.
func (tc *TimeControl) NextDepth(depth int) bool {
	return depth <= tc.Depth && (depth <= 2 || !tc.Stopped())
}

// Stop requests the search to abort as soon as it next polls. Idempotent.
func (tc *TimeControl) Stop() {
	tc.stopped.Store(true)
}

// Stopped reports whether the search should stop, checking both an
// external Stop() call and the deadline.
func (tc *TimeControl) Stopped() bool {
	if tc.stopped.Load() {
		return true
	}
	if !tc.deadline.IsZero() && time.Now().After(tc.deadline) {
		tc.stopped.Store(true)
		return true
	}
	return false
}
