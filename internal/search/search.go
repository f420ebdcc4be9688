// Package search implements the alpha-beta search kernel (spec section
// 4.9): iterative deepening with aspiration windows, principal variation
// search, null-move and mate-distance pruning, late-move reductions,
// futility pruning, quiescence search, and a soft-cancel abort protocol
// polled on a node counter.
//
// Grounded on the teacher's engine.go/move_ordering.go/pv.go/
// time_control.go (bitbucket.org/zurichess/zurichess/engine), carrying
// over its Options/Stats/Logger/NulLogger shapes and its triangular PV
// table, while replacing every numeric constant and pruning formula
// with the ones spec.md names explicitly. The teacher's history
// heuristic is dropped: spec.md's move-ordering paragraph names only
// the hash move, killer moves, and MVV/LVA.
package search

import "github.com/FireFather/absolute-zero-go/internal/move"

// Search-space bounds named by spec section 4.9.
const (
	DepthLimit  = 64
	PlyLimit    = 128
	MovesLimit  = 256
	KillerSlots = 2

	Checkmate     = 100000
	NearCheckmate = Checkmate - PlyLimit
	Infinity      = 110000
	DrawValue     = 0
)

// Search tuning constants, named exactly as spec.md lists them.
const (
	AspirationWindow     = 17
	NullMoveReduction    = 3
	NullMoveDeepDepth    = 7 // depth at which the reduction grows by one
	LateMoveReduction    = 2
	NodeResolution       = 1000 // nodes between abort/time-budget polls
	ExpectedLatencyMicro = 30000
)

// futilityMargins[depth] bounds how much a quiet move's static score can
// trail alpha before it is skipped outright (spec section 4.9).
var futilityMargins = [...]int{0, 104, 125, 250, 271, 375}

// lossExtensionFraction[min(loss/40,4)] is the fraction of the base
// search-time allocation granted back when the root score is worsening
// (spec's "loss time extension"). spec.md describes the trigger
// (worsening ≥ 40 centipawns against a step table indexed by
// min(loss/40,4)) but does not give numeric fractions; these values
// follow the same gently-increasing shape as the teacher's branch-factor
// and research-extension formulas and are recorded here as a documented
// choice rather than a literal spec requirement.
var lossExtensionFraction = [...]float64{0, 0.15, 0.30, 0.50, 0.80}

// Options keeps engine-wide options.
type Options struct {
	AnalyseMode bool // not read by the search; Log receives every PV either way
	HashBytes   int  // transposition table byte budget; 0 uses a 64MB default
}

// DefaultHashBytes is the transposition table's default byte budget
// (spec section 5's resource policy).
const DefaultHashBytes = 64 << 20

// Stats records search-progress counters, read after each completed
// iterative-deepening depth.
type Stats struct {
	Nodes     uint64
	CacheHit  uint64
	CacheMiss uint64
	Depth     int
	SelDepth  int
}

// CacheHitRatio returns the hit ratio of transposition-table probes.
func (s *Stats) CacheHitRatio() float64 {
	if s.CacheHit+s.CacheMiss == 0 {
		return 0
	}
	return float64(s.CacheHit) / float64(s.CacheHit+s.CacheMiss)
}

// Logger receives search-progress notifications.
type Logger interface {
	BeginSearch()
	EndSearch()
	PrintPV(stats Stats, score int, pv []move.Move)
}

// NulLogger implements Logger by doing nothing; the default when the
// caller does not care to observe search progress.
type NulLogger struct{}

func (NulLogger) BeginSearch()                          {}
func (NulLogger) EndSearch()                             {}
func (NulLogger) PrintPV(Stats, int, []move.Move)        {}
