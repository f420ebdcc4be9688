package search

import (
	"sort"

	"github.com/FireFather/absolute-zero-go/internal/move"
)

// rootMove pairs a root-legal move with the score its subtree earned on
// the last completed iteration, so the next iteration's root loop can
// try the strongest candidate first (spec section 4.9).
type rootMove struct {
	m     move.Move
	score int
}

func (eng *Engine) generateRootMoves() []rootMove {
	moves := eng.Position.GenerateMoves(make([]move.Move, 0, MovesLimit))
	out := make([]rootMove, len(moves))
	for i, m := range moves {
		out[i] = rootMove{m: m}
	}
	return out
}

func sortRootMoves(moves []rootMove) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].score > moves[j].score
	})
}

// rootSearch runs one depth's root move loop. The first move (the
// previous iteration's best, after sortRootMoves) is searched with the
// full [alpha, beta) window; every later move is probed with a
// zero-window search and only re-searched at full width if it beats
// alpha — spec section 4.9's PVS description, applied at the root.
func (eng *Engine) rootSearch(moves []rootMove, alpha, beta, depth int) (int, move.Move) {
	pos := eng.Position
	eng.pv.clear(0)

	best := -Infinity
	bestMove := move.Invalid
	localAlpha := alpha

	for i := range moves {
		m := moves[i].m
		pos.Make(m)

		var score int
		if i == 0 {
			score = -eng.searchTree(-beta, -localAlpha, depth-1)
		} else {
			score = -eng.searchTree(-localAlpha-1, -localAlpha, depth-1)
			if score > localAlpha && score < beta {
				score = -eng.searchTree(-beta, -localAlpha, depth-1)
			}
		}

		pos.Unmake(m)
		moves[i].score = score

		if eng.stopped {
			if bestMove == move.Invalid {
				bestMove = m
				best = score
			}
			break
		}

		if score > best {
			best = score
			bestMove = m
			eng.rootAlpha = score
			if score > localAlpha {
				localAlpha = score
				eng.pv.prepend(0, m)
			}
		}
		if localAlpha >= beta {
			break
		}
	}

	return best, bestMove
}

// search performs one iterative-deepening depth with spec.md's
// aspiration window: a narrow window around the previous iteration's
// score; on a fail-high or fail-low the failing side of the window is
// opened to +/-Infinity and the depth is searched again until the true
// score is bracketed (spec section 4.9). Depths 1 and 2 always search
// the full [-Infinity, Infinity] window, since no prior estimate is
// trustworthy yet.
func (eng *Engine) search(moves []rootMove, depth, estimated int) (int, move.Move) {
	if depth <= 2 {
		return eng.rootSearch(moves, -Infinity, Infinity, depth)
	}

	alpha := estimated - AspirationWindow
	beta := estimated + AspirationWindow
	if alpha < -Infinity {
		alpha = -Infinity
	}
	if beta > Infinity {
		beta = Infinity
	}

	for {
		score, best := eng.rootSearch(moves, alpha, beta, depth)
		if eng.stopped {
			return score, best
		}
		switch {
		case score <= alpha:
			eng.tc.ExtendForResearch()
			alpha = -Infinity
		case score >= beta:
			eng.tc.ExtendForResearch()
			beta = Infinity
		default:
			return score, best
		}
	}
}

// Play runs iterative deepening from depth 1 up to tc.Depth, or until
// tc signals a stop, returning the principal variation found by the
// last iteration that completed. Depths 1 and 2 are always started;
// if the search is stopped during one of them, the best move found so
// far at that depth is kept. After each depth from 2 on, iterative
// deepening ends early once more than 0.7 of the base time budget has
// elapsed and no time extension has been granted. A position with
// exactly one legal move returns it immediately without searching,
// since there is nothing to compare it against (spec section 4.9).
func (eng *Engine) Play(tc *TimeControl) []move.Move {
	eng.stopped = false
	eng.external.Store(false)
	eng.checkpoint = NodeResolution
	eng.rootPly = eng.Position.Ply
	eng.tc = tc
	tc.Start()

	eng.Log.BeginSearch()
	defer eng.Log.EndSearch()

	moves := eng.generateRootMoves()
	if len(moves) == 0 {
		return nil
	}
	if len(moves) == 1 {
		return []move.Move{moves[0].m}
	}

	var pv []move.Move
	estimated := eng.Score()

	for depth := 1; tc.NextDepth(depth); depth++ {
		eng.Stats.Depth = depth
		eng.rootAlpha = eng.finalAlpha

		score, best := eng.search(moves, depth, estimated)
		if eng.stopped && depth > 2 {
			break
		}

		estimated = score
		eng.finalAlpha = score
		sortRootMoves(moves)

		line := eng.pv.line()
		if len(line) == 0 {
			line = []move.Move{best}
		}
		pv = line
		eng.Log.PrintPV(eng.Stats, score, pv)

		if depth >= 2 && tc.extensionGranted == 0 && tc.ElapsedRatio() > 0.7 {
			break
		}
	}

	if pv == nil {
		pv = []move.Move{moves[0].m}
	}
	return pv
}
