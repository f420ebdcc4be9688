package search

import (
	"sort"

	"github.com/FireFather/absolute-zero-go/internal/move"
	"github.com/FireFather/absolute-zero-go/internal/piece"
)

// Ordering-score bands, highest priority first. Grounded on the
// teacher's move_ordering.go phase ordering (hash, violent, killer,
// rest) but folded into a single per-node sort key instead of the
// teacher's staged generator, since spec.md describes one sort rather
// than several generation phases.
const (
	hashMoveScore  = 1 << 30
	killerScore0   = 1 << 20
	killerScore1   = killerScore0 - 1
	queenPromoBonus = 900
)

// orderScore implements spec section 4.9's seed formula
// (capture_value/mover_value, plus a queen-promotion bonus), overlaid
// by killer moves and finally the hash move at the very top.
func orderScore(m move.Move, hash move.Move, killers [KillerSlots]move.Move) int {
	if m == hash {
		return hashMoveScore
	}
	if m == killers[0] {
		return killerScore0
	}
	if m == killers[1] {
		return killerScore1
	}

	score := 0
	if m.IsCapture() {
		mover := piece.PieceValue[m.Moving()]
		if mover == 0 {
			mover = 1
		}
		score = piece.PieceValue[m.Captured()] * 1000 / mover
	}
	if m.IsQueenPromotion() {
		score += queenPromoBonus
	}
	return score
}

// orderedMove pairs a move with its precomputed sort key.
type orderedMove struct {
	m     move.Move
	score int
}

// orderMoves sorts moves by descending orderScore (highest priority
// first) and reports how many scored strictly positive — spec.md's
// irreducible_moves, exempted from late-move reduction.
func orderMoves(moves []move.Move, hash move.Move, killers [KillerSlots]move.Move) (int, []move.Move) {
	scored := make([]orderedMove, len(moves))
	for i, m := range moves {
		scored[i] = orderedMove{m: m, score: orderScore(m, hash, killers)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	irreducible := 0
	out := make([]move.Move, len(moves))
	for i, om := range scored {
		out[i] = om.m
		if om.score > 0 {
			irreducible++
		}
	}
	return irreducible, out
}
