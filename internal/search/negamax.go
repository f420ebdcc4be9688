package search

import (
	"github.com/FireFather/absolute-zero-go/internal/bitset"
	"github.com/FireFather/absolute-zero-go/internal/board"
	"github.com/FireFather/absolute-zero-go/internal/eval"
	"github.com/FireFather/absolute-zero-go/internal/move"
	"github.com/FireFather/absolute-zero-go/internal/piece"
	"github.com/FireFather/absolute-zero-go/internal/tt"
)

func containsMove(moves []move.Move, m move.Move) bool {
	if m == move.Invalid {
		return false
	}
	for _, cand := range moves {
		if cand == m {
			return true
		}
	}
	return false
}

func hasNonPawnMaterial(pos *board.Position, c piece.Colour) bool {
	nonPawn := pos.PieceBB[piece.New(c, piece.TypeKnight)] |
		pos.PieceBB[piece.New(c, piece.TypeBishop)] |
		pos.PieceBB[piece.New(c, piece.TypeRook)] |
		pos.PieceBB[piece.New(c, piece.TypeQueen)]
	return nonPawn != 0
}

// aboveRanksFrom returns every rank strictly on the promotion side of
// sq's rank for a pawn moving in the given direction (forward=true means
// toward rank-index 0, White's promotion side).
func aboveRanksFrom(sq int, forward bool) bitset.Board {
	rankIdx := bitset.Rank(sq)
	var out bitset.Board
	for r := 0; r < 8; r++ {
		if forward && r >= rankIdx {
			continue
		}
		if !forward && r <= rankIdx {
			continue
		}
		out |= bitset.RankMask[bitset.SquareOf(0, r)]
	}
	return out
}

// isDangerousPawnAdvance reports whether a quiet pawn push m advances
// into a "prevention bitboard" gap: no enemy pawn, on m's destination
// file or an adjacent file, still stands between it and promotion (spec
// section 4.9). Captures and promotions are excluded: this test only
// concerns quiet breakthrough pushes. (Captures and queen promotions
// are kept out of late-move reduction by their ordering score instead;
// any move that gives check is treated as dangerous.)
func isDangerousPawnAdvance(pos *board.Position, m move.Move) bool {
	if m.Moving().Type() != piece.TypePawn || m.IsCapture() || m.IsPromotion() {
		return false
	}
	side := m.Moving().Colour()
	enemyPawns := pos.PieceBB[piece.New(side.Other(), piece.TypePawn)]

	to := m.To()
	file := bitset.File(to)
	files := bitset.FileMask[file]
	if file > 0 {
		files |= bitset.FileMask[file-1]
	}
	if file < 7 {
		files |= bitset.FileMask[file+1]
	}

	ahead := aboveRanksFrom(to, side == piece.White)
	return enemyPawns&files&ahead == 0
}

// isFutile reports whether move m, evaluated against the static score
// computed before m, cannot possibly raise it above alpha even after
// margin is added (spec section 4.9).
func isFutile(static, alpha, margin int, m move.Move) bool {
	return static+margin+piece.PieceValue[m.Captured()] <= alpha
}

// quiescence resolves the position by considering only captures and
// promotions (or, when in check, every legal evasion), following spec
// section 4.9's quiescence algorithm: stand-pat, TT probe, SEE-pruned
// capture search. Captures and promotions come from the pseudo-legal
// capture generator, so each is skipped after Make if it leaves the
// mover's king in check; evasions come from the legal generator.
func (eng *Engine) quiescence(alpha, beta int) int {
	eng.Stats.Nodes++
	eng.pollAbort()
	if eng.stopped {
		return alpha
	}

	pos := eng.Position
	if score, done := eng.endPosition(); done {
		return score
	}

	static := eng.Score()
	if static >= beta {
		return static
	}
	if static > alpha {
		alpha = static
	}

	if m, value, _, bound, ok := eng.TT.Load(pos.ZobristKey, eng.ply()); ok {
		eng.Stats.CacheHit++
		switch bound {
		case tt.BoundExact:
			return value
		case tt.BoundLower:
			if value >= beta {
				return value
			}
		case tt.BoundUpper:
			if value <= alpha {
				return value
			}
		}
		_ = m
	} else {
		eng.Stats.CacheMiss++
	}

	us := pos.SideToMove
	inCheck := pos.IsInCheck(us)

	var candidates []move.Move
	if inCheck {
		candidates = pos.GenerateMoves(make([]move.Move, 0, MovesLimit))
	} else {
		candidates = pos.GenerateCaptures(make([]move.Move, 0, 32))
	}
	if len(candidates) == 0 {
		if inCheck {
			return -Checkmate + eng.ply()
		}
		return alpha
	}

	_, ordered := orderMoves(candidates, move.Invalid, [KillerSlots]move.Move{})

	bestScore := alpha
	for _, m := range ordered {
		if !inCheck && m.IsCapture() && eval.SEESign(pos, m) {
			continue
		}

		pos.Make(m)
		if !inCheck && pos.IsInCheck(us) {
			pos.Unmake(m)
			continue
		}
		score := -eng.quiescence(-beta, -alpha)
		pos.Unmake(m)

		if eng.stopped {
			return alpha
		}
		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
			bestScore = score
		}
	}
	return bestScore
}

// searchTree is the negamax alpha-beta routine (spec section 4.9). It
// fails soft: the returned score may lie outside [alpha, beta].
func (eng *Engine) searchTree(alpha, beta, depth int) int {
	ply := eng.ply()
	pvNode := alpha+1 < beta
	pos := eng.Position
	us := pos.SideToMove

	eng.Stats.Nodes++
	eng.pollAbort()
	if eng.stopped {
		return alpha
	}
	if pvNode && ply > eng.Stats.SelDepth {
		eng.Stats.SelDepth = ply
	}
	eng.pv.clear(ply)

	if score, done := eng.endPosition(); done {
		if ply != 0 || score != 0 {
			return score
		}
	}

	if a := -(Checkmate - ply); a > alpha {
		alpha = a
	}
	if b := Checkmate - ply - 1; b < beta {
		beta = b
	}
	if alpha >= beta {
		return alpha
	}

	inCheck := pos.IsInCheck(us)
	if depth <= 0 && !inCheck {
		return eng.quiescence(alpha, beta)
	}

	hashMoveRaw := move.Invalid
	if m, value, storedDepth, bound, ok := eng.TT.Load(pos.ZobristKey, ply); ok {
		eng.Stats.CacheHit++
		hashMoveRaw = m
		if storedDepth >= depth {
			switch bound {
			case tt.BoundExact:
				if alpha < value && value < beta {
					eng.pv.moves[ply][0] = m
					eng.pv.length[ply] = 1
				}
				return value
			case tt.BoundLower:
				if value >= beta {
					return value
				}
			case tt.BoundUpper:
				if value <= alpha {
					return value
				}
			}
		}
	} else {
		eng.Stats.CacheMiss++
	}

	if depth > NullMoveReduction && !inCheck && hasNonPawnMaterial(pos, us) &&
		-NearCheckmate < alpha && beta < NearCheckmate {
		r := NullMoveReduction
		if depth >= NullMoveDeepDepth {
			r++
		}
		pos.MakeNull()
		score := -eng.searchTree(-beta, -beta+1, depth-1-r)
		pos.UnmakeNull()
		if eng.stopped {
			return alpha
		}
		if score >= beta {
			return score
		}
	}

	moves := pos.GenerateMoves(make([]move.Move, 0, MovesLimit))
	if len(moves) == 0 {
		if inCheck {
			return -Checkmate + ply
		}
		return DrawValue
	}

	searchDepth := depth
	if inCheck || len(moves) == 1 {
		searchDepth++
	}

	hashMove := move.Invalid
	if containsMove(moves, hashMoveRaw) {
		hashMove = hashMoveRaw
	}
	irreducible, ordered := orderMoves(moves, hashMove, eng.killers[ply])

	static := eng.Score()
	bestMove := move.Invalid
	bestScore := -Infinity
	localAlpha := alpha
	dropped := false
	searched := 0

	for i, m := range ordered {
		preDangerous := inCheck || localAlpha < -NearCheckmate || isDangerousPawnAdvance(pos, m)

		pos.Make(m)
		givesCheck := pos.IsInCheck(us.Other())
		dangerous := preDangerous || givesCheck

		if depth < len(futilityMargins) && !inCheck && !dangerous &&
			isFutile(static, localAlpha, futilityMargins[depth], m) {
			dropped = true
			if static > bestScore {
				bestScore = static
			}
			pos.Unmake(m)
			continue
		}

		childDepth := searchDepth - 1
		reducible := i >= irreducible && !dangerous

		var score int
		switch {
		case reducible:
			score = -eng.searchTree(-localAlpha-1, -localAlpha, childDepth-LateMoveReduction)
			if score > localAlpha {
				score = -eng.searchTree(-localAlpha-1, -localAlpha, childDepth)
				if localAlpha < score && score < beta {
					score = -eng.searchTree(-beta, -localAlpha, childDepth)
				}
			}
		case searched > 0:
			score = -eng.searchTree(-localAlpha-1, -localAlpha, childDepth)
			if localAlpha < score && score < beta {
				score = -eng.searchTree(-beta, -localAlpha, childDepth)
			}
		default:
			score = -eng.searchTree(-beta, -localAlpha, childDepth)
		}
		searched++

		pos.Unmake(m)

		if eng.stopped {
			return localAlpha
		}

		if score >= beta {
			eng.saveKiller(ply, m)
			eng.TT.Store(pos.ZobristKey, m, score, depth, tt.BoundLower, ply)
			return score
		}
		if score > bestScore {
			bestMove = m
			bestScore = score
			if score > localAlpha {
				localAlpha = score
				eng.pv.prepend(ply, m)
			}
		}
	}

	if !dropped {
		if bestMove == move.Invalid {
			if inCheck {
				bestScore = -Checkmate + ply
			} else {
				bestScore = DrawValue
			}
		}
		bound := tt.BoundUpper
		if bestScore > alpha {
			bound = tt.BoundExact
		}
		eng.TT.Store(pos.ZobristKey, bestMove, bestScore, depth, bound, ply)
	}
	return bestScore
}
