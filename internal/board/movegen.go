package board

import (
	"github.com/FireFather/absolute-zero-go/internal/attack"
	"github.com/FireFather/absolute-zero-go/internal/bitset"
	"github.com/FireFather/absolute-zero-go/internal/move"
	"github.com/FireFather/absolute-zero-go/internal/piece"
)

func sqBB(sq int) bitset.Board { return bitset.Board(1) << uint(sq) }

// IsAttacked reports whether sq is attacked by any piece of colour by.
// Works by placing each attacker type on sq and checking whether its
// attack pattern reaches a real attacker of that type — the standard
// "attacked from" trick, symmetric for jumping and sliding pieces alike.
func (p *Position) IsAttacked(sq int, by piece.Colour) bool {
	if attack.Knight[sq]&p.PieceBB[piece.New(by, piece.TypeKnight)] != 0 {
		return true
	}
	if attack.King[sq]&p.PieceBB[piece.New(by, piece.TypeKing)] != 0 {
		return true
	}
	if attack.Pawn[by.Other()][sq]&p.PieceBB[piece.New(by, piece.TypePawn)] != 0 {
		return true
	}
	diagAttackers := p.PieceBB[piece.New(by, piece.TypeBishop)] | p.PieceBB[piece.New(by, piece.TypeQueen)]
	if p.Attacks.Bishop(sq, p.Occupied)&diagAttackers != 0 {
		return true
	}
	axisAttackers := p.PieceBB[piece.New(by, piece.TypeRook)] | p.PieceBB[piece.New(by, piece.TypeQueen)]
	if p.Attacks.Rook(sq, p.Occupied)&axisAttackers != 0 {
		return true
	}
	return false
}

// IsInCheck reports whether c's king is currently attacked.
func (p *Position) IsInCheck(c piece.Colour) bool {
	return p.IsAttacked(p.KingSquare(c), c.Other())
}

type pinDir struct {
	mask    [64]bitset.Board
	forward bool
	diag    bool
}

var pinDirs = []pinDir{
	{bitset.RayN, false, false},
	{bitset.RayS, true, false},
	{bitset.RayE, true, false},
	{bitset.RayW, false, false},
	{bitset.RayNE, false, true},
	{bitset.RayNW, false, true},
	{bitset.RaySE, true, true},
	{bitset.RaySW, true, true},
}

func firstBlocker(mask [64]bitset.Board, sq int, occ bitset.Board, forward bool) (int, bool) {
	blockers := mask[sq] & occ
	if blockers == 0 {
		return 0, false
	}
	if forward {
		return bitset.ScanForward(blockers), true
	}
	return bitset.ScanReverse(blockers), true
}

func isMatchingSlider(t piece.Piece, diag bool) bool {
	if diag {
		return t == piece.TypeBishop || t == piece.TypeQueen
	}
	return t == piece.TypeRook || t == piece.TypeQueen
}

// checkersAndPins computes the bitboard of enemy pieces currently
// checking side's king, and the bitboard of side's own pieces pinned
// against it (spec section 4.6, phase 1).
func (p *Position) checkersAndPins(side piece.Colour) (checkers, pinned bitset.Board) {
	enemy := side.Other()
	kingSq := p.KingSquare(side)

	checkers |= attack.Knight[kingSq] & p.PieceBB[piece.New(enemy, piece.TypeKnight)]
	checkers |= attack.Pawn[side][kingSq] & p.PieceBB[piece.New(enemy, piece.TypePawn)]
	checkers |= p.Attacks.Bishop(kingSq, p.Occupied) & (p.PieceBB[piece.New(enemy, piece.TypeBishop)] | p.PieceBB[piece.New(enemy, piece.TypeQueen)])
	checkers |= p.Attacks.Rook(kingSq, p.Occupied) & (p.PieceBB[piece.New(enemy, piece.TypeRook)] | p.PieceBB[piece.New(enemy, piece.TypeQueen)])

	for _, d := range pinDirs {
		first, ok := firstBlocker(d.mask, kingSq, p.Occupied, d.forward)
		if !ok {
			continue
		}
		if p.ColourBB[side]&sqBB(first) == 0 {
			continue
		}
		without := p.Occupied &^ sqBB(first)
		second, ok2 := firstBlocker(d.mask, kingSq, without, d.forward)
		if !ok2 {
			continue
		}
		sp := p.Square[second]
		if sp.Colour() == enemy && isMatchingSlider(sp.Type(), d.diag) {
			pinned |= sqBB(first)
		}
	}
	return checkers, pinned
}

// legalAfter simulates m, tests that side's king is safe, and reverts.
func (p *Position) legalAfter(m move.Move, side piece.Colour) bool {
	p.Make(m)
	ok := !p.IsInCheck(side)
	p.Unmake(m)
	return ok
}

func promotionTypes() [4]piece.Piece {
	return [4]piece.Piece{piece.TypeQueen, piece.TypeRook, piece.TypeBishop, piece.TypeKnight}
}

func (p *Position) genPawnMoves(side piece.Colour, moves []move.Move) []move.Move {
	pawn := piece.New(side, piece.TypePawn)
	forward, homeRank, backRank := -8, 6, 0
	if side == piece.Black {
		forward, homeRank, backRank = 8, 1, 7
	}
	bb := p.PieceBB[pawn]
	for bb != 0 {
		from := bitset.PopLSB(&bb)
		to := from + forward
		if to >= 0 && to < 64 && p.IsEmpty(to) {
			if bitset.Rank(to) == backRank {
				for _, t := range promotionTypes() {
					moves = append(moves, move.New(from, to, pawn, piece.Empty, piece.New(side, t)))
				}
			} else {
				moves = append(moves, move.New(from, to, pawn, piece.Empty, piece.Empty))
				if bitset.Rank(from) == homeRank {
					to2 := to + forward
					if p.IsEmpty(to2) {
						moves = append(moves, move.New(from, to2, pawn, piece.Empty, piece.Empty))
					}
				}
			}
		}
		targets := attack.Pawn[side][from] & p.ColourBB[side.Other()]
		for targets != 0 {
			target := bitset.PopLSB(&targets)
			captured := p.Square[target]
			if bitset.Rank(target) == backRank {
				for _, t := range promotionTypes() {
					moves = append(moves, move.New(from, target, pawn, captured, piece.New(side, t)))
				}
			} else {
				moves = append(moves, move.New(from, target, pawn, captured, piece.Empty))
			}
		}
	}
	return moves
}

func (p *Position) genKnightMoves(side piece.Colour, moves []move.Move) []move.Move {
	knight := piece.New(side, piece.TypeKnight)
	bb := p.PieceBB[knight]
	for bb != 0 {
		from := bitset.PopLSB(&bb)
		targets := attack.Knight[from] &^ p.ColourBB[side]
		for targets != 0 {
			to := bitset.PopLSB(&targets)
			moves = append(moves, move.New(from, to, knight, p.Square[to], piece.Empty))
		}
	}
	return moves
}

func (p *Position) genSliderMoves(side piece.Colour, pt piece.Piece, moves []move.Move) []move.Move {
	pc := piece.New(side, pt)
	bb := p.PieceBB[pc]
	for bb != 0 {
		from := bitset.PopLSB(&bb)
		var targets bitset.Board
		switch pt {
		case piece.TypeBishop:
			targets = p.Attacks.Bishop(from, p.Occupied)
		case piece.TypeRook:
			targets = p.Attacks.Rook(from, p.Occupied)
		case piece.TypeQueen:
			targets = p.Attacks.Queen(from, p.Occupied)
		}
		targets &^= p.ColourBB[side]
		for targets != 0 {
			to := bitset.PopLSB(&targets)
			moves = append(moves, move.New(from, to, pc, p.Square[to], piece.Empty))
		}
	}
	return moves
}

func (p *Position) genKingMoves(side piece.Colour, moves []move.Move) []move.Move {
	king := piece.New(side, piece.TypeKing)
	from := p.KingSquare(side)
	targets := attack.King[from] &^ p.ColourBB[side]
	for targets != 0 {
		to := bitset.PopLSB(&targets)
		moves = append(moves, move.New(from, to, king, p.Square[to], piece.Empty))
	}
	return moves
}

func (p *Position) genCastling(side piece.Colour, moves []move.Move) []move.Move {
	if p.IsInCheck(side) {
		return moves
	}
	king := piece.New(side, piece.TypeKing)
	enemy := side.Other()
	from := p.KingSquare(side)

	var kingHome, kingsideTo, kingsideSafe, queensideTo, queensideSafe int
	var kingsideEmpty, queensideEmpty bitset.Board
	if side == piece.White {
		kingHome, kingsideTo, kingsideSafe = WhiteKingHome, WhiteKingsideTo, WhiteKingsideSafe0
		queensideTo, queensideSafe = WhiteQueensideTo, WhiteQueensideSafe0
		kingsideEmpty = sqBB(61) | sqBB(62)
		queensideEmpty = sqBB(57) | sqBB(58) | sqBB(59)
	} else {
		kingHome, kingsideTo, kingsideSafe = BlackKingHome, BlackKingsideTo, BlackKingsideSafe0
		queensideTo, queensideSafe = BlackQueensideTo, BlackQueensideSafe0
		kingsideEmpty = sqBB(5) | sqBB(6)
		queensideEmpty = sqBB(1) | sqBB(2) | sqBB(3)
	}
	if from != kingHome {
		return moves
	}

	if p.CastleKingside[side] && p.Occupied&kingsideEmpty == 0 {
		if !p.IsAttacked(kingsideSafe, enemy) && !p.IsAttacked(kingsideTo, enemy) {
			moves = append(moves, move.New(from, kingsideTo, king, piece.Empty, king))
		}
	}
	if p.CastleQueenside[side] && p.Occupied&queensideEmpty == 0 {
		if !p.IsAttacked(queensideSafe, enemy) && !p.IsAttacked(queensideTo, enemy) {
			moves = append(moves, move.New(from, queensideTo, king, piece.Empty, king))
		}
	}
	return moves
}

func (p *Position) genEnPassant(side piece.Colour, moves []move.Move) []move.Move {
	if p.EnPassant == bitset.InvalidSquare {
		return moves
	}
	target := p.EnPassant
	pawn := piece.New(side, piece.TypePawn)
	enemyPawn := piece.New(side.Other(), piece.TypePawn)
	candidates := attack.Pawn[side.Other()][target] & p.PieceBB[pawn]
	for candidates != 0 {
		from := bitset.PopLSB(&candidates)
		m := move.New(from, target, pawn, enemyPawn, pawn)
		if p.legalAfter(m, side) {
			moves = append(moves, m)
		}
	}
	return moves
}

// GenerateMoves appends every legal move for the side to move onto
// moves and returns the extended slice (spec section 4.6). Non-king
// pieces use the fast path (no per-move legality simulation) only when
// there is no check and no pin; otherwise every candidate is simulated
// and reverted before being emitted.
func (p *Position) GenerateMoves(moves []move.Move) []move.Move {
	side := p.SideToMove
	checkers, pinned := p.checkersAndPins(side)

	moves = p.genCastling(side, moves)
	moves = p.genEnPassant(side, moves)
	moves = p.genKingMoves2(side, moves)

	var candidates []move.Move
	candidates = p.genPawnMoves(side, candidates)
	candidates = p.genKnightMoves(side, candidates)
	candidates = p.genSliderMoves(side, piece.TypeBishop, candidates)
	candidates = p.genSliderMoves(side, piece.TypeQueen, candidates)
	candidates = p.genSliderMoves(side, piece.TypeRook, candidates)

	if checkers == 0 && pinned == 0 {
		moves = append(moves, candidates...)
		return moves
	}
	for _, m := range candidates {
		if p.legalAfter(m, side) {
			moves = append(moves, m)
		}
	}
	return moves
}

// genKingMoves2 generates king moves with per-move legality simulation;
// a king's own destination safety can never be inferred from the
// checkers/pinned state of the position it is leaving.
func (p *Position) genKingMoves2(side piece.Colour, moves []move.Move) []move.Move {
	var candidates []move.Move
	candidates = p.genKingMoves(side, candidates)
	for _, m := range candidates {
		if p.legalAfter(m, side) {
			moves = append(moves, m)
		}
	}
	return moves
}

// GenerateCaptures appends pseudo-legal captures and promoting pawn
// pushes for the side to move (spec section 4.6's
// pseudo_quiescence_moves), without filtering for legality (except
// en-passant captures, which genEnPassant already filters): quiescence
// search tests legality itself after making the move.
func (p *Position) GenerateCaptures(moves []move.Move) []move.Move {
	side := p.SideToMove
	var candidates []move.Move
	candidates = p.genPawnMoves(side, candidates)
	candidates = p.genKnightMoves(side, candidates)
	candidates = p.genSliderMoves(side, piece.TypeBishop, candidates)
	candidates = p.genSliderMoves(side, piece.TypeQueen, candidates)
	candidates = p.genSliderMoves(side, piece.TypeRook, candidates)
	candidates = p.genKingMoves(side, candidates)
	candidates = p.genEnPassant(side, candidates)

	for _, m := range candidates {
		if m.IsCapture() || m.IsPromotion() {
			moves = append(moves, m)
		}
	}
	return moves
}
