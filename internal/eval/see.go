package eval

import (
	"github.com/FireFather/absolute-zero-go/internal/attack"
	"github.com/FireFather/absolute-zero-go/internal/bitset"
	"github.com/FireFather/absolute-zero-go/internal/board"
	"github.com/FireFather/absolute-zero-go/internal/move"
	"github.com/FireFather/absolute-zero-go/internal/piece"
)

// seeValue gives the material value used by SEE, kept separate from
// piece.PieceValue so the exchange evaluator can be tuned on its own
// (spec section 4.7).
var seeValue = [14]int{
	piece.Empty:       0,
	piece.WhitePawn:   100,
	piece.BlackPawn:   100,
	piece.WhiteKnight: 325,
	piece.BlackKnight: 325,
	piece.WhiteBishop: 325,
	piece.BlackBishop: 325,
	piece.WhiteRook:   500,
	piece.BlackRook:   500,
	piece.WhiteQueen:  975,
	piece.BlackQueen:  975,
	piece.WhiteKing:   20000,
	piece.BlackKing:   20000,
}

func sqBB(sq int) bitset.Board { return bitset.Board(1) << uint(sq) }

// smallestAttacker finds the least valuable attacker of colour side on
// sq, restricted to the pieces still present in occ. Returns ok=false
// once no attacker remains.
func smallestAttacker(pos *board.Position, sq int, side piece.Colour, occ bitset.Board) (int, piece.Piece, bool) {
	if bb := attack.Pawn[side.Other()][sq] & pos.PieceBB[piece.New(side, piece.TypePawn)] & occ; bb != 0 {
		return bitset.ScanForward(bb), piece.TypePawn, true
	}
	if bb := attack.Knight[sq] & pos.PieceBB[piece.New(side, piece.TypeKnight)] & occ; bb != 0 {
		return bitset.ScanForward(bb), piece.TypeKnight, true
	}
	diag := pos.Attacks.Bishop(sq, occ)
	if bb := diag & pos.PieceBB[piece.New(side, piece.TypeBishop)] & occ; bb != 0 {
		return bitset.ScanForward(bb), piece.TypeBishop, true
	}
	axis := pos.Attacks.Rook(sq, occ)
	if bb := axis & pos.PieceBB[piece.New(side, piece.TypeRook)] & occ; bb != 0 {
		return bitset.ScanForward(bb), piece.TypeRook, true
	}
	if bb := (diag | axis) & pos.PieceBB[piece.New(side, piece.TypeQueen)] & occ; bb != 0 {
		return bitset.ScanForward(bb), piece.TypeQueen, true
	}
	if bb := attack.King[sq] & pos.PieceBB[piece.New(side, piece.TypeKing)] & occ; bb != 0 {
		return bitset.ScanForward(bb), piece.TypeKing, true
	}
	return 0, piece.Empty, false
}

// SEE returns the static exchange evaluation of capture m: the net
// material balance of playing every capture on m.To() in increasing
// order of attacker value, from both sides, until neither side wants to
// continue (spec section 4.7 and the swap algorithm it is grounded on).
// Non-captures evaluate to 0.
func SEE(pos *board.Position, m move.Move) int {
	if !m.IsCapture() {
		return 0
	}
	to := m.To()
	mover := m.Moving()
	side := mover.Colour()

	occ := pos.Occupied &^ sqBB(m.From())
	if m.IsEnPassant() {
		capSq := to + 8
		if side == piece.Black {
			capSq = to - 8
		}
		occ &^= sqBB(capSq)
	}

	gain := make([]int, 1, 32)
	gain[0] = seeValue[m.Captured()]
	attackerValue := seeValue[mover]
	turn := side.Other()

	for {
		fromSq, attackerType, ok := smallestAttacker(pos, to, turn, occ)
		if !ok {
			break
		}
		gain = append(gain, attackerValue-gain[len(gain)-1])
		attackerValue = seeValue[piece.New(turn, attackerType)]
		occ &^= sqBB(fromSq)
		turn = turn.Other()
	}

	for i := len(gain) - 2; i >= 0; i-- {
		if -gain[i+1] < gain[i] {
			gain[i] = -gain[i+1]
		}
	}
	return gain[0]
}

// SEESign reports whether SEE(m) is negative without always running the
// full swap loop: a move where the moving piece is worth no more than
// what it captures can never lose material.
func SEESign(pos *board.Position, m move.Move) bool {
	if seeValue[m.Moving()] <= seeValue[m.Captured()] {
		return false
	}
	return SEE(pos, m) < 0
}
