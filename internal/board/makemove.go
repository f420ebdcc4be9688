package board

import (
	"github.com/FireFather/absolute-zero-go/internal/bitset"
	"github.com/FireFather/absolute-zero-go/internal/move"
	"github.com/FireFather/absolute-zero-go/internal/piece"
	"github.com/FireFather/absolute-zero-go/internal/zobrist"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// enPassantCaptureSquare returns the square of the pawn actually removed
// by an en-passant capture landing on to, made by side.
func enPassantCaptureSquare(side piece.Colour, to int) int {
	if side == piece.White {
		return to + 8
	}
	return to - 8
}

func castleRookSquares(kingTo int, kingFrom int) (rookFrom, rookTo int) {
	rank := bitset.Rank(kingFrom)
	if bitset.File(kingTo) == 6 {
		return bitset.SquareOf(7, rank), bitset.SquareOf(5, rank)
	}
	return bitset.SquareOf(0, rank), bitset.SquareOf(3, rank)
}

// updateCastleRightsFor clears whatever castling rights are lost because
// a piece left (or a capture landed on) the king or rook home square sq.
func (p *Position) updateCastleRightsFor(sq int) {
	switch sq {
	case WhiteKingHome:
		p.clearCastleKingside(piece.White)
		p.clearCastleQueenside(piece.White)
	case BlackKingHome:
		p.clearCastleKingside(piece.Black)
		p.clearCastleQueenside(piece.Black)
	case WhiteRookA:
		p.clearCastleQueenside(piece.White)
	case WhiteRookH:
		p.clearCastleKingside(piece.White)
	case BlackRookA:
		p.clearCastleQueenside(piece.Black)
	case BlackRookH:
		p.clearCastleKingside(piece.Black)
	}
}

// Make applies m to the position, maintaining the incremental Zobrist
// key, material totals, castling rights, en-passant state and the
// fifty-move clock (spec section 4.5). Pushes one entry of history.
func (p *Position) Make(m move.Move) {
	ply := p.Ply
	p.enPassantHistory[ply] = p.EnPassant
	p.fiftyMovesHistory[ply] = p.HalfmoveClock
	p.zobristKeyHistory[ply] = p.ZobristKey
	p.castleKingsideHistory[ply] = p.CastleKingside
	p.castleQueensideHistory[ply] = p.CastleQueenside

	side := p.SideToMove
	from, to := m.From(), m.To()
	moving := m.Moving()
	captured := m.Captured()
	special := m.Special()

	if p.EnPassant != bitset.InvalidSquare {
		p.ZobristKey ^= zobrist.EnPassant[p.EnPassant]
	}
	newEnPassant := bitset.InvalidSquare

	if moving.Type() == piece.TypePawn || m.IsCapture() {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}

	if m.IsCapture() {
		capSq := to
		if m.IsEnPassant() {
			capSq = enPassantCaptureSquare(side, to)
		}
		p.remove(capSq, captured)
		p.Material[captured.Colour()] -= piece.PieceValue[captured]
		p.updateCastleRightsFor(capSq)
	}

	p.updateCastleRightsFor(from)

	p.remove(from, moving)
	if m.IsPromotion() {
		promoted := piece.New(side, special.Type())
		p.put(to, promoted)
		p.Material[side] += piece.PieceValue[promoted] - piece.PieceValue[moving]
	} else {
		p.put(to, moving)
		if moving.Type() == piece.TypePawn && abs(to-from) == 16 {
			newEnPassant = (from + to) / 2
		}
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(to, from)
		rook := piece.New(side, piece.TypeRook)
		p.remove(rookFrom, rook)
		p.put(rookTo, rook)
	}

	if newEnPassant != bitset.InvalidSquare {
		p.ZobristKey ^= zobrist.EnPassant[newEnPassant]
	}
	p.EnPassant = newEnPassant

	p.ZobristKey ^= zobrist.Colour
	p.SideToMove = side.Other()
	p.Ply++
}

// Unmake reverses the effect of Make(m), restoring the position to
// exactly the state it held before (spec section 8: make/unmake round
// trip must be bit-identical).
func (p *Position) Unmake(m move.Move) {
	p.Ply--
	ply := p.Ply
	side := p.SideToMove.Other()

	from, to := m.From(), m.To()
	moving := m.Moving()
	captured := m.Captured()
	special := m.Special()

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(to, from)
		rook := piece.New(side, piece.TypeRook)
		p.remove(rookTo, rook)
		p.put(rookFrom, rook)
	}

	if m.IsPromotion() {
		promoted := piece.New(side, special.Type())
		p.remove(to, promoted)
		p.put(from, moving)
		p.Material[side] += piece.PieceValue[moving] - piece.PieceValue[promoted]
	} else {
		p.remove(to, moving)
		p.put(from, moving)
	}

	if m.IsCapture() {
		capSq := to
		if m.IsEnPassant() {
			capSq = enPassantCaptureSquare(side, to)
		}
		p.put(capSq, captured)
		p.Material[captured.Colour()] += piece.PieceValue[captured]
	}

	p.EnPassant = p.enPassantHistory[ply]
	p.HalfmoveClock = p.fiftyMovesHistory[ply]
	p.ZobristKey = p.zobristKeyHistory[ply]
	p.CastleKingside = p.castleKingsideHistory[ply]
	p.CastleQueenside = p.castleQueensideHistory[ply]
	p.SideToMove = side
}

// MakeNull passes the move without moving a piece, for search's
// null-move pruning (spec section 4.9). Only side-to-move, en-passant
// state, the Zobrist key and the ply counter change (plus one entry of
// history).
func (p *Position) MakeNull() {
	ply := p.Ply
	p.enPassantHistory[ply] = p.EnPassant
	p.fiftyMovesHistory[ply] = p.HalfmoveClock
	p.zobristKeyHistory[ply] = p.ZobristKey
	p.castleKingsideHistory[ply] = p.CastleKingside
	p.castleQueensideHistory[ply] = p.CastleQueenside

	if p.EnPassant != bitset.InvalidSquare {
		p.ZobristKey ^= zobrist.EnPassant[p.EnPassant]
		p.EnPassant = bitset.InvalidSquare
	}
	p.ZobristKey ^= zobrist.Colour
	p.SideToMove = p.SideToMove.Other()
	p.Ply++
}

// UnmakeNull reverses MakeNull.
func (p *Position) UnmakeNull() {
	p.Ply--
	ply := p.Ply
	p.EnPassant = p.enPassantHistory[ply]
	p.HalfmoveClock = p.fiftyMovesHistory[ply]
	p.ZobristKey = p.zobristKeyHistory[ply]
	p.CastleKingside = p.castleKingsideHistory[ply]
	p.CastleQueenside = p.castleQueensideHistory[ply]
	p.SideToMove = p.SideToMove.Other()
}
