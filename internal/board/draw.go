package board

import (
	"github.com/FireFather/absolute-zero-go/internal/bitset"
	"github.com/FireFather/absolute-zero-go/internal/piece"
)

// Repetitions counts how many times the current position (by Zobrist
// key) has occurred, including the current occurrence, looking back no
// further than the last irreversible move (the fifty-move clock reset
// point — a pawn move, a capture, or a castling-rights change wipes out
// any earlier matching key). Used for the threefold-repetition check
// named in spec section 4.9 and its end-to-end scenario 5.
func (p *Position) Repetitions() int {
	count := 1
	limit := p.Ply - p.HalfmoveClock
	if limit < 0 {
		limit = 0
	}
	for ply := p.Ply - 1; ply >= limit; ply-- {
		if p.zobristKeyHistory[ply] == p.ZobristKey {
			count++
		}
	}
	return count
}

// HasRepeated reports whether the current position has occurred at
// least n times in total.
func (p *Position) HasRepeated(n int) bool {
	return p.Repetitions() >= n
}

// IsFiftyMoveDraw reports whether the fifty-move rule applies (100
// halfmoves without a pawn move or capture).
func (p *Position) IsFiftyMoveDraw() bool {
	return p.HalfmoveClock >= 100
}

// InsufficientMaterial reports whether neither side has enough material
// left to force checkmate: king vs king, king+minor vs king, or
// king+bishop vs king+bishop with both bishops on the same square
// colour.
func (p *Position) InsufficientMaterial() bool {
	if p.PieceBB[piece.WhitePawn] != 0 || p.PieceBB[piece.BlackPawn] != 0 {
		return false
	}
	if p.PieceBB[piece.WhiteRook] != 0 || p.PieceBB[piece.BlackRook] != 0 {
		return false
	}
	if p.PieceBB[piece.WhiteQueen] != 0 || p.PieceBB[piece.BlackQueen] != 0 {
		return false
	}

	whiteMinors := bitset.PopCount(p.PieceBB[piece.WhiteKnight]) + bitset.PopCount(p.PieceBB[piece.WhiteBishop])
	blackMinors := bitset.PopCount(p.PieceBB[piece.BlackKnight]) + bitset.PopCount(p.PieceBB[piece.BlackBishop])

	if whiteMinors == 0 && blackMinors == 0 {
		return true
	}
	if whiteMinors == 1 && blackMinors == 0 && p.PieceBB[piece.WhiteKnight] == 0 {
		return true // lone white bishop
	}
	if whiteMinors == 0 && blackMinors == 1 && p.PieceBB[piece.BlackKnight] == 0 {
		return true // lone black bishop
	}
	if whiteMinors == 1 && blackMinors == 1 &&
		p.PieceBB[piece.WhiteKnight] == 0 && p.PieceBB[piece.BlackKnight] == 0 {
		// Single bishop each: drawn only if they sit on the same square colour.
		wSq := bitset.ScanForward(p.PieceBB[piece.WhiteBishop])
		bSq := bitset.ScanForward(p.PieceBB[piece.BlackBishop])
		return squareColour(wSq) == squareColour(bSq)
	}
	if whiteMinors == 1 && blackMinors == 0 && p.PieceBB[piece.WhiteBishop] == 0 {
		return true // lone white knight
	}
	if whiteMinors == 0 && blackMinors == 1 && p.PieceBB[piece.BlackBishop] == 0 {
		return true // lone black knight
	}
	return false
}

func squareColour(sq int) int {
	return (sq + sq/8) & 1
}
