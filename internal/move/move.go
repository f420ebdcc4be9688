// Package move implements the packed move encoding (spec section 4.3):
// a 32-bit integer carrying {from, to, moving piece, captured piece,
// special}, with the zero value reserved as the Invalid sentinel.
package move

import (
	"github.com/FireFather/absolute-zero-go/internal/bitset"
	"github.com/FireFather/absolute-zero-go/internal/piece"
)

// Move is a packed move: bits 0..5 from, 6..11 to, 12..15 moving piece,
// 16..19 captured piece, 20..23 special.
type Move uint32

// Invalid is the zero move; no legal move ever encodes to zero, since
// the moving-piece field is never Empty for a real move.
const Invalid Move = 0

const (
	fromShift     = 0
	toShift       = 6
	movingShift   = 12
	capturedShift = 16
	specialShift  = 20

	squareMask = 0x3F
	pieceMask  = 0x0F
)

// New packs a move. special carries the promotion target (for
// promotions), the moving pawn (for en passant), or the moving king
// (for castling); pass piece.Empty for an ordinary move.
func New(from, to int, moving, captured, special piece.Piece) Move {
	return Move(uint32(from&squareMask)<<fromShift |
		uint32(to&squareMask)<<toShift |
		uint32(moving&pieceMask)<<movingShift |
		uint32(captured&pieceMask)<<capturedShift |
		uint32(special&pieceMask)<<specialShift)
}

// From returns the origin square.
func (m Move) From() int { return int(m>>fromShift) & squareMask }

// To returns the destination square.
func (m Move) To() int { return int(m>>toShift) & squareMask }

// Moving returns the moving piece (colour+type).
func (m Move) Moving() piece.Piece { return piece.Piece(m>>movingShift) & pieceMask }

// Captured returns the captured piece, or piece.Empty if none.
func (m Move) Captured() piece.Piece { return piece.Piece(m>>capturedShift) & pieceMask }

// Special returns the special-field piece (promotion target, en-passant
// pawn, or castling king), or piece.Empty for an ordinary move.
func (m Move) Special() piece.Piece { return piece.Piece(m>>specialShift) & pieceMask }

// IsCapture reports whether the move captures a piece (including en
// passant, whose captured pawn is recorded in the Captured field same
// as any other capture).
func (m Move) IsCapture() bool {
	return m.Captured() != piece.Empty
}

// IsCastle reports whether the special field discriminates a castling
// move (it carries the moving king).
func (m Move) IsCastle() bool {
	return m.Special().Type() == piece.TypeKing
}

// IsEnPassant reports whether the special field discriminates an
// en-passant capture (it carries the capturing pawn).
func (m Move) IsEnPassant() bool {
	return m.Special().Type() == piece.TypePawn
}

// IsPromotion reports whether the moving piece is a pawn reaching the
// back rank. Uses the arithmetic test from spec section 4.3, which is
// valid under the a8=0/h1=63 square numbering: ranks 0..7 and 56..63
// are the promotion ranks.
func (m Move) IsPromotion() bool {
	if m.Moving().Type() != piece.TypePawn {
		return false
	}
	to := m.To()
	return (to-8)*(to-55) > 0
}

// IsQueenPromotion reports whether this is a promotion to a queen.
func (m Move) IsQueenPromotion() bool {
	return m.IsPromotion() && m.Special().Type() == piece.TypeQueen
}

// promoLetter maps a promotion type code to its lowercase UCI letter.
var promoLetter = map[piece.Piece]byte{
	piece.TypeQueen:  'q',
	piece.TypeRook:   'r',
	piece.TypeBishop: 'b',
	piece.TypeKnight: 'n',
}

// UCI renders the move in coordinate notation: <from><to>[promotion].
func (m Move) UCI() string {
	s := bitset.Algebraic(m.From()) + bitset.Algebraic(m.To())
	if m.IsPromotion() {
		s += string(promoLetter[m.Special().Type()])
	}
	return s
}

func (m Move) String() string {
	if m == Invalid {
		return "0000"
	}
	return m.UCI()
}
