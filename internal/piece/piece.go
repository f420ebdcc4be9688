// Package piece encodes chess pieces and colours as small integers and
// carries the PieceValue table.
//
// PieceValue lives here, rather than in the evaluator, specifically to
// avoid a dependency cycle: the legal move generator wants piece values
// for capture-ordering (MVV/LVA-like) heuristics, and the evaluator wants
// them for material scoring. Keeping the table in this leaf package lets
// both depend on it without depending on each other.
package piece

// Colour identifies the side a piece belongs to.
type Colour uint8

const (
	White Colour = 0
	Black Colour = 1
)

// Other returns the opposing colour.
func (c Colour) Other() Colour {
	return c ^ 1
}

// Piece is a compact colour+type encoding: bit 0 is colour (White=0,
// Black=1), bits 1..3 are the piece type. 0 means Empty.
type Piece uint8

// Type codes, pre-shifted into bits 1..3 so that Type|Colour forms a Piece.
const (
	TypeEmpty  Piece = 0
	TypePawn   Piece = 2
	TypeKnight Piece = 4
	TypeBishop Piece = 6
	TypeRook   Piece = 8
	TypeQueen  Piece = 10
	TypeKing   Piece = 12
)

const (
	Empty       Piece = 0
	WhitePawn   Piece = TypePawn
	BlackPawn   Piece = TypePawn | 1
	WhiteKnight Piece = TypeKnight
	BlackKnight Piece = TypeKnight | 1
	WhiteBishop Piece = TypeBishop
	BlackBishop Piece = TypeBishop | 1
	WhiteRook   Piece = TypeRook
	BlackRook   Piece = TypeRook | 1
	WhiteQueen  Piece = TypeQueen
	BlackQueen  Piece = TypeQueen | 1
	WhiteKing   Piece = TypeKing
	BlackKing   Piece = TypeKing | 1
)

const (
	colourMask Piece = 0x01
	typeMask   Piece = 0x0E
)

// New builds a Piece from a colour and a type code (one of the Type*
// constants).
func New(c Colour, t Piece) Piece {
	return t | Piece(c)
}

// Colour extracts the colour bit.
func (p Piece) Colour() Colour {
	return Colour(p & colourMask)
}

// Type extracts the type code, still shifted into bits 1..3 (so it
// compares directly against the Type* constants).
func (p Piece) Type() Piece {
	return p & typeMask
}

// IsEmpty reports whether p represents no piece.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// PieceValue gives the classic material value of each piece, indexed by
// the full Piece encoding (both colours of a type share a value). Index
// 0 (Empty) is 0.
var PieceValue = [14]int{
	Empty:       0,
	WhitePawn:   100,
	BlackPawn:   100,
	WhiteKnight: 325,
	BlackKnight: 325,
	WhiteBishop: 325,
	BlackBishop: 325,
	WhiteRook:   500,
	BlackRook:   500,
	WhiteQueen:  975,
	BlackQueen:  975,
	WhiteKing:   10000,
	BlackKing:   10000,
}

// Symbol renders p as its FEN letter ('.' for Empty).
func (p Piece) Symbol() byte {
	return symbols[p]
}

var symbols = [14]byte{
	Empty:       '.',
	WhitePawn:   'P',
	BlackPawn:   'p',
	WhiteKnight: 'N',
	BlackKnight: 'n',
	WhiteBishop: 'B',
	BlackBishop: 'b',
	WhiteRook:   'R',
	BlackRook:   'r',
	WhiteQueen:  'Q',
	BlackQueen:  'q',
	WhiteKing:   'K',
	BlackKing:   'k',
}

// FromSymbol parses a FEN piece letter. ok is false for an unrecognised
// letter.
func FromSymbol(b byte) (p Piece, ok bool) {
	switch b {
	case 'P':
		return WhitePawn, true
	case 'p':
		return BlackPawn, true
	case 'N':
		return WhiteKnight, true
	case 'n':
		return BlackKnight, true
	case 'B':
		return WhiteBishop, true
	case 'b':
		return BlackBishop, true
	case 'R':
		return WhiteRook, true
	case 'r':
		return BlackRook, true
	case 'Q':
		return WhiteQueen, true
	case 'q':
		return BlackQueen, true
	case 'K':
		return WhiteKing, true
	case 'k':
		return BlackKing, true
	default:
		return Empty, false
	}
}
