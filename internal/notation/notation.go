// Package notation renders and parses the two move text formats named
// in spec section 6: UCI coordinate notation ("e2e4", "e7e8q") and
// standard algebraic notation ("Nf3", "Rxe8+", "O-O", "exd8=Q#").
//
// Grounded on the teacher's decision to give text-format concerns their
// own package (`notation/epd.go`), though the teacher's own package
// only covers EPD test records; SAN/UCI rendering is built fresh from
// spec.md section 6 in that package's style: small pure functions, no
// package-level state.
package notation

import (
	"strings"

	"github.com/FireFather/absolute-zero-go/internal/bitset"
	"github.com/FireFather/absolute-zero-go/internal/board"
	"github.com/FireFather/absolute-zero-go/internal/move"
	"github.com/FireFather/absolute-zero-go/internal/piece"
)

// UCI renders m in coordinate notation: "e2e4", or "e7e8q" for a
// promotion. Delegates to move.Move.UCI, which already owns the
// encoding.
func UCI(m move.Move) string {
	return m.UCI()
}

// ParseUCI decodes a coordinate-notation move against pos, returning
// move.Invalid if s does not name a legal move from this position.
func ParseUCI(pos *board.Position, s string) move.Move {
	return pos.ParseUCIMove(s)
}

// pieceLetter returns the SAN piece letter for p's type ('N', 'B',
// 'R', 'Q', 'K'), or 0 for a pawn (pawns carry no letter in SAN).
func pieceLetter(p piece.Piece) byte {
	switch p.Type() {
	case piece.TypeKnight:
		return 'N'
	case piece.TypeBishop:
		return 'B'
	case piece.TypeRook:
		return 'R'
	case piece.TypeQueen:
		return 'Q'
	case piece.TypeKing:
		return 'K'
	}
	return 0
}

// SAN renders m, which must be legal in pos, in standard algebraic
// notation, including the +/# suffix produced by actually playing the
// move (spec section 6). pos itself is not mutated.
func SAN(pos *board.Position, m move.Move) string {
	if m.IsCastle() {
		return castleSAN(m) + checkSuffix(pos, m)
	}

	mover := m.Moving()
	var sb strings.Builder

	if letter := pieceLetter(mover); letter != 0 {
		sb.WriteByte(letter)
		sb.WriteString(disambiguation(pos, m))
	} else if m.IsCapture() {
		sb.WriteByte(byte('a' + bitset.File(m.From())))
	}

	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(bitset.Algebraic(m.To()))

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(pieceLetter(m.Special()))
	}

	sb.WriteString(checkSuffix(pos, m))
	return sb.String()
}

func castleSAN(m move.Move) string {
	if bitset.File(m.To()) == bitset.File(board.WhiteKingsideTo) {
		return "O-O"
	}
	return "O-O-O"
}

// disambiguation returns the minimal file, rank, or full-square prefix
// needed to tell m apart from every other legal move that brings the
// same piece type to the same destination square.
func disambiguation(pos *board.Position, m move.Move) string {
	moves := pos.GenerateMoves(make([]move.Move, 0, 64))

	sameFile, sameRank, ambiguous := false, false, false
	for _, other := range moves {
		if other == m || other.Moving() != m.Moving() || other.To() != m.To() {
			continue
		}
		ambiguous = true
		if bitset.File(other.From()) == bitset.File(m.From()) {
			sameFile = true
		}
		if bitset.Rank(other.From()) == bitset.Rank(m.From()) {
			sameRank = true
		}
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string([]byte{byte('a' + bitset.File(m.From()))})
	case !sameRank:
		return string([]byte{byte('8' - bitset.Rank(m.From()))})
	default:
		return bitset.Algebraic(m.From())
	}
}

// checkSuffix plays m on a scratch copy of pos (Position holds no
// pointers of its own besides the shared attack cache, whose entries are
// recomputed whenever the occupancy no longer matches, so a plain value
// copy is a safe snapshot) and reports the SAN check/checkmate suffix.
func checkSuffix(pos *board.Position, m move.Move) string {
	cp := *pos
	cp.Make(m)
	if !cp.IsInCheck(cp.SideToMove) {
		return ""
	}
	if len(cp.GenerateMoves(make([]move.Move, 0, 64))) == 0 {
		return "#"
	}
	return "+"
}
