// Package zobrist holds the deterministic random tables used to
// incrementally maintain a position's Zobrist key (spec section 4.4).
//
// The tables only expose primitive-indexed words (piece+square, file,
// colour) rather than taking a whole Position, so that this package has
// no dependency on internal/board — internal/board depends on this
// package and folds the words in itself, avoiding a cycle.
package zobrist

import (
	"math/rand"

	"github.com/FireFather/absolute-zero-go/internal/piece"
)

var (
	// PieceSquare[p][sq] is the word for piece p sitting on square sq.
	PieceSquare [14][64]uint64

	// CastleKingside[c] and CastleQueenside[c] are the words for each
	// colour's corresponding castling right.
	CastleKingside  [2]uint64
	CastleQueenside [2]uint64

	// EnPassant[sq] is the word for an en-passant target on square sq.
	// The table is filled per file and replicated across ranks (spec
	// section 4.4 / section 9 open question): two positions differing
	// only in which rank an en-passant square theoretically sits on
	// would hash identically, which is benign since chess rules only
	// ever place an en-passant target on rank 3 or rank 6.
	EnPassant [64]uint64

	// Colour is XORed in when it is Black's move.
	Colour uint64
)

// seed is fixed so that the tables — and therefore every Zobrist key —
// are reproducible across runs and across machines.
const seed = 1

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

func init() {
	r := rand.New(rand.NewSource(seed))

	for p := piece.Empty; p <= piece.BlackKing; p++ {
		for sq := 0; sq < 64; sq++ {
			PieceSquare[p][sq] = rand64(r)
		}
	}

	var fileWord [8]uint64
	for f := 0; f < 8; f++ {
		fileWord[f] = rand64(r)
	}
	for sq := 0; sq < 64; sq++ {
		EnPassant[sq] = fileWord[sq&7]
	}

	CastleKingside[piece.White] = rand64(r)
	CastleKingside[piece.Black] = rand64(r)
	CastleQueenside[piece.White] = rand64(r)
	CastleQueenside[piece.Black] = rand64(r)

	Colour = rand64(r)
}
