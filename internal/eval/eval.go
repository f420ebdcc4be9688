// Package eval implements static position evaluation (spec section 4.7):
// phase-tapered material and piece-square scoring, king shelter, simple
// pawn-structure terms, and the single-priority immediate-capture bonus,
// plus static exchange evaluation (see.go).
//
// Grounded on the teacher's material.go piece-square tables (themselves
// Tomasz Michniewski's well-known "simplified evaluation" values), which
// are written from White's point of view with a1=0. This engine numbers
// squares a8=0/h1=63 instead, so table lookups go through pstIndex,
// which XORs in the vertical flip (sq^56) before mirroring for Black.
package eval

import (
	"github.com/FireFather/absolute-zero-go/internal/attack"
	"github.com/FireFather/absolute-zero-go/internal/bitset"
	"github.com/FireFather/absolute-zero-go/internal/board"
	"github.com/FireFather/absolute-zero-go/internal/move"
	"github.com/FireFather/absolute-zero-go/internal/piece"
)

const (
	MidGame = 0
	EndGame = 1
)

// Tunable bonuses, named and valued after the teacher's material.go.
const (
	BishopPairBonus    = 40
	KnightPawnBonus    = 6  // knights gain value with more pawns on board
	RookPawnPenalty    = 12 // rooks lose value with more pawns on board
	PawnDoubledPenalty = 16
	PawnIsolatedPenalty = 14
	PawnPassedBonus    = 20 // scaled by rank in pawnStructure()
	PawnDefendedBonus  = 4
	PawnThreatBonus    = 18
	KingShieldBonus    = 10
	PawnlessFilePenalty = 14
	CapturePriorityBonus = 15
	TempoBonus         = 10

	// BishopMobilityBonus and KnightMobilityBonus are paid per target
	// square a minor can reach that isn't covered by an enemy pawn,
	// after the teacher's wMobility (material.go).
	BishopMobilityBonus = 4
	KnightMobilityBonus = 4

	// MinorKingAttackBonus rewards a minor for reaching a square in the
	// enemy king's immediate ring, after the teacher's theirKingArea
	// bonus (material.go's evaluateFigure).
	MinorKingAttackBonus = 3

	// NoPawnsPenalty and PawnCountEndgameBonus implement the pawn-
	// deficiency term (spec section 4.7): a side with no pawns left has
	// no endgame promotion potential and is penalised hard; otherwise
	// more pawns mean a better endgame.
	NoPawnsPenalty        = 40
	PawnCountEndgameBonus = 5
)

// chebyshevDistance, rectilinearDistance and knightMoveDistance are
// precomputed square-to-square distance tables, after the teacher's
// misc.go distance table (Chebyshev king-step distance) extended with a
// knight-move BFS since a knight's reach doesn't follow king geometry.
var (
	chebyshevDistance   [64][64]int
	rectilinearDistance [64][64]int
	knightMoveDistance  [64][64]int
)

// knightEndgameBonus rewards a knight for closing in on the enemy king
// in the endgame, indexed by the combined rectilinear + knight-move
// distance between the two squares.
var knightEndgameBonus [29]int

// queenEndgameBonus mirrors the teacher's wQueenKingTropism, indexed by
// Chebyshev distance to the enemy king.
var queenEndgameBonus [8]int

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func init() {
	for a := 0; a < 64; a++ {
		fa, ra := bitset.File(a), bitset.Rank(a)
		for b := 0; b < 64; b++ {
			fb, rb := bitset.File(b), bitset.Rank(b)
			df, dr := abs(fa-fb), abs(ra-rb)
			if df > dr {
				chebyshevDistance[a][b] = df
			} else {
				chebyshevDistance[a][b] = dr
			}
			rectilinearDistance[a][b] = df + dr
		}
	}
	for a := 0; a < 64; a++ {
		knightMoveDistance[a] = bfsKnightDistance(a)
	}
	for d := 0; d < len(queenEndgameBonus); d++ {
		queenEndgameBonus[d] = (7 - d) * 3
	}
	for d := range knightEndgameBonus {
		b := 28 - d*2
		if b < 0 {
			b = 0
		}
		knightEndgameBonus[d] = b
	}
}

// bfsKnightDistance returns the minimum number of knight jumps from sq
// to every other square, breadth-first over attack.Knight's jump table.
func bfsKnightDistance(sq int) [64]int {
	var dist [64]int
	for i := range dist {
		dist[i] = -1
	}
	dist[sq] = 0
	queue := []int{sq}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		next := attack.Knight[cur]
		for next != 0 {
			s := bitset.PopLSB(&next)
			if dist[s] == -1 {
				dist[s] = dist[cur] + 1
				queue = append(queue, s)
			}
		}
	}
	return dist
}

// phaseWeight[type] is the classic tapering weight; totalPhase is their
// sum across both sides' starting material.
var phaseWeight = [14]int{
	piece.WhiteKnight: 1, piece.BlackKnight: 1,
	piece.WhiteBishop: 1, piece.BlackBishop: 1,
	piece.WhiteRook: 2, piece.BlackRook: 2,
	piece.WhiteQueen: 4, piece.BlackQueen: 4,
}

const totalPhase = 4*1 + 4*1 + 4*2 + 2*4

// pst[type][square][phase] is White-POV, a1=0 (teacher's original
// indexing); pstIndex converts this engine's a8=0 squares at lookup
// time instead of re-deriving the tables.
var pst = [7][64][2]int{
	1: { // pawn; index = pieceTypeIndex(piece.TypePawn)
		{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0},
		{5, 5}, {10, 10}, {10, 10}, {-20, -20}, {-20, -20}, {10, 10}, {10, 10}, {5, 5},
		{5, 5}, {-5, -5}, {-10, -10}, {0, 0}, {0, 0}, {-10, -10}, {-5, -5}, {5, 5},
		{0, 0}, {0, 0}, {0, 0}, {20, 20}, {20, 20}, {0, 0}, {0, 0}, {0, 0},
		{5, 5}, {5, 5}, {10, 10}, {25, 25}, {25, 25}, {10, 10}, {5, 5}, {5, 5},
		{10, 10}, {10, 10}, {20, 20}, {30, 30}, {30, 30}, {20, 20}, {10, 10}, {10, 10},
		{50, 50}, {50, 50}, {50, 50}, {50, 50}, {50, 50}, {50, 50}, {50, 50}, {50, 50},
		{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0},
	},
	2: { // knight
		{-50, -50}, {-40, -40}, {-30, -30}, {-30, -30}, {-30, -30}, {-30, -30}, {-40, -40}, {-50, -50},
		{-40, -40}, {-20, -20}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-20, -20}, {-40, -40},
		{-30, -30}, {0, 0}, {10, 10}, {15, 15}, {15, 15}, {10, 10}, {0, 0}, {-30, -30},
		{-30, -30}, {5, 5}, {15, 15}, {20, 20}, {20, 20}, {15, 15}, {5, 5}, {-30, -30},
		{-30, -30}, {0, 0}, {15, 15}, {20, 20}, {20, 20}, {15, 15}, {0, 0}, {-30, -30},
		{-30, -30}, {5, 5}, {10, 10}, {15, 15}, {15, 15}, {10, 10}, {5, 5}, {-30, -30},
		{-40, -40}, {-20, -20}, {0, 0}, {5, 5}, {5, 5}, {0, 0}, {-20, -20}, {-40, -40},
		{-50, -50}, {-40, -40}, {-30, -30}, {-30, -30}, {-30, -30}, {-30, -30}, {-40, -40}, {-50, -50},
	},
	3: { // bishop
		{-20, -20}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-20, -20},
		{-10, -10}, {5, 5}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {5, 5}, {-10, -10},
		{-10, -10}, {10, 10}, {10, 10}, {10, 10}, {10, 10}, {10, 10}, {10, 10}, {-10, -10},
		{-10, -10}, {0, 0}, {10, 10}, {10, 10}, {10, 10}, {10, 10}, {0, 0}, {-10, -10},
		{-10, -10}, {5, 5}, {5, 5}, {10, 10}, {10, 10}, {5, 5}, {5, 5}, {-10, -10},
		{-10, -10}, {0, 0}, {5, 5}, {10, 10}, {10, 10}, {5, 5}, {0, 0}, {-10, -10},
		{-10, -10}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-10, -10},
		{-20, -20}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-10, -10}, {-20, -20},
	},
	4: { // rook
		{0, 0}, {0, 0}, {0, 0}, {5, 5}, {5, 5}, {0, 0}, {0, 0}, {0, 0},
		{-5, -5}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-5, -5},
		{-5, -5}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-5, -5},
		{-5, -5}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-5, -5},
		{-5, -5}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-5, -5},
		{-5, -5}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-5, -5},
		{5, 5}, {10, 10}, {10, 10}, {10, 10}, {10, 10}, {10, 10}, {10, 10}, {5, 5},
		{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0},
	},
	5: { // queen
		{-20, -20}, {-10, -10}, {-10, -10}, {-5, -5}, {-5, -5}, {-10, -10}, {-10, -10}, {-20, -20},
		{-10, -10}, {0, 0}, {5, 5}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-10, -10},
		{-10, -10}, {5, 5}, {5, 5}, {5, 5}, {5, 5}, {5, 5}, {0, 0}, {-10, -10},
		{0, 0}, {0, 0}, {5, 5}, {5, 5}, {5, 5}, {5, 5}, {0, 0}, {-5, -5},
		{-5, -5}, {0, 0}, {5, 5}, {5, 5}, {5, 5}, {5, 5}, {0, 0}, {-5, -5},
		{-10, -10}, {0, 0}, {5, 5}, {5, 5}, {5, 5}, {5, 5}, {0, 0}, {-10, -10},
		{-10, -10}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {-10, -10},
		{-20, -20}, {-10, -10}, {-10, -10}, {-5, -5}, {-5, -5}, {-10, -10}, {-10, -10}, {-20, -20},
	},
	6: { // king
		{20, -50}, {30, -30}, {10, -30}, {0, -30}, {0, -30}, {10, -30}, {30, -30}, {20, -50},
		{20, -30}, {20, -30}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {20, -30}, {20, -30},
		{-10, -30}, {-20, -10}, {-20, 20}, {-20, 30}, {-20, 30}, {-20, 20}, {-20, -10}, {-10, -30},
		{-20, -30}, {-30, -10}, {-30, 30}, {-40, 40}, {-40, 40}, {-30, 30}, {-30, 10}, {-20, -30},
		{-30, -30}, {-40, -10}, {-40, 30}, {-50, 40}, {-50, 40}, {-40, 30}, {-40, -10}, {-30, -30},
		{-30, -30}, {-40, -10}, {-40, 20}, {-50, 30}, {-50, 30}, {-40, 20}, {-40, -10}, {-30, -30},
		{-30, -30}, {-40, -20}, {-40, -10}, {-50, 0}, {-50, 0}, {-40, -10}, {-40, -20}, {-30, -30},
		{-30, -50}, {-40, -40}, {-40, -30}, {-50, -20}, {-50, -20}, {-40, -30}, {-40, -40}, {-30, -50},
	},
}

// pieceTypeIndex maps a piece.Piece type code onto a small dense index
// for the pst array, since piece.Piece's type codes are sparse (2,4,..12).
func pieceTypeIndex(t piece.Piece) int {
	return int(t >> 1)
}

func pstIndex(sq int, c piece.Colour) int {
	white := sq ^ 56
	if c == piece.White {
		return white
	}
	return 63 - white
}

// Evaluate returns a score from White's perspective: positive favours
// White. Search negates it for the side to move. Accumulation starts
// from a small tempo bonus credited to whichever side is on move (spec
// section 4.7).
func Evaluate(pos *board.Position) int {
	phase := computePhase(pos)
	mg, eg := 0, 0

	tempo := TempoBonus
	if pos.SideToMove == piece.Black {
		tempo = -tempo
	}
	mg += tempo
	eg += tempo

	for c := piece.White; c <= piece.Black; c++ {
		sign := 1
		if c == piece.Black {
			sign = -1
		}
		m, e := materialAndPST(pos, c)
		mg += sign * m
		eg += sign * e

		if bitset.PopCount(pos.PieceBB[piece.New(c, piece.TypeBishop)]) >= 2 {
			mg += sign * BishopPairBonus
			eg += sign * BishopPairBonus
		}

		pawns := bitset.PopCount(pos.PieceBB[piece.New(c, piece.TypePawn)])
		knights := bitset.PopCount(pos.PieceBB[piece.New(c, piece.TypeKnight)])
		rooks := bitset.PopCount(pos.PieceBB[piece.New(c, piece.TypeRook)])
		mg += sign * (knights * (pawns - 5) * KnightPawnBonus / 5)
		eg += sign * (knights * (pawns - 5) * KnightPawnBonus / 5)
		mg -= sign * (rooks * (5 - pawns) * RookPawnPenalty / 5)
		eg -= sign * (rooks * (5 - pawns) * RookPawnPenalty / 5)

		ps, pe := pawnStructure(pos, c)
		mg += sign * ps
		eg += sign * pe

		shield := kingShield(pos, c)
		mg += sign * shield

		mg += sign * pawnThreats(pos, c)

		mmg, meg := minorMobility(pos, c)
		mg += sign * mmg
		eg += sign * meg

		eg += sign * queenKingTropism(pos, c)

		pdmg, pdeg := pawnDeficiency(pawns)
		mg += sign * pdmg
		eg += sign * pdeg
	}

	score := (mg*phase + eg*(totalPhase-phase)) / totalPhase
	score += capturePriorityBonus(pos)
	return score
}

func computePhase(pos *board.Position) int {
	phase := totalPhase
	for p := piece.Piece(0); p < 14; p++ {
		phase -= phaseWeight[p] * bitset.PopCount(pos.PieceBB[p])
	}
	if phase < 0 {
		phase = 0
	}
	return totalPhase - phase
}

func materialAndPST(pos *board.Position, c piece.Colour) (mg, eg int) {
	for t := piece.TypePawn; t <= piece.TypeKing; t += 2 {
		pc := piece.New(c, t)
		bb := pos.PieceBB[pc]
		value := piece.PieceValue[pc]
		idx := pieceTypeIndex(t)
		for bb != 0 {
			sq := bitset.PopLSB(&bb)
			mg += value + pst[idx][pstIndex(sq, c)][MidGame]
			eg += value + pst[idx][pstIndex(sq, c)][EndGame]
		}
	}
	return mg, eg
}

func pawnStructure(pos *board.Position, c piece.Colour) (mg, eg int) {
	own := pos.PieceBB[piece.New(c, piece.TypePawn)]
	enemy := pos.PieceBB[piece.New(c.Other(), piece.TypePawn)]
	bb := own
	for bb != 0 {
		sq := bitset.PopLSB(&bb)
		file := bitset.File(sq)

		if bitset.PopCount(own&bitset.FileMask[file]) > 1 {
			mg -= PawnDoubledPenalty
			eg -= PawnDoubledPenalty
		}

		adjacent := adjacentFiles(file)
		if own&adjacent == 0 {
			mg -= PawnIsolatedPenalty
			eg -= PawnIsolatedPenalty
		}

		front := aboveRanks(sq, c == piece.White)
		if enemy&front == 0 {
			rankIdx := bitset.Rank(sq)
			advance := 7 - rankIdx
			if c == piece.Black {
				advance = rankIdx
			}
			bonus := PawnPassedBonus + advance*6
			mg += bonus / 2
			eg += bonus
		}
	}
	return mg, eg
}

// aboveRanks returns the combined file+adjacent-file mask strictly ahead
// of sq in the direction the pawn of the given colour advances
// (forward=true means toward rank-index 0, i.e. White's direction).
func aboveRanks(sq int, forward bool) bitset.Board {
	file := bitset.File(sq)
	rankIdx := bitset.Rank(sq)
	mask := adjacentFiles(file) | bitset.FileMask[file]
	var out bitset.Board
	for r := 0; r < 8; r++ {
		if forward && r >= rankIdx {
			continue
		}
		if !forward && r <= rankIdx {
			continue
		}
		out |= mask & bitset.RankMask[bitset.SquareOf(0, r)]
	}
	return out
}

func adjacentFiles(file int) bitset.Board {
	var bb bitset.Board
	if file > 0 {
		bb |= bitset.FileMask[file-1]
	}
	if file < 7 {
		bb |= bitset.FileMask[file+1]
	}
	return bb
}

// kingShield counts friendly pawns within king-distance-2 on the king's
// file and the two adjacent files, and penalises any of those files
// that are entirely pawnless (spec section 4.7's pawn-shield term).
func kingShield(pos *board.Position, c piece.Colour) int {
	kingSq := pos.KingSquare(c)
	file := bitset.File(kingSq)
	fileMask := adjacentFiles(file) | bitset.FileMask[file]

	shield := bitset.Floodfill(kingSq, 2) &^ (bitset.Board(1) << uint(kingSq)) & fileMask
	pawns := pos.PieceBB[piece.New(c, piece.TypePawn)]
	score := bitset.PopCount(shield&pawns) * KingShieldBonus

	for f := file - 1; f <= file+1; f++ {
		if f < 0 || f > 7 {
			continue
		}
		if pawns&bitset.FileMask[f] == 0 {
			score -= PawnlessFilePenalty
		}
	}
	return score
}

// minorMobility scores bishops and knights by the count of target
// squares they reach that aren't covered by an enemy pawn (spec
// section 4.7's bishop/knight mobility), after the teacher's wMobility
// accumulation in material.go's evaluateFigure. Knights additionally
// collect an endgame bonus for closing in on the enemy king, and every
// minor's reachable squares are folded into a king-attack bonus when
// they land inside the enemy king's immediate ring — the "minor-attack
// bitboard" union the spec calls for, scored the way the teacher scores
// pad.theirKingArea hits.
func minorMobility(pos *board.Position, c piece.Colour) (mg, eg int) {
	enemy := c.Other()
	enemyPawnAttacks := pawnAttackSet(pos, enemy)
	enemyKing := pos.KingSquare(enemy)
	kingArea := bitset.Floodfill(enemyKing, 1)
	occ := pos.Occupied

	var minorAttacks bitset.Board

	bishops := pos.PieceBB[piece.New(c, piece.TypeBishop)]
	for bishops != 0 {
		sq := bitset.PopLSB(&bishops)
		targets := pos.Attacks.Bishop(sq, occ) &^ pos.ColourBB[c]
		safe := targets &^ enemyPawnAttacks
		mg += bitset.PopCount(safe) * BishopMobilityBonus
		eg += bitset.PopCount(safe) * BishopMobilityBonus
		minorAttacks |= targets
	}

	knights := pos.PieceBB[piece.New(c, piece.TypeKnight)]
	for knights != 0 {
		sq := bitset.PopLSB(&knights)
		targets := attack.Knight[sq] &^ pos.ColourBB[c]
		safe := targets &^ enemyPawnAttacks
		mg += bitset.PopCount(safe) * KnightMobilityBonus
		eg += bitset.PopCount(safe) * KnightMobilityBonus
		minorAttacks |= targets

		d := rectilinearDistance[sq][enemyKing] + knightMoveDistance[sq][enemyKing]
		if d < len(knightEndgameBonus) {
			eg += knightEndgameBonus[d]
		}
	}

	mg += bitset.PopCount(minorAttacks&kingArea) * MinorKingAttackBonus
	return mg, eg
}

func pawnAttackSet(pos *board.Position, c piece.Colour) bitset.Board {
	var bb bitset.Board
	pawns := pos.PieceBB[piece.New(c, piece.TypePawn)]
	for pawns != 0 {
		sq := bitset.PopLSB(&pawns)
		bb |= attack.Pawn[c][sq]
	}
	return bb
}

// queenKingTropism mirrors the teacher's wQueenKingTropism: an endgame
// bonus per queen scaled by how close it sits to the enemy king,
// indexed by Chebyshev distance.
func queenKingTropism(pos *board.Position, c piece.Colour) int {
	enemyKing := pos.KingSquare(c.Other())
	eg := 0
	queens := pos.PieceBB[piece.New(c, piece.TypeQueen)]
	for queens != 0 {
		sq := bitset.PopLSB(&queens)
		eg += queenEndgameBonus[chebyshevDistance[sq][enemyKing]]
	}
	return eg
}

// pawnDeficiency implements spec section 4.7's pawn-deficiency term: a
// side left with no pawns has no promotion potential and is penalised
// hard; otherwise the endgame score gains with every pawn still on the
// board.
func pawnDeficiency(pawns int) (mg, eg int) {
	if pawns == 0 {
		return -NoPawnsPenalty, -NoPawnsPenalty
	}
	return 0, pawns * PawnCountEndgameBonus
}

// pawnThreats rewards c's pawns for attacking enemy non-pawn material
// and for being defended by a friendly pawn (spec section 4.7's
// "pawn threats/defence" term).
func pawnThreats(pos *board.Position, c piece.Colour) int {
	pawns := pos.PieceBB[piece.New(c, piece.TypePawn)]
	enemyNonPawn := pos.ColourBB[c.Other()] &^ pos.PieceBB[piece.New(c.Other(), piece.TypePawn)]
	score := 0
	bb := pawns
	for bb != 0 {
		sq := bitset.PopLSB(&bb)
		if attack.Pawn[c][sq]&enemyNonPawn != 0 {
			score += PawnThreatBonus
		}
		if attack.Pawn[c.Other()][sq]&pawns != 0 {
			score += PawnDefendedBonus
		}
	}
	return score
}

// capturePriorityBonus implements the Open Question decision recorded in
// DESIGN.md: rather than the maximum across all available captures, only
// the first matching pattern in a fixed priority list is rewarded —
// pawn-takes-queen, minor-takes-queen, pawn-takes-rook, pawn-takes-bishop,
// pawn-takes-knight, minor-takes-rook — evaluated in that order with
// short-circuit. Deliberately asymmetric: only the side to move is
// scored, never the opponent's reply.
func capturePriorityBonus(pos *board.Position) int {
	side := pos.SideToMove
	captures := pos.GenerateCaptures(make([]move.Move, 0, 32))

	isMinor := func(t piece.Piece) bool {
		return t == piece.TypeKnight || t == piece.TypeBishop
	}
	has := func(moverIsPawn bool, moverIsMinor bool, victim piece.Piece) bool {
		for _, m := range captures {
			movingType := m.Moving().Type()
			if moverIsPawn && movingType != piece.TypePawn {
				continue
			}
			if moverIsMinor && !isMinor(movingType) {
				continue
			}
			if m.Captured().Type() == victim {
				return true
			}
		}
		return false
	}

	switch {
	case has(true, false, piece.TypeQueen),
		has(false, true, piece.TypeQueen),
		has(true, false, piece.TypeRook),
		has(true, false, piece.TypeBishop),
		has(true, false, piece.TypeKnight),
		has(false, true, piece.TypeRook):
		if side == piece.White {
			return CapturePriorityBonus
		}
		return -CapturePriorityBonus
	}
	return 0
}
