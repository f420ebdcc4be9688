// Package attack implements the per-square attack generators (spec
// section 4.2): precomputed constant tables for king, knight and pawn
// attacks, and an on-demand, magic-free sliding-piece (rook/bishop/
// queen) generator backed by a one-deep per-square occupancy cache.
//
// Deliberately not a classic magic-bitboard generator: spec.md calls
// for a "magic-free cached sliding-piece attack generator" instead, so
// sliding attacks are recomputed by ray-walking whenever the cache
// misses, rather than looked up via a magic multiply/shift.
package attack

import "github.com/FireFather/absolute-zero-go/internal/bitset"

var (
	// King[sq] and Knight[sq] are precomputed constants, immutable after
	// package init.
	King   [64]bitset.Board
	Knight [64]bitset.Board

	// Pawn[colour][sq] gives the two diagonal attack squares for a pawn
	// of that colour standing on sq.
	Pawn [2][64]bitset.Board
)

func onBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

func jumpAttack(jumps [][2]int) [64]bitset.Board {
	var out [64]bitset.Board
	for sq := 0; sq < 64; sq++ {
		f, r := bitset.File(sq), bitset.Rank(sq)
		var bb bitset.Board
		for _, d := range jumps {
			ff, rr := f+d[0], r+d[1]
			if onBoard(ff, rr) {
				bb |= bitset.Board(1) << uint(bitset.SquareOf(ff, rr))
			}
		}
		out[sq] = bb
	}
	return out
}

func init() {
	King = jumpAttack([][2]int{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	})
	Knight = jumpAttack([][2]int{
		{-2, -1}, {-2, 1}, {2, -1}, {2, 1},
		{-1, -2}, {-1, 2}, {1, -2}, {1, 2},
	})
	// White advances toward rank 8, i.e. toward decreasing rank-index
	// (square numbering has a8=0): diagonal attacks are NW/NE.
	Pawn[0] = jumpAttack([][2]int{{-1, -1}, {1, -1}})
	// Black advances toward rank 1, i.e. increasing rank-index: SW/SE.
	Pawn[1] = jumpAttack([][2]int{{-1, 1}, {1, 1}})
}

// sliderCache is a per-square one-entry attack cache (spec section
// 4.2): cachedAttack[s] is valid for the current occupancy occ iff
// cachedAttack[s] & occ == cachedBlock[s], where cachedBlock[s] is the
// cached attack intersected with the occupancy that produced it.
//
// Not safe for concurrent use; one instance lives per search engine
// (spec section 9: own the cache inside the engine instance, not as
// process-wide global state).
type sliderCache struct {
	attack [64]bitset.Board
	block  [64]bitset.Board
	filled [64]bool
}

func (c *sliderCache) get(sq int, occ bitset.Board, compute func(int, bitset.Board) bitset.Board) bitset.Board {
	if c.filled[sq] && c.attack[sq]&occ == c.block[sq] {
		return c.attack[sq]
	}
	a := compute(sq, occ)
	c.attack[sq] = a
	c.block[sq] = a & occ
	c.filled[sq] = true
	return a
}

// Tables owns the sliding-piece attack caches for one engine instance.
type Tables struct {
	rook   sliderCache
	bishop sliderCache
}

// New returns a fresh, empty set of sliding-attack caches.
func New() *Tables {
	return &Tables{}
}

// Rook returns the rook attack set from sq given occupancy occ.
func (t *Tables) Rook(sq int, occ bitset.Board) bitset.Board {
	return t.rook.get(sq, occ, rookAttack)
}

// Bishop returns the bishop attack set from sq given occupancy occ.
// Occupancy is pre-masked with the interior mask before being cached,
// so a piece sitting on the outer ring (which can never block a
// diagonal ray beyond itself, since the ray ends at the board edge
// regardless) cannot spuriously invalidate the cache.
func (t *Tables) Bishop(sq int, occ bitset.Board) bitset.Board {
	return t.bishop.get(sq, occ&bitset.Interior, bishopAttack)
}

// Queen returns the queen attack set from sq given occupancy occ
// (union of the rook and bishop attack sets).
func (t *Tables) Queen(sq int, occ bitset.Board) bitset.Board {
	return t.Rook(sq, occ) | t.Bishop(sq, occ)
}

type rayDir struct {
	mask    [64]bitset.Board
	forward bool // true: nearest blocker is the least-significant set bit
}

var (
	rookRays = []rayDir{
		{bitset.RayN, false},
		{bitset.RayS, true},
		{bitset.RayE, true},
		{bitset.RayW, false},
	}
	bishopRays = []rayDir{
		{bitset.RayNE, false},
		{bitset.RayNW, false},
		{bitset.RaySE, true},
		{bitset.RaySW, true},
	}
)

func slideRays(sq int, occ bitset.Board, rays []rayDir) bitset.Board {
	var attack bitset.Board
	for _, ray := range rays {
		rm := ray.mask[sq]
		blockers := rm & occ
		if blockers == 0 {
			attack |= rm
			continue
		}
		var blockerSq int
		if ray.forward {
			blockerSq = bitset.ScanForward(blockers)
		} else {
			blockerSq = bitset.ScanReverse(blockers)
		}
		attack |= rm ^ ray.mask[blockerSq]
	}
	return attack
}

func rookAttack(sq int, occ bitset.Board) bitset.Board {
	return slideRays(sq, occ, rookRays)
}

func bishopAttack(sq int, occ bitset.Board) bitset.Board {
	return slideRays(sq, occ, bishopRays)
}
