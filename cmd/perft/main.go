// Perft counts leaf nodes of the legal move tree to a fixed depth, used
// to verify move generation against the canonical counts named in
// spec.md section 8.
//
// Examples:
//
//	$ perft -fen startpos -max_depth 6
//	$ perft -fen kiwipete -depth 5
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/FireFather/absolute-zero-go/internal/board"
	"github.com/FireFather/absolute-zero-go/internal/move"
)

var (
	fenFlag  = flag.String("fen", "startpos", "position to search")
	minDepth = flag.Int("min_depth", 1, "minimum depth to search (inclusive)")
	maxDepth = flag.Int("max_depth", 5, "maximum depth to search (inclusive)")
	depth    = flag.Int("depth", 0, "if non-zero, searches only this depth")
)

var known = map[string]string{
	"startpos": "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"kiwipete": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"duplain":  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

// expected holds the canonical counts named in spec.md section 8, by
// depth, for the three named test positions. Index 0 is depth 0 (one
// node, the empty move tree).
var expected = map[string][]counters{
	known["startpos"]: {
		{1, 0, 0, 0, 0},
		{20, 0, 0, 0, 0},
		{400, 0, 0, 0, 0},
		{8902, 34, 0, 0, 0},
		{197281, 1576, 0, 0, 0},
		{4865609, 82719, 258, 0, 0},
		{119060324, 2812008, 5248, 0, 0},
	},
	known["kiwipete"]: {
		{1, 0, 0, 0, 0},
		{48, 8, 0, 2, 0},
		{2039, 351, 1, 91, 0},
		{97862, 17102, 45, 3162, 0},
		{4085603, 757163, 1929, 128013, 15172},
		{193690690, 35043416, 73365, 4993637, 8392},
	},
	known["duplain"]: {
		{1, 0, 0, 0, 0},
		{14, 1, 0, 0, 0},
		{191, 14, 0, 0, 0},
		{2812, 209, 2, 0, 0},
		{43238, 3348, 123, 0, 0},
		{674624, 52051, 1165, 0, 0},
		{11030083, 940350, 33325, 0, 7552},
	},
}

// counters tallies leaves and the move kinds that produced them.
type counters struct {
	nodes      uint64
	captures   uint64
	enpassant  uint64
	castles    uint64
	promotions uint64
}

func (c *counters) add(o counters) {
	c.nodes += o.nodes
	c.captures += o.captures
	c.enpassant += o.enpassant
	c.castles += o.castles
	c.promotions += o.promotions
}

// perft walks the legal move tree to depth, reusing moves as scratch
// space across the recursion the way the teacher's perft.go does.
// GenerateMoves already returns only legal moves, so unlike the
// teacher there is no post-move IsChecked filter to apply.
func perft(pos *board.Position, depth int, moves []move.Move) counters {
	if depth == 0 {
		return counters{nodes: 1}
	}

	start := len(moves)
	moves = pos.GenerateMoves(moves)

	r := counters{}
	for i := start; i < len(moves); i++ {
		m := moves[i]
		if depth == 1 {
			switch {
			case m.IsEnPassant():
				r.enpassant++
				r.captures++
			case m.IsCapture():
				r.captures++
			case m.IsCastle():
				r.castles++
			}
			if m.IsPromotion() {
				r.promotions++
			}
		}

		pos.Make(m)
		r.add(perft(pos, depth-1, moves[:len(moves)]))
		pos.Unmake(m)
	}
	return r
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	fen := *fenFlag
	var want []counters
	if s, ok := known[fen]; ok {
		fen = s
		want = expected[fen]
	}
	if *depth != 0 {
		*minDepth = *depth
		*maxDepth = *depth
	}

	pos, err := board.FromFEN(fen)
	if err != nil {
		log.Fatalln("cannot parse -fen:", err)
	}

	fmt.Printf("Searching FEN %q\n", fen)
	fmt.Printf("depth        nodes   captures enpassant  castles promotions result   KNps    elapsed\n")
	fmt.Printf("-----+------------+----------+---------+--------+----------+------+-------+----------\n")

	scratch := make([]move.Move, 0, 4096)
	for d := *minDepth; d <= *maxDepth; d++ {
		start := time.Now()
		c := perft(pos, d, scratch[:0])
		elapsed := time.Since(start)

		result := ""
		if d < len(want) {
			if c == want[d] {
				result = "good"
			} else {
				result = "bad"
			}
		}

		fmt.Printf("   %2d %12d %10d %9d %8d %10d %-6s %6.f %v\n",
			d, c.nodes, c.captures, c.enpassant, c.castles, c.promotions,
			result, float64(c.nodes)/elapsed.Seconds()/1e3, elapsed)

		if result == "bad" {
			e := want[d]
			fmt.Printf("   %2d %12d %10d %9d %8d %10d %s\n",
				d, e.nodes, e.captures, e.enpassant, e.castles, e.promotions, "expected")
			break
		}
	}
}
