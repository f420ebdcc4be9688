package bitset

import "testing"

func TestPopCountMatchesCountSparse(t *testing.T) {
	boards := []Board{0, 1, 0xFF, 0x8000000000000000, 0xFFFFFFFFFFFFFFFF, 0x0102030405060708}
	for _, b := range boards {
		if got, want := PopCount(b), CountSparse(b); got != want {
			t.Errorf("PopCount(%x) = %d, CountSparse(%x) = %d", b, got, b, want)
		}
	}
}

func TestScanForwardAndPopLSB(t *testing.T) {
	b := Board(0b101100)
	if got := ScanForward(b); got != 2 {
		t.Errorf("ScanForward(0b101100) = %d, want 2", got)
	}

	sq := PopLSB(&b)
	if sq != 2 {
		t.Errorf("PopLSB returned %d, want 2", sq)
	}
	if b != 0b101000 {
		t.Errorf("after PopLSB, b = %b, want 0b101000", b)
	}
}

func TestScanReverse(t *testing.T) {
	b := Board(0b101100)
	if got := ScanReverse(b); got != 5 {
		t.Errorf("ScanReverse(0b101100) = %d, want 5", got)
	}
}

func TestIsolateLSBAndMSB(t *testing.T) {
	b := Board(0b01010100)
	if got := IsolateLSB(b); got != 0b100 {
		t.Errorf("IsolateLSB(0b01010100) = %b, want 0b100", got)
	}
	if got := IsolateMSB(b); got != 0b01000000 {
		t.Errorf("IsolateMSB(0b01010100) = %b, want 0b01000000", got)
	}
	if got := IsolateMSB(0); got != 0 {
		t.Errorf("IsolateMSB(0) = %b, want 0", got)
	}
}

func TestFileAndRank(t *testing.T) {
	// a8 = 0, h1 = 63 (file=0=a..7=h numbering; rank-index 0=8th..7=1st).
	cases := []struct {
		sq       int
		file, rk int
	}{
		{0, 0, 0},
		{7, 7, 0},
		{56, 0, 7},
		{63, 7, 7},
	}
	for _, c := range cases {
		if got := File(c.sq); got != c.file {
			t.Errorf("File(%d) = %d, want %d", c.sq, got, c.file)
		}
		if got := Rank(c.sq); got != c.rk {
			t.Errorf("Rank(%d) = %d, want %d", c.sq, got, c.rk)
		}
	}
}

func TestAlgebraicRoundTrip(t *testing.T) {
	for sq := 0; sq < 64; sq++ {
		s := Algebraic(sq)
		got, ok := ParseAlgebraic(s)
		if !ok {
			t.Fatalf("ParseAlgebraic(%q) reported !ok", s)
		}
		if got != sq {
			t.Errorf("ParseAlgebraic(Algebraic(%d)) = %d, want %d", sq, got, sq)
		}
	}
}

func TestParseAlgebraicRejectsMalformed(t *testing.T) {
	bad := []string{"", "a", "abc", "i1", "a9", "a0"}
	for _, s := range bad {
		if _, ok := ParseAlgebraic(s); ok {
			t.Errorf("ParseAlgebraic(%q) reported ok, want failure", s)
		}
	}
}

func TestFileMaskAndRankMaskCardinality(t *testing.T) {
	for f := 0; f < 8; f++ {
		if got := PopCount(FileMask[f]); got != 8 {
			t.Errorf("PopCount(FileMask[%d]) = %d, want 8", f, got)
		}
	}
	for sq := 0; sq < 64; sq++ {
		if got := PopCount(RankMask[sq]); got != 8 {
			t.Errorf("PopCount(RankMask[%d]) = %d, want 8", sq, got)
		}
	}
}

// TestFloodfillContainsSourceAndGrows checks two invariants of the
// king-distance floodfill: it always contains the source square, and
// widening the distance never shrinks the reached set.
func TestFloodfillContainsSourceAndGrows(t *testing.T) {
	for sq := 0; sq < 64; sq += 9 {
		prev := Floodfill(sq, 0)
		if prev != Board(1)<<uint(sq) {
			t.Errorf("Floodfill(%d, 0) = %x, want only the source square set", sq, prev)
		}
		for d := 1; d <= 3; d++ {
			cur := Floodfill(sq, d)
			if cur&prev != prev {
				t.Errorf("Floodfill(%d, %d) does not contain Floodfill(%d, %d)", sq, d, sq, d-1)
			}
			prev = cur
		}
	}
}

func TestSquareOfAndFileRankInverse(t *testing.T) {
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			sq := SquareOf(f, r)
			if File(sq) != f || Rank(sq) != r {
				t.Errorf("SquareOf(%d, %d) = %d, but File/Rank = %d/%d", f, r, sq, File(sq), Rank(sq))
			}
		}
	}
}
