package eval

import (
	"testing"

	"github.com/FireFather/absolute-zero-go/internal/board"
	"github.com/FireFather/absolute-zero-go/internal/move"
	"github.com/FireFather/absolute-zero-go/internal/piece"
)

func TestEvaluateStartingPositionIsJustTempo(t *testing.T) {
	pos, err := board.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("bad FEN: %v", err)
	}
	// Every per-colour term is mirror-symmetric in the starting position,
	// so White's and Black's contributions cancel and only the
	// side-to-move tempo bonus survives.
	if got := Evaluate(pos); got != TempoBonus {
		t.Errorf("Evaluate(startpos) = %d, want %d (tempo only)", got, TempoBonus)
	}
}

func TestEvaluateFavoursMaterialAdvantage(t *testing.T) {
	pos, err := board.FromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if err != nil {
		t.Fatalf("bad FEN: %v", err)
	}
	if got := Evaluate(pos); got <= 0 {
		t.Errorf("Evaluate() with a lone white queen up = %d, want a clearly positive score", got)
	}
}

func TestSEEEvenPawnTrade(t *testing.T) {
	// White pawn on e4 captures the black pawn on d5, which is defended
	// by the black pawn on c6: an even trade, SEE = 0.
	pos, err := board.FromFEN("4k3/8/2p5/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("bad FEN: %v", err)
	}
	m := pos.ParseUCIMove("e4d5")
	if m == move.Invalid {
		t.Fatal("could not parse e4d5")
	}
	if got := SEE(pos, m); got != 0 {
		t.Errorf("SEE(exd5, defended) = %d, want 0", got)
	}
}

func TestSEEUndefendedCapture(t *testing.T) {
	// White pawn on e4 captures the undefended black pawn on d5: a clean
	// material gain of one pawn.
	pos, err := board.FromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("bad FEN: %v", err)
	}
	m := pos.ParseUCIMove("e4d5")
	if m == move.Invalid {
		t.Fatal("could not parse e4d5")
	}
	if got := SEE(pos, m); got != seeValue[piece.BlackPawn] {
		t.Errorf("SEE(undefended exd5) = %d, want %d", got, seeValue[piece.BlackPawn])
	}
}

func TestSEENonCaptureIsZero(t *testing.T) {
	pos, err := board.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("bad FEN: %v", err)
	}
	m := pos.ParseUCIMove("e2e4")
	if m == move.Invalid {
		t.Fatal("could not parse e2e4")
	}
	if got := SEE(pos, m); got != 0 {
		t.Errorf("SEE(non-capture) = %d, want 0", got)
	}
}

// TestSEESignAgreesWithSEE checks the fast-path short-circuit in
// SEESign against the full swap-algorithm result across every capture
// available to the side to move in a tactically loaded position.
func TestSEESignAgreesWithSEE(t *testing.T) {
	pos, err := board.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("bad FEN: %v", err)
	}
	captures := pos.GenerateCaptures(make([]move.Move, 0, 32))
	if len(captures) == 0 {
		t.Fatal("expected at least one capture in this position")
	}
	for _, m := range captures {
		want := SEE(pos, m) < 0
		if got := SEESign(pos, m); got != want {
			t.Errorf("SEESign(%v) = %v, want %v (SEE = %d)", m, got, want, SEE(pos, m))
		}
	}
}

func TestPawnDeficiencyPenalisesNoPawns(t *testing.T) {
	mg, eg := pawnDeficiency(0)
	if mg >= 0 || eg >= 0 {
		t.Errorf("pawnDeficiency(0) = (%d, %d), want both negative", mg, eg)
	}
	mg, eg = pawnDeficiency(4)
	if mg != 0 || eg <= 0 {
		t.Errorf("pawnDeficiency(4) = (%d, %d), want (0, positive)", mg, eg)
	}
}

func TestKingShieldPenalisesPawnlessFile(t *testing.T) {
	withShield, err := board.FromFEN("4k3/8/8/8/8/8/4PPP1/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("bad FEN: %v", err)
	}
	bare, err := board.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("bad FEN: %v", err)
	}
	if got, bareGot := kingShield(withShield, piece.White), kingShield(bare, piece.White); got <= bareGot {
		t.Errorf("kingShield with a pawn shield (%d) should score higher than with none (%d)", got, bareGot)
	}
}

func TestMinorMobilityRewardsOpenDiagonal(t *testing.T) {
	open, err := board.FromFEN("4k3/8/8/8/8/8/8/3BK3 w - - 0 1")
	if err != nil {
		t.Fatalf("bad FEN: %v", err)
	}
	blocked, err := board.FromFEN("4k3/8/8/8/8/8/2P1P3/3BK3 w - - 0 1")
	if err != nil {
		t.Fatalf("bad FEN: %v", err)
	}
	openMG, _ := minorMobility(open, piece.White)
	blockedMG, _ := minorMobility(blocked, piece.White)
	if openMG <= blockedMG {
		t.Errorf("minorMobility with an open diagonal (%d) should score higher than with it blocked (%d)", openMG, blockedMG)
	}
}
