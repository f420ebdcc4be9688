package search

import "github.com/FireFather/absolute-zero-go/internal/move"

// pvTable is the triangular principal-variation table named in spec
// section 4.9: pv[ply][0..length[ply]). Grounded on the shape of the
// teacher's pv.go, but indexed by ply directly (triangular) rather than
// by a Zobrist-keyed hash table, per spec.md's literal description.
type pvTable struct {
	moves  [PlyLimit][PlyLimit]move.Move
	length [PlyLimit]int
}

// prepend writes m at ply's front slot and appends the already-computed
// PV from ply+1 behind it.
func (t *pvTable) prepend(ply int, m move.Move) {
	t.moves[ply][0] = m
	n := t.length[ply+1]
	copy(t.moves[ply][1:1+n], t.moves[ply+1][:n])
	t.length[ply] = n + 1
}

// clear resets the PV length at ply (called at the start of every node,
// so a node that fails to improve alpha leaves no stale PV behind it).
func (t *pvTable) clear(ply int) {
	t.length[ply] = 0
}

// line returns a fresh copy of the principal variation starting at the
// root.
func (t *pvTable) line() []move.Move {
	n := t.length[0]
	out := make([]move.Move, n)
	copy(out, t.moves[0][:n])
	return out
}
