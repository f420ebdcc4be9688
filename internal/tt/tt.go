// Package tt implements the transposition table (spec section 4.8): a
// fixed-capacity, open-addressed array indexed by key-mod-capacity, with
// an always-replace policy and 16-byte packed entries.
//
// Grounded on the teacher's hash_table.go (constructor sized from a
// byte budget via unsafe.Sizeof, Put/Get naming, Clear), adapted to
// spec.md's simpler indexing (key % capacity rather than a power-of-two
// mask with two-way probing) and single-struct bit-packed entries
// instead of the teacher's lock-plus-struct-field layout.
package tt

import (
	"unsafe"

	"github.com/FireFather/absolute-zero-go/internal/move"
)

// Bound records which side of the search window a stored value is
// known to be exact, or only a bound for.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower // score was a fail-high: true value >= stored value
	BoundUpper // score was a fail-low: true value <= stored value
)

// MateScore and NearMate follow the teacher's material.go convention
// (KnownWinScore/MateScore) of reserving a score band for forced mates,
// used to decide when a stored value needs ply-shifting.
const (
	MateScore = 30000
	NearMate  = MateScore - 1000
)

type entry struct {
	key  uint64
	data uint64 // move:24 | value:24 (signed) | depth:8 | bound:8
}

const entrySize = unsafe.Sizeof(entry{})

func pack(m move.Move, value int, depth int, bound Bound) uint64 {
	return uint64(uint32(m)&0xFFFFFF) |
		uint64(uint32(int32(value))&0xFFFFFF)<<24 |
		uint64(uint8(depth))<<48 |
		uint64(bound)<<56
}

func unpack(data uint64) (move.Move, int, int, Bound) {
	m := move.Move(uint32(data) & 0xFFFFFF)
	value := int(int32(uint32(data>>24)<<8) >> 8)
	depth := int(int8(uint8(data >> 48)))
	bound := Bound(uint8(data >> 56))
	return m, value, depth, bound
}

// Table is a fixed-capacity transposition table. Not safe for
// concurrent use; one instance is owned per search engine (spec
// section 9's "no package-level global state" note — there is no
// GlobalHashTable here, unlike the teacher).
type Table struct {
	entries []entry

	hits   uint64
	misses uint64
}

// New builds a table sized to fit within sizeBytes, with at least one
// entry.
func New(sizeBytes int) *Table {
	capacity := int(uint64(sizeBytes) / uint64(entrySize))
	if capacity < 1 {
		capacity = 1
	}
	return &Table{entries: make([]entry, capacity)}
}

// Capacity returns the number of entries the table holds.
func (t *Table) Capacity() int {
	return len(t.entries)
}

func (t *Table) index(key uint64) uint64 {
	return key % uint64(len(t.entries))
}

// toStored removes the current search ply from a mate score before
// storage, so the same forced-mate position hashes to one value no
// matter how deep in the tree it was found (spec section 4.8).
func toStored(value, ply int) int {
	switch {
	case value > NearMate:
		return value + ply
	case value < -NearMate:
		return value - ply
	default:
		return value
	}
}

// fromStored reverses toStored, re-adding ply distance from the root.
func fromStored(value, ply int) int {
	switch {
	case value > NearMate:
		return value - ply
	case value < -NearMate:
		return value + ply
	default:
		return value
	}
}

// Store records a search result for key, always overwriting whatever
// was at that slot (always-replace, per spec.md, unlike the teacher's
// depth-preferred two-way scheme).
func (t *Table) Store(key uint64, m move.Move, value, depth int, bound Bound, ply int) {
	idx := t.index(key)
	t.entries[idx] = entry{
		key:  key,
		data: pack(m, toStored(value, ply), depth, bound),
	}
}

// Load retrieves the entry for key, if the slot's stored key matches
// (false otherwise — a collision, or an empty slot).
func (t *Table) Load(key uint64, ply int) (m move.Move, value, depth int, bound Bound, ok bool) {
	idx := t.index(key)
	e := t.entries[idx]
	if e.key != key || e.data == 0 {
		t.misses++
		return move.Invalid, 0, 0, BoundNone, false
	}
	t.hits++
	m, value, depth, bound = unpack(e.data)
	value = fromStored(value, ply)
	return m, value, depth, bound, true
}

// Clear empties the table.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = entry{}
	}
}

// Stats returns the lifetime hit/miss counts, for diagnostics.
func (t *Table) Stats() (hits, misses uint64) {
	return t.hits, t.misses
}
