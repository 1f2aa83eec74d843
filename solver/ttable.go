package solver

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/isaacazuelos/puzzle-a-day/mask"
)

// A state is keyed by the occupied mask plus the set of placed pieces; the
// occupied mask alone is ambiguous because different piece subsets can
// cover the same cells.
//
// Each bucket stores the exact key, so a hit is never a false positive and
// pruning on one can't change which solution the search finds. 16 bytes.
type ttEntry struct {
	occupied mask.Mask
	// The placed-piece set plus one; zero means the bucket is empty.
	placedPlusOne uint16
}

const ttEntrySize = 16

// MinSizePowerOf2 and MaxSizePowerOf2 bound the table size.
const (
	MinSizePowerOf2 = 16
	MaxSizePowerOf2 = 22
)

// A TransTable remembers (occupied, placed-pieces) states that a finished
// subtree proved unsolvable, so the search doesn't redo them when a
// different placement order reaches the same cells. Replace-always on
// bucket collisions.
type TransTable struct {
	table    []ttEntry
	sizeMask uint64

	lookups uint64
	hits    uint64
	stores  uint64
}

// NewTransTable allocates a table using roughly the given fraction of total
// system memory, rounded down to a power of two and clamped to
// [2^MinSizePowerOf2, 2^MaxSizePowerOf2] entries.
func NewTransTable(memFraction float64) *TransTable {
	budget := uint64(float64(memory.TotalMemory()) * memFraction)
	power := bits.Len64(budget/ttEntrySize) - 1
	if power < MinSizePowerOf2 {
		power = MinSizePowerOf2
	}
	if power > MaxSizePowerOf2 {
		power = MaxSizePowerOf2
	}
	size := uint64(1) << power
	log.Debug().
		Int("size-power-of-2", power).
		Uint64("size-bytes", size*ttEntrySize).
		Msg("allocating transposition table")
	return &TransTable{
		table:    make([]ttEntry, size),
		sizeMask: size - 1,
	}
}

func ttHash(occupied mask.Mask, placed uint8) uint64 {
	var key [9]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(occupied))
	key[8] = placed
	return xxhash.Sum64(key[:])
}

// Lookup reports whether this exact state was already proven unsolvable.
func (t *TransTable) Lookup(occupied mask.Mask, placed uint8) bool {
	t.lookups++
	e := t.table[ttHash(occupied, placed)&t.sizeMask]
	if e.placedPlusOne == uint16(placed)+1 && e.occupied == occupied {
		t.hits++
		return true
	}
	return false
}

// Store records a state as unsolvable.
func (t *TransTable) Store(occupied mask.Mask, placed uint8) {
	t.stores++
	t.table[ttHash(occupied, placed)&t.sizeMask] = ttEntry{
		occupied:      occupied,
		placedPlusOne: uint16(placed) + 1,
	}
}

// Stats returns lifetime lookup, hit, and store counts.
func (t *TransTable) Stats() (lookups, hits, stores uint64) {
	return t.lookups, t.hits, t.stores
}

// Reset clears the table without reallocating.
func (t *TransTable) Reset() {
	clear(t.table)
	t.lookups, t.hits, t.stores = 0, 0, 0
}
