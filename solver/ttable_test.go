package solver

import (
	"math/bits"
	"testing"

	"github.com/matryer/is"

	"github.com/isaacazuelos/puzzle-a-day/mask"
)

func TestTransTableRoundTrip(t *testing.T) {
	is := is.New(t)
	tt := NewTransTable(0.001)

	occ := mask.Frame | mask.ForMonth(3) | mask.ForDay(10)
	is.True(!tt.Lookup(occ, 0b0001))

	tt.Store(occ, 0b0001)
	is.True(tt.Lookup(occ, 0b0001))

	// Same cells covered by a different piece subset is a different state.
	is.True(!tt.Lookup(occ, 0b0010))
	// And a different mask with the same pieces is too.
	is.True(!tt.Lookup(occ.Set(3, 3), 0b0001))

	lookups, hits, stores := tt.Stats()
	is.Equal(lookups, uint64(4))
	is.Equal(hits, uint64(1))
	is.Equal(stores, uint64(1))

	tt.Reset()
	is.True(!tt.Lookup(occ, 0b0001))
}

func TestTransTableSize(t *testing.T) {
	is := is.New(t)
	for _, fraction := range []float64{0, 0.0001, 0.05, 1000} {
		tt := NewTransTable(fraction)
		size := uint64(len(tt.table))
		is.Equal(bits.OnesCount64(size), 1) // a power of two
		is.True(size >= 1<<MinSizePowerOf2)
		is.True(size <= 1<<MaxSizePowerOf2)
		is.Equal(tt.sizeMask, size-1)
	}
}
