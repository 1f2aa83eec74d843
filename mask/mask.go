// Package mask implements the 8x8 bitboard that all game state is built on.
// A Mask is a set of board cells; pieces, the frame, and the date blockers
// are all just masks, and the solver works purely in mask algebra.
package mask

import (
	"math/bits"
	"strings"
)

// Board dimensions. The physical puzzle is 7x7-ish; the right column and
// bottom rows that don't exist on the real board are blocked by Frame.
const (
	Width  = 8
	Height = 8
)

// A Mask is an 8x8 bit board. Bit 0 is the top left cell, progressing in
// English reading order, so bit index = row*8 + column.
//
// Masks are values. Every operation returns a new Mask; the native uint64
// operators (`&`, `|`, `^`, `&^`) are the set algebra.
type Mask uint64

const (
	// Blank is the empty cell set.
	Blank Mask = 0
	// Full is every cell on the 8x8 board. A finished game has its occupied
	// mask equal to Full: frame (21) + date (2) + pieces (41) = 64 cells.
	Full Mask = ^Blank
)

// Frame is the default puzzle frame: the permanently blocked cells outlining
// the playable region.
var Frame = Blank.
	Set(0, 6).Set(0, 7).
	Set(1, 6).Set(1, 7).
	Set(2, 7).
	Set(3, 7).
	Set(4, 7).
	Set(5, 7).
	Set(6, 3).Set(6, 4).Set(6, 5).Set(6, 6).Set(6, 7).
	Set(7, 0).Set(7, 1).Set(7, 2).Set(7, 3).
	Set(7, 4).Set(7, 5).Set(7, 6).Set(7, 7)

// Get reports whether the cell at the given row and column is in the set.
// Out-of-range coordinates are a programming error.
func (m Mask) Get(row, col int) bool {
	return m&(1<<uint(row*Width+col)) != 0
}

// Set returns a copy of the mask with the cell at row, col added.
func (m Mask) Set(row, col int) Mask {
	return m | 1<<uint(row*Width+col)
}

// Clear returns a copy of the mask with the cell at row, col removed.
func (m Mask) Clear(row, col int) Mask {
	return m &^ (1 << uint(row*Width+col))
}

// Sub returns the cells in m that are not in other.
func (m Mask) Sub(other Mask) Mask {
	return m &^ other
}

// PopCount is the number of cells in the set.
func (m Mask) PopCount() int {
	return bits.OnesCount64(uint64(m))
}

// ForMonth returns a mask with the single month cell set for the given
// zero-indexed month. The first six months run along row 0, the rest wrap
// to row 1. Only defined for month0 < 12.
func ForMonth(month0 int) Mask {
	if month0 < 6 {
		return Blank.Set(0, month0)
	}
	return Blank.Set(1, month0-6)
}

// ForDay returns a mask with the single day cell set for the given
// zero-indexed day of the month. Days run in reading order in a 5-row band
// below the two month rows, wrapping every seven days. Only defined for
// day0 < 31.
func ForDay(day0 int) Mask {
	return Blank.Set(2+day0/7, day0%7)
}

// Translate shifts every set cell right and down by the given amounts.
// The result is unspecified if any set cell would leave the board; callers
// bound the offsets with the piece's bounding box first.
func (m Mask) Translate(right, down int) Mask {
	return m << uint(down*Width+right)
}

// FlipVertical mirrors the board across its horizontal mid-line
// (row r swaps with row 7-r). With one row per byte this is a byte swap.
func (m Mask) FlipVertical() Mask {
	return Mask(bits.ReverseBytes64(uint64(m)))
}

// Transpose mirrors the board across the main diagonal (rows become
// columns). This is the classic O(log n) delta-swap rather than a per-cell
// loop; mask_test.go checks it against the naive version.
func (m Mask) Transpose() Mask {
	x := uint64(m)
	t := 0x0f0f0f0f00000000 & (x ^ x<<28)
	x ^= t ^ t>>28
	t = 0x3333000033330000 & (x ^ x<<14)
	x ^= t ^ t>>14
	t = 0x5500550055005500 & (x ^ x<<7)
	x ^= t ^ t>>7
	return Mask(x)
}

// Rotate turns the board a quarter turn clockwise. Four rotations are the
// identity.
func (m Mask) Rotate() Mask {
	return m.FlipVertical().Transpose()
}

// String renders the mask as an 8-line grid of `•` and `-`, for debugging.
func (m Mask) String() string {
	var sb strings.Builder
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			if m.Get(r, c) {
				sb.WriteRune('•')
			} else {
				sb.WriteRune('-')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
