// Package piece describes the eight game pieces and every position each one
// can occupy on the board.
package piece

import (
	"fmt"

	"github.com/isaacazuelos/puzzle-a-day/mask"
)

// A Piece is one of the eight shapes that must all fit on the board.
//
// Pieces are loosely named after letters that look like them; a couple of
// the names reach into non-English alphabets.
type Piece uint8

const (
	C Piece = iota
	Gamma
	L
	Lamedh
	O
	P
	T
	Z

	// Count is the number of different pieces.
	Count = 8
)

// All contains each piece, in order, so All[p] == p.
var All = [Count]Piece{C, Gamma, L, Lamedh, O, P, T, Z}

// BaseMask is the piece's shape anchored at the top-left of the board.
// The diagrams show the occupied cells; Size must agree with these.
func (p Piece) BaseMask() mask.Mask {
	switch p {
	case C:
		return mask.Blank. // •••
					Set(0, 0).Set(0, 1).Set(0, 2). // •-•
					Set(1, 0).Set(1, 2)
	case Gamma:
		return mask.Blank. // •••
					Set(0, 0).Set(0, 1).Set(0, 2). // •--
					Set(1, 0).                     // •--
					Set(2, 0)
	case L:
		return mask.Blank. // •-
					Set(0, 0). // •-
					Set(1, 0). // •-
					Set(2, 0). // ••
					Set(3, 0).Set(3, 1)
	case Lamedh:
		return mask.Blank. // •-
					Set(0, 0). // •-
					Set(1, 0). // ••
					Set(2, 0).Set(2, 1). // -•
					Set(3, 1)
	case O:
		return mask.Blank. // •••
					Set(0, 0).Set(0, 1).Set(0, 2). // •••
					Set(1, 0).Set(1, 1).Set(1, 2)
	case P:
		return mask.Blank. // •••
					Set(0, 0).Set(0, 1).Set(0, 2). // ••-
					Set(1, 0).Set(1, 1)
	case T:
		return mask.Blank. // •-
					Set(0, 0). // •-
					Set(1, 0). // ••
					Set(2, 0).Set(2, 1). // •-
					Set(3, 0)
	case Z:
		return mask.Blank. // ••-
					Set(0, 0).Set(0, 1). // -•-
					Set(1, 1).           // -••
					Set(2, 1).Set(2, 2)
	}
	panic(fmt.Sprintf("no base mask for piece %d", p))
}

// Size is the bounding box of the piece's BaseMask, as (width, height).
// It bounds how far the piece can be translated before falling off the
// board.
func (p Piece) Size() (width, height int) {
	switch p {
	case C:
		return 3, 2
	case Gamma:
		return 3, 3
	case L:
		return 2, 4
	case Lamedh:
		return 2, 4
	case O:
		return 3, 2
	case P:
		return 3, 2
	case T:
		return 2, 4
	case Z:
		return 3, 3
	}
	panic(fmt.Sprintf("no size for piece %d", p))
}

// IsChiral reports whether the piece differs from its mirror image under
// every rotation. Chiral pieces need their reflections enumerated too when
// we list positions.
func (p Piece) IsChiral() bool {
	switch p {
	case C, Gamma, O:
		return false
	}
	return true
}

// Rune is the piece's single-character display glyph.
func (p Piece) Rune() rune {
	return [Count]rune{'C', 'Γ', 'L', 'ל', 'O', 'P', 'T', 'Z'}[p]
}

func (p Piece) String() string {
	return string(p.Rune())
}

// FromRune returns the piece with the given display glyph.
func FromRune(r rune) (Piece, bool) {
	for _, p := range All {
		if p.Rune() == r {
			return p, true
		}
	}
	return 0, false
}
