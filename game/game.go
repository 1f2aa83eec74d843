// Package game holds the board state for one puzzle: the frame, the two
// date blockers, and wherever pieces have been placed so far.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/isaacazuelos/puzzle-a-day/mask"
	"github.com/isaacazuelos/puzzle-a-day/piece"
)

// Display characters for cells not covered by a piece.
const (
	frameDisplay = '#'
	dateDisplay  = '•'
	blankDisplay = '-'
)

var (
	// ErrBadMonth is returned for a month index outside [0, 12).
	ErrBadMonth = errors.New("month index out of range")
	// ErrBadDay is returned for a day index outside [0, 31).
	ErrBadDay = errors.New("day index out of range")
)

// A Game is the state of one puzzle. The masks are kept disjoint: no cell is
// ever in more than one of the frame, the date, or a placed piece, and
// occupied is always exactly their union. When occupied is mask.Full the
// game is solved, since the frame, the date, and all eight pieces together
// account for exactly 64 cells.
type Game struct {
	date     mask.Mask
	placed   [piece.Count]mask.Mask
	occupied mask.Mask
}

// ForDate creates a game for a zero-indexed month and day. The indices are
// range-checked here because the date mask layout is only defined for real
// months and days; calendar validity (day-of-month vs. month length) is the
// caller's job, see the caldate package.
func ForDate(month0, day0 int) (*Game, error) {
	if month0 < 0 || month0 >= 12 {
		return nil, fmt.Errorf("%w: %d", ErrBadMonth, month0)
	}
	if day0 < 0 || day0 >= 31 {
		return nil, fmt.Errorf("%w: %d", ErrBadDay, day0)
	}
	date := mask.ForMonth(month0) | mask.ForDay(day0)
	return &Game{
		date:     date,
		occupied: mask.Frame | date,
	}, nil
}

// DateMask is the two blocked date cells.
func (g *Game) DateMask() mask.Mask { return g.date }

// Occupied is the union of the frame, the date, and every placed piece.
func (g *Game) Occupied() mask.Mask { return g.occupied }

// Placed returns where piece p currently sits, or mask.Blank if it hasn't
// been placed.
func (g *Game) Placed(p piece.Piece) mask.Mask { return g.placed[p] }

// Solved reports whether every cell on the board is accounted for.
func (g *Game) Solved() bool { return g.occupied == mask.Full }

// Place puts piece p on the board at the given position if it doesn't
// collide with anything already there. It reports whether the piece was
// placed; on a collision the game is left untouched. This is a single mask
// intersection against the incrementally maintained occupied set, since the
// solver calls it in its innermost loop.
func (g *Game) Place(p piece.Piece, position mask.Mask) bool {
	if position&g.occupied != 0 {
		return false
	}
	g.placed[p] = position
	g.occupied |= position
	return true
}

// Remove takes piece p back off the board. Callers only remove a piece they
// just placed; that discipline, not the type, keeps the masks disjoint.
func (g *Game) Remove(p piece.Piece) {
	g.occupied &^= g.placed[p]
	g.placed[p] = mask.Blank
}

// String renders the board one character per cell in reading order. The
// precedence is frame, then date, then piece glyph, then blank; the masks
// are disjoint so at most one of these matches any cell.
func (g *Game) String() string {
	var sb strings.Builder
	for r := 0; r < mask.Height; r++ {
		for c := 0; c < mask.Width; c++ {
			sb.WriteRune(g.displayRune(r, c))
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

func (g *Game) displayRune(r, c int) rune {
	switch {
	case mask.Frame.Get(r, c):
		return frameDisplay
	case g.date.Get(r, c):
		return dateDisplay
	}
	for _, p := range piece.All {
		if g.placed[p].Get(r, c) {
			return p.Rune()
		}
	}
	return blankDisplay
}
