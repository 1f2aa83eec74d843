package piece

import (
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/isaacazuelos/puzzle-a-day/mask"
)

// A Table holds the precomputed list of every position each piece can
// occupy on the board. It is immutable after construction and safe to share
// between any number of solvers running concurrently.
type Table struct {
	positions [Count][]mask.Mask
}

// NewTable enumerates the positions for every piece. This is cheap enough
// to do at startup; build one and share it.
func NewTable() *Table {
	start := time.Now()
	t := &Table{}
	total := 0
	for _, p := range All {
		t.positions[p] = calculatePositions(p)
		total += len(t.positions[p])
	}
	log.Debug().
		Int("total-positions", total).
		Dur("elapsed", time.Since(start)).
		Msg("built piece position table")
	return t
}

// Positions returns every position piece p could take on the board: each
// translation, each rotation, and the mirror of each rotation if the piece
// is chiral. The returned slice is shared and must not be modified.
func (t *Table) Positions(p Piece) []mask.Mask {
	return t.positions[p]
}

func calculatePositions(p Piece) []mask.Mask {
	var positions []mask.Mask
	width, height := p.Size()
	base := p.BaseMask()

	// Translate the piece to each offset where its bounding box still fits.
	for right := 0; right <= mask.Width-width; right++ {
		for down := 0; down <= mask.Height-height; down++ {
			translated := base.Translate(right, down)

			for i := 0; i < 4; i++ {
				positions = append(positions, translated)
				if p.IsChiral() {
					// Transposing the whole board rather than the piece
					// looks odd, but since every offset goes through this
					// loop we still cover the full board with mirrors.
					positions = append(positions, translated.Transpose())
				}
				if i < 3 {
					translated = translated.Rotate()
				}
			}
		}
	}

	// Sorting by bit pattern loosely pushes positions toward the top left,
	// which rules out a lot of collisions early in the search. Removing
	// this sort roughly doubles solve time. Symmetric shapes produce
	// repeats across offsets, hence the dedup.
	slices.Sort(positions)
	return lo.Uniq(positions)
}
