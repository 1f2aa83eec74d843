// Package solver implements the backtracking search that fits all eight
// pieces around a date.
package solver

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/isaacazuelos/puzzle-a-day/game"
	"github.com/isaacazuelos/puzzle-a-day/mask"
	"github.com/isaacazuelos/puzzle-a-day/piece"
)

// ErrCanceled is returned when the context is done before the search
// finishes. The game is restored to its pre-solve state on the way out.
var ErrCanceled = errors.New("solve canceled")

// How many nodes between context checks. Must be a power of two minus one.
const checkInterval = 0x0fff

// A Solver searches for a way to place every piece on one game's board.
// It owns the game for the duration of Solve; the position table is shared
// and read-only.
type Solver struct {
	game  *game.Game
	table *piece.Table
	tt    *TransTable

	nodes      uint64
	ttPrunes   uint64
	placedBits uint8
}

// New creates a solver for the given game. The table can be shared with any
// number of other solvers.
func New(t *piece.Table, g *game.Game) *Solver {
	return &Solver{game: g, table: t}
}

// SetTransTable gives the solver a table of states already proven
// unsolvable. Optional; pass nil to disable.
func (s *Solver) SetTransTable(tt *TransTable) {
	s.tt = tt
}

// Nodes is the number of search nodes visited by the last Solve.
func (s *Solver) Nodes() uint64 { return s.nodes }

// Game returns the game the solver is working on.
func (s *Solver) Game() *game.Game { return s.game }

// Solve runs the search to completion. It returns true if every piece was
// placed, and false if the search space was exhausted. Exhaustion is a
// normal outcome, not an error; real calendar dates always have a solution
// but the search doesn't rely on that. Pieces already on the board are kept
// where they are, so a partially pinned game solves from that position.
//
// The same game and date always produce the same solution: the search
// visits each piece's positions in their fixed sorted order.
func (s *Solver) Solve(ctx context.Context) (bool, error) {
	start := time.Now()
	s.nodes = 0
	s.ttPrunes = 0
	s.placedBits = 0
	for _, p := range piece.All {
		if s.game.Placed(p) != mask.Blank {
			s.placedBits |= 1 << p
		}
	}

	solved, err := s.search(ctx, 0)

	ev := log.Debug().
		Bool("solved", solved).
		Uint64("nodes", s.nodes).
		Dur("elapsed", time.Since(start))
	if s.tt != nil {
		ev = ev.Uint64("tt-prunes", s.ttPrunes)
	}
	ev.Msg("search finished")
	return solved, err
}

// search tries to place the piece at catalog index cursor, then recurses.
// The recursion depth is bounded by the number of pieces, so the implicit
// call-stack cursor is fine.
func (s *Solver) search(ctx context.Context, cursor int) (bool, error) {
	if cursor == piece.Count {
		return s.game.Solved(), nil
	}
	s.nodes++
	if s.nodes&checkInterval == 1 && ctx.Err() != nil {
		return false, ErrCanceled
	}

	p := piece.All[cursor]
	if s.game.Placed(p) != mask.Blank {
		// Pinned before the solve started; leave it and move on.
		return s.search(ctx, cursor+1)
	}

	if s.tt != nil && s.tt.Lookup(s.game.Occupied(), s.placedBits) {
		s.ttPrunes++
		return false, nil
	}

	for _, position := range s.table.Positions(p) {
		if !s.game.Place(p, position) {
			continue
		}
		s.placedBits |= 1 << p
		solved, err := s.search(ctx, cursor+1)
		if solved {
			return true, nil
		}
		s.game.Remove(p)
		s.placedBits &^= 1 << p
		if err != nil {
			return false, err
		}
	}

	if s.tt != nil {
		s.tt.Store(s.game.Occupied(), s.placedBits)
	}
	return false, nil
}
