package solver

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/require"

	"github.com/isaacazuelos/puzzle-a-day/game"
	"github.com/isaacazuelos/puzzle-a-day/mask"
	"github.com/isaacazuelos/puzzle-a-day/piece"
)

var testTable = piece.NewTable()

func solveDate(t *testing.T, month0, day0 int) *game.Game {
	t.Helper()
	g, err := game.ForDate(month0, day0)
	require.NoError(t, err)
	solved, err := New(testTable, g).Solve(context.Background())
	require.NoError(t, err)
	require.True(t, solved, "date %d/%d should have a solution", month0, day0)
	return g
}

func TestSolveDecember25(t *testing.T) {
	is := is.New(t)
	g := solveDate(t, 11, 24)

	is.Equal(g.DateMask(), mask.Blank.Set(1, 5).Set(5, 3))
	is.True(g.Solved())
	is.Equal(g.Occupied(), mask.Full)

	// Every piece is down exactly once, nothing overlaps, nothing is left
	// uncovered: the union of the disjoint parts is the whole board.
	union := mask.Frame | g.DateMask()
	cells := union.PopCount()
	for _, p := range piece.All {
		placed := g.Placed(p)
		is.True(placed != mask.Blank)
		is.Equal(placed&union, mask.Blank)
		union |= placed
		cells += placed.PopCount()
	}
	is.Equal(union, mask.Full)
	is.Equal(cells, 64)

	// The rendered board agrees: every glyph shows up with its piece's
	// cell count, and there are no blanks left.
	counts := map[rune]int{}
	for _, r := range g.String() {
		counts[r]++
	}
	is.Equal(counts['#'], 21)
	is.Equal(counts['•'], 2)
	is.Equal(counts['-'], 0)
	for _, p := range piece.All {
		is.Equal(counts[p.Rune()], p.BaseMask().PopCount())
	}
}

func TestSolveDeterministic(t *testing.T) {
	is := is.New(t)
	a := solveDate(t, 2, 12)
	b := solveDate(t, 2, 12)
	is.Equal(a.String(), b.String())
	for _, p := range piece.All {
		is.Equal(a.Placed(p), b.Placed(p))
	}
}

func TestSolveWithTransTable(t *testing.T) {
	is := is.New(t)
	plain := solveDate(t, 6, 3)

	g, err := game.ForDate(6, 3)
	is.NoErr(err)
	s := New(testTable, g)
	s.SetTransTable(NewTransTable(0.001))
	solved, err := s.Solve(context.Background())
	is.NoErr(err)
	is.True(solved)

	// Pruning only skips proven-dead subtrees, so the solution found is
	// the same one.
	is.Equal(g.String(), plain.String())
}

func TestSolveExhausted(t *testing.T) {
	is := is.New(t)
	g, err := game.ForDate(0, 0)
	is.NoErr(err)

	// Cover everything except one lonely cell. No piece can ever fit, so
	// the search must exhaust, and exhaustion is a plain false, not an
	// error or a panic.
	blob := mask.Full.Sub(g.Occupied()).Clear(3, 3)
	is.True(g.Place(piece.C, blob))

	snapshot := *g
	s := New(testTable, g)
	solved, err := s.Solve(context.Background())
	is.NoErr(err)
	is.True(!solved)
	is.True(!g.Solved())
	is.Equal(*g, snapshot) // backtracking unwound everything it tried
}

func TestSolveFromPinned(t *testing.T) {
	is := is.New(t)
	reference := solveDate(t, 9, 9)
	pinned := reference.Placed(piece.O)

	g, err := game.ForDate(9, 9)
	is.NoErr(err)
	is.True(g.Place(piece.O, pinned))
	solved, err := New(testTable, g).Solve(context.Background())
	is.NoErr(err)
	is.True(solved)
	is.Equal(g.Placed(piece.O), pinned) // the pin held
}

func TestSolveCanceled(t *testing.T) {
	is := is.New(t)
	g, err := game.ForDate(0, 0)
	is.NoErr(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	snapshot := *g
	solved, err := New(testTable, g).Solve(ctx)
	is.True(!solved)
	is.True(err == ErrCanceled)
	is.Equal(*g, snapshot) // canceled solves restore the game too
}
