package sweep

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/stretchr/testify/require"

	"github.com/isaacazuelos/puzzle-a-day/caldate"
	"github.com/isaacazuelos/puzzle-a-day/piece"
)

func TestDaysIn(t *testing.T) {
	is := is.New(t)
	total := 0
	for m := 0; m < 12; m++ {
		total += DaysIn(m)
	}
	is.Equal(total, NumDates)
	is.Equal(DaysIn(1), 29) // the board has a Feb 29 cell
}

// Every date of the year has a solution. This is the puzzle's whole claim
// to fame, and it exercises the solver end to end 366 times.
func TestRunFullYear(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping year sweep in short mode")
	}
	is := is.New(t)
	results, err := Run(context.Background(), piece.NewTable(), 0)
	require.NoError(t, err)
	require.Len(t, results, NumDates)

	for _, r := range results {
		is.True(r.Solved)
		is.True(r.Nodes > 0)
		is.True(!strings.Contains(r.Board, "-")) // no uncovered cells
	}
	is.Equal(results[0].Name, "January 1")
	is.Equal(results[NumDates-1].Name, "December 31")
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, piece.NewTable(), 2)
	require.Error(t, err)
}

func fakeResults() []Result {
	return []Result{
		{Date: caldate.Date{Month0: 0, Day0: 0}, Name: "January 1",
			Solved: true, Nodes: 120, Elapsed: time.Millisecond, Board: "########\n"},
		{Date: caldate.Date{Month0: 0, Day0: 1}, Name: "January 2",
			Solved: true, Nodes: 3400, Elapsed: time.Millisecond, Board: "########\n"},
		{Date: caldate.Date{Month0: 0, Day0: 2}, Name: "January 3",
			Solved: true, Nodes: 880, Elapsed: time.Millisecond, Board: "########\n"},
	}
}

func TestReport(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(Report(&buf, fakeResults()))
	out := buf.String()
	is.True(strings.Contains(out, "solved 3 of 3 dates"))
	is.True(strings.Contains(out, "easiest: January 1"))
	is.True(strings.Contains(out, "hardest: January 2"))
}

func TestWriteYAML(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(WriteYAML(&buf, fakeResults()))
	out := buf.String()
	is.True(strings.Contains(out, "date: January 1"))
	is.True(strings.Contains(out, "nodes: 3400"))
}
