// Package sweep solves the puzzle for every date of the year in one go.
// The puzzle is known to be solvable for every real date; sweeping the whole
// calendar is how we check that the solver agrees, and it produces some fun
// search statistics along the way.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/isaacazuelos/puzzle-a-day/caldate"
	"github.com/isaacazuelos/puzzle-a-day/game"
	"github.com/isaacazuelos/puzzle-a-day/piece"
	"github.com/isaacazuelos/puzzle-a-day/solver"
)

// daysInMonth is for a generic year: the board has a Feb 29 cell, so the
// sweep includes it.
var daysInMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// NumDates is how many distinct dates the board can show.
const NumDates = 366

// DaysIn is the number of day cells used by the given zero-indexed month.
func DaysIn(month0 int) int {
	return daysInMonth[month0]
}

// A Result records one date's solve.
type Result struct {
	Date    caldate.Date  `yaml:"-"`
	Name    string        `yaml:"date"`
	Solved  bool          `yaml:"solved"`
	Nodes   uint64        `yaml:"nodes"`
	Elapsed time.Duration `yaml:"elapsed"`
	Board   string        `yaml:"board"`
}

// Run solves every date, fanning out over at most workers goroutines
// (0 means one per CPU). The position table is shared read-only; each
// worker gets its own game and solver. Results come back sorted by date.
// The first context cancellation or construction error stops the sweep.
func Run(ctx context.Context, table *piece.Table, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	start := time.Now()

	results := make([]Result, 0, NumDates)
	ch := make(chan Result, NumDates)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for month0 := 0; month0 < 12; month0++ {
		for day0 := 0; day0 < daysInMonth[month0]; day0++ {
			d := caldate.Date{Month0: month0, Day0: day0}
			g.Go(func() error {
				res, err := solveOne(ctx, table, d)
				if err != nil {
					return err
				}
				ch <- res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(ch)
	for res := range ch {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i].Date, results[j].Date
		if a.Month0 != b.Month0 {
			return a.Month0 < b.Month0
		}
		return a.Day0 < b.Day0
	})

	log.Info().
		Int("dates", len(results)).
		Dur("elapsed", time.Since(start)).
		Msg("year sweep finished")
	return results, nil
}

func solveOne(ctx context.Context, table *piece.Table, d caldate.Date) (Result, error) {
	gm, err := game.ForDate(d.Month0, d.Day0)
	if err != nil {
		return Result{}, fmt.Errorf("sweep %v: %w", d, err)
	}
	s := solver.New(table, gm)
	start := time.Now()
	solved, err := s.Solve(ctx)
	if err != nil {
		return Result{}, err
	}
	if !solved {
		// Shouldn't happen for a real date, but it's a result, not an error.
		log.Warn().Str("date", d.String()).Msg("no solution found")
	}
	return Result{
		Date:    d,
		Name:    d.String(),
		Solved:  solved,
		Nodes:   s.Nodes(),
		Elapsed: time.Since(start),
		Board:   gm.String(),
	}, nil
}
