// A solver for DragonFjord's A-Puzzle-A-Day. Solves for today, or for a
// date given with -d, and prints the board.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/isaacazuelos/puzzle-a-day/caldate"
	"github.com/isaacazuelos/puzzle-a-day/config"
	"github.com/isaacazuelos/puzzle-a-day/game"
	"github.com/isaacazuelos/puzzle-a-day/piece"
	"github.com/isaacazuelos/puzzle-a-day/solver"
)

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).With().Timestamp().Logger()
	if cfg.GetBool("debug") {
		logger = logger.Level(zerolog.DebugLevel)
	}
	log.Logger = logger

	date := caldate.Today()
	if ds := cfg.GetString("date"); ds != "" {
		var err error
		date, err = caldate.Parse(ds)
		if err != nil {
			// There's not much we can do with an invalid date.
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	g, err := game.ForDate(date.Month0, date.Day0)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s := solver.New(piece.NewTable(), g)
	if cfg.GetBool("ttable") {
		s.SetTransTable(solver.NewTransTable(cfg.GetFloat64("ttable-mem-fraction")))
	}
	solved, err := s.Solve(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if !solved {
		fmt.Fprintf(os.Stderr, "no solution found for %v\n", date)
		os.Exit(1)
	}
	fmt.Println(date)
	fmt.Print(g)
}
