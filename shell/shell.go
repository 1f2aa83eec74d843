// Package shell is an interactive front-end for poking at the solver:
// pick dates, solve them, pin pieces, sweep the whole year.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/isaacazuelos/puzzle-a-day/caldate"
	"github.com/isaacazuelos/puzzle-a-day/config"
	"github.com/isaacazuelos/puzzle-a-day/game"
	"github.com/isaacazuelos/puzzle-a-day/mask"
	"github.com/isaacazuelos/puzzle-a-day/piece"
	"github.com/isaacazuelos/puzzle-a-day/solver"
	"github.com/isaacazuelos/puzzle-a-day/sweep"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	table *piece.Table
	tt    *solver.TransTable

	curDate caldate.Date
	curGame *game.Game
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController builds the controller and its readline instance. The
// position table is computed here, once, and shared by everything the shell
// does.
func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mpuzzle>\033[0m ",
		HistoryFile:     "/tmp/puzzle-a-day-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := &ShellController{l: l, cfg: cfg, table: piece.NewTable()}
	if cfg.GetBool("ttable") {
		sc.tt = solver.NewTransTable(cfg.GetFloat64("ttable-mem-fraction"))
	}
	sc.setDate(caldate.Today())
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) setDate(d caldate.Date) {
	g, err := game.ForDate(d.Month0, d.Day0)
	if err != nil {
		// caldate only hands out real dates, so this is unreachable.
		sc.showError(err)
		return
	}
	sc.curDate = d
	sc.curGame = g
	sc.showMessage("Date set to " + d.String())
}

func (sc *ShellController) solve() {
	s := solver.New(sc.table, sc.curGame)
	if sc.tt != nil {
		s.SetTransTable(sc.tt)
	}
	solved, err := s.Solve(context.Background())
	if err != nil {
		sc.showError(err)
		return
	}
	if !solved {
		sc.showMessage(fmt.Sprintf(
			"No solution from this position (%d nodes searched).", s.Nodes()))
		return
	}
	sc.showMessage(fmt.Sprintf("Solved %v in %d nodes:", sc.curDate, s.Nodes()))
	sc.showMessage(sc.curGame.String())
}

func (sc *ShellController) showBoard() {
	sc.showMessage(sc.curGame.String())
}

func (sc *ShellController) showPieces() {
	for _, p := range piece.All {
		w, h := p.Size()
		chiral := ""
		if p.IsChiral() {
			chiral = ", chiral"
		}
		sc.showMessage(fmt.Sprintf("%s: %dx%d%s, %d positions",
			p, w, h, chiral, len(sc.table.Positions(p))))
	}
}

func (sc *ShellController) showPlacements(arg string) error {
	p, err := pieceFromArg(arg)
	if err != nil {
		return err
	}
	positions := sc.table.Positions(p)
	sc.showMessage(fmt.Sprintf("%s has %d positions; first and last:", p, len(positions)))
	sc.showMessage(positions[0].String())
	sc.showMessage(positions[len(positions)-1].String())
	return nil
}

// pin places a piece's base orientation at a row and column before solving,
// so you can explore solutions through a position you like.
func (sc *ShellController) pin(args []string) error {
	if len(args) != 3 {
		return errors.New("pin takes a piece, a row, and a column")
	}
	p, err := pieceFromArg(args[0])
	if err != nil {
		return err
	}
	row, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}
	col, err := strconv.Atoi(args[2])
	if err != nil {
		return err
	}
	w, h := p.Size()
	if row < 0 || col < 0 || col > mask.Width-w || row > mask.Height-h {
		return fmt.Errorf("%s does not fit at row %d, column %d", p, row, col)
	}
	if sc.curGame.Placed(p) != mask.Blank {
		return fmt.Errorf("%s is already on the board; unpin it first", p)
	}
	if !sc.curGame.Place(p, p.BaseMask().Translate(col, row)) {
		return fmt.Errorf("%s collides with something at row %d, column %d", p, row, col)
	}
	sc.showBoard()
	return nil
}

func (sc *ShellController) unpin(arg string) error {
	p, err := pieceFromArg(arg)
	if err != nil {
		return err
	}
	sc.curGame.Remove(p)
	sc.showBoard()
	return nil
}

func (sc *ShellController) randomDate() {
	month0 := frand.Intn(12)
	day0 := frand.Intn(sweep.DaysIn(month0))
	sc.setDate(caldate.Date{Month0: month0, Day0: day0})
}

func (sc *ShellController) sweepYear(args []string) error {
	results, err := sweep.Run(context.Background(), sc.table,
		sc.cfg.GetInt("sweep-workers"))
	if err != nil {
		return err
	}
	if err := sweep.Report(sc.l.Stderr(), results); err != nil {
		return err
	}
	if len(args) > 0 {
		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		if err := sweep.WriteYAML(f, results); err != nil {
			return err
		}
		sc.showMessage("Wrote results to " + args[0])
	}
	return nil
}

func pieceFromArg(arg string) (piece.Piece, error) {
	runes := []rune(arg)
	if len(runes) == 1 {
		if p, ok := piece.FromRune(runes[0]); ok {
			return p, nil
		}
	}
	// Spell out the awkward glyphs too.
	switch strings.ToLower(arg) {
	case "gamma":
		return piece.Gamma, nil
	case "lamedh":
		return piece.Lamedh, nil
	}
	return 0, fmt.Errorf("no piece named %q", arg)
}

// Loop reads and runs commands until exit or EOF.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields, err := shellquote.Split(line)
		if err != nil {
			sc.showError(err)
			continue
		}
		if done := sc.dispatch(fields); done {
			break
		}
	}
	log.Debug().Msg("Exiting shell..")
}

func (sc *ShellController) dispatch(fields []string) bool {
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "date":
		if len(args) != 1 {
			sc.showError(errors.New("date takes one argument, like `date 2020-03-13`"))
			break
		}
		d, err := caldate.Parse(args[0])
		if err != nil {
			sc.showError(err)
			break
		}
		sc.setDate(d)
	case "today":
		sc.setDate(caldate.Today())
	case "random":
		sc.randomDate()
	case "solve":
		sc.solve()
	case "show":
		sc.showBoard()
	case "pieces":
		sc.showPieces()
	case "placements":
		if len(args) != 1 {
			sc.showError(errors.New("placements takes a piece name"))
			break
		}
		if err := sc.showPlacements(args[0]); err != nil {
			sc.showError(err)
		}
	case "pin":
		if err := sc.pin(args); err != nil {
			sc.showError(err)
		}
	case "unpin":
		if len(args) != 1 {
			sc.showError(errors.New("unpin takes a piece name"))
			break
		}
		if err := sc.unpin(args[0]); err != nil {
			sc.showError(err)
		}
	case "sweep":
		if err := sc.sweepYear(args); err != nil {
			sc.showError(err)
		}
	case "help":
		sc.showMessage(helpText)
	case "exit", "quit":
		return true
	default:
		sc.showError(fmt.Errorf("unrecognized command %q; try `help`", cmd))
	}
	return false
}

const helpText = `Commands:
  date YYYY-MM-DD   set the date to solve for (validated; the year matters!)
  today             set the date to today
  random            set a random date
  show              print the current board
  solve             solve the current board
  pieces            list the pieces
  placements PIECE  show a piece's position count and extremes
  pin PIECE ROW COL place a piece (base orientation) before solving
  unpin PIECE       take a pinned piece back off
  sweep [FILE]      solve every date of the year; optionally save YAML
  help              this message
  exit              leave the shell`
