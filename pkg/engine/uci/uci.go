// Package uci contains a synchronous driver exposing the engine through a UCI command subset.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
package uci

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/halfmove/mainline/pkg/chess/fen"
	"github.com/halfmove/mainline/pkg/engine"
	"github.com/halfmove/mainline/pkg/search"
	"github.com/seekerror/logw"
)

// Driver dispatches lines of the command surface in spec.md §6.1 against a single Engine. Per
// the single-threaded cooperative model of spec.md §5, HandleLine runs each command to
// completion — including the full iterative-deepening search for `go depth` — before returning;
// there is no background goroutine and no cancellation.
type Driver struct {
	e    *engine.Engine
	sink func(string)
}

// NewDriver wires a driver to the given engine. sink is called once per output line, in order;
// it must be safe to call synchronously from HandleLine.
func NewDriver(e *engine.Engine, sink func(string)) *Driver {
	return &Driver{e: e, sink: sink}
}

// HandleLine dispatches a single input line. It returns true iff the driver received `quit` and
// the caller should stop reading further lines.
func (d *Driver) HandleLine(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "uci":
		// Identify the engine, then signal readiness to switch into UCI mode.
		d.sink(fmt.Sprintf("id name %v", d.e.Name()))
		d.sink(fmt.Sprintf("id author %v", d.e.Author()))
		d.sink("uciok")

	case "isready":
		// Synchronous command processing means the engine is always ready the instant it is
		// asked; there is no asynchronous initialization to wait out.
		d.sink("readyok")

	case "position":
		if err := d.handlePosition(ctx, args); err != nil {
			logw.Warningf(ctx, "invalid position command %q: %v", line, err)
			d.sink(fmt.Sprintf("Error: %v", err))
		}

	case "go":
		d.handleGo(ctx, args)

	case "d":
		d.sink(d.e.Diagram())

	case "flip":
		d.e.Flip()

	case "quit":
		return true

	default:
		d.sink(fmt.Sprintf("Error: unknown command %q", cmd))
	}
	return false
}

// handlePosition implements `position startpos|fen <6 fields> [moves <lan>...]`. It validates
// the whole command against a candidate position before committing: an invalid FEN or an
// illegal move anywhere in the sequence leaves the engine's current position untouched.
func (d *Driver) handlePosition(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("position requires 'startpos' or 'fen'")
	}

	var fenStr string
	var rest []string
	switch args[0] {
	case "startpos":
		fenStr = fen.Initial
		rest = args[1:]
	case "fen":
		if len(args) < 7 {
			return fmt.Errorf("incomplete fen in %q", strings.Join(args, " "))
		}
		fenStr = strings.Join(args[1:7], " ")
		rest = args[7:]
	default:
		return fmt.Errorf("expected 'startpos' or 'fen', got %q", args[0])
	}

	pos, err := fen.Decode(fenStr)
	if err != nil {
		return err
	}

	if len(rest) > 0 {
		if rest[0] != "moves" {
			return fmt.Errorf("expected 'moves', got %q", rest[0])
		}
		for _, lan := range rest[1:] {
			if err := pos.MakeLAN(lan); err != nil {
				return fmt.Errorf("move %q: %w", lan, err)
			}
		}
	}

	d.e.SetPosition(pos)
	return nil
}

// handleGo implements `go depth <n>` and `go perft <n>`. Any other shape emits an error and
// starts no search, per spec.md §7.
func (d *Driver) handleGo(ctx context.Context, args []string) {
	if len(args) != 2 {
		d.sink("Error: go requires exactly 'depth <n>' or 'perft <n>'")
		return
	}

	n, err := strconv.Atoi(args[1])
	if err != nil || n < 0 {
		d.sink(fmt.Sprintf("Error: invalid depth %q", args[1]))
		return
	}

	switch args[0] {
	case "depth":
		if n == 0 {
			return
		}
		pv := d.e.AnalyzeDepth(ctx, n, func(pv search.PV) {
			d.sink(formatInfo(pv))
		})
		d.sink(fmt.Sprintf("bestmove %v", firstMoveOrNull(pv)))

	case "perft":
		roots, total := d.e.Perft(n)
		for _, r := range roots {
			d.sink(fmt.Sprintf("%v: %v", r.Move, r.Count))
		}
		d.sink("")
		d.sink(fmt.Sprintf("%v", total))

	default:
		d.sink(fmt.Sprintf("Error: unknown go subcommand %q", args[0]))
	}
}

func firstMoveOrNull(pv search.PV) string {
	if len(pv.Moves) == 0 {
		return "0000"
	}
	return pv.Moves[0].String()
}

// formatInfo renders one principal-variation line in the canonical key order of spec.md §6.2.
func formatInfo(pv search.PV) string {
	parts := []string{"info", fmt.Sprintf("depth %v", pv.Depth)}
	if pv.Mate != 0 {
		parts = append(parts, fmt.Sprintf("score mate %v", pv.Mate))
	} else {
		parts = append(parts, fmt.Sprintf("score cp %v", pv.Score))
	}
	parts = append(parts, fmt.Sprintf("time %v", pv.Time.Milliseconds()))
	parts = append(parts, fmt.Sprintf("nodes %v", pv.Nodes))
	if pv.Time > 0 {
		nps := pv.Nodes * 1000 / uint64(pv.Time.Milliseconds()+1)
		parts = append(parts, fmt.Sprintf("nps %v", nps))
	}
	if len(pv.Moves) > 0 {
		var moves []string
		for _, m := range pv.Moves {
			moves = append(moves, m.String())
		}
		parts = append(parts, "pv "+strings.Join(moves, " "))
	}
	return strings.Join(parts, " ")
}
