// Package engine ties together position state, move application and search into the single
// mutable driver state the UCI layer commands.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/halfmove/mainline/pkg/chess"
	"github.com/halfmove/mainline/pkg/chess/fen"
	"github.com/halfmove/mainline/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Options are default runtime options, overridable per command where the command surface
// allows it.
type Options struct {
	// MaxDepth, if set, caps every `go depth <n>` request to at most this depth, regardless of
	// what the command asked for. Unset means no cap.
	MaxDepth lang.Optional[uint]
}

func (o Options) String() string {
	if d, ok := o.MaxDepth.V(); ok {
		return fmt.Sprintf("{maxdepth=%v}", d)
	}
	return "{maxdepth=none}"
}

// Engine holds the single mutable Position the driver operates on. Per spec.md §5, it is
// borrowed exclusively by a search for the duration of one `go` command; there is no concurrent
// access to guard against.
type Engine struct {
	name, author string
	opts         Options

	pos *chess.Position
}

// Option is an engine construction option.
type Option func(*Engine)

// WithOptions sets the engine's default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// New creates an engine at the standard starting position.
func New(name, author string, opts ...Option) *Engine {
	e := &Engine{name: name, author: author, pos: chess.NewPosition()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the engine name and version, as emitted by `id name` in the uci handshake.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the engine author, as emitted by `id author`.
func (e *Engine) Author() string {
	return e.author
}

// Position returns the current position for read-only inspection (diagram rendering, perft,
// search). Callers must not mutate it directly; go through Move/Reset/Flip.
func (e *Engine) Position() *chess.Position {
	return e.pos
}

// Reset replaces the current position with the one described by fenStr, leaving the prior
// position unchanged on error.
func (e *Engine) Reset(ctx context.Context, fenStr string) error {
	pos, err := fen.Decode(fenStr)
	if err != nil {
		return err
	}
	logw.Infof(ctx, "position reset: %v", fenStr)
	e.pos = pos
	return nil
}

// Move applies a single LAN move, rejecting it without mutating the position if it is not
// legal in the current position.
func (e *Engine) Move(ctx context.Context, lan string) error {
	if err := e.pos.MakeLAN(lan); err != nil {
		return err
	}
	logw.Debugf(ctx, "applied move %v", lan)
	return nil
}

// SetPosition replaces the current position outright, bypassing legality checks. Used by the
// driver to commit a fully-validated candidate position built up from a `position` command.
func (e *Engine) SetPosition(pos *chess.Position) {
	e.pos = pos
}

// Flip toggles the side to move without making a move, per the `flip` debug extension.
func (e *Engine) Flip() {
	e.pos.SideToMove = e.pos.SideToMove.Opponent()
}

// Diagram renders the board as an 8x8 ASCII grid with file/rank labels, from White's
// perspective, followed by the current FEN.
func (e *Engine) Diagram() string {
	var sb strings.Builder
	b := e.pos.Board()

	for y := 0; y < 8; y++ {
		fmt.Fprintf(&sb, "%v  ", 8-y)
		for x := 0; x < 8; x++ {
			p := b.Get(chess.NewCoordinate(x, y))
			if p.IsEmpty() {
				sb.WriteString(" . ")
			} else {
				fmt.Fprintf(&sb, " %c ", p.Letter())
			}
		}
		sb.WriteRune('\n')
	}
	sb.WriteString("    a  b  c  d  e  f  g  h\n")
	fmt.Fprintf(&sb, "\nfen: %v\n", fen.Encode(e.pos))
	return sb.String()
}

// RootCount is a root move and the leaf-node count of the subtree under it, for `go perft`.
type RootCount struct {
	Move  chess.Move
	Count uint64
}

// Perft counts leaf nodes reached after depth plies of legal moves from the current position,
// broken down per root move, per spec.md §6.1.
func (e *Engine) Perft(depth int) ([]RootCount, uint64) {
	if depth <= 0 {
		return nil, 1
	}

	legal, _ := chess.LegalMoves(e.pos)
	var ret []RootCount
	var total uint64
	for _, m := range legal {
		undo, err := e.pos.Make(m)
		if err != nil {
			panic(err)
		}
		count := perft(e.pos, depth-1)
		e.pos.Unmake(undo)

		ret = append(ret, RootCount{Move: m, Count: count})
		total += count
	}
	return ret, total
}

func perft(pos *chess.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	legal, _ := chess.LegalMoves(pos)
	var total uint64
	for _, m := range legal {
		undo, err := pos.Make(m)
		if err != nil {
			panic(err)
		}
		total += perft(pos, depth-1)
		pos.Unmake(undo)
	}
	return total
}

// AnalyzeDepth runs iterative deepening to the given depth (capped by Options.MaxDepth, if
// configured), invoking sink once per completed depth in increasing order, and returns the
// final principal variation.
func (e *Engine) AnalyzeDepth(ctx context.Context, depth int, sink func(search.PV)) search.PV {
	if max, ok := e.opts.MaxDepth.V(); ok && depth > int(max) {
		depth = int(max)
	}
	logw.Debugf(ctx, "searching to depth %v from %v", depth, fen.Encode(e.pos))
	return search.Iterative(e.pos, depth, sink)
}
