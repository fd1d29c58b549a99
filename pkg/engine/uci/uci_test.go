package uci_test

import (
	"context"
	"strings"
	"testing"

	"github.com/halfmove/mainline/pkg/chess/fen"
	"github.com/halfmove/mainline/pkg/engine"
	"github.com/halfmove/mainline/pkg/engine/uci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriver() (*uci.Driver, *[]string, *engine.Engine) {
	var lines []string
	e := engine.New("Mainline", "halfmove")
	d := uci.NewDriver(e, func(line string) { lines = append(lines, line) })
	return d, &lines, e
}

func TestUCIHandshake(t *testing.T) {
	ctx := context.Background()
	d, lines, _ := newDriver()

	quit := d.HandleLine(ctx, "uci")
	assert.False(t, quit)
	require.Len(t, *lines, 3)
	assert.Contains(t, (*lines)[0], "id name")
	assert.Contains(t, (*lines)[1], "id author")
	assert.Equal(t, "uciok", (*lines)[2])
}

func TestIsReady(t *testing.T) {
	ctx := context.Background()
	d, lines, _ := newDriver()
	d.HandleLine(ctx, "isready")
	assert.Equal(t, []string{"readyok"}, *lines)
}

func TestQuitStopsTheLoop(t *testing.T) {
	ctx := context.Background()
	d, _, _ := newDriver()
	assert.True(t, d.HandleLine(ctx, "quit"))
}

func TestPositionStartposWithMoves(t *testing.T) {
	ctx := context.Background()
	d, _, e := newDriver()
	require.False(t, d.HandleLine(ctx, "position startpos moves e2e4 e7e5"))
	assert.NotEqual(t, fen.Initial, fen.Encode(e.Position()))
}

func TestPositionFen(t *testing.T) {
	ctx := context.Background()
	d, lines, _ := newDriver()
	cmd := "position fen " + fen.Initial
	d.HandleLine(ctx, cmd)
	assert.Empty(t, *lines)
}

func TestPositionInvalidMoveLeavesPriorPositionUnchanged(t *testing.T) {
	ctx := context.Background()
	d, lines, e := newDriver()

	d.HandleLine(ctx, "position startpos moves e2e4 e2e4")
	require.Len(t, *lines, 1)
	assert.Contains(t, (*lines)[0], "Error:")
	assert.Equal(t, fen.Initial, fen.Encode(e.Position()), "a failed position command must not mutate the engine's position")
}

func TestGoDepthEmitsInfoAndBestmove(t *testing.T) {
	ctx := context.Background()
	d, lines, _ := newDriver()
	d.HandleLine(ctx, "go depth 1")

	require.NotEmpty(t, *lines)
	last := (*lines)[len(*lines)-1]
	assert.True(t, strings.HasPrefix(last, "bestmove "))

	info := (*lines)[0]
	assert.True(t, strings.HasPrefix(info, "info depth 1 score cp"))
}

func TestGoPerftEmitsDivideAndTotal(t *testing.T) {
	ctx := context.Background()
	d, lines, _ := newDriver()
	d.HandleLine(ctx, "go perft 1")

	require.Len(t, *lines, 22) // 20 root moves + blank separator + total
	assert.Equal(t, "", (*lines)[20])
	assert.Equal(t, "20", (*lines)[21])
}

func TestGoRejectsMalformedArgs(t *testing.T) {
	ctx := context.Background()
	d, lines, _ := newDriver()
	d.HandleLine(ctx, "go depth")
	require.Len(t, *lines, 1)
	assert.Contains(t, (*lines)[0], "Error:")
}

func TestFlipCommand(t *testing.T) {
	ctx := context.Background()
	d, _, e := newDriver()
	require.Equal(t, "w", e.Position().SideToMove.String())
	d.HandleLine(ctx, "flip")
	assert.Equal(t, "b", e.Position().SideToMove.String())
}

func TestUnknownCommand(t *testing.T) {
	ctx := context.Background()
	d, lines, _ := newDriver()
	d.HandleLine(ctx, "bogus")
	require.Len(t, *lines, 1)
	assert.Contains(t, (*lines)[0], "Error: unknown command")
}
