package engine_test

import (
	"context"
	"testing"

	"github.com/halfmove/mainline/pkg/chess/fen"
	"github.com/halfmove/mainline/pkg/engine"
	"github.com/halfmove/mainline/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineStartsAtInitialPosition(t *testing.T) {
	e := engine.New("Mainline", "halfmove")
	assert.Equal(t, fen.Initial, fen.Encode(e.Position()))
	assert.Equal(t, "halfmove", e.Author())
	assert.Contains(t, e.Name(), "Mainline")
}

func TestMoveRejectsIllegalWithoutMutatingPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New("Mainline", "halfmove")
	before := fen.Encode(e.Position())

	err := e.Move(ctx, "e2e5")
	assert.Error(t, err)
	assert.Equal(t, before, fen.Encode(e.Position()))
}

func TestMoveAppliesLegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New("Mainline", "halfmove")
	require.NoError(t, e.Move(ctx, "e2e4"))
	assert.NotEqual(t, fen.Initial, fen.Encode(e.Position()))
}

func TestResetLeavesPriorPositionOnError(t *testing.T) {
	ctx := context.Background()
	e := engine.New("Mainline", "halfmove")
	before := fen.Encode(e.Position())

	err := e.Reset(ctx, "not a fen")
	assert.Error(t, err)
	assert.Equal(t, before, fen.Encode(e.Position()))
}

func TestFlipTogglesSideToMove(t *testing.T) {
	e := engine.New("Mainline", "halfmove")
	require.Equal(t, "w", e.Position().SideToMove.String())
	e.Flip()
	assert.Equal(t, "b", e.Position().SideToMove.String())
}

func TestDiagramContainsFEN(t *testing.T) {
	e := engine.New("Mainline", "halfmove")
	d := e.Diagram()
	assert.Contains(t, d, "fen: "+fen.Initial)
	assert.Contains(t, d, "a  b  c  d  e  f  g  h")
}

func TestPerftInitialPositionRootCounts(t *testing.T) {
	e := engine.New("Mainline", "halfmove")
	roots, total := e.Perft(1)
	assert.Len(t, roots, 20)
	assert.Equal(t, uint64(20), total)
}

func TestAnalyzeDepthRespectsMaxDepthCap(t *testing.T) {
	ctx := context.Background()
	e := engine.New("Mainline", "halfmove", engine.WithOptions(engine.Options{MaxDepth: lang.Some(uint(1))}))

	var depths []int
	e.AnalyzeDepth(ctx, 5, func(pv search.PV) { depths = append(depths, pv.Depth) })
	assert.Equal(t, []int{1}, depths)
}
