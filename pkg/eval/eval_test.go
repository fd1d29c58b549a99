package eval_test

import (
	"testing"

	"github.com/halfmove/mainline/pkg/chess"
	"github.com/halfmove/mainline/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateCheckmateIsDecisive(t *testing.T) {
	pos := chess.NewPosition()
	for _, lan := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if err := pos.MakeLAN(lan); err != nil {
			t.Fatalf("unexpected error applying %v: %v", lan, err)
		}
	}
	_, result := chess.LegalMoves(pos)

	outcome := eval.Evaluate(pos, result)
	assert.True(t, outcome.HasWinner)
	assert.Equal(t, chess.Black, outcome.Winner)
}

func TestEvaluateStalemateIsDraw(t *testing.T) {
	var b chess.Board
	b.Set(chess.NewCoordinate(7, 0), chess.Piece{Color: chess.Black, Kind: chess.King})
	b.Set(chess.NewCoordinate(5, 1), chess.Piece{Color: chess.White, Kind: chess.King})
	b.Set(chess.NewCoordinate(6, 2), chess.Piece{Color: chess.White, Kind: chess.Queen})
	pos := &chess.Position{SideToMove: chess.Black, EnPassant: chess.NoCoordinate, FullMoves: 1}
	*pos.Board() = b

	_, result := chess.LegalMoves(pos)
	outcome := eval.Evaluate(pos, result)
	assert.True(t, outcome.Draw)
}

func TestEvaluateHalfMoveClockAtLimitIsDraw(t *testing.T) {
	pos := chess.NewPosition()
	pos.HalfMoves = 75
	_, result := chess.LegalMoves(pos)
	outcome := eval.Evaluate(pos, result)
	assert.True(t, outcome.Draw)
}

func TestEvaluateInitialPositionIsSymmetric(t *testing.T) {
	pos := chess.NewPosition()
	_, result := chess.LegalMoves(pos)
	outcome := eval.Evaluate(pos, result)
	assert.False(t, outcome.HasWinner)
	assert.False(t, outcome.Draw)
	assert.Equal(t, 0, outcome.Score, "symmetric starting position should score exactly 0")
}

func TestEvaluateMaterialAdvantageFavorsWhite(t *testing.T) {
	var b chess.Board
	b.Set(chess.NewCoordinate(4, 7), chess.Piece{Color: chess.White, Kind: chess.King})
	b.Set(chess.NewCoordinate(4, 0), chess.Piece{Color: chess.Black, Kind: chess.King})
	b.Set(chess.NewCoordinate(0, 7), chess.Piece{Color: chess.White, Kind: chess.Queen})
	pos := &chess.Position{SideToMove: chess.White, EnPassant: chess.NoCoordinate, FullMoves: 1}
	*pos.Board() = b

	_, result := chess.LegalMoves(pos)
	outcome := eval.Evaluate(pos, result)
	assert.False(t, outcome.HasWinner)
	assert.Greater(t, outcome.Score, 0, "an extra queen should score strongly positive for White")
}

func TestEvaluateOutcomeString(t *testing.T) {
	assert.Equal(t, "w wins", eval.Outcome{HasWinner: true, Winner: chess.White}.String())
	assert.Equal(t, "draw", eval.Outcome{Draw: true}.String())
	assert.Equal(t, "+42 cp", eval.Outcome{Score: 42}.String())
}
