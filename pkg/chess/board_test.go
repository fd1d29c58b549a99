package chess_test

import (
	"testing"

	"github.com/halfmove/mainline/pkg/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func e2() chess.Coordinate { return chess.NewCoordinate(4, 6) }
func e4() chess.Coordinate { return chess.NewCoordinate(4, 4) }

func TestBoardSimpleMakeUnmake(t *testing.T) {
	var b chess.Board
	b.Set(e2(), chess.Piece{Color: chess.White, Kind: chess.Pawn})

	before := b
	u, err := b.Make(chess.Move{From: e2(), To: e4()})
	require.NoError(t, err)
	assert.True(t, b.IsEmpty(e2()))
	assert.Equal(t, chess.Piece{Color: chess.White, Kind: chess.Pawn}, b.Get(e4()))

	b.Unmake(u)
	assert.Equal(t, before, b)
}

func TestBoardMakeFromEmptySquare(t *testing.T) {
	var b chess.Board
	_, err := b.Make(chess.Move{From: e2(), To: e4()})
	assert.ErrorIs(t, err, chess.ErrTargetIsNone)
}

func TestBoardEnPassantMakeUnmake(t *testing.T) {
	var b chess.Board
	d5 := chess.NewCoordinate(3, 3)
	e5 := chess.NewCoordinate(4, 3)
	e6 := chess.NewCoordinate(4, 2)

	b.Set(e5, chess.Piece{Color: chess.White, Kind: chess.Pawn})
	b.Set(d5, chess.Piece{Color: chess.Black, Kind: chess.Pawn})
	before := b

	u, err := b.Make(chess.Move{From: e5, To: chess.NewCoordinate(3, 2)})
	require.NoError(t, err)
	assert.Equal(t, chess.ModEnPassant, u.Modifier)
	assert.True(t, b.IsEmpty(d5))
	assert.True(t, b.IsEmpty(e5))
	assert.Equal(t, chess.Piece{Color: chess.Black, Kind: chess.Pawn}, u.Captured)
	_ = e6

	b.Unmake(u)
	assert.Equal(t, before, b)
}

func TestBoardPromotionMakeUnmake(t *testing.T) {
	var b chess.Board
	e7 := chess.NewCoordinate(4, 1)
	e8 := chess.NewCoordinate(4, 0)
	b.Set(e7, chess.Piece{Color: chess.White, Kind: chess.Pawn})
	before := b

	u, err := b.Make(chess.Move{From: e7, To: e8, Promotion: chess.Queen})
	require.NoError(t, err)
	assert.Equal(t, chess.ModPromotion, u.Modifier)
	assert.Equal(t, chess.Piece{Color: chess.White, Kind: chess.Queen}, b.Get(e8))

	b.Unmake(u)
	assert.Equal(t, before, b)
}

func TestBoardCastleMakeUnmake(t *testing.T) {
	var b chess.Board
	e1 := chess.NewCoordinate(4, 7)
	h1 := chess.NewCoordinate(7, 7)
	g1 := chess.NewCoordinate(6, 7)
	f1 := chess.NewCoordinate(5, 7)

	b.Set(e1, chess.Piece{Color: chess.White, Kind: chess.King})
	b.Set(h1, chess.Piece{Color: chess.White, Kind: chess.Rook})
	before := b

	u, err := b.Make(chess.Move{From: e1, To: g1})
	require.NoError(t, err)
	assert.Equal(t, chess.ModCastle, u.Modifier)
	assert.Equal(t, chess.Piece{Color: chess.White, Kind: chess.King}, b.Get(g1))
	assert.Equal(t, chess.Piece{Color: chess.White, Kind: chess.Rook}, b.Get(f1))
	assert.True(t, b.IsEmpty(h1))
	assert.True(t, b.IsEmpty(e1))

	b.Unmake(u)
	assert.Equal(t, before, b)
}

func TestBoardKingSquare(t *testing.T) {
	var b chess.Board
	e1 := chess.NewCoordinate(4, 7)
	b.Set(e1, chess.Piece{Color: chess.White, Kind: chess.King})
	assert.Equal(t, e1, b.KingSquare(chess.White))
}

func TestBoardOccupancy(t *testing.T) {
	var b chess.Board
	b.Set(e2(), chess.Piece{Color: chess.White, Kind: chess.Pawn})
	b.Set(e4(), chess.Piece{Color: chess.Black, Kind: chess.Pawn})

	occ := b.Occupancy()
	assert.True(t, occ.IsSet(e2()))
	assert.True(t, occ.IsSet(e4()))
	assert.Equal(t, 2, occ.PopCount())

	white := b.OccupancyColor(chess.White)
	assert.True(t, white.IsSet(e2()))
	assert.False(t, white.IsSet(e4()))
}
