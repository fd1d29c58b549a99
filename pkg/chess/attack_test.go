package chess_test

import (
	"testing"

	"github.com/halfmove/mainline/pkg/chess"
	"github.com/stretchr/testify/assert"
)

func sq(file, rank int) chess.Coordinate {
	return chess.NewCoordinate(file, 8-rank)
}

func TestIsAttackedByRook(t *testing.T) {
	var b chess.Board
	b.Set(sq(0, 1), chess.Piece{Color: chess.Black, Kind: chess.Rook}) // a1
	b.Set(sq(0, 8), chess.Piece{Color: chess.White, Kind: chess.King}) // a8

	assert.True(t, chess.IsAttacked(&b, chess.White, sq(0, 8)))
	assert.False(t, chess.IsAttacked(&b, chess.White, sq(1, 8)))
}

func TestIsAttackedBlockedByPiece(t *testing.T) {
	var b chess.Board
	b.Set(sq(0, 1), chess.Piece{Color: chess.Black, Kind: chess.Rook})
	b.Set(sq(0, 4), chess.Piece{Color: chess.White, Kind: chess.Pawn})
	b.Set(sq(0, 8), chess.Piece{Color: chess.White, Kind: chess.King})

	assert.False(t, chess.IsAttacked(&b, chess.White, sq(0, 8)))
}

func TestDangerZoneXRaysEnemyKing(t *testing.T) {
	var b chess.Board
	b.Set(sq(0, 1), chess.Piece{Color: chess.Black, Kind: chess.Rook})
	b.Set(sq(0, 4), chess.Piece{Color: chess.White, Kind: chess.King})

	danger := chess.DangerZone(&b, chess.Black)
	assert.True(t, danger.IsSet(sq(0, 8))) // ray continues past the White king
}

func TestFindPinsDetectsAbsolutePin(t *testing.T) {
	var b chess.Board
	king := sq(0, 8)
	knight := sq(0, 5)
	rook := sq(0, 1)
	b.Set(king, chess.Piece{Color: chess.White, Kind: chess.King})
	b.Set(knight, chess.Piece{Color: chess.White, Kind: chess.Knight})
	b.Set(rook, chess.Piece{Color: chess.Black, Kind: chess.Rook})

	pins := chess.FindPins(&b, king)
	assert.Len(t, pins, 1)
	assert.Equal(t, knight, pins[0].Pinned)
	assert.Equal(t, rook, pins[0].Attacker)
}

func TestFindPinsIgnoresNonAlignedPieces(t *testing.T) {
	var b chess.Board
	king := sq(0, 8)
	b.Set(king, chess.Piece{Color: chess.White, Kind: chess.King})
	b.Set(sq(1, 1), chess.Piece{Color: chess.Black, Kind: chess.Rook})

	pins := chess.FindPins(&b, king)
	assert.Empty(t, pins)
}

func TestFindAttackersAndLineOfSight(t *testing.T) {
	var b chess.Board
	king := sq(0, 8)
	rook := sq(0, 1)
	b.Set(king, chess.Piece{Color: chess.White, Kind: chess.King})
	b.Set(rook, chess.Piece{Color: chess.Black, Kind: chess.Rook})

	attackers, los := chess.FindAttackers(&b, king)
	assert.True(t, attackers.IsSet(rook))
	assert.Equal(t, 1, attackers.PopCount())
	for r := 2; r <= 7; r++ {
		assert.True(t, los.IsSet(sq(0, r)), "rank %d should be on the line of sight", r)
	}
}
