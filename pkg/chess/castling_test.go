package chess_test

import (
	"testing"

	"github.com/halfmove/mainline/pkg/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastlingRightsString(t *testing.T) {
	assert.Equal(t, "KQkq", chess.FullCastlingRights.String())
	assert.Equal(t, "-", chess.CastlingRights(0).String())
	assert.Equal(t, "Kq", (chess.WhiteKingSide | chess.BlackQueenSide).String())
}

func TestParseCastlingRights(t *testing.T) {
	rights, err := chess.ParseCastlingRights("KQkq")
	require.NoError(t, err)
	assert.Equal(t, chess.FullCastlingRights, rights)

	rights, err = chess.ParseCastlingRights("-")
	require.NoError(t, err)
	assert.Equal(t, chess.CastlingRights(0), rights)

	_, err = chess.ParseCastlingRights("X")
	assert.ErrorIs(t, err, chess.ErrInvalidCharacter)
}

func TestCastlingRightsWithout(t *testing.T) {
	rights := chess.FullCastlingRights.Without(chess.WhiteKingSide)
	assert.False(t, rights.Has(chess.WhiteKingSide))
	assert.True(t, rights.Has(chess.WhiteQueenSide))
}
