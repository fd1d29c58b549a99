package chess

import (
	"fmt"
	"strings"
)

// CastlingRights is a set over {WK, WQ, BK, BQ}; it may be empty. 4 bits.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	FullCastlingRights = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// Has returns true iff all the given rights are allowed.
func (c CastlingRights) Has(right CastlingRights) bool {
	return c&right == right
}

// Without returns the rights with the given subset cleared.
func (c CastlingRights) Without(right CastlingRights) CastlingRights {
	return c &^ right
}

// KingSideRight and QueenSideRight return the single right of the given color, for uniform lookups.
func KingSideRight(c Color) CastlingRights {
	if c == White {
		return WhiteKingSide
	}
	return BlackKingSide
}

func QueenSideRight(c Color) CastlingRights {
	if c == White {
		return WhiteQueenSide
	}
	return BlackQueenSide
}

// String renders the rights in canonical "KQkq" order; empty renders as "-".
func (c CastlingRights) String() string {
	if c == 0 {
		return "-"
	}
	var sb strings.Builder
	if c.Has(WhiteKingSide) {
		sb.WriteRune('K')
	}
	if c.Has(WhiteQueenSide) {
		sb.WriteRune('Q')
	}
	if c.Has(BlackKingSide) {
		sb.WriteRune('k')
	}
	if c.Has(BlackQueenSide) {
		sb.WriteRune('q')
	}
	return sb.String()
}

func ParseCastlingRights(s string) (CastlingRights, error) {
	var ret CastlingRights
	if s == "-" {
		return ret, nil
	}
	for _, r := range s {
		switch r {
		case 'K':
			ret |= WhiteKingSide
		case 'Q':
			ret |= WhiteQueenSide
		case 'k':
			ret |= BlackKingSide
		case 'q':
			ret |= BlackQueenSide
		default:
			return 0, fmt.Errorf("%w: invalid castling letter '%v'", ErrInvalidCharacter, r)
		}
	}
	return ret, nil
}
