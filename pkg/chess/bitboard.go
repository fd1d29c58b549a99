package chess

import (
	"math/bits"
	"strings"
)

// Bitboard is a bit-wise set over the 64 squares (bit N = Coordinate N). It relies on
// CPU-supported popcount via math/bits.
type Bitboard uint64

const EmptyBitboard Bitboard = 0

func BitMask(c Coordinate) Bitboard {
	return Bitboard(1) << uint(c)
}

func (b Bitboard) IsSet(c Coordinate) bool {
	return b&BitMask(c) != 0
}

func (b Bitboard) Set(c Coordinate) Bitboard {
	return b | BitMask(c)
}

func (b Bitboard) Clear(c Coordinate) Bitboard {
	return b &^ BitMask(c)
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Squares returns every set square, in increasing Coordinate order.
func (b Bitboard) Squares() []Coordinate {
	var ret []Coordinate
	for sq := Coordinate(0); int(sq) < NumSquares; sq++ {
		if b.IsSet(sq) {
			ret = append(ret, sq)
		}
	}
	return ret
}

func (b Bitboard) String() string {
	var sb strings.Builder
	for sq := Coordinate(0); int(sq) < NumSquares; sq++ {
		if sq != 0 && int(sq)%8 == 0 {
			sb.WriteRune('/')
		}
		if b.IsSet(sq) {
			sb.WriteRune('X')
		} else {
			sb.WriteRune('-')
		}
	}
	return sb.String()
}

// knightOffsets and kingOffsets are the (dx, dy) deltas for the respective piece's single move.
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// rookDirections and bishopDirections are the four ray directions for each slider.
var rookDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// KnightCoverage returns the squares a Knight on sq attacks/covers.
func KnightCoverage(sq Coordinate) Bitboard {
	var ret Bitboard
	for _, o := range knightOffsets {
		if to, err := sq.TryMove(o[0], o[1]); err == nil {
			ret = ret.Set(to)
		}
	}
	return ret
}

// KingCoverage returns the squares a King on sq attacks/covers (castling excluded).
func KingCoverage(sq Coordinate) Bitboard {
	var ret Bitboard
	for _, o := range kingOffsets {
		if to, err := sq.TryMove(o[0], o[1]); err == nil {
			ret = ret.Set(to)
		}
	}
	return ret
}

// PawnCoverage returns the two diagonal squares in front of a pawn of the given color on sq,
// regardless of occupancy. "In front" means toward the opponent: dy=+1 for White, dy=-1 for Black.
func PawnCoverage(c Color, sq Coordinate) Bitboard {
	dy := 1
	if c == Black {
		dy = -1
	}
	var ret Bitboard
	if to, err := sq.TryMove(1, dy); err == nil {
		ret = ret.Set(to)
	}
	if to, err := sq.TryMove(-1, dy); err == nil {
		ret = ret.Set(to)
	}
	return ret
}
