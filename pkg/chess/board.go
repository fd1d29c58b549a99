package chess

import "fmt"

// Modifier tags the side effect a Board-level move carried, so Unmake knows how to reverse it.
type Modifier uint8

const (
	ModNone Modifier = iota
	ModCastle
	ModEnPassant
	ModPromotion
)

// BoardUndo captures exactly what Make mutated: the move, whatever piece previously sat on the
// destination square (if any), and the modifier tag. Per spec.md §9, nothing else is needed at
// the Board level — castling rights, en passant target and the half-move clock are Position-level
// state and are captured separately by Position.Make.
type BoardUndo struct {
	Move     Move
	Captured Piece
	Modifier Modifier
}

// Board is the 64-slot piece array. It knows nothing about whose turn it is, castling rights,
// or en passant: that is Position's job. Board only knows how to relocate pieces and reverse it.
type Board struct {
	squares [NumSquares]Piece
}

func (b *Board) Get(c Coordinate) Piece {
	return b.squares[c]
}

func (b *Board) Set(c Coordinate, p Piece) {
	b.squares[c] = p
}

func (b *Board) IsEmpty(c Coordinate) bool {
	return b.squares[c].IsEmpty()
}

// Occupancy returns the bitboard of every occupied square.
func (b *Board) Occupancy() Bitboard {
	var ret Bitboard
	for sq := Coordinate(0); int(sq) < NumSquares; sq++ {
		if !b.squares[sq].IsEmpty() {
			ret = ret.Set(sq)
		}
	}
	return ret
}

// OccupancyColor returns the bitboard of squares occupied by the given color.
func (b *Board) OccupancyColor(c Color) Bitboard {
	var ret Bitboard
	for sq := Coordinate(0); int(sq) < NumSquares; sq++ {
		if p := b.squares[sq]; !p.IsEmpty() && p.Color == c {
			ret = ret.Set(sq)
		}
	}
	return ret
}

// KingSquare returns the square of the color's king. Panics if absent: a Board that reached
// move generation without exactly one king per side violates the Position invariant in
// spec.md §3 and is a programmer bug, not a recoverable error.
func (b *Board) KingSquare(c Color) Coordinate {
	for sq := Coordinate(0); int(sq) < NumSquares; sq++ {
		if p := b.squares[sq]; p.Kind == King && p.Color == c {
			return sq
		}
	}
	panic(fmt.Sprintf("no %v king on board", c))
}

// Make mutates the board in place to reflect the given move, classifying it from the moving
// piece and (From, To) per spec.md §4.2:
//
//   - Pawn, |dx|=1 and destination empty => en passant: remove the pawn one square "behind"
//     the destination (toward the mover's own side, i.e. sharing From's rank).
//   - Pawn with Promotion set => replace destination with (mover's color, promotion kind).
//   - King with |dx|=2 => castle: also relocate the rook (h/a-file corner to f/d-file).
//   - Otherwise => simple relocation.
func (b *Board) Make(m Move) (BoardUndo, error) {
	piece := b.Get(m.From)
	if piece.IsEmpty() {
		return BoardUndo{}, fmt.Errorf("%w: %v", ErrTargetIsNone, m.From)
	}
	if m.Promotion != NoPieceKind && piece.Kind != Pawn {
		return BoardUndo{}, fmt.Errorf("%w: %v is not a pawn", ErrInvalidPromotion, m.From)
	}

	captured := b.Get(m.To)
	modifier := ModNone
	dx := m.To.X() - m.From.X()

	switch {
	case piece.Kind == Pawn && abs(dx) == 1 && captured.IsEmpty():
		modifier = ModEnPassant
		capSq := NewCoordinate(m.To.X(), m.From.Y())
		captured = b.Get(capSq)
		b.Set(capSq, NoPiece)

	case m.Promotion != NoPieceKind:
		modifier = ModPromotion

	case piece.Kind == King && abs(dx) == 2:
		modifier = ModCastle
		rookFrom, rookTo := castlingRookSquares(piece.Color, dx > 0)
		rook := b.Get(rookFrom)
		b.Set(rookFrom, NoPiece)
		b.Set(rookTo, rook)
	}

	b.Set(m.From, NoPiece)
	if modifier == ModPromotion {
		b.Set(m.To, Piece{Color: piece.Color, Kind: m.Promotion})
	} else {
		b.Set(m.To, piece)
	}

	return BoardUndo{Move: m, Captured: captured, Modifier: modifier}, nil
}

// Unmake reverses a Make, restoring the board bit-for-bit.
func (b *Board) Unmake(u BoardUndo) {
	m := u.Move

	switch u.Modifier {
	case ModEnPassant:
		piece := b.Get(m.To)
		b.Set(m.To, NoPiece)
		b.Set(m.From, piece)
		capSq := NewCoordinate(m.To.X(), m.From.Y())
		b.Set(capSq, u.Captured)

	case ModPromotion:
		piece := b.Get(m.To)
		b.Set(m.To, u.Captured)
		b.Set(m.From, Piece{Color: piece.Color, Kind: Pawn})

	case ModCastle:
		king := b.Get(m.To)
		b.Set(m.To, u.Captured)
		b.Set(m.From, king)

		dx := m.To.X() - m.From.X()
		rookFrom, rookTo := castlingRookSquares(king.Color, dx > 0)
		rook := b.Get(rookTo)
		b.Set(rookTo, NoPiece)
		b.Set(rookFrom, rook)

	default:
		piece := b.Get(m.To)
		b.Set(m.To, u.Captured)
		b.Set(m.From, piece)
	}
}

// castlingRookSquares returns the rook's (from, to) squares for the given color and side
// (kingSide true => "O-O", false => "O-O-O"). King-side: rook moves from the h-file corner to
// the f-file; queen-side: from the a-file corner to the d-file. The rank is 8 for Black, 1 for
// White.
func castlingRookSquares(c Color, kingSide bool) (from, to Coordinate) {
	rank := 0 // y=0 is rank 8 (Black's back rank); White's back rank is y=7
	if c == White {
		rank = 7
	}
	if kingSide {
		return NewCoordinate(7, rank), NewCoordinate(5, rank)
	}
	return NewCoordinate(0, rank), NewCoordinate(3, rank)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
