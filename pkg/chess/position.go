package chess

import "fmt"

// Position is a Board plus the side-to-move state spec.md §3 layers on top of it: whose turn it
// is, castling rights, the en passant target (if any), and the two move clocks.
type Position struct {
	board      Board
	SideToMove Color
	Castling   CastlingRights
	EnPassant  Coordinate // NoCoordinate if none
	HalfMoves  int        // half-moves since the last capture or pawn push
	FullMoves  int        // increments after Black's move
}

// NewPosition builds the standard starting position.
func NewPosition() *Position {
	pos := &Position{
		SideToMove: White,
		Castling:   FullCastlingRights,
		EnPassant:  NoCoordinate,
		HalfMoves:  0,
		FullMoves:  1,
	}
	back := [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x := 0; x < 8; x++ {
		pos.board.Set(NewCoordinate(x, 0), Piece{Color: Black, Kind: back[x]})
		pos.board.Set(NewCoordinate(x, 1), Piece{Color: Black, Kind: Pawn})
		pos.board.Set(NewCoordinate(x, 6), Piece{Color: White, Kind: Pawn})
		pos.board.Set(NewCoordinate(x, 7), Piece{Color: White, Kind: back[x]})
	}
	return pos
}

// Board exposes the underlying piece placement for read-only use by eval, search and rendering.
func (p *Position) Board() *Board {
	return &p.board
}

// PositionUndo captures everything Position.Make mutated beyond the Board itself, so Unmake can
// restore it bit-for-bit.
type PositionUndo struct {
	BoardUndo BoardUndo
	Castling  CastlingRights
	EnPassant Coordinate
	HalfMoves int
	FullMoves int
}

// Make applies a legal move, updating castling rights, the en passant target and the move
// clocks per spec.md §4.2/§9, and delegates the piece relocation itself to Board.Make.
func (p *Position) Make(m Move) (PositionUndo, error) {
	undo := PositionUndo{
		Castling:  p.Castling,
		EnPassant: p.EnPassant,
		HalfMoves: p.HalfMoves,
		FullMoves: p.FullMoves,
	}

	mover := p.board.Get(m.From)
	if mover.IsEmpty() {
		return PositionUndo{}, fmt.Errorf("%w: %v", ErrTargetIsNone, m.From)
	}
	captured := p.board.Get(m.To)

	bu, err := p.board.Make(m)
	if err != nil {
		return PositionUndo{}, err
	}
	undo.BoardUndo = bu

	p.Castling = nextCastlingRights(p.Castling, mover, m, captured)

	if mover.Kind == Pawn || !captured.IsEmpty() {
		p.HalfMoves = 0
	} else {
		p.HalfMoves++
	}

	p.EnPassant = nextEnPassantTarget(p, mover, m)

	if p.SideToMove == Black {
		p.FullMoves++
	}
	p.SideToMove = p.SideToMove.Opponent()

	return undo, nil
}

// Unmake reverses a Make, restoring the position bit-for-bit.
func (p *Position) Unmake(u PositionUndo) {
	p.SideToMove = p.SideToMove.Opponent()
	if p.SideToMove == Black {
		p.FullMoves--
	}
	p.board.Unmake(u.BoardUndo)
	p.Castling = u.Castling
	p.EnPassant = u.EnPassant
	p.HalfMoves = u.HalfMoves
	p.FullMoves = u.FullMoves
}

// nextCastlingRights computes the castling rights remaining after a move, per spec.md §4.2: a
// king move forfeits both of its own side's rights; a rook move from, or a capture landing on,
// its original corner forfeits that corner's right.
func nextCastlingRights(rights CastlingRights, mover Piece, m Move, captured Piece) CastlingRights {
	if mover.Kind == King {
		if mover.Color == White {
			rights = rights.Without(WhiteKingSide).Without(WhiteQueenSide)
		} else {
			rights = rights.Without(BlackKingSide).Without(BlackQueenSide)
		}
	}
	rights = clearRookCorner(rights, m.From)
	rights = clearRookCorner(rights, m.To)
	return rights
}

func clearRookCorner(rights CastlingRights, sq Coordinate) CastlingRights {
	switch sq {
	case NewCoordinate(0, 7):
		return rights.Without(WhiteQueenSide)
	case NewCoordinate(7, 7):
		return rights.Without(WhiteKingSide)
	case NewCoordinate(0, 0):
		return rights.Without(BlackQueenSide)
	case NewCoordinate(7, 0):
		return rights.Without(BlackKingSide)
	default:
		return rights
	}
}

// nextEnPassantTarget computes the en passant target square resulting from this move, per
// spec.md §4.3/§8: only a pawn double push creates a candidate, and only if an adjacent enemy
// pawn could actually capture into it without itself illegally exposing its own king (the
// discovered-check-through-en-passant case).
func nextEnPassantTarget(p *Position, mover Piece, m Move) Coordinate {
	if mover.Kind != Pawn || abs(m.To.Y()-m.From.Y()) != 2 {
		return NoCoordinate
	}
	target := NewCoordinate(m.From.X(), (m.From.Y()+m.To.Y())/2)

	opp := mover.Color.Opponent()
	for _, dx := range []int{-1, 1} {
		adjSq, err := m.To.TryMove(dx, 0)
		if err != nil {
			continue
		}
		adj := p.board.Get(adjSq)
		if adj.IsEmpty() || adj.Color != opp || adj.Kind != Pawn {
			continue
		}
		if enPassantCaptureIsLegal(p, adjSq, target, m.To, opp) {
			return target
		}
	}
	return NoCoordinate
}

// enPassantCaptureIsLegal simulates the hypothetical recapture by the pawn on from into target
// (removing the just-moved pawn on capturedSq) and checks it would not leave the capturing
// side's own king in check.
func enPassantCaptureIsLegal(p *Position, from, target, capturedSq Coordinate, capturingColor Color) bool {
	b := p.board
	pawn := b.Get(from)
	b.Set(from, NoPiece)
	b.Set(capturedSq, NoPiece)
	b.Set(target, pawn)

	king := b.KingSquare(capturingColor)
	return !IsAttacked(&b, capturingColor, king)
}

// MakeLAN parses a long-algebraic move, verifies it is legal in the current position, and
// applies it. The position is left unchanged if the move is malformed or illegal.
func (p *Position) MakeLAN(lan string) error {
	m, err := ParseMove(lan)
	if err != nil {
		return err
	}
	legal, _ := LegalMoves(p)
	for _, l := range legal {
		if l.Equals(m) {
			_, err := p.Make(l)
			return err
		}
	}
	return fmt.Errorf("%w: illegal move %v", ErrOther, lan)
}

func (p *Position) String() string {
	return fmt.Sprintf("%v to move, castling=%v, ep=%v, halfmoves=%d, fullmoves=%d",
		p.SideToMove, p.Castling, p.EnPassant, p.HalfMoves, p.FullMoves)
}
