package chess

// Result classifies a position for the side to move, per spec.md §4.8.
type Result uint8

const (
	Safe Result = iota
	Check
	Checkmate
	Stalemate
)

func (r Result) String() string {
	switch r {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "safe"
	}
}

// PseudoLegalMoves generates every pseudo-legal move for the side to move, per spec.md §4.7.
func PseudoLegalMoves(pos *Position) []Move {
	var ret []Move
	turn := pos.SideToMove
	b := &pos.board

	for sq := Coordinate(0); int(sq) < NumSquares; sq++ {
		p := b.Get(sq)
		if p.IsEmpty() || p.Color != turn {
			continue
		}

		switch p.Kind {
		case Pawn:
			ret = appendPawnMoves(ret, pos, sq)
		case Knight:
			ret = appendStepMoves(ret, b, turn, sq, KnightCoverage(sq))
		case King:
			ret = appendStepMoves(ret, b, turn, sq, KingCoverage(sq))
			ret = appendCastlingMoves(ret, pos, sq)
		case Bishop:
			ret = appendSlideMoves(ret, b, turn, sq, bishopDirections)
		case Rook:
			ret = appendSlideMoves(ret, b, turn, sq, rookDirections)
		case Queen:
			ret = appendSlideMoves(ret, b, turn, sq, bishopDirections)
			ret = appendSlideMoves(ret, b, turn, sq, rookDirections)
		}
	}
	return ret
}

func appendStepMoves(moves []Move, b *Board, turn Color, sq Coordinate, targets Bitboard) []Move {
	for _, to := range targets.Squares() {
		if p := b.Get(to); p.IsEmpty() || p.Color != turn {
			moves = append(moves, Move{From: sq, To: to})
		}
	}
	return moves
}

func appendSlideMoves(moves []Move, b *Board, turn Color, sq Coordinate, dirs [4][2]int) []Move {
	for _, d := range dirs {
		cur := sq
		for {
			next, err := cur.TryMove(d[0], d[1])
			if err != nil {
				break
			}
			cur = next
			p := b.Get(cur)
			if p.IsEmpty() {
				moves = append(moves, Move{From: sq, To: cur})
				continue
			}
			if p.Color != turn {
				moves = append(moves, Move{From: sq, To: cur})
			}
			break
		}
	}
	return moves
}

var promotionKinds = []PieceKind{Queen, Rook, Bishop, Knight}

func appendPawnMoves(moves []Move, pos *Position, sq Coordinate) []Move {
	b := &pos.board
	turn := pos.SideToMove
	dy := 1
	if turn == Black {
		dy = -1
	}

	addPawnMove := func(to Coordinate) {
		if to.Y() == 0 || to.Y() == 7 {
			for _, k := range promotionKinds {
				moves = append(moves, Move{From: sq, To: to, Promotion: k})
			}
		} else {
			moves = append(moves, Move{From: sq, To: to})
		}
	}

	// Single push.
	if to, err := sq.TryMove(0, dy); err == nil && b.IsEmpty(to) {
		addPawnMove(to)

		// Double push from the mover's second rank, both squares ahead empty.
		homeY := 6
		if turn == Black {
			homeY = 1
		}
		if sq.Y() == homeY {
			if to2, err := sq.TryMove(0, 2*dy); err == nil && b.IsEmpty(to2) {
				moves = append(moves, Move{From: sq, To: to2})
			}
		}
	}

	// Diagonal captures, including en passant.
	for _, dx := range []int{-1, 1} {
		to, err := sq.TryMove(dx, dy)
		if err != nil {
			continue
		}
		if p := b.Get(to); !p.IsEmpty() && p.Color != turn {
			addPawnMove(to)
			continue
		}
		if pos.EnPassant != NoCoordinate && to == pos.EnPassant {
			moves = append(moves, Move{From: sq, To: to})
		}
	}
	return moves
}

func appendCastlingMoves(moves []Move, pos *Position, kingSq Coordinate) []Move {
	turn := pos.SideToMove
	b := &pos.board
	rank := 7
	if turn == Black {
		rank = 0
	}

	if pos.Castling.Has(KingSideRight(turn)) {
		f, g := NewCoordinate(5, rank), NewCoordinate(6, rank)
		if b.IsEmpty(f) && b.IsEmpty(g) {
			moves = append(moves, Move{From: kingSq, To: g})
		}
	}
	if pos.Castling.Has(QueenSideRight(turn)) {
		d, cSq, bSq := NewCoordinate(3, rank), NewCoordinate(2, rank), NewCoordinate(1, rank)
		if b.IsEmpty(d) && b.IsEmpty(cSq) && b.IsEmpty(bSq) {
			moves = append(moves, Move{From: kingSq, To: cSq})
		}
	}
	return moves
}

// LegalMoves filters the pseudo-legal moves down to legal ones per spec.md §4.8, and classifies
// the position for the side to move.
func LegalMoves(pos *Position) ([]Move, Result) {
	turn := pos.SideToMove
	b := &pos.board

	king := b.KingSquare(turn)
	danger := DangerZone(b, turn.Opponent())
	pins := FindPins(b, king)
	attackers, lineOfSight := FindAttackers(b, king)

	inCheck := danger.IsSet(king)
	numAttackers := attackers.PopCount()

	pinnedSquares := map[Coordinate]Pin{}
	for _, p := range pins {
		pinnedSquares[p.Pinned] = p
	}

	var legal []Move
	for _, m := range PseudoLegalMoves(pos) {
		p := b.Get(m.From)

		if p.Kind == King {
			if danger.IsSet(m.To) {
				continue
			}
			if abs(m.To.X()-m.From.X()) == 2 {
				if inCheck {
					continue
				}
				mid := NewCoordinate((m.From.X()+m.To.X())/2, m.From.Y())
				if danger.IsSet(mid) {
					continue
				}
			}
			legal = append(legal, m)
			continue
		}

		if pin, pinned := pinnedSquares[m.From]; pinned {
			if inCheck {
				continue // a pinned piece never has moves while its king is in check
			}
			if !staysOnPinLine(pin, m) {
				continue
			}
		} else {
			if numAttackers >= 2 {
				continue // double check: only the king may respond
			}
			if numAttackers == 1 {
				attacker := attackers.Squares()[0]
				if !(m.To == attacker || lineOfSight.IsSet(m.To)) {
					if !isEnPassantCaptureOfChecker(pos, m, attacker) {
						continue
					}
				}
			}
		}
		legal = append(legal, m)
	}

	switch {
	case inCheck && len(legal) > 0:
		return legal, Check
	case inCheck:
		return legal, Checkmate
	case len(legal) == 0:
		return legal, Stalemate
	default:
		return legal, Safe
	}
}

// staysOnPinLine enforces the per-kind pin restrictions of spec.md §4.8.
func staysOnPinLine(pin Pin, m Move) bool {
	d, ok := lineDirection(pin.Target, pin.Attacker)
	if !ok {
		return false
	}
	// The move must land somewhere on the (Target, Attacker) line, including capturing the
	// attacker itself.
	cur := pin.Target
	for {
		next, err := cur.TryMove(d[0], d[1])
		if err != nil {
			return false
		}
		cur = next
		if cur == m.To {
			return true
		}
		if cur == pin.Attacker {
			return false
		}
	}
}

func isEnPassantCaptureOfChecker(pos *Position, m Move, checker Coordinate) bool {
	p := pos.board.Get(m.From)
	if p.Kind != Pawn || pos.EnPassant == NoCoordinate || m.To != pos.EnPassant {
		return false
	}
	capturedSq := NewCoordinate(m.To.X(), m.From.Y())
	return capturedSq == checker
}
