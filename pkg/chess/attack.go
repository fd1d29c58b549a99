package chess

// This file implements spec.md §4.4–§4.6: per-color danger zones, pin detection and attacker
// enumeration. All of it operates on the Board alone (piece placement only) — it needs no
// knowledge of whose turn it is, castling rights, or en passant.

// DangerZone returns the union of every square the given color attacks or covers: the OR over
// all squares occupied by color c of its per-piece coverage. Pawn coverage is the two diagonals
// in front of the pawn regardless of occupancy.
//
// Sliding pieces ("walk dangerously") walk until they hit any piece — that square is still
// marked attacked — and then stop, EXCEPT that an enemy king does not block: coverage x-rays
// through it. This is what makes a king's retreat off a check ray still illegal (spec.md §9).
func DangerZone(b *Board, c Color) Bitboard {
	var ret Bitboard
	opp := c.Opponent()

	for sq := Coordinate(0); int(sq) < NumSquares; sq++ {
		p := b.Get(sq)
		if p.IsEmpty() || p.Color != c {
			continue
		}

		switch p.Kind {
		case Pawn:
			ret |= PawnCoverage(c, sq)
		case Knight:
			ret |= KnightCoverage(sq)
		case King:
			ret |= KingCoverage(sq)
		case Bishop:
			ret |= slideCoverage(b, sq, bishopDirections, opp)
		case Rook:
			ret |= slideCoverage(b, sq, rookDirections, opp)
		case Queen:
			ret |= slideCoverage(b, sq, bishopDirections, opp)
			ret |= slideCoverage(b, sq, rookDirections, opp)
		}
	}
	return ret
}

// slideCoverage walks each direction from sq, marking every square reached. It stops after the
// first occupied square, except a King of color transparent does not block the walk (it is
// still marked, but the ray continues through it).
func slideCoverage(b *Board, sq Coordinate, dirs [4][2]int, transparent Color) Bitboard {
	var ret Bitboard
	for _, d := range dirs {
		cur := sq
		for {
			next, err := cur.TryMove(d[0], d[1])
			if err != nil {
				break
			}
			cur = next
			ret = ret.Set(cur)

			p := b.Get(cur)
			if p.IsEmpty() {
				continue
			}
			if p.Kind == King && p.Color == transparent {
				continue // x-ray through the enemy king
			}
			break
		}
	}
	return ret
}

// IsAttacked returns true iff the square is attacked by the opposing color. Here the enemy king
// is opaque like any other piece, per spec.md §9's "for normal attack enumeration it is opaque".
func IsAttacked(b *Board, c Color, sq Coordinate) bool {
	opp := c.Opponent()

	if KnightCoverage(sq)&pieceBoard(b, opp, Knight) != 0 {
		return true
	}
	if KingCoverage(sq)&pieceBoard(b, opp, King) != 0 {
		return true
	}
	if PawnCoverage(opp.Opponent(), sq /* reverse direction: look from sq backward */)&pieceBoard(b, opp, Pawn) != 0 {
		return true
	}
	for _, d := range bishopDirections {
		if rayHitsOpaque(b, sq, d, opp, Bishop, Queen) {
			return true
		}
	}
	for _, d := range rookDirections {
		if rayHitsOpaque(b, sq, d, opp, Rook, Queen) {
			return true
		}
	}
	return false
}

func rayHitsOpaque(b *Board, sq Coordinate, d [2]int, attacker Color, kinds ...PieceKind) bool {
	cur := sq
	for {
		next, err := cur.TryMove(d[0], d[1])
		if err != nil {
			return false
		}
		cur = next
		p := b.Get(cur)
		if p.IsEmpty() {
			continue
		}
		if p.Color == attacker {
			for _, k := range kinds {
				if p.Kind == k {
					return true
				}
			}
		}
		return false
	}
}

func pieceBoard(b *Board, c Color, k PieceKind) Bitboard {
	var ret Bitboard
	for sq := Coordinate(0); int(sq) < NumSquares; sq++ {
		if p := b.Get(sq); p.Color == c && p.Kind == k && !p.IsEmpty() {
			ret = ret.Set(sq)
		}
	}
	return ret
}

// Pin represents an absolutely pinned piece.
type Pin struct {
	Attacker, Pinned, Target Coordinate
}

// FindPins returns the pins against the piece on target, per spec.md §4.5: for each opposing
// slider aligned with target on a straight file/rank/diagonal, walk from the attacker toward the
// target recording at most one same-color (as target) blocker; if the first same-color piece
// reached is the target itself, the recorded blocker (if any) is pinned.
func FindPins(b *Board, target Coordinate) []Pin {
	targetColor := b.Get(target).Color
	opp := targetColor.Opponent()

	var pins []Pin
	for sq := Coordinate(0); int(sq) < NumSquares; sq++ {
		p := b.Get(sq)
		if p.IsEmpty() || p.Color != opp {
			continue
		}
		if p.Kind != Bishop && p.Kind != Rook && p.Kind != Queen {
			continue
		}

		d, ok := lineDirection(sq, target)
		if !ok {
			continue
		}
		if !slidesInDirection(p.Kind, d) {
			continue
		}

		var blocker Coordinate = NoCoordinate
		broken := false
		cur := sq
		for {
			next, err := cur.TryMove(d[0], d[1])
			if err != nil {
				broken = true
				break
			}
			cur = next
			if cur == target {
				break
			}
			q := b.Get(cur)
			if q.IsEmpty() {
				continue
			}
			if q.Color == targetColor {
				if blocker != NoCoordinate {
					broken = true
					break
				}
				blocker = cur
			} else {
				broken = true
				break
			}
		}
		if !broken && blocker != NoCoordinate {
			pins = append(pins, Pin{Attacker: sq, Pinned: blocker, Target: target})
		}
	}
	return pins
}

// FindAttackers returns (a) the squares holding pieces that currently attack target, and (b)
// the empty squares lying between a sliding attacker and target (the line of sight along which
// a blocker could interpose). Knights and pawns contribute only to (a), per spec.md §4.6.
func FindAttackers(b *Board, target Coordinate) (attackers, lineOfSight Bitboard) {
	targetColor := b.Get(target).Color
	opp := targetColor.Opponent()

	if KnightCoverage(target)&pieceBoard(b, opp, Knight) != 0 {
		attackers |= KnightCoverage(target) & pieceBoard(b, opp, Knight)
	}
	if KingCoverage(target)&pieceBoard(b, opp, King) != 0 {
		attackers |= KingCoverage(target) & pieceBoard(b, opp, King)
	}
	if pc := PawnCoverage(targetColor, target) & pieceBoard(b, opp, Pawn); pc != 0 {
		attackers |= pc
	}

	allDirs := append(append([][2]int{}, bishopDirections[:]...), rookDirections[:]...)
	for _, d := range allDirs {
		var kinds []PieceKind
		if isBishopDir(d) {
			kinds = []PieceKind{Bishop, Queen}
		} else {
			kinds = []PieceKind{Rook, Queen}
		}

		var path Bitboard
		cur := target
		for {
			next, err := cur.TryMove(d[0], d[1])
			if err != nil {
				break
			}
			cur = next
			p := b.Get(cur)
			if p.IsEmpty() {
				path = path.Set(cur)
				continue
			}
			if p.Color == opp && (p.Kind == kinds[0] || p.Kind == kinds[1]) {
				attackers = attackers.Set(cur)
				lineOfSight |= path
			}
			break
		}
	}
	return attackers, lineOfSight
}

func isBishopDir(d [2]int) bool {
	return d[0] != 0 && d[1] != 0
}

// lineDirection returns the unit step from a toward b if they lie on a common file, rank or
// diagonal, else ok=false.
func lineDirection(a, b Coordinate) (d [2]int, ok bool) {
	dx := b.X() - a.X()
	dy := a.Y() - b.Y() // convert to the dy-toward-rank8 convention
	switch {
	case dx == 0 && dy != 0:
		return [2]int{0, sign(dy)}, true
	case dy == 0 && dx != 0:
		return [2]int{sign(dx), 0}, true
	case dx != 0 && abs(dx) == abs(dy):
		return [2]int{sign(dx), sign(dy)}, true
	default:
		return [2]int{}, false
	}
}

func slidesInDirection(k PieceKind, d [2]int) bool {
	diagonal := d[0] != 0 && d[1] != 0
	if k == Queen {
		return true
	}
	if k == Bishop {
		return diagonal
	}
	return !diagonal // Rook
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
