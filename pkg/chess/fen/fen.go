// Package fen reads and writes chess.Position values in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/halfmove/mainline/pkg/chess"
)

// Initial is the FEN of the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a six-field FEN record into a Position, validating every field and the
// cross-field invariants of spec.md §4.3: exactly one king per side, castling rights consistent
// with the rook/king actually standing on their home squares, a plausible en passant target, and
// that the side NOT to move is not in check.
func Decode(s string) (*chess.Position, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 6 {
		return nil, fmt.Errorf("%w: expected 6 fields in FEN '%v'", chess.ErrInvalidString, s)
	}

	pos := &chess.Position{}
	board, err := decodePlacement(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid placement in FEN '%v': %w", s, err)
	}
	*pos.Board() = board

	switch parts[1] {
	case "w":
		pos.SideToMove = chess.White
	case "b":
		pos.SideToMove = chess.Black
	default:
		return nil, fmt.Errorf("%w: invalid active color in FEN '%v'", chess.ErrInvalidCharacter, s)
	}

	castling, err := chess.ParseCastlingRights(parts[2])
	if err != nil {
		return nil, fmt.Errorf("invalid castling in FEN '%v': %w", s, err)
	}
	pos.Castling = castling

	ep := chess.NoCoordinate
	if parts[3] != "-" {
		ep, err = chess.ParseCoordinateStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square in FEN '%v': %w", s, err)
		}
	}
	pos.EnPassant = ep

	hm, err := strconv.Atoi(parts[4])
	if err != nil || hm < 0 {
		return nil, fmt.Errorf("%w: invalid halfmove clock in FEN '%v'", chess.ErrInvalidString, s)
	}
	pos.HalfMoves = hm

	fm, err := strconv.Atoi(parts[5])
	if err != nil || fm < 1 {
		return nil, fmt.Errorf("%w: invalid fullmove number in FEN '%v'", chess.ErrInvalidString, s)
	}
	pos.FullMoves = fm

	if err := validate(pos); err != nil {
		return nil, fmt.Errorf("invalid FEN '%v': %w", s, err)
	}
	return pos, nil
}

func decodePlacement(field string) (chess.Board, error) {
	var b chess.Board
	sq := chess.Coordinate(0)

	for _, r := range field {
		switch {
		case r == '/':
			continue
		case unicode.IsDigit(r):
			n := int(r - '0')
			if n < 1 || n > 8 {
				return b, fmt.Errorf("%w: invalid run length '%v'", chess.ErrInvalidCharacter, r)
			}
			sq += chess.Coordinate(n)
		case unicode.IsLetter(r):
			kind, ok := chess.ParsePieceKind(r)
			if !ok {
				return b, fmt.Errorf("%w: invalid piece letter '%v'", chess.ErrInvalidCharacter, r)
			}
			color := chess.Black
			if unicode.IsUpper(r) {
				color = chess.White
			}
			if int(sq) >= chess.NumSquares {
				return b, fmt.Errorf("%w: too many squares", chess.ErrInvalidString)
			}
			b.Set(sq, chess.Piece{Color: color, Kind: kind})
			sq++
		default:
			return b, fmt.Errorf("%w: unexpected character '%v'", chess.ErrInvalidCharacter, r)
		}
	}
	if int(sq) != chess.NumSquares {
		return b, fmt.Errorf("%w: expected 64 squares, got %v", chess.ErrInvalidString, sq)
	}
	return b, nil
}

func validate(pos *chess.Position) error {
	b := pos.Board()

	for _, c := range []chess.Color{chess.White, chess.Black} {
		count := 0
		for sq := chess.Coordinate(0); int(sq) < chess.NumSquares; sq++ {
			if p := b.Get(sq); p.Kind == chess.King && p.Color == c {
				count++
			}
		}
		if count != 1 {
			return fmt.Errorf("%w: %v has %v kings, expected exactly 1", chess.ErrOther, c, count)
		}
	}

	if err := validateCastlingRights(pos); err != nil {
		return err
	}
	if err := validateEnPassant(pos); err != nil {
		return err
	}

	notMover := pos.SideToMove.Opponent()
	king := b.KingSquare(notMover)
	if chess.IsAttacked(b, notMover, king) {
		return fmt.Errorf("%w: %v is not to move but is in check", chess.ErrOther, notMover)
	}
	return nil
}

func validateCastlingRights(pos *chess.Position) error {
	b := pos.Board()
	check := func(right chess.CastlingRights, color chess.Color, kingFile, rookFile, y int) error {
		if !pos.Castling.Has(right) {
			return nil
		}
		king := b.Get(chess.NewCoordinate(kingFile, y))
		rook := b.Get(chess.NewCoordinate(rookFile, y))
		if king.Kind != chess.King || king.Color != color {
			return fmt.Errorf("%w: castling right %v claimed without a king on its home square", chess.ErrOther, right)
		}
		if rook.Kind != chess.Rook || rook.Color != color {
			return fmt.Errorf("%w: castling right %v claimed without a rook on its home square", chess.ErrOther, right)
		}
		return nil
	}

	if err := check(chess.WhiteKingSide, chess.White, 4, 7, 7); err != nil {
		return err
	}
	if err := check(chess.WhiteQueenSide, chess.White, 4, 0, 7); err != nil {
		return err
	}
	if err := check(chess.BlackKingSide, chess.Black, 4, 7, 0); err != nil {
		return err
	}
	if err := check(chess.BlackQueenSide, chess.Black, 4, 0, 0); err != nil {
		return err
	}
	return nil
}

// validateEnPassant enforces the three concrete scenarios of spec.md §8: the target square must
// sit on the rank consistent with the side to move, and an opposing pawn that could actually
// capture into it must stand adjacent.
func validateEnPassant(pos *chess.Position) error {
	if pos.EnPassant == chess.NoCoordinate {
		return nil
	}
	b := pos.Board()
	target := pos.EnPassant

	wantY := 2 // rank 6, White to move (Black just double-pushed): White recaptures.
	pawnColor := chess.White
	pawnY := 3
	if pos.SideToMove == chess.Black {
		wantY = 5 // rank 3, Black to move (White just double-pushed): Black recaptures.
		pawnColor = chess.Black
		pawnY = 4
	}
	if target.Y() != wantY {
		return fmt.Errorf("%w: en passant target %v is not on the expected rank", chess.ErrOther, target)
	}
	if !b.IsEmpty(target) {
		return fmt.Errorf("%w: en passant target %v is occupied", chess.ErrOther, target)
	}

	found := false
	for _, dx := range []int{-1, 1} {
		sq := chess.NewCoordinate(target.X()+dx, pawnY)
		if target.X()+dx < 0 || target.X()+dx > 7 {
			continue
		}
		if p := b.Get(sq); p.Kind == chess.Pawn && p.Color == pawnColor {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: en passant target %v has no adjacent capturing pawn", chess.ErrOther, target)
	}
	return nil
}

// Encode renders a Position back into FEN.
func Encode(pos *chess.Position) string {
	b := pos.Board()
	var sb strings.Builder
	for y := 0; y < 8; y++ {
		blanks := 0
		for x := 0; x < 8; x++ {
			p := b.Get(chess.NewCoordinate(x, y))
			if p.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(p.Letter())
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if y < 7 {
			sb.WriteRune('/')
		}
	}

	ep := "-"
	if pos.EnPassant != chess.NoCoordinate {
		ep = pos.EnPassant.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), pos.SideToMove, pos.Castling, ep, pos.HalfMoves, pos.FullMoves)
}
