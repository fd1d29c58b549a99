package chess

// PieceKind identifies the kind of a chess piece, independent of color. 3 bits.
type PieceKind uint8

const (
	NoPieceKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	NumPieceKinds = 7 // includes NoPieceKind, for array sizing
)

// NominalValue returns the material value of the piece kind in centipawns, per spec.md §3.
func (k PieceKind) NominalValue() int {
	switch k {
	case Pawn:
		return 100
	case Knight, Bishop:
		return 300
	case Rook:
		return 500
	case Queen:
		return 900
	default:
		return 0
	}
}

func ParsePieceKind(r rune) (PieceKind, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPieceKind, false
	}
}

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return ""
	}
}

// Piece is a (Color, PieceKind) pair. The zero value is the empty piece.
type Piece struct {
	Color Color
	Kind  PieceKind
}

// NoPiece is the empty-square value.
var NoPiece = Piece{}

func (p Piece) IsEmpty() bool {
	return p.Kind == NoPieceKind
}

// Letter returns the FEN/diagram letter for the piece: uppercase for White, lowercase for Black.
func (p Piece) Letter() rune {
	r := []rune(p.Kind.String())
	if len(r) == 0 {
		return ' '
	}
	if p.Color == White {
		return r[0] + ('A' - 'a')
	}
	return r[0]
}
