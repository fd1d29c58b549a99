package search

import "github.com/halfmove/mainline/pkg/chess"

// capturePriority returns a move priority function implementing spec.md §4.10 step 3: a
// capture's key is 900 plus the victim's nominal value minus the attacker's, with a king capture
// (should pseudo-legal generation ever hand one up) deranked to 1; any non-capture is 0. The
// previous iteration's principal-variation move is given priority separately via chess.First.
func capturePriority(pos *chess.Position) chess.MovePriorityFn {
	b := pos.Board()
	return func(m chess.Move) chess.MovePriority {
		victim, ok := captureVictim(pos, m)
		if !ok {
			return 0
		}
		if victim.Kind == chess.King {
			return 1
		}
		attacker := b.Get(m.From)
		return chess.MovePriority(900 + victim.Kind.NominalValue() - attacker.Kind.NominalValue())
	}
}

// captureVictim returns the piece a move captures, accounting for en passant, and whether the
// move is a capture at all.
func captureVictim(pos *chess.Position, m chess.Move) (chess.Piece, bool) {
	b := pos.Board()
	if victim := b.Get(m.To); !victim.IsEmpty() {
		return victim, true
	}
	if isEnPassantCapture(pos, m) {
		return chess.Piece{Color: pos.SideToMove.Opponent(), Kind: chess.Pawn}, true
	}
	return chess.Piece{}, false
}

func isEnPassantCapture(pos *chess.Position, m chess.Move) bool {
	if pos.EnPassant == chess.NoCoordinate || m.To != pos.EnPassant {
		return false
	}
	p := pos.Board().Get(m.From)
	return p.Kind == chess.Pawn && p.Color == pos.SideToMove
}
