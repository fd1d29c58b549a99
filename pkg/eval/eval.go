// Package eval contains static position evaluation.
package eval

import (
	"fmt"

	"github.com/halfmove/mainline/pkg/chess"
)

// Outcome is the evaluation result for a position: either a decisive winner, a draw, or a
// signed centipawn score (positive favors White), per spec.md §4.9.
type Outcome struct {
	Winner    chess.Color
	HasWinner bool
	Draw      bool
	Score     int // centipawns, White-positive; meaningless if HasWinner or Draw
}

func (o Outcome) String() string {
	switch {
	case o.HasWinner:
		return fmt.Sprintf("%v wins", o.Winner)
	case o.Draw:
		return "draw"
	default:
		return fmt.Sprintf("%+d cp", o.Score)
	}
}

// Evaluate scores pos from White's perspective, for the side to move's legal-move classification
// result. Checkmate overrides to a decisive win for whichever side is not checkmated; stalemate,
// or a half-move clock at or beyond 75, is a draw. Otherwise it computes the static score in
// §4.9: material, a check bonus, an activity term, a control term, and an undeveloped-piece
// penalty whose multiplier grows stepwise with the half-move clock (see halfMoveScale).
func Evaluate(pos *chess.Position, result chess.Result) Outcome {
	switch result {
	case chess.Checkmate:
		return Outcome{HasWinner: true, Winner: pos.SideToMove.Opponent()}
	case chess.Stalemate:
		return Outcome{Draw: true}
	}
	if pos.HalfMoves >= 75 {
		return Outcome{Draw: true}
	}

	white := staticScore(pos, chess.White, result)
	black := staticScore(pos, chess.Black, result)

	return Outcome{Score: white - black}
}

// staticScore computes the unilateral terms of §4.9 from color c's point of view: its own
// material, check bonus, activity and control relative to the opponent, and its own
// undeveloped-piece penalty. Evaluate subtracts Black's from White's to get the final score.
func staticScore(pos *chess.Position, c chess.Color, result chess.Result) int {
	b := pos.Board()
	opp := c.Opponent()

	score := materialSum(b, c)

	if result == chess.Check && pos.SideToMove == opp {
		// pos.SideToMove is in check means c is delivering it.
		score += 75
	}

	ownMoves := countMoves(pos, c)
	oppMoves := countMoves(pos, opp)
	score += 2*ownMoves - oppMoves

	ownDanger := chess.DangerZone(b, c).PopCount()
	oppDanger := chess.DangerZone(b, opp).PopCount()
	score += 2*ownDanger - oppDanger

	score -= 7 * undevelopedCount(b, c) * halfMoveScale(pos.HalfMoves)

	return score
}

func materialSum(b *chess.Board, c chess.Color) int {
	sum := 0
	for sq := chess.Coordinate(0); int(sq) < chess.NumSquares; sq++ {
		if p := b.Get(sq); !p.IsEmpty() && p.Color == c {
			sum += p.Kind.NominalValue()
		}
	}
	return sum
}

// countMoves counts color c's pseudo-legal moves from pos, regardless of whose turn it actually
// is, since §4.9's activity term needs both sides' mobility from the same static position.
func countMoves(pos *chess.Position, c chess.Color) int {
	if c == pos.SideToMove {
		return len(chess.PseudoLegalMoves(pos))
	}
	flipped := *pos
	flipped.SideToMove = c
	return len(chess.PseudoLegalMoves(&flipped))
}

// undevelopedCount returns the number of color c's pieces still standing on its own starting
// two ranks (1-2 for White, 7-8 for Black).
func undevelopedCount(b *chess.Board, c chess.Color) int {
	minY, maxY := 6, 7
	if c == chess.Black {
		minY, maxY = 0, 1
	}
	count := 0
	for y := minY; y <= maxY; y++ {
		for x := 0; x < 8; x++ {
			if p := b.Get(chess.NewCoordinate(x, y)); !p.IsEmpty() && p.Color == c {
				count++
			}
		}
	}
	return count
}

// halfMoveScale returns the stepwise multiplier schedule of spec.md §4.9 applied to the
// undeveloped-piece penalty: 0 at or below 10 half-moves (no penalty for a normal opening), x1
// up to 25, x4 up to 40, x8 up to 45, x16 beyond that (increasingly punishing a side that has
// made no progress and still hasn't developed).
func halfMoveScale(halfMoves int) int {
	switch {
	case halfMoves <= 10:
		return 0
	case halfMoves <= 25:
		return 1
	case halfMoves <= 40:
		return 4
	case halfMoves <= 45:
		return 8
	default:
		return 16
	}
}
