// Package search implements iterative-deepening alpha-beta search with quiescence.
package search

import (
	"fmt"
	"time"

	"github.com/halfmove/mainline/pkg/chess"
)

// Inf is a score magnitude no real evaluation can reach; used as the initial alpha/beta bound.
const Inf = 1000000

// mateThreshold separates ordinary evaluations from forced-mate scores. Any score with
// magnitude above it encodes "mate in N plies from this node", counted down from Inf so that a
// shallower mate always outscores a deeper one.
const mateThreshold = 900000

// mateScore is the score magnitude for a mate delivered at the given ply (distance from the
// root of the current search).
func mateScore(ply int) int {
	return Inf - ply
}

// PV is the principal variation produced by a completed search depth.
type PV struct {
	Depth int
	Moves []chess.Move
	Score int // centipawns, White-positive; ignore when Mate is non-zero
	Mate  int // plies-to-mate/2 rounded up, signed from the root side to move's perspective; 0 if none
	Nodes uint64
	Time  time.Duration
}

func (p PV) String() string {
	if p.Mate != 0 {
		return fmt.Sprintf("depth=%v mate=%v nodes=%v time=%v pv=%v", p.Depth, p.Mate, p.Nodes, p.Time, chess.FormatMoves(p.Moves))
	}
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v pv=%v", p.Depth, p.Score, p.Nodes, p.Time, chess.FormatMoves(p.Moves))
}

// mateIn converts a raw search score into a signed mate-in-moves count from the perspective of
// rootTurn, per spec.md §4.10: m = ceil(pv_length/2), negative if rootTurn is the losing side.
// Returns ok=false for an ordinary (non-mate) score.
func mateIn(score int, rootTurn chess.Color) (m int, ok bool) {
	var plies int
	var whiteWins bool
	switch {
	case score > mateThreshold:
		plies = Inf - score
		whiteWins = true
	case score < -mateThreshold:
		plies = Inf + score
		whiteWins = false
	default:
		return 0, false
	}

	m = (plies + 1) / 2
	if (whiteWins && rootTurn == chess.Black) || (!whiteWins && rootTurn == chess.White) {
		m = -m
	}
	return m, true
}
