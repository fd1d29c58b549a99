package search

import (
	"time"

	"github.com/halfmove/mainline/pkg/chess"
)

// Iterative runs iterative deepening from depth 1 through maxDepth, using each completed
// iteration's principal variation as the move-ordering hint for the next, per spec.md §4.10.
// sink is invoked once per completed depth, in increasing order; it must not retain pos, which
// is mutated and restored in place during the search. Depth 0 is a no-op and sink is never
// called.
func Iterative(pos *chess.Position, maxDepth int, sink func(PV)) PV {
	rootTurn := pos.SideToMove
	start := time.Now()

	var pv PV
	var hint []chess.Move
	var nodes uint64

	for depth := 1; depth <= maxDepth; depth++ {
		r := &run{hint: hint}
		score, line := r.search(pos, depth, 0, -Inf, Inf)
		nodes += r.nodes
		hint = line

		pv = PV{Depth: depth, Moves: line, Score: score, Nodes: nodes, Time: time.Since(start)}
		if m, ok := mateIn(score, rootTurn); ok {
			pv.Mate = m
		}
		sink(pv)
	}
	return pv
}
