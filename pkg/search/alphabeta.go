package search

import "github.com/halfmove/mainline/pkg/chess"

// run carries the per-search mutable state (node counter) and the previous iteration's
// principal variation, used as a move-ordering hint at each ply.
type run struct {
	hint  []chess.Move
	nodes uint64
}

// search implements classic (non-negamax) alpha-beta minimax: White maximizes, Black minimizes.
// Pseudo-code (White-maximizing form):
//
//	function search(pos, depth, alpha, beta) is
//	    if pos is Checkmate then return mate score for the winner
//	    if pos is Stalemate then return 0
//	    if depth = 0 then return quiescence(pos, alpha, beta)
//	    if White to move then
//	        value := -inf
//	        for each move, highest priority first, do
//	            value := max(value, search(pos+move, depth-1, alpha, beta))
//	            alpha := max(alpha, value)
//	            if alpha >= beta then break
//	        return value
//	    else
//	        value := +inf
//	        for each move, highest priority first, do
//	            value := min(value, search(pos+move, depth-1, alpha, beta))
//	            beta := min(beta, value)
//	            if alpha >= beta then break
//	        return value
func (r *run) search(pos *chess.Position, depth, ply, alpha, beta int) (int, []chess.Move) {
	legal, result := chess.LegalMoves(pos)
	switch result {
	case chess.Checkmate:
		return mateScoreFor(pos.SideToMove.Opponent(), ply), nil
	case chess.Stalemate:
		return 0, nil
	}

	if depth == 0 {
		return r.quiescence(pos, ply, alpha, beta)
	}

	r.nodes++

	priority := capturePriority(pos)
	if ply < len(r.hint) {
		priority = chess.First(r.hint[ply], priority)
	}

	moves := chess.NewMoveList(legal, priority)
	turn := pos.SideToMove

	var bestLine []chess.Move
	if turn == chess.White {
		best := -Inf
		for {
			m, ok := moves.Next()
			if !ok {
				break
			}
			undo, err := pos.Make(m)
			if err != nil {
				panic(err) // move generation must only produce legal, makeable moves
			}
			score, line := r.search(pos, depth-1, ply+1, alpha, beta)
			pos.Unmake(undo)

			if score > best {
				best = score
				bestLine = prepend(m, line)
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best, bestLine
	}

	best := Inf
	for {
		m, ok := moves.Next()
		if !ok {
			break
		}
		undo, err := pos.Make(m)
		if err != nil {
			panic(err)
		}
		score, line := r.search(pos, depth-1, ply+1, alpha, beta)
		pos.Unmake(undo)

		if score < best {
			best = score
			bestLine = prepend(m, line)
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			break
		}
	}
	return best, bestLine
}

func mateScoreFor(winner chess.Color, ply int) int {
	if winner == chess.White {
		return mateScore(ply)
	}
	return -mateScore(ply)
}

func prepend(m chess.Move, line []chess.Move) []chess.Move {
	ret := make([]chess.Move, 0, len(line)+1)
	ret = append(ret, m)
	return append(ret, line...)
}
