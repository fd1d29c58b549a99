package search

import (
	"github.com/halfmove/mainline/pkg/chess"
	"github.com/halfmove/mainline/pkg/eval"
)

// quiescence explores only captures (all moves if the side to move is in check) until the
// position is quiet, per spec.md §4.10. A standing-pat evaluation bounds the search: it is the
// floor for the maximizing side and the ceiling for the minimizing side. The in-check branch
// never uses standing pat, since every response must be examined; any Stalemate there is a draw
// and any Checkmate is a loss.
func (r *run) quiescence(pos *chess.Position, ply, alpha, beta int) (int, []chess.Move) {
	legal, result := chess.LegalMoves(pos)
	switch result {
	case chess.Checkmate:
		return mateScoreFor(pos.SideToMove.Opponent(), ply), nil
	case chess.Stalemate:
		return 0, nil
	}

	r.nodes++
	turn := pos.SideToMove
	inCheck := result == chess.Check

	standPat := eval.Evaluate(pos, result).Score

	var candidates []chess.Move
	if inCheck {
		candidates = legal
	} else {
		if turn == chess.White {
			if standPat > alpha {
				alpha = standPat
			}
		} else {
			if standPat < beta {
				beta = standPat
			}
		}
		if alpha >= beta {
			return standPat, nil
		}
		candidates = captures(pos, legal)
		if len(candidates) == 0 {
			return standPat, nil
		}
	}

	priority := capturePriority(pos)
	moves := chess.NewMoveList(candidates, priority)

	var bestLine []chess.Move
	if turn == chess.White {
		best := standPat
		if inCheck {
			best = -Inf
		}
		for {
			m, ok := moves.Next()
			if !ok {
				break
			}
			undo, err := pos.Make(m)
			if err != nil {
				panic(err)
			}
			score, line := r.quiescence(pos, ply+1, alpha, beta)
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

	best := standPat
	if inCheck {
		best = Inf
	}
	for {
		m, ok := moves.Next()
		if !ok {
			break
		}
		undo, err := pos.Make(m)
		if err != nil {
			panic(err)
		}
		score, line := r.quiescence(pos, ply+1, alpha, beta)
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

func captures(pos *chess.Position, moves []chess.Move) []chess.Move {
	var ret []chess.Move
	for _, m := range moves {
		if _, ok := captureVictim(pos, m); ok {
			ret = append(ret, m)
		}
	}
	return ret
}
