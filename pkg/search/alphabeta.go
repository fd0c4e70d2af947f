package search

import (
	"context"

	"github.com/herohde/eloi/pkg/board"
	"github.com/herohde/eloi/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"go.uber.org/atomic"
)

// runAlphaBeta holds the shared state of one root search. The node counter
// is atomic so that parallel root workers can share it.
//
// Pseudo-code:
//
//	function negamax(node, depth, α, β) is
//	    if node is terminal then
//	        return mate/stalemate score
//	    if depth = 0 then
//	        return the heuristic value of node
//	    value := −∞
//	    for each child of node do
//	        value := max(value, −negamax(child, depth − 1, −β, −α))
//	        α := max(α, value)
//	        if α ≥ β then
//	            break (* cutoff *)
//	    return value
//
// See: https://en.wikipedia.org/wiki/Negamax.
type runAlphaBeta struct {
	eval  eval.Evaluator
	nodes atomic.Uint64
}

// search returns the score of the position from the side to move's
// perspective. Positions with no legal moves are terminal regardless of the
// remaining depth: -MateScore in check, zero otherwise.
func (m *runAlphaBeta) search(ctx context.Context, pos *board.Position, depth int, alpha, beta eval.Score) eval.Score {
	if contextx.IsCancelled(ctx) {
		return 0 // result discarded by the root
	}
	m.nodes.Inc()

	moves := OrderedLegalMoves(pos)
	if len(moves) == 0 {
		if pos.IsChecked(pos.Turn()) {
			return -eval.MateScore
		}
		return 0
	}
	if depth == 0 {
		return m.eval.Evaluate(ctx, pos)
	}

	best := eval.NegInf
	for _, c := range moves {
		score := -m.search(ctx, c.Next, depth-1, -beta, -alpha)
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break // cutoff
		}
	}
	return best
}
