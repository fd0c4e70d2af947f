package search

import (
	"context"
	"time"

	"github.com/herohde/eloi/pkg/board"
	"github.com/herohde/eloi/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"golang.org/x/sync/errgroup"
)

// Root is a fixed-depth negamax search with root-level parallelism. The
// first ordered candidate is searched sequentially with a full window to
// establish a baseline score; the remaining candidates run in parallel with
// the null window (-Inf, -baseline), each merely trying to prove it beats
// the baseline. A parallel winner's score may therefore be a lower bound.
type Root struct {
	// Eval is the horizon evaluator. Defaults to Material.
	Eval eval.Evaluator
	// Depth is the fixed search depth in plies, counting the root ply.
	// Defaults to DefaultDepth.
	Depth int
	// Serial disables root parallelism. The search result is identical;
	// only wall-clock time differs.
	Serial bool
}

func (r Root) Search(ctx context.Context, pos *board.Position) (PV, error) {
	depth := r.Depth
	if depth <= 0 {
		depth = DefaultDepth
	}
	ev := r.Eval
	if ev == nil {
		ev = eval.Material{}
	}

	start := time.Now()
	run := &runAlphaBeta{eval: ev}

	moves := OrderedLegalMoves(pos)
	if len(moves) == 0 {
		return PV{}, ErrNoMoves
	}

	// (1) Establish the baseline with the first ordered candidate. The root
	// ply consumes one level, so children search depth-1.

	d := depth - 1
	best := moves[0]
	bestScore := -run.search(ctx, best.Next, d, eval.NegInf, eval.Inf)

	// (2) Try to beat the baseline with the remaining candidates, in
	// parallel under the null window.

	if len(moves) > 1 {
		scores := make([]eval.Score, len(moves))

		if r.Serial {
			for i, c := range moves[1:] {
				scores[i+1] = -run.search(ctx, c.Next, d, eval.NegInf, -bestScore)
			}
		} else {
			g, gctx := errgroup.WithContext(ctx)
			for i, c := range moves[1:] {
				i, c := i+1, c
				g.Go(func() error {
					scores[i] = -run.search(gctx, c.Next, d, eval.NegInf, -bestScore)
					if contextx.IsCancelled(gctx) {
						return ErrHalted
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return PV{}, err
			}
		}

		// (3) Pick the maximum; ties break deterministically by generator
		// order regardless of completion order.

		for i := 1; i < len(moves); i++ {
			if scores[i] > bestScore {
				best, bestScore = moves[i], scores[i]
			}
		}
	}

	if contextx.IsCancelled(ctx) {
		return PV{}, ErrHalted
	}

	return PV{
		Move:  best.Move,
		Score: bestScore,
		Depth: depth,
		Nodes: run.nodes.Load(),
		Time:  time.Since(start),
	}, nil
}
