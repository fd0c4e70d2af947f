// Package search contains fixed-depth negamax search with alpha-beta
// pruning and root-level parallelism.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/herohde/eloi/pkg/board"
	"github.com/herohde/eloi/pkg/eval"
)

// DefaultDepth is the root search depth in plies, unless configured otherwise.
const DefaultDepth = 5

var (
	// ErrHalted is returned if the search is cancelled before completion.
	ErrHalted = errors.New("search halted")

	// ErrNoMoves is returned if the root position has no legal moves, i.e.,
	// is checkmate or stalemate. The caller decides the protocol response.
	ErrNoMoves = errors.New("no legal moves")
)

// PV represents the result of a root search: the chosen move along with its
// evaluated score and search statistics.
type PV struct {
	Move  board.Move
	Score eval.Score
	Depth int
	Nodes uint64
	Time  time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v move=%v", p.Depth, p.Score, p.Nodes, p.Time, p.Move)
}

// Search finds a best move for the given position.
type Search interface {
	Search(ctx context.Context, pos *board.Position) (PV, error)
}
