// Package eval contains position evaluation logic and utilities.
package eval

import (
	"context"

	"github.com/herohde/eloi/pkg/board"
)

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score in centipawns for the side to move.
	Evaluate(ctx context.Context, pos *board.Position) Score
}

// Material returns the nominal material balance for the side to move.
type Material struct{}

func (Material) Evaluate(ctx context.Context, pos *board.Position) Score {
	turn := pos.Turn()

	var score Score
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		c, piece, ok := pos.Square(sq)
		if !ok {
			continue
		}
		if c == turn {
			score += NominalValue(piece)
		} else {
			score -= NominalValue(piece)
		}
	}
	return score
}

// NominalValue is the absolute nominal value of a piece in centipawns. The
// King carries no material value; its loss is expressed as a mate score.
func NominalValue(p board.Piece) Score {
	switch p {
	case board.Pawn:
		return 100
	case board.Bishop, board.Knight:
		return 300
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	default:
		return 0
	}
}
