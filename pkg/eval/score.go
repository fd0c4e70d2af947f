package eval

import "fmt"

// Score is a signed position or move score in centipawns from the side to
// move's perspective; higher is better. Heuristic material scores stay far
// below MateScore, which in turn stays below the search window bounds.
type Score int32

const (
	// MateScore is the terminal score for the side to move being checkmated,
	// negated. It carries no mate-distance adjustment.
	MateScore Score = 1000000

	// Inf bounds the alpha-beta window outside any attainable score.
	Inf    Score = 1000000000
	NegInf Score = -Inf
)

func (s Score) String() string {
	return fmt.Sprintf("%d", int32(s))
}
