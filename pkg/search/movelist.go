package search

import (
	"sort"

	"github.com/herohde/eloi/pkg/board"
)

// Priority represents the move order priority. Higher is searched first.
type Priority int8

// Candidate pairs a legal move with the position it produces. Searching the
// successor directly avoids a second clone-and-apply per node.
type Candidate struct {
	Move board.Move
	Next *board.Position
}

// OrderedLegalMoves returns the legal moves of the position, each paired
// with its successor position, ordered for search: promotions first, then
// captures, then checking moves. Ties keep generator emission order, so the
// order is deterministic.
func OrderedLegalMoves(pos *board.Position) []Candidate {
	type scored struct {
		c Candidate
		p Priority
	}

	var list []scored
	for _, m := range pos.PseudoLegalMoves() {
		if next, ok := pos.Move(m); ok {
			c := Candidate{Move: m, Next: next}
			list = append(list, scored{c: c, p: moveOrder(pos, c)})
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].p > list[j].p
	})

	ret := make([]Candidate, len(list))
	for i, s := range list {
		ret[i] = s.c
	}
	return ret
}

// IsCapture reports whether the move captures a piece in the given position.
// En passant always captures, castles never do.
func IsCapture(pos *board.Position, m board.Move) bool {
	switch m.Type {
	case board.EnPassant:
		return true
	case board.KingSideCastle, board.QueenSideCastle:
		return false
	default:
		return !pos.IsEmpty(m.To)
	}
}

func moveOrder(pos *board.Position, c Candidate) Priority {
	var ret Priority
	if c.Move.Type == board.Promotion {
		ret += 4
	}
	if IsCapture(pos, c.Move) {
		ret += 2
	}
	if c.Next.IsChecked(c.Next.Turn()) {
		ret++
	}
	return ret
}
