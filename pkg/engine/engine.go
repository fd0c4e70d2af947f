// Package engine contains the game-playing facade around the board and
// search components.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/herohde/eloi/pkg/board"
	"github.com/herohde/eloi/pkg/board/fen"
	"github.com/herohde/eloi/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Engine encapsulates the live game state, move validation and search. It
// owns the one authoritative position; a search reads it without mutating it
// and explores forked clones.
type Engine struct {
	name, author string

	root search.Search
	pos  *board.Position
	mu   sync.Mutex
}

func New(ctx context.Context, name, author string, root search.Search) *Engine {
	e := &Engine{name: name, author: author, root: root}
	_ = e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v", e.Name())
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Position returns the current position in FEN format. Convenience function.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.pos)
}

// Reset resets the engine to the given position in FEN format. On parse
// failure, the current position is kept.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, err := fen.Decode(position)
	if err != nil {
		return err
	}
	e.pos = pos

	logw.Infof(ctx, "Reset %v", pos)
	return nil
}

// LegalMoves returns the legal moves in the current position.
func (e *Engine) LegalMoves() []board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.LegalMoves()
}

// Move applies the given move in coordinate notation, usually an opponent
// move. The move is matched against the legal-move list, which resolves
// castling and promotion. Illegal moves fail without mutation.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move: %v", err)
	}

	for _, m := range e.pos.LegalMoves() {
		if !candidate.Equals(m) {
			continue
		}

		next, ok := e.pos.Move(m)
		if !ok {
			return fmt.Errorf("illegal move: %v", m)
		}
		e.pos = next

		logw.Infof(ctx, "Move %v: %v", m, e.pos)
		return nil
	}
	return fmt.Errorf("illegal move: %v", candidate)
}

// IsCheckmate returns true iff the side to move is checkmated.
func (e *Engine) IsCheckmate() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.IsCheckmate()
}

// IsStalemate returns true iff the position is a stalemate.
func (e *Engine) IsStalemate() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.IsStalemate()
}

// Search searches the current position. It blocks until the search runs to
// its fixed depth.
func (e *Engine) Search(ctx context.Context) (search.PV, error) {
	e.mu.Lock()
	pos := e.pos
	e.mu.Unlock()

	pv, err := e.root.Search(ctx, pos)
	if err != nil {
		return search.PV{}, err
	}

	logw.Infof(ctx, "Search %v: %v", pos, pv)
	return pv, nil
}
