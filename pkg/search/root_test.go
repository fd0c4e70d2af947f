package search_test

import (
	"context"
	"testing"

	"github.com/herohde/eloi/pkg/board"
	"github.com/herohde/eloi/pkg/board/fen"
	"github.com/herohde/eloi/pkg/eval"
	"github.com/herohde/eloi/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFindsMateInOne(t *testing.T) {
	ctx := context.Background()

	pos := decode(t, "k7/7R/6R1/8/8/8/8/7K w - - 0 1")

	pv, err := search.Root{Depth: 2}.Search(ctx, pos)
	require.NoError(t, err)

	assert.Equal(t, eval.MateScore, pv.Score)
	assert.Equal(t, "g6g8", pv.Move.String())
	assert.Equal(t, 2, pv.Depth)
	assert.NotZero(t, pv.Nodes)
}

func TestSearchPrefersHangingQueen(t *testing.T) {
	ctx := context.Background()

	pos := decode(t, "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")

	pv, err := search.Root{Depth: 2}.Search(ctx, pos)
	require.NoError(t, err)
	assert.Equal(t, "e4d5", pv.Move.String())
}

func TestSearchTerminalRoot(t *testing.T) {
	ctx := context.Background()

	tests := []string{
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3", // checkmate
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",                                // stalemate
	}

	for _, tt := range tests {
		pos := decode(t, tt)

		_, err := search.Root{Depth: 3}.Search(ctx, pos)
		assert.ErrorIsf(t, err, search.ErrNoMoves, "terminal: %v", tt)
	}
}

func TestSearchReturnsLegalMove(t *testing.T) {
	ctx := context.Background()

	tests := []string{
		fen.Initial,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, tt := range tests {
		pos := decode(t, tt)

		pv, err := search.Root{Depth: 3}.Search(ctx, pos)
		require.NoErrorf(t, err, "search: %v", tt)

		var legal bool
		for _, m := range pos.LegalMoves() {
			if m == pv.Move {
				legal = true
			}
		}
		assert.Truef(t, legal, "illegal best move %v in %v", pv.Move, tt)
	}
}

func TestSerialAndParallelAgree(t *testing.T) {
	ctx := context.Background()

	tests := []string{
		fen.Initial,
		"k7/7R/6R1/8/8/8/8/7K w - - 0 1",
		"4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1",
	}

	for _, tt := range tests {
		pos := decode(t, tt)

		parallel, err := search.Root{Depth: 3}.Search(ctx, pos)
		require.NoError(t, err)
		serial, err := search.Root{Depth: 3, Serial: true}.Search(ctx, pos)
		require.NoError(t, err)

		assert.Equalf(t, serial.Move, parallel.Move, "move mismatch: %v", tt)
		assert.Equalf(t, serial.Score, parallel.Score, "score mismatch: %v", tt)
	}
}

func TestSearchHalted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pos := decode(t, fen.Initial)

	_, err := search.Root{Depth: 3}.Search(ctx, pos)
	assert.ErrorIs(t, err, search.ErrHalted)
}

func TestSearchDefaultDepth(t *testing.T) {
	ctx := context.Background()

	// Shallow material-only search from a sparse position exercises the
	// default configuration quickly.
	pos := decode(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")

	pv, err := search.Root{}.Search(ctx, pos)
	require.NoError(t, err)
	assert.Equal(t, search.DefaultDepth, pv.Depth)
	assert.True(t, pv.Move.From == board.E1)
}
