package uci_test

import (
	"context"
	"strings"
	"testing"

	"github.com/herohde/eloi/pkg/board"
	"github.com/herohde/eloi/pkg/board/fen"
	"github.com/herohde/eloi/pkg/engine"
	"github.com/herohde/eloi/pkg/engine/uci"
	"github.com/herohde/eloi/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run feeds the driver the given lines and returns the full output after it
// exits.
func run(t *testing.T, lines ...string) []string {
	t.Helper()
	ctx := context.Background()

	e := engine.New(ctx, "eloi", "herohde", search.Root{Depth: 2})

	in := make(chan string, len(lines))
	for _, line := range lines {
		in <- line
	}
	close(in)

	d, out := uci.NewDriver(ctx, e, in)

	var ret []string
	for line := range out {
		ret = append(ret, line)
	}
	<-d.Closed()
	return ret
}

func find(lines []string, prefix string) (string, int) {
	for i, line := range lines {
		if strings.HasPrefix(line, prefix) {
			return line, i
		}
	}
	return "", -1
}

func TestDriverIdentification(t *testing.T) {
	lines := run(t, "quit")

	require.True(t, len(lines) >= 3)
	assert.True(t, strings.HasPrefix(lines[0], "id name eloi"))
	assert.True(t, strings.HasPrefix(lines[1], "id author herohde"))
	assert.Equal(t, "uciok", lines[2])
}

func TestDriverIsReady(t *testing.T) {
	lines := run(t, "isready", "quit")

	_, i := find(lines, "readyok")
	assert.True(t, i >= 0)
}

func TestDriverGo(t *testing.T) {
	// "go" emits an info line before the bestmove line.

	lines := run(t, "go", "quit")

	info, i := find(lines, "info ")
	bestmove, j := find(lines, "bestmove ")

	require.True(t, i >= 0, "missing info line")
	require.True(t, j >= 0, "missing bestmove line")
	assert.Less(t, i, j)

	assert.Contains(t, info, "depth 2")
	assert.Contains(t, info, "score cp ")
	assert.Contains(t, info, "pv ")

	// The chosen move is a legal white opening move.
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assertLegal(t, pos, strings.TrimPrefix(bestmove, "bestmove "))
}

func TestDriverPositionMoves(t *testing.T) {
	lines := run(t,
		"position startpos moves e2e4",
		"position startpos moves e2e4 e7e5",
		"go",
		"quit")

	bestmove, i := find(lines, "bestmove ")
	require.True(t, i >= 0)

	pos, err := fen.Decode("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 1")
	require.NoError(t, err)
	assertLegal(t, pos, strings.TrimPrefix(bestmove, "bestmove "))
}

func TestDriverPositionFEN(t *testing.T) {
	lines := run(t,
		"position fen k7/7R/6R1/8/8/8/8/7K w - - 0 1",
		"go",
		"quit")

	bestmove, i := find(lines, "bestmove ")
	require.True(t, i >= 0)
	assert.Equal(t, "bestmove g6g8", bestmove)
}

func TestDriverTerminalPosition(t *testing.T) {
	lines := run(t,
		"position fen 7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"go",
		"quit")

	bestmove, i := find(lines, "bestmove ")
	require.True(t, i >= 0)
	assert.Equal(t, "bestmove 0000", bestmove)
}

func TestDriverInvalidFENIgnored(t *testing.T) {
	// An unparseable FEN leaves the previous position in place.

	lines := run(t,
		"position startpos moves e2e4",
		"position fen banana",
		"go",
		"quit")

	bestmove, i := find(lines, "bestmove ")
	require.True(t, i >= 0)

	pos, err := fen.Decode("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)
	assertLegal(t, pos, strings.TrimPrefix(bestmove, "bestmove "))
}

func TestDriverIllegalMoveDiscardsRest(t *testing.T) {
	// The illegal move and the remainder of the list are discarded; the
	// moves before it stand.

	lines := run(t,
		"position startpos moves e2e4 e2e4 e7e5",
		"go",
		"quit")

	bestmove, i := find(lines, "bestmove ")
	require.True(t, i >= 0)

	pos, err := fen.Decode("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)
	assertLegal(t, pos, strings.TrimPrefix(bestmove, "bestmove "))
}

func TestDriverUnknownCommandsIgnored(t *testing.T) {
	lines := run(t, "banana", "hello world", "isready", "quit")

	// Nothing is emitted for unknown commands: readyok directly follows the
	// identification block.
	require.True(t, len(lines) >= 4)
	assert.Equal(t, "uciok", lines[2])
	assert.Equal(t, "readyok", lines[3])
	assert.Len(t, lines, 4)
}

func TestDriverUcinewgame(t *testing.T) {
	lines := run(t,
		"position startpos moves e2e4",
		"ucinewgame",
		"go",
		"quit")

	bestmove, i := find(lines, "bestmove ")
	require.True(t, i >= 0)

	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assertLegal(t, pos, strings.TrimPrefix(bestmove, "bestmove "))
}

func assertLegal(t *testing.T, pos *board.Position, move string) {
	t.Helper()

	m, err := board.ParseMove(move)
	require.NoError(t, err)

	for _, lm := range pos.LegalMoves() {
		if m.Equals(lm) {
			return
		}
	}
	t.Errorf("move %v not legal in %v", move, fen.Encode(pos))
}
