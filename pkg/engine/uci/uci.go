// Package uci contains a driver for using the engine under the UCI protocol.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
// See: https://en.wikipedia.org/wiki/Universal_Chess_Interface
package uci

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/herohde/eloi/pkg/board/fen"
	"github.com/herohde/eloi/pkg/engine"
	"github.com/herohde/eloi/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const ProtocolName = "uci"

// Driver implements a UCI driver for an engine. It is activated if sent
// "uci". The driver is strictly sequential: each input line is processed to
// completion, including any blocking search, before the next line is
// consumed. There is no background search and no ponder.
type Driver struct {
	e   *engine.Engine
	out chan<- string

	quit iox.AsyncCloser
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		e:    e,
		out:  out,
		quit: iox.NewAsyncCloser(),
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) Close() {
	d.quit.Close()
}

func (d *Driver) Closed() <-chan struct{} {
	return d.quit.Closed()
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "UCI protocol initialized")

	// Identify the engine and acknowledge uci mode.

	d.out <- fmt.Sprintf("id name %v", d.e.Name())
	d.out <- fmt.Sprintf("id author %v", d.e.Author())
	d.out <- "uciok"

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream closed. Exiting")
				return
			}

			parts := strings.Fields(line)
			if len(parts) == 0 {
				break
			}
			cmd, args := parts[0], parts[1:]

			switch cmd {
			case "isready":
				// Synchronization ping. The driver is never mid-search here,
				// so it answers immediately.

				d.out <- "readyok"

			case "ucinewgame":
				if err := d.e.Reset(ctx, fen.Initial); err != nil {
					logw.Errorf(ctx, "Reset failed: %v", err)
				}

			case "position":
				d.handlePosition(ctx, args)

			case "go":
				// Search arguments (time controls, depth overrides) are
				// ignored: the search always runs to its fixed depth.

				d.handleGo(ctx)

			case "quit":
				return

			default:
				// Unknown commands are ignored without a response.

				logw.Warningf(ctx, "Unknown command '%v': %v", cmd, args)
			}

		case <-d.quit.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

// handlePosition installs a position:
//
//	position [fen <fenstring> | startpos] [moves <move1> ... <movei>]
//
// Parse failures and illegal moves are protocol-silent: the engine keeps the
// position built so far and produces no response. An illegal move discards
// the remainder of the move list.
func (d *Driver) handlePosition(ctx context.Context, args []string) {
	if len(args) == 0 {
		return
	}

	var rest []string

	switch args[0] {
	case "startpos":
		if err := d.e.Reset(ctx, fen.Initial); err != nil {
			logw.Errorf(ctx, "Reset failed: %v", err)
			return
		}
		rest = args[1:]

	case "fen":
		rest = args[1:]

		var fields []string
		for len(rest) > 0 && rest[0] != "moves" && len(fields) < 6 {
			fields = append(fields, rest[0])
			rest = rest[1:]
		}

		if err := d.e.Reset(ctx, strings.Join(fields, " ")); err != nil {
			logw.Errorf(ctx, "Invalid position %v: %v", fields, err)
			return
		}

	default:
		logw.Warningf(ctx, "Unknown position '%v'", args)
		return
	}

	if len(rest) == 0 || rest[0] != "moves" {
		return
	}
	for _, m := range rest[1:] {
		if err := d.e.Move(ctx, m); err != nil {
			logw.Errorf(ctx, "Invalid position move '%v': %v", m, err)
			return
		}
	}
}

// handleGo searches the current position and reports the chosen move:
//
//	info depth <D> score cp <centipawns> pv <move>
//	bestmove <move>
//
// A terminal position answers with the null move.
func (d *Driver) handleGo(ctx context.Context) {
	pv, err := d.e.Search(ctx)
	if err != nil {
		if errors.Is(err, search.ErrNoMoves) {
			d.out <- "bestmove 0000"
			return
		}

		logw.Errorf(ctx, "Search failed: %v", err)
		return
	}

	d.out <- fmt.Sprintf("info depth %v score cp %v pv %v", pv.Depth, pv.Score, pv.Move)
	d.out <- fmt.Sprintf("bestmove %v", pv.Move)
}
