package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/herohde/eloi/pkg/engine"
	"github.com/herohde/eloi/pkg/engine/uci"
	"github.com/herohde/eloi/pkg/eval"
	"github.com/herohde/eloi/pkg/search"
	"github.com/seekerror/logw"
)

var (
	depth  = flag.Int("depth", search.DefaultDepth, "Search depth in plies")
	serial = flag.Bool("serial", false, "Disable parallel root search")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: eloi [options]

ELOI is a simple fixed-depth UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	s := search.Root{
		Eval:   eval.Material{},
		Depth:  *depth,
		Serial: *serial,
	}
	e := engine.New(ctx, "eloi", "herohde", s)

	log := engine.NewDebugLog(ctx, "ELOI_DEBUG", "eloi.log")
	defer log.Close()

	in := engine.ReadStdinLines(ctx, log)
	for line := range in {
		switch line {
		case uci.ProtocolName:
			// Use UCI protocol.

			driver, out := uci.NewDriver(ctx, e, in)
			engine.WriteStdoutLines(ctx, out, log)

			<-driver.Closed()
			logw.Infof(ctx, "Eloi exited")
			return

		default:
			logw.Warningf(ctx, "Protocol not supported: '%v'", line)
		}
	}
}
