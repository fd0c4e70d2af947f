package engine

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/seekerror/logw"
)

// ReadStdinLines reads stdin lines into a chan. Async. The chan is closed
// on EOF.
func ReadStdinLines(ctx context.Context, log *DebugLog) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			log.Line("<<", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}

// WriteStdoutLines writes lines from the given chan to stdout. It returns
// when the chan is closed. Write failures terminate the process.
func WriteStdoutLines(ctx context.Context, out <-chan string, log *DebugLog) {
	for line := range out {
		logw.Debugf(ctx, ">> %v", line)
		log.Line(">>", line)

		if _, err := fmt.Fprintln(os.Stdout, line); err != nil {
			logw.Exitf(ctx, "Output failed: %v", err)
		}
	}
}
