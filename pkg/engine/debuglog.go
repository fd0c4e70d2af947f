package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/seekerror/logw"
)

// DebugLog mirrors both directions of protocol traffic to an append-only
// file in the system temp directory. A nil DebugLog is valid and discards
// everything.
type DebugLog struct {
	f  *os.File
	mu sync.Mutex
}

// NewDebugLog opens the mirror file iff the given environment variable is
// set. Open failures disable mirroring rather than fail the engine.
func NewDebugLog(ctx context.Context, env, name string) *DebugLog {
	if os.Getenv(env) == "" {
		return nil
	}

	path := filepath.Join(os.TempDir(), name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		logw.Warningf(ctx, "Failed to open debug log %v: %v", path, err)
		return nil
	}

	logw.Infof(ctx, "Mirroring protocol traffic to %v", path)
	return &DebugLog{f: f}
}

// Line appends one traffic line, timestamped with a direction marker.
func (d *DebugLog) Line(direction, text string) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	_, _ = fmt.Fprintf(d.f, "%v %v %v\n", time.Now().Format(time.RFC3339Nano), direction, text)
}

func (d *DebugLog) Close() {
	if d == nil {
		return
	}
	_ = d.f.Close()
}
