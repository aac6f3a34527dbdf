package dynarray

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// debugEnabled enables trace output for structural changes (growth, clear,
// truncation). Set from DYNARRAY_DEBUG at init.
var debugEnabled atomic.Bool

var (
	debugMu  sync.Mutex
	debugOut io.Writer = os.Stderr
)

// SetDebug turns trace output on or off and returns the previous setting.
func SetDebug(enabled bool) bool {
	return debugEnabled.Swap(enabled)
}

// SetDebugOutput redirects trace output and returns the previous writer.
// A nil writer restores os.Stderr.
func SetDebugOutput(w io.Writer) io.Writer {
	if w == nil {
		w = os.Stderr
	}
	debugMu.Lock()
	defer debugMu.Unlock()
	prev := debugOut
	debugOut = w
	return prev
}

func debugPrint(format string, args ...any) {
	if !debugEnabled.Load() {
		return
	}
	debugMu.Lock()
	defer debugMu.Unlock()
	fmt.Fprintf(debugOut, "[dynarray] "+format+"\n", args...)
}
