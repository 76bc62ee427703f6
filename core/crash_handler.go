// Package core holds the kinetic body shared by physics and tokens, plus panic handling for goroutines
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
)

// crashHooks run before the process exits on an unrecovered panic
type crashHooks struct {
	mu    sync.Mutex
	reset func()
	log   *zap.Logger
}

var (
	hooks     crashHooks
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// SetCrashReset registers the terminal restore run before the trace is printed; nil clears it
func SetCrashReset(fn func()) {
	hooks.mu.Lock()
	hooks.reset = fn
	hooks.mu.Unlock()
}

// SetCrashLogger registers a logger that records the panic and is synced before exit; nil clears it
func SetCrashLogger(log *zap.Logger) {
	hooks.mu.Lock()
	hooks.log = log
	hooks.mu.Unlock()
}

// HandleCrash restores the terminal, reports r with its stack and exits with status 1
// A nil r is ignored so callers can pass recover() directly
func HandleCrash(r any) {
	if r == nil {
		return
	}
	stack := debug.Stack()

	hooks.mu.Lock()
	reset, log := hooks.reset, hooks.log
	hooks.mu.Unlock()

	if reset != nil {
		reset()
	}
	if log != nil {
		log.Error("panic", zap.Any("value", r), zap.ByteString("stack", stack))
		_ = log.Sync()
	}

	// Raw mode may still be active, so lines end in \r\n
	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH: %v\x1b[0m\r\nStack Trace:\r\n%s\r\n", r, stack)
	crashExit(1)
}

// Go runs fn on a new goroutine whose panics go through HandleCrash
func Go(fn func()) {
	go func() {
		defer func() { HandleCrash(recover()) }()
		fn()
	}()
}
