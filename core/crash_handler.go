package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.RWMutex
	crashHandler func(r any)
)

// SetCrashHandler installs the hook run before a crashed goroutine exits the process.
// Hosts owning the terminal use it to restore the screen
func SetCrashHandler(fn func(r any)) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashHandler = fn
}

// HandleCrash runs the installed hook, prints the stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.RLock()
	fn := crashHandler
	crashMu.RUnlock()
	if fn != nil {
		fn(r)
	}

	// Use \r\n for raw mode compatibility
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
