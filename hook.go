// hook.go — process-wide diagnostic hook for uncaught panics.
//
// The hook is the outermost boundary: an uncaught *PanicError reaching it is
// rendered with its filtered trace instead of the runtime's default panic
// dump, then the process terminates. Any other panic value is re-raised so
// native behavior is preserved.
//
// Lifecycle: the destination writer is process-wide state, installed at most
// once (first InstallHook call wins, defaulting to stderr) and never torn
// down. Hook itself must be deferred at the top of main — Go panics can only
// be intercepted by a deferred call in the goroutine that raised them:
//
//	func main() {
//	    defer xgxresult.Hook()
//	    run()
//	}
package xgxresult

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// panicExitCode matches the Go runtime's own exit status for an
// unrecovered panic.
const panicExitCode = 2

var (
	hookOnce   sync.Once
	hookWriter io.Writer = os.Stderr
	hookExit             = os.Exit // swapped out in tests
)

// InstallHook sets the writer that Hook renders diagnostics to. Only the
// first call has any effect; a nil writer leaves the default (stderr) in
// place. There is no uninstall.
func InstallHook(w io.Writer) {
	hookOnce.Do(func() {
		if w != nil {
			hookWriter = w
		}
	})
}

// Hook intercepts an uncaught *PanicError (or an unconsumed re-raise) at the
// outermost boundary, renders the filtered trace, and terminates the process
// with the runtime's panic exit code. Panics that do not belong to this
// library propagate unchanged.
func Hook() {
	r := recover()
	if r == nil {
		return
	}
	p, ok := AsPanic(r)
	if !ok {
		panic(r)
	}
	_, _ = fmt.Fprintln(hookWriter, p.Trace())
	hookExit(panicExitCode)
}
