// panic.go — the unrecoverable failure signal for xgx-result core.
//
// Scope:
//   - *PanicError is the single concrete type every unexpected condition is
//     normalized into. It carries the original condition (cause), a captured
//     trace, and an optional message.
//   - It propagates via Go's native panic and is never wrapped in Err; the
//     library deliberately offers no catch API for it.
//
// Interop:
//   - Unwrap() error exposes the cause chain so errors.Is/As observe the
//     original condition's kind and message through the panic signal.
package xgxresult

import (
	"fmt"
)

// PanicError marks an unexpected, unrecoverable condition. It is created at
// the moment of classification and destroyed only by process exit; enclosing
// boundaries propagate it unchanged (a panic is never re-classified).
type PanicError struct {
	msg   string
	cause error
	stack Stack
}

// newPanic builds a PanicError. The stack SHOULD be the trace captured at the
// original raise site (or at the conversion boundary for returned errors).
func newPanic(msg string, cause error, stk Stack) *PanicError {
	return &PanicError{msg: msg, cause: cause, stack: stk}
}

func (p *PanicError) Error() string {
	switch {
	case p.msg != "" && p.cause != nil:
		return fmt.Sprintf("panic: %s: %v", p.msg, p.cause)
	case p.msg != "":
		return "panic: " + p.msg
	case p.cause != nil:
		return fmt.Sprintf("panic: %v", p.cause)
	}
	return "panic"
}

// Unwrap returns the original unexpected condition, keeping the cause chain
// traversable for errors.Is/As.
func (p *PanicError) Unwrap() error { return p.cause }

// Stack returns the raw captured trace. Use Trace for the filtered,
// human-readable view.
func (p *PanicError) Stack() Stack { return p.stack }

// Trace renders the filtered originating trace followed by the message-only
// line, ready for diagnostic printing.
func (p *PanicError) Trace() string { return renderTrace(p.stack, p) }

// recoveredValue adapts a non-error panic payload (string, int, ...) into an
// error so the classification policy can treat every recovered value
// uniformly. Such payloads are never expected (see kinds.go).
type recoveredValue struct {
	value any
}

func (r recoveredValue) Error() string { return fmt.Sprintf("%v", r.value) }

// Value returns the original panic payload.
func (r recoveredValue) Value() any { return r.value }

// asCondition normalizes a recovered panic payload into an error condition.
func asCondition(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return recoveredValue{value: v}
}

// AsPanic reports whether a recovered value represents an in-flight panic
// signal of this library, normalizing the re-raise carrier used by
// UnwrapOrRaise into a *PanicError. Integration layers (top-level hooks,
// logging scopes) use it to render diagnostics before the process dies;
// application code should not use it to swallow panics.
func AsPanic(v any) (*PanicError, bool) {
	switch r := v.(type) {
	case *PanicError:
		return r, true
	case *raised:
		return newPanic("", r.err, r.stack), true
	}
	return nil, false
}
