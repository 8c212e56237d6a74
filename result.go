// result.go — the Result value model for xgx-result core.
//
// Scope:
//   - Result[T] is a tagged success/failure container: variant Ok holding a T,
//     or variant Err holding the condition that produced the failure.
//   - Exactly one variant is populated and the held value is immutable once
//     constructed. Querying the wrong variant escalates to *PanicError, never
//     a sentinel: misuse of this API is just another unexpected condition.
//
// Deconstruction:
//   - Get() mirrors the (T, error) convention for plumbing into ordinary Go.
//   - Match/ErrAs provide variant dispatch and payload-kind dispatch; kind
//     matching on the Err payload rides on errors.As, so it follows the
//     stdlib's own specificity rules.
package xgxresult

import (
	"errors"
	"fmt"
)

// Result is either an Ok value of type T or an Err condition. The zero value
// is an Ok holding T's zero value; prefer the explicit constructors.
type Result[T any] struct {
	val   T
	err   error
	stack Stack
	// fail marks the Err variant. The flag is oriented so the zero struct
	// is the Ok variant, keeping the zero-value promise above.
	fail bool
}

// Ok returns a success Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{val: v}
}

// Err returns a failure Result holding err. A nil err is a misuse and
// escalates to *PanicError: a failure with no condition is unrepresentable.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic(newPanic("Err constructed from nil error", nil, captureStackDefault(0)))
	}
	return Result[T]{err: err, fail: true}
}

// errTraced builds an Err carrying the trace captured at its conversion
// boundary. Hand-built Err values carry no trace, same as a condition that
// was never raised.
func errTraced[T any](err error, stk Stack) Result[T] {
	return Result[T]{err: err, stack: stk, fail: true}
}

// IsOk reports whether r holds the Ok variant.
func (r Result[T]) IsOk() bool { return !r.fail }

// IsErr reports whether r holds the Err variant.
func (r Result[T]) IsErr() bool { return r.fail }

// Unwrap returns the Ok value. On Err it escalates to *PanicError with the
// held condition as the panic's cause.
func (r Result[T]) Unwrap() T {
	if r.fail {
		panic(newPanic("called Unwrap on "+r.String(), r.err, r.raiseStack()))
	}
	return r.val
}

// Expect is Unwrap with a caller-supplied message for the escalation path.
func (r Result[T]) Expect(msg string) T {
	if r.fail {
		panic(newPanic(msg+": "+r.String(), r.err, r.raiseStack()))
	}
	return r.val
}

// UnwrapErr returns the Err condition. On Ok it escalates to *PanicError.
func (r Result[T]) UnwrapErr() error {
	if !r.fail {
		panic(newPanic("called UnwrapErr on "+r.String(), nil, captureStackDefault(0)))
	}
	return r.err
}

// ExpectErr is UnwrapErr with a caller-supplied message.
func (r Result[T]) ExpectErr(msg string) error {
	if !r.fail {
		panic(newPanic(msg+": "+r.String(), nil, captureStackDefault(0)))
	}
	return r.err
}

// UnwrapOr returns the Ok value, or alt on Err. It never escalates.
func (r Result[T]) UnwrapOr(alt T) T {
	if r.fail {
		return alt
	}
	return r.val
}

// UnwrapOrRaise returns the Ok value; on Err it re-raises the held condition
// as if it had been raised natively at this point, preserving the original
// trace. The nearest enclosing boundary applies its own classification to the
// condition; outside any boundary it surfaces as an uncaught *PanicError.
func (r Result[T]) UnwrapOrRaise() T {
	if r.fail {
		panic(&raised{err: r.err, stack: r.raiseStack()})
	}
	return r.val
}

// Err returns the held condition on Err, or nil on Ok.
func (r Result[T]) Err() error {
	if !r.fail {
		return nil
	}
	return r.err
}

// Get deconstructs r into the conventional (T, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.val, r.Err()
}

// Trace renders the filtered trace captured when the Err condition crossed
// its boundary, followed by the message-only line. Returns "" on Ok.
func (r Result[T]) Trace() string {
	if !r.fail {
		return ""
	}
	return renderTrace(r.stack, r.err)
}

// raiseStack prefers the trace captured at the original raise site; an Err
// built by hand has none, so the current call site stands in for it.
func (r Result[T]) raiseStack() Stack {
	if len(r.stack) > 0 {
		return r.stack
	}
	return captureStackDefault(1)
}

func (r Result[T]) String() string {
	if !r.fail {
		return fmt.Sprintf("Ok(%v)", r.val)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Format implements fmt.Formatter.
//   %v, %s  → concise String() form.
//   %+v     → String() plus the filtered trace on Err (omitted when absent).
//   %q      → quoted String().
func (r Result[T]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && r.fail && len(r.stack.Filtered()) > 0 {
			fmt.Fprintf(s, "%s\n%s", r.String(), r.Trace())
			return
		}
		fmt.Fprint(s, r.String())
	case 's':
		fmt.Fprint(s, r.String())
	case 'q':
		fmt.Fprintf(s, "%q", r.String())
	default:
		fmt.Fprint(s, r.String())
	}
}

// Match dispatches on the variant of r: exactly one of the two branches runs
// and its value is returned. Both branches must be non-nil.
func Match[T, R any](r Result[T], ok func(T) R, err func(error) R) R {
	if r.IsOk() {
		return ok(r.val)
	}
	return err(r.err)
}

// ErrAs reports whether r is an Err whose condition chain contains kind E,
// returning the matched value. It is the payload-kind arm of Match:
//
//	if perr, ok := xgxresult.ErrAs[*fs.PathError](res); ok { ... }
func ErrAs[E error, T any](r Result[T]) (E, bool) {
	var target E
	if r.IsOk() {
		return target, false
	}
	return target, errors.As(r.err, &target)
}
