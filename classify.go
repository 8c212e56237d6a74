// classify.go — the exception classification policy for xgx-result core.
//
// Decision procedure, given a condition c at a boundary with expectation set E:
//  1. If c is already a *PanicError, propagate unchanged. A panic is never
//     re-classified, no matter how many boundaries it crosses.
//  2. At a NoExcept boundary, ANY condition is unexpected by definition:
//     wrap as *PanicError preserving kind, message and trace.
//  3. At a ReturnsResult boundary:
//     a. explicit E: c is expected iff it matches one of the declared kinds
//        (errors.Is/As semantics) → Err(c); otherwise → *PanicError.
//     b. implicit (empty E): c is expected iff it is an error value not on
//        the fixed never-expected list → Err(c); otherwise → *PanicError.
//  4. The *PanicError's cause chain retains the original condition's kind,
//     message and originating trace; it is never discarded.
//
// The re-raise carrier (raised) lets UnwrapOrRaise inject a previously
// captured condition into this procedure as if it had been raised at the
// call site, original trace included.
package xgxresult

// raised carries a re-raised Err condition across panic unwinding so the
// enclosing boundary can classify the original error with its original
// trace. It never escapes the library: boundaries consume it, and the
// top-level hook normalizes a stray one into a *PanicError.
type raised struct {
	err   error
	stack Stack
}

func (r *raised) Error() string { return r.err.Error() }
func (r *raised) Unwrap() error { return r.err }

// classifyReturned judges a non-nil error returned by a boundary body.
// Expected conditions become Err carrying the trace captured at this
// conversion point; unexpected ones escalate.
func classifyReturned[T any](err error, expected []Expected) Result[T] {
	if p, ok := err.(*PanicError); ok {
		// Rule 1 applies even to a panic smuggled through a return value.
		panic(p)
	}
	stk := captureStackDefault(1)
	if !ExpectedBy(err, expected...) {
		panic(newPanic("", err, stk))
	}
	return errTraced[T](err, stk)
}

// classifyRecovered judges a recovered panic payload. It runs inside the
// boundary's deferred recover, where the raise-site frames are still on the
// goroutine stack, so the captured trace preserves the origin.
func classifyRecovered[T any](v any, expected []Expected) Result[T] {
	switch r := v.(type) {
	case *PanicError:
		panic(r) // rule 1: propagate unchanged
	case *raised:
		if !ExpectedBy(r.err, expected...) {
			panic(newPanic("", r.err, r.stack))
		}
		return errTraced[T](r.err, r.stack)
	}
	stk := captureStackDefault(1)
	cond := asCondition(v)
	if !ExpectedBy(cond, expected...) {
		panic(newPanic("", cond, stk))
	}
	return errTraced[T](cond, stk)
}

// escalate converts any recovered payload into a propagating *PanicError.
// Used by NoExcept boundaries, where nothing is ever expected.
func escalate(v any) *PanicError {
	if p, ok := AsPanic(v); ok {
		return p
	}
	return newPanic("", asCondition(v), captureStackDefault(1))
}
