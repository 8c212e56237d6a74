// gather.go — scoped Result capture for xgx-result core.
//
// GatherResult is the boundary-conversion helper for code that wants to set
// a Result explicitly from nested statements rather than thread it through
// return values. The Capture context is scoped to one call stack, single-use,
// and set-once; it is finalized on every exit path from the scope, including
// an early raise.
package xgxresult

// Capture is the scoped holder handed to a GatherResult body. At most one
// Result may be set per context; reading before the scope has finalized is a
// misuse. A Capture must not be shared across goroutines.
type Capture[T any] struct {
	res       Result[T]
	set       bool
	finalized bool
}

// Set records the scope's Result. Setting twice, or after the scope has
// finalized, is a misuse and escalates to *PanicError.
func (c *Capture[T]) Set(r Result[T]) {
	if c.finalized {
		panic(newPanic("Set on finalized capture context", nil, captureStackDefault(0)))
	}
	if c.set {
		panic(newPanic("Set called twice on capture context", nil, captureStackDefault(0)))
	}
	c.res = r
	c.set = true
}

// Result returns the captured Result. Reading before the scope has finalized
// is a misuse and escalates to *PanicError.
func (c *Capture[T]) Result() Result[T] {
	if !c.finalized {
		panic(newPanic("Result read before capture scope finalized", nil, captureStackDefault(0)))
	}
	return c.res
}

// GatherResult runs body with a fresh Capture and returns the captured
// Result. A body that completes without calling Set yields Ok of T's zero
// value. Conditions raised inside the body are classified per the boundary
// rules: expected kinds are recorded as Err in the context, everything else
// escalates to *PanicError. The context is finalized on every exit path,
// so a surviving reference stays readable even when the scope unwinds.
func GatherResult[T any](body func(*Capture[T]), expected ...Expected) (res Result[T]) {
	var zero T
	c := &Capture[T]{res: Ok(zero)}
	// LIFO: the recover runs first, then the result is published, then the
	// context finalizes — in that order on clean exits, early raises, and
	// escalations alike.
	defer func() { c.finalized = true }()
	defer func() { res = c.res }()
	defer func() {
		if r := recover(); r != nil {
			c.res = classifyRecovered[T](r, expected)
			c.set = true
		}
	}()
	body(c)
	return c.res
}
