// boundary.go — boundary wrappers for xgx-result core.
//
// A boundary is where raised conditions are classified. Wrappers are plain
// higher-order functions: they take a callable and return a new callable with
// the expectation set attached (immutable for the wrapper's lifetime). Go has
// no variadic generics, so bodies are zero-argument closures; callers close
// over their arguments, middleware-style. Do and DoResult are the one-shot
// inline forms of the same boundaries.
package xgxresult

// NoExcept wraps fn with zero declared return-type change: callers receive
// the raw value on success, and any condition — returned error or panic —
// escalates to *PanicError. No Result is ever produced here.
func NoExcept[T any](fn func() (T, error)) func() T {
	return func() T {
		defer func() {
			if r := recover(); r != nil {
				panic(escalate(r))
			}
		}()
		v, err := fn()
		if err != nil {
			if p, ok := err.(*PanicError); ok {
				// Rule 1 applies even to a panic smuggled through a
				// return value: propagate it unchanged.
				panic(p)
			}
			panic(newPanic("", err, captureStackDefault(1)))
		}
		return v
	}
}

// NoExcept0 is NoExcept for bodies with no return value.
func NoExcept0(fn func() error) func() {
	wrapped := NoExcept(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return func() { wrapped() }
}

// ReturnsResult wraps fn into a Result-returning function. Conditions
// matching one of the expected kinds become Err; everything else escalates
// to *PanicError. With no kinds declared, implicit mode applies (any error
// except the never-expected set).
func ReturnsResult[T any](expected ...Expected) func(fn func() (T, error)) func() Result[T] {
	return func(fn func() (T, error)) func() Result[T] {
		return func() Result[T] {
			return Do(fn, expected...)
		}
	}
}

// Do runs fn under a one-shot boundary with the given expectation set.
// A plain (v, nil) return wraps as Ok(v).
func Do[T any](fn func() (T, error), expected ...Expected) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = classifyRecovered[T](r, expected)
		}
	}()
	v, err := fn()
	if err != nil {
		return classifyReturned[T](err, expected)
	}
	return Ok(v)
}

// DoResult runs a body that constructs its own Result under a one-shot
// boundary: the returned Result passes through unchanged, and only raised
// conditions (panics, including re-raises) are classified. This is the
// ergonomic mode for bodies mixing Ok/Err construction with UnwrapOrRaise.
func DoResult[T any](fn func() Result[T], expected ...Expected) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = classifyRecovered[T](r, expected)
		}
	}()
	return fn()
}

// ConstructsAsResult applies the ReturnsResult contract to a constructor:
// invoking the returned function never yields a raw instance, only a Result
// wrapping the instance or the classified failure. Classification rules are
// identical to ReturnsResult.
func ConstructsAsResult[T any](ctor func() (T, error), expected ...Expected) func() Result[T] {
	return ReturnsResult[T](expected...)(ctor)
}
