// option.go — presence/absence companion to the Result model.
//
// Option[T] is a tagged value that either holds a T (Some) or nothing (None).
// It follows the same extraction discipline as Result: querying the wrong
// variant escalates to *PanicError, never a sentinel.
package xgxresult

import (
	"fmt"
)

// Option is either Some value of type T or None. The zero value is None.
type Option[T any] struct {
	val  T
	some bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{val: v, some: true}
}

// None returns the empty Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// Unwrap returns the held value. On None it escalates to *PanicError.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(newPanic("called Unwrap on None", nil, captureStackDefault(0)))
	}
	return o.val
}

// UnwrapOr returns the held value, or alt on None. It never escalates.
func (o Option[T]) UnwrapOr(alt T) T {
	if !o.some {
		return alt
	}
	return o.val
}

// Get deconstructs o into the conventional (T, ok) pair.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.some
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.val)
	}
	return "None"
}
