// expect.go — declared expectation sets for xgx-result core.
//
// Scope:
//   - Expected is the capability "does this condition match a declared kind".
//     Kinds are what Go has instead of an exception hierarchy: sentinel
//     identities (errors.Is) and error types (errors.As).
//   - A boundary's expectation set is the variadic ...Expected list attached
//     at wrap time; it is immutable for the lifetime of the wrapper. An empty
//     list selects implicit mode (see kinds.go for the never-expected list).
//
// Interop:
//   - Matching traverses wrapped chains with the stdlib's own rules, so
//     subtype specificity behaves exactly like a native errors.Is/As call at
//     the raise site. Declaration order does not affect correctness.
package xgxresult

import (
	"errors"
)

// Expected reports whether a condition matches one declared kind.
type Expected func(error) bool

// Kind declares an expected condition by identity: any condition for which
// errors.Is(err, target) holds matches.
//
//	xgxresult.Kind(io.ErrUnexpectedEOF)
func Kind(target error) Expected {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

// KindOf declares an expected condition by type: any condition whose chain
// contains a value assignable to E matches.
//
//	xgxresult.KindOf[*fs.PathError]()
func KindOf[E error]() Expected {
	return func(err error) bool {
		var target E
		return errors.As(err, &target)
	}
}

// ExpectedBy reports how the classification policy would judge err at a
// boundary declaring the given kinds: true means Err, false means Panic.
// An empty kind list selects implicit mode. Conditions on the never-expected
// list are refused in both modes.
func ExpectedBy(err error, expected ...Expected) bool {
	if err == nil {
		return false
	}
	if NeverExpected(err) {
		return false
	}
	if len(expected) == 0 {
		return true
	}
	for _, match := range expected {
		if match(err) {
			return true
		}
	}
	return false
}
