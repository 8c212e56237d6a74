// cause.go — cause-chain predicates and traversal for xgx-result core.
//
// Scope:
//   - Zero-policy helpers that answer common classification questions about
//     conditions flowing through this library.
//   - Interop-first: traversal rides on Unwrap() error, so stdlib errors.Is/As
//     observe the same chains. Chains here are linear by construction — a
//     boundary yields exactly one Result or one Panic, never a join — so no
//     multi-unwrap machinery is needed.
package xgxresult

import (
	"errors"
)

// IsPanic reports whether err is (or wraps) the unrecoverable panic signal.
func IsPanic(err error) bool {
	if err == nil {
		return false
	}
	var pe *PanicError
	return errors.As(err, &pe)
}

// Cause returns the original condition behind err: the deepest error in its
// unwrap chain. For a *PanicError this is the unexpected condition that was
// classified; for an unwrapped error it is err itself. Nil-safe.
func Cause(err error) error {
	if err == nil {
		return nil
	}
	for {
		u := errors.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
}

// CauseChain returns err followed by each unwrapped ancestor down to the
// original condition, outermost first. Nil yields nil.
func CauseChain(err error) []error {
	if err == nil {
		return nil
	}
	chain := make([]error, 0, 4)
	for err != nil {
		chain = append(chain, err)
		err = errors.Unwrap(err)
	}
	return chain
}

// Has reports whether target appears anywhere in err's unwrap chain.
// It wraps errors.Is with nil-safety.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}
