// doc.go — package documentation for xgx-result
//
// Package xgxresult provides a discriminated success/failure value type
// (Result[T]) together with boundary wrappers that convert ordinary
// (T, error)-shaped and panicking Go functions into Result-returning ones,
// and a normalization policy that maps every condition not declared
// "expected" into a single unrecoverable failure signal (*PanicError).
// It is designed to be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter)
//   - Policy-free (no HTTP/logging/retry rules in core)
//
// # Expected vs Unexpected
//
// xgxresult separates **expected** conditions (recoverable, returned to the
// caller as a typed Err value) from **unexpected** ones (unrecoverable,
// escalated as a *PanicError that unwinds to the process boundary). The
// boundary wrappers declare which kinds are expected:
//
//   - NoExcept(fn):
//     Nothing is expected. Any error or panic escaping fn becomes a
//     *PanicError. Callers receive the raw value on success.
//   - ReturnsResult[T](kinds...)(fn) / Do(fn, kinds...):
//     Conditions matching one of the declared kinds become Err; everything
//     else becomes a *PanicError. With no kinds declared, any error is
//     expected except the fixed never-expected set (see kinds.go).
//
// Typical patterns:
//
//	fetch := xgxresult.ReturnsResult[string](
//	    xgxresult.Kind(io.ErrUnexpectedEOF),
//	    xgxresult.KindOf[*fs.PathError](),
//	)(func() (string, error) { return readBody(url) })
//
//	res := fetch()
//	if res.IsErr() {
//	    return res.UnwrapErr()
//	}
//
// # When Are Stacks Captured?
//
// Stacks are captured deliberately at classification boundaries so diagnostic
// traces survive the raise-to-value conversion.
//
//	+-------------------------------+-------------------+-------------------------------+
//	| Operation                     | Captures stack?   | Rationale                     |
//	+-------------------------------+-------------------+-------------------------------+
//	| Ok(v) / Err(err)              | NO                | Cheap construction by hand    |
//	| Boundary converts an error    | YES (conversion)  | Raise site already unwound    |
//	| Boundary recovers a panic     | YES (raise site)  | Frames still live in recover  |
//	| Result misuse (Unwrap on Err) | YES               | Misuse is a raise site        |
//	| UnwrapOrRaise on Err          | carries original  | Re-raise must not lose trace  |
//	+-------------------------------+-------------------+-------------------------------+
//
// Guidance:
//   - Traces printed via Trace() or %+v elide the library's own conversion
//     frames and runtime unwinding frames; only caller-relevant frames and
//     the original raise site remain.
//
// # Panic Is Final
//
// A *PanicError is never wrapped in Err and never re-classified: once a
// condition has been judged unexpected, every enclosing boundary propagates
// it unchanged. The library offers no catch API for it. Defer Hook() at the
// top of main to have an uncaught *PanicError rendered with its filtered
// trace before the process exits.
//
//	func main() {
//	    defer xgxresult.Hook()
//	    run()
//	}
//
// # Re-Raising
//
// UnwrapOrRaise is the designed equivalent of early-return error propagation:
// on Err it re-raises the held condition as if it had been raised natively at
// that point, preserving the original trace. The nearest enclosing boundary
// applies its own classification to the condition exactly as if the body had
// returned it there. On Ok it returns the value with no side effects.
//
// # Interop
//
//   - Kind matching uses errors.Is; KindOf uses errors.As, so declared kinds
//     match through wrapped chains with the stdlib's own specificity rules.
//   - *PanicError implements Unwrap() error; the cause chain down to the
//     original condition is retained and traversable with errors.Is/As.
//   - From(v, err) adopts an ordinary (T, error) pair as a Result without
//     boundary classification, for plumbing between styles.
//
// # Minimal Surface, Clear Semantics
//
// The v1 surface is intentionally small:
//   - Ok / Err / From
//   - IsOk / IsErr / Unwrap / UnwrapErr / Expect / ExpectErr / UnwrapOr /
//     UnwrapOrRaise / Get / Match / ErrAs
//   - NoExcept / ReturnsResult / Do / DoResult / ConstructsAsResult
//   - GatherResult / Capture
//   - Kind / KindOf / ExpectedBy / NeverExpected
//   - Hook / InstallHook
//
// Logging adapters live outside core; see the resultlog subpackage for a
// zerolog-based panic logging scope.
package xgxresult
