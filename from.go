// from.go — adopting ordinary Go errors into the Result model.
//
// Purpose
//   - Convert idiomatic (T, error) pairs into Result values WITHOUT running
//     the classification policy: From is plumbing between styles, not a
//     boundary. An error adopted here is the caller's stated failure, however
//     unexpected it might look to a boundary.
//   - Stay policy-free: no stack capture, no kind checks, no logging.
//
// Use a boundary (Do / ReturnsResult) when classification and trace capture
// are wanted; use From when gluing Result-based code onto an API that already
// returns (T, error).
package xgxresult

// From adopts a conventional (T, error) pair as a Result:
//
//	res := xgxresult.From(os.Open(path))
//
// A nil error yields Ok(v); a non-nil error yields Err(err) with no trace.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}
