// kinds.go — the fixed never-expected condition kinds for xgx-result core.
//
// Intent:
//   - Implicit mode treats any error as expected EXCEPT the kinds listed
//     here. These are the Go counterparts of language- and system-level
//     failures: conditions that indicate a programming defect rather than a
//     domain outcome, and that no boundary should convert into a typed value.
//   - The list is fixed. Projects declare extra EXPECTED kinds per boundary;
//     they do not extend the never-expected set.
//
// Mapping notes:
//   - runtime.Error covers nil dereferences, index/slice bounds faults,
//     failed type assertions, map misuse and integer division faults — the
//     analogs of attribute/name/type/syntax-level errors elsewhere.
//   - Out-of-memory is not listed because the Go runtime aborts the process
//     before any classification could run.
//   - recoveredValue (a non-error panic payload) is never an expected domain
//     outcome; raising a bare value is itself a defect.
//   - *PanicError appears for completeness: classification refuses it here,
//     and the boundary machinery additionally propagates an in-flight panic
//     unchanged before the expectation check runs.
package xgxresult

import (
	"errors"
	"runtime"
)

// neverExpectedKinds is the ordered, fixed set of refusals applied in both
// implicit and explicit mode. Unexported to keep the set truly fixed; order
// is stable to minimize churn in docs.
var neverExpectedKinds = []Expected{
	isRuntimeError,
	isPanicSignal,
	isRecoveredValue,
}

func isRuntimeError(err error) bool {
	var rte runtime.Error
	return errors.As(err, &rte)
}

func isPanicSignal(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}

func isRecoveredValue(err error) bool {
	var rv recoveredValue
	return errors.As(err, &rv)
}

// NeverExpected reports whether err is on the fixed never-expected list and
// therefore escalates to Panic at every boundary, regardless of the declared
// expectation set.
func NeverExpected(err error) bool {
	if err == nil {
		return false
	}
	for _, refuse := range neverExpectedKinds {
		if refuse(err) {
			return true
		}
	}
	return false
}
