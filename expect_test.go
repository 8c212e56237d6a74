// expect_test.go — verification of kind matching and the never-expected list.
package xgxresult

import (
	"errors"
	"fmt"
	"testing"
)

// runtimeFault provokes a genuine runtime.Error and returns it as a value.
func runtimeFault() (err error) {
	defer func() {
		err = recover().(error)
	}()
	var s []int
	_ = s[1] // out of range
	return nil
}

func TestKind_MatchesByIdentityThroughWrapping(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("not found")
	match := Kind(sentinel)

	if !match(sentinel) {
		t.Fatalf("Kind should match the sentinel itself")
	}
	if !match(fmt.Errorf("lookup: %w", sentinel)) {
		t.Fatalf("Kind should match through a wrapped chain")
	}
	if match(errors.New("not found")) {
		t.Fatalf("Kind must match identity, not message text")
	}
}

func TestKindOf_MatchesByType(t *testing.T) {
	t.Parallel()

	match := KindOf[*timeoutErr]()
	if !match(&timeoutErr{op: "dial"}) {
		t.Fatalf("KindOf should match the concrete type")
	}
	if !match(fmt.Errorf("outer: %w", &timeoutErr{op: "read"})) {
		t.Fatalf("KindOf should match through a wrapped chain")
	}
	if match(errors.New("plain")) {
		t.Fatalf("KindOf must not match a foreign type")
	}
}

func TestExpectedBy_ImplicitMode(t *testing.T) {
	t.Parallel()

	if !ExpectedBy(errors.New("ordinary")) {
		t.Fatalf("implicit mode should expect an ordinary error")
	}
	if ExpectedBy(nil) {
		t.Fatalf("nil is not a condition")
	}
	if ExpectedBy(runtimeFault()) {
		t.Fatalf("runtime faults are never expected")
	}
	if ExpectedBy(newPanic("", errors.New("x"), nil)) {
		t.Fatalf("a panic signal is never expected")
	}
	if ExpectedBy(recoveredValue{value: "bare"}) {
		t.Fatalf("a bare panic payload is never expected")
	}
}

func TestExpectedBy_ExplicitMode(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("gone")
	kinds := []Expected{Kind(sentinel), KindOf[*timeoutErr]()}

	if !ExpectedBy(fmt.Errorf("w: %w", sentinel), kinds...) {
		t.Fatalf("declared sentinel should be expected")
	}
	if !ExpectedBy(&timeoutErr{op: "dial"}, kinds...) {
		t.Fatalf("declared type should be expected")
	}
	if ExpectedBy(errors.New("undeclared"), kinds...) {
		t.Fatalf("undeclared kinds must not be expected in explicit mode")
	}
	// The never-expected list overrides any declaration.
	if ExpectedBy(runtimeFault(), append(kinds, KindOf[error]())...) {
		t.Fatalf("runtime faults stay unexpected even under a broad declaration")
	}
}

func TestNeverExpected_List(t *testing.T) {
	t.Parallel()

	if NeverExpected(nil) {
		t.Fatalf("nil is not never-expected")
	}
	if NeverExpected(errors.New("ordinary")) {
		t.Fatalf("ordinary errors are not on the list")
	}
	if !NeverExpected(runtimeFault()) {
		t.Fatalf("runtime.Error belongs to the list")
	}
	if !NeverExpected(fmt.Errorf("outer: %w", runtimeFault())) {
		t.Fatalf("list membership must hold through wrapping")
	}
	if !NeverExpected(newPanic("", nil, nil)) {
		t.Fatalf("*PanicError belongs to the list")
	}
}
