// result_test.go — verification of the Result value model and its extraction
// discipline.
package xgxresult

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// recoverPanic runs fn and returns the *PanicError it escalates with.
// Fails the test if fn returns normally or panics with anything else.
func recoverPanic(t *testing.T, fn func()) (p *PanicError) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a *PanicError escalation; fn returned normally")
		}
		var ok bool
		p, ok = r.(*PanicError)
		if !ok {
			t.Fatalf("recovered %T (%v), want *PanicError", r, r)
		}
	}()
	fn()
	return nil
}

func TestOk_Properties(t *testing.T) {
	t.Parallel()

	r := Ok(42)
	if !r.IsOk() {
		t.Fatalf("Ok(42).IsOk()=false")
	}
	if r.IsErr() {
		t.Fatalf("Ok(42).IsErr()=true")
	}
	if got := r.Unwrap(); got != 42 {
		t.Fatalf("Unwrap: want=42 got=%d", got)
	}
	if got := r.UnwrapOr(7); got != 42 {
		t.Fatalf("UnwrapOr: want=42 got=%d", got)
	}
	if got := r.UnwrapOrRaise(); got != 42 {
		t.Fatalf("UnwrapOrRaise: want=42 got=%d", got)
	}
	if r.Err() != nil {
		t.Fatalf("Ok.Err() != nil")
	}
	v, err := r.Get()
	if v != 42 || err != nil {
		t.Fatalf("Get: want=(42, nil) got=(%d, %v)", v, err)
	}
	if r.Trace() != "" {
		t.Fatalf("Ok.Trace() should be empty, got %q", r.Trace())
	}
}

func TestZeroValue_IsOkOfZero(t *testing.T) {
	t.Parallel()

	var r Result[int]
	if !r.IsOk() {
		t.Fatalf("zero Result.IsOk()=false")
	}
	if r.IsErr() {
		t.Fatalf("zero Result.IsErr()=true")
	}
	if got := r.Unwrap(); got != 0 {
		t.Fatalf("Unwrap: want=0 got=%d", got)
	}
	if r.Err() != nil {
		t.Fatalf("zero Result.Err() != nil: %v", r.Err())
	}
	if got := r.String(); got != "Ok(0)" {
		t.Fatalf("String: want=Ok(0) got=%q", got)
	}
	v, err := r.Get()
	if v != 0 || err != nil {
		t.Fatalf("Get: want=(0, nil) got=(%d, %v)", v, err)
	}

	var rs Result[string]
	if !rs.IsOk() || rs.Unwrap() != "" {
		t.Fatalf("zero Result[string]: want Ok(\"\"), got %v", rs)
	}
}

func TestErr_Properties(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := Err[int](boom)
	if r.IsOk() {
		t.Fatalf("Err.IsOk()=true")
	}
	if !r.IsErr() {
		t.Fatalf("Err.IsErr()=false")
	}
	if got := r.UnwrapErr(); got != boom {
		t.Fatalf("UnwrapErr: want=%v got=%v", boom, got)
	}
	if got := r.UnwrapOr(7); got != 7 {
		t.Fatalf("UnwrapOr: want=7 got=%d", got)
	}
	if got := r.Err(); got != boom {
		t.Fatalf("Err(): want=%v got=%v", boom, got)
	}
	v, err := r.Get()
	if v != 0 || err != boom {
		t.Fatalf("Get: want=(0, boom) got=(%d, %v)", v, err)
	}
}

func TestWrongVariant_EscalatesToPanic(t *testing.T) {
	t.Parallel()

	t.Run("Unwrap on Err", func(t *testing.T) {
		boom := errors.New("boom")
		p := recoverPanic(t, func() {
			_ = Err[string](boom).Unwrap()
		})
		if !errors.Is(p, boom) {
			t.Fatalf("panic cause chain should retain the held condition; got %v", p)
		}
		if !strings.Contains(p.Error(), "Unwrap") {
			t.Fatalf("panic message should name the misused operation: %q", p.Error())
		}
	})

	t.Run("UnwrapErr on Ok", func(t *testing.T) {
		p := recoverPanic(t, func() {
			_ = Ok("fine").UnwrapErr()
		})
		if !strings.Contains(p.Error(), "UnwrapErr") {
			t.Fatalf("panic message should name the misused operation: %q", p.Error())
		}
	})

	t.Run("Err of nil", func(t *testing.T) {
		p := recoverPanic(t, func() {
			_ = Err[int](nil)
		})
		if !strings.Contains(p.Error(), "nil") {
			t.Fatalf("panic message should mention nil: %q", p.Error())
		}
	})
}

func TestExpect_MessagesCarryThrough(t *testing.T) {
	t.Parallel()

	if got := Ok(1).Expect("should hold"); got != 1 {
		t.Fatalf("Expect on Ok: want=1 got=%d", got)
	}
	boom := errors.New("boom")
	if got := Err[int](boom).ExpectErr("should fail"); got != boom {
		t.Fatalf("ExpectErr on Err: want=boom got=%v", got)
	}

	p := recoverPanic(t, func() {
		_ = Err[int](boom).Expect("record must load")
	})
	if !strings.Contains(p.Error(), "record must load") {
		t.Fatalf("Expect escalation should carry the caller message: %q", p.Error())
	}
	p = recoverPanic(t, func() {
		_ = Ok(1).ExpectErr("must have failed")
	})
	if !strings.Contains(p.Error(), "must have failed") {
		t.Fatalf("ExpectErr escalation should carry the caller message: %q", p.Error())
	}
}

func TestMatch_DispatchesOnVariant(t *testing.T) {
	t.Parallel()

	got := Match(Ok(3),
		func(v int) string { return fmt.Sprintf("ok=%d", v) },
		func(err error) string { return "err=" + err.Error() },
	)
	if got != "ok=3" {
		t.Fatalf("Match(Ok): got %q", got)
	}

	got = Match(Err[int](errors.New("boom")),
		func(v int) string { return fmt.Sprintf("ok=%d", v) },
		func(err error) string { return "err=" + err.Error() },
	)
	if got != "err=boom" {
		t.Fatalf("Match(Err): got %q", got)
	}
}

type timeoutErr struct{ op string }

func (e *timeoutErr) Error() string { return e.op + " timed out" }

func TestErrAs_MatchesPayloadKind(t *testing.T) {
	t.Parallel()

	r := Err[int](fmt.Errorf("fetch: %w", &timeoutErr{op: "dial"}))
	te, ok := ErrAs[*timeoutErr](r)
	if !ok {
		t.Fatalf("ErrAs should match the wrapped kind")
	}
	if te.op != "dial" {
		t.Fatalf("ErrAs payload: want op=dial got=%q", te.op)
	}

	if _, ok := ErrAs[*timeoutErr](Ok(1)); ok {
		t.Fatalf("ErrAs on Ok must not match")
	}
	if _, ok := ErrAs[*timeoutErr](Err[int](errors.New("other"))); ok {
		t.Fatalf("ErrAs should not match a foreign kind")
	}
}

func TestResult_StringAndFormat(t *testing.T) {
	t.Parallel()

	if got := Ok(1).String(); got != "Ok(1)" {
		t.Fatalf("String(Ok): got %q", got)
	}
	if got := Err[int](errors.New("boom")).String(); got != "Err(boom)" {
		t.Fatalf("String(Err): got %q", got)
	}
	if got := fmt.Sprintf("%v", Ok("x")); got != "Ok(x)" {
		t.Fatalf("%%v: got %q", got)
	}
	if got := fmt.Sprintf("%q", Ok("x")); got != `"Ok(x)"` {
		t.Fatalf("%%q: got %q", got)
	}
}

func TestFrom_AdoptsPairs(t *testing.T) {
	t.Parallel()

	if r := From(5, nil); !r.IsOk() || r.Unwrap() != 5 {
		t.Fatalf("From(5, nil): got %v", r)
	}
	boom := errors.New("boom")
	if r := From(0, boom); !r.IsErr() || r.UnwrapErr() != boom {
		t.Fatalf("From(0, boom): got %v", r)
	}
}
