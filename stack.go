// stack.go — stack capture and boundary-frame filtering for xgx-result core.
//
// Design goals:
//   - Interop & correctness: use runtime.Callers + runtime.CallersFrames for
//     accurate frame resolution (handles inlining correctly).
//   - Capture the originating trace at the moment of classification: inside a
//     deferred recover the panicking frames are still on the goroutine stack,
//     so the raise site is preserved across the conversion to a value.
//   - Filtering, not policy: stored stacks are raw; the conversion machinery's
//     own frames and runtime unwinding frames are elided at render time only.
package xgxresult

import (
	"runtime"
	"strings"
)

// Frame represents a single call site in a captured trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

const (
	// defaultMaxDepth is a conservative bound that captures meaningful
	// context without excessive work on exceptional paths.
	defaultMaxDepth = 64
)

// captureStackDefault captures a stack skipping 'skip' frames, with a
// conservative default depth bound.
//
// The skip parameter is *additional* to the internal helpers; captureStack
// adds +3 so the first recorded frame sits at (or very near) the call site of
// the capturing function. Capture sites inside this package are elided at
// render time anyway, so skip accounting only has to be approximately right.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames.
// It returns a resolved Stack with file, line, and function names.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	// Skip accounting:
	//   • +1 for runtime.Callers itself
	//   • +1 for captureStack
	//   • +1 for captureStackDefault
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)

	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// modulePath anchors the internal-frame test. Frames are only considered
// library-internal when their function lives under this path, so user code
// that happens to use the same file names is never filtered.
const modulePath = "github.com/xgx-io/xgx-result"

// conversionFiles are the source files that make up the raise-to-value
// machinery. Frames defined in them carry no caller-relevant information.
var conversionFiles = map[string]struct{}{
	"boundary.go": {},
	"classify.go": {},
	"gather.go":   {},
	"option.go":   {},
	"panic.go":    {},
	"result.go":   {},
	"stack.go":    {},
}

// internalFrame reports whether fr belongs to the conversion/decoration layer
// itself or to the runtime's unwinding machinery.
func internalFrame(fr Frame) bool {
	if strings.HasPrefix(fr.Function, "runtime.") {
		return true
	}
	if !strings.HasPrefix(fr.Function, modulePath+".") {
		return false
	}
	_, ok := conversionFiles[baseName(fr.File)]
	return ok
}

// baseName is a minimal filepath.Base over slash-separated runtime paths.
// runtime file names use forward slashes on every platform.
func baseName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Filtered returns the caller-relevant view of s: all frames belonging to the
// library's own boundary machinery and the runtime are dropped, leaving only
// caller frames and the original raise site. The receiver is not modified.
func (s Stack) Filtered() Stack {
	if len(s) == 0 {
		return nil
	}
	out := make(Stack, 0, len(s))
	for _, fr := range s {
		if internalFrame(fr) {
			continue
		}
		out = append(out, fr)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
