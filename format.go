// format.go — diagnostic rendering for xgx-result core.
//
// Behavior:
//
//   message-only view → the condition's own Error() string.
//   trace view        → filtered frames (caller-relevant only), most recent
//                       call last, followed by the message-only line:
//
//	  trace (most recent call last):
//	    main.load /src/app/load.go:42
//	    main.run /src/app/main.go:17
//	  open /etc/app.conf: no such file or directory
//
// Rationale:
//   - Keep core free of logging policy; only strings and fmt.Formatter.
//   - Frames belonging to the conversion machinery and the runtime are elided
//     here, at render time; stored stacks stay raw (see stack.go).
//   - Most-recent-call-last matches how a reader follows a failure from entry
//     point down to the raise site.
package xgxresult

import (
	"fmt"
	"io"
	"strings"
)

// FormatError returns the message-only view of a condition. Nil-safe.
func FormatError(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}

// renderTrace produces the trace view: filtered frames then the message-only
// line. With no caller-relevant frames it degrades to the message alone.
func renderTrace(stk Stack, err error) string {
	frames := stk.Filtered()
	if len(frames) == 0 {
		return FormatError(err)
	}
	sb := &strings.Builder{}
	sb.WriteString("trace (most recent call last):\n")
	for i := len(frames) - 1; i >= 0; i-- {
		fr := frames[i]
		fmt.Fprintf(sb, "  %s %s:%d\n", fr.Function, fr.File, fr.Line)
	}
	sb.WriteString(FormatError(err))
	return sb.String()
}

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// Format implements fmt.Formatter for PanicError.
//   %v, %s  → concise Error() form.
//   %+v     → Error() plus cause chain and the filtered trace.
//   %q      → quoted Error().
func (p *PanicError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatConcise(s, p)
			if p.cause != nil {
				_, _ = fmt.Fprintf(s, "\ncause: %+v", p.cause)
			}
			if frames := p.stack.Filtered(); len(frames) > 0 {
				_, _ = io.WriteString(s, "\nstack:")
				for _, fr := range frames {
					_, _ = fmt.Fprintf(s, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
				}
			}
			return
		}
		formatConcise(s, p)
	case 's':
		formatConcise(s, p)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", p.Error())
	default:
		formatConcise(s, p)
	}
}
