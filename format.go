// format.go — fmt.Formatter for typed instances.
//
// Behavior:
//
//   %s, %v   → Message().
//   %q       → quoted Message().
//   %+v      → verbose, multi-line:
//                type=<category|-> msg="<formatted template>"
//                ctx: key1=val1 key2=val2 ...
//                cause: <recursively formatted with %+v>
//                stack:
//                  funcA file.go:123
//                  funcB other.go:45
//
// The verbose form prints the formatted template rather than the composed
// message: tag, location and cause each get their own line already.
package typederr

import (
	"fmt"
	"io"
)

// unsetType is printed for untagged instances in verbose output.
const unsetType = "-"

func (e *Instance) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Message())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Message())
	default:
		_, _ = io.WriteString(s, e.Message())
	}
}

func (e *Instance) formatVerbose(w io.Writer) {
	e.mu.Lock()
	category, ctx := e.category, e.ctx
	e.mu.Unlock()

	if category == "" {
		category = unsetType
	}
	_, _ = fmt.Fprintf(w, "type=%s msg=%q", category, e.formatted)

	if len(ctx) > 0 {
		_, _ = io.WriteString(w, "\nctx:")
		for _, f := range ctx {
			_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
		}
	}

	if e.cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", e.cause)
	}

	if len(e.frames) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range e.frames {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}
