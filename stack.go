// stack.go — call-site capture for typed errors.
//
// Design goals:
//   - Use runtime.Callers + runtime.CallersFrames for accurate frame
//     resolution (handles inlining correctly).
//   - The first recorded frame is the caller of the public constructor;
//     the factory method and the builder never show up.
//   - Bounded depth: errors are built on failure paths, but a runaway
//     recursion should not produce a megabyte stack string.
package typederr

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr `json:"-"`
	File     string  `json:"file"`     // absolute file path (as provided by runtime)
	Line     int     `json:"line"`     // line number
	Column   int     `json:"column"`   // always 0: the Go runtime does not record columns
	Function string  `json:"function"` // fully-qualified function name
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

const (
	// defaultMaxDepth bounds the number of frames recorded per instance.
	defaultMaxDepth = 64
)

// captureStackDefault captures a stack skipping 'skip' frames above its
// caller, with the default depth bound.
//
// Skip model for a factory call:
//
//	user code → Factory.New → Factory.build → captureStackDefault → captureStack → runtime.Callers
//
// build passes skip=2 so the first frame is the user call site.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' frames above
// captureStackDefault.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	// +3: runtime.Callers, captureStack, captureStackDefault.
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

// location renders "file:line", with file made relative to base when base
// is non-empty and the path can be expressed relative to it.
func (f Frame) location(base string) string {
	file := f.File
	if base != "" {
		if rel, err := filepath.Rel(base, file); err == nil && !strings.HasPrefix(rel, "..") {
			file = rel
		}
	}
	return fmt.Sprintf("%s:%d", file, f.Line)
}

// render writes the JavaScript-style trace body used by Instance.Stack:
// one "    at Function (file:line)" line per frame.
func (s Stack) render(sb *strings.Builder, base string) {
	for _, fr := range s {
		sb.WriteString("\n    at ")
		if fr.Function != "" {
			sb.WriteString(fr.Function)
			sb.WriteString(" (")
			sb.WriteString(fr.location(base))
			sb.WriteByte(')')
			continue
		}
		sb.WriteString(fr.location(base))
	}
}
