// render.go — message and stack composition.
//
// Message layout, each fragment optional and always in this order:
//
//	<formatted template>[ --Category][ (file:line)][cause]
//
// The cause fragment is ": " + cause.Error() for foreign errors. A cause
// that is itself an *Instance is rendered on its own line as "\n  ↳ msg";
// its continuation lines are indented two more spaces, so each nesting
// level shifts right.
package typederr

import (
	"strings"

	"github.com/gookit/color"
)

// Colorizer decorates an already-composed message fragment.
type Colorizer func(string) string

func plain(s string) string { return s }

// colorizers returns the styling applied to tag and location fragments.
func colorizers(on bool) (tag, loc Colorizer) {
	if !on {
		return plain, plain
	}
	return sprint(color.Cyan.Sprint), sprint(color.Gray.Sprint)
}

func sprint(fn func(...any) string) Colorizer {
	return func(s string) string { return fn(s) }
}

func (e *Instance) compose(category string, detected bool) string {
	o := e.reg.opts
	var sb strings.Builder
	sb.WriteString(e.formatted)

	if o.TypeInMessage && category != "" && !detected {
		sb.WriteByte(' ')
		sb.WriteString(e.reg.tagPaint(o.TypeTagPrefix + category))
	}
	if o.LocationInMessage && len(e.frames) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(e.reg.locPaint("(" + e.frames[0].location(e.reg.wd) + ")"))
	}
	if o.WrappedErrorInMessage && e.cause != nil && !e.quietCause {
		sb.WriteString(causeFragment(e.cause))
	}
	return sb.String()
}

func causeFragment(cause error) string {
	inst, ok := cause.(*Instance)
	if !ok {
		return ": " + cause.Error()
	}
	lines := strings.Split(inst.Message(), "\n")
	var sb strings.Builder
	sb.WriteString("\n  ↳ ")
	sb.WriteString(lines[0])
	for _, l := range lines[1:] {
		sb.WriteString("\n  ")
		sb.WriteString(l)
	}
	return sb.String()
}

func renderStack(message string, frames Stack) string {
	var sb strings.Builder
	sb.WriteString("Error: ")
	sb.WriteString(message)
	frames.render(&sb, "")
	return sb.String()
}
