// construct.go — the Instance type and the Factory constructors.
//
// Scope:
//   - Factory.New builds an instance from a printf-style template.
//   - Instance.Tag is the single transition untagged → tagged.
//
// Notes:
//   - template, args, cause and frames are fixed at construction.
//   - category and context are guarded by mu; they change at most once.
//   - Message and Stack are composed on read from the current state, so a
//     caller never observes a message that disagrees with Category/Context.
package typederr

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/xgx-io/xgx-typederr/internal/printf"
)

type tagState uint8

const (
	untagged tagState = iota
	tagged
)

// Instance is a typed error produced by a Factory.
type Instance struct {
	reg       *registry
	template  string
	args      []any
	formatted string
	cause     error
	// quietCause hides the cause from the message; set by From, where the
	// cause's text already is the message.
	quietCause bool
	frames     Stack

	mu       sync.Mutex
	state    tagState
	category string
	detected bool // category was found in the template text
	ctx      fields
}

// New builds an instance from a printf-style template (see internal/printf
// for the verbs). When the last argument is an error it is removed from args
// and becomes the wrapped cause; only the top-level argument list is
// inspected. A nil error in that position (including a typed nil pointer) is
// removed too, and the instance has no cause.
//
// If the template already contains a category tag (TypeTagPrefix followed by
// a declared name, first match in declaration order), the instance starts
// with that category set. Such an instance cannot be tagged again, and the
// tag fragment is not appended a second time. The scan is purely textual: a
// template that happens to contain "--AuthError" is classified as AuthError.
func (f *Factory) New(template string, args ...any) *Instance {
	var cause error
	if n := len(args); n > 0 {
		if err, ok := args[n-1].(error); ok {
			if !isNilError(err) {
				cause = err
			}
			args = args[:n-1]
		}
	}
	e := f.build(template, slices.Clone(args), cause)
	if name, ok := f.reg.detect(template); ok {
		e.category = name
		e.detected = true
		e.state = tagged
	}
	return e
}

// isNilError reports whether err is nil or an interface holding a nil
// pointer, map, slice, func or chan.
func isNilError(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// build assembles the immutable part of an instance. It must be called
// directly from an exported Factory method: the first recorded frame is the
// caller of that method.
func (f *Factory) build(template string, args []any, cause error) *Instance {
	e := &Instance{
		reg:      f.reg,
		template: template,
		args:     args,
		cause:    cause,
		ctx:      emptyFields,
		frames:   captureStackDefault(2), // skip build and the exported method
	}
	e.formatted = printf.Format(template, args...)
	return e
}

// Template returns the unformatted message template.
func (e *Instance) Template() string { return e.template }

// Args returns a copy of the format arguments (the wrapped cause excluded).
func (e *Instance) Args() []any { return slices.Clone(e.args) }

// Error implements error; it is the rendered message.
func (e *Instance) Error() string { return e.Message() }

// Message returns the rendered message: the formatted template followed by
// the enabled tag, location and cause fragments, in that order.
func (e *Instance) Message() string {
	category, detected := e.snapshot()
	return e.compose(category, detected)
}

// Stack returns the rendered trace: "Error: " + Message() on the first line,
// then one "    at function (file:line)" line per captured frame.
func (e *Instance) Stack() string {
	return renderStack(e.Message(), e.frames)
}

// Frames returns a copy of the captured call-site frames; the first frame is
// the code that called the Factory.
func (e *Instance) Frames() Stack { return slices.Clone(e.frames) }

// Cause returns the wrapped cause peeled off New's arguments, or nil. It is
// nil for instances built by From.
func (e *Instance) Cause() error {
	if e.quietCause {
		return nil
	}
	return e.cause
}

// Unwrap exposes the cause to errors.Is / errors.As. For instances built by
// From it is the promoted error.
func (e *Instance) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Category returns the assigned category; ok is false while the instance is
// untagged.
func (e *Instance) Category() (category string, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.category, e.state == tagged
}

// IsCategory reports whether the instance carries category. It is false for
// every category before tagging.
func (e *Instance) IsCategory(category string) bool {
	got, ok := e.Category()
	return ok && got == category
}

// Context returns a copy of the tagged context. It is empty, never nil,
// before tagging.
func (e *Instance) Context() map[string]any {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ctxToMap(e.ctx)
}

// Tag assigns the category and its context. It succeeds at most once per
// instance: later calls return *AlreadyTaggedError, whatever the category.
// Context keys must be declared by the category's schema and hold a value of
// the declared kind. On error the instance is left unchanged. The instance
// itself is always returned so calls can be chained.
func (e *Instance) Tag(category string, ctx map[string]any) (*Instance, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == tagged {
		return e, &AlreadyTaggedError{Current: e.category, Requested: category}
	}
	schema, ok := e.reg.schemas[category]
	if !ok {
		return e, &UnknownCategoryError{Category: category}
	}
	fs, err := ctxFromMap(category, schema, ctx)
	if err != nil {
		return e, err
	}
	e.category = category
	e.ctx = fs
	e.state = tagged
	return e, nil
}

// MustTag is like Tag but panics on error.
func (e *Instance) MustTag(category string, ctx map[string]any) *Instance {
	if _, err := e.Tag(category, ctx); err != nil {
		panic(err)
	}
	return e
}

func (e *Instance) snapshot() (category string, detected bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.category, e.detected
}

var (
	_ error         = (*Instance)(nil)
	_ fmt.Formatter = (*Instance)(nil)
)
