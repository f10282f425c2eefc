// typed_field.go — optional, type-safe readers for context fields.
//
// Overview
//   TypedField gives call sites typed access to a context key without
//   asserting on map[string]any themselves. It reads the first typed
//   instance in an error chain, so it works on wrapped errors too.
//
// Usage
//   var FTable = typederr.Field[string]("table")
//
//   if table, ok := FTable.Get(err); ok { ... }
//
// Caveats
//   • Numbers are stored as float64 (see context.go): use Field[float64].
//   • The stored dynamic type must match T exactly; no conversions are made.
package typederr

import (
	"fmt"
)

// TypedField reads one context key as T.
type TypedField[T any] struct {
	key string
}

// Field constructs a TypedField[T] for key.
func Field[T any](key string) TypedField[T] {
	return TypedField[T]{key: key}
}

// Key returns the underlying context key.
func (f TypedField[T]) Key() string { return f.key }

// Get returns the value stored under the key by the first typed instance in
// err's chain. ok is false if there is no instance, the key is absent, or
// the value is not a T.
func (f TypedField[T]) Get(err error) (T, bool) {
	var zero T
	v, ok := f.lookup(err)
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet is like Get but panics when the value is missing or of the wrong
// type. Intended for tests and for code where absence is a bug.
func (f TypedField[T]) MustGet(err error) T {
	var zero T
	v, ok := f.lookup(err)
	if !ok {
		panic(fmt.Errorf("typederr.TypedField[%T](%q): field missing", zero, f.key))
	}
	tv, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("typederr.TypedField[%T](%q): wrong dynamic type (%T)", zero, f.key, v))
	}
	return tv
}

func (f TypedField[T]) lookup(err error) (any, bool) {
	inst := firstInstance(err)
	if inst == nil {
		return nil, false
	}
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return inst.ctx.lookup(f.key)
}
