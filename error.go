// error.go — the contract-violation errors returned by typederr itself.
//
// Every failure is synchronous and local to the misuse site. Each concrete
// type unwraps to a package sentinel so callers can branch with errors.Is:
//
//	if _, err := inst.Tag("DBError", ctx); errors.Is(err, typederr.ErrAlreadyTagged) { ... }
//
// Use errors.As with the concrete type when the details matter.
package typederr

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration reports invalid definitions or options passed to New.
	ErrConfiguration = errors.New("typederr: invalid configuration")
	// ErrAlreadyTagged reports a second Tag call on an instance.
	ErrAlreadyTagged = errors.New("typederr: category already set")
	// ErrUnknownCategory reports a category outside the registry's set.
	ErrUnknownCategory = errors.New("typederr: unknown category")
	// ErrMalformedContext reports context values that do not fit the schema.
	ErrMalformedContext = errors.New("typederr: malformed context")
)

// ConfigurationError describes why a registry could not be built.
type ConfigurationError struct {
	Field  string // offending definition or option
	Reason string
	Err    error // optional underlying decode error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", ErrConfiguration, e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the decode error, if any.
func (e *ConfigurationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConfiguration}
	}
	return []error{ErrConfiguration, e.Err}
}

// AlreadyTaggedError is returned when Tag is called on an instance whose
// category is already set. Current is the category the instance keeps.
type AlreadyTaggedError struct {
	Current   string
	Requested string
}

func (e *AlreadyTaggedError) Error() string {
	return fmt.Sprintf("%s: have %q, requested %q", ErrAlreadyTagged, e.Current, e.Requested)
}

func (e *AlreadyTaggedError) Unwrap() error { return ErrAlreadyTagged }

// UnknownCategoryError is returned for a category name the registry does not
// declare.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownCategory, e.Category)
}

func (e *UnknownCategoryError) Unwrap() error { return ErrUnknownCategory }

// MalformedContextError is returned when a context key is not declared by the
// category's schema, or its value is of the wrong kind.
type MalformedContextError struct {
	Category string
	Key      string
	Want     Kind // zero when the key is undeclared
	Got      any
}

func (e *MalformedContextError) Error() string {
	if e.Want == 0 {
		return fmt.Sprintf("%s: %s has no field %q", ErrMalformedContext, e.Category, e.Key)
	}
	return fmt.Sprintf("%s: %s.%s wants %s, got %T", ErrMalformedContext, e.Category, e.Key, e.Want, e.Got)
}

func (e *MalformedContextError) Unwrap() error { return ErrMalformedContext }

var (
	_ error = (*ConfigurationError)(nil)
	_ error = (*AlreadyTaggedError)(nil)
	_ error = (*UnknownCategoryError)(nil)
	_ error = (*MalformedContextError)(nil)
)
