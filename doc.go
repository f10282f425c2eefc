// doc.go — package documentation for typederr
//
// Package typederr builds typed errors from a closed set of categories. A
// Factory is configured once with the categories an application uses, each
// with an optional context schema, and then produces *Instance values that
// carry a category, a schema-checked context, a formatted message, an
// optional wrapped cause and the call site that created them.
//
//	var Errs = typederr.MustNew([]typederr.Definition{
//		typederr.Define("DBError", typederr.Schema{"table": typederr.KindString}),
//		typederr.Define("AuthError", nil),
//	}, typederr.WithTypeInMessage(true))
//
//	err := Errs.New("query %s failed", "users", cause).
//		MustTag("DBError", map[string]any{"table": "users"})
//
//	Errs.Is(err)              // true
//	Errs.Is(err, "AuthError") // false
//	err.IsCategory("DBError") // true
//
// # Categories
//
// Categories are declared in order. Every Factory also has the catch-all
// CategoryUnknown ("UnknownError"), appended unless it was declared
// explicitly. Declaring it yourself is how you give it a schema.
//
// # Tagging
//
// An instance starts untagged: Category reports ok=false, Context is empty
// and JSON output has "type": null. Tag sets category and context together,
// once:
//
//	+---------------------------+-------------------------------------------+
//	| Call                      | Result                                    |
//	+---------------------------+-------------------------------------------+
//	| Tag on untagged instance  | category + context set, message re-rendered |
//	| Tag a second time         | *AlreadyTaggedError, instance unchanged   |
//	| Tag("NoSuchCategory", …)  | *UnknownCategoryError                     |
//	| undeclared key / bad kind | *MalformedContextError                    |
//	+---------------------------+-------------------------------------------+
//
// A template that already contains a category tag ("--DBError" with the
// default prefix) starts out tagged with that category. The scan is purely
// textual, so incidental text that looks like a tag classifies the error.
//
// # Messages
//
// The message is composed on every read, so it always reflects the current
// category and context:
//
//	<formatted template>[ --Category][ (file:line)][cause]
//
// Each fragment is governed by an option (WithTypeInMessage,
// WithLocationInMessage, WithWrappedErrorInMessage). A foreign cause is
// appended as ": cause"; a cause that is itself an *Instance goes on its own
// indented "↳" line, one level deeper per nesting. WithColor styles the tag
// and location fragments for terminals.
//
// The trailing error argument of New is never interpolated:
//
//	Errs.New("msg %s", "x", io.EOF) // message "msg x: EOF", Cause() == io.EOF
//
// # Interop
//
//   - Unwrap returns the cause, so errors.Is/As see through instances.
//   - Factory.Is, CategoryOf, ContextOf and TypedField look through
//     fmt.Errorf("%w") and errors.Join wrapping. Factory.Is checks the
//     category of the nearest instance of its own registry only.
//   - *Instance implements fmt.Formatter (%+v is verbose), json.Marshaler and
//     zapcore.ObjectMarshaler.
//
// # Concurrency
//
// A Factory is immutable after New and safe to share. Each instance guards
// its own category and context; concurrent Tag calls on one instance are
// serialized and exactly one of them succeeds.
package typederr
