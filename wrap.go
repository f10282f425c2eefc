// wrap.go — promoting an existing error into a typed instance.
//
// From is the counterpart of New for code that already holds an error and
// wants it classified: the error's text is kept as-is (no interpolation, no
// tag scan) and the error stays reachable through Unwrap, so errors.Is/As on
// the instance still match the original.
package typederr

// From promotes an existing error into an instance. The error's text becomes
// the template verbatim: it is not interpolated and not scanned for category
// tags. The error is kept as the cause for errors.Is / errors.As but is not
// repeated in the message. From(nil) returns nil, as does a typed nil
// pointer.
func (f *Factory) From(err error) *Instance {
	if isNilError(err) {
		return nil
	}
	e := &Instance{
		reg:        f.reg,
		template:   err.Error(),
		formatted:  err.Error(),
		cause:      err,
		quietCause: true,
		ctx:        emptyFields,
		frames:     captureStackDefault(1),
	}
	return e
}
