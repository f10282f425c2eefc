package typederr

import (
	"go.uber.org/zap/zapcore"
)

// MarshalLogObject implements zapcore.ObjectMarshaler so an instance can be
// logged as a structured field:
//
//	logger.Error("query failed", zap.Object("error", inst))
//
// Context values keep their kinds; the cause is logged by its Error text.
func (e *Instance) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	e.mu.Lock()
	category, isTagged, detected, ctx := e.category, e.state == tagged, e.detected, e.ctx
	e.mu.Unlock()

	enc.AddString("name", e.reg.opts.Name)
	if isTagged {
		enc.AddString("type", category)
	}
	enc.AddString("message", e.compose(category, detected))

	if len(ctx) > 0 {
		if err := enc.AddObject("context", logFields(ctx)); err != nil {
			return err
		}
	}
	if e.cause != nil {
		enc.AddString("cause", e.cause.Error())
	}
	if len(e.frames) > 0 {
		return enc.AddArray("stack", logStack(e.frames))
	}
	return nil
}

type logFields fields

func (fs logFields) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for _, f := range fs {
		switch v := f.Val.(type) {
		case string:
			enc.AddString(f.Key, v)
		case float64:
			enc.AddFloat64(f.Key, v)
		case bool:
			enc.AddBool(f.Key, v)
		default:
			if err := enc.AddReflected(f.Key, v); err != nil {
				return err
			}
		}
	}
	return nil
}

type logStack Stack

func (s logStack) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, fr := range s {
		enc.AppendString(fr.Function + " " + fr.location(""))
	}
	return nil
}

var (
	_ zapcore.ObjectMarshaler = (*Instance)(nil)
	_ zapcore.ObjectMarshaler = logFields(nil)
	_ zapcore.ArrayMarshaler  = logStack(nil)
)
