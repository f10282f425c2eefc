package typederr

import (
	"encoding/json"
)

// instanceJSON is the serialized shape of an Instance. Type is null while
// the instance is untagged.
type instanceJSON struct {
	Name    string         `json:"name"`
	Type    *string        `json:"type"`
	Message string         `json:"message"`
	Context map[string]any `json:"context"`
	Stack   Stack          `json:"stack"`
}

func (e *Instance) toJSON() instanceJSON {
	e.mu.Lock()
	category, isTagged, detected, ctx := e.category, e.state == tagged, e.detected, e.ctx
	e.mu.Unlock()

	out := instanceJSON{
		Name:    e.reg.opts.Name,
		Message: e.compose(category, detected),
		Context: ctxToMap(ctx),
		Stack:   e.frames,
	}
	if isTagged {
		out.Type = &category
	}
	if out.Stack == nil {
		out.Stack = Stack{}
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (e *Instance) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.toJSON())
}

// JSON renders the instance as a JSON object with name, type, message,
// context and the structured stack frames. pretty selects two-space
// indentation.
func (e *Instance) JSON(pretty bool) (string, error) {
	var (
		b   []byte
		err error
	)
	if pretty {
		b, err = json.MarshalIndent(e.toJSON(), "", "  ")
	} else {
		b, err = json.Marshal(e.toJSON())
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var _ json.Marshaler = (*Instance)(nil)
