// kinds.go — schema value kinds and the implicit catch-all category.
//
// Intent:
//   - A category's context schema maps field names to one of three kinds.
//   - The catch-all category is always part of a registry's closed set.
//
// Conventions (documented, not enforced here):
//   - Category names are PascalCase and end in "Error" (DBError, AuthError).
//   - Schema keys are lowerCamel or snake_case; the core does not care.
package typederr

import (
	"fmt"
	"slices"
	"strings"
)

// Kind is the declared value kind of a context field.
type Kind uint8

const (
	// KindString accepts Go strings.
	KindString Kind = iota + 1
	// KindNumber accepts every Go integer and floating point type.
	KindNumber
	// KindBool accepts Go bools.
	KindBool
)

// CategoryUnknown is the implicit catch-all category present in every
// registry. A caller may declare it explicitly to give it a schema.
const CategoryUnknown = "UnknownError"

var kindNames = map[Kind]string{
	KindString: "string",
	KindNumber: "number",
	KindBool:   "boolean",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the three declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps "string", "number" and "boolean" (case-insensitive, "bool"
// accepted) to their Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string":
		return KindString, nil
	case "number":
		return KindNumber, nil
	case "boolean", "bool":
		return KindBool, nil
	}
	return 0, fmt.Errorf("unknown schema kind %q", s)
}

// Accepts reports whether v is a value of kind k.
func (k Kind) Accepts(v any) bool {
	switch k {
	case KindString:
		_, ok := v.(string)
		return ok
	case KindBool:
		_, ok := v.(bool)
		return ok
	case KindNumber:
		switch v.(type) {
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			return true
		}
	}
	return false
}

// Schema maps context field names to their kinds.
type Schema map[string]Kind

// Keys returns the schema keys in sorted order.
func (s Schema) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s Schema) clone() Schema {
	out := make(Schema, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
