// context.go — immutable, schema-checked context for typed errors.
//
// Design:
//   • Internal representation: []field sorted by key (deterministic output
//     for %+v, JSON and log encoders regardless of map iteration order).
//   • Built once at tag time and replaced wholesale; never mutated in place.
//   • Public view for callers: copy-on-read map[string]any.
//
// Numbers are normalized to float64 when stored, so the value a caller reads
// back is the same whether it came from Tag or from decoding JSON output.
// NaN and ±Inf are rejected: JSON cannot carry them.
package typederr

import (
	"math"
	"reflect"
	"slices"
	"strings"
)

// field is a single context key/value pair.
type field struct {
	Key string
	Val any
}

// fields is the internal immutable representation of context.
type fields []field

// emptyFields is the canonical empty context.
var emptyFields = make(fields, 0)

// ctxFromMap validates m against schema and returns the sorted, normalized
// fields. The category name is only used for error reporting.
func ctxFromMap(category string, schema Schema, m map[string]any) (fields, error) {
	if len(m) == 0 {
		return emptyFields, nil
	}
	out := make(fields, 0, len(m))
	for k, v := range m {
		want, ok := schema[k]
		if !ok {
			return nil, &MalformedContextError{Category: category, Key: k, Got: v}
		}
		if !want.Accepts(v) {
			return nil, &MalformedContextError{Category: category, Key: k, Want: want, Got: v}
		}
		nv := normalize(want, v)
		if f, ok := nv.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			return nil, &MalformedContextError{Category: category, Key: k, Want: want, Got: v}
		}
		out = append(out, field{Key: k, Val: nv})
	}
	slices.SortFunc(out, func(a, b field) int { return strings.Compare(a.Key, b.Key) })
	return out, nil
}

func normalize(k Kind, v any) any {
	if k != KindNumber {
		return v
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	case rv.CanFloat():
		return rv.Float()
	}
	return v
}

// ctxToMap creates a NEW map from fields (copy-on-read). It never returns
// nil so callers can index and range without checks.
func ctxToMap(fs fields) map[string]any {
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}

// lookup returns the value stored under key.
func (fs fields) lookup(key string) (any, bool) {
	i, ok := slices.BinarySearchFunc(fs, key, func(f field, k string) int { return strings.Compare(f.Key, k) })
	if !ok {
		return nil, false
	}
	return fs[i].Val, true
}
