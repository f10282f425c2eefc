package printf

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

type ptrErr struct{ msg string }

func (e *ptrErr) Error() string { return e.msg }

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"no args", "plain text", nil, "plain text"},
		{"no args keeps verbs", "100%s done", nil, "100%s done"},
		{"string", "hello %s", []any{"world"}, "hello world"},
		{"error", "got %s", []any{errors.New("EOF")}, "got EOF"},
		{"stringer", "got %s", []any{stringer{}}, "got stringer"},
		{"nil", "got %s", []any{nil}, "got <nil>"},
		{"error pointer", "got %s", []any{&ptrErr{"bad"}}, "got bad"},
		{"nil error pointer", "got %s", []any{(*ptrErr)(nil)}, "got <nil>"},
		{"int", "n=%d", []any{42}, "n=42"},
		{"large int exact", "n=%d", []any{int64(9007199254740993)}, "n=9007199254740993"},
		{"float with %d", "n=%d", []any{1.5}, "n=1.5"},
		{"numeric string %d", "n=%d", []any{"7"}, "n=7"},
		{"non-numeric %d", "n=%d", []any{"x"}, "n=NaN"},
		{"integer truncates", "n=%i", []any{-2.9}, "n=-2"},
		{"float", "f=%f", []any{float32(0.5)}, "f=0.5"},
		{"json", "j=%j", []any{map[string]int{"a": 1}}, `j={"a":1}`},
		{"json fallback", "j=%j", []any{math.NaN()}, "j=NaN"},
		{"verbose", "o=%o", []any{struct{ A int }{1}}, "o={A:1}"},
		{"go syntax", "O=%O", []any{"s"}, `O="s"`},
		{"quoted", "q=%q", []any{"a b"}, `q="a b"`},
		{"percent", "100%% of %s", []any{"x"}, "100% of x"},
		{"percent without args", "100%%", nil, "100%"},
		{"missing arg left literal", "%s and %s", []any{"a"}, "a and %s"},
		{"extra args appended", "%s", []any{"a", "b", 3}, "a b 3"},
		{"unknown verb literal", "%x %s", []any{"a"}, "%x a"},
		{"trailing percent", "50%", []any{"a"}, "50% a"},
		{"bool %d", "%d", []any{true}, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.args...))
		})
	}
}
