// unwrap_test.go — verification of Walk / Instances semantics.
package typederr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ---------- helpers -----------------------------------------------------------

type leafErr struct{ s string }

func (e leafErr) Error() string { return e.s }

// pointer-typed single wrapper (good for cycles & identity checks)
type wrap1 struct{ cause error }

func (w *wrap1) Error() string { return "single" }
func (w *wrap1) Unwrap() error { return w.cause }

type myJoin struct{ kids []error }

func (j *myJoin) Error() string        { return "join" }
func (j *myJoin) Unwrap() []error      { return j.kids }
func mkJoin(children ...error) *myJoin { return &myJoin{kids: children} }

// non-comparable error (slice field) to exercise the acyclic fallback
type sliceErr struct{ parts []string }

func (e sliceErr) Error() string { return "slice" }

// ---------- tests: Walk -------------------------------------------------------

func TestWalk_NilIsNoop(t *testing.T) {
	t.Parallel()

	called := false
	Walk(nil, func(error) bool { called = true; return true })
	assert.False(t, called, "visit called for nil error")
	assert.NotPanics(t, func() { Walk(leafErr{"x"}, nil) })
}

func TestWalk_PreOrderLeftToRight(t *testing.T) {
	t.Parallel()

	a, b, c := leafErr{"a"}, leafErr{"b"}, leafErr{"c"}
	root := mkJoin(&wrap1{cause: a}, mkJoin(b, nil, c))

	var got []string
	Walk(root, func(e error) bool {
		got = append(got, e.Error())
		return true
	})
	want := []string{"join", "single", "a", "join", "b", "c"}
	assert.Equal(t, want, got)
}

func TestWalk_StopsEarly(t *testing.T) {
	t.Parallel()

	n := 0
	Walk(mkJoin(leafErr{"a"}, leafErr{"b"}, leafErr{"c"}), func(error) bool {
		n++
		return n < 2
	})
	assert.Equal(t, 2, n)
}

func TestWalk_SurvivesCycles(t *testing.T) {
	t.Parallel()

	w := &wrap1{}
	w.cause = w
	n := 0
	Walk(w, func(error) bool { n++; return true })
	assert.Equal(t, 1, n, "cycle visited more than once")
}

func TestWalk_NonComparableDynamicType(t *testing.T) {
	t.Parallel()

	n := 0
	Walk(mkJoin(sliceErr{}, sliceErr{}), func(error) bool { n++; return true })
	assert.Equal(t, 3, n)
}

func TestInstances_CollectsAcrossRegistries(t *testing.T) {
	t.Parallel()

	f1 := newTestFactory(t)
	f2 := newTestFactory(t)
	inner := f1.New("inner")
	outer := f2.New("outer", inner)
	joined := errors.Join(leafErr{"x"}, outer)

	assert.Equal(t, []*Instance{outer, inner}, Instances(joined))
	assert.Nil(t, Instances(leafErr{"x"}))
}
