// unwrap.go — traversal over single- and multi-wrapped errors.
//
// Identity checks must look through fmt.Errorf("%w"), errors.Join and nested
// instances, so traversal handles BOTH Unwrap forms:
//   - Unwrap() error   (classic wrapping, *Instance itself)
//   - Unwrap() []error (errors.Join, multi-%w)
//
// A map[error] "seen" set guards against cycles, but interface values whose
// dynamic type is not comparable panic as map keys: those are treated as
// acyclic and bounded by the step cap instead.
package typederr

import (
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// maxWalk bounds traversal against runaway graphs.
const maxWalk = 1 << 12

// markSeen returns true if err was newly marked; false if already seen.
func markSeen(err error, seen map[error]struct{}) bool {
	if err == nil {
		return false
	}
	if !reflect.TypeOf(err).Comparable() {
		return true
	}
	if _, dup := seen[err]; dup {
		return false
	}
	seen[err] = struct{}{}
	return true
}

// Walk visits each distinct node of err's unwrap graph depth-first in
// pre-order, left to right across joined errors. Traversal stops when visit
// returns false. It is safe on cycles; nil is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}

	stack := make([]error, 0, 8)
	seen := make(map[error]struct{}, 8)

	stack = append(stack, err)
	_ = markSeen(err, seen)

	for steps := 0; len(stack) > 0 && steps < maxWalk; steps++ {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		switch u := cur.(type) {
		case multiUnwrapper:
			kids := u.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if c := kids[i]; c != nil && markSeen(c, seen) {
					stack = append(stack, c)
				}
			}
		case singleUnwrapper:
			if c := u.Unwrap(); c != nil && markSeen(c, seen) {
				stack = append(stack, c)
			}
		}
	}
}

// Instances returns every *Instance in err's unwrap graph, in Walk order.
func Instances(err error) []*Instance {
	var out []*Instance
	Walk(err, func(e error) bool {
		if inst, ok := e.(*Instance); ok {
			out = append(out, inst)
		}
		return true
	})
	return out
}
