// predicates.go — identity and category checks over arbitrary errors.
//
// Scope:
//   • Factory.Is answers "was this built by me (and is it category X)?".
//     The category is that of the nearest instance of the same registry.
//   • CategoryOf / ContextOf read the first typed instance in a chain,
//     whatever registry built it.
//
// Notes:
//   • All helpers look through wrapping (see Walk), so an instance wrapped by
//     fmt.Errorf("%w") or errors.Join still matches.
//   • None of them fail: foreign, nil or malformed errors report false/empty.
package typederr

// Is reports whether err, or any error it wraps, is an instance built by
// this factory. With categories, the first such instance in the chain decides:
// its own category must be one of them. Instances it wraps in turn are not
// consulted. Is never panics, even on errors whose Unwrap misbehaves.
func (f *Factory) Is(err error, categories ...string) (found bool) {
	if f == nil || err == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			found = false
		}
	}()
	Walk(err, func(e error) bool {
		inst, ok := e.(*Instance)
		if !ok || inst == nil || inst.reg != f.reg {
			return true
		}
		if len(categories) == 0 {
			found = true
			return false
		}
		for _, c := range categories {
			if inst.IsCategory(c) {
				found = true
				break
			}
		}
		return false
	})
	return found
}

// firstInstance returns the first *Instance in err's unwrap graph.
func firstInstance(err error) *Instance {
	var hit *Instance
	Walk(err, func(e error) bool {
		if inst, ok := e.(*Instance); ok && inst != nil {
			hit = inst
			return false
		}
		return true
	})
	return hit
}

// CategoryOf returns the category of the first typed instance in err's chain.
// ok is false when there is none or it is untagged.
func CategoryOf(err error) (category string, ok bool) {
	inst := firstInstance(err)
	if inst == nil {
		return "", false
	}
	return inst.Category()
}

// ContextOf returns a copy of the context of the first typed instance in
// err's chain, or nil when there is none.
func ContextOf(err error) map[string]any {
	inst := firstInstance(err)
	if inst == nil {
		return nil
	}
	return inst.Context()
}
