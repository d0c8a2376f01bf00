package deep

// Merge overlays source onto target in place. For every key of source, when
// both sides hold a mapping the two are merged recursively; otherwise a copy
// of the source value replaces the target value.
//
// Values taken from source are cloned, so target never shares structure with
// source afterwards.
//
// Merge panics if target is nil and source is not empty; use Combine to
// start from a nil mapping.
func Merge(target, source map[string]any) {
	if target == nil && len(source) > 0 {
		panic("deep.Merge: nil target map")
	}
	for k, sv := range source {
		if sm, ok := sv.(map[string]any); ok {
			if tm, ok := target[k].(map[string]any); ok && tm != nil {
				Merge(tm, sm)
				continue
			}
		}
		target[k] = Clone(sv)
	}
}

// Combine returns a new mapping holding a overlaid with b, following the
// rules of Merge. Neither input is modified.
func Combine(a, b map[string]any) map[string]any {
	out := CloneMap(a)
	if out == nil {
		out = make(map[string]any, len(b))
	}
	Merge(out, b)
	return out
}
