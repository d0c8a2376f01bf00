package deep

// Clone returns a deep copy of v. Mappings and sequences are copied
// recursively; any other value is returned unchanged.
func Clone(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return CloneMap(typed)
	case []any:
		return CloneSlice(typed)
	default:
		return typed
	}
}

// CloneMap returns a deep copy of m. A nil map clones to nil.
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Clone(v)
	}
	return out
}

// CloneSlice returns a deep copy of s. A nil slice clones to nil.
func CloneSlice(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = Clone(v)
	}
	return out
}
