package deep

// Diff returns the entries of updated that are new or different from
// original. When both sides hold a mapping under the same key the mappings
// are diffed recursively and the key is reported only if something below it
// changed. Keys removed from original are not reported.
//
// Falsy values are not special: a key changed to false, nil, 0 or "" shows
// up in the result like any other change.
func Diff(original, updated map[string]any) map[string]any {
	out := make(map[string]any)
	for k, uv := range updated {
		ov, existed := original[k]
		if !existed {
			out[k] = Clone(uv)
			continue
		}

		om, oIsMap := ov.(map[string]any)
		um, uIsMap := uv.(map[string]any)
		if oIsMap && uIsMap {
			if sub := Diff(om, um); len(sub) > 0 {
				out[k] = sub
			}
			continue
		}

		if !Equal(ov, uv) {
			out[k] = Clone(uv)
		}
	}
	return out
}
