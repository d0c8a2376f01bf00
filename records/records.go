// Package records searches and edits sequences of mappings, such as a decoded
// JSON array of objects, by the value of one of their fields.
//
// Each mutating operation comes in two forms. The plain form edits the
// caller's slice in place and reports whether a match was found. The Copy
// form leaves its input untouched and returns a deep clone, edited when a
// match was found.
package records

import (
	"reflect"

	"utilkit/deep"
	"utilkit/sliceutil"
)

// FindIndex returns the index of the first item whose key field strictly
// equals value, or -1. Strict equality requires the same dynamic type;
// values of non-comparable types never match.
func FindIndex(items []map[string]any, key string, value any) int {
	return sliceutil.FindIndex(items, func(item map[string]any) bool {
		got, ok := item[key]
		return ok && strictEqual(got, value)
	})
}

// FindItem returns the first item whose key field strictly equals value.
func FindItem(items []map[string]any, key string, value any) (map[string]any, bool) {
	if i := FindIndex(items, key, value); i >= 0 {
		return items[i], true
	}
	return nil, false
}

// FindAndDelete removes the first matching item from *items.
func FindAndDelete(items *[]map[string]any, key string, value any) bool {
	i := FindIndex(*items, key, value)
	if i < 0 {
		return false
	}
	s := *items
	copy(s[i:], s[i+1:])
	s[len(s)-1] = nil
	*items = s[:len(s)-1]
	return true
}

// FindAndMerge copies the top-level entries of data into the first matching
// item.
func FindAndMerge(items []map[string]any, key string, value any, data map[string]any) bool {
	i := FindIndex(items, key, value)
	if i < 0 {
		return false
	}
	if items[i] == nil {
		items[i] = make(map[string]any, len(data))
	}
	for k, v := range data {
		items[i][k] = v
	}
	return true
}

// FindAndOverwrite replaces the first matching item with data.
func FindAndOverwrite(items []map[string]any, key string, value any, data map[string]any) bool {
	i := FindIndex(items, key, value)
	if i < 0 {
		return false
	}
	items[i] = data
	return true
}

// FindAndDeleteCopy is FindAndDelete on a deep clone of items.
func FindAndDeleteCopy(items []map[string]any, key string, value any) ([]map[string]any, bool) {
	out := Clone(items)
	ok := FindAndDelete(&out, key, value)
	return out, ok
}

// FindAndMergeCopy is FindAndMerge on a deep clone of items. The merged
// values are cloned too.
func FindAndMergeCopy(items []map[string]any, key string, value any, data map[string]any) ([]map[string]any, bool) {
	out := Clone(items)
	ok := FindAndMerge(out, key, value, deep.CloneMap(data))
	return out, ok
}

// FindAndOverwriteCopy is FindAndOverwrite on a deep clone of items. The
// replacement is cloned too.
func FindAndOverwriteCopy(items []map[string]any, key string, value any, data map[string]any) ([]map[string]any, bool) {
	out := Clone(items)
	ok := FindAndOverwrite(out, key, value, deep.CloneMap(data))
	return out, ok
}

// Clone returns a deep copy of items.
func Clone(items []map[string]any) []map[string]any {
	if items == nil {
		return nil
	}
	return sliceutil.Map(items, deep.CloneMap)
}

func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	// [1]any has a comparable type but panics on == when it holds a slice
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}
