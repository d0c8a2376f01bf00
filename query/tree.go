package query

import (
	"maps"
	"strings"
)

// Pair is one dotted path and the value found at it.
type Pair struct {
	Path  string
	Value any
}

// DefaultRewrites maps leaf messages to the shorter form PathToTree reports
// by default.
var DefaultRewrites = map[string]string{
	"is not a string": "missing",
}

type treeOptions struct {
	rewrites map[string]string
}

// TreeOption configures PathToTree.
type TreeOption func(*treeOptions)

// WithRewrites replaces the default leaf rewrites.
func WithRewrites(rewrites map[string]string) TreeOption {
	return func(o *treeOptions) {
		o.rewrites = maps.Clone(rewrites)
	}
}

// WithoutRewrites keeps every leaf value as given.
func WithoutRewrites() TreeOption {
	return func(o *treeOptions) {
		o.rewrites = nil
	}
}

// PathToTree nests pairs by splitting each path on its first dot, grouping
// the remainders under the head segment and recursing. Pairs without a dot
// become leaves; a later leaf overwrites an earlier one, and a group
// overwrites a leaf with the same head.
//
// String leaf values found in the rewrite table are replaced, by default
// "is not a string" with "missing".
func PathToTree(pairs []Pair, opts ...TreeOption) map[string]any {
	o := treeOptions{rewrites: DefaultRewrites}
	for _, opt := range opts {
		opt(&o)
	}
	return buildTree(pairs, o.rewrites)
}

func buildTree(pairs []Pair, rewrites map[string]string) map[string]any {
	out := make(map[string]any)
	var heads []string
	groups := make(map[string][]Pair)

	for _, p := range pairs {
		head, rest, nested := strings.Cut(p.Path, ".")
		if !nested {
			out[head] = rewrite(p.Value, rewrites)
			continue
		}
		if _, seen := groups[head]; !seen {
			heads = append(heads, head)
		}
		groups[head] = append(groups[head], Pair{Path: rest, Value: p.Value})
	}

	for _, head := range heads {
		out[head] = buildTree(groups[head], rewrites)
	}
	return out
}

func rewrite(v any, rewrites map[string]string) any {
	if s, ok := v.(string); ok {
		if r, ok := rewrites[s]; ok {
			return r
		}
	}
	return v
}
