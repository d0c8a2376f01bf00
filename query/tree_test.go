package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"utilkit/query"
)

func TestPathToTree(t *testing.T) {
	pairs := []query.Pair{
		{Path: "address.line_one", Value: "missing"},
		{Path: "address.postal_code", Value: "invalid"},
		{Path: "title", Value: "missing"},
	}

	assert.Equal(t, map[string]any{
		"address": map[string]any{"line_one": "missing", "postal_code": "invalid"},
		"title":   "missing",
	}, query.PathToTree(pairs))
}

func TestPathToTreeDeep(t *testing.T) {
	pairs := []query.Pair{
		{Path: "a.b.c", Value: 1},
		{Path: "a.b.d", Value: 2},
		{Path: "a.e", Value: nil},
		{Path: "f", Value: "x"},
		{Path: "f", Value: "y"},
	}

	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 1, "d": 2},
			"e": nil,
		},
		"f": "y",
	}, query.PathToTree(pairs))
}

func TestPathToTreeGroupWinsOverLeaf(t *testing.T) {
	pairs := []query.Pair{
		{Path: "a.b", Value: 1},
		{Path: "a", Value: 2},
	}
	assert.Equal(t, map[string]any{"a": map[string]any{"b": 1}}, query.PathToTree(pairs))
}

func TestPathToTreeRewrites(t *testing.T) {
	pairs := []query.Pair{
		{Path: "name", Value: "is not a string"},
		{Path: "meta.owner", Value: "is not a string"},
		{Path: "age", Value: "too small"},
	}

	t.Run("Default", func(t *testing.T) {
		assert.Equal(t, map[string]any{
			"name": "missing",
			"meta": map[string]any{"owner": "missing"},
			"age":  "too small",
		}, query.PathToTree(pairs))
	})

	t.Run("Disabled", func(t *testing.T) {
		got := query.PathToTree(pairs, query.WithoutRewrites())
		assert.Equal(t, "is not a string", got["name"])
	})

	t.Run("Custom", func(t *testing.T) {
		got := query.PathToTree(pairs, query.WithRewrites(map[string]string{"too small": "invalid"}))
		assert.Equal(t, "is not a string", got["name"])
		assert.Equal(t, "invalid", got["age"])
	})
}

func TestPathToTreeEmpty(t *testing.T) {
	assert.Equal(t, map[string]any{}, query.PathToTree(nil))
}
