package sliceutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"utilkit/sliceutil"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		target int
		want   bool
	}{
		{"Found", []int{1, 2, 3}, 2, true},
		{"NotFound", []int{1, 2, 3}, 4, false},
		{"Empty", []int{}, 1, false},
		{"Nil", nil, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sliceutil.Contains(tt.input, tt.target))
		})
	}
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 1, sliceutil.IndexOf([]string{"a", "b", "b"}, "b"))
	assert.Equal(t, -1, sliceutil.IndexOf([]string{"a"}, "z"))
	assert.Equal(t, -1, sliceutil.IndexOf([]string{}, "z"))
}

func TestFind(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}

	t.Run("Found", func(t *testing.T) {
		val, found := sliceutil.Find(input, func(x int) bool { return x > 3 })
		assert.True(t, found)
		assert.Equal(t, 4, val)
	})

	t.Run("NotFound", func(t *testing.T) {
		val, found := sliceutil.Find(input, func(x int) bool { return x > 10 })
		assert.False(t, found)
		assert.Zero(t, val)
	})

	t.Run("Empty", func(t *testing.T) {
		_, found := sliceutil.Find([]int{}, func(x int) bool { return true })
		assert.False(t, found)
	})
}

func TestContainsFunc(t *testing.T) {
	tests := []struct {
		name       string
		collection []int
		predicate  func(int) bool
		want       bool
	}{
		{"FoundFirst", []int{1, 2, 3}, func(x int) bool { return x == 1 }, true},
		{"FoundLast", []int{1, 2, 3}, func(x int) bool { return x == 3 }, true},
		{"NotFound", []int{1, 2, 3}, func(x int) bool { return x == 4 }, false},
		{"Empty", []int{}, func(x int) bool { return true }, false},
		{"NoneMatch", []int{1, 3, 5}, func(x int) bool { return x%2 == 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sliceutil.ContainsFunc(tt.collection, tt.predicate))
		})
	}
}

func TestFindIndex(t *testing.T) {
	tests := []struct {
		name       string
		collection []int
		predicate  func(int) bool
		want       int
	}{
		{"FoundFirst", []int{1, 2, 3}, func(x int) bool { return x == 1 }, 0},
		{"FoundMiddle", []int{1, 2, 3}, func(x int) bool { return x == 2 }, 1},
		{"FoundLast", []int{1, 2, 3}, func(x int) bool { return x == 3 }, 2},
		{"NotFound", []int{1, 2, 3}, func(x int) bool { return x == 4 }, -1},
		{"Empty", []int{}, func(x int) bool { return true }, -1},
		{"Duplicates", []int{1, 2, 2, 3}, func(x int) bool { return x == 2 }, 1}, // first match wins
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sliceutil.FindIndex(tt.collection, tt.predicate))
		})
	}
}
