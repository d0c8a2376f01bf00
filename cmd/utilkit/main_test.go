package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestTextCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Bytes", []string{"bytes", "1073741824"}, "1.0GiB"},
		{"Phone", []string{"phone", "15551234444"}, "+1 (555) 123-4444"},
		{"PhoneUnchanged", []string{"phone", "abc"}, "abc"},
		{"Lat", []string{"lat", "-33.867778"}, `S 33° 52' 4.00"`},
		{"Lon", []string{"lon", "151.21"}, `E 151° 12' 36.00"`},
		{"Normalize", []string{"normalize", "Crème brûlée"}, "Creme brulee"},
		{"Title", []string{"title", "hello wORLD"}, "Hello World"},
		{"UUIDStrip", []string{"uuid", "strip", "123e4567-e89b-12d3-a456-426614174000"}, "123e4567e89b12d3a456426614174000"},
		{"UUIDAdd", []string{"uuid", "add", "123e4567e89b12d3a456426614174000"}, "123e4567-e89b-12d3-a456-426614174000"},
		{"RandomAlphabet", []string{"random", "-alphabet", "z", "3"}, "zzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.args...)
			require.Equal(t, 0, code, errOut)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestRandom(t *testing.T) {
	code, out, _ := runCLI(t, "random", "-unique", "8", "hex")
	require.Equal(t, 0, code)
	assert.Len(t, strings.TrimSpace(out), 8)

	code, _, errOut := runCLI(t, "random", "-unique", "9", "octal")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid argument")
}

func TestUUIDNew(t *testing.T) {
	code, out, _ := runCLI(t, "uuid", "new")
	require.Equal(t, 0, code)
	assert.Len(t, strings.TrimSpace(out), 32)
}

func TestQueryJSON(t *testing.T) {
	code, out, _ := runCLI(t, "query", "numbers[0]=one&numbers[1]=two&n[k]=v")
	require.Equal(t, 0, code)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{
		"numbers": []any{"one", "two"},
		"n":       map[string]any{"k": "v"},
	}, got)
}

func TestQueryYAML(t *testing.T) {
	code, out, _ := runCLI(t, "-output", "yaml", "query", "a[]=1&a[]=2")
	require.Equal(t, 0, code)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{"a": []any{"1", "2"}}, got)
}

func TestDocuments(t *testing.T) {
	a := writeFile(t, "a.yaml", "name: widget\ndims:\n  w: 1\n  h: 2\n")
	b := writeFile(t, "b.json", `{"dims": {"h": 3}, "active": false}`)

	t.Run("Merge", func(t *testing.T) {
		code, out, _ := runCLI(t, "merge", a, b)
		require.Equal(t, 0, code)
		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, map[string]any{
			"name":   "widget",
			"dims":   map[string]any{"w": 1.0, "h": 3.0},
			"active": false,
		}, got)
	})

	t.Run("Diff", func(t *testing.T) {
		code, out, _ := runCLI(t, "diff", a, b)
		require.Equal(t, 0, code)
		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, map[string]any{
			"dims":   map[string]any{"h": 3.0},
			"active": false,
		}, got)
	})

	t.Run("Equal", func(t *testing.T) {
		code, out, _ := runCLI(t, "equal", a, a)
		require.Equal(t, 0, code)
		assert.Equal(t, "true\n", out)
	})

	t.Run("MissingFile", func(t *testing.T) {
		code, _, errOut := runCLI(t, "diff", a, filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "command failed")
	})
}

func TestTree(t *testing.T) {
	path := writeFile(t, "pairs.json", `[["address.line_one","is not a string"],["address.postal_code","invalid"],["title","missing"]]`)

	code, out, _ := runCLI(t, "tree", path)
	require.Equal(t, 0, code)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{
		"address": map[string]any{"line_one": "missing", "postal_code": "invalid"},
		"title":   "missing",
	}, got)

	bad := writeFile(t, "bad.json", `[["only-one"]]`)
	code, _, _ = runCLI(t, "tree", bad)
	assert.Equal(t, 1, code)
}

func TestUsageErrors(t *testing.T) {
	tests := [][]string{
		{},
		{"unknown"},
		{"bytes"},
		{"bytes", "ten"},
		{"uuid", "explode", "x"},
		{"-output", "xml", "bytes", "1"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, "_"), func(t *testing.T) {
			code, _, _ := runCLI(t, args...)
			assert.Equal(t, 2, code)
		})
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "-version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "utilkit version")
}

func TestDebugLogging(t *testing.T) {
	code, _, errOut := runCLI(t, "-log-level", "debug", "-log-format", "json", "bytes", "1")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, `"message":"running command"`)
	assert.Contains(t, errOut, `"command":"bytes"`)
}

func TestEnvFallback(t *testing.T) {
	t.Setenv("UTILKIT_OUTPUT", "yaml")
	code, out, _ := runCLI(t, "query", "a=1")
	require.Equal(t, 0, code)
	assert.Equal(t, "a: \"1\"\n", out)
}
