package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"utilkit/query"
)

// loadDocument reads a YAML or JSON file whose top level is a mapping.
func loadDocument(path string) (map[string]any, error) {
	var doc map[string]any
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// loadPairs reads a YAML or JSON list of [path, value] pairs.
func loadPairs(path string) ([]query.Pair, error) {
	var raw [][]any
	if err := decodeFile(path, &raw); err != nil {
		return nil, err
	}

	pairs := make([]query.Pair, 0, len(raw))
	for i, item := range raw {
		if len(item) != 2 {
			return nil, fmt.Errorf("%s: entry %d: want [path, value], got %d elements", path, i, len(item))
		}
		p, ok := item[0].(string)
		if !ok {
			return nil, fmt.Errorf("%s: entry %d: path must be a string", path, i)
		}
		pairs = append(pairs, query.Pair{Path: p, Value: item[1]})
	}
	return pairs, nil
}

func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
