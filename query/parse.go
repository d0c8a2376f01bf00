package query

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// maxListIndex bounds the index accepted for name[i]. Larger numeric keys
// are treated as mapping keys so a single token cannot allocate a huge list.
const maxListIndex = 10_000

var namePattern = regexp.MustCompile(`^([A-Za-z_$][A-Za-z0-9_$.\-]*)(\[([^\[\]]*)\])?$`)

type slotKind uint8

const (
	slotScalar slotKind = iota + 1
	slotList
	slotMap
)

// slot is the value collected for one name. A missing slot is the unset
// state.
type slot struct {
	kind   slotKind
	scalar string
	list   []any
	m      map[string]any
}

// Parse decodes a URL query string into a mapping. Values are strings,
// []any for bracketed list names and map[string]any for bracketed keys.
// Names and values are percent-decoded; '+' is left as is. Tokens whose
// name is not a valid identifier, optionally followed by one bracket
// suffix, are skipped. A numeric key above 10 000, as in "a[99999]=x", is
// stored as a mapping key rather than a list index.
func Parse(raw string) map[string]any {
	raw = strings.TrimPrefix(raw, "?")
	slots := make(map[string]*slot)

	for token := range strings.SplitSeq(raw, "&") {
		if token == "" {
			continue
		}
		rawName, rawValue, _ := strings.Cut(token, "=")
		m := namePattern.FindStringSubmatch(unescape(rawName))
		if m == nil {
			continue
		}
		name, bracketed, key := m[1], m[2] != "", m[3]
		value := unescape(rawValue)

		if !bracketed {
			slots[name] = &slot{kind: slotScalar, scalar: value}
			continue
		}
		s := slots[name]
		if s == nil {
			s = &slot{}
			slots[name] = s
		}
		switch idx, numeric := listIndex(key); {
		case key == "":
			s.append(value)
		case numeric:
			s.setIndex(idx, key, value)
		default:
			s.setKey(key, value)
		}
	}

	out := make(map[string]any, len(slots))
	for name, s := range slots {
		out[name] = s.value()
	}
	return out
}

func (s *slot) append(v string) {
	switch s.kind {
	case slotScalar:
		*s = slot{kind: slotList, list: []any{s.scalar, v}}
	case slotList:
		s.list = append(s.list, v)
	case slotMap:
		s.m[""] = v
	default:
		*s = slot{kind: slotList, list: []any{v}}
	}
}

func (s *slot) setIndex(i int, key, v string) {
	switch s.kind {
	case slotScalar:
		*s = slot{kind: slotList, list: []any{s.scalar}}
	case slotMap:
		s.m[key] = v
		return
	case 0:
		*s = slot{kind: slotList}
	}
	if i >= len(s.list) {
		s.list = append(s.list, make([]any, i+1-len(s.list))...)
	}
	s.list[i] = v
}

func (s *slot) setKey(k, v string) {
	switch s.kind {
	case slotScalar:
		*s = slot{kind: slotMap, m: map[string]any{"0": s.scalar}}
	case slotList:
		m := make(map[string]any, len(s.list)+1)
		for i, item := range s.list {
			if item != nil {
				m[strconv.Itoa(i)] = item
			}
		}
		*s = slot{kind: slotMap, m: m}
	case 0:
		*s = slot{kind: slotMap, m: make(map[string]any, 1)}
	}
	s.m[k] = v
}

func (s *slot) value() any {
	switch s.kind {
	case slotList:
		return s.list
	case slotMap:
		return s.m
	default:
		return s.scalar
	}
}

// listIndex reports whether key is a plain decimal list index.
func listIndex(key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(key)
	if err != nil || n > maxListIndex {
		return 0, false
	}
	return n, true
}

func unescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	if u, err := url.PathUnescape(s); err == nil {
		return u
	}
	return s
}
