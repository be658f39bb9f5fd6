package ini

import (
	"io"
	"strings"
)

// =========================
// Nested Map Consumer
// =========================

// MapBuilder is a Callback provider that assembles parsed entries into a
// generic nested map. Section titles are split on the configured
// namespace delimiter, each component becoming one level of map nesting:
// the [a.b.c] record x=1 ends up at root["a"]["b"]["c"]["x"]. Lists are
// represented as []string in input order.
type MapBuilder struct {
	delim string
	root  map[string]any
}

// NewMapBuilder returns a builder splitting section titles on cfg.Delim.
func NewMapBuilder(cfg Config) *MapBuilder {
	return &MapBuilder{
		delim: cfg.Delim,
		root:  make(map[string]any),
	}
}

// Root returns the map built so far.
func (b *MapBuilder) Root() map[string]any { return b.root }

// Callback records one parsed entry. It always returns 0 (continue).
func (b *MapBuilder) Callback(ln uint32, list ListState, section, key, value string) int {
	m := b.root
	if section != "" {
		for _, part := range strings.Split(section, b.delim) {
			if part == "" {
				continue
			}
			m = getOrCreate(m, part)
		}
	}

	switch list {
	case NoList:
		m[key] = value
	case ListOngoing, ListLast:
		entries, _ := m[key].([]string)
		m[key] = append(entries, value)
	}
	return 0
}

// getOrCreate returns m[k] if it is already a nested map, replacing
// whatever else may sit there with a fresh one otherwise.
func getOrCreate(m map[string]any, k string) map[string]any {
	if child, ok := m[k].(map[string]any); ok {
		return child
	}
	child := make(map[string]any)
	m[k] = child
	return child
}

// ParseMap parses r with cfg and returns the nested map representation
// of the whole input.
func ParseMap(r io.Reader, cfg Config) (map[string]any, error) {
	p, err := New(cfg)
	if err != nil {
		return nil, err
	}
	b := NewMapBuilder(cfg)
	if _, err := p.Parse(r, b.Callback); err != nil {
		return nil, err
	}
	return b.Root(), nil
}

// =========================
// Safe Access Helpers
// =========================

// Get walks path through nested maps built by MapBuilder.
func Get(root map[string]any, path ...string) (any, bool) {
	var cur any = root
	for _, p := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// MustString returns the record value at n; it panics if n is not one.
func MustString(n any) string {
	return n.(string)
}

// MustList returns the list entries at n; it panics if n is not a list.
func MustList(n any) []string {
	return n.([]string)
}
