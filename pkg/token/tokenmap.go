package token

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// TokenMap is an insertion-ordered mapping from sanitized token name to a literal value.
//
// Values are string, float64 or *TokenMap (nesting only occurs for grouped or themed semantic
// entries). Setting an existing key replaces its value and keeps its position, so the last
// write of a duplicated name wins while the order of first appearance is preserved.
type TokenMap struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewTokenMap returns an empty map.
func NewTokenMap() *TokenMap {
	return &TokenMap{m: orderedmap.New[string, any]()}
}

// Set stores value under name.
func (t *TokenMap) Set(name string, value any) {
	t.m.Set(name, value)
}

// Get returns the value stored under name.
func (t *TokenMap) Get(name string) (any, bool) {
	if t == nil {
		return nil, false
	}
	return t.m.Get(name)
}

// Len returns the number of entries.
func (t *TokenMap) Len() int {
	if t == nil {
		return 0
	}
	return t.m.Len()
}

// Keys returns the names in insertion order.
func (t *TokenMap) Keys() []string {
	keys := make([]string, 0, t.Len())
	t.Range(func(name string, _ any) bool {
		keys = append(keys, name)
		return true
	})
	return keys
}

// Range calls fn for every entry in insertion order until fn returns false.
func (t *TokenMap) Range(fn func(name string, value any) bool) {
	if t == nil {
		return
	}
	for pair := t.m.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Sub returns the nested map stored under name, creating it when missing.
// A non-map value already stored under name is replaced.
func (t *TokenMap) Sub(name string) *TokenMap {
	if v, ok := t.Get(name); ok {
		if sub, ok := v.(*TokenMap); ok {
			return sub
		}
	}
	sub := NewTokenMap()
	t.Set(name, sub)
	return sub
}

// MarshalJSON encodes the map as a JSON object keeping insertion order.
func (t *TokenMap) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("null"), nil
	}
	return t.m.MarshalJSON()
}

// NamedTokenSet is a finished token map together with the name it is written and referenced by.
// Semantic sets hold references ("colors.red") instead of literals and have no Category.
type NamedTokenSet struct {
	Name     string
	Category Category
	Semantic bool
	File     *TokenMap
}

// FindSet returns the set whose name equals name.
func FindSet(sets []*NamedTokenSet, name string) (*NamedTokenSet, bool) {
	for _, s := range sets {
		if s != nil && s.Name == name {
			return s, true
		}
	}
	return nil, false
}
