package qs

import "strconv"

// OrderedMap is the Mapping variant of the codec's value model: a
// string-keyed association that remembers the order keys were first
// inserted. Go's builtin map has no stable iteration order, but qs
// semantics (and byte-identical output against the JS original) depend on
// it, so every Mapping produced or consumed by this package is an
// *OrderedMap rather than a plain map[string]any.
type OrderedMap struct {
	Keys    []string
	Entries map[string]any
}

// NewOrderedMap returns an empty, ready-to-use OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{Entries: make(map[string]any)}
}

// Get returns the value stored for key and whether it was present.
func (m *OrderedMap) Get(key string) (any, bool) {
	v, ok := m.Entries[key]
	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap) Has(key string) bool {
	_, ok := m.Entries[key]
	return ok
}

// Set stores value under key, appending key to the insertion order the
// first time it is seen. Updating an existing key leaves its position
// unchanged.
func (m *OrderedMap) Set(key string, value any) {
	if _, exists := m.Entries[key]; !exists {
		m.Keys = append(m.Keys, key)
	}
	m.Entries[key] = value
}

// Delete removes key, if present, and drops it from the insertion order.
func (m *OrderedMap) Delete(key string) {
	if _, ok := m.Entries[key]; !ok {
		return
	}
	delete(m.Entries, key)
	for i, k := range m.Keys {
		if k == key {
			m.Keys = append(m.Keys[:i], m.Keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int {
	return len(m.Keys)
}

// Range calls fn for each entry in insertion order, stopping early if fn
// returns false.
func (m *OrderedMap) Range(fn func(key string, value any) bool) {
	for _, k := range m.Keys {
		if !fn(k, m.Entries[k]) {
			return
		}
	}
}

// Clone returns a shallow copy: nested Mappings/Sequences are not
// deep-copied, matching the copy-on-write posture the merge/compact
// passes already take on freshly-built decode trees.
func (m *OrderedMap) Clone() *OrderedMap {
	out := &OrderedMap{
		Keys:    append([]string(nil), m.Keys...),
		Entries: make(map[string]any, len(m.Entries)),
	}
	for k, v := range m.Entries {
		out.Entries[k] = v
	}
	return out
}

// mapFromSlice builds an OrderedMap whose keys are the stringified
// indices 0..len(items)-1, skipping Undefined holes. This is how the
// merge engine coerces a Sequence into a Mapping when it must combine
// with a Mapping source.
func mapFromSlice(items []any) *OrderedMap {
	out := NewOrderedMap()
	for i, item := range items {
		if isUndefined(item) {
			continue
		}
		out.Set(strconv.Itoa(i), item)
	}
	return out
}
