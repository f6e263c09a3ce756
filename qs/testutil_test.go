package qs

// om builds an *OrderedMap from alternating key/value pairs, in the
// order given, for concise expected-value construction in tests.
func om(pairs ...any) *OrderedMap {
	m := NewOrderedMap()
	for i := 0; i < len(pairs); i += 2 {
		m.Set(pairs[i].(string), pairs[i+1])
	}
	return m
}
