package qs

// compact removes every Undefined sentinel from a freshly-merged decode
// tree, preserving the order of remaining elements. It never promotes an
// integer-keyed Mapping to a Sequence; that decision belongs to merge,
// driven by ParseLists/ListLimit. The tree is acyclic by construction
// (built solely from decode output), so a simple recursive walk is safe;
// no cycle-guard bookkeeping is needed here.
func compact(root *OrderedMap) *OrderedMap {
	compactMapInPlace(root)
	return root
}

// compactValue compacts v and returns its replacement. Lists must be
// rebuilt rather than pruned through the slice header a caller passed
// in, so every container-typed value flows back through here instead of
// being mutated positionally.
func compactValue(v any) any {
	switch val := v.(type) {
	case *OrderedMap:
		compactMapInPlace(val)
		return val
	case []any:
		return compactList(val)
	default:
		return v
	}
}

func compactMapInPlace(m *OrderedMap) {
	for _, k := range append([]string(nil), m.Keys...) {
		v := m.Entries[k]
		if isUndefined(v) {
			m.Delete(k)
			continue
		}
		m.Entries[k] = compactValue(v)
	}
}

func compactList(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		if isUndefined(item) {
			continue
		}
		out = append(out, compactValue(item))
	}
	return out
}
