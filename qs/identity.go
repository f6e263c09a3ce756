package qs

import "reflect"

// identitySet tracks which Mapping/Sequence containers are currently on
// the active path during one Encode call, standing in for the JS
// reference's WeakMap<object, true> (qs_codec's WeakWrapper/Sentinel
// pair). Go has no built-in weak map, so instead of retaining strong
// references to containers (which would keep them alive and couldn't key
// off a map[any]bool, since *OrderedMap and []any aren't comparable), this
// keys off each container's runtime address via reflect.Value.Pointer().
// The table itself is created fresh per top-level Encode call and
// discarded when it returns, so it never outlives or retains the values
// it points at.
type identitySet struct {
	seen map[uintptr]bool
}

func newIdentitySet() *identitySet {
	return &identitySet{seen: make(map[uintptr]bool)}
}

// pointerOf returns the address identifying v's underlying container, and
// whether v is a container type at all (scalars have no stable identity
// and can't participate in a cycle).
func pointerOf(v any) (uintptr, bool) {
	switch val := v.(type) {
	case *OrderedMap:
		return reflect.ValueOf(val).Pointer(), true
	case []any:
		if val == nil {
			return 0, false
		}
		return reflect.ValueOf(val).Pointer(), true
	default:
		return 0, false
	}
}

// enter records v as being on the current traversal path, returning false
// (without recording) if v is already on the path; the caller should
// treat that as ErrCircularReference. Non-container values always
// succeed and are not tracked.
func (s *identitySet) enter(v any) bool {
	ptr, ok := pointerOf(v)
	if !ok {
		return true
	}
	if s.seen[ptr] {
		return false
	}
	s.seen[ptr] = true
	return true
}

// leave un-marks v, allowing it to appear again via a sibling branch that
// doesn't nest through the same path (only true cycles, not DAG-shaped
// reuse, are an error).
func (s *identitySet) leave(v any) {
	ptr, ok := pointerOf(v)
	if !ok {
		return
	}
	delete(s.seen, ptr)
}
