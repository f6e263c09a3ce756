package qs

import "strconv"

// merge combines source into target following qs's list/mapping coercion
// rules. It may reuse target in place for performance, and always returns
// the merged value (which may differ in type from target, e.g. a scalar
// promoted to a list).
func merge(target any, source any, opts DecodeOptions) any {
	if source == nil {
		return target
	}

	if isUndefined(target) {
		return source
	}

	sourceMap, sourceIsMap := source.(*OrderedMap)

	if !sourceIsMap {
		return mergeNonMapSource(target, source, opts)
	}

	targetMap, targetIsMap := target.(*OrderedMap)
	if !targetIsMap {
		if targetList, ok := target.([]any); ok {
			merged := mapFromSlice(targetList)
			sourceMap.Range(func(k string, v any) bool {
				merged.Set(k, v)
				return true
			})
			return merged
		}
		return concatAsList(target, source)
	}

	result := targetMap.Clone()
	sourceMap.Range(func(key string, value any) bool {
		if existing, ok := result.Get(key); ok {
			result.Set(key, merge(existing, value, opts))
		} else {
			result.Set(key, value)
		}
		return true
	})
	return result
}

// mergeNonMapSource merges a scalar or Sequence source into target.
func mergeNonMapSource(target any, source any, opts DecodeOptions) any {
	targetList, targetIsList := target.([]any)

	if targetIsList {
		return mergeIntoList(targetList, source, opts)
	}

	if targetMap, ok := target.(*OrderedMap); ok {
		if sourceList, ok := source.([]any); ok {
			merged := targetMap.Clone()
			for i, item := range sourceList {
				if isUndefined(item) {
					continue
				}
				merged.Set(strconv.Itoa(i), item)
			}
			return merged
		}
		return target
	}

	if sourceList, ok := source.([]any); ok {
		out := []any{target}
		for _, item := range sourceList {
			if !isUndefined(item) {
				out = append(out, item)
			}
		}
		return out
	}
	return []any{target, source}
}

func mergeIntoList(target []any, source any, opts DecodeOptions) any {
	hasHole := false
	for _, el := range target {
		if isUndefined(el) {
			hasHole = true
			break
		}
	}

	if hasHole {
		byIndex := make(map[int]any, len(target))
		for i, v := range target {
			byIndex[i] = v
		}

		if sourceList, ok := source.([]any); ok {
			for i, item := range sourceList {
				if !isUndefined(item) {
					byIndex[i] = item
				}
			}
		} else {
			byIndex[len(byIndex)] = source
		}

		stillHasHole := false
		for _, v := range byIndex {
			if isUndefined(v) {
				stillHasHole = true
				break
			}
		}

		if !opts.ParseLists && stillHasHole {
			indices := sortedIntKeys(byIndex)
			out := NewOrderedMap()
			for _, i := range indices {
				if !isUndefined(byIndex[i]) {
					out.Set(strconv.Itoa(i), byIndex[i])
				}
			}
			return out
		}

		indices := sortedIntKeys(byIndex)
		out := make([]any, 0, len(indices))
		for _, i := range indices {
			if !isUndefined(byIndex[i]) {
				out = append(out, byIndex[i])
			}
		}
		return out
	}

	if sourceList, ok := source.([]any); ok {
		if allMapOrUndefined(target) && allMapOrUndefined(sourceList) {
			byIndex := make(map[int]any, len(target))
			for i, v := range target {
				byIndex[i] = v
			}
			out := make([]any, len(sourceList))
			for i, item := range sourceList {
				if existing, ok := byIndex[i]; ok {
					out[i] = merge(existing, item, opts)
				} else {
					out[i] = item
				}
			}
			return out
		}

		out := append([]any(nil), target...)
		for _, item := range sourceList {
			if !isUndefined(item) {
				out = append(out, item)
			}
		}
		return out
	}

	out := append([]any(nil), target...)
	return append(out, source)
}

func allMapOrUndefined(items []any) bool {
	for _, item := range items {
		if isUndefined(item) {
			continue
		}
		if _, ok := item.(*OrderedMap); !ok {
			return false
		}
	}
	return true
}

func sortedIntKeys(m map[int]any) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// insertion sort is fine: byIndex is bounded by list_limit-sized inputs.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

// concatAsList handles target/source that are neither Mapping nor
// compatible Sequence: both sides are flattened into a fresh list,
// dropping Undefined holes. Note a Mapping source is appended as a single
// element, not merged key-by-key; this branch only fires for a scalar
// target, where qs treats the incoming Mapping as an opaque list item.
func concatAsList(target any, source any) any {
	var out []any
	if targetList, ok := target.([]any); ok {
		for _, v := range targetList {
			if !isUndefined(v) {
				out = append(out, v)
			}
		}
	} else if !isUndefined(target) {
		out = append(out, target)
	}

	if sourceList, ok := source.([]any); ok {
		for _, v := range sourceList {
			if !isUndefined(v) {
				out = append(out, v)
			}
		}
	} else if !isUndefined(source) {
		out = append(out, source)
	}
	return out
}

// combine concatenates two values, treating non-Sequence values as
// singletons. Used when Duplicates == DuplicatesCombine merges a repeated
// top-level key.
func combine(a any, b any) []any {
	var out []any
	if aList, ok := a.([]any); ok {
		out = append(out, aList...)
	} else {
		out = append(out, a)
	}
	if bList, ok := b.([]any); ok {
		out = append(out, bList...)
	} else {
		out = append(out, b)
	}
	return out
}
