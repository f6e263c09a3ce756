package qs

import (
	"strconv"
	"strings"
)

// Decode parses value into a Mapping. value must be a query string or an
// already-built *OrderedMap (the latter lets a caller re-run merge/compact
// over a structure it assembled itself, e.g. to apply Comma splitting to
// values it already holds). A nil or empty string input decodes to an
// empty, non-nil *OrderedMap.
func Decode(value any, opts DecodeOptions) (*OrderedMap, error) {
	obj := NewOrderedMap()

	switch v := value.(type) {
	case nil:
		return obj, nil
	case string:
		if v == "" {
			return obj, nil
		}
		tempObj, err := parseQueryStringValues(v, opts)
		if err != nil {
			return nil, err
		}
		return decodeFromTemp(tempObj, opts, true)
	case *OrderedMap:
		if v == nil || v.Len() == 0 {
			return obj, nil
		}
		return decodeFromTemp(v, opts, false)
	default:
		return nil, ErrInvalidInput
	}
}

func decodeFromTemp(tempObj *OrderedMap, opts DecodeOptions, valuesParsed bool) (*OrderedMap, error) {
	if opts.ParseLists && opts.ListLimit > 0 && opts.ListLimit < tempObj.Len() {
		opts.ParseLists = false
	}

	var obj any = NewOrderedMap()

	isEmpty := func(v any) bool {
		m, ok := v.(*OrderedMap)
		return ok && m.Len() == 0
	}

	var rangeErr error
	tempObj.Range(func(key string, val any) bool {
		newObj, err := parseKeys(key, val, opts, valuesParsed)
		if err != nil {
			rangeErr = err
			return false
		}

		if isEmpty(obj) {
			if m, ok := newObj.(*OrderedMap); ok {
				obj = m
				return true
			}
		}
		obj = merge(obj, newObj, opts)
		return true
	})
	if rangeErr != nil {
		return nil, rangeErr
	}

	result, ok := obj.(*OrderedMap)
	if !ok {
		result = NewOrderedMap()
	}
	return compact(result), nil
}

// parseArrayValue splits a raw (pre-decode) value on commas when
// opts.Comma is set, enforcing ListLimit along the way. Returns either
// the original string/value, or a []any holding the comma-separated
// string pieces.
func parseArrayValue(value any, opts DecodeOptions, currentListLength int) (any, error) {
	if s, ok := value.(string); ok && s != "" && opts.Comma && strings.Contains(s, ",") {
		split := strings.Split(s, ",")
		if opts.RaiseOnLimitExceeded && len(split) > opts.ListLimit {
			return nil, errListLimitExceeded(opts.ListLimit)
		}
		out := make([]any, len(split))
		for i, p := range split {
			out[i] = p
		}
		return out, nil
	}

	if opts.RaiseOnLimitExceeded && currentListLength >= opts.ListLimit {
		return nil, errListLimitExceeded(opts.ListLimit)
	}
	return value, nil
}

// apply runs fn over each element of val if val is a []any, or once on
// val itself otherwise, matching Utils.apply.
func apply(val any, fn func(any) any) any {
	if list, ok := val.([]any); ok {
		out := make([]any, len(list))
		for i, item := range list {
			out[i] = fn(item)
		}
		return out
	}
	return fn(val)
}

func parseQueryStringValues(value string, opts DecodeOptions) (*OrderedMap, error) {
	obj := NewOrderedMap()

	cleanStr := value
	if opts.IgnoreQueryPrefix {
		cleanStr = strings.Replace(cleanStr, "?", "", 1)
	}
	cleanStr = strings.NewReplacer("%5B", "[", "%5b", "[", "%5D", "]", "%5d", "]").Replace(cleanStr)

	limit := opts.ParameterLimit
	if limit <= 0 {
		return nil, ErrInvalidOption
	}

	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = "&"
	}
	parts := strings.Split(cleanStr, delimiter)

	sliceBound := limit
	if opts.RaiseOnLimitExceeded {
		sliceBound = limit + 1
	}
	if sliceBound < len(parts) {
		parts = parts[:sliceBound]
	}

	if opts.RaiseOnLimitExceeded && len(parts) > limit {
		return nil, errParameterLimitExceeded(limit)
	}

	skipIndex := -1
	charset := opts.Charset

	if opts.CharsetSentinel {
		for i, part := range parts {
			if strings.HasPrefix(part, "utf8=") {
				switch part {
				case SentinelCharset.Encoded:
					charset = CharsetUTF8
				case SentinelISO.Encoded:
					charset = CharsetLatin1
				}
				skipIndex = i
				break
			}
		}
	}

	decoder := opts.Decoder
	if decoder == nil {
		decoder = opts.LegacyDecoder
	}
	if decoder == nil {
		decoder = DefaultDecodeOptions().Decoder
	}

	for i, part := range parts {
		if i == skipIndex {
			continue
		}

		bracketEquals := strings.Index(part, "]=")
		pos := -1
		if bracketEquals == -1 {
			pos = strings.IndexByte(part, '=')
		} else {
			pos = bracketEquals + 1
		}

		var key string
		var val any

		if pos == -1 {
			key = toStringKey(decoder(part, charset))
			if opts.StrictNullHandling {
				val = nil
			} else {
				val = ""
			}
		} else {
			key = toStringKey(decoder(part[:pos], charset))

			currentListLength := 0
			if existing, ok := obj.Get(key); ok {
				if lst, ok := existing.([]any); ok {
					currentListLength = len(lst)
				}
			}

			arrVal, err := parseArrayValue(part[pos+1:], opts, currentListLength)
			if err != nil {
				return nil, err
			}
			val = apply(arrVal, func(v any) any {
				s, _ := v.(string)
				return decoder(s, charset)
			})
		}

		if opts.InterpretNumericEntities && charset == CharsetLatin1 && isNonEmpty(val) {
			val = interpretNumericEntities(joinForEntities(val))
		}

		if strings.Contains(part, "[]=") {
			if list, ok := val.([]any); ok {
				val = []any{list}
			}
		}

		existing, hasExisting := obj.Get(key)
		switch {
		case hasExisting && opts.Duplicates == DuplicatesCombine:
			obj.Set(key, combine(existing, val))
		case !hasExisting || opts.Duplicates == DuplicatesLast:
			obj.Set(key, val)
		}
	}

	return obj, nil
}

func toStringKey(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return stringifyAny(v)
}

func isNonEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	default:
		return true
	}
}

func joinForEntities(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if list, ok := v.([]any); ok {
		parts := make([]string, len(list))
		for i, item := range list {
			if s, ok := item.(string); ok {
				parts[i] = s
			} else {
				parts[i] = stringifyAny(item)
			}
		}
		return strings.Join(parts, ",")
	}
	return stringifyAny(v)
}

func stringifyAny(v any) string {
	s, ok := scalarToString(v)
	if !ok {
		return ""
	}
	return s
}

func parseKeys(givenKey string, val any, opts DecodeOptions, valuesParsed bool) (any, error) {
	if givenKey == "" {
		return nil, nil
	}

	segments, err := splitKeyIntoSegments(givenKey, opts.AllowDots, opts.Depth, opts.StrictDepth)
	if err != nil {
		return nil, err
	}

	return parseObject(segments, val, opts, valuesParsed)
}

func parseObject(chain []string, val any, opts DecodeOptions, valuesParsed bool) (any, error) {
	currentListLength := 0

	if len(chain) > 0 && chain[len(chain)-1] == "[]" {
		joined := strings.Join(chain[:len(chain)-1], "")
		if parentKey, ok := parsePythonInt(joined); ok && parentKey >= 0 {
			if valList, ok := val.([]any); ok && parentKey < len(valList) {
				if inner, ok := valList[parentKey].([]any); ok {
					currentListLength = len(inner)
				}
			}
		}
	}

	var leaf any
	if valuesParsed {
		leaf = val
	} else {
		parsed, err := parseArrayValue(val, opts, currentListLength)
		if err != nil {
			return nil, err
		}
		leaf = parsed
	}

	for i := len(chain) - 1; i >= 0; i-- {
		root := chain[i]
		var obj any

		if root == "[]" && opts.ParseLists {
			switch {
			case opts.AllowEmptyLists && (leaf == "" || (opts.StrictNullHandling && leaf == nil)):
				obj = []any{}
			default:
				if list, ok := leaf.([]any); ok {
					obj = list
				} else {
					obj = []any{leaf}
				}
			}
		} else {
			cleanRoot := root
			if strings.HasPrefix(root, "[") && strings.HasSuffix(root, "]") {
				cleanRoot = root[1 : len(root)-1]
			}

			decodedRoot := cleanRoot
			if opts.DecodeDotInKeys {
				decodedRoot = strings.ReplaceAll(cleanRoot, "%2E", ".")
			}

			index, isIndex := parsePythonInt(decodedRoot)

			switch {
			case !opts.ParseLists && decodedRoot == "":
				m := NewOrderedMap()
				m.Set("0", leaf)
				obj = m
			case isIndex && index >= 0 && root != decodedRoot && strconv.Itoa(index) == decodedRoot &&
				opts.ParseLists && index <= opts.ListLimit:
				list := make([]any, index+1)
				for j := range list {
					list[j] = undefined
				}
				list[index] = leaf
				obj = list
			default:
				m := NewOrderedMap()
				if isIndex {
					m.Set(strconv.Itoa(index), leaf)
				} else {
					m.Set(decodedRoot, leaf)
				}
				obj = m
			}
		}

		leaf = obj
	}

	return leaf, nil
}

// parsePythonInt mirrors Python's int(s, 10): optional surrounding
// whitespace, an optional leading sign, then one or more decimal digits,
// with nothing else.
func parsePythonInt(s string) (int, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, false
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return n, true
}
