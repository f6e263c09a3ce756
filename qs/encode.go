package qs

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Encode serializes value into a query string. value must be an
// *OrderedMap, a []any, or nil (which encodes to ""). Unlike Decode,
// Encode has no use for a plain string input.
func Encode(value any, opts EncodeOptions) (string, error) {
	if value == nil {
		return "", nil
	}

	var obj any
	switch v := value.(type) {
	case *OrderedMap:
		obj = v.Clone()
	case []any:
		m := NewOrderedMap()
		for i, item := range v {
			m.Set(strconv.Itoa(i), item)
		}
		obj = m
	default:
		return "", nil
	}

	objMap := obj.(*OrderedMap)
	if objMap.Len() == 0 {
		return "", nil
	}

	var objKeys []string
	if opts.Filter != nil && opts.Filter.Func != nil {
		filtered := opts.Filter.Func("", objMap)
		if m, ok := filtered.(*OrderedMap); ok {
			objMap = m
		}
	}

	commaRoundTrip := opts.ArrayFormat == ListFormatComma && opts.CommaRoundTrip

	if opts.Filter != nil && opts.Filter.Keys != nil {
		objKeys = append([]string(nil), opts.Filter.Keys...)
	} else {
		objKeys = append([]string(nil), objMap.Keys...)
	}

	if opts.Sort != nil {
		sort.SliceStable(objKeys, func(i, j int) bool { return opts.Sort(objKeys[i], objKeys[j]) })
	}

	ids := newIdentitySet()

	var keys []string
	for _, key := range objKeys {
		val, exists := objMap.Get(key)
		if exists && val == nil && opts.SkipNulls {
			continue
		}

		encoded, err := encodeValue(val, !exists, ids, key, opts, commaRoundTrip)
		if err != nil {
			return "", err
		}
		keys = append(keys, encoded...)
	}

	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = "&"
	}
	joined := strings.Join(keys, delimiter)

	prefix := ""
	if opts.AddQueryPrefix {
		prefix = "?"
	}

	if opts.CharsetSentinel {
		switch opts.Charset {
		case CharsetLatin1:
			prefix += SentinelISO.Encoded + "&"
		default:
			prefix += SentinelCharset.Encoded + "&"
		}
	}

	if joined == "" {
		if prefix != "" && prefix != "?" {
			// a bare charset sentinel with no pairs still needs trimming of
			// its trailing "&", matching the reference's "joined or ''" guard.
			return strings.TrimSuffix(prefix, "&"), nil
		}
		return "", nil
	}
	return prefix + joined, nil
}

// encodeValue is the recursive per-node encoder. It returns the list of
// "key=value" fragments this node (and its descendants) contributes.
func encodeValue(
	value any,
	isUndefinedValue bool,
	ids *identitySet,
	prefix string,
	opts EncodeOptions,
	commaRoundTrip bool,
) ([]string, error) {
	if !ids.enter(value) {
		return nil, ErrCircularReference
	}
	defer ids.leave(value)

	obj := value

	if opts.Filter != nil && opts.Filter.Func != nil {
		obj = opts.Filter.Func(prefix, obj)
	}

	if t, ok := obj.(time.Time); ok {
		serialize := opts.SerializeDate
		if serialize == nil {
			serialize = DefaultEncodeOptions().SerializeDate
		}
		obj = serialize(t)
	} else if opts.ArrayFormat == ListFormatComma {
		if list, ok := obj.([]any); ok {
			converted := make([]any, len(list))
			for i, item := range list {
				if t, ok := item.(time.Time); ok {
					serialize := opts.SerializeDate
					if serialize == nil {
						serialize = DefaultEncodeOptions().SerializeDate
					}
					converted[i] = serialize(t)
				} else {
					converted[i] = item
				}
			}
			obj = converted
		}
	}

	if !isUndefinedValue && obj == nil {
		if opts.StrictNullHandling {
			return []string{encodeFinalKeyOnly(prefix, opts)}, nil
		}
		obj = ""
	}

	if isNonNullishPrimitive(obj, opts.SkipNulls) {
		return []string{encodeScalarPair(prefix, obj, opts)}, nil
	}

	if isUndefinedValue {
		return nil, nil
	}

	var pairKeys []pairKey
	list, isList := obj.([]any)
	m, isMap := obj.(*OrderedMap)

	switch {
	case opts.ArrayFormat == ListFormatComma && isList:
		if opts.EncodeValuesOnly {
			// values are encoded individually below via scalar encoding path
		}
		if len(list) > 0 {
			parts := make([]string, 0, len(list))
			for _, e := range list {
				if e == nil {
					if opts.CommaCompactNulls {
						continue
					}
					parts = append(parts, "")
				} else if opts.EncodeValuesOnly && opts.Encode {
					encoder := opts.Encoder
					if encoder == nil {
						encoder = DefaultEncodeOptions().Encoder
					}
					parts = append(parts, encoder(e, opts.Charset, opts.Format))
				} else {
					s, _ := scalarToString(e)
					parts = append(parts, s)
				}
			}
			joinedVal := strings.Join(parts, ",")
			pairKeys = []pairKey{{commaValue: &joinedVal, hasCommaValue: true}}
		} else {
			pairKeys = []pairKey{{hasCommaValue: true, commaValue: nil}}
		}
	case opts.Filter != nil && opts.Filter.Keys != nil:
		for _, k := range opts.Filter.Keys {
			pairKeys = append(pairKeys, pairKey{key: k})
		}
	case isMap:
		keys := append([]string(nil), m.Keys...)
		if opts.Sort != nil {
			sort.SliceStable(keys, func(i, j int) bool { return opts.Sort(keys[i], keys[j]) })
		}
		for _, k := range keys {
			pairKeys = append(pairKeys, pairKey{key: k})
		}
	case isList:
		for i := range list {
			pairKeys = append(pairKeys, pairKey{key: strconv.Itoa(i)})
		}
	}

	encodedPrefix := prefix
	if opts.EncodeDotInKeys {
		encodedPrefix = strings.ReplaceAll(prefix, ".", "%2E")
	}

	adjustedPrefix := encodedPrefix
	if commaRoundTrip && isList && len(list) == 1 {
		adjustedPrefix = encodedPrefix + "[]"
	}

	if opts.AllowEmptyLists && isList && len(list) == 0 {
		return []string{adjustedPrefix + "[]"}, nil
	}

	var values []string
	for _, pk := range pairKeys {
		var childValue any
		var childUndefined bool

		if pk.hasCommaValue {
			if pk.commaValue == nil {
				continue
			}
			childValue = *pk.commaValue
			childUndefined = false
		} else if isMap {
			v, ok := m.Get(pk.key)
			childValue = v
			childUndefined = !ok
		} else if isList {
			idx, err := strconv.Atoi(pk.key)
			if err != nil || idx < 0 || idx >= len(list) {
				childValue = nil
				childUndefined = true
			} else {
				childValue = list[idx]
				childUndefined = false
			}
		} else {
			childUndefined = true
		}

		if opts.SkipNulls && childValue == nil {
			continue
		}

		encodedKey := pk.key
		if opts.AllowDots && opts.EncodeDotInKeys {
			encodedKey = strings.ReplaceAll(encodedKey, ".", "%2E")
		}

		var keyPrefix string
		if pk.hasCommaValue {
			keyPrefix = adjustedPrefix
		} else if isList {
			keyPrefix = opts.ArrayFormat.generator(adjustedPrefix, encodedKey)
		} else if opts.AllowDots {
			keyPrefix = adjustedPrefix + "." + encodedKey
		} else {
			keyPrefix = adjustedPrefix + "[" + encodedKey + "]"
		}

		childOpts := opts
		if opts.ArrayFormat == ListFormatComma && opts.EncodeValuesOnly && isList {
			childOpts.Encode = false
		}

		encoded, err := encodeValue(childValue, childUndefined, ids, keyPrefix, childOpts, commaRoundTrip)
		if err != nil {
			return nil, err
		}
		values = append(values, encoded...)
	}

	return values, nil
}

type pairKey struct {
	key           string
	hasCommaValue bool
	commaValue    *string
}

func isNonNullishPrimitive(val any, skipNulls bool) bool {
	switch v := val.(type) {
	case nil:
		return false
	case Undefined:
		return false
	case string:
		if skipNulls {
			return v != ""
		}
		return true
	case *OrderedMap, []any:
		return false
	default:
		_, ok := scalarToString(val)
		return ok
	}
}

func encodeScalarPair(prefix string, obj any, opts EncodeOptions) string {
	formatter := opts.Format.formatter
	if opts.Encode {
		encoder := opts.Encoder
		if encoder == nil {
			encoder = DefaultEncodeOptions().Encoder
		}
		keyPart := prefix
		if !opts.EncodeValuesOnly {
			keyPart = encoder(prefix, opts.Charset, opts.Format)
		}
		return formatter(keyPart) + "=" + formatter(encoder(obj, opts.Charset, opts.Format))
	}
	s, _ := scalarToString(obj)
	return formatter(prefix) + "=" + formatter(s)
}

func encodeFinalKeyOnly(prefix string, opts EncodeOptions) string {
	if opts.Encode {
		encoder := opts.Encoder
		if encoder == nil {
			encoder = DefaultEncodeOptions().Encoder
		}
		if opts.EncodeValuesOnly {
			return opts.Format.formatter(prefix)
		}
		return opts.Format.formatter(encoder(prefix, opts.Charset, opts.Format))
	}
	return opts.Format.formatter(prefix)
}
