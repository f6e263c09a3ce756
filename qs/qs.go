package qs

// Loads is an alias for Decode, decoding a query string into a Mapping.
func Loads(value string, opts DecodeOptions) (*OrderedMap, error) {
	return Decode(value, opts)
}

// Load is an alias for Decode, accepting either a query string or an
// already-built *OrderedMap.
func Load(value any, opts DecodeOptions) (*OrderedMap, error) {
	return Decode(value, opts)
}

// Dumps is an alias for Encode.
func Dumps(value any, opts EncodeOptions) (string, error) {
	return Encode(value, opts)
}

// Dump is an alias for Encode.
func Dump(value any, opts EncodeOptions) (string, error) {
	return Encode(value, opts)
}
