package qs

import "time"

// Decoder is a user-supplied hook for decoding a key segment or scalar
// value, in place of the package's built-in percent/charset handling. It
// is called with the same arguments for keys and values and is not told
// which of the two it is decoding (it receives no DecodeKind).
type Decoder func(str string, charset Charset) any

// Encoder is a user-supplied hook for encoding a scalar value, in place
// of EncodeScalar.
type Encoder func(value any, charset Charset, format Format) string

// Filter restricts or transforms which keys Encode emits. If both Keys
// and Func are set, both apply: Func transforms each value first and Keys
// still selects the keys.
type Filter struct {
	// Keys, if non-nil, limits encoding to these keys, in the given order.
	// It applies at every nesting level, and for lists it selects indices.
	Keys []string
	// Func, if non-nil, is called with each (prefix, value) pair
	// encountered during traversal and may return a replacement value
	// (or Undefined to drop it).
	Func func(prefix string, value any) any
}

// DecodeOptions configures Decode. The zero value is not ready to use;
// construct with NewDecodeOptions or DefaultDecodeOptions().
type DecodeOptions struct {
	AllowDots              bool
	DecodeDotInKeys        bool
	AllowEmptyLists        bool
	AllowPrototypes        bool
	ListLimit              int
	Charset                Charset
	CharsetSentinel        bool
	Comma                  bool
	Delimiter              string
	Depth                  int
	StrictDepth            bool
	Duplicates             Duplicates
	IgnoreQueryPrefix      bool
	InterpretNumericEntities bool
	ParameterLimit         int
	ParseLists             bool
	PlainObjects           bool
	RaiseOnLimitExceeded   bool
	StrictNullHandling     bool
	Decoder                Decoder
	// LegacyDecoder is consulted when Decoder is nil, before falling back
	// to the built-in decoder. Precedence: Decoder > LegacyDecoder > built-in.
	LegacyDecoder Decoder
}

// DefaultDecodeOptions returns the option set Decode uses when none is
// given, matching the JS `qs` library's defaults.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		AllowDots:       false,
		AllowEmptyLists: false,
		AllowPrototypes: false,
		ListLimit:       20,
		Charset:         CharsetUTF8,
		CharsetSentinel:  false,
		Comma:           false,
		Delimiter:       "&",
		Depth:           5,
		StrictDepth:     false,
		Duplicates:      DuplicatesCombine,
		IgnoreQueryPrefix: false,
		ParameterLimit:  1000,
		ParseLists:      true,
		PlainObjects:    false,
		RaiseOnLimitExceeded: false,
		StrictNullHandling: false,
		Decoder: func(s string, charset Charset) any {
			return DecodeScalar(s, charset)
		},
	}
}

// DecodeOption mutates a DecodeOptions under construction.
type DecodeOption func(*DecodeOptions)

func WithAllowDots(v bool) DecodeOption                { return func(o *DecodeOptions) { o.AllowDots = v } }
func WithDecodeDotInKeys(v bool) DecodeOption          { return func(o *DecodeOptions) { o.DecodeDotInKeys = v } }
func WithAllowEmptyLists(v bool) DecodeOption          { return func(o *DecodeOptions) { o.AllowEmptyLists = v } }
func WithAllowPrototypes(v bool) DecodeOption          { return func(o *DecodeOptions) { o.AllowPrototypes = v } }
func WithListLimit(v int) DecodeOption                 { return func(o *DecodeOptions) { o.ListLimit = v } }
func WithDecodeCharset(v Charset) DecodeOption         { return func(o *DecodeOptions) { o.Charset = v } }
func WithCharsetSentinel(v bool) DecodeOption          { return func(o *DecodeOptions) { o.CharsetSentinel = v } }
func WithComma(v bool) DecodeOption                    { return func(o *DecodeOptions) { o.Comma = v } }
func WithDelimiter(v string) DecodeOption              { return func(o *DecodeOptions) { o.Delimiter = v } }
func WithDepth(v int) DecodeOption                     { return func(o *DecodeOptions) { o.Depth = v } }
func WithStrictDepth(v bool) DecodeOption              { return func(o *DecodeOptions) { o.StrictDepth = v } }
func WithDuplicates(v Duplicates) DecodeOption         { return func(o *DecodeOptions) { o.Duplicates = v } }
func WithIgnoreQueryPrefix(v bool) DecodeOption        { return func(o *DecodeOptions) { o.IgnoreQueryPrefix = v } }
func WithInterpretNumericEntities(v bool) DecodeOption { return func(o *DecodeOptions) { o.InterpretNumericEntities = v } }
func WithParameterLimit(v int) DecodeOption            { return func(o *DecodeOptions) { o.ParameterLimit = v } }
func WithParseLists(v bool) DecodeOption               { return func(o *DecodeOptions) { o.ParseLists = v } }
func WithPlainObjects(v bool) DecodeOption             { return func(o *DecodeOptions) { o.PlainObjects = v } }
func WithRaiseOnLimitExceeded(v bool) DecodeOption      { return func(o *DecodeOptions) { o.RaiseOnLimitExceeded = v } }
func WithStrictNullHandling(v bool) DecodeOption       { return func(o *DecodeOptions) { o.StrictNullHandling = v } }
func WithDecoder(v Decoder) DecodeOption               { return func(o *DecodeOptions) { o.Decoder = v } }
func WithLegacyDecoder(v Decoder) DecodeOption         { return func(o *DecodeOptions) { o.LegacyDecoder = v } }

// NewDecodeOptions builds a DecodeOptions from DefaultDecodeOptions with
// the given overrides applied, rejecting combinations that qs considers
// invalid.
func NewDecodeOptions(opts ...DecodeOption) (DecodeOptions, error) {
	o := DefaultDecodeOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.DecodeDotInKeys && !o.AllowDots {
		return o, errInvalidOption("decode_dot_in_keys requires allow_dots")
	}
	if o.Depth < 0 {
		return o, errInvalidOption("depth must be >= 0")
	}
	if o.ListLimit < 0 {
		return o, errInvalidOption("list_limit must be >= 0")
	}
	if o.ParameterLimit <= 0 {
		return o, errInvalidOption("parameter_limit must be > 0")
	}
	return o, nil
}

// EncodeOptions configures Encode. The zero value is not ready to use;
// construct with NewEncodeOptions or DefaultEncodeOptions().
type EncodeOptions struct {
	AddQueryPrefix       bool
	AllowDots            bool
	AllowEmptyLists      bool
	ArrayFormat          ListFormat
	Charset              Charset
	CharsetSentinel      bool
	Delimiter            string
	EncodeDotInKeys      bool
	Encode               bool
	EncodeValuesOnly     bool
	Encoder              Encoder
	Filter               *Filter
	Format               Format
	CommaRoundTrip       bool
	CommaCompactNulls    bool
	SkipNulls            bool
	Sort                 func(a, b string) bool
	StrictNullHandling   bool
	// SerializeDate stringifies a time.Time value before encoding. The
	// default formats with RFC3339Nano (Go's nearest idiomatic equivalent
	// to Python's datetime.isoformat()).
	SerializeDate func(t time.Time) string
}

// DefaultEncodeOptions returns the option set Encode uses when none is
// given, matching the JS `qs` library's defaults.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		AddQueryPrefix:     false,
		AllowDots:          false,
		AllowEmptyLists:    false,
		ArrayFormat:        ListFormatIndices,
		Charset:            CharsetUTF8,
		CharsetSentinel:    false,
		Delimiter:          "&",
		EncodeDotInKeys:    false,
		Encode:             true,
		EncodeValuesOnly:   false,
		Format:             FormatRFC3986,
		CommaCompactNulls:  false,
		SkipNulls:          false,
		StrictNullHandling: false,
		SerializeDate: func(t time.Time) string {
			return t.Format(time.RFC3339Nano)
		},
		Encoder: func(value any, charset Charset, format Format) string {
			return EncodeScalar(value, charset, format)
		},
	}
}

// EncodeOption mutates an EncodeOptions under construction.
type EncodeOption func(*EncodeOptions)

func WithAddQueryPrefix(v bool) EncodeOption       { return func(o *EncodeOptions) { o.AddQueryPrefix = v } }
func WithEncodeAllowDots(v bool) EncodeOption      { return func(o *EncodeOptions) { o.AllowDots = v } }
func WithEncodeAllowEmptyLists(v bool) EncodeOption { return func(o *EncodeOptions) { o.AllowEmptyLists = v } }
func WithArrayFormat(v ListFormat) EncodeOption    { return func(o *EncodeOptions) { o.ArrayFormat = v } }
func WithEncodeCharset(v Charset) EncodeOption     { return func(o *EncodeOptions) { o.Charset = v } }
func WithEncodeCharsetSentinel(v bool) EncodeOption { return func(o *EncodeOptions) { o.CharsetSentinel = v } }
func WithEncodeDelimiter(v string) EncodeOption    { return func(o *EncodeOptions) { o.Delimiter = v } }
func WithEncodeDotInKeys(v bool) EncodeOption      { return func(o *EncodeOptions) { o.EncodeDotInKeys = v } }
func WithEncode(v bool) EncodeOption               { return func(o *EncodeOptions) { o.Encode = v } }
func WithEncodeValuesOnly(v bool) EncodeOption     { return func(o *EncodeOptions) { o.EncodeValuesOnly = v } }
func WithEncoder(v Encoder) EncodeOption           { return func(o *EncodeOptions) { o.Encoder = v } }
func WithFilter(v *Filter) EncodeOption            { return func(o *EncodeOptions) { o.Filter = v } }
func WithEncodeFormat(v Format) EncodeOption       { return func(o *EncodeOptions) { o.Format = v } }
func WithCommaRoundTrip(v bool) EncodeOption       { return func(o *EncodeOptions) { o.CommaRoundTrip = v } }
func WithCommaCompactNulls(v bool) EncodeOption    { return func(o *EncodeOptions) { o.CommaCompactNulls = v } }
func WithSkipNulls(v bool) EncodeOption            { return func(o *EncodeOptions) { o.SkipNulls = v } }
func WithSort(v func(a, b string) bool) EncodeOption { return func(o *EncodeOptions) { o.Sort = v } }
func WithEncodeStrictNullHandling(v bool) EncodeOption {
	return func(o *EncodeOptions) { o.StrictNullHandling = v }
}

// NewEncodeOptions builds an EncodeOptions from DefaultEncodeOptions with
// the given overrides applied, rejecting combinations that qs considers
// invalid.
func NewEncodeOptions(opts ...EncodeOption) (EncodeOptions, error) {
	o := DefaultEncodeOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.EncodeDotInKeys && !o.AllowDots {
		return o, errInvalidOption("encode_dot_in_keys requires allow_dots")
	}
	if o.ArrayFormat == ListFormatComma && o.EncodeValuesOnly {
		// comma format already emits one pair per key; EncodeValuesOnly
		// is accepted with it rather than rejected (each list element is
		// then encoded before joining, and the key is left unencoded),
		// matching the JS reference's leniency.
		_ = o
	}
	return o, nil
}

func errInvalidOption(msg string) error {
	return &invalidOptionError{msg: msg}
}

type invalidOptionError struct{ msg string }

func (e *invalidOptionError) Error() string { return "invalid option: " + e.msg }
func (e *invalidOptionError) Unwrap() error  { return ErrInvalidOption }
