package qs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		opts  func() DecodeOptions
		want  *OrderedMap
	}{
		"simple pair": {
			input: "a=b",
			opts:  DefaultDecodeOptions,
			want:  om("a", "b"),
		},
		"bracket nesting": {
			input: "a[b]=c",
			opts:  DefaultDecodeOptions,
			want:  om("a", om("b", "c")),
		},
		"deep bracket nesting": {
			input: "a[b][c][d]=e",
			opts:  DefaultDecodeOptions,
			want:  om("a", om("b", om("c", om("d", "e")))),
		},
		"dot notation requires allow_dots": {
			input: "a.b=c",
			opts:  DefaultDecodeOptions,
			want:  om("a.b", "c"),
		},
		"dot notation with allow_dots": {
			input: "a.b=c",
			opts: func() DecodeOptions {
				o := DefaultDecodeOptions()
				o.AllowDots = true
				return o
			},
			want: om("a", om("b", "c")),
		},
		"bracket list produces indexed list": {
			input: "a[0]=x&a[1]=y",
			opts:  DefaultDecodeOptions,
			want:  om("a", []any{"x", "y"}),
		},
		"empty bracket list appends in order": {
			input: "a[]=x&a[]=y",
			opts:  DefaultDecodeOptions,
			want:  om("a", []any{"x", "y"}),
		},
		"duplicate scalar keys combine by default": {
			input: "a=x&a=y",
			opts:  DefaultDecodeOptions,
			want:  om("a", []any{"x", "y"}),
		},
		"duplicate scalar keys with duplicates=last": {
			input: "a=x&a=y",
			opts: func() DecodeOptions {
				o := DefaultDecodeOptions()
				o.Duplicates = DuplicatesLast
				return o
			},
			want: om("a", "y"),
		},
		"duplicate scalar keys with duplicates=first": {
			input: "a=x&a=y",
			opts: func() DecodeOptions {
				o := DefaultDecodeOptions()
				o.Duplicates = DuplicatesFirst
				return o
			},
			want: om("a", "x"),
		},
		"comma option splits into a list": {
			input: "a=x,y",
			opts: func() DecodeOptions {
				o := DefaultDecodeOptions()
				o.Comma = true
				return o
			},
			want: om("a", []any{"x", "y"}),
		},
		"missing equals sign yields empty string": {
			input: "a",
			opts:  DefaultDecodeOptions,
			want:  om("a", ""),
		},
		"missing equals sign yields nil under strict null handling": {
			input: "a",
			opts: func() DecodeOptions {
				o := DefaultDecodeOptions()
				o.StrictNullHandling = true
				return o
			},
			want: om("a", nil),
		},
		"leading question mark kept by default": {
			input: "?a=b",
			opts:  DefaultDecodeOptions,
			want:  om("?a", "b"),
		},
		"leading question mark stripped with ignore_query_prefix": {
			input: "?a=b",
			opts: func() DecodeOptions {
				o := DefaultDecodeOptions()
				o.IgnoreQueryPrefix = true
				return o
			},
			want: om("a", "b"),
		},
		"percent-encoded brackets decode the same as literal ones": {
			input: "a%5Bb%5D=c",
			opts:  DefaultDecodeOptions,
			want:  om("a", om("b", "c")),
		},
		"index beyond list_limit demotes to string-keyed map": {
			input: "a[1]=x&a[30]=y",
			opts: func() DecodeOptions {
				o := DefaultDecodeOptions()
				o.ListLimit = 20
				return o
			},
			want: om("a", om("1", "x", "30", "y")),
		},
		"empty input decodes to an empty map": {
			input: "",
			opts:  DefaultDecodeOptions,
			want:  NewOrderedMap(),
		},
		"nested list of maps": {
			input: "a[0][b]=c&a[1][b]=d",
			opts:  DefaultDecodeOptions,
			want:  om("a", []any{om("b", "c"), om("b", "d")}),
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := Decode(tc.input, tc.opts())
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", tc.input, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Decode(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestDecodeCharsetSentinel(t *testing.T) {
	t.Parallel()

	opts := DefaultDecodeOptions()
	opts.CharsetSentinel = true

	got, err := Decode("utf8=%E2%9C%93&a=%C3%A9", opts)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	want := om("a", "é")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeParameterLimit(t *testing.T) {
	t.Parallel()

	opts := DefaultDecodeOptions()
	opts.ParameterLimit = 1
	opts.RaiseOnLimitExceeded = true

	_, err := Decode("a=1&b=2", opts)
	if err == nil {
		t.Fatal("expected a parameter limit error")
	}
}

func TestDecodeInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decode(42, DefaultDecodeOptions())
	if err == nil {
		t.Fatal("expected an invalid-input error")
	}
}

func TestDecodeDecoderTakesPrecedenceOverLegacyDecoder(t *testing.T) {
	t.Parallel()

	opts := DefaultDecodeOptions()
	opts.Decoder = func(s string, _ Charset) any { return "decoder:" + s }
	opts.LegacyDecoder = func(s string, _ Charset) any { return "legacy:" + s }

	got, err := Decode("a=b", opts)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	want := om("decoder:a", "decoder:b")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeLegacyDecoderUsedWhenDecoderUnset(t *testing.T) {
	t.Parallel()

	opts := DefaultDecodeOptions()
	opts.Decoder = nil
	opts.LegacyDecoder = func(s string, _ Charset) any { return "legacy:" + s }

	got, err := Decode("a=b", opts)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	want := om("legacy:a", "legacy:b")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
