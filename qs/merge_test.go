package qs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	opts := DefaultDecodeOptions()

	tests := map[string]struct {
		target any
		source any
		opts   DecodeOptions
		want   any
	}{
		"nil source returns target unchanged": {
			target: om("a", "1"),
			source: nil,
			opts:   opts,
			want:   om("a", "1"),
		},
		"two mappings merge recursively": {
			target: om("a", "1"),
			source: om("b", "2"),
			opts:   opts,
			want:   om("a", "1", "b", "2"),
		},
		"overlapping mapping keys merge their values": {
			target: om("a", om("x", "1")),
			source: om("a", om("y", "2")),
			opts:   opts,
			want:   om("a", om("x", "1", "y", "2")),
		},
		"scalar target and mapping source concatenate as a list": {
			target: "1",
			source: om("a", "2"),
			opts:   opts,
			want:   []any{"1", om("a", "2")},
		},
		"list target merges into mapping source by string index": {
			target: []any{"a", "b"},
			source: om("x", "y"),
			opts:   opts,
			want:   om("0", "a", "1", "b", "x", "y"),
		},
		"scalar target and scalar source become a two-element list": {
			target: "a",
			source: "b",
			opts:   opts,
			want:   []any{"a", "b"},
		},
		"list target and list source concatenate": {
			target: []any{"a"},
			source: []any{"b"},
			opts:   opts,
			want:   []any{"a", "b"},
		},
		"list with hole promotes by index then drops remaining holes": {
			target: []any{undefined, "b"},
			source: []any{"a"},
			opts:   opts,
			want:   []any{"a", "b"},
		},
		"list with a surviving hole and parse_lists disabled promotes to a map": {
			target: []any{undefined, "b", undefined},
			source: []any{"a"},
			opts:   func() DecodeOptions { o := opts; o.ParseLists = false; return o }(),
			want:   om("0", "a", "1", "b"),
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := merge(tc.target, tc.source, tc.opts)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCombine(t *testing.T) {
	t.Parallel()

	got := combine("a", "b")
	want := []any{"a", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("combine() mismatch (-want +got):\n%s", diff)
	}

	got = combine([]any{"a", "b"}, "c")
	want = []any{"a", "b", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("combine() mismatch (-want +got):\n%s", diff)
	}
}
