package qs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		root *OrderedMap
		want *OrderedMap
	}{
		"drops top-level undefined": {
			root: om("a", "1", "b", undefined),
			want: om("a", "1"),
		},
		"drops undefined inside nested map": {
			root: om("a", om("x", "1", "y", undefined)),
			want: om("a", om("x", "1")),
		},
		"drops undefined inside nested list": {
			root: om("a", []any{"1", undefined, "2"}),
			want: om("a", []any{"1", "2"}),
		},
		"no-op on a tree with no holes": {
			root: om("a", om("b", []any{"1", "2"})),
			want: om("a", om("b", []any{"1", "2"})),
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := compact(tc.root)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("compact() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
