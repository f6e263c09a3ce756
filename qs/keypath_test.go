package qs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitKeyIntoSegments(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		key         string
		allowDots   bool
		maxDepth    int
		strictDepth bool
		want        []string
		wantErr     bool
	}{
		"plain key": {
			key:      "a",
			maxDepth: 5,
			want:     []string{"a"},
		},
		"single bracket": {
			key:      "a[b]",
			maxDepth: 5,
			want:     []string{"a", "[b]"},
		},
		"nested brackets": {
			key:      "a[b][c][d]",
			maxDepth: 5,
			want:     []string{"a", "[b]", "[c]", "[d]"},
		},
		"dot notation when allowed": {
			key:       "a.b.c",
			allowDots: true,
			maxDepth:  5,
			want:      []string{"a", "[b]", "[c]"},
		},
		"dot notation when not allowed stays literal": {
			key:      "a.b.c",
			maxDepth: 5,
			want:     []string{"a.b.c"},
		},
		"depth zero never splits": {
			key:      "a[b][c]",
			maxDepth: 0,
			want:     []string{"a[b][c]"},
		},
		"balanced nested bracket group counts as one segment": {
			key:      "a[b[c]]",
			maxDepth: 5,
			want:     []string{"a", "[b[c]]"},
		},
		"beyond max depth folds remainder lenient": {
			key:      "a[b][c][d][e]",
			maxDepth: 2,
			want:     []string{"a", "[b]", "[c]", "[[d][e]]"},
		},
		"beyond max depth errors when strict": {
			key:         "a[b][c][d][e]",
			maxDepth:    2,
			strictDepth: true,
			wantErr:     true,
		},
		"unterminated bracket is folded into a wrapped remainder segment": {
			key:      "a[b",
			maxDepth: 5,
			want:     []string{"a", "[[b]"},
		},
		"unterminated bracket is folded, not rejected, under strict depth": {
			key:         "a[b",
			maxDepth:    5,
			strictDepth: true,
			want:        []string{"a", "[[b]"},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := splitKeyIntoSegments(tc.key, tc.allowDots, tc.maxDepth, tc.strictDepth)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("segments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
