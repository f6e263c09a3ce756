package qs

import (
	"regexp"
	"strings"
)

// dotToBracket rewrites dotted paths into bracket notation, e.g.
// "a.b.c" -> "a[b][c]": every '.' followed by a run of characters other
// than '.' and '[' becomes a bracket group. The rewrite is not limited to
// the top level; a dot inside brackets is rewritten as well ("a[b.c]" ->
// "a[b[c]]"). A literal "%2E" is not a dot and is left unchanged.
var dotToBracket = regexp.MustCompile(`\.([^.\[]+)`)

// splitKeyIntoSegments converts a decoded key like "a.b[c][d]" into
// ["a", "[b]", "[c]", "[d]"], honoring allowDots, maxDepth, and
// strictDepth. At most maxDepth bracket segments follow the parent: once
// maxDepth groups have been consumed, or an unterminated group is met,
// the rest of the key is folded into one trailing "[...]" segment, so the
// result holds at most maxDepth+2 segments. Under strictDepth a remainder
// left because the depth limit was reached is rejected instead; a
// remainder that starts at an unterminated group is still folded, never
// rejected.
func splitKeyIntoSegments(originalKey string, allowDots bool, maxDepth int, strictDepth bool) ([]string, error) {
	key := originalKey
	if allowDots {
		key = dotToBracket.ReplaceAllString(key, "[$1]")
	}

	if maxDepth <= 0 {
		return []string{key}, nil
	}

	var segments []string

	first := strings.IndexByte(key, '[')
	parent := key
	if first >= 0 {
		parent = key[:first]
	}
	if parent != "" {
		segments = append(segments, parent)
	}

	n := len(key)
	openIdx := first
	depth := 0
	unterminated := false

	for openIdx >= 0 && depth < maxDepth {
		level := 1
		i := openIdx + 1
		close := -1

		for i < n {
			switch key[i] {
			case '[':
				level++
			case ']':
				level--
				if level == 0 {
					close = i
				}
			}
			if close >= 0 {
				break
			}
			i++
		}

		if close < 0 {
			unterminated = true
			break // unterminated group; stop collecting
		}

		segments = append(segments, key[openIdx:close+1])
		depth++
		openIdx = strings.IndexByte(key[close+1:], '[')
		if openIdx >= 0 {
			openIdx += close + 1
		}
	}

	if openIdx >= 0 {
		if strictDepth && !unterminated {
			return nil, errDepthExceeded(maxDepth)
		}
		segments = append(segments, "["+key[openIdx:]+"]")
	}

	return segments, nil
}
