// Package qs implements a bidirectional codec for nested query strings,
// ported from the JavaScript `qs` library. It decodes
// application/x-www-form-urlencoded strings into nested maps and slices
// using bracket or dot notation (`a[b][c]=d`, `a.b.c=d`), and encodes the
// reverse direction with a choice of list formats, charsets, and percent
// formats.
//
// Decoded mappings preserve the order keys were first seen; see OrderedMap.
package qs
