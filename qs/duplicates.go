package qs

// Duplicates selects how the decoder reconciles a key seen more than once.
type Duplicates int

const (
	// DuplicatesCombine merges repeated scalar values into a list,
	// preserving the order they were seen. This is the default.
	DuplicatesCombine Duplicates = iota
	// DuplicatesFirst keeps only the first occurrence.
	DuplicatesFirst
	// DuplicatesLast keeps only the last occurrence, overwriting prior ones.
	DuplicatesLast
)
