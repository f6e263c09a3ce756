package qs

import (
	"errors"
	"fmt"
)

// Sentinel errors callers can match with errors.Is. Bound/validation
// messages are built with fmt.Errorf("%w: ...", sentinel, ...) so the
// literal wording (pinned by the JS `qs` reference's own tests) survives
// alongside the sentinel.
var (
	// ErrCircularReference is returned by Encode when the input graph
	// contains a cycle reachable through Mapping/Sequence identity.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrDepthExceeded is returned by Decode when strict_depth is set and
	// well-formed bracket content remains beyond the configured depth.
	ErrDepthExceeded = errors.New("input depth exceeded")

	// ErrParameterLimitExceeded is returned by Decode when
	// RaiseOnLimitExceeded is set and the pair count exceeds ParameterLimit.
	ErrParameterLimitExceeded = errors.New("parameter limit exceeded")

	// ErrListLimitExceeded is returned by Decode when RaiseOnLimitExceeded
	// is set and a list would grow beyond ListLimit elements.
	ErrListLimitExceeded = errors.New("list limit exceeded")

	// ErrInvalidOption is returned by NewDecodeOptions/NewEncodeOptions
	// when two fields are set to an incompatible combination or a numeric
	// field is out of range, and by Decode when ParameterLimit is not
	// positive.
	ErrInvalidOption = errors.New("invalid option")

	// ErrInvalidInput is returned by Decode when given a value that is
	// neither a string nor an *OrderedMap.
	ErrInvalidInput = errors.New("input must be a string or *OrderedMap")
)

func errDepthExceeded(depth int) error {
	return fmt.Errorf("%w: depth option of %d and strict_depth is true", ErrDepthExceeded, depth)
}

func errParameterLimitExceeded(limit int) error {
	unit := "parameter"
	if limit != 1 {
		unit += "s"
	}
	return fmt.Errorf("%w: only %d %s allowed", ErrParameterLimitExceeded, limit, unit)
}

func errListLimitExceeded(limit int) error {
	unit := "element"
	if limit != 1 {
		unit += "s"
	}
	return fmt.Errorf("%w: only %d %s allowed in a list", ErrListLimitExceeded, limit, unit)
}
