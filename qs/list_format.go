package qs

import "fmt"

// ListFormat selects how the encoder serializes a Sequence value.
type ListFormat string

const (
	// ListFormatIndices emits a[0]=b&a[1]=c.
	ListFormatIndices ListFormat = "indices"
	// ListFormatBrackets emits a[]=b&a[]=c.
	ListFormatBrackets ListFormat = "brackets"
	// ListFormatRepeat emits a=b&a=c.
	ListFormatRepeat ListFormat = "repeat"
	// ListFormatComma emits a single pair with comma-joined scalars: a=b,c.
	ListFormatComma ListFormat = "comma"
)

// generator builds the per-element key prefix for a list item at the
// given key (index), given the already-built prefix for the list itself.
func (f ListFormat) generator(prefix string, key string) string {
	switch f {
	case ListFormatBrackets:
		return prefix + "[]"
	case ListFormatComma:
		return prefix
	case ListFormatRepeat:
		return prefix
	case ListFormatIndices:
		return fmt.Sprintf("%s[%s]", prefix, key)
	default:
		return fmt.Sprintf("%s[%s]", prefix, key)
	}
}
