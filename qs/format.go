package qs

import "strings"

// Format selects the percent-encoding dialect used by the encoder: RFC
// 3986 (the modern default, spaces as %20) or RFC 1738 (legacy
// application/x-www-form-urlencoded, spaces as +).
type Format string

const (
	FormatRFC3986 Format = "RFC3986"
	FormatRFC1738 Format = "RFC1738"
)

// formatter rewrites an already percent-encoded string to match the
// format's space convention.
func (f Format) formatter(value string) string {
	if f == FormatRFC1738 {
		return strings.ReplaceAll(value, "%20", "+")
	}
	return value
}
