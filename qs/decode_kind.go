package qs

// DecodeKind names the two things a decoder is applied to: a key (or key
// segment) or a value. The Decoder hook does not receive a DecodeKind;
// Decode calls it with the same arguments for keys and values.
type DecodeKind int

const (
	DecodeKindKey DecodeKind = iota
	DecodeKindValue
)
