package qs

// Undefined marks a hole in a sparse list built during decode. It is
// distinct from nil/null and is always removed by compact before a decode
// result is returned to the caller.
type Undefined struct{}

// undefined is the single instance used throughout the decoder.
var undefined = Undefined{}

func isUndefined(v any) bool {
	_, ok := v.(Undefined)
	return ok
}
