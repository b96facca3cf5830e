package ordmap

import (
	"errors"
	"fmt"
)

// Pair is a single (key, value) entry. The dense store is a slice of these,
// and the bulk construction, snapshot, and JSON surfaces all traffic in them.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

var (
	// ErrBadPairEncoding reports a JSON element that is not a two element
	// [key, value] array during UnmarshalJSON.
	ErrBadPairEncoding = errors.New("ordmap: json pair must be a two element array")
)

// Positional contract violations panic rather than returning an error. They
// indicate a programming mistake, exactly as out of range slice indexing
// does, and are deliberately distinct from key absence, which is always
// reported with an ok bool.

func panicIndex(op string, i, n int) {
	panic(fmt.Sprintf("ordmap: %s: index %d out of range with length %d", op, i, n))
}

func panicRange(op string, i, j, n int) {
	panic(fmt.Sprintf("ordmap: %s: range [%d:%d] out of range with length %d", op, i, j, n))
}
