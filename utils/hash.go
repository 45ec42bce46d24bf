package utils

import (
	"github.com/benbjohnson/immutable"
)

// Hasher hashes and compares values of type T.
type Hasher[T any] immutable.Hasher[T]

// NewIntMap creates an immutable map keyed by integers.
func NewIntMap[V any]() *immutable.Map[int, V] {
	return immutable.NewMap[int, V](immutable.NewHasher(0))
}

// HashCombine uses the C++ boost algorithm for combining multiple hash values.
func HashCombine(hs ...uint32) (seed uint32) {
	for _, v := range hs {
		seed = v + 0x9e3779b9 + (seed << 6) + (seed >> 2)
	}

	return
}
