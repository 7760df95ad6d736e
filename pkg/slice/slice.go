package slice

import (
	"math/rand/v2"
)

// RandomChoice panics on an empty slice.
func RandomChoice[T any](s []T) T {
	idx := rand.IntN(len(s)) // nolint: gosec // no need for crypto/rand here
	return s[idx]
}
