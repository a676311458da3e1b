// Package identifier derives stable identifiers from name tokens. The same
// tokens always hash to the same identifier, which is what makes predictions
// repeatable for the same person.
package identifier

import (
	"encoding/base32"
	"hash"
	"hash/fnv"
)

func hashTokens(tokens []string) hash.Hash64 {
	h := fnv.New64()
	for i, t := range tokens {
		if i > 0 {
			h.Write([]byte{0x31})
		}
		h.Write([]byte(t))
	}
	return h
}

// New returns a short printable identifier derived from the given tokens.
func New(tokens ...string) string {
	sum := hashTokens(tokens).Sum(nil)
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(sum)
}

// Seed returns the hash of the given tokens as a value suitable for seeding
// a random source.
func Seed(tokens ...string) int64 {
	return int64(hashTokens(tokens).Sum64())
}
