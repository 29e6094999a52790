package weasel

import (
	"math/rand"
	"strings"
)

// RandomString generates a string of strLen characters chosen independently
// and uniformly at random from charSet. A length of 0 yields the empty
// string without touching the set; otherwise an empty set is reported as
// ErrEmptyCharSet.
func RandomString(strLen int, charSet CharSet, rng *rand.Rand) (string, error) {
	var b strings.Builder
	b.Grow(strLen)

	for i := 0; i < strLen; i++ {
		c, err := charSet.Pick(rng)
		if err != nil {
			return "", err
		}
		b.WriteRune(c)
	}

	return b.String(), nil
}

// MutateString produces a new string from baseStr where each character
// independently has a mutationRate percent chance of being replaced by a
// uniformly random character from charSet. The decision is made per
// character: a rate of 5 means roughly 5% of the characters change, not a
// 5% chance the whole string mutates. The result always has the same number
// of characters as baseStr.
//
// Returns ErrEmptyCharSet if a replacement is triggered and the set is empty.
func MutateString(mutationRate int, baseStr string, charSet CharSet, rng *rand.Rand) (string, error) {
	var b strings.Builder
	b.Grow(len(baseStr))

	for _, c := range baseStr {
		// Roll in [0,100] inclusive, replace on roll <= rate.
		if rng.Intn(101) <= mutationRate {
			mutated, err := charSet.Pick(rng)
			if err != nil {
				return "", err
			}
			b.WriteRune(mutated)
			continue
		}
		b.WriteRune(c)
	}

	return b.String(), nil
}
