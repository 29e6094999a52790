package weasel

import "math/rand"

// CharSet is the pool of characters any generated or mutated character may
// be drawn from. It keeps the characters in the order they were given, so
// sampling is uniform over the sequence; duplicate characters are permitted
// and weight the draw accordingly.
type CharSet []rune

// NewCharSet builds a CharSet from the runes of s.
func NewCharSet(s string) CharSet {
	return CharSet([]rune(s))
}

// Pick draws one character uniformly at random from the set.
// Returns ErrEmptyCharSet when there is nothing to draw from.
func (cs CharSet) Pick(rng *rand.Rand) (rune, error) {
	if len(cs) == 0 {
		return 0, ErrEmptyCharSet
	}
	return cs[rng.Intn(len(cs))], nil
}

// Contains reports whether r is a member of the set.
func (cs CharSet) Contains(r rune) bool {
	for _, c := range cs {
		if c == r {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every rune of s is a member of the set.
// A run whose char set does not cover the phrase can never converge.
func (cs CharSet) ContainsAll(s string) bool {
	for _, r := range s {
		if !cs.Contains(r) {
			return false
		}
	}
	return true
}
