package weasel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomString(t *testing.T) {
	charSet := NewCharSet(DefaultCharSet)
	rng := rand.New(rand.NewSource(7))

	for _, strLen := range []int{0, 1, 10, 57, 200} {
		s, err := RandomString(strLen, charSet, rng)
		require.NoError(t, err)

		runes := []rune(s)
		assert.Len(t, runes, strLen)
		for _, c := range runes {
			assert.True(t, charSet.Contains(c), "generated %q outside the char set", c)
		}
	}
}

func TestRandomStringEmptyCharSet(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	_, err := RandomString(5, NewCharSet(""), rng)
	assert.ErrorIs(t, err, ErrEmptyCharSet)
}

func TestRandomStringZeroLength(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// Length 0 never samples, so even an empty set is fine.
	s, err := RandomString(0, NewCharSet(""), rng)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestMutateStringLength(t *testing.T) {
	charSet := NewCharSet("ABCDEFGHIJKLMNOP")
	rng := rand.New(rand.NewSource(7))

	for _, base := range []string{"", "H", "HELLO", "METHINKS IT IS LIKE A WEASEL"} {
		for _, rate := range []int{1, 5, 50, 100} {
			s, err := MutateString(rate, base, charSet, rng)
			require.NoError(t, err)
			assert.Len(t, []rune(s), len([]rune(base)),
				"rate %d changed the length of %q", rate, base)
		}
	}
}

func TestMutateStringFullRateSingleChar(t *testing.T) {
	// Rate 100 with the single-character set {x} replaces every position.
	rng := rand.New(rand.NewSource(7))

	s, err := MutateString(100, "HELLO", NewCharSet("x"), rng)
	require.NoError(t, err)
	assert.Equal(t, "xxxxx", s)
}

func TestMutateStringEmptyCharSet(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// Rate 100 guarantees at least one mutation is triggered.
	_, err := MutateString(100, "HELLO", NewCharSet(""), rng)
	assert.ErrorIs(t, err, ErrEmptyCharSet)
}

func TestMutateStringPerCharacterDecision(t *testing.T) {
	// A low rate must mutate roughly that fraction of characters, not
	// flip whole strings. Over many trials on a long base string, a 5%
	// rate with a disjoint char set should leave most positions alone but
	// touch some, which can only happen with per-character decisions.
	base := "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA" // 50 chars
	charSet := NewCharSet("z")                                   // every mutation is visible
	rng := rand.New(rand.NewSource(7))

	changedTotal := 0
	trials := 200
	for i := 0; i < trials; i++ {
		s, err := MutateString(5, base, charSet, rng)
		require.NoError(t, err)

		changed := 0
		for _, c := range s {
			if c == 'z' {
				changed++
			}
		}
		assert.Less(t, changed, 30, "a 5%% rate should not rewrite most of the string")
		changedTotal += changed
	}

	// Expected ~6% of 50*200 = 10000 positions (roll <= 5 out of [0,100]).
	assert.Greater(t, changedTotal, 300, "a 5%% rate should mutate some characters over %d trials", trials)
	assert.Less(t, changedTotal, 1200)
}
