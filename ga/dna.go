package ga

import (
	"math/rand"
)

// Alphabet is the pool of characters individuals are built from. It keeps
// one entry per target position, duplicates included, so sampling is biased
// toward characters that occur more often in the target.
type Alphabet struct {
	letters []byte
}

// NewAlphabet builds the sampling alphabet from the target string.
func NewAlphabet(target string) Alphabet {
	return Alphabet{letters: []byte(target)}
}

// Len returns the number of letters in the alphabet, duplicates included.
// This equals the target length.
func (a Alphabet) Len() int {
	return len(a.letters)
}

// Sample draws n characters uniformly at random, with replacement.
func (a Alphabet) Sample(n int, rng *rand.Rand) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = a.letters[rng.Intn(len(a.letters))]
	}
	return string(buf)
}

// Letter draws a single character.
func (a Alphabet) Letter(rng *rand.Rand) byte {
	return a.letters[rng.Intn(len(a.letters))]
}
