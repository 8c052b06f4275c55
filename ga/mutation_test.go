package ga

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutateRateZeroIsIdentity(t *testing.T) {
	const target = "TO BE OR NOT TO BE"
	rng := rand.New(rand.NewSource(4))
	pop := NewPopulation(16, NewAlphabet(target), rng)

	out := Mutate(pop, NewAlphabet(target), 0, rng)
	require.Equal(t, pop.Size(), out.Size())
	for i := range pop.Individuals {
		assert.Equal(t, pop.Individuals[i].DNA, out.Individuals[i].DNA)
	}
}

func TestMutateDoesNotTouchInput(t *testing.T) {
	const target = "HELLO"
	rng := rand.New(rand.NewSource(4))
	pop := NewPopulation(8, NewAlphabet(target), rng)

	before := make([]string, pop.Size())
	for i, ind := range pop.Individuals {
		before[i] = ind.DNA
	}

	Mutate(pop, NewAlphabet(target), 1, rng)
	for i, ind := range pop.Individuals {
		assert.Equal(t, before[i], ind.DNA)
	}
}

func TestMutateRateOneRedrawsEveryPosition(t *testing.T) {
	// With a single-character alphabet a full redraw is observable
	// directly: every position collapses to that character.
	rng := rand.New(rand.NewSource(4))
	pop := &Population{Individuals: []*Individual{{DNA: "YYYY"}}}

	out := Mutate(pop, NewAlphabet("XXXX"), 1, rng)
	assert.Equal(t, "XXXX", out.Individuals[0].DNA)
}

func TestMutateRateOneDrawsFromAlphabet(t *testing.T) {
	// Statistical check: a redrawn position over the alphabet {A,B}
	// differs from 'A' about half the time.
	const n = 1000
	rng := rand.New(rand.NewSource(4))
	pop := &Population{Individuals: []*Individual{{DNA: strings.Repeat("A", n)}}}

	out := Mutate(pop, NewAlphabet(strings.Repeat("AB", n/2)), 1, rng)
	dna := out.Individuals[0].DNA
	require.Len(t, dna, n)

	changed := 0
	for i := 0; i < n; i++ {
		assert.Contains(t, "AB", string(dna[i]))
		if dna[i] != 'A' {
			changed++
		}
	}
	assert.InDelta(t, 0.5, float64(changed)/n, 0.1)
}

func TestMutateDeterministicUnderSeed(t *testing.T) {
	const target = "HELLO"
	pop := &Population{Individuals: []*Individual{{DNA: "XXXXX"}, {DNA: "HELLO"}}}

	first := Mutate(pop, NewAlphabet(target), 0.5, rand.New(rand.NewSource(9)))
	second := Mutate(pop, NewAlphabet(target), 0.5, rand.New(rand.NewSource(9)))
	for i := range first.Individuals {
		assert.Equal(t, first.Individuals[i].DNA, second.Individuals[i].DNA)
	}
}
