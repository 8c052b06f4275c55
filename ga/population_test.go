package ga

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPopulation(t *testing.T) {
	const target = "HELLO"
	rng := rand.New(rand.NewSource(1))
	pop := NewPopulation(10, NewAlphabet(target), rng)

	require.Equal(t, 10, pop.Size())
	for _, ind := range pop.Individuals {
		require.Len(t, ind.DNA, len(target))
		for i := 0; i < len(ind.DNA); i++ {
			assert.True(t, strings.ContainsRune(target, rune(ind.DNA[i])),
				"character %q not drawn from target alphabet", ind.DNA[i])
		}
	}
}

func TestBestPicksFirstIndexOnTies(t *testing.T) {
	pop := &Population{Individuals: []*Individual{
		{DNA: "AA", Fitness: 0.5},
		{DNA: "AB", Fitness: 0.9},
		{DNA: "BA", Fitness: 0.9},
		{DNA: "BB", Fitness: 0.1},
	}}

	best, idx := pop.Best()
	assert.Equal(t, 1, idx)
	assert.Equal(t, "AB", best.DNA)
}

func TestBestEmptyPopulation(t *testing.T) {
	pop := &Population{}
	best, idx := pop.Best()
	assert.Nil(t, best)
	assert.Equal(t, -1, idx)
}

func TestMeanFitness(t *testing.T) {
	pop := &Population{Individuals: []*Individual{
		{Fitness: 0.2},
		{Fitness: 0.4},
		{Fitness: 0.6},
	}}
	assert.InDelta(t, 0.4, pop.MeanFitness(), 1e-9)

	assert.Zero(t, (&Population{}).MeanFitness())
}
