package ga

import (
	"math/rand"
)

// Individual is one candidate sequence plus its current fitness score.
type Individual struct {
	DNA     string
	Fitness float64
}

// Population holds one generation of individuals.
type Population struct {
	Individuals []*Individual
}

// NewPopulation creates a random population of size individuals, each drawn
// character by character from the target's alphabet.
func NewPopulation(size int, alphabet Alphabet, rng *rand.Rand) *Population {
	p := &Population{Individuals: make([]*Individual, size)}
	n := alphabet.Len()
	for i := range p.Individuals {
		p.Individuals[i] = &Individual{DNA: alphabet.Sample(n, rng)}
	}
	return p
}

// Size returns the population size.
func (p *Population) Size() int {
	return len(p.Individuals)
}

// Best returns the individual with the highest fitness and its index.
// Ties resolve to the lowest index.
func (p *Population) Best() (*Individual, int) {
	if len(p.Individuals) == 0 {
		return nil, -1
	}
	best, idx := p.Individuals[0], 0
	for i, ind := range p.Individuals[1:] {
		if ind.Fitness > best.Fitness {
			best, idx = ind, i+1
		}
	}
	return best, idx
}

// MeanFitness returns the average fitness across the population.
func (p *Population) MeanFitness() float64 {
	if len(p.Individuals) == 0 {
		return 0
	}
	var sum float64
	for _, ind := range p.Individuals {
		sum += ind.Fitness
	}
	return sum / float64(len(p.Individuals))
}
