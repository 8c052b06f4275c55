package ga

import (
	"math/rand"
)

// Mutate returns a fresh population in which every character position of
// every individual has been replaced, independently with probability rate,
// by a character drawn from the alphabet. Each replacement is a single
// Bernoulli trial against rate. The input population is left untouched;
// fitness scores are not carried over.
func Mutate(p *Population, alphabet Alphabet, rate float64, rng *rand.Rand) *Population {
	out := &Population{Individuals: make([]*Individual, p.Size())}
	for i, ind := range p.Individuals {
		buf := []byte(ind.DNA)
		for j := range buf {
			if rng.Float64() < rate {
				buf[j] = alphabet.Letter(rng)
			}
		}
		out.Individuals[i] = &Individual{DNA: string(buf)}
	}
	return out
}
