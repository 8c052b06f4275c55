package ga

import (
	"math/rand"
)

// Reproduce builds the next generation of size individuals from the mating
// pool. Each of size/2 iterations picks two value-distinct parents and
// produces two babies via blended crossover. prev is the generation the
// pool was built from; it serves as the fallback parent source when the
// pool is degenerate.
func Reproduce(matingPool []string, prev *Population, target string, size int, rng *rand.Rand) *Population {
	next := &Population{Individuals: make([]*Individual, 0, size)}
	for i := 0; i < size/2; i++ {
		parentA, parentB := selectParents(matingPool, prev, rng)
		babyA, babyB := crossover(parentA, parentB, target)
		next.Individuals = append(next.Individuals,
			&Individual{DNA: babyA}, &Individual{DNA: babyB})
	}
	return next
}

// selectParents picks parentA uniformly from the mating pool, then parentB
// uniformly from the pool entries whose value differs from parentA's.
// Degenerate pools are recoverable rather than fatal: an empty pool falls
// back to the previous generation, and when no second distinct value
// exists anywhere the parent is paired with itself, leaving mutation to
// restore diversity.
func selectParents(matingPool []string, prev *Population, rng *rand.Rand) (string, string) {
	parentA, ok := pickOne(matingPool, rng)
	if !ok {
		parentA = prev.Individuals[rng.Intn(prev.Size())].DNA
	}
	if parentB, ok := pickDistinct(matingPool, parentA, rng); ok {
		return parentA, parentB
	}
	if parentB, ok := pickDistinctFrom(prev, parentA, rng); ok {
		return parentA, parentB
	}
	return parentA, parentA
}

// crossover blends two parents against the target: each baby keeps one
// parent's character wherever it already matches the target and takes the
// other parent's character everywhere else.
func crossover(parentA, parentB, target string) (string, string) {
	n := len(target)
	babyA := make([]byte, n)
	babyB := make([]byte, n)
	for i := 0; i < n; i++ {
		if parentA[i] == target[i] {
			babyA[i] = parentA[i]
		} else {
			babyA[i] = parentB[i]
		}
		if parentB[i] == target[i] {
			babyB[i] = parentB[i]
		} else {
			babyB[i] = parentA[i]
		}
	}
	return string(babyA), string(babyB)
}

func pickOne(matingPool []string, rng *rand.Rand) (string, bool) {
	if len(matingPool) == 0 {
		return "", false
	}
	return matingPool[rng.Intn(len(matingPool))], true
}

// pickDistinct draws uniformly from the pool entries whose value is not
// equal to exclude. Exclusion is by value, not index.
func pickDistinct(matingPool []string, exclude string, rng *rand.Rand) (string, bool) {
	others := make([]string, 0, len(matingPool))
	for _, dna := range matingPool {
		if dna != exclude {
			others = append(others, dna)
		}
	}
	return pickOne(others, rng)
}

func pickDistinctFrom(p *Population, exclude string, rng *rand.Rand) (string, bool) {
	others := make([]string, 0, p.Size())
	for _, ind := range p.Individuals {
		if ind.DNA != exclude {
			others = append(others, ind.DNA)
		}
	}
	return pickOne(others, rng)
}
