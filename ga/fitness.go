package ga

import (
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// Score computes the fraction of positions where dna matches the target.
// dna and target must have equal length.
func Score(dna, target string) float64 {
	matches := 0
	for i := 0; i < len(target); i++ {
		if dna[i] == target[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(target))
}

// Evaluate scores every individual in place against the target.
func Evaluate(p *Population, target string) {
	for _, ind := range p.Individuals {
		ind.Fitness = Score(ind.DNA, target)
	}
}

// Evaluator scores populations concurrently with a bounded worker count.
type Evaluator struct {
	workers int
}

// NewEvaluator creates an evaluator. A non-positive worker count defaults
// to the number of CPUs.
func NewEvaluator(workers int) *Evaluator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Evaluator{workers: workers}
}

// Evaluate scores every individual in place. Scores are independent per
// individual, so the population is fanned out across the worker pool.
func (e *Evaluator) Evaluate(p *Population, target string) {
	workers := pool.New().WithMaxGoroutines(e.workers)
	for _, ind := range p.Individuals {
		ind := ind // capture loop variable
		workers.Go(func() {
			ind.Fitness = Score(ind.DNA, target)
		})
	}
	workers.Wait()
}
