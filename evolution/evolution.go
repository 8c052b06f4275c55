// Package evolution drives a population of candidate strings toward a
// fixed target, generation by generation, using fitness-proportional
// selection, blended crossover, and per-character mutation.
package evolution

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"textevolve/ga"
)

// Default parameters, matching the classic infinite-monkey setup.
const (
	DefaultPopulationSize = 100
	DefaultMutationRate   = 0.01
)

var (
	// ErrInvalidTarget is returned when the target string is empty.
	ErrInvalidTarget = errors.New("evolution: target must not be empty")
	// ErrInvalidPopulationSize is returned for sizes below 2 or odd sizes.
	// Reproduction consumes parent pairs, so odd sizes are rejected
	// outright instead of silently truncated.
	ErrInvalidPopulationSize = errors.New("evolution: population size must be an even integer >= 2")
	// ErrInvalidMutationRate is returned for rates outside [0, 1].
	ErrInvalidMutationRate = errors.New("evolution: mutation rate must be in [0, 1]")
)

// Progress is invoked once per completed generation during Run.
type Progress func(generation int, targetAcquired bool)

// Evolution owns one population plus its convergence state. It is not safe
// for concurrent use; each run should own its controller exclusively.
type Evolution struct {
	target    string
	alphabet  ga.Alphabet
	size      int
	rng       *rand.Rand
	evaluator *ga.Evaluator

	pop        *ga.Population
	matingPool []string

	generation  int
	acquired    bool
	maxFitness  float64
	closest     string
	acquiredDNA string
}

// Option configures an Evolution before its initial population is built.
type Option func(*Evolution)

// WithPopulationSize overrides the default population size of 100.
func WithPopulationSize(size int) Option {
	return func(e *Evolution) { e.size = size }
}

// WithSeed makes the whole run deterministic.
func WithSeed(seed int64) Option {
	return func(e *Evolution) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithWorkers bounds the fitness evaluation fan-out.
func WithWorkers(workers int) Option {
	return func(e *Evolution) { e.evaluator = ga.NewEvaluator(workers) }
}

// New creates a controller for the given target, builds a random initial
// population from the target's alphabet, scores it, and runs the first
// convergence check. A single-character target can therefore come out of
// New already acquired, before any Step.
func New(target string, opts ...Option) (*Evolution, error) {
	if len(target) == 0 {
		return nil, ErrInvalidTarget
	}

	e := &Evolution{
		target:     target,
		alphabet:   ga.NewAlphabet(target),
		size:       DefaultPopulationSize,
		generation: 1,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.size < 2 || e.size%2 != 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidPopulationSize, e.size)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.evaluator == nil {
		e.evaluator = ga.NewEvaluator(0)
	}

	e.pop = ga.NewPopulation(e.size, e.alphabet, e.rng)
	e.evaluator.Evaluate(e.pop, e.target)
	e.matingPool = ga.BuildMatingPool(e.pop)
	e.checkProgress()
	return e, nil
}

// Step advances the population by one generation: reproduce, mutate,
// re-evaluate, check convergence, rebuild the mating pool. Once the target
// has been acquired Step is a no-op.
func (e *Evolution) Step(mutationRate float64) error {
	if mutationRate < 0 || mutationRate > 1 {
		return fmt.Errorf("%w, got %v", ErrInvalidMutationRate, mutationRate)
	}
	if e.acquired {
		return nil
	}

	next := ga.Reproduce(e.matingPool, e.pop, e.target, e.size, e.rng)
	next = ga.Mutate(next, e.alphabet, mutationRate, e.rng)
	e.evaluator.Evaluate(next, e.target)
	e.pop = next
	e.checkProgress()
	e.matingPool = ga.BuildMatingPool(e.pop)
	e.generation++
	return nil
}

// Run executes up to rounds generation steps, invoking progress after each
// completed generation and stopping early once the target is acquired.
// With rounds <= 0 no step runs and the result reflects the initial state.
func (e *Evolution) Run(rounds int, mutationRate float64, progress Progress) (Result, error) {
	if mutationRate < 0 || mutationRate > 1 {
		return Result{}, fmt.Errorf("%w, got %v", ErrInvalidMutationRate, mutationRate)
	}

	for i := 0; i < rounds && !e.acquired; i++ {
		if err := e.Step(mutationRate); err != nil {
			return Result{}, err
		}
		if progress != nil {
			progress(e.generation, e.acquired)
		}
	}
	return e.result(), nil
}

// checkProgress records the best individual of the current generation and
// flips the acquired flag when it matches the target exactly.
func (e *Evolution) checkProgress() {
	best, _ := e.pop.Best()
	e.maxFitness = best.Fitness
	e.closest = best.DNA
	if e.maxFitness == 1.0 {
		e.acquired = true
		e.acquiredDNA = best.DNA
	}
}

// Generation returns the current generation number, starting at 1.
func (e *Evolution) Generation() int { return e.generation }

// TargetAcquired reports whether some individual has matched the target.
func (e *Evolution) TargetAcquired() bool { return e.acquired }

// MaxFitness returns the best fitness of the current generation.
func (e *Evolution) MaxFitness() float64 { return e.maxFitness }

// Closest returns the individual nearest the target, first index on ties.
func (e *Evolution) Closest() string { return e.closest }

// Acquired returns the matching individual once the target is acquired.
func (e *Evolution) Acquired() (string, bool) { return e.acquiredDNA, e.acquired }

// Population exposes the current generation, chiefly for reporting.
func (e *Evolution) Population() *ga.Population { return e.pop }
