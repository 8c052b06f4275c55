package ga

import (
	"math"
)

// BuildMatingPool expands a scored population into a fitness-weighted pool
// of DNA values: an individual with fitness f contributes round(f*100)
// copies, in population order. Rounding is half-to-even, so a fitness of
// 1/8 contributes 12 copies and 3/8 contributes 38. Individuals with zero
// fitness contribute nothing; if every score is zero the pool is empty and
// reproduction falls back to the previous generation.
func BuildMatingPool(p *Population) []string {
	matingPool := make([]string, 0, p.Size())
	for _, ind := range p.Individuals {
		copies := int(math.RoundToEven(ind.Fitness * 100))
		for i := 0; i < copies; i++ {
			matingPool = append(matingPool, ind.DNA)
		}
	}
	return matingPool
}
