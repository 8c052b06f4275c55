package evolution

import (
	"fmt"
)

// Result summarizes a finished run: either the acquired sequence, or the
// closest one when the round budget ran out.
type Result struct {
	TargetAcquired bool    `json:"target_acquired"`
	Best           string  `json:"best"`
	MaxFitness     float64 `json:"max_fitness"`
	Generation     int     `json:"generation"`
}

// FitnessPercent renders the max fitness as a percentage, e.g. "87.50%".
func (r Result) FitnessPercent() string {
	return fmt.Sprintf("%.2f%%", r.MaxFitness*100)
}

// Snapshot captures the controller's observable state after a generation.
// Observers hand snapshots to reporting collaborators such as
// logging.Recorder.
type Snapshot struct {
	Generation     int     `json:"generation"`
	MaxFitness     float64 `json:"max_fitness"`
	MeanFitness    float64 `json:"mean_fitness"`
	Closest        string  `json:"closest"`
	TargetAcquired bool    `json:"target_acquired"`
}

// Snapshot returns the current observable state.
func (e *Evolution) Snapshot() Snapshot {
	return Snapshot{
		Generation:     e.generation,
		MaxFitness:     e.maxFitness,
		MeanFitness:    e.pop.MeanFitness(),
		Closest:        e.closest,
		TargetAcquired: e.acquired,
	}
}

func (e *Evolution) result() Result {
	best := e.closest
	if e.acquired {
		best = e.acquiredDNA
	}
	return Result{
		TargetAcquired: e.acquired,
		Best:           best,
		MaxFitness:     e.maxFitness,
		Generation:     e.generation,
	}
}
