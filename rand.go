package decide

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/timpalpant/go-cfr/sampling"
)

// Rand is the source of randomness for the randomized decisions.
// *rand.Rand implements it; tests may substitute a scripted source.
type Rand interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
	// Float32 returns a uniform float in [0, 1).
	Float32() float32
}

// globalRand draws from the process-wide math/rand source.
type globalRand struct{}

func (globalRand) Intn(n int) int   { return rand.Intn(n) }
func (globalRand) Float32() float32 { return rand.Float32() }

func chooseUniform(rng Rand, pool []Action) Action {
	return pool[rng.Intn(len(pool))]
}

// sampleWeighted selects an index with probability proportional to its weight.
// Weights are renormalized by their sum, so they need not sum exactly to 1.
// An index with zero weight is never selected.
func sampleWeighted(rng Rand, weights []float64) (int, error) {
	largest := 0.0
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 1) {
			return 0, errors.Errorf("invalid weight in mixed strategy: %v", weights)
		}
		largest = math.Max(largest, w)
	}
	if largest == 0 {
		return 0, errors.Errorf("mixed strategy has no probability mass: %v", weights)
	}

	// Scale by the largest weight first so the sum cannot overflow.
	total := 0.0
	for _, w := range weights {
		total += w / largest
	}

	pv := make([]float32, len(weights))
	for i, w := range weights {
		pv[i] = float32(w / largest / total)
	}

	selected := sampling.SampleOne(pv, rng.Float32())
	if pv[selected] == 0 {
		// Accumulated rounding can run past the last nonzero weight.
		for i := len(pv) - 1; i >= 0; i-- {
			if pv[i] > 0 {
				return i, nil
			}
		}
	}
	return selected, nil
}
