package matrixgame

import (
	"math"
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// FictitiousPlay approximates a single equilibrium by having each player
// repeatedly best-respond to the other's empirical play. With probability
// MixingLambda a player instead explores a uniformly random action.
type FictitiousPlay struct {
	Iterations   int
	MixingLambda float64
	// Rand defaults to the math/rand global source.
	Rand *rand.Rand
}

func NewFictitiousPlay(iterations int, mixingLambda float64, rng *rand.Rand) *FictitiousPlay {
	return &FictitiousPlay{
		Iterations:   iterations,
		MixingLambda: mixingLambda,
		Rand:         rng,
	}
}

// Equilibria returns the approximate equilibrium as a one-element set.
func (fp *FictitiousPlay) Equilibria(payoffs [][]float64) ([]Equilibrium, error) {
	if len(payoffs) == 0 || len(payoffs[0]) == 0 {
		return nil, errors.New("empty payoff matrix")
	}
	if fp.Iterations <= 0 {
		return nil, errors.Errorf("invalid number of iterations: %d", fp.Iterations)
	}

	m, n := len(payoffs), len(payoffs[0])
	p0PlayCounts := make([]int, m)
	p1PlayCounts := make([]int, n)
	logEvery := max(fp.Iterations/10, 1)
	for i := 1; i <= fp.Iterations; i++ {
		var p0Selected int
		if fp.randFloat64() < fp.MixingLambda {
			p0Selected = fp.randIntn(m)
		} else {
			p0Selected = fp.p0BestResponse(payoffs, p1PlayCounts)
		}

		var p1Selected int
		if fp.randFloat64() < fp.MixingLambda {
			p1Selected = fp.randIntn(n)
		} else {
			p1Selected = fp.p1BestResponse(payoffs, p0PlayCounts)
		}
		p0PlayCounts[p0Selected]++
		p1PlayCounts[p1Selected]++

		if i%logEvery == 0 {
			glog.V(3).Infof("After %d iterations, player 0 weights: %v", i, normalize(p0PlayCounts))
			glog.V(3).Infof("After %d iterations, player 1 weights: %v", i, normalize(p1PlayCounts))
		}
	}

	return []Equilibrium{{
		Row: normalize(p0PlayCounts),
		Col: normalize(p1PlayCounts),
	}}, nil
}

func (fp *FictitiousPlay) p0BestResponse(payoffs [][]float64, p1PlayCounts []int) int {
	utilities := make([]float64, len(payoffs))
	for j, c := range p1PlayCounts {
		for i := range utilities {
			utilities[i] += float64(c) * cell(payoffs, i, j)
		}
	}

	_, br := fp.argMax(utilities)
	return br
}

func (fp *FictitiousPlay) p1BestResponse(payoffs [][]float64, p0PlayCounts []int) int {
	utilities := make([]float64, len(payoffs[0]))
	for i, c := range p0PlayCounts {
		for j := range utilities {
			utilities[j] -= float64(c) * cell(payoffs, i, j)
		}
	}

	_, br := fp.argMax(utilities)
	return br
}

// argMax breaks ties between equal utilities at random.
func (fp *FictitiousPlay) argMax(vs []float64) (float64, int) {
	best := -math.MaxFloat64
	bestIdx := 0
	for i, v := range vs {
		if v > best {
			best = v
			bestIdx = i
		} else if v == best && fp.randIntn(2) == 1 {
			bestIdx = i
		}
	}

	return best, bestIdx
}

func (fp *FictitiousPlay) randFloat64() float64 {
	if fp.Rand == nil {
		return rand.Float64()
	}
	return fp.Rand.Float64()
}

func (fp *FictitiousPlay) randIntn(n int) int {
	if fp.Rand == nil {
		return rand.Intn(n)
	}
	return fp.Rand.Intn(n)
}

func cell(payoffs [][]float64, i, j int) float64 {
	if v := payoffs[i][j]; !math.IsNaN(v) {
		return v
	}
	return 0
}

func normalize(counts []int) []float64 {
	total := 0
	for _, v := range counts {
		total += v
	}

	result := make([]float64, len(counts))
	for i, v := range counts {
		result[i] = float64(v) / float64(total)
	}
	return result
}

func max(i, j int) int {
	if i > j {
		return i
	}
	return j
}
