package matrixgame

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubSolver struct {
	result []Equilibrium
	err    error
	calls  int
}

func (s *stubSolver) Equilibria(payoffs [][]float64) ([]Equilibrium, error) {
	s.calls++
	return s.result, s.err
}

func TestExpectedPayoff(t *testing.T) {
	payoffs := [][]float64{
		{1, 2},
		{3, math.NaN()},
	}

	require.Equal(t, 1.0, ExpectedPayoff(payoffs, []float64{1, 0}, []float64{1, 0}))
	require.Equal(t, 0.0, ExpectedPayoff(payoffs, []float64{0, 1}, []float64{0, 1}))
	require.InDelta(t, 1.5, ExpectedPayoff(payoffs, []float64{0.5, 0.5}, []float64{0.5, 0.5}), 1e-12)
}

func TestFirstNonEmpty(t *testing.T) {
	eq := Equilibrium{Row: []float64{1}, Col: []float64{1}}
	failing := &stubSolver{err: errors.New("too large")}
	empty := &stubSolver{}
	found := &stubSolver{result: []Equilibrium{eq}}
	unused := &stubSolver{result: []Equilibrium{eq, eq}}

	result, err := FirstNonEmpty(failing, empty, found, unused).Equilibria([][]float64{{1}})
	require.NoError(t, err)
	require.Equal(t, []Equilibrium{eq}, result)
	require.Equal(t, 1, failing.calls)
	require.Equal(t, 1, empty.calls)
	require.Equal(t, 0, unused.calls)

	_, err = FirstNonEmpty(failing, empty).Equilibria([][]float64{{1}})
	require.Error(t, err)

	result, err = FirstNonEmpty(empty).Equilibria([][]float64{{1}})
	require.NoError(t, err)
	require.Empty(t, result)
}
